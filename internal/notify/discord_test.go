package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscordNotifier_Send(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		slots      int
		statusCode int
		wantErr    bool
		errMsg     string
		wantEmbeds int
		wantFields int
	}{
		{
			name:       "few slots send one embed",
			slots:      2,
			statusCode: http.StatusNoContent,
			wantEmbeds: 1,
			wantFields: 2,
		},
		{
			name:       "overflow adds summary embed",
			slots:      9,
			statusCode: http.StatusNoContent,
			wantEmbeds: 2,
			wantFields: 5,
		},
		{
			name:       "discord returns 429 rate limited",
			slots:      1,
			statusCode: http.StatusTooManyRequests,
			wantErr:    true,
			errMsg:     "rate limited",
		},
		{
			name:       "discord returns 400 error",
			slots:      1,
			statusCode: http.StatusBadRequest,
			wantErr:    true,
			errMsg:     "discord returned 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var received discordWebhookPayload

			srv := httptest.NewServer(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
					assert.Equal(t, http.MethodPost, r.Method)

					err := json.NewDecoder(r.Body).Decode(&received)
					assert.NoError(t, err)

					w.WriteHeader(tt.statusCode)
				}),
			)
			defer srv.Close()

			d := NewDiscordNotifier(srv.URL)
			assert.Equal(t, ChannelDiscord, d.Name())

			err := d.Send(context.Background(), Message{
				RestaurantName: "Lilia",
				Slots:          testSlots(tt.slots),
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			require.Len(t, received.Embeds, tt.wantEmbeds)

			embed := received.Embeds[0]
			assert.Equal(t, colorGreen, embed.Color)
			assert.Equal(t, "Lilia has availability!", embed.Title)
			assert.Contains(t, embed.URL, "resy.com")
			require.Len(t, embed.Fields, tt.wantFields)
			assert.Equal(t, "Sunday, February 01", embed.Fields[0].Name)
			assert.Contains(t, embed.Fields[0].Value, "5:00 PM, party of 2")
		})
	}
}

func TestDiscordNotifier_NetworkError(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("http://127.0.0.1:1") // nothing listening
	err := d.Send(context.Background(), Message{RestaurantName: "Lilia", Slots: testSlots(1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending discord webhook")
}

func TestDiscordNotifier_InvalidWebhookURL(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("://not-a-valid-url")
	err := d.Send(context.Background(), Message{RestaurantName: "Lilia", Slots: testSlots(1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating discord request")
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	d := NewDiscordNotifier("https://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, d.client)
}
