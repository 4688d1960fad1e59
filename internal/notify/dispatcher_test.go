package notify_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/tablewatch/internal/metrics"
	"github.com/donaldgifford/tablewatch/internal/notify"
	"github.com/donaldgifford/tablewatch/internal/notify/mocks"
	"github.com/donaldgifford/tablewatch/pkg/logger"
	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

var slots = []domain.AvailableSlot{
	{Date: "2026-02-01", Time: "19:00", PartySize: 2, BookingURL: "https://resy.com/cities/ny/lilia"},
}

func newMockNotifier(t *testing.T, channel string) *mocks.MockNotifier {
	t.Helper()
	m := mocks.NewMockNotifier(t)
	m.EXPECT().Name().Return(channel).Maybe()
	return m
}

func TestDispatcher_Send(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		to           notify.Recipients
		setup        func(email, sms, hook *mocks.MockNotifier)
		wantChannels []string
		wantSuccess  bool
	}{
		{
			name: "email only",
			to:   notify.Recipients{Email: "diner@example.com"},
			setup: func(email, _, hook *mocks.MockNotifier) {
				email.EXPECT().Send(mock.Anything, notify.Message{
					Recipient: "diner@example.com", RestaurantName: "Lilia", Slots: slots,
				}).Return(nil).Once()
				hook.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantChannels: []string{notify.ChannelEmail, notify.ChannelDiscord},
			wantSuccess:  true,
		},
		{
			name: "email and sms",
			to:   notify.Recipients{Email: "diner@example.com", SMS: "+15551234567"},
			setup: func(email, sms, hook *mocks.MockNotifier) {
				email.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Once()
				sms.EXPECT().Send(mock.Anything, mock.MatchedBy(func(m notify.Message) bool {
					return m.Recipient == "+15551234567"
				})).Return(nil).Once()
				hook.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantChannels: []string{notify.ChannelEmail, notify.ChannelSMS, notify.ChannelDiscord},
			wantSuccess:  true,
		},
		{
			name: "one failed channel fails the dispatch",
			to:   notify.Recipients{SMS: "+15551234567"},
			setup: func(_, sms, hook *mocks.MockNotifier) {
				sms.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("twilio down")).Once()
				hook.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantChannels: []string{notify.ChannelSMS, notify.ChannelDiscord},
			wantSuccess:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			email := newMockNotifier(t, notify.ChannelEmail)
			sms := newMockNotifier(t, notify.ChannelSMS)
			hook := newMockNotifier(t, notify.ChannelDiscord)
			tt.setup(email, sms, hook)

			d := notify.NewDispatcher(
				notify.WithEmailNotifier(email),
				notify.WithSMSNotifier(sms),
				notify.WithFanout(hook),
				notify.WithLogger(logger.Discard()),
			)

			attempts := d.Send(context.Background(), tt.to, "Lilia", slots)

			channels := make([]string, 0, len(attempts))
			for _, a := range attempts {
				channels = append(channels, a.Channel)
			}
			assert.Equal(t, tt.wantChannels, channels)
			assert.Equal(t, tt.wantSuccess, notify.AllSucceeded(attempts))
		})
	}
}

func TestDispatcher_UnconfiguredChannelsLogOnly(t *testing.T) {
	t.Parallel()

	d := notify.NewDispatcher(notify.WithLogger(logger.Discard()))
	attempts := d.Send(context.Background(),
		notify.Recipients{Email: "diner@example.com", SMS: "+15551234567"}, "Lilia", slots)

	require.Len(t, attempts, 2)
	assert.True(t, notify.AllSucceeded(attempts))
	assert.Equal(t, "diner@example.com", attempts[0].Recipient)
}

func TestAllSucceeded(t *testing.T) {
	t.Parallel()

	assert.False(t, notify.AllSucceeded(nil))
	assert.True(t, notify.AllSucceeded([]notify.Attempt{{Channel: "email"}}))
	assert.False(t, notify.AllSucceeded([]notify.Attempt{
		{Channel: "email"},
		{Channel: "sms", Err: errors.New("boom")},
	}))
	assert.True(t, notify.Recipients{}.Empty())
	assert.False(t, notify.Recipients{SMS: "+1"}.Empty())
}

func notificationSampleCount() uint64 {
	ch := make(chan prometheus.Metric, 1)
	metrics.NotificationDuration.Collect(ch)
	m := <-ch
	pb := &dto.Metric{}
	_ = m.Write(pb)
	return pb.GetHistogram().GetSampleCount()
}

func TestDispatcher_ObservesNotificationDuration(t *testing.T) {
	t.Parallel()

	before := notificationSampleCount()

	d := notify.NewDispatcher(notify.WithLogger(logger.Discard()))
	d.Send(context.Background(), notify.Recipients{Email: "diner@example.com"}, "Lilia", slots)

	assert.Greater(t, notificationSampleCount(), before)
}
