package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/donaldgifford/tablewatch/pkg/slottime"
)

const (
	colorGreen = 0x2ECC71
	colorTerra = 0xC45D3A // overflow embed
)

// DiscordNotifier implements Notifier via Discord webhook. The Message
// recipient is ignored; every alert goes to the configured webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Name implements Notifier.
func (d *DiscordNotifier) Name() string { return ChannelDiscord }

// Send posts the alert as a single embed with one field per listed slot.
func (d *DiscordNotifier) Send(ctx context.Context, msg Message) error {
	return d.post(ctx, discordWebhookPayload{Embeds: buildEmbeds(msg)})
}

func buildEmbeds(msg Message) []discordEmbed {
	embed := discordEmbed{
		Title: Subject(msg.RestaurantName),
		Color: colorGreen,
	}
	if len(msg.Slots) > 0 {
		embed.URL = msg.Slots[0].BookingURL
	}

	shown, more := listed(msg.Slots)
	for _, s := range shown {
		value := fmt.Sprintf("%s, party of %d", slottime.Format12h(s.Time), s.PartySize)
		if s.BookingURL != "" {
			value += fmt.Sprintf(" ([book](%s))", s.BookingURL)
		}
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name:  slottime.FormatDateReadable(s.Date),
			Value: value,
		})
	}

	embeds := []discordEmbed{embed}
	if more > 0 {
		embeds = append(embeds, discordEmbed{
			Title: moreLine(more),
			Color: colorTerra,
		})
	}
	return embeds
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
