package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// mailClient is the subset of *sendgrid.Client used for delivery.
type mailClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridNotifier delivers alerts as email through the SendGrid v3 API.
type SendGridNotifier struct {
	client    mailClient
	fromEmail string
	fromName  string
}

// SendGridOption configures a SendGridNotifier.
type SendGridOption func(*SendGridNotifier)

// WithMailClient replaces the SendGrid client, mainly for tests.
func WithMailClient(c mailClient) SendGridOption {
	return func(n *SendGridNotifier) {
		n.client = c
	}
}

// NewSendGridNotifier creates a SendGridNotifier for the given API key.
func NewSendGridNotifier(apiKey, fromEmail, fromName string, opts ...SendGridOption) *SendGridNotifier {
	n := &SendGridNotifier{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Name implements Notifier.
func (n *SendGridNotifier) Name() string { return ChannelEmail }

// Send implements Notifier.
func (n *SendGridNotifier) Send(ctx context.Context, msg Message) error {
	html, err := HTMLBody(ctx, msg.RestaurantName, msg.Slots)
	if err != nil {
		return err
	}

	email := mail.NewSingleEmail(
		mail.NewEmail(n.fromName, n.fromEmail),
		Subject(msg.RestaurantName),
		mail.NewEmail("", msg.Recipient),
		PlainText(msg.RestaurantName, msg.Slots),
		html,
	)

	resp, err := n.client.SendWithContext(ctx, email)
	if err != nil {
		return fmt.Errorf("sending email via sendgrid: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
