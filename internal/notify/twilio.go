package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// messageClient is the subset of the Twilio v2010 API used for delivery.
type messageClient interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// TwilioNotifier delivers alerts as SMS through Twilio.
type TwilioNotifier struct {
	client     messageClient
	fromNumber string
}

// TwilioOption configures a TwilioNotifier.
type TwilioOption func(*TwilioNotifier)

// WithMessageClient replaces the Twilio API client, mainly for tests.
func WithMessageClient(c messageClient) TwilioOption {
	return func(n *TwilioNotifier) {
		n.client = c
	}
}

// NewTwilioNotifier creates a TwilioNotifier using account credentials.
func NewTwilioNotifier(accountSID, authToken, fromNumber string, opts ...TwilioOption) *TwilioNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   accountSID,
		Password:   authToken,
		AccountSid: accountSID,
	})
	n := &TwilioNotifier{
		client:     client.Api,
		fromNumber: fromNumber,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Name implements Notifier.
func (n *TwilioNotifier) Name() string { return ChannelSMS }

// Send implements Notifier. The Twilio client is not context-aware, so ctx
// is only checked before the request is issued.
func (n *TwilioNotifier) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !strings.HasPrefix(msg.Recipient, "+") {
		return fmt.Errorf("sms recipient %q is not in E.164 format", msg.Recipient)
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(msg.Recipient)
	params.SetFrom(n.fromNumber)
	params.SetBody(SMSText(msg.RestaurantName, msg.Slots))

	if _, err := n.client.CreateMessage(params); err != nil {
		return fmt.Errorf("sending sms via twilio: %w", err)
	}
	return nil
}
