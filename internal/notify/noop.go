package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded alerts. It stands in
// for a channel whose backend is not configured.
type NoOpNotifier struct {
	channel string
	log     *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards alerts for channel with a
// log message.
func NewNoOpNotifier(channel string, log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{channel: channel, log: log}
}

// Name implements Notifier.
func (n *NoOpNotifier) Name() string { return n.channel }

// Send logs and discards the alert.
func (n *NoOpNotifier) Send(_ context.Context, msg Message) error {
	n.log.Info("notification discarded (no backend configured)",
		"channel", n.channel,
		"recipient", msg.Recipient,
		"restaurant", msg.RestaurantName,
		"slots", len(msg.Slots),
	)
	return nil
}
