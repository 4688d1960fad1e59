package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/donaldgifford/tablewatch/internal/metrics"
	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

// Recipients are the addresses a watch notifies. Either may be empty.
type Recipients struct {
	Email string
	SMS   string
}

// Empty reports whether no recipient is set.
func (r Recipients) Empty() bool {
	return r.Email == "" && r.SMS == ""
}

// Attempt is the outcome of one delivery on one channel.
type Attempt struct {
	Channel   string
	Recipient string
	Err       error
}

// Succeeded reports whether the attempt delivered.
func (a Attempt) Succeeded() bool { return a.Err == nil }

// AllSucceeded reports whether every attempt delivered. No attempts is not a
// success.
func AllSucceeded(attempts []Attempt) bool {
	if len(attempts) == 0 {
		return false
	}
	for _, a := range attempts {
		if a.Err != nil {
			return false
		}
	}
	return true
}

// Dispatcher routes an alert to the channel matching each recipient, plus
// any fan-out notifiers that receive every alert.
type Dispatcher struct {
	email  Notifier
	sms    Notifier
	fanout []Notifier
	log    *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithEmailNotifier sets the notifier for email recipients.
func WithEmailNotifier(n Notifier) DispatcherOption {
	return func(d *Dispatcher) { d.email = n }
}

// WithSMSNotifier sets the notifier for phone recipients.
func WithSMSNotifier(n Notifier) DispatcherOption {
	return func(d *Dispatcher) { d.sms = n }
}

// WithFanout adds notifiers that receive every dispatched alert.
func WithFanout(n ...Notifier) DispatcherOption {
	return func(d *Dispatcher) { d.fanout = append(d.fanout, n...) }
}

// WithLogger sets the dispatcher logger.
func WithLogger(l *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) { d.log = l }
}

// NewDispatcher creates a Dispatcher. Channels left unset log and discard.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{log: slog.Default()}
	for _, opt := range opts {
		opt(d)
	}
	if d.email == nil {
		d.email = NewNoOpNotifier(ChannelEmail, d.log)
	}
	if d.sms == nil {
		d.sms = NewNoOpNotifier(ChannelSMS, d.log)
	}
	return d
}

// Send delivers the alert to every recipient and fan-out notifier in turn,
// returning one Attempt per delivery. There is no retry.
func (d *Dispatcher) Send(
	ctx context.Context,
	to Recipients,
	restaurantName string,
	slots []domain.AvailableSlot,
) []Attempt {
	var attempts []Attempt

	if to.Email != "" {
		attempts = append(attempts, d.deliver(ctx, d.email, to.Email, restaurantName, slots))
	}
	if to.SMS != "" {
		attempts = append(attempts, d.deliver(ctx, d.sms, to.SMS, restaurantName, slots))
	}
	for _, n := range d.fanout {
		attempts = append(attempts, d.deliver(ctx, n, "", restaurantName, slots))
	}

	return attempts
}

func (d *Dispatcher) deliver(
	ctx context.Context,
	n Notifier,
	recipient string,
	restaurantName string,
	slots []domain.AvailableSlot,
) Attempt {
	start := time.Now()
	err := n.Send(ctx, Message{
		Recipient:      recipient,
		RestaurantName: restaurantName,
		Slots:          slots,
	})
	metrics.NotificationDuration.Observe(time.Since(start).Seconds())

	a := Attempt{Channel: n.Name(), Recipient: recipient, Err: err}
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues(a.Channel, "failure").Inc()
		metrics.NotificationFailuresTotal.Inc()
		d.log.Warn("notification failed",
			"channel", a.Channel,
			"restaurant", restaurantName,
			"error", err,
		)
		return a
	}

	metrics.NotificationsTotal.WithLabelValues(a.Channel, "success").Inc()
	d.log.Info("notification sent",
		"channel", a.Channel,
		"restaurant", restaurantName,
		"slots", len(slots),
	)
	return a
}
