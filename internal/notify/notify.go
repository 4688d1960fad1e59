// Package notify renders availability alerts and delivers them over email,
// SMS and webhook channels.
package notify

import (
	"context"

	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

// Channel names recorded on every dispatch attempt.
const (
	ChannelEmail   = "email"
	ChannelSMS     = "sms"
	ChannelDiscord = "discord"
)

// Message is one alert addressed to one recipient.
type Message struct {
	Recipient      string
	RestaurantName string
	Slots          []domain.AvailableSlot
}

// Notifier delivers a Message over a single channel.
type Notifier interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}
