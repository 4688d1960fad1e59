package notify

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/donaldgifford/tablewatch/pkg/slottime"
	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

// maxListedSlots is how many slots an alert spells out before summarizing.
const maxListedSlots = 5

// Subject returns the alert subject line.
func Subject(restaurantName string) string {
	return restaurantName + " has availability!"
}

func listed(slots []domain.AvailableSlot) (shown []domain.AvailableSlot, more int) {
	if len(slots) <= maxListedSlots {
		return slots, 0
	}
	return slots[:maxListedSlots], len(slots) - maxListedSlots
}

func moreLine(n int) string {
	return fmt.Sprintf("+ %d more slots available", n)
}

// PlainText renders the text/plain email body.
func PlainText(restaurantName string, slots []domain.AvailableSlot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\nWe found the following open slots:\n\n", Subject(restaurantName))

	shown, more := listed(slots)
	for _, s := range shown {
		fmt.Fprintf(&b, "- %s at %s for %d\n",
			slottime.FormatDateReadable(s.Date), slottime.Format12h(s.Time), s.PartySize)
		if s.BookingURL != "" {
			fmt.Fprintf(&b, "  Book: %s\n", s.BookingURL)
		}
		b.WriteString("\n")
	}
	if more > 0 {
		b.WriteString(moreLine(more) + "\n")
	}
	return b.String()
}

// SMSText renders a compact single-message alert.
func SMSText(restaurantName string, slots []domain.AvailableSlot) string {
	var b strings.Builder
	b.WriteString(Subject(restaurantName))

	shown, more := listed(slots)
	for _, s := range shown {
		fmt.Fprintf(&b, "\n%s %s", slottime.FormatDateReadable(s.Date), slottime.Format12h(s.Time))
	}
	if more > 0 {
		b.WriteString("\n" + moreLine(more))
	}
	if len(slots) > 0 && slots[0].BookingURL != "" {
		b.WriteString("\nBook: " + slots[0].BookingURL)
	}
	return b.String()
}

// HTMLBody renders the text/html email body from the availabilityEmail
// component.
func HTMLBody(ctx context.Context, restaurantName string, slots []domain.AvailableSlot) (string, error) {
	shown, more := listed(slots)

	var buf bytes.Buffer
	if err := availabilityEmail(restaurantName, shown, more).Render(ctx, &buf); err != nil {
		return "", fmt.Errorf("rendering email: %w", err)
	}
	return buf.String(), nil
}
