package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriority_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, PriorityNormal.Valid())
	assert.True(t, PriorityHigh.Valid())
	assert.True(t, PriorityUrgent.Valid())
	assert.False(t, Priority("").Valid())
	assert.False(t, Priority("low").Valid())
}

func TestWatchTarget_Flags(t *testing.T) {
	t.Parallel()

	w := WatchTarget{}
	assert.False(t, w.HasRecipient())
	assert.False(t, w.HasDateRange())

	w.NotifySMS = "+15551234567"
	assert.True(t, w.HasRecipient())

	w.DateRangeStart = "2026-02-01"
	assert.False(t, w.HasDateRange())
	w.DateRangeEnd = "2026-02-03"
	assert.True(t, w.HasDateRange())
}

func TestAvailableSlot_Key(t *testing.T) {
	t.Parallel()

	a := AvailableSlot{Date: "2026-02-01", Time: "19:30", PartySize: 2, BookingURL: "u1"}
	b := AvailableSlot{Date: "2026-02-01", Time: "19:30", PartySize: 4, BookingURL: "u2"}
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), AvailableSlot{Date: "2026-02-02", Time: "19:30"}.Key())
}
