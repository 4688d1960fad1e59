package engine

import (
	"context"

	"github.com/donaldgifford/tablewatch/internal/metrics"
	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

// FilterNewSlots returns the slots whose (date, time) is not in seen, in
// input order. Repeats within slots are collapsed to their first occurrence.
// It does not modify its arguments.
func FilterNewSlots(slots []domain.AvailableSlot, seen []domain.SlotKey) []domain.AvailableSlot {
	known := make(map[domain.SlotKey]struct{}, len(seen)+len(slots))
	for _, k := range seen {
		known[k] = struct{}{}
	}

	var fresh []domain.AvailableSlot
	for _, s := range slots {
		k := s.Key()
		if _, ok := known[k]; ok {
			continue
		}
		known[k] = struct{}{}
		fresh = append(fresh, s)
	}
	return fresh
}

// newSlots removes slots already surfaced for the restaurant within the
// dedup window.
func (eng *Engine) newSlots(
	ctx context.Context,
	restaurantID string,
	slots []domain.AvailableSlot,
) ([]domain.AvailableSlot, error) {
	seen, err := eng.store.ListRecentSlotKeys(ctx, restaurantID, eng.now().Add(-eng.dedupWindow))
	if err != nil {
		return nil, persistErr("loading slot history", err)
	}

	fresh := FilterNewSlots(slots, seen)
	if suppressed := len(slots) - len(fresh); suppressed > 0 {
		metrics.DedupSuppressedTotal.Add(float64(suppressed))
	}
	return fresh, nil
}
