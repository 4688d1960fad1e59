package engine

import (
	"context"
	"errors"
	"time"

	"github.com/donaldgifford/tablewatch/internal/notify"
	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

const (
	markNotifiedAttempts = 3
	markNotifiedBackoff  = 500 * time.Millisecond
)

// recordAndNotify persists a check record for the new slots and, when the
// target has a recipient, dispatches an alert. The record is written first as
// pending and then marked notified or failed; a failed record does not count
// as history, so its slots are offered again on the next sweep.
func (eng *Engine) recordAndNotify(
	ctx context.Context,
	r *domain.Restaurant,
	w *domain.WatchTarget,
	slots []domain.AvailableSlot,
) (TargetOutcome, error) {
	to := notify.Recipients{Email: w.NotifyEmail, SMS: w.NotifySMS}

	check := &domain.CheckRecord{
		RestaurantID:   r.ID,
		WatchID:        w.ID,
		CheckedAt:      eng.now(),
		Slots:          slots,
		BookingURL:     slots[0].BookingURL,
		DispatchStatus: domain.DispatchPending,
	}
	if to.Empty() {
		check.DispatchStatus = domain.DispatchSkipped
	}

	if err := eng.store.CreateCheck(ctx, check); err != nil {
		return OutcomeError, persistErr("creating check record", err)
	}

	if to.Empty() {
		eng.log.Info("new slots found, no recipient configured",
			"restaurant", r.Name,
			"watch", w.ID,
			"slots", len(slots),
		)
		return OutcomeNewSlotsFound, nil
	}

	attempts := eng.dispatcher.Send(ctx, to, r.Name, slots)
	for _, a := range attempts {
		rec := &domain.NotificationRecord{
			CheckID:      check.ID,
			RestaurantID: r.ID,
			Channel:      a.Channel,
			Recipient:    a.Recipient,
			SentAt:       eng.now(),
			Success:      a.Succeeded(),
		}
		if a.Err != nil {
			rec.ErrorText = a.Err.Error()
		}
		if err := eng.store.InsertNotification(ctx, rec); err != nil {
			eng.log.Error("recording notification failed", "check", check.ID, "error", err)
		}
	}

	if !notify.AllSucceeded(attempts) {
		if err := eng.store.MarkCheckFailed(ctx, check.ID); err != nil {
			return OutcomeError, persistErr("marking check failed", err)
		}
		eng.log.Warn("notification failed, slots will be retried next sweep",
			"restaurant", r.Name,
			"check", check.ID,
		)
		return OutcomeNotifyFailed, nil
	}

	if err := eng.markNotified(ctx, check.ID); err != nil {
		eng.log.Error("alert sent but check not marked notified, slots may be alerted again",
			"restaurant", r.Name,
			"check", check.ID,
			"error", err,
		)
		return OutcomeError, persistErr("marking check notified", err)
	}
	return OutcomeNotified, nil
}

// markNotified retries MarkCheckNotified with a linear backoff. A pending
// record does not count as history, so giving up here risks a repeat alert.
func (eng *Engine) markNotified(ctx context.Context, checkID string) error {
	var err error
	for attempt := 1; attempt <= markNotifiedAttempts; attempt++ {
		if err = eng.store.MarkCheckNotified(ctx, checkID); err == nil {
			return nil
		}
		if attempt < markNotifiedAttempts {
			eng.log.Warn("marking check notified failed, retrying",
				"check", checkID,
				"attempt", attempt,
				"error", err,
			)
			if serr := eng.sleep(ctx, time.Duration(attempt)*markNotifiedBackoff); serr != nil {
				return errors.Join(err, serr)
			}
		}
	}
	return err
}
