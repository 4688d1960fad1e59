package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/tablewatch/internal/metrics"
	"github.com/donaldgifford/tablewatch/internal/notify"
	"github.com/donaldgifford/tablewatch/internal/platform"
	"github.com/donaldgifford/tablewatch/internal/store"
	"github.com/donaldgifford/tablewatch/pkg/slottime"
	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

const (
	defaultTargetDelay = 5 * time.Second
	defaultDedupWindow = 24 * time.Hour
	defaultMaxDates    = 7
)

var tracer = otel.Tracer("github.com/donaldgifford/tablewatch/internal/engine")

// Dispatcher delivers an availability alert to a target's recipients.
type Dispatcher interface {
	Send(ctx context.Context, to notify.Recipients, restaurantName string, slots []domain.AvailableSlot) []notify.Attempt
}

// Engine runs sweeps: it checks every active watch target against its
// restaurant's booking platforms, records new slots and notifies.
type Engine struct {
	store      store.Store
	scrapers   *platform.Registry
	dispatcher Dispatcher
	log        *slog.Logger

	targetDelay time.Duration
	datePacer   *platform.Pacer
	dedupWindow time.Duration
	maxDates    int
	now         func() time.Time
	sleep       func(ctx context.Context, d time.Duration) error
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	scrapers *platform.Registry,
	d Dispatcher,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:       s,
		scrapers:    scrapers,
		dispatcher:  d,
		log:         slog.Default(),
		targetDelay: defaultTargetDelay,
		datePacer:   platform.NewPacer(2*time.Second, 5*time.Second, 0),
		dedupWindow: defaultDedupWindow,
		maxDates:    defaultMaxDates,
		now:         time.Now,
		sleep:       platform.SleepContext,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithTargetDelay sets the pause between successive watch targets.
func WithTargetDelay(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.targetDelay = d
	}
}

// WithDatePacer sets the pacer consulted between successive dates of one
// target.
func WithDatePacer(p *platform.Pacer) EngineOption {
	return func(e *Engine) {
		e.datePacer = p
	}
}

// WithDedupWindow sets how far back slot history suppresses repeats.
func WithDedupWindow(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.dedupWindow = d
	}
}

// WithMaxDates caps how many dates are checked per target.
func WithMaxDates(n int) EngineOption {
	return func(e *Engine) {
		e.maxDates = n
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// RunSweep checks every active watch target once, strictly one after another.
// A failing target is logged and counted; it never aborts the sweep. When ctx
// is canceled the sweep stops at the next date or target boundary without
// interrupting an in-flight request.
func (eng *Engine) RunSweep(ctx context.Context) (SweepResult, error) {
	ctx, span := tracer.Start(ctx, "engine.sweep")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.SweepDuration.Observe(time.Since(start).Seconds())
	}()

	var res SweepResult

	targets, err := eng.store.ListWatches(ctx, true)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "listing watches")
		return res, fmt.Errorf("listing active watches: %w", err)
	}
	span.SetAttributes(attribute.Int("sweep.targets", len(targets)))

	processed := 0
	for i := range targets {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}

		w := &targets[i]
		if !w.Active {
			continue
		}

		if processed > 0 && eng.targetDelay > 0 {
			if err := eng.sleep(ctx, eng.targetDelay); err != nil {
				return res, err
			}
		}
		processed++

		outcome, found, err := eng.processTarget(ctx, w)
		res.record(outcome, found, err)
		metrics.TargetsProcessedTotal.WithLabelValues(outcome.String()).Inc()

		if err != nil {
			metrics.SweepTargetErrorsTotal.Inc()
			eng.log.Error("target processing failed",
				"watch", w.ID,
				"restaurant", w.RestaurantID,
				"error", err,
			)
		}
	}

	span.SetAttributes(
		attribute.Int("sweep.new_slots", res.NewSlots),
		attribute.Int("sweep.errors", res.Errors),
	)
	eng.log.Info("sweep complete",
		"targets", res.Targets,
		"new_slots", res.NewSlots,
		"errors", res.Errors,
		"duration", time.Since(start).Round(time.Millisecond),
	)

	return res, nil
}

// processTarget runs one target through scrape, filter, dedup, record and
// notify. Requests and writes run on a context detached from cancellation so
// a stop never cuts one off mid-flight.
func (eng *Engine) processTarget(ctx context.Context, w *domain.WatchTarget) (TargetOutcome, int, error) {
	ctx, span := tracer.Start(ctx, "engine.target", trace.WithAttributes(
		attribute.String("watch.id", w.ID),
		attribute.String("restaurant.id", w.RestaurantID),
	))
	defer span.End()

	work := context.WithoutCancel(ctx)

	defer func() {
		if err := eng.store.UpdateWatchLastChecked(work, w.ID, eng.now()); err != nil {
			eng.log.Error("updating last_checked failed", "watch", w.ID, "error", err)
		}
	}()

	outcome, found, err := eng.checkTarget(ctx, work, w)
	span.SetAttributes(attribute.String("target.outcome", outcome.String()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome.String())
	}
	return outcome, found, err
}

func (eng *Engine) checkTarget(ctx, work context.Context, w *domain.WatchTarget) (TargetOutcome, int, error) {
	r, err := eng.store.GetRestaurant(work, w.RestaurantID)
	if err != nil {
		return OutcomeError, 0, persistErr("loading restaurant", err)
	}

	targets := r.Targets()
	if len(targets) == 0 {
		return OutcomeError, 0, fmt.Errorf("restaurant %s: %w", r.ID, ErrNoBookingTarget)
	}

	dates, err := slottime.Window(w, eng.now(), eng.maxDates)
	if err != nil {
		return OutcomeError, 0, fmt.Errorf("resolving date window: %w", err)
	}

	var slots []domain.AvailableSlot
	for i, date := range dates {
		if i > 0 {
			if err := eng.datePacer.Wait(ctx); err != nil {
				break
			}
		}
		if ctx.Err() != nil {
			break
		}
		slots = append(slots, eng.checkDate(work, r, w, targets, date)...)
	}

	slots = filterPreferred(w, slots)
	if len(slots) == 0 {
		return OutcomeNoActivity, 0, nil
	}

	fresh, err := eng.newSlots(work, r.ID, slots)
	if err != nil {
		return OutcomeError, 0, err
	}
	if len(fresh) == 0 {
		eng.log.Debug("all slots already seen", "restaurant", r.Name, "slots", len(slots))
		return OutcomeNoActivity, 0, nil
	}
	metrics.NewSlotsTotal.Add(float64(len(fresh)))

	outcome, err := eng.recordAndNotify(work, r, w, fresh)
	return outcome, len(fresh), err
}

// checkDate tries the restaurant's platforms in order for one date and stops
// at the first that shows any slot. A failed fetch counts as no slots.
func (eng *Engine) checkDate(
	ctx context.Context,
	r *domain.Restaurant,
	w *domain.WatchTarget,
	targets []domain.BookingTarget,
	date string,
) []domain.AvailableSlot {
	for i, t := range targets {
		if i > 0 {
			metrics.FallbackTotal.Inc()
			eng.log.Debug("primary empty, trying fallback",
				"restaurant", r.Name,
				"date", date,
				"platform", t.Kind,
			)
		}

		scraper, err := eng.scrapers.Get(t.Kind)
		if err != nil {
			eng.log.Warn("no scraper for platform", "restaurant", r.Name, "error", err)
			continue
		}

		slots, err := scraper.CheckAvailability(ctx, platform.Query{
			Identifier:     t.Identifier,
			Date:           date,
			PartySize:      w.PartySize,
			PreferredTimes: w.PreferredTimes,
		})
		if err != nil {
			level := slog.LevelError
			if platform.IsTransient(err) || errors.Is(err, context.DeadlineExceeded) {
				level = slog.LevelWarn
			}
			eng.log.Log(ctx, level, "availability check failed",
				"restaurant", r.Name,
				"platform", t.Kind,
				"date", date,
				"error", err,
			)
			continue
		}

		if len(slots) > 0 {
			return slots
		}
	}
	return nil
}

func filterPreferred(w *domain.WatchTarget, slots []domain.AvailableSlot) []domain.AvailableSlot {
	if len(w.PreferredTimes) == 0 {
		return slots
	}
	var kept []domain.AvailableSlot
	for _, s := range slots {
		if w.WantsTime(s.Time) {
			kept = append(kept, s)
		}
	}
	return kept
}
