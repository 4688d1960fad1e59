package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/tablewatch/internal/browser"
	"github.com/donaldgifford/tablewatch/internal/metrics"
	"github.com/donaldgifford/tablewatch/internal/store"
)

const (
	// JobSweep is the job name recorded for sweep runs and locks.
	JobSweep = "sweep"

	defaultLockTTL = 30 * time.Minute
	staleJobAge    = 2 * time.Hour
)

// Scheduler owns the recurring sweep and the shared browser session. A
// scheduler is created by the composition root and driven through Start and
// Stop.
type Scheduler struct {
	cron    *cron.Cron
	engine  *Engine
	store   store.Store
	session browser.Session
	log     *slog.Logger

	holder       string
	lockTTL      time.Duration
	sweepEntryID cron.EntryID

	// running is held for the duration of every sweep, scheduled or manual.
	running  sync.Mutex
	sweeping atomic.Bool
	started  atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc

	stopOnce sync.Once
	stopped  context.Context
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithLockTTL sets how long the cross-replica sweep lock is held before it
// may be taken over.
func WithLockTTL(d time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		s.lockTTL = d
	}
}

// WithSession sets the browser session opened on Start and closed on Stop.
func WithSession(sess browser.Session) SchedulerOption {
	return func(s *Scheduler) {
		s.session = sess
	}
}

// NewScheduler creates a Scheduler that runs a sweep every sweepInterval.
func NewScheduler(
	eng *Engine,
	s store.Store,
	sweepInterval time.Duration,
	log *slog.Logger,
	opts ...SchedulerOption,
) (*Scheduler, error) {
	cl := cronLogger{log: log}
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	ctx, cancel := context.WithCancel(context.Background())
	sched := &Scheduler{
		cron:    c,
		engine:  eng,
		store:   s,
		log:     log,
		holder:  uuid.NewString(),
		lockTTL: defaultLockTTL,
		ctx:     ctx,
		cancel:  cancel,
	}
	for _, opt := range opts {
		opt(sched)
	}

	id, err := c.AddFunc("@every "+sweepInterval.String(), sched.runScheduledSweep)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("registering sweep: %w", err)
	}
	sched.sweepEntryID = id

	return sched, nil
}

// Start opens the browser session and then starts the cron loop. If the
// session cannot be opened nothing is started.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.session != nil {
		if err := s.session.Open(ctx); err != nil {
			return fmt.Errorf("opening browser session: %w", err)
		}
	}

	s.RecoverStaleJobRuns(ctx)
	s.cron.Start()
	s.started.Store(true)
	s.SyncNextRunTimestamps()
	s.log.Info("scheduler started", "holder", s.holder)
	return nil
}

// Stop halts the cron loop, lets an in-flight sweep finish its current
// request, and then closes the browser session. It is safe to call more than
// once; every call returns the same context, done once shutdown completes.
func (s *Scheduler) Stop() context.Context {
	s.stopOnce.Do(func() {
		s.log.Info("scheduler stopping")
		s.cancel()

		done, finish := context.WithCancel(context.Background())
		s.stopped = done

		cronDone := s.cron.Stop()
		go func() {
			defer finish()
			<-cronDone.Done()

			s.running.Lock()
			defer s.running.Unlock()

			if s.session != nil {
				if err := s.session.Close(); err != nil {
					s.log.Warn("closing browser session", "error", err)
				}
			}
			s.log.Info("scheduler stopped")
		}()
	})
	return s.stopped
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// NextSweep returns when the next scheduled sweep starts, or the zero time
// before Start and after Stop.
func (s *Scheduler) NextSweep() time.Time {
	if !s.started.Load() || s.ctx.Err() != nil {
		return time.Time{}
	}
	return s.cron.Entry(s.sweepEntryID).Next
}

// SweepInProgress reports whether this process is sweeping right now.
func (s *Scheduler) SweepInProgress() bool {
	return s.sweeping.Load()
}

// Ready reports an error until Start has succeeded and after Stop.
func (s *Scheduler) Ready(context.Context) error {
	switch {
	case !s.started.Load():
		return errors.New("scheduler not started")
	case s.ctx.Err() != nil:
		return errors.New("scheduler stopped")
	}
	return nil
}

// SyncNextRunTimestamps publishes the next scheduled sweep time.
func (s *Scheduler) SyncNextRunTimestamps() {
	entry := s.cron.Entry(s.sweepEntryID)
	if !entry.Next.IsZero() {
		metrics.SchedulerNextSweepTimestamp.Set(float64(entry.Next.Unix()))
	}
}

// RecoverStaleJobRuns marks runs left "running" by a crashed process.
func (s *Scheduler) RecoverStaleJobRuns(ctx context.Context) {
	n, err := s.store.RecoverStaleJobRuns(ctx, staleJobAge)
	if err != nil {
		s.log.Error("recovering stale job runs", "error", err)
		return
	}
	if n > 0 {
		s.log.Warn("marked stale job runs as crashed", "count", n)
	}
}

// TriggerSweep runs a sweep now. It returns ErrSweepInProgress when one is
// already running in this process and ErrSweepLocked when another instance
// is sweeping.
func (s *Scheduler) TriggerSweep(ctx context.Context) (SweepResult, error) {
	if !s.running.TryLock() {
		return SweepResult{}, ErrSweepInProgress
	}
	defer s.running.Unlock()

	return s.sweep(ctx, "manual")
}

func (s *Scheduler) runScheduledSweep() {
	defer s.SyncNextRunTimestamps()

	if !s.running.TryLock() {
		s.log.Info("sweep skipped, previous sweep still running")
		metrics.SweepsTotal.WithLabelValues("scheduled", "skipped").Inc()
		return
	}
	defer s.running.Unlock()

	_, err := s.sweep(s.ctx, "scheduled")
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, ErrSweepLocked) {
		s.log.Error("scheduled sweep failed", "error", err)
	}
}

func (s *Scheduler) sweep(ctx context.Context, trigger string) (SweepResult, error) {
	s.sweeping.Store(true)
	defer s.sweeping.Store(false)

	s.log.Info("sweep starting", "trigger", trigger)

	var res SweepResult
	err := s.runJob(ctx, JobSweep, s.lockTTL, func(ctx context.Context) (int, error) {
		var err error
		res, err = s.engine.RunSweep(ctx)
		return res.Targets, err
	})

	status := "succeeded"
	switch {
	case errors.Is(err, ErrSweepLocked):
		status = "skipped"
	case err != nil:
		status = "failed"
	default:
		metrics.LastSweepTimestamp.SetToCurrentTime()
	}
	metrics.SweepsTotal.WithLabelValues(trigger, status).Inc()

	return res, err
}

// runJob wraps fn with the cross-replica lock and a job_runs row. Store
// failures around fn are logged and do not prevent it from running.
func (s *Scheduler) runJob(
	ctx context.Context,
	jobName string,
	ttl time.Duration,
	fn func(ctx context.Context) (int, error),
) error {
	bg := context.WithoutCancel(ctx)

	acquired, err := s.store.AcquireSchedulerLock(ctx, jobName, s.holder, ttl)
	if err != nil {
		s.log.Warn("acquiring scheduler lock failed, running anyway", "job", jobName, "error", err)
	} else if !acquired {
		s.log.Info("job locked by another instance, skipping", "job", jobName)
		return ErrSweepLocked
	}
	if acquired {
		defer func() {
			if err := s.store.ReleaseSchedulerLock(bg, jobName, s.holder); err != nil {
				s.log.Warn("releasing scheduler lock failed", "job", jobName, "error", err)
			}
		}()
	}

	runID, err := s.store.InsertJobRun(ctx, jobName)
	if err != nil {
		s.log.Warn("recording job run failed", "job", jobName, "error", err)
	}

	rows, jobErr := fn(ctx)

	if runID != "" {
		status, errText := "succeeded", ""
		if jobErr != nil {
			status, errText = "failed", jobErr.Error()
		}
		if err := s.store.CompleteJobRun(bg, runID, status, errText, rows); err != nil {
			s.log.Warn("completing job run failed", "job", jobName, "error", err)
		}
	}

	return jobErr
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
