package platform

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces out page fetches: each Wait sleeps a random duration in
// [min, max] and then honors a minimum interval between calls.
type Pacer struct {
	limiter *rate.Limiter
	min     time.Duration
	max     time.Duration
	randN   func(n int64) int64
	sleep   func(ctx context.Context, d time.Duration) error
}

// PacerOption configures a Pacer.
type PacerOption func(*Pacer)

// WithSleepFunc overrides how the pacer sleeps. Tests use it to record
// delays without waiting.
func WithSleepFunc(f func(ctx context.Context, d time.Duration) error) PacerOption {
	return func(p *Pacer) {
		p.sleep = f
	}
}

// WithRandFunc overrides the random source. f returns a value in [0, n).
func WithRandFunc(f func(n int64) int64) PacerOption {
	return func(p *Pacer) {
		p.randN = f
	}
}

// NewPacer creates a pacer with a jitter range and a minimum interval between
// calls. minInterval <= 0 disables the interval.
func NewPacer(minJitter, maxJitter, minInterval time.Duration, opts ...PacerOption) *Pacer {
	if maxJitter < minJitter {
		maxJitter = minJitter
	}
	p := &Pacer{
		min:   minJitter,
		max:   maxJitter,
		randN: rand.Int64N,
		sleep: SleepContext,
	}
	if minInterval > 0 {
		p.limiter = rate.NewLimiter(rate.Every(minInterval), 1)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Jitter returns the next random delay without sleeping.
func (p *Pacer) Jitter() time.Duration {
	span := int64(p.max - p.min)
	if span <= 0 {
		return p.min
	}
	return p.min + time.Duration(p.randN(span+1))
}

// Wait sleeps for a random jitter and then for the minimum interval. It
// returns early with the context's error when ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if d := p.Jitter(); d > 0 {
		if err := p.sleep(ctx, d); err != nil {
			return err
		}
	}
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("pacer wait: %w", err)
		}
	}
	return nil
}

// SleepContext sleeps for d or until ctx is done.
func SleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
