// Package browser renders booking pages for the platform scrapers. A Session
// is opened once per scheduler lifetime and serves every page fetch in a
// sweep.
package browser

import (
	"context"
	"errors"
	"time"
)

// ErrNotOpen is returned by Render when the session has not been opened or
// has already been closed.
var ErrNotOpen = errors.New("browser session not open")

// Default timeouts applied when a RenderRequest leaves them unset.
const (
	DefaultNavTimeout  = 30 * time.Second
	DefaultWaitTimeout = 10 * time.Second
)

// Wait names a selector to wait for after navigation. A zero Timeout uses the
// request's WaitTimeout.
type Wait struct {
	Selector string
	Timeout  time.Duration
}

// RenderRequest describes one page fetch.
type RenderRequest struct {
	URL         string
	Waits       []Wait
	NavTimeout  time.Duration
	WaitTimeout time.Duration
}

func (r RenderRequest) navTimeout() time.Duration {
	if r.NavTimeout > 0 {
		return r.NavTimeout
	}
	return DefaultNavTimeout
}

func (r RenderRequest) waitTimeout(w Wait) time.Duration {
	if w.Timeout > 0 {
		return w.Timeout
	}
	if r.WaitTimeout > 0 {
		return r.WaitTimeout
	}
	return DefaultWaitTimeout
}

// Page is a rendered document. Ready is false when none of the requested
// wait selectors appeared before their timeouts; HTML is still returned.
type Page struct {
	URL   string
	HTML  string
	Ready bool
}

// Session renders pages. Open and Close bracket the session's lifetime and
// Close is safe to call more than once.
type Session interface {
	Open(ctx context.Context) error
	Render(ctx context.Context, req RenderRequest) (*Page, error)
	Close() error
}
