package platform

import (
	"context"
	"log/slog"
	"time"

	"github.com/donaldgifford/tablewatch/internal/browser"
	"github.com/donaldgifford/tablewatch/internal/metrics"
	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

// pageScraper holds what the platform adapters share: a browser session,
// pacing and timeouts.
type pageScraper struct {
	session     browser.Session
	pacer       *Pacer
	baseURL     string
	region      string
	navTimeout  time.Duration
	waitTimeout time.Duration
	logger      *slog.Logger
}

// Option configures a platform scraper.
type Option func(*pageScraper)

// WithBaseURL overrides the platform's base URL.
func WithBaseURL(u string) Option {
	return func(s *pageScraper) {
		s.baseURL = u
	}
}

// WithRegion overrides the platform region: the Resy city code or the
// OpenTable metro id.
func WithRegion(r string) Option {
	return func(s *pageScraper) {
		s.region = r
	}
}

// WithPacer sets the pacer consulted before every fetch.
func WithPacer(p *Pacer) Option {
	return func(s *pageScraper) {
		s.pacer = p
	}
}

// WithTimeouts sets the navigation and content-wait timeouts.
func WithTimeouts(nav, wait time.Duration) Option {
	return func(s *pageScraper) {
		s.navTimeout = nav
		s.waitTimeout = wait
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *pageScraper) {
		s.logger = l
	}
}

func newPageScraper(session browser.Session, baseURL, region string, opts []Option) pageScraper {
	s := pageScraper{
		session:     session,
		pacer:       NewPacer(time.Second, 3*time.Second, 0),
		baseURL:     baseURL,
		region:      region,
		navTimeout:  browser.DefaultNavTimeout,
		waitTimeout: browser.DefaultWaitTimeout,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

type fetchSpec struct {
	url        string
	waits      []browser.Wait
	selector   string
	bookingURL func(e slotElement, hhmm string, pageURL string) string
}

func (s *pageScraper) fetch(
	ctx context.Context,
	kind domain.PlatformKind,
	q Query,
	spec fetchSpec,
) ([]domain.AvailableSlot, error) {
	start := time.Now()
	defer func() {
		metrics.ScrapeDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	}()

	if s.pacer != nil {
		if err := s.pacer.Wait(ctx); err != nil {
			return nil, err
		}
	}

	page, err := s.session.Render(ctx, browser.RenderRequest{
		URL:         spec.url,
		Waits:       spec.waits,
		NavTimeout:  s.navTimeout,
		WaitTimeout: s.waitTimeout,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		metrics.ScrapeRequestsTotal.WithLabelValues(string(kind), "error").Inc()
		return nil, &TransientFetchError{Platform: kind, URL: spec.url, Err: err}
	}

	if !page.Ready {
		metrics.ScrapeRequestsTotal.WithLabelValues(string(kind), "empty").Inc()
		s.logger.Debug("no availability shown", "platform", kind, "identifier", q.Identifier, "date", q.Date)
		return []domain.AvailableSlot{}, nil
	}

	elems, err := findSlotElements(page.HTML, spec.selector)
	if err != nil {
		metrics.ScrapeRequestsTotal.WithLabelValues(string(kind), "error").Inc()
		return nil, &TransientFetchError{Platform: kind, URL: spec.url, Err: err}
	}

	pageURL := page.URL
	if pageURL == "" {
		pageURL = spec.url
	}
	slots := toSlots(kind, q, elems, func(e slotElement, hhmm string) string {
		return spec.bookingURL(e, hhmm, pageURL)
	}, s.logger)

	metrics.ScrapeRequestsTotal.WithLabelValues(string(kind), "ok").Inc()
	metrics.SlotsFoundTotal.WithLabelValues(string(kind)).Add(float64(len(slots)))
	s.logger.Debug("availability checked",
		"platform", kind,
		"identifier", q.Identifier,
		"date", q.Date,
		"slots", len(slots),
	)

	return slots, nil
}
