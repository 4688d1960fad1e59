package platform

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/donaldgifford/tablewatch/internal/browser"
	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

const (
	defaultResyBaseURL = "https://resy.com"
	defaultResyRegion  = "ny"

	resySlotSelector = `[data-test="time-slot"]`
)

// Resy checks availability on a Resy venue page.
type Resy struct {
	pageScraper
}

// NewResy creates a Resy scraper rendering pages through session.
func NewResy(session browser.Session, opts ...Option) *Resy {
	return &Resy{pageScraper: newPageScraper(session, defaultResyBaseURL, defaultResyRegion, opts)}
}

// Platform implements Scraper.
func (r *Resy) Platform() domain.PlatformKind {
	return domain.PlatformResy
}

// VenueURL returns the venue page for a slug, date and party size.
func (r *Resy) VenueURL(slug, date string, partySize int) string {
	return fmt.Sprintf("%s/cities/%s/%s?date=%s&seats=%d",
		strings.TrimRight(r.baseURL, "/"),
		url.PathEscape(r.region),
		url.PathEscape(slug),
		url.QueryEscape(date),
		partySize,
	)
}

// CheckAvailability implements Scraper. q.Identifier is the venue slug.
func (r *Resy) CheckAvailability(ctx context.Context, q Query) ([]domain.AvailableSlot, error) {
	venueURL := r.VenueURL(q.Identifier, q.Date, q.PartySize)

	return r.fetch(ctx, domain.PlatformResy, q, fetchSpec{
		url:      venueURL,
		waits:    []browser.Wait{{Selector: resySlotSelector}},
		selector: resySlotSelector,
		bookingURL: func(_ slotElement, hhmm, _ string) string {
			return venueURL + "&time=" + hhmm
		},
	})
}
