package platform

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/donaldgifford/tablewatch/internal/browser"
	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

const (
	defaultOpenTableBaseURL = "https://www.opentable.com"
	defaultOpenTableMetroID = "8"

	// Searches are anchored at 19:00; the results page lists the slots
	// around that time.
	openTableSearchTime = "19:00"

	openTableResultsSelector = `[data-test="times-702"]`
	openTableSlotClass       = ".timeSlot"
	openTableSlotSelector    = `.timeSlot, [data-test^="time-"]`

	openTableFallbackWait = 5 * time.Second
)

// OpenTable checks availability through OpenTable's restaurant search.
type OpenTable struct {
	pageScraper
}

// NewOpenTable creates an OpenTable scraper rendering pages through session.
func NewOpenTable(session browser.Session, opts ...Option) *OpenTable {
	return &OpenTable{pageScraper: newPageScraper(session, defaultOpenTableBaseURL, defaultOpenTableMetroID, opts)}
}

// Platform implements Scraper.
func (o *OpenTable) Platform() domain.PlatformKind {
	return domain.PlatformOpenTable
}

// SearchURL returns the search page for a restaurant name, date and party
// size. Parameters keep the order term, covers, dateTime, metroId.
func (o *OpenTable) SearchURL(name, date string, partySize int) string {
	return fmt.Sprintf("%s/s?term=%s&covers=%d&dateTime=%s&metroId=%s",
		strings.TrimRight(o.baseURL, "/"),
		url.QueryEscape(name),
		partySize,
		url.QueryEscape(date+"T"+openTableSearchTime),
		url.QueryEscape(o.region),
	)
}

// CheckAvailability implements Scraper. q.Identifier is the restaurant name.
func (o *OpenTable) CheckAvailability(ctx context.Context, q Query) ([]domain.AvailableSlot, error) {
	searchURL := o.SearchURL(q.Identifier, q.Date, q.PartySize)

	return o.fetch(ctx, domain.PlatformOpenTable, q, fetchSpec{
		url: searchURL,
		waits: []browser.Wait{
			{Selector: openTableResultsSelector},
			{Selector: openTableSlotClass, Timeout: openTableFallbackWait},
		},
		selector: openTableSlotSelector,
		bookingURL: func(e slotElement, _, pageURL string) string {
			return resolveHref(pageURL, e.Href, searchURL)
		},
	})
}

// resolveHref resolves href against pageURL, returning fallback when href is
// empty or malformed.
func resolveHref(pageURL, href, fallback string) string {
	if href == "" {
		return fallback
	}
	ref, err := url.Parse(href)
	if err != nil {
		return fallback
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return fallback
	}
	return base.ResolveReference(ref).String()
}
