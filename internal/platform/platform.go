// Package platform provides availability scrapers for reservation platforms
// behind a common interface.
package platform

import (
	"context"
	"fmt"
	"slices"

	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

// Query defines one availability check for a single date.
type Query struct {
	Identifier     string // Resy slug or OpenTable search name
	Date           string // YYYY-MM-DD
	PartySize      int
	PreferredTimes []string // HH:MM; empty accepts every time
}

// Scraper checks a platform for open slots. A nil error with an empty slice
// means the platform showed no availability; a *TransientFetchError means the
// page could not be loaded.
type Scraper interface {
	Platform() domain.PlatformKind
	CheckAvailability(ctx context.Context, q Query) ([]domain.AvailableSlot, error)
}

// Registry maps platform kinds to scrapers.
type Registry struct {
	scrapers map[domain.PlatformKind]Scraper
}

// NewRegistry creates a registry from the given scrapers. A later scraper for
// the same platform replaces an earlier one.
func NewRegistry(scrapers ...Scraper) *Registry {
	r := &Registry{scrapers: make(map[domain.PlatformKind]Scraper, len(scrapers))}
	for _, s := range scrapers {
		r.scrapers[s.Platform()] = s
	}
	return r
}

// Get returns the scraper for a booking target's platform.
func (r *Registry) Get(kind domain.PlatformKind) (Scraper, error) {
	s, ok := r.scrapers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, kind)
	}
	return s, nil
}

// Kinds returns the registered platforms in sorted order.
func (r *Registry) Kinds() []domain.PlatformKind {
	kinds := make([]domain.PlatformKind, 0, len(r.scrapers))
	for k := range r.scrapers {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}
