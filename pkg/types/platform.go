package domain

import (
	"regexp"
	"strings"
)

// PlatformKind names a reservation platform.
type PlatformKind string

// Platform constants. PlatformUnconfigured is the zero value.
const (
	PlatformUnconfigured PlatformKind = ""
	PlatformResy         PlatformKind = "resy"
	PlatformOpenTable    PlatformKind = "opentable"
)

// BookingTarget is the tagged variant Resy{slug} | OpenTable{searchName} |
// Unconfigured. Identifier holds the slug or the search name.
type BookingTarget struct {
	Kind       PlatformKind `json:"kind,omitempty"`
	Identifier string       `json:"identifier,omitempty"`
}

// ResyTarget returns a Resy booking target for the given slug.
func ResyTarget(slug string) BookingTarget {
	return BookingTarget{Kind: PlatformResy, Identifier: slug}
}

// OpenTableTarget returns an OpenTable booking target searched by name.
func OpenTableTarget(searchName string) BookingTarget {
	return BookingTarget{Kind: PlatformOpenTable, Identifier: searchName}
}

// Configured reports whether the target names a platform and an identifier.
func (b BookingTarget) Configured() bool {
	return b.Kind != PlatformUnconfigured && b.Identifier != ""
}

func (b BookingTarget) String() string {
	if !b.Configured() {
		return "unconfigured"
	}
	return string(b.Kind) + "{" + b.Identifier + "}"
}

// BookingURLs are the raw per-platform links entered for a restaurant.
type BookingURLs struct {
	Resy      string `json:"resy,omitempty"      yaml:"resy"`
	OpenTable string `json:"opentable,omitempty" yaml:"opentable"`
	Google    string `json:"google,omitempty"    yaml:"google"`
}

var resySlugPattern = regexp.MustCompile(`resy\.com/cities/\w+/([^/?#]+)`)

// ResySlug extracts the venue slug from a Resy URL such as
// https://resy.com/cities/ny/lilia. It returns "" when the URL does not match.
func ResySlug(url string) string {
	m := resySlugPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

// ResolveBookingTargets decides a restaurant's primary and secondary targets
// from its raw URLs. Resy wins the primary slot when its URL yields a slug;
// OpenTable is searched by restaurant name and becomes the secondary, or the
// primary when Resy is absent.
func ResolveBookingTargets(name string, urls BookingURLs) (primary, secondary BookingTarget) {
	var resy, ot BookingTarget

	if slug := ResySlug(urls.Resy); slug != "" {
		resy = ResyTarget(slug)
	}
	if strings.TrimSpace(urls.OpenTable) != "" && strings.TrimSpace(name) != "" {
		ot = OpenTableTarget(strings.TrimSpace(name))
	}

	switch {
	case resy.Configured():
		return resy, ot
	case ot.Configured():
		return ot, BookingTarget{}
	default:
		return BookingTarget{}, BookingTarget{}
	}
}
