package platform

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/donaldgifford/tablewatch/internal/metrics"
	"github.com/donaldgifford/tablewatch/pkg/slottime"
	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

// slotElement is the raw content of one time-slot element.
type slotElement struct {
	Text string
	Href string
}

func findSlotElements(html, selector string) ([]slotElement, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	var out []slotElement
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		out = append(out, slotElement{
			Text: strings.TrimSpace(s.Text()),
			Href: strings.TrimSpace(href),
		})
	})
	return out, nil
}

// toSlots normalizes raw elements into slots for q. Elements whose text is
// not a time are dropped and reported in a single log line.
func toSlots(
	kind domain.PlatformKind,
	q Query,
	elems []slotElement,
	bookingURL func(e slotElement, hhmm string) string,
	logger *slog.Logger,
) []domain.AvailableSlot {
	slots := make([]domain.AvailableSlot, 0, len(elems))
	want := domain.WatchTarget{PreferredTimes: q.PreferredTimes}

	var unparsable []string
	for _, e := range elems {
		hhmm, err := slottime.ParseTime(e.Text)
		if err != nil {
			unparsable = append(unparsable, e.Text)
			continue
		}
		if !want.WantsTime(hhmm) {
			continue
		}
		slots = append(slots, domain.AvailableSlot{
			Date:       q.Date,
			Time:       hhmm,
			PartySize:  q.PartySize,
			BookingURL: bookingURL(e, hhmm),
		})
	}

	if len(unparsable) > 0 {
		metrics.UnparsableTimesTotal.WithLabelValues(string(kind)).Add(float64(len(unparsable)))
		logger.Warn("dropped unparsable slot times",
			"platform", kind,
			"identifier", q.Identifier,
			"date", q.Date,
			"count", len(unparsable),
			"sample", unparsable[0],
		)
	}

	return slots
}
