// Package slottime normalizes reservation times and builds the date windows
// a watch is checked over.
package slottime

import (
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

// ErrUnparsableTime is returned when a displayed time matches no known format.
var ErrUnparsableTime = errors.New("unparsable time")

// DefaultWindowDays is the span checked when a watch has no explicit range.
const DefaultWindowDays = 7

const hhmm = "15:04"

var twelveHourLayouts = []string{"3:04 PM", "3:04PM", "3 PM", "3PM"}

var twentyFourHourLayouts = []string{"15:04", "15.04"}

// ParseTime normalizes a displayed reservation time into zero-padded 24-hour
// HH:MM. It accepts 12-hour input with an AM/PM suffix ("7:30 PM", "7:30pm",
// "12:00 AM") and input that is already 24-hour ("19:30", "9:05").
func ParseTime(raw string) (string, error) {
	s := strings.ToUpper(strings.Join(strings.Fields(raw), " "))
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrUnparsableTime)
	}

	layouts := twentyFourHourLayouts
	if strings.HasSuffix(s, "AM") || strings.HasSuffix(s, "PM") {
		if zeroHour(s) {
			return "", fmt.Errorf("%w: hour 0 with AM/PM: %q", ErrUnparsableTime, raw)
		}
		layouts = twelveHourLayouts
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(hhmm), nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnparsableTime, raw)
}

// zeroHour reports whether the leading hour digits of s are all zero. The
// 12-hour clock runs 1 through 12.
func zeroHour(s string) bool {
	digits := strings.TrimLeft(s, "0")
	return len(digits) < len(s) && (digits == "" || digits[0] < '0' || digits[0] > '9')
}

// Format12h renders an HH:MM time as "7:30 PM". Unparsable input is returned
// unchanged.
func Format12h(t string) string {
	parsed, err := time.Parse(hhmm, t)
	if err != nil {
		return t
	}
	return parsed.Format("3:04 PM")
}

// FormatDateReadable renders a YYYY-MM-DD date as "Monday, February 01".
// Unparsable input is returned unchanged.
func FormatDateReadable(d string) string {
	parsed, err := time.Parse(domain.DateLayout, d)
	if err != nil {
		return d
	}
	return parsed.Format("Monday, January 02")
}

// GenerateDateRange returns every date from start to end inclusive, formatted
// YYYY-MM-DD. A start after the end yields an empty slice.
func GenerateDateRange(start, end string) ([]string, error) {
	from, err := time.Parse(domain.DateLayout, start)
	if err != nil {
		return nil, fmt.Errorf("parsing start date %q: %w", start, err)
	}
	to, err := time.Parse(domain.DateLayout, end)
	if err != nil {
		return nil, fmt.Errorf("parsing end date %q: %w", end, err)
	}

	dates := []string{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(domain.DateLayout))
	}
	return dates, nil
}

// Window resolves the dates a watch is checked over: its explicit range when
// both ends are set, otherwise [now, now+DefaultWindowDays]. The result is
// capped at maxDates entries; maxDates <= 0 disables the cap.
func Window(w *domain.WatchTarget, now time.Time, maxDates int) ([]string, error) {
	start, end := w.DateRangeStart, w.DateRangeEnd
	if !w.HasDateRange() {
		start = now.Format(domain.DateLayout)
		end = now.AddDate(0, 0, DefaultWindowDays).Format(domain.DateLayout)
	}

	dates, err := GenerateDateRange(start, end)
	if err != nil {
		return nil, err
	}

	if maxDates > 0 && len(dates) > maxDates {
		dates = dates[:maxDates]
	}
	return dates, nil
}
