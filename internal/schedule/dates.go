package schedule

import (
	"strings"
	"time"
)

// DefaultLayouts are tried in order; the first layout that parses wins.
//
// Numeric slash dates are month first (01/02/2024 is 2 January 2024) and
// numeric dash dates with a trailing year are day first (01-02-2024 is
// 1 February 2024).
var DefaultLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"2 Jan 2006",
	"02 Jan 2006",
	"2 January 2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
	"Mon, 02 Jan 2006",
	"Jan 2006",
	"January 2006",
}

// ParseDate interprets s with the given layouts (DefaultLayouts when nil).
// Results are in UTC with the wall-clock fields as written; an explicit
// offset is dropped rather than applied.
func ParseDate(s string, layouts []string) (time.Time, bool) {
	if layouts == nil {
		layouts = DefaultLayouts
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return wallClock(t), true
		}
	}
	return time.Time{}, false
}

func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// MergeLayouts returns extra followed by the defaults, skipping duplicates.
func MergeLayouts(extra []string) []string {
	if len(extra) == 0 {
		return DefaultLayouts
	}
	seen := make(map[string]bool, len(extra)+len(DefaultLayouts))
	merged := make([]string, 0, len(extra)+len(DefaultLayouts))
	for _, l := range append(append([]string{}, extra...), DefaultLayouts...) {
		if seen[l] {
			continue
		}
		seen[l] = true
		merged = append(merged, l)
	}
	return merged
}
