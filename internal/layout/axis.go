package layout

import (
	"math"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// ToNum converts t to fractional days since 1970-01-01 UTC.
func ToNum(t time.Time) float64 {
	secs := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return secs / secondsPerDay
}

// FromNum is the inverse of ToNum, rounded to the second.
func FromNum(days float64) time.Time {
	return time.Unix(int64(math.Round(days*secondsPerDay)), 0).UTC()
}

// MonthLabelLayout formats major tick labels and detail dates.
const MonthLabelLayout = "Jan 2006"

// Tick is a major x-axis tick.
type Tick struct {
	Value float64 // days since epoch
	Label string
}

// MonthTicks returns a tick at the first of every month within [lo, hi].
func MonthTicks(lo, hi float64) []Tick {
	if hi < lo {
		return nil
	}
	start := FromNum(lo)
	m := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	if ToNum(m) < lo {
		m = m.AddDate(0, 1, 0)
	}

	var ticks []Tick
	for v := ToNum(m); v <= hi; v = ToNum(m) {
		ticks = append(ticks, Tick{Value: v, Label: m.Format(MonthLabelLayout)})
		m = m.AddDate(0, 1, 0)
	}
	return ticks
}
