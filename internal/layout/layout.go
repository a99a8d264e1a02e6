// Package layout turns schedule entries into everything the chart needs to
// draw them: numeric spans, row slots, project colors and wrapped labels.
package layout

import (
	"fmt"
	"strings"

	"github.com/zhubert/gantt/internal/schedule"
)

const (
	// DefaultTextWidth is the wrap width for row (resource) labels.
	DefaultTextWidth = 30

	// BarLabelWidth is the wrap width for labels drawn on bars.
	BarLabelWidth = 15

	// LegendLabelWidth is the wrap width for legend entries.
	LegendLabelWidth = 15

	// BarHeight is the bar thickness as a fraction of row spacing.
	BarHeight = 0.6
)

// Bar is the derived view of one entry.
type Bar struct {
	Start    float64 // days since epoch
	End      float64
	Duration float64 // End - Start, may be zero or negative
	Row      int
	Color    string
	Label    string // wrapped project name, the label shown by default
	RowLabel string // wrapped resource name
	Entry    schedule.Entry
}

// Contains reports whether the data point (x, y) lies on the bar. Bars span
// BarHeight row units centered on their row; reversed spans still hit.
func (b Bar) Contains(x, y float64) bool {
	return b.Spans(x) && b.InRow(y)
}

// Spans reports whether x lies within the bar's time span.
func (b Bar) Spans(x float64) bool {
	lo, hi := b.Start, b.End
	if hi < lo {
		lo, hi = hi, lo
	}
	return x >= lo && x <= hi
}

// InRow reports whether y lies within the bar's thickness.
func (b Bar) InRow(y float64) bool {
	half := BarHeight / 2
	row := float64(b.Row)
	return y >= row-half && y <= row+half
}

// LegendItem is one swatch in the legend.
type LegendItem struct {
	Project string
	Label   string // wrapped project name
	Color   string
}

// Layout is the complete rendering input for a schedule.
type Layout struct {
	Entries  []schedule.Entry
	Colors   *ColorMap
	Bars     []Bar
	Legend   []LegendItem
	MinStart float64 // x-axis domain
	MaxEnd   float64
}

// Build lays out entries in input order. textWidth is the wrap width for
// resource labels; values <= 0 use DefaultTextWidth.
func Build(entries []schedule.Entry, textWidth int) *Layout {
	if textWidth <= 0 {
		textWidth = DefaultTextWidth
	}

	colors := NewColorMap(entries)
	l := &Layout{
		Entries: entries,
		Colors:  colors,
		Bars:    make([]Bar, len(entries)),
	}

	for i, e := range entries {
		start, end := ToNum(e.Start), ToNum(e.End)
		l.Bars[i] = Bar{
			Start:    start,
			End:      end,
			Duration: end - start,
			Row:      i,
			Color:    colors.Color(e.Project),
			Label:    Wrap(e.Project, BarLabelWidth),
			RowLabel: Wrap(e.Resource, textWidth),
			Entry:    e,
		}
		if i == 0 || start < l.MinStart {
			l.MinStart = start
		}
		if i == 0 || end > l.MaxEnd {
			l.MaxEnd = end
		}
	}

	for _, p := range colors.Projects() {
		l.Legend = append(l.Legend, LegendItem{
			Project: p,
			Label:   Wrap(p, LegendLabelWidth),
			Color:   colors.Color(p),
		})
	}

	return l
}

// Empty reports whether there is nothing to draw.
func (l *Layout) Empty() bool {
	return len(l.Bars) == 0
}

// Ticks returns the month ticks of the x-axis domain.
func (l *Layout) Ticks() []Tick {
	return MonthTicks(l.MinStart, l.MaxEnd)
}

// Detail returns the expanded label for the bar in row: a block listing
// every entry that shares its project, not only the row itself.
func (l *Layout) Detail(row int) string {
	project := l.Entries[row].Project
	return Detail(project, schedule.ByProject(l.Entries, project))
}

// Detail formats the detail block for project from its entries.
func Detail(project string, entries []schedule.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Project: %s\n", project)
	for _, e := range entries {
		fmt.Fprintf(&b, "Resource: %s\n", e.Resource)
		fmt.Fprintf(&b, "Start: %s\n", e.Start.Format(MonthLabelLayout))
		fmt.Fprintf(&b, "End: %s\n", e.End.Format(MonthLabelLayout))
		fmt.Fprintf(&b, "Duration: %d days\n\n", e.Days())
	}
	return strings.TrimSpace(b.String())
}
