// Package interact implements the click-to-expand state machine for bar
// labels. At most one bar is active at a time; an active bar shows its
// project detail block in the highlight style.
package interact

import (
	"github.com/zhubert/gantt/internal/layout"
	"github.com/zhubert/gantt/internal/schedule"
)

// Label styling.
const (
	DefaultColor    = "white"
	DefaultFontSize = 8
	ActiveColor     = "red"
	ActiveFontSize  = 10
)

// None is the Active value when no bar is expanded.
const None = -1

// State is the interaction state: the index of the active bar, or None.
type State struct {
	Active int
}

// NewState returns the initial state with nothing active.
func NewState() State {
	return State{Active: None}
}

// IsActive reports whether bar i is the active bar.
func (s State) IsActive(i int) bool {
	return s.Active != None && s.Active == i
}

// Kind identifies an input event.
type Kind int

const (
	// KindClick is a primary button press or a keyboard toggle.
	KindClick Kind = iota
)

// Point is a location in data coordinates: X in days since epoch, Y in row
// units with row 0 at the top.
type Point struct {
	X, Y float64
}

// Event is a pointer event translated to data coordinates. InAxes is false
// when the pointer was outside the plot area; X and Y are then meaningless.
type Event struct {
	Kind   Kind
	InAxes bool
	X, Y   float64
}

// ClickAt returns a click event at p in the plot area.
func ClickAt(p Point) Event {
	return Event{Kind: KindClick, InAxes: true, X: p.X, Y: p.Y}
}

// ClickBar returns a click event aimed at the center of bar b. Keyboard
// toggles use it so they go through the same hit test as the mouse.
func ClickBar(b layout.Bar) Event {
	return ClickAt(Point{X: (b.Start + b.End) / 2, Y: float64(b.Row)})
}

// Label is the presentation of one bar's overlaid text.
type Label struct {
	Text     string
	Color    string
	FontSize int
	Bold     bool
}

// Active reports whether the label is in the highlight style.
func (l Label) Active() bool {
	return l.Color == ActiveColor
}

// OriginalLabel is the resting label for b.
func OriginalLabel(b layout.Bar) Label {
	return Label{Text: b.Label, Color: DefaultColor, FontSize: DefaultFontSize, Bold: true}
}

// DetailLabel is the expanded label for bar i.
func DetailLabel(bars []layout.Bar, i int) Label {
	return Label{Text: detail(bars, i), Color: ActiveColor, FontSize: ActiveFontSize, Bold: true}
}

// Change is a label update for one bar.
type Change struct {
	Bar   int
	Label Label
}

// HitTest returns the index of the first bar, in draw order, containing
// (x, y), or None.
func HitTest(bars []layout.Bar, x, y float64) int {
	for i, b := range bars {
		if b.Contains(x, y) {
			return i
		}
	}
	return None
}

// Handle applies ev to state. It returns the new state and the label
// changes to draw, restores before highlights. A miss returns state
// unchanged and no changes.
func Handle(state State, ev Event, bars []layout.Bar) (State, []Change) {
	if ev.Kind != KindClick || !ev.InAxes {
		return state, nil
	}
	hit := HitTest(bars, ev.X, ev.Y)
	if hit == None {
		return state, nil
	}

	if state.Active == hit {
		return NewState(), []Change{{Bar: hit, Label: OriginalLabel(bars[hit])}}
	}

	var changes []Change
	if prev := state.Active; prev != None && prev < len(bars) {
		changes = append(changes, Change{Bar: prev, Label: OriginalLabel(bars[prev])})
	}
	changes = append(changes, Change{Bar: hit, Label: DetailLabel(bars, hit)})
	return State{Active: hit}, changes
}

func detail(bars []layout.Bar, i int) string {
	project := bars[i].Entry.Project
	var entries []schedule.Entry
	for _, b := range bars {
		if b.Entry.Project == project {
			entries = append(entries, b.Entry)
		}
	}
	return layout.Detail(project, entries)
}
