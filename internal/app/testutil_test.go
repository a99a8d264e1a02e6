package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/gantt/internal/clipboard"
	"github.com/zhubert/gantt/internal/interact"
	"github.com/zhubert/gantt/internal/keys"
	"github.com/zhubert/gantt/internal/layout"
	"github.com/zhubert/gantt/internal/schedule"
	"github.com/zhubert/gantt/internal/ui"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// testEntries is the three-row schedule used throughout the app tests:
// R1 and R2 share project P1, R3 is alone in P2.
func testEntries() []schedule.Entry {
	return []schedule.Entry{
		{Resource: "R1", Project: "P1", Start: date(2024, 1, 1), End: date(2024, 2, 1)},
		{Resource: "R2", Project: "P1", Start: date(2024, 2, 1), End: date(2024, 3, 15)},
		{Resource: "R3", Project: "P2", Start: date(2024, 1, 15), End: date(2024, 1, 20)},
	}
}

// testModel creates a test Model writing to an in-memory clipboard.
func testModel(entries []schedule.Entry) (*Model, *clipboard.Memory) {
	clip := &clipboard.Memory{}
	m := New(layout.Build(entries, layout.DefaultTextWidth), Options{
		FileName:  "test.csv",
		Chart:     ui.DefaultChartOptions(),
		Clipboard: clip,
	})
	return m, clip
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(entries []schedule.Entry, width, height int) (*Model, *clipboard.Memory) {
	m, clip := testModel(entries)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m, clip
}

// keyPress creates a tea.KeyPressMsg for the given key string.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Home:
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case keys.End:
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.Space:
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the command.
func sendKey(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// mouseClick creates a tea.MouseClickMsg at the given coordinates.
func mouseClick(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseLeft,
	}
}

// barScreenCell finds a terminal cell that lands on bar i.
func barScreenCell(m *Model, i int) (int, int, bool) {
	px, py, pw, ph := m.chart.PlotBounds()
	for y := py; y < py+ph; y++ {
		for x := px; x < px+pw; x++ {
			if m.chart.BarAt(x, y) == i {
				return x, y + ui.HeaderHeight, true
			}
		}
	}
	return 0, 0, false
}

// emptyScreenCell finds a terminal cell inside the plot that hits no bar.
func emptyScreenCell(m *Model) (int, int, bool) {
	px, py, pw, ph := m.chart.PlotBounds()
	for y := py; y < py+ph; y++ {
		for x := px; x < px+pw; x++ {
			if m.chart.BarAt(x, y) == interact.None {
				return x, y + ui.HeaderHeight, true
			}
		}
	}
	return 0, 0, false
}
