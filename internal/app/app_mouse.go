package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/gantt/internal/interact"
	"github.com/zhubert/gantt/internal/ui"
)

// handleMouseClick translates a primary click into a chart event. Clicks on
// the header, footer or outside the plot area become out-of-axes events,
// which the state machine ignores.
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) bool {
	if msg.Button != tea.MouseLeft {
		return false
	}
	adjusted := m.adjustMouseClickMsg(msg)
	return m.click(m.chartEvent(adjusted.X, adjusted.Y))
}

// chartEvent converts chart-relative cell coordinates into an interaction
// event.
func (m *Model) chartEvent(x, y int) interact.Event {
	if y < 0 || y >= m.chart.Height() {
		return interact.Event{Kind: interact.KindClick}
	}
	return m.chart.Event(x, y)
}

// adjustMouseClickMsg adjusts mouse click coordinates for the chart.
// Y is shifted by the rows the header occupies.
func (m *Model) adjustMouseClickMsg(msg tea.MouseClickMsg) tea.MouseClickMsg {
	return tea.MouseClickMsg{
		X:      msg.X,
		Y:      msg.Y - ui.GetViewContext().ChartOrigin(),
		Button: msg.Button,
		Mod:    msg.Mod,
	}
}

// handleMouseWheel scrolls the rows
func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) bool {
	switch msg.Button {
	case tea.MouseWheelUp:
		return m.chart.ScrollBy(-ui.ScrollStep)
	case tea.MouseWheelDown:
		return m.chart.ScrollBy(ui.ScrollStep)
	}
	return false
}
