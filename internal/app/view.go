package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/gantt/internal/ui"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.chart.SetSize(ctx.ChartWidth, ctx.ChartHeight)
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.render())
	return v
}

// render draws header, chart and footer stacked vertically
func (m *Model) render() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.chart.View(),
		m.footer.View(),
	)
}
