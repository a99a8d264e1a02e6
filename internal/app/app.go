package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/gantt/internal/clipboard"
	"github.com/zhubert/gantt/internal/interact"
	"github.com/zhubert/gantt/internal/layout"
	"github.com/zhubert/gantt/internal/logger"
	"github.com/zhubert/gantt/internal/ui"
)

// Options configures a Model.
type Options struct {
	FileName  string // shown in the header
	Dropped   int    // rows dropped while loading, shown in the header
	Theme     string
	Chart     ui.ChartOptions
	Clipboard clipboard.Writer // defaults to the system clipboard
}

// Model is the main Bubble Tea model
type Model struct {
	layout *layout.Layout
	ctrl   *interact.Controller

	header *ui.Header
	footer *ui.Footer
	chart  *ui.Chart
	clip   clipboard.Writer

	width  int
	height int
}

// New creates a new app model for a laid-out schedule
func New(l *layout.Layout, opts Options) *Model {
	if opts.Theme != "" {
		ui.SetThemeByName(opts.Theme)
	}
	if opts.Chart == (ui.ChartOptions{}) {
		opts.Chart = ui.DefaultChartOptions()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.System{}
	}

	m := &Model{
		layout: l,
		ctrl:   interact.NewController(l.Bars),
		header: ui.NewHeader(),
		footer: ui.NewFooter(),
		chart:  ui.NewChart(l, opts.Chart),
		clip:   opts.Clipboard,
	}
	m.chart.SetLabels(m.ctrl.Labels)
	m.header.SetFileName(opts.FileName)
	m.header.SetStats(len(l.Bars), l.Colors.Len(), opts.Dropped)
	m.footer.SetBindings(footerBindings())

	logger.WithComponent("app").Debug("model created",
		"rows", len(l.Bars),
		"projects", l.Colors.Len(),
		"dropped", opts.Dropped,
	)
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Controller returns the interaction controller
func (m *Model) Controller() *interact.Controller {
	return m.ctrl
}

// Chart returns the chart component
func (m *Model) Chart() *ui.Chart {
	return m.chart
}

// click dispatches ev through the interaction state machine and marks the
// labels it touched for redraw. A miss changes nothing.
func (m *Model) click(ev interact.Event) bool {
	prev := m.ctrl.State
	if !m.ctrl.Click(ev) {
		return false
	}
	m.chart.Invalidate(m.ctrl.Changed())

	active := ""
	if next := m.ctrl.State.Active; next != interact.None {
		active = m.layout.Bars[next].Entry.Project
	}
	m.header.SetActiveProject(active)

	logger.WithComponent("app").Debug("label toggled",
		"from", prev.Active,
		"to", m.ctrl.State.Active,
		"changed", m.ctrl.Changed(),
	)
	return true
}

// flash shows text in the footer and starts its dismiss timer.
func (m *Model) flash(text string, kind ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, kind)
	return ui.FlashTick()
}
