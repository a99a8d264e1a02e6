package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/gantt/internal/ui"
)

// Update handles messages. Everything runs on Bubble Tea's update loop, so
// the interaction state needs no locking.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() {
			return m, nil
		}
		if m.footer.HasFlash() {
			return m, ui.FlashTick()
		}

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.MouseClickMsg:
		m.handleMouseClick(msg)

	case tea.MouseWheelMsg:
		m.handleMouseWheel(msg)
	}

	return m, nil
}

// handleKey runs the shortcut bound to msg, if any
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if s, ok := lookupShortcut(msg.String()); ok {
		return s.Handler(m)
	}
	return m, nil
}
