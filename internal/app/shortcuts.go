package app

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/gantt/internal/interact"
	"github.com/zhubert/gantt/internal/keys"
	"github.com/zhubert/gantt/internal/logger"
	"github.com/zhubert/gantt/internal/ui"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for the keys the chart understands.
type Shortcut struct {
	Keys        []string                            // Key strings as reported by tea.KeyPressMsg.String()
	DisplayKey  string                              // Display name in the footer; defaults to Keys[0]
	Description string                              // Human-readable description
	InFooter    bool                                // Listed in the footer key help
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
}

// ShortcutRegistry lists every keyboard shortcut.
var ShortcutRegistry = []Shortcut{
	{
		Keys:        []string{keys.Tab},
		Description: "next bar",
		InFooter:    true,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m.moveCursor(1) },
	},
	{
		Keys:        []string{keys.ShiftTab},
		Description: "previous bar",
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m.moveCursor(-1) },
	},
	{
		Keys:        []string{keys.Enter, keys.Space},
		DisplayKey:  "enter",
		Description: "toggle",
		InFooter:    true,
		Handler:     shortcutToggle,
	},
	{
		Keys:        []string{keys.Up, "k"},
		Description: "scroll up",
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { m.chart.ScrollBy(-1); return m, nil },
	},
	{
		Keys:        []string{keys.Down, "j"},
		DisplayKey:  "↑/↓",
		Description: "scroll",
		InFooter:    true,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { m.chart.ScrollBy(1); return m, nil },
	},
	{
		Keys:        []string{keys.PgUp},
		Description: "page up",
		Handler: func(m *Model) (tea.Model, tea.Cmd) {
			m.chart.ScrollBy(-m.chart.PageSize())
			return m, nil
		},
	},
	{
		Keys:        []string{keys.PgDown},
		Description: "page down",
		Handler: func(m *Model) (tea.Model, tea.Cmd) {
			m.chart.ScrollBy(m.chart.PageSize())
			return m, nil
		},
	},
	{
		Keys:        []string{keys.Home},
		Description: "first row",
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { m.chart.ScrollToTop(); return m, nil },
	},
	{
		Keys:        []string{keys.End},
		Description: "last row",
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { m.chart.ScrollToBottom(); return m, nil },
	},
	{
		Keys:        []string{"y"},
		Description: "copy",
		InFooter:    true,
		Handler:     shortcutCopyDetail,
	},
	{
		Keys:        []string{"q", keys.CtrlC, keys.Escape},
		Description: "quit",
		InFooter:    true,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return m, tea.Quit },
	},
}

// lookupShortcut finds the shortcut bound to k
func lookupShortcut(k string) (Shortcut, bool) {
	for _, s := range ShortcutRegistry {
		for _, bound := range s.Keys {
			if bound == k {
				return s, true
			}
		}
	}
	return Shortcut{}, false
}

// footerBindings builds the footer key help from the registry. Clicking is
// listed first since it is the main interaction.
func footerBindings() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("click"), key.WithHelp("click", "expand")),
	}
	for _, s := range ShortcutRegistry {
		if !s.InFooter {
			continue
		}
		display := s.DisplayKey
		if display == "" {
			display = s.Keys[0]
		}
		bindings = append(bindings, key.NewBinding(key.WithKeys(s.Keys...), key.WithHelp(display, s.Description)))
	}
	return bindings
}

// moveCursor moves the keyboard cursor by delta bars, wrapping around
func (m *Model) moveCursor(delta int) (tea.Model, tea.Cmd) {
	n := len(m.layout.Bars)
	if n == 0 {
		return m, nil
	}
	cur := m.chart.Cursor()
	var next int
	switch {
	case cur == interact.None && delta > 0:
		next = 0
	case cur == interact.None:
		next = n - 1
	default:
		next = ((cur+delta)%n + n) % n
	}
	m.chart.SetCursor(next)
	return m, nil
}

// shortcutToggle clicks the bar under the keyboard cursor
func shortcutToggle(m *Model) (tea.Model, tea.Cmd) {
	cur := m.chart.Cursor()
	if cur == interact.None {
		return m, m.flash("Press tab to select a bar", ui.FlashInfo)
	}
	m.click(interact.ClickBar(m.layout.Bars[cur]))
	return m, nil
}

// shortcutCopyDetail copies the expanded detail block to the clipboard
func shortcutCopyDetail(m *Model) (tea.Model, tea.Cmd) {
	text, ok := m.ctrl.ActiveDetail()
	if !ok {
		return m, m.flash("No bar expanded", ui.FlashWarning)
	}
	if err := m.clip.WriteText(text); err != nil {
		logger.WithComponent("app").Warn("copy failed", "error", err)
		return m, m.flash("Clipboard unavailable", ui.FlashError)
	}
	lines := strings.Count(text, "\n") + 1
	return m, m.flash(plural(lines, "line")+" copied", ui.FlashSuccess)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
