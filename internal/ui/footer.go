package ui

import (
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// DefaultFlashDuration is how long a flash message stays visible
const DefaultFlashDuration = 3 * time.Second

// FlashType selects the icon and color of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// icon returns the glyph shown before the message text
func (t FlashType) icon() string {
	switch t {
	case FlashError:
		return "✕"
	case FlashWarning:
		return "⚠"
	case FlashSuccess:
		return "✓"
	default:
		return "ℹ"
	}
}

// FlashMessage is a transient status line that replaces the key help
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (m *FlashMessage) IsExpired() bool {
	return time.Since(m.CreatedAt) > m.Duration
}

// FlashTickMsg is delivered periodically while a flash is visible
type FlashTickMsg time.Time

// FlashTick schedules the next expiry check
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []key.Binding
	help         help.Model
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	h := help.New()
	h.ShortSeparator = "  |  "
	applyHelpStyles(&h)

	return &Footer{
		help: h,
		bindings: []key.Binding{
			key.NewBinding(key.WithKeys("click"), key.WithHelp("click", "expand")),
			key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		},
	}
}

func applyHelpStyles(h *help.Model) {
	h.Styles.ShortKey = FooterKeyStyle
	h.Styles.ShortDesc = FooterDescStyle
	h.Styles.ShortSeparator = FooterSepStyle
	h.Styles.Ellipsis = FooterSepStyle
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings replaces the bindings shown in the help line
func (f *Footer) SetBindings(bindings []key.Binding) {
	f.bindings = bindings
}

// SetFlash shows a message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, t FlashType) {
	f.SetFlashWithDuration(text, t, DefaultFlashDuration)
}

// SetFlashWithDuration shows a message for d
func (f *Footer) SetFlashWithDuration(text string, t FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      t,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes the current flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is set
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired removes an expired flash and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// View renders the footer
func (f *Footer) View() string {
	var content string
	if f.flashMessage != nil {
		content = f.flashView()
	} else {
		applyHelpStyles(&f.help)
		content = f.help.ShortHelpView(f.bindings)
	}

	style := FooterStyle
	if f.width > 0 {
		// Padding(0, 1) takes one cell each side
		content = ansi.Truncate(content, max(0, f.width-2), GlyphEllipsis)
		style = style.Width(f.width)
	}
	return style.Render(content)
}

func (f *Footer) flashView() string {
	msg := f.flashMessage
	text := msg.Type.icon() + " " + msg.Text
	switch msg.Type {
	case FlashError:
		return FlashErrorStyle.Render(text)
	case FlashWarning:
		return FlashWarningStyle.Render(text)
	case FlashSuccess:
		return FlashSuccessStyle.Render(text)
	default:
		return FlashInfoStyle.Render(text)
	}
}
