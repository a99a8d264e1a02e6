package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

const headerTitle = " gantt"

// Header represents the top header bar
type Header struct {
	width    int
	fileName string
	rows     int
	projects int
	dropped  int
	active   string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetFileName sets the schedule file name to display
func (h *Header) SetFileName(name string) {
	h.fileName = name
}

// SetStats sets the row, project and dropped-row counts
func (h *Header) SetStats(rows, projects, dropped int) {
	h.rows = rows
	h.projects = projects
	h.dropped = dropped
}

// SetActiveProject sets the project of the expanded bar, or "" for none
func (h *Header) SetActiveProject(project string) {
	h.active = project
}

// summary returns the right-hand text
func (h *Header) summary() string {
	parts := []string{
		plural(h.rows, "row"),
		plural(h.projects, "project"),
	}
	if h.dropped > 0 {
		parts = append(parts, fmt.Sprintf("%d dropped", h.dropped))
	}
	if h.active != "" {
		parts = append(parts, "▸ "+h.active)
	}
	return strings.Join(parts, " · ") + " "
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// View renders the header
func (h *Header) View() string {
	leftText := headerTitle
	if h.fileName != "" {
		leftText += "  " + h.fileName
	}
	rightText := h.summary()

	paddingLen := h.width - ansi.StringWidth(leftText) - ansi.StringWidth(rightText)
	if paddingLen < 1 {
		leftText = ansi.Truncate(leftText, max(0, h.width-ansi.StringWidth(rightText)-1), GlyphEllipsis)
		paddingLen = max(0, h.width-ansi.StringWidth(leftText)-ansi.StringWidth(rightText))
	}

	fullContent := leftText + strings.Repeat(" ", paddingLen) + rightText
	if h.width > 0 {
		fullContent = ansi.Truncate(fullContent, h.width, "")
	}

	return h.renderGradient(fullContent, len([]rune(headerTitle)))
}

// renderGradient renders the content with a theme-aware gradient background
// fading from the primary color to the main background. The first boldLen
// runes are drawn bold.
func (h *Header) renderGradient(content string, boldLen int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	start, err := colorful.Hex(theme.Primary)
	if err != nil {
		return HeaderStyle.Render(content)
	}
	end, err := colorful.Hex(theme.Bg)
	if err != nil {
		return HeaderStyle.Render(content)
	}

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)
	summaryStart := strings.LastIndex(content, h.summary())

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder
	offset := 0

	for i, r := range runes {
		t := float64(i) / float64(width)
		bg := start.BlendRgb(end, t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(bg.Hex())).
			Bold(i < boldLen)

		if summaryStart >= 0 && offset >= summaryStart && h.active == "" {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
		offset += len(string(r))
	}

	return result.String()
}
