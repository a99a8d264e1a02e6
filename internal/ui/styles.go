package ui

import "charm.land/lipgloss/v2"

// Color palette, regenerated from the active theme
var (
	ColorPrimary     = lipgloss.Color("#7AA2F7")
	ColorSecondary   = lipgloss.Color("#BB9AF7")
	ColorBorder      = lipgloss.Color("#3B4261")
	ColorBg          = lipgloss.Color("#1A1B26")
	ColorText        = lipgloss.Color("#C0CAF5")
	ColorTextMuted   = lipgloss.Color("#565F89")
	ColorTextInverse = lipgloss.Color("#1A1B26")
	ColorWarning     = lipgloss.Color("#E0AF68")
	ColorInfo        = lipgloss.Color("#7DCFFF")
	ColorError       = lipgloss.Color("#F7768E")
	ColorSuccess     = lipgloss.Color("#9ECE6A")
	ColorGrid        = lipgloss.Color("#808080")
	ColorLabel       = lipgloss.Color("#FFFFFF")
	ColorHighlight   = lipgloss.Color("#FF0000")
)

// Header styles
var (
	HeaderStyle      lipgloss.Style
	HeaderTitleStyle lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
	FooterSepStyle  lipgloss.Style
)

// Flash message styles
var (
	FlashErrorStyle   lipgloss.Style
	FlashWarningStyle lipgloss.Style
	FlashInfoStyle    lipgloss.Style
	FlashSuccessStyle lipgloss.Style
)

// Chart styles
var (
	AxisStyle      lipgloss.Style
	TickLabelStyle lipgloss.Style
	GridStyle      lipgloss.Style
	RowLabelStyle  lipgloss.Style
	CursorStyle    lipgloss.Style

	LegendStyle      lipgloss.Style
	LegendTitleStyle lipgloss.Style
	LegendTextStyle  lipgloss.Style

	// BarLabelStyle is the resting label drawn over a bar.
	BarLabelStyle lipgloss.Style
	// BarLabelActiveStyle is the expanded label of the active bar.
	BarLabelActiveStyle lipgloss.Style

	MessageStyle lipgloss.Style
)

func init() {
	buildStyles()
}

func buildStyles() {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FooterSepStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	FlashErrorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	FlashWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	FlashInfoStyle = lipgloss.NewStyle().Foreground(ColorInfo)
	FlashSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)

	AxisStyle = lipgloss.NewStyle().Foreground(ColorBorder)
	TickLabelStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
	GridStyle = lipgloss.NewStyle().Foreground(ColorGrid)
	RowLabelStyle = lipgloss.NewStyle().Foreground(ColorText)
	CursorStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	LegendStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	LegendTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	LegendTextStyle = lipgloss.NewStyle().Foreground(ColorText)

	BarLabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorLabel)

	BarLabelActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorHighlight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorHighlight).
		Background(ColorBg).
		Padding(0, 1)

	MessageStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)
}
