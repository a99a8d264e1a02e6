package ui

import "charm.land/lipgloss/v2"

// Theme defines the color palette for the chrome around the chart and for
// the chart's own furniture (axes, grid, legend frame). Bar colors come from
// the project palette, not the theme.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (header, keyboard cursor)
	Primary string
	// Secondary is the secondary accent color (footer keys, legend title)
	Secondary string

	// Background colors
	Bg string // Main background, also what translucent bars blend toward

	// Text colors
	Text        string // Primary text
	TextMuted   string // Axis labels, footer descriptions
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	Warning string
	Error   string
	Info    string
	Success string

	// Chart colors
	Border    string // Legend frame and axis lines
	Grid      string // Dashed major gridlines (defaults to gray if empty)
	LabelText string // Resting bar label (defaults to white if empty)
	Highlight string // Active bar label (defaults to red if empty)
}

// GetGrid returns the gridline color, defaulting to gray
func (t Theme) GetGrid() string {
	if t.Grid != "" {
		return t.Grid
	}
	return "#808080"
}

// GetLabelText returns the resting label color, defaulting to white
func (t Theme) GetLabelText() string {
	if t.LabelText != "" {
		return t.LabelText
	}
	return "#FFFFFF"
}

// GetHighlight returns the active label color, defaulting to red
func (t Theme) GetHighlight() string {
	if t.Highlight != "" {
		return t.Highlight
	}
	return "#FF0000"
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeTokyoNight ThemeName = "tokyo-night"
	ThemeDarkPurple ThemeName = "dark-purple"
	ThemeNord       ThemeName = "nord"
	ThemeDracula    ThemeName = "dracula"
	ThemeGruvbox    ThemeName = "gruvbox"
	ThemeCatppuccin ThemeName = "catppuccin"
	ThemeLight      ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeTokyoNight

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeTokyoNight: {
		Name:        "Tokyo Night",
		Primary:     "#7AA2F7",
		Secondary:   "#BB9AF7",
		Bg:          "#1A1B26",
		Text:        "#C0CAF5",
		TextMuted:   "#565F89",
		TextInverse: "#1A1B26",
		Warning:     "#E0AF68",
		Error:       "#F7768E",
		Info:        "#7DCFFF",
		Success:     "#9ECE6A",
		Border:      "#3B4261",
	},
	ThemeDarkPurple: {
		Name:        "Dark Purple",
		Primary:     "#7C3AED",
		Secondary:   "#06B6D4",
		Bg:          "#1F2937",
		Text:        "#F9FAFB",
		TextMuted:   "#9CA3AF",
		TextInverse: "#1F2937",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Info:        "#06B6D4",
		Success:     "#10B981",
		Border:      "#374151",
	},
	ThemeNord: {
		Name:        "Nord",
		Primary:     "#88C0D0",
		Secondary:   "#81A1C1",
		Bg:          "#2E3440",
		Text:        "#ECEFF4",
		TextMuted:   "#D8DEE9",
		TextInverse: "#2E3440",
		Warning:     "#EBCB8B",
		Error:       "#BF616A",
		Info:        "#81A1C1",
		Success:     "#A3BE8C",
		Border:      "#4C566A",
		Grid:        "#4C566A",
	},
	ThemeDracula: {
		Name:        "Dracula",
		Primary:     "#BD93F9",
		Secondary:   "#8BE9FD",
		Bg:          "#282A36",
		Text:        "#F8F8F2",
		TextMuted:   "#6272A4",
		TextInverse: "#282A36",
		Warning:     "#FFB86C",
		Error:       "#FF5555",
		Info:        "#8BE9FD",
		Success:     "#50FA7B",
		Border:      "#44475A",
		Highlight:   "#FF5555",
	},
	ThemeGruvbox: {
		Name:        "Gruvbox Dark",
		Primary:     "#FE8019",
		Secondary:   "#83A598",
		Bg:          "#282828",
		Text:        "#EBDBB2",
		TextMuted:   "#A89984",
		TextInverse: "#282828",
		Warning:     "#FE8019",
		Error:       "#FB4934",
		Info:        "#83A598",
		Success:     "#B8BB26",
		Border:      "#504945",
		Highlight:   "#FB4934",
	},
	ThemeCatppuccin: {
		Name:        "Catppuccin Mocha",
		Primary:     "#CBA6F7",
		Secondary:   "#89DCEB",
		Bg:          "#1E1E2E",
		Text:        "#CDD6F4",
		TextMuted:   "#6C7086",
		TextInverse: "#1E1E2E",
		Warning:     "#FAB387",
		Error:       "#F38BA8",
		Info:        "#89DCEB",
		Success:     "#A6E3A1",
		Border:      "#313244",
	},
	ThemeLight: {
		Name:        "Light",
		Primary:     "#6366F1",
		Secondary:   "#0891B2",
		Bg:          "#FFFFFF",
		Text:        "#1F2937",
		TextMuted:   "#6B7280",
		TextInverse: "#FFFFFF",
		Warning:     "#D97706",
		Error:       "#DC2626",
		Info:        "#0891B2",
		Success:     "#059669",
		Border:      "#D1D5DB",
		Grid:        "#9CA3AF",
		LabelText:   "#111827",
		Highlight:   "#DC2626",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeTokyoNight,
		ThemeDarkPurple,
		ThemeNord,
		ThemeDracula,
		ThemeGruvbox,
		ThemeCatppuccin,
		ThemeLight,
	}
}

// GetTheme returns a theme by name, defaulting to Tokyo Night if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// IsTheme reports whether name is a built-in theme.
func IsTheme(name string) bool {
	_, ok := BuiltinThemes[ThemeName(name)]
	return ok
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorGrid = lipgloss.Color(t.GetGrid())
	ColorLabel = lipgloss.Color(t.GetLabelText())
	ColorHighlight = lipgloss.Color(t.GetHighlight())

	buildStyles()
}
