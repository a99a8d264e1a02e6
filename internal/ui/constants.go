// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// MinTerminalWidth is the narrowest terminal the layout is computed for
	MinTerminalWidth = 40

	// MinTerminalHeight is the shortest terminal the layout is computed for
	MinTerminalHeight = 10
)

// Chart geometry
const (
	// DefaultRowHeight is the number of lines per row band
	DefaultRowHeight = 3

	// DefaultBarAlpha is the bar opacity against the background
	DefaultBarAlpha = 0.8

	// MaxGutterRatio caps the row label gutter at 1/MaxGutterRatio of the width
	MaxGutterRatio = 3

	// LegendSwatch prefixes each legend entry
	LegendSwatch = "█ "

	// LegendTitle heads the legend box
	LegendTitle = "Projects"

	// ScrollStep is the number of rows the mouse wheel scrolls
	ScrollStep = 1
)

// Chart glyphs
const (
	GlyphBar      = "█"
	GlyphGrid     = "┆"
	GlyphAxisY    = "│"
	GlyphAxisX    = "─"
	GlyphCorner   = "└"
	GlyphTickX    = "┴"
	GlyphTickY    = "┤"
	GlyphEllipsis = "…"
)
