// Package ui provides the visual components of the gantt chart viewer.
//
// # Overview
//
// The ui package draws a schedule layout into the terminal using Lipgloss
// styles and an ultraviolet cell buffer. It holds no interaction state of its
// own; the app package owns the model and tells the chart which labels
// changed.
//
// # Layout System
//
// The screen is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├────────┬─────────────────────────────────┬──────────┤
//	│ row    │                                 │ ╭──────╮ │
//	│ labels ┤   ███████                       │ │legend│ │
//	│        ┤         ██████████              │ ╰──────╯ │
//	│        └──┴──────────┴──────────┴────────│          │
//	│          month tick labels               │          │
//	├────────┴─────────────────────────────────┴──────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
//
// Header: Shows the file name and a summary of rows, projects, dropped rows
// and the expanded project, over a gradient background.
//
// Footer: Key help, or a transient flash message.
//
// Chart: Bars, axes, month gridlines, row labels, legend and bar labels.
// Each plot cell maps back to a data point through HitTest, using the same
// test that decides which cells are painted.
//
// # Styles
//
// All styles are defined in styles.go and regenerated from the active theme
// in theme.go. Bar colors come from the project palette in the layout
// package, blended toward the theme background for translucency.
package ui
