package ui

import (
	"sync"

	"github.com/zhubert/gantt/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight int
	FooterHeight int
	ChartWidth   int
	ChartHeight  int

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// This method is thread-safe and should be called from the main event loop
// when the terminal is resized.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight

	// The chart fills everything between header and footer
	v.ChartWidth = width
	v.ChartHeight = height - v.HeaderHeight - v.FooterHeight

	logger.WithComponent("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"chartWidth", v.ChartWidth,
		"chartHeight", v.ChartHeight,
	)
}

// ChartOrigin returns the terminal row where the chart starts.
func (v *ViewContext) ChartOrigin() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.HeaderHeight
}
