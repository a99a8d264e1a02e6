package ui

import (
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/gantt/internal/interact"
	"github.com/zhubert/gantt/internal/layout"
	"github.com/zhubert/gantt/internal/logger"
)

// minPlotWidth is the narrowest plot area the legend is kept beside.
const minPlotWidth = 10

// ChartOptions tunes the chart geometry.
type ChartOptions struct {
	RowHeight      int     // lines per row band
	XLabelRotation int     // 45 or 0 degrees
	BarAlpha       float64 // bar opacity against the background
}

// DefaultChartOptions returns the built-in geometry.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		RowHeight:      DefaultRowHeight,
		XLabelRotation: 45,
		BarAlpha:       DefaultBarAlpha,
	}
}

// geometry is the chart's placement within its width and height.
type geometry struct {
	gutter      int // columns left of the plot, y axis included
	plotLeft    int
	plotWidth   int
	plotHeight  int // lines above the x axis
	labelRows   int // lines below the x axis
	rotation    int
	visibleRows int

	legend  string
	legendX int
	legendY int

	lo, hi float64 // x domain in days since epoch
}

type baseKey struct {
	width, height int
	scroll        int
	cursor        int
	theme         string
}

// Chart draws a schedule layout as a horizontal bar chart into a terminal
// cell buffer. Bars, axes, grid, row labels and legend form a base layer
// that is cached; bar labels are composited on top of it on every View so a
// label change only re-renders the labels that changed.
type Chart struct {
	layout *layout.Layout
	labels []interact.Label
	opts   ChartOptions

	width, height int
	scroll        int
	cursor        int

	geom geometry

	base        string
	baseKey     baseKey
	baseValid   bool
	baseRenders int

	labelCache   map[int][]labelPiece
	labelRenders int
}

// labelPiece is one rendered fragment of a bar label, positioned in chart
// coordinates.
type labelPiece struct {
	x, y, w, h int
	content    string
}

// NewChart creates a chart for l. Labels default to the bars' resting labels
// until SetLabels is called.
func NewChart(l *layout.Layout, opts ChartOptions) *Chart {
	if opts.RowHeight <= 0 {
		opts.RowHeight = DefaultRowHeight
	}
	if opts.BarAlpha <= 0 || opts.BarAlpha > 1 {
		opts.BarAlpha = DefaultBarAlpha
	}
	if opts.XLabelRotation != 0 {
		opts.XLabelRotation = 45
	}

	labels := make([]interact.Label, len(l.Bars))
	for i, b := range l.Bars {
		labels[i] = interact.OriginalLabel(b)
	}

	return &Chart{
		layout:     l,
		labels:     labels,
		opts:       opts,
		cursor:     interact.None,
		labelCache: make(map[int][]labelPiece),
	}
}

// SetSize sets the chart dimensions in cells.
func (c *Chart) SetSize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width = width
	c.height = height
	c.measure()
	c.scroll = min(c.scroll, c.maxScroll())
	c.invalidateAll()
}

// Width returns the chart width.
func (c *Chart) Width() int { return c.width }

// Height returns the chart height.
func (c *Chart) Height() int { return c.height }

// SetLabels shares the per-bar label slice, usually the interaction
// controller's, with the chart. Every label is redrawn.
func (c *Chart) SetLabels(labels []interact.Label) {
	c.labels = labels
	c.labelCache = make(map[int][]labelPiece)
}

// Invalidate marks the labels of rows as changed so the next View redraws
// them. The base layer is left alone.
func (c *Chart) Invalidate(rows []int) {
	for _, r := range rows {
		delete(c.labelCache, r)
	}
}

func (c *Chart) invalidateAll() {
	c.baseValid = false
	c.labelCache = make(map[int][]labelPiece)
}

// Cursor returns the row under the keyboard cursor, or interact.None.
func (c *Chart) Cursor() int { return c.cursor }

// SetCursor moves the keyboard cursor to row, scrolling it into view.
// interact.None hides the cursor.
func (c *Chart) SetCursor(row int) {
	if row != interact.None {
		row = max(0, min(row, len(c.layout.Bars)-1))
	}
	if row == c.cursor {
		return
	}
	c.cursor = row
	if row != interact.None {
		c.EnsureVisible(row)
	}
}

// Scroll returns the index of the topmost visible row.
func (c *Chart) Scroll() int { return c.scroll }

func (c *Chart) maxScroll() int {
	return max(0, len(c.layout.Bars)-c.geom.visibleRows)
}

// ScrollBy scrolls by delta rows and reports whether the view moved.
func (c *Chart) ScrollBy(delta int) bool {
	next := max(0, min(c.scroll+delta, c.maxScroll()))
	if next == c.scroll {
		return false
	}
	c.scroll = next
	c.labelCache = make(map[int][]labelPiece)
	return true
}

// ScrollToTop scrolls to the first row.
func (c *Chart) ScrollToTop() bool { return c.ScrollBy(-c.scroll) }

// ScrollToBottom scrolls to the last page of rows.
func (c *Chart) ScrollToBottom() bool { return c.ScrollBy(c.maxScroll() - c.scroll) }

// PageSize returns the number of rows visible at once.
func (c *Chart) PageSize() int { return max(1, c.geom.visibleRows) }

// EnsureVisible scrolls the minimum amount needed to show row.
func (c *Chart) EnsureVisible(row int) bool {
	switch {
	case row < c.scroll:
		return c.ScrollBy(row - c.scroll)
	case row >= c.scroll+c.geom.visibleRows:
		return c.ScrollBy(row - c.scroll - c.geom.visibleRows + 1)
	}
	return false
}

// PlotBounds returns the plot area as x, y, width, height in chart cells.
func (c *Chart) PlotBounds() (int, int, int, int) {
	return c.geom.plotLeft, 0, c.geom.plotWidth, c.geom.plotHeight
}

// measure computes the geometry for the current size.
func (c *Chart) measure() {
	g := geometry{rotation: c.opts.XLabelRotation}

	g.lo, g.hi = c.layout.MinStart, c.layout.MaxEnd
	if g.hi-g.lo < 1e-9 {
		g.lo, g.hi = math.Min(g.lo, g.hi)-1, math.Max(g.lo, g.hi)+1
	}

	widest := 0
	for _, b := range c.layout.Bars {
		widest = max(widest, layout.MaxLineWidth(b.RowLabel))
	}
	widest = min(widest, c.width/MaxGutterRatio)
	g.gutter = widest + 2
	g.plotLeft = g.gutter

	g.legend = c.renderLegend()
	legendWidth := lipgloss.Width(g.legend)
	g.plotWidth = c.width - g.gutter - legendWidth - 1
	if g.plotWidth < minPlotWidth {
		g.legend = ""
		g.plotWidth = c.width - g.gutter
	}
	g.plotWidth = max(1, g.plotWidth)

	g.labelRows = 1
	if g.rotation != 0 {
		g.labelRows = len(layout.MonthLabelLayout)
		if c.height-1-g.labelRows < c.opts.RowHeight {
			g.rotation = 0
			g.labelRows = 1
		}
	}
	g.plotHeight = max(1, c.height-1-g.labelRows)
	g.visibleRows = max(1, g.plotHeight/c.opts.RowHeight)

	if g.legend != "" {
		g.legendX = g.plotLeft + g.plotWidth + 1
		g.legendY = max(0, (g.plotHeight-lipgloss.Height(g.legend))/2)
	}

	c.geom = g
	logger.WithComponent("chart").Debug("chart measured",
		"width", c.width,
		"height", c.height,
		"gutter", g.gutter,
		"plotWidth", g.plotWidth,
		"plotHeight", g.plotHeight,
		"rotation", g.rotation,
	)
}

// dataX returns the x value at the center of plot column col.
func (c *Chart) dataX(col int) float64 {
	g := c.geom
	return g.lo + (float64(col-g.plotLeft)+0.5)/float64(g.plotWidth)*(g.hi-g.lo)
}

// dataY returns the y value, in row units, at the center of plot line.
func (c *Chart) dataY(line int) float64 {
	rh := c.opts.RowHeight
	row := c.scroll + line/rh
	return float64(row) - 0.5 + (float64(line%rh)+0.5)/float64(rh)
}

// column returns the plot column holding x, clamped to the plot area.
func (c *Chart) column(x float64) int {
	g := c.geom
	col := g.plotLeft + int(math.Floor((x-g.lo)/(g.hi-g.lo)*float64(g.plotWidth)))
	return max(g.plotLeft, min(col, g.plotLeft+g.plotWidth-1))
}

// rowLine returns the plot line through the middle of row, and whether the
// row is scrolled into view.
func (c *Chart) rowLine(row int) (int, bool) {
	if row < c.scroll || row >= c.scroll+c.geom.visibleRows {
		return 0, false
	}
	rh := c.opts.RowHeight
	line := (row-c.scroll)*rh + rh/2
	return line, line < c.geom.plotHeight
}

// HitTest converts the chart cell (x, y) into data coordinates. The second
// result is false when the cell is outside the plot area.
func (c *Chart) HitTest(x, y int) (interact.Point, bool) {
	g := c.geom
	if x < g.plotLeft || x >= g.plotLeft+g.plotWidth || y < 0 || y >= g.plotHeight {
		return interact.Point{}, false
	}
	return interact.Point{X: c.dataX(x), Y: c.dataY(y)}, true
}

// BarAt returns the first bar, in draw order, painted on chart cell (x, y),
// or interact.None.
func (c *Chart) BarAt(x, y int) int {
	if _, ok := c.HitTest(x, y); !ok {
		return interact.None
	}
	for i := c.scroll; i < min(len(c.layout.Bars), c.scroll+c.geom.visibleRows); i++ {
		if c.paints(i, x, y) {
			return i
		}
	}
	return interact.None
}

// paints reports whether bar i covers plot cell (col, line): the cell center
// lies on the bar, or the bar is narrower than a cell and col holds its
// midpoint. Zero-length bars cover nothing.
func (c *Chart) paints(i, col, line int) bool {
	b := c.layout.Bars[i]
	if !b.InRow(c.dataY(line)) {
		return false
	}
	if b.Spans(c.dataX(col)) {
		return true
	}
	return b.Duration != 0 && col == c.column((b.Start+b.End)/2)
}

// Event translates a click on chart cell (x, y) into an interaction event.
// A click on any painted cell of a bar resolves to that bar, even when the
// cell center falls outside its span.
func (c *Chart) Event(x, y int) interact.Event {
	p, ok := c.HitTest(x, y)
	if !ok {
		return interact.Event{Kind: interact.KindClick}
	}
	if i := c.BarAt(x, y); i != interact.None {
		return interact.ClickBar(c.layout.Bars[i])
	}
	return interact.ClickAt(p)
}

// View renders the chart at its current size.
func (c *Chart) View() string {
	if c.width <= 0 || c.height <= 0 {
		return ""
	}
	if c.layout.Empty() {
		return lipgloss.Place(c.width, c.height, lipgloss.Center, lipgloss.Center,
			MessageStyle.Render("No valid data to create chart."))
	}

	key := baseKey{c.width, c.height, c.scroll, c.cursor, CurrentTheme().Name}
	if !c.baseValid || key != c.baseKey {
		c.base = c.renderBase()
		c.baseKey = key
		c.baseValid = true
		c.baseRenders++
	}

	area := uv.Rect(0, 0, c.width, c.height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(c.base).Draw(scr, area)

	// Resting labels first so the active box lands on top.
	active := interact.None
	for i := range c.layout.Bars {
		if i < len(c.labels) && c.labels[i].Active() {
			active = i
			continue
		}
		c.drawLabel(scr, i)
	}
	if active != interact.None {
		c.drawLabel(scr, active)
	}

	return strings.TrimSuffix(scr.Render(), "\n")
}

// renderBase draws everything except bar labels.
func (c *Chart) renderBase() string {
	g := c.geom
	area := uv.Rect(0, 0, c.width, c.height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())

	ticks := c.visibleTicks()

	for _, t := range ticks {
		for line := 0; line < g.plotHeight; line++ {
			c.setGlyph(scr, t.col, line, GlyphGrid, ColorGrid)
		}
	}

	c.drawBars(scr)
	c.drawYAxis(scr)
	c.drawXAxis(scr, ticks)

	if g.legend != "" {
		w, h := lipgloss.Width(g.legend), lipgloss.Height(g.legend)
		uv.NewStyledString(g.legend).Draw(scr, clip(uv.Rect(g.legendX, g.legendY, w, h), area))
	}

	return strings.TrimSuffix(scr.Render(), "\n")
}

// drawBars fills every plot cell a bar paints. BarAt uses the same test, so
// what is drawn is exactly what can be clicked.
func (c *Chart) drawBars(scr uv.Screen) {
	g := c.geom
	bg := CurrentTheme().Bg
	for row := c.scroll; row < min(len(c.layout.Bars), c.scroll+g.visibleRows); row++ {
		b := c.layout.Bars[row]
		fill := lipgloss.Color(blend(b.Color, bg, c.opts.BarAlpha))
		first := max(g.plotLeft, c.column(math.Min(b.Start, b.End))-1)
		last := min(g.plotLeft+g.plotWidth-1, c.column(math.Max(b.Start, b.End))+1)

		top := (row - c.scroll) * c.opts.RowHeight
		for line := top; line < min(top+c.opts.RowHeight, g.plotHeight); line++ {
			for col := first; col <= last; col++ {
				if c.paints(row, col, line) {
					c.setGlyph(scr, col, line, GlyphBar, fill)
				}
			}
		}
	}
}

func (c *Chart) drawYAxis(scr uv.Screen) {
	g := c.geom
	axisCol := g.gutter - 1
	for line := 0; line < g.plotHeight; line++ {
		c.setGlyph(scr, axisCol, line, GlyphAxisY, ColorBorder)
	}

	labelWidth := g.gutter - 2
	for row := c.scroll; row < min(len(c.layout.Bars), c.scroll+g.visibleRows); row++ {
		mid, ok := c.rowLine(row)
		if !ok {
			continue
		}
		c.setGlyph(scr, axisCol, mid, GlyphTickY, ColorBorder)
		if labelWidth <= 0 {
			continue
		}

		style := RowLabelStyle
		if row == c.cursor {
			style = CursorStyle
		}

		lines := strings.Split(c.layout.Bars[row].RowLabel, "\n")
		top := (row - c.scroll) * c.opts.RowHeight
		bottom := min(top+c.opts.RowHeight, g.plotHeight)
		first := max(top, mid-(len(lines)-1)/2)
		for i, text := range lines {
			line := first + i
			if line >= bottom {
				break
			}
			text = runewidth.Truncate(text, labelWidth, GlyphEllipsis)
			w := runewidth.StringWidth(text)
			if w == 0 {
				continue
			}
			uv.NewStyledString(style.Render(text)).Draw(scr, uv.Rect(labelWidth-w, line, w, 1))
		}
	}
}

// tickPos is a month tick placed on a plot column.
type tickPos struct {
	col   int
	label string
}

// visibleTicks returns the month ticks that get a gridline and label,
// thinned so labels stay legible.
func (c *Chart) visibleTicks() []tickPos {
	g := c.geom
	gap := 2
	if g.rotation == 0 {
		gap = len(layout.MonthLabelLayout) + 1
	}

	var out []tickPos
	last := -gap
	for _, t := range layout.MonthTicks(g.lo, g.hi) {
		col := c.column(t.Value)
		if col-last < gap {
			continue
		}
		out = append(out, tickPos{col: col, label: t.Label})
		last = col
	}
	return out
}

func (c *Chart) drawXAxis(scr uv.Screen, ticks []tickPos) {
	g := c.geom
	axisLine := g.plotHeight
	c.setGlyph(scr, g.gutter-1, axisLine, GlyphCorner, ColorBorder)
	for col := g.plotLeft; col < g.plotLeft+g.plotWidth; col++ {
		c.setGlyph(scr, col, axisLine, GlyphAxisX, ColorBorder)
	}

	for _, t := range ticks {
		c.setGlyph(scr, t.col, axisLine, GlyphTickX, ColorBorder)

		if g.rotation == 0 {
			x := t.col - len(t.label)/2
			x = max(0, min(x, c.width-len(t.label)))
			for i, r := range t.label {
				c.setGlyph(scr, x+i, axisLine+1, string(r), ColorTextMuted)
			}
			continue
		}

		// Rotated 45 degrees: the label rises to the right and ends just
		// below-left of its tick.
		n := len(t.label)
		for i, r := range t.label {
			k := n - 1 - i
			c.setGlyph(scr, t.col-1-k, axisLine+1+k, string(r), ColorTextMuted)
		}
	}
}

// renderLegend draws the project legend box.
func (c *Chart) renderLegend() string {
	if len(c.layout.Legend) == 0 {
		return ""
	}
	lines := []string{LegendTitleStyle.Render(LegendTitle)}
	for _, item := range c.layout.Legend {
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(blend(item.Color, CurrentTheme().Bg, c.opts.BarAlpha))).
			Render(LegendSwatch)
		for i, text := range strings.Split(item.Label, "\n") {
			prefix := swatch
			if i > 0 {
				prefix = strings.Repeat(" ", ansi.StringWidth(LegendSwatch))
			}
			lines = append(lines, prefix+LegendTextStyle.Render(text))
		}
	}
	return LegendStyle.Render(strings.Join(lines, "\n"))
}

// drawLabel composites the label of bar i, rendering it if it changed since
// the last View.
func (c *Chart) drawLabel(scr uv.Screen, i int) {
	pieces, ok := c.labelCache[i]
	if !ok {
		pieces = c.renderLabel(i)
		c.labelCache[i] = pieces
		c.labelRenders++
	}
	area := uv.Rect(0, 0, c.width, c.height)
	for _, p := range pieces {
		uv.NewStyledString(p.content).Draw(scr, clip(uv.Rect(p.x, p.y, p.w, p.h), area))
	}
}

// renderLabel lays out the label of bar i centered on the bar. A resting
// label is drawn line by line over the bar color; the enlarged label is a
// bordered box kept inside the chart.
func (c *Chart) renderLabel(i int) []labelPiece {
	if i >= len(c.labels) {
		return nil
	}
	mid, ok := c.rowLine(i)
	if !ok {
		return nil
	}
	g := c.geom
	b := c.layout.Bars[i]
	label := c.labels[i]
	center := c.column((b.Start + b.End) / 2)

	if label.FontSize > interact.DefaultFontSize {
		box := labelStyle(label).Render(label.Text)
		w, h := lipgloss.Width(box), lipgloss.Height(box)
		x := max(0, min(center-w/2, c.width-w))
		y := max(0, min(mid-h/2, c.height-h))
		return []labelPiece{{x: x, y: y, w: w, h: h, content: box}}
	}

	style := labelStyle(label).Background(lipgloss.Color(blend(b.Color, CurrentTheme().Bg, c.opts.BarAlpha)))
	lines := strings.Split(label.Text, "\n")
	top := mid - (len(lines)-1)/2

	var pieces []labelPiece
	for n, text := range lines {
		line := top + n
		if line < 0 || line >= g.plotHeight {
			continue
		}
		text = ansi.Truncate(text, g.plotWidth, GlyphEllipsis)
		w := ansi.StringWidth(text)
		if w == 0 {
			continue
		}
		x := max(g.plotLeft, min(center-w/2, g.plotLeft+g.plotWidth-w))
		pieces = append(pieces, labelPiece{x: x, y: line, w: w, h: 1, content: style.Render(text)})
	}
	return pieces
}

// labelStyle maps a label's presentation onto terminal styling. Terminals
// have a single font size, so the larger size is drawn as a bordered box.
func labelStyle(l interact.Label) lipgloss.Style {
	style := BarLabelStyle
	if l.FontSize > interact.DefaultFontSize {
		style = BarLabelActiveStyle
	}
	switch l.Color {
	case interact.ActiveColor:
		style = style.Foreground(ColorHighlight)
	case interact.DefaultColor:
		style = style.Foreground(ColorLabel)
	default:
		style = style.Foreground(lipgloss.Color(l.Color))
	}
	return style.Bold(l.Bold)
}

// blend mixes hex color fg over bg at opacity alpha.
func blend(fg, bg string, alpha float64) string {
	f, err := colorful.Hex(fg)
	if err != nil {
		return fg
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return fg
	}
	return b.BlendRgb(f, alpha).Clamped().Hex()
}

// setGlyph writes a single-width glyph at (x, y), ignoring cells outside the
// buffer.
func (c *Chart) setGlyph(scr uv.Screen, x, y int, glyph string, fg color.Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	scr.SetCell(x, y, &uv.Cell{Content: glyph, Width: 1, Style: uv.Style{Fg: fg}})
}

// clip intersects r with bounds.
func clip(r, bounds uv.Rectangle) uv.Rectangle {
	return r.Intersect(bounds)
}
