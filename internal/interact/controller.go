package interact

import "github.com/zhubert/gantt/internal/layout"

// Controller owns the interaction state together with the current label of
// every bar.
type Controller struct {
	State  State
	Labels []Label
	Bars   []layout.Bar

	changed []int
}

// NewController returns a controller with every bar showing its original
// label.
func NewController(bars []layout.Bar) *Controller {
	labels := make([]Label, len(bars))
	for i, b := range bars {
		labels[i] = OriginalLabel(b)
	}
	return &Controller{State: NewState(), Labels: labels, Bars: bars}
}

// Click applies ev and reports whether any label changed.
func (c *Controller) Click(ev Event) bool {
	next, changes := Handle(c.State, ev, c.Bars)
	c.State = next
	c.changed = c.changed[:0]
	for _, ch := range changes {
		c.Labels[ch.Bar] = ch.Label
		c.changed = append(c.changed, ch.Bar)
	}
	return len(changes) > 0
}

// Toggle clicks the center of bar i.
func (c *Controller) Toggle(i int) bool {
	if i < 0 || i >= len(c.Bars) {
		return false
	}
	return c.Click(ClickBar(c.Bars[i]))
}

// Changed returns the bars whose labels changed on the last click.
func (c *Controller) Changed() []int {
	return c.changed
}

// ActiveDetail returns the active bar's label text, if any bar is active.
func (c *Controller) ActiveDetail() (string, bool) {
	if c.State.Active == None {
		return "", false
	}
	return c.Labels[c.State.Active].Text, true
}
