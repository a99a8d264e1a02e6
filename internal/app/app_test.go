package app

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/gantt/internal/interact"
	"github.com/zhubert/gantt/internal/schedule"
	"github.com/zhubert/gantt/internal/ui"
)

func clickBar(t *testing.T, m *Model, i int) {
	t.Helper()
	x, y, ok := barScreenCell(m, i)
	if !ok {
		t.Fatalf("no visible cell for bar %d", i)
	}
	m.Update(mouseClick(x, y))
}

func TestNew(t *testing.T) {
	m, _ := testModel(testEntries())

	if m.ctrl.State.Active != interact.None {
		t.Errorf("initial active = %d, want None", m.ctrl.State.Active)
	}
	if len(m.ctrl.Labels) != 3 {
		t.Fatalf("labels = %d, want 3", len(m.ctrl.Labels))
	}
	if m.Init() != nil {
		t.Error("Init() should not schedule any command")
	}
}

func TestRender_BeforeSize(t *testing.T) {
	m, _ := testModel(testEntries())
	if got := m.render(); got != "Loading..." {
		t.Errorf("render() = %q before a size message, want Loading...", got)
	}
}

func TestRender(t *testing.T) {
	m, _ := testModelWithSize(testEntries(), 100, 32)

	view := ansi.Strip(m.render())
	lines := strings.Split(view, "\n")
	if len(lines) != 32 {
		t.Errorf("render() has %d lines, want 32", len(lines))
	}
	for _, want := range []string{"test.csv", "3 rows", "2 projects", "R1", "R2", "R3", "P1", "P2", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("render() missing %q", want)
		}
	}
}

func TestClick_ShowsProjectDetail(t *testing.T) {
	m, _ := testModelWithSize(testEntries(), 100, 32)

	clickBar(t, m, 0)

	if m.ctrl.State.Active != 0 {
		t.Fatalf("active = %d, want 0", m.ctrl.State.Active)
	}
	label := m.ctrl.Labels[0]
	for _, want := range []string{"Project: P1", "Resource: R1", "Resource: R2", "Duration: 31 days", "Duration: 43 days"} {
		if !strings.Contains(label.Text, want) {
			t.Errorf("detail missing %q:\n%s", want, label.Text)
		}
	}
	if strings.Contains(label.Text, "R3") {
		t.Error("detail should only list entries of the clicked project")
	}
	if label.Color != interact.ActiveColor || label.FontSize != interact.ActiveFontSize {
		t.Errorf("label style = %s/%d, want %s/%d", label.Color, label.FontSize, interact.ActiveColor, interact.ActiveFontSize)
	}

	view := ansi.Strip(m.render())
	if !strings.Contains(view, "Resource: R2") {
		t.Error("expanded detail should be drawn")
	}
	if !strings.Contains(view, "▸ P1") {
		t.Error("header should name the expanded project")
	}
}

func TestClick_SameBarTwiceRestores(t *testing.T) {
	m, _ := testModelWithSize(testEntries(), 100, 32)
	original := m.ctrl.Labels[0]

	clickBar(t, m, 0)
	clickBar(t, m, 0)

	if m.ctrl.State.Active != interact.None {
		t.Errorf("active = %d, want None", m.ctrl.State.Active)
	}
	if m.ctrl.Labels[0] != original {
		t.Errorf("label = %+v, want %+v", m.ctrl.Labels[0], original)
	}
	if strings.Contains(ansi.Strip(m.render()), "▸") {
		t.Error("header should not name a project once collapsed")
	}
}

func TestClick_OtherBarMovesActive(t *testing.T) {
	m, _ := testModelWithSize(testEntries(), 100, 32)
	original := m.ctrl.Labels[0]

	clickBar(t, m, 0)
	clickBar(t, m, 2)

	if m.ctrl.State.Active != 2 {
		t.Fatalf("active = %d, want 2", m.ctrl.State.Active)
	}
	if m.ctrl.Labels[0] != original {
		t.Errorf("bar 0 label = %+v, want restored %+v", m.ctrl.Labels[0], original)
	}
	active := 0
	for _, l := range m.ctrl.Labels {
		if l.Active() {
			active++
		}
	}
	if active != 1 {
		t.Errorf("%d active labels, want 1", active)
	}
}

func TestClick_EmptySpaceDoesNothing(t *testing.T) {
	m, _ := testModelWithSize(testEntries(), 100, 32)
	clickBar(t, m, 1)
	before := append([]interact.Label(nil), m.ctrl.Labels...)

	x, y, ok := emptyScreenCell(m)
	if !ok {
		t.Fatal("no empty plot cell found")
	}
	m.Update(mouseClick(x, y))

	if m.ctrl.State.Active != 1 {
		t.Errorf("active = %d after empty click, want 1", m.ctrl.State.Active)
	}
	for i := range before {
		if m.ctrl.Labels[i] != before[i] {
			t.Errorf("label %d changed after empty click", i)
		}
	}
}

func TestClick_OutsidePlotDoesNothing(t *testing.T) {
	m, _ := testModelWithSize(testEntries(), 100, 32)

	for _, pos := range [][2]int{
		{50, 0},  // header
		{50, 31}, // footer
		{0, 2},   // row label gutter
	} {
		m.Update(mouseClick(pos[0], pos[1]))
		if m.ctrl.State.Active != interact.None {
			t.Errorf("click at %v activated bar %d", pos, m.ctrl.State.Active)
		}
	}
}

func TestClick_RightButtonIgnored(t *testing.T) {
	m, _ := testModelWithSize(testEntries(), 100, 32)
	x, y, ok := barScreenCell(m, 0)
	if !ok {
		t.Fatal("no visible cell for bar 0")
	}

	m.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseRight})

	if m.ctrl.State.Active != interact.None {
		t.Error("right click should not toggle a bar")
	}
}

func TestKeyboardToggle(t *testing.T) {
	m, _ := testModelWithSize(testEntries(), 100, 32)

	sendKey(m, "tab")
	sendKey(m, "enter")
	if m.ctrl.State.Active != 0 {
		t.Fatalf("active = %d after tab+enter, want 0", m.ctrl.State.Active)
	}

	sendKey(m, "tab")
	sendKey(m, "space")
	if m.ctrl.State.Active != 1 {
		t.Fatalf("active = %d after tab+space, want 1", m.ctrl.State.Active)
	}
	if m.ctrl.Labels[0].Active() {
		t.Error("bar 0 should be restored when bar 1 is expanded")
	}

	sendKey(m, "enter")
	if m.ctrl.State.Active != interact.None {
		t.Errorf("active = %d after second enter, want None", m.ctrl.State.Active)
	}
}

func TestKeyboardCursorWraps(t *testing.T) {
	m, _ := testModelWithSize(testEntries(), 100, 32)

	sendKey(m, "shift+tab")
	if got := m.chart.Cursor(); got != 2 {
		t.Errorf("cursor = %d after shift+tab, want 2", got)
	}
	sendKey(m, "tab")
	if got := m.chart.Cursor(); got != 0 {
		t.Errorf("cursor = %d after wrapping, want 0", got)
	}
}

func TestToggleWithoutCursor(t *testing.T) {
	m, _ := testModelWithSize(testEntries(), 100, 32)

	if cmd := sendKey(m, "enter"); cmd == nil {
		t.Error("enter without a cursor should flash a hint")
	}
	if m.ctrl.State.Active != interact.None {
		t.Error("enter without a cursor should not toggle anything")
	}
}

func TestCopyDetail(t *testing.T) {
	m, clip := testModelWithSize(testEntries(), 100, 32)

	sendKey(m, "y")
	if clip.Writes() != 0 {
		t.Error("nothing should be copied without an expanded bar")
	}
	if !strings.Contains(ansi.Strip(m.footer.View()), "No bar expanded") {
		t.Error("expected a warning flash")
	}

	clickBar(t, m, 2)
	if cmd := sendKey(m, "y"); cmd == nil {
		t.Error("copy should schedule the flash timer")
	}
	if clip.Writes() != 1 {
		t.Fatalf("writes = %d, want 1", clip.Writes())
	}
	want := "Project: P2\nResource: R3\nStart: Jan 2024\nEnd: Jan 2024\nDuration: 5 days"
	if clip.Text() != want {
		t.Errorf("copied %q, want %q", clip.Text(), want)
	}
}

type failingClipboard struct{}

func (failingClipboard) WriteText(string) error { return fmt.Errorf("no display") }

func TestCopyDetail_ClipboardError(t *testing.T) {
	m, _ := testModelWithSize(testEntries(), 100, 32)
	m.clip = failingClipboard{}

	clickBar(t, m, 0)
	sendKey(m, "y")

	if !strings.Contains(ansi.Strip(m.footer.View()), "Clipboard unavailable") {
		t.Error("expected an error flash")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c", "esc"} {
		t.Run(k, func(t *testing.T) {
			m, _ := testModelWithSize(testEntries(), 100, 32)
			cmd := sendKey(m, k)
			if cmd == nil {
				t.Fatal("expected a quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("%s did not quit", k)
			}
		})
	}
}

func TestUnknownKeyIgnored(t *testing.T) {
	m, _ := testModelWithSize(testEntries(), 100, 32)
	if cmd := sendKey(m, "x"); cmd != nil {
		t.Error("unbound key should not produce a command")
	}
}

func manyEntries(n int) []schedule.Entry {
	entries := make([]schedule.Entry, n)
	for i := range entries {
		entries[i] = schedule.Entry{
			Resource: fmt.Sprintf("R%d", i),
			Project:  fmt.Sprintf("P%d", i%3),
			Start:    date(2024, 1, 1).AddDate(0, 0, i),
			End:      date(2024, 3, 1).AddDate(0, 0, i),
		}
	}
	return entries
}

func TestScrolling(t *testing.T) {
	m, _ := testModelWithSize(manyEntries(30), 100, 32)

	m.Update(tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	if got := m.chart.Scroll(); got != 1 {
		t.Errorf("scroll = %d after wheel down, want 1", got)
	}
	m.Update(tea.MouseWheelMsg{Button: tea.MouseWheelUp})
	if got := m.chart.Scroll(); got != 0 {
		t.Errorf("scroll = %d after wheel up, want 0", got)
	}

	sendKey(m, "j")
	sendKey(m, "down")
	if got := m.chart.Scroll(); got != 2 {
		t.Errorf("scroll = %d after j+down, want 2", got)
	}
	sendKey(m, "k")
	if got := m.chart.Scroll(); got != 1 {
		t.Errorf("scroll = %d after k, want 1", got)
	}

	sendKey(m, "end")
	bottom := m.chart.Scroll()
	if bottom != 30-m.chart.PageSize() {
		t.Errorf("scroll = %d after end, want %d", bottom, 30-m.chart.PageSize())
	}
	sendKey(m, "pgup")
	if got := m.chart.Scroll(); got != bottom-m.chart.PageSize() {
		t.Errorf("scroll = %d after pgup, want %d", got, bottom-m.chart.PageSize())
	}
	sendKey(m, "home")
	if got := m.chart.Scroll(); got != 0 {
		t.Errorf("scroll = %d after home, want 0", got)
	}

	// A bar scrolled into view is clickable.
	sendKey(m, "end")
	clickBar(t, m, 29)
	if m.ctrl.State.Active != 29 {
		t.Errorf("active = %d, want 29", m.ctrl.State.Active)
	}
}

func TestFlashTick(t *testing.T) {
	m, _ := testModelWithSize(testEntries(), 100, 32)

	if _, cmd := m.Update(ui.FlashTickMsg{}); cmd != nil {
		t.Error("tick without a flash should not reschedule")
	}

	m.flash("hello", ui.FlashInfo)
	if _, cmd := m.Update(ui.FlashTickMsg{}); cmd == nil {
		t.Error("tick with a live flash should reschedule")
	}
}

func TestFooterBindings(t *testing.T) {
	bindings := footerBindings()
	if len(bindings) == 0 || bindings[0].Help().Key != "click" {
		t.Fatal("click should be the first footer binding")
	}
	for _, b := range bindings {
		if b.Help().Desc == "" {
			t.Errorf("binding %q has no description", b.Help().Key)
		}
	}
}

func TestLookupShortcut(t *testing.T) {
	for _, k := range []string{"tab", "shift+tab", "enter", "space", "up", "down", "j", "k", "pgup", "pgdown", "home", "end", "y", "q", "ctrl+c", "esc"} {
		if _, ok := lookupShortcut(k); !ok {
			t.Errorf("no shortcut bound to %q", k)
		}
	}
	if _, ok := lookupShortcut("z"); ok {
		t.Error("unexpected shortcut for z")
	}
}
