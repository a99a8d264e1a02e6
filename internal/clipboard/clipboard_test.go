package clipboard

import "testing"

func TestMemory_WriteText(t *testing.T) {
	var m Memory
	var w Writer = &m

	if err := w.WriteText("Project: P1"); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if err := w.WriteText("Project: P2"); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}

	if got := m.Text(); got != "Project: P2" {
		t.Errorf("Text() = %q, want %q", got, "Project: P2")
	}
	if got := m.Writes(); got != 2 {
		t.Errorf("Writes() = %d, want 2", got)
	}
}

func TestSystemImplementsWriter(t *testing.T) {
	var _ Writer = System{}
}
