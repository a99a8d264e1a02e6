package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(Reset)
	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestInfo_WritesToFile(t *testing.T) {
	logPath := setupTestLogger(t)

	Info("loaded %d rows from %s", 3, "plan.csv")

	if !strings.Contains(readLog(t, logPath), "loaded 3 rows from plan.csv") {
		t.Error("log file should contain the formatted message")
	}
}

func TestDebug_RespectsLevel(t *testing.T) {
	logPath := setupTestLogger(t)

	Debug("hidden-debug-marker")
	SetDebug(true)
	Debug("visible-debug-marker")

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden-debug-marker") {
		t.Error("debug message should be dropped at info level")
	}
	if !strings.Contains(content, "visible-debug-marker") {
		t.Error("debug message should be written at debug level")
	}
}

func TestWithComponent_AddsAttribute(t *testing.T) {
	logPath := setupTestLogger(t)

	WithComponent("schedule").Warn("rows dropped", "dropped", 2)

	content := readLog(t, logPath)
	if !strings.Contains(content, "component=schedule") {
		t.Errorf("log line missing component attribute:\n%s", content)
	}
	if !strings.Contains(content, "dropped=2") {
		t.Errorf("log line missing dropped attribute:\n%s", content)
	}
}

func TestPath(t *testing.T) {
	logPath := setupTestLogger(t)

	if got := Path(); got != logPath {
		t.Errorf("Path() = %q, want %q", got, logPath)
	}
}

func TestLog_Concurrent(t *testing.T) {
	setupTestLogger(t)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(n int) {
			for j := 0; j < 100; j++ {
				Info("concurrent test %d-%d", n, j)
			}
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestReset(t *testing.T) {
	Reset()
	tmpDir := t.TempDir()

	logPath1 := filepath.Join(tmpDir, "log1.log")
	if err := Init(logPath1); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	Info("message to log1")

	Reset()

	logPath2 := filepath.Join(tmpDir, "log2.log")
	if err := Init(logPath2); err != nil {
		t.Fatalf("Failed to reinit logger: %v", err)
	}
	Info("message to log2")
	Reset()

	content1 := readLog(t, logPath1)
	if !strings.Contains(content1, "message to log1") || strings.Contains(content1, "message to log2") {
		t.Errorf("log1 has wrong content:\n%s", content1)
	}
	content2 := readLog(t, logPath2)
	if !strings.Contains(content2, "message to log2") || strings.Contains(content2, "message to log1") {
		t.Errorf("log2 has wrong content:\n%s", content2)
	}
}

func TestClearLogs(t *testing.T) {
	Reset()
	path := filepath.Join(t.TempDir(), "gantt.log")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	n, err := ClearLogs(path)
	if err != nil {
		t.Fatalf("ClearLogs() error = %v", err)
	}
	if n != 1 {
		t.Errorf("ClearLogs() = %d, want 1", n)
	}

	n, err = ClearLogs(path)
	if err != nil || n != 0 {
		t.Errorf("ClearLogs() on missing file = (%d, %v), want (0, nil)", n, err)
	}
}
