// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/gantt/internal/errors"
	"github.com/zhubert/gantt/internal/logger"
)

// Writer accepts text for the clipboard.
type Writer interface {
	WriteText(text string) error
}

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times; the first result is cached.
func Init() error {
	initOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.Warn("Clipboard: Failed to initialize: %v", err)
			initErr = errors.ClipboardUnavailable(err)
			return
		}
		logger.Debug("Clipboard: Initialized successfully")
	})
	return initErr
}

// System writes to the system clipboard.
type System struct{}

// WriteText writes text to the clipboard.
func (System) WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.Debug("Clipboard: Wrote %d bytes of text", len(text))
	return nil
}

// Memory records written text. Tests and headless sessions use it.
type Memory struct {
	mu   sync.Mutex
	text string
	n    int
}

// WriteText stores text.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.n++
	return nil
}

// Text returns the last written text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns how many times WriteText was called.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n
}
