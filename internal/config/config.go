// Package config loads the optional YAML settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zhubert/gantt/internal/errors"
)

const (
	configDirName  = "gantt"
	configFileName = "config.yaml"
)

// Defaults.
const (
	DefaultTheme          = "tokyo-night"
	DefaultTextWidth      = 30
	DefaultRowHeight      = 3
	DefaultXLabelRotation = 45
	DefaultBarAlpha       = 0.8
)

// Config holds user settings. Pointer fields distinguish "unset" from an
// explicit zero so Merge can fill gaps from defaults.
type Config struct {
	Theme          string   `yaml:"theme,omitempty"`
	TextWidth      *int     `yaml:"text_width,omitempty"`
	RowHeight      *int     `yaml:"row_height,omitempty"`
	XLabelRotation *int     `yaml:"x_label_rotation,omitempty"`
	DateLayouts    []string `yaml:"date_layouts,omitempty"`
	BarAlpha       *float64 `yaml:"bar_alpha,omitempty"`

	path string
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	textWidth := DefaultTextWidth
	rowHeight := DefaultRowHeight
	rotation := DefaultXLabelRotation
	alpha := DefaultBarAlpha

	return &Config{
		Theme:          DefaultTheme,
		TextWidth:      &textWidth,
		RowHeight:      &rowHeight,
		XLabelRotation: &rotation,
		BarAlpha:       &alpha,
	}
}

// DefaultPath returns ~/.config/gantt/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", err
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, configDirName, configFileName), nil
}

// Read parses the file at path. Returns nil, nil if the file does not exist.
func Read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.ConfigLoadFailed(path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	cfg.path = path
	return &cfg, nil
}

// Load reads path (or DefaultPath when path is empty), merges it onto the
// defaults and validates the result. A missing file yields the defaults.
// An explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		if explicit {
			return nil, errors.ConfigLoadFailed(path, os.ErrNotExist)
		}
		return DefaultConfig(), nil
	}

	merged := Merge(cfg, DefaultConfig())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Merge fills in missing values in partial from defaults.
// partial takes precedence; date layouts are not merged, the defaults of
// the date parser always apply after any configured layouts.
func Merge(partial, defaults *Config) *Config {
	result := *partial

	if result.Theme == "" {
		result.Theme = defaults.Theme
	}
	if result.TextWidth == nil {
		result.TextWidth = defaults.TextWidth
	}
	if result.RowHeight == nil {
		result.RowHeight = defaults.RowHeight
	}
	if result.XLabelRotation == nil {
		result.XLabelRotation = defaults.XLabelRotation
	}
	if result.BarAlpha == nil {
		result.BarAlpha = defaults.BarAlpha
	}
	if result.DateLayouts == nil {
		result.DateLayouts = defaults.DateLayouts
	}

	return &result
}

// Validate checks that set values are in range.
func (c *Config) Validate() error {
	if c.TextWidth != nil && *c.TextWidth <= 0 {
		return errors.ConfigInvalid(fmt.Sprintf("text_width must be positive, got %d", *c.TextWidth))
	}
	if c.RowHeight != nil && *c.RowHeight <= 0 {
		return errors.ConfigInvalid(fmt.Sprintf("row_height must be positive, got %d", *c.RowHeight))
	}
	if c.XLabelRotation != nil && *c.XLabelRotation != 0 && *c.XLabelRotation != 45 {
		return errors.ConfigInvalid(fmt.Sprintf("x_label_rotation must be 0 or 45, got %d", *c.XLabelRotation))
	}
	if c.BarAlpha != nil && (*c.BarAlpha <= 0 || *c.BarAlpha > 1) {
		return errors.ConfigInvalid(fmt.Sprintf("bar_alpha must be in (0, 1], got %g", *c.BarAlpha))
	}
	for _, layout := range c.DateLayouts {
		if layout == "" {
			return errors.ConfigInvalid("date_layouts must not contain empty layouts")
		}
	}
	return nil
}

// Path returns the file the config was read from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// GetTextWidth returns the row label wrap width.
func (c *Config) GetTextWidth() int {
	if c.TextWidth == nil {
		return DefaultTextWidth
	}
	return *c.TextWidth
}

// GetRowHeight returns the number of lines per row band.
func (c *Config) GetRowHeight() int {
	if c.RowHeight == nil {
		return DefaultRowHeight
	}
	return *c.RowHeight
}

// GetXLabelRotation returns the tick label rotation in degrees.
func (c *Config) GetXLabelRotation() int {
	if c.XLabelRotation == nil {
		return DefaultXLabelRotation
	}
	return *c.XLabelRotation
}

// GetBarAlpha returns the bar opacity.
func (c *Config) GetBarAlpha() float64 {
	if c.BarAlpha == nil {
		return DefaultBarAlpha
	}
	return *c.BarAlpha
}

// GetTheme returns the UI theme name.
func (c *Config) GetTheme() string {
	if c.Theme == "" {
		return DefaultTheme
	}
	return c.Theme
}
