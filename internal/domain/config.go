package domain

import "fmt"

// Color modes for the rendered report.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// ValidLogLevels enumerates accepted log_level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Config holds presentation settings loaded from .check-performance.yaml.
// SLA thresholds are fixed and deliberately absent.
type Config struct {
	Color      string `yaml:"color"       json:"color,omitempty"`
	LogLevel   string `yaml:"log_level"   json:"log_level,omitempty"`
	LogFormat  string `yaml:"log_format"  json:"log_format,omitempty"`
	ShowCommit *bool  `yaml:"show_commit" json:"show_commit,omitempty"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	show := true
	return Config{
		Color:      ColorAuto,
		LogLevel:   "warn",
		LogFormat:  LogFormatText,
		ShowCommit: &show,
	}
}

// WithDefaults fills unset fields from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.Color == "" {
		c.Color = d.Color
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
	if c.ShowCommit == nil {
		c.ShowCommit = d.ShowCommit
	}
	return c
}

// CommitEnabled reports whether the report header should carry the commit.
func (c Config) CommitEnabled() bool {
	return c.ShowCommit == nil || *c.ShowCommit
}

// Validate checks user-supplied values. Empty values are allowed.
func (c Config) Validate() error {
	switch c.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color %q (valid: auto, always, never)", c.Color)
	}

	if c.LogLevel != "" && !contains(ValidLogLevels, c.LogLevel) {
		return fmt.Errorf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel)
	}

	switch c.LogFormat {
	case "", LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("unknown log_format %q (valid: text, json)", c.LogFormat)
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
