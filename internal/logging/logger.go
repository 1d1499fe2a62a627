// Package logging builds the stderr logger used by the circleops CLI.
//
// The CLI's stdout is reserved for command results (text blocks or JSON), so
// diagnostics always go to a separate writer through charmbracelet/log.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Config holds logging configuration.
type Config struct {
	Level  string // debug, info, warn, error
	Prefix string // shown before every message, e.g. "circleops"
}

// New creates a logger writing to stderr.
func New(cfg Config) *log.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(cfg Config, w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(cfg.Level),
		Prefix:          cfg.Prefix,
		ReportTimestamp: false,
	})
}

// ParseLevel converts a string log level to a log.Level.
// Unknown values fall back to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
