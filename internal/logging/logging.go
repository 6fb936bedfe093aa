// Package logging builds the charmbracelet/log loggers used across Starfall.
//
// The terminal game owns the screen, so anything it logs goes to a file
// or nowhere. The SSH server logs to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w with timestamps and the given prefix.
func New(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, "", log.FatalLevel)
}

// ParseLevel converts a flag value such as "debug" or "warn" into a level.
// The empty string means info.
func ParseLevel(s string) (log.Level, error) {
	if s == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging: %w", err)
	}
	return level, nil
}

// OpenFile creates a logger appending to path. With an empty path the
// logger discards everything. The returned closer must be closed on exit.
func OpenFile(path, prefix string, level log.Level) (*log.Logger, io.Closer, error) {
	if path == "" {
		return Discard(), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return New(f, prefix, level), f, nil
}
