package logger

import (
	"fmt"
	"io"
	"os"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// ValidLevel reports whether s is one of the level constants.
func ValidLevel(s string) bool {
	switch s {
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel:
		return true
	}
	return false
}

// Open builds a logger writing to the file at path. An empty path yields a
// no-op logger, since the terminal screen owns stdout. The returned close
// func is always non-nil.
func Open(level, path string) (*Logger, func() error, error) {
	if path == "" {
		return Nop(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(level, f), f.Close, nil
}

// New builds a logger at level writing console-encoded lines to w.
func New(level string, w io.Writer) *Logger {
	return newZapLogger(level, w)
}
