// SPDX-License-Identifier: MIT

package logging

import (
	"io"
	"log/slog"
	"os"
)

// Level is a thin enum for level configuration decoupled from slog.
type Level int

const (
	// LevelDebug is the debug logging level.
	LevelDebug Level = iota
	// LevelInfo is the informational logging level.
	LevelInfo
	// LevelWarn is the warning logging level.
	LevelWarn
	// LevelError is the error logging level.
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) toSlog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger is the logging interface consumed by the stencil builder.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement Logger.
type SlogAdapter struct {
	*slog.Logger
}

// Debug logs a debug message.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }

// Info logs an informational message.
func (s *SlogAdapter) Info(msg string, args ...any) { s.Logger.Info(msg, args...) }

// Warn logs a warning message.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.Logger.Warn(msg, args...) }

// Error logs an error message.
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// New creates a slog-backed Logger writing to w (os.Stderr when nil) in
// "json" or "text" (default) format.
func New(level Level, format string, w io.Writer) Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level.toSlog()}
	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return NewSlogAdapter(slog.New(h))
}

// NoOpLogger discards all log messages.
type NoOpLogger struct{}

// Debug discards the message.
func (NoOpLogger) Debug(string, ...any) {}

// Info discards the message.
func (NoOpLogger) Info(string, ...any) {}

// Warn discards the message.
func (NoOpLogger) Warn(string, ...any) {}

// Error discards the message.
func (NoOpLogger) Error(string, ...any) {}
