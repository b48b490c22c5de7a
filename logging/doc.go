// SPDX-License-Identifier: MIT

// Package logging provides the minimal logging surface used by lbmstencil.
//
// Library code depends only on the Logger interface; callers choose the
// backend:
//
//   - NewSlogAdapter wraps an existing *slog.Logger.
//   - New builds a slog logger from a level and a "text" or "json" format.
//   - NoOpLogger discards everything (the default of every builder).
//
// Usage:
//
//	logger := logging.New(logging.LevelDebug, "text", os.Stderr)
//	set, err := stencil.New(cfg, stencil.WithLogger(logger))
package logging
