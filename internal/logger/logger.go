// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 the kbmcp authors

// Package logger provides a thin wrapper around zerolog.Logger configured
// from the logging settings group.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// [Configure] is called exactly once at startup; it installs the configured
// level process-wide and returns the handle every component logs through.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/strawgate/kbmcp/internal/config"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helpers without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// Configure installs the logging settings process-wide and returns the
// logger handle.
//
// The level is applied globally, case-insensitively. When File is set the
// destination is opened in append mode; otherwise entries go to standard
// error, keeping standard output free for the stdio transport. Every entry
// carries the fields named by the settings' format: timestamp, pid, logger
// name, level, and message. Output is JSON.
func Configure(cfg config.LoggingSettings) (*Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("logger: unknown level %q: %w", cfg.Level, err)
	}
	zerolog.SetGlobalLevel(level)

	w := io.Writer(os.Stderr)
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		w = f
	}

	return New(w), nil
}

// New builds a *Logger writing to w with the standard entry fields. Tests
// pass a buffer to capture output.
func New(w io.Writer) *Logger {
	l := zerolog.New(w).With().
		Timestamp().
		Int("pid", os.Getpid()).
		Str("name", "kbmcp").
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all log output.
// It is intended for tests and other contexts where logging is noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the
// receiver; the child can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}
