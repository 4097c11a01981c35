// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package log configures gapwriter's structured logging on top of log/slog.
// Every logger it builds is wrapped in a SecureHandler so API keys and
// authorization headers never reach the output.
package log

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pdiddy/gapwriter/pkg/types"
)

// Setup builds a logger from cfg writing to w, installs it as the slog
// default, and returns it. secrets are scrubbed from all output.
func Setup(cfg types.LogConfig, w io.Writer, secrets ...string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(NewSecureHandler(handler, secrets...))
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a level name to an slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
