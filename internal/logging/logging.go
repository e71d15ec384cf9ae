// Package logging routes slog output to a rotated file. The TUI owns the
// terminal, so nothing is ever written to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"multipick/internal/config"
)

// ParseLevel maps a config level name to a slog level. Unknown names mean info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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

// NewLogger builds a text logger writing to w
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Init installs the default logger described by cfg and returns a close func.
// An empty file discards all output.
func Init(cfg config.LogConfig, version string) (func() error, error) {
	if cfg.File == "" {
		slog.SetDefault(NewLogger(io.Discard, ParseLevel(cfg.Level)))
		return func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o700); err != nil {
		return nil, fmt.Errorf("logging: create log dir: %w", err)
	}

	rot := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}
	logger := NewLogger(rot, ParseLevel(cfg.Level)).With(
		slog.String("app", "multipick"),
		slog.String("version", version),
	)
	slog.SetDefault(logger)
	return rot.Close, nil
}
