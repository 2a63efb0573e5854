// Package logging provides structured logging with file rotation.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"fileseek/internal/config"
)

// Setup initializes the global slog logger with the given settings and
// returns a cleanup function to be called on shutdown. The TUI owns the
// terminal while the program runs, so logs always go to a file, never
// to stderr; when no path is configured one is chosen under the user
// cache directory.
func Setup(cfg config.LogSettings) (func() error, error) {
	level := parseLevel(cfg.Level)

	opts := &slog.HandlerOptions{
		Level: level,
	}

	path := cfg.File
	if path == "" {
		path = defaultLogPath()
	}

	var writer io.Writer
	var cleanup func() error

	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}

		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		}
		writer = lj
		cleanup = lj.Close
	} else {
		writer = io.Discard
		cleanup = func() error { return nil }
	}

	handler := slog.NewTextHandler(writer, opts)
	logger := slog.New(handler)
	slog.SetDefault(logger)

	return cleanup, nil
}

// defaultLogPath places the log under the user cache directory, or in
// the temp directory when no cache directory is available.
func defaultLogPath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "fileseek", "fileseek.log")
	}
	return filepath.Join(cacheDir, "fileseek", "fileseek.log")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
