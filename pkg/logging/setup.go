package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	setupMu sync.Mutex

	// logFile is the handle opened by the previous Setup call, closed when
	// the configuration is replaced.
	logFile *os.File
)

// Setup installs the contextual handler as the process-wide default
// logger. Calling it again fully replaces the previous configuration;
// handlers never accumulate across calls.
//
// level falls back to EADLANGCHAIN_LOG_LEVEL, then INFO. file falls back
// to EADLANGCHAIN_LOG_FILE; when set, the parent directory is created if
// necessary and records are appended to the file in addition to the
// console. Returns the new default logger.
//
// Concurrent Setup calls against the shared default logger must be
// serialized by the caller the same way concurrent env mutation must be.
func Setup(level, file string) (*slog.Logger, error) {
	setupMu.Lock()
	defer setupMu.Unlock()

	settings, err := LoadSettings()
	if err != nil {
		return nil, err
	}
	if level == "" {
		level = settings.Level
	}
	if file == "" {
		file = settings.File
	}

	w := io.Writer(os.Stderr)
	var f *os.File
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err = os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = io.MultiWriter(os.Stderr, f)
	}

	logger := slog.New(NewHandler(w, &HandlerOptions{Level: ParseLevel(level)}))
	slog.SetDefault(logger)

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f

	return logger, nil
}

// GetLogger returns a logger bound to name, inheriting the process-wide
// configuration installed by Setup.
func GetLogger(name string) *slog.Logger {
	return slog.Default().With(slog.String("logger", name))
}

// ParseLevel maps a level name to a slog.Level, case-insensitively.
// Accepts the slog names plus WARNING and CRITICAL; unknown names default
// to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "critical":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
