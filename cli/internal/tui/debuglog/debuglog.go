// ABOUTME: Debug logger for the TUI that writes structured records to a log file
// ABOUTME: Keeps generation failures out of the terminal while the alt screen is active

package debuglog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Init opens <configDir>/debug.log for appending.
// An empty configDir leaves logging disabled.
func Init(configDir string) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	if configDir == "" {
		return nil
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(configDir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	logFile = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return nil
}

// Close closes the log file and disables logging
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Logger returns the current logger
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Error logs an error with the operation it came from
func Error(op string, err error, args ...any) {
	if err == nil {
		return
	}
	Logger().Error(op+" failed", append([]any{"error", err}, args...)...)
}

// Info logs an informational event
func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}
