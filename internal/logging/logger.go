package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// maxLogSize is the maximum log file size before rotation (5 MB).
	maxLogSize = 5 * 1024 * 1024
	// maxLogBackups is the number of rotated log files to keep.
	maxLogBackups = 3
)

// Options controls where and how verbosely the application logs.
type Options struct {
	AppName string
	Debug   bool
	// Path overrides the platform log file location. "-" logs to stderr.
	Path string
}

// InitLogger builds a JSON slog logger writing to the platform log file:
//   - macOS:   ~/Library/Logs/burrow/burrow.log
//   - Linux:   ~/.local/state/burrow/burrow.log
//   - Windows: %LOCALAPPDATA%\burrow\Logs\burrow.log
//
// Debug switches to DEBUG level and adds source locations.
func InitLogger(opts Options) (*slog.Logger, error) {
	w, err := openLogWriter(opts)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: opts.Debug,
	})

	return slog.New(handler).With(slog.String("app", opts.AppName)), nil
}

func openLogWriter(opts Options) (io.Writer, error) {
	if opts.Path == "-" {
		return os.Stderr, nil
	}

	logPath := opts.Path
	if logPath == "" {
		p, err := getLogFilePath(opts.AppName)
		if err != nil {
			return nil, fmt.Errorf("failed to get log file path: %w", err)
		}
		logPath = p
	}

	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", logDir, err)
	}

	if err := rotateIfNeeded(logPath); err != nil {
		return nil, fmt.Errorf("failed to rotate log file: %w", err)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}
	return f, nil
}

// rotateIfNeeded shifts log → log.1 → log.2 ... once the file exceeds
// maxLogSize, dropping anything past maxLogBackups.
func rotateIfNeeded(logPath string) error {
	info, err := os.Stat(logPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Size() < maxLogSize {
		return nil
	}

	_ = os.Remove(fmt.Sprintf("%s.%d", logPath, maxLogBackups))
	for i := maxLogBackups - 1; i >= 1; i-- {
		_ = os.Rename(fmt.Sprintf("%s.%d", logPath, i), fmt.Sprintf("%s.%d", logPath, i+1))
	}

	if err := os.Rename(logPath, logPath+".1"); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}

// getLogFilePath returns the platform-specific log file path.
func getLogFilePath(appName string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", appName, appName+".log"), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		if state := os.Getenv("XDG_STATE_HOME"); state != "" {
			return filepath.Join(state, appName, appName+".log"), nil
		}
		return filepath.Join(homeDir, ".local", "state", appName, appName+".log"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, appName, "Logs", appName+".log"), nil
	default:
		return "", fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// NewNopLogger returns a logger that discards everything. Used by tests.
func NewNopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}
