package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"pomodoro/internal/platform"
)

// Logger is the shared logger. It discards everything until Initialize enables it.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

var logFile *os.File

// Options controls where debug logs go.
type Options struct {
	AppName string
	Debug   bool
	// File pins logging to one path and disables rotation.
	File string
	// Dir overrides the OS state directory.
	Dir         string
	MaxLogFiles int
}

// Initialize sets up Logger and returns the log file path, empty when logging is off.
func Initialize(options Options) (string, error) {
	if os.Getenv("POMODORO_DEBUG") == "1" {
		options.Debug = true
	}
	if envFile := os.Getenv("POMODORO_DEBUG_FILE"); envFile != "" && options.File == "" {
		options.File = envFile
	}

	if !options.Debug && options.File == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return "", nil
	}

	logFilePath := options.File
	if logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0o755); err != nil {
			return "", fmt.Errorf("create log directory: %w", err)
		}
	} else {
		logDir := options.Dir
		if logDir == "" {
			stateDir, err := platform.NewService().GetStateDir(options.AppName)
			if err != nil {
				return "", fmt.Errorf("get log directory: %w", err)
			}
			logDir = stateDir
		}
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return "", fmt.Errorf("create log directory: %w", err)
		}

		if options.MaxLogFiles > 0 {
			if err := rotateLogs(logDir, options.MaxLogFiles); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
			}
		}
		logFilePath = filepath.Join(logDir, uuid.New().String()+".log")
	}

	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("open log file: %w", err)
	}
	Close()
	logFile = file

	Logger = slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger.Info("debug logging initialized", "log_file", logFilePath)
	return logFilePath, nil
}

// Close releases the log file, if any, and goes back to discarding.
func Close() {
	if logFile == nil {
		return
	}
	Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	_ = logFile.Close()
	logFile = nil
}

// rotateLogs keeps at most maxLogFiles-1 old logs so the new one fits under the limit.
func rotateLogs(logDir string, maxLogFiles int) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("read log directory: %w", err)
	}

	type logFileInfo struct {
		path    string
		modTime time.Time
	}
	var logFiles []logFileInfo
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFileInfo{
			path:    filepath.Join(logDir, entry.Name()),
			modTime: info.ModTime(),
		})
	}

	if len(logFiles) < maxLogFiles {
		return nil
	}

	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].modTime.Before(logFiles[j].modTime)
	})

	numToDelete := len(logFiles) - maxLogFiles + 1
	for i := 0; i < numToDelete; i++ {
		if err := os.Remove(logFiles[i].path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", logFiles[i].path, err)
		}
	}
	return nil
}
