package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "neonops.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes slog and the log package to logs/neonops.log when debug is set and discards
// everything otherwise, the screen owns stdout. A log past maxLogSize is rotated to a timestamped file
func setupLogging(debug bool) (*os.File, *slog.Logger) {
	if !debug {
		return nil, installLogger(io.Discard, slog.LevelInfo)
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		return nil, installLogger(io.Discard, slog.LevelInfo)
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("neonops-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return nil, installLogger(io.Discard, slog.LevelInfo)
	}
	return file, installLogger(file, slog.LevelDebug)
}

func installLogger(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	// SetDefault bridges the log package into slog, point it straight at w instead
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return logger
}
