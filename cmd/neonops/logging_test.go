package main

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logFile, logger := setupLogging(false)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	if logger == nil {
		t.Fatal("Expected a logger even when disabled")
	}

	if output := log.Writer(); output != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", output)
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	defer os.RemoveAll(logDir)

	logFile, logger := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	logPath := filepath.Join(logDir, logFileName)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatal("Expected log file to be created")
	}

	logger.Debug("page mounted", "mount", "test")
	slog.Info("default logger routed")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "msg=\"page mounted\"") || !strings.Contains(content, "mount=test") {
		t.Errorf("Expected structured debug record, got %q", content)
	}
	if !strings.Contains(content, "default logger routed") {
		t.Error("Expected slog default to write to the log file")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	defer os.RemoveAll(logDir)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)

	largeFile, err := os.Create(logPath)
	if err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}
	if _, err := largeFile.Write(make([]byte, maxLogSize+1)); err != nil {
		t.Fatalf("Failed to write to log file: %v", err)
	}
	largeFile.Close()

	logFile, _ := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	defer os.RemoveAll(logDir)

	logFile, _ := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	output := log.Writer()
	if output == os.Stdout || output == os.Stderr {
		t.Error("Log output should not be stdout or stderr")
	}
}
