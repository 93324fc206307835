package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileOutput(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "test.log")

	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
		Compress:   false,
	}

	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	Info("hello from the test")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "hello from the test") {
		t.Errorf("log file missing message, got: %s", data)
	}
}

func TestLevelFiltering(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "filtered.log")

	cfg := FileConfig{Path: logFile, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}

	if err := InitWithFileConfig("warn", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	Debug("below threshold")
	Warn("above threshold")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "below threshold") {
		t.Error("debug message should be filtered at warn level")
	}
	if !strings.Contains(out, "above threshold") {
		t.Error("warn message missing from log output")
	}
}

func TestParseLevel(t *testing.T) {
	if parseLevel("debug").String() != "debug" {
		t.Error("parseLevel(debug) wrong")
	}
	if parseLevel("bogus").String() != "info" {
		t.Error("parseLevel should default to info")
	}
}
