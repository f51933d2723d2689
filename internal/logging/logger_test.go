package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"DEBUG", slog.LevelDebug},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewLoggerConsoleOnly(t *testing.T) {
	cfg := DefaultConfig()

	logger, err := NewLogger(*cfg)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	if logger == nil {
		t.Fatal("Expected non-nil logger")
	}
}

func TestNewLoggerWithFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FilePath = filepath.Join(t.TempDir(), "logs", "crawl.log")
	cfg.Console = false

	logger, err := NewLogger(*cfg)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.Info("test message", "key", "value")

	data, err := os.ReadFile(cfg.FilePath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "test message") {
		t.Errorf("Expected log file to contain the message, got %q", content)
	}
	if !strings.Contains(content, `"key":"value"`) {
		t.Errorf("Expected JSON attributes in the log file, got %q", content)
	}
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FilePath = filepath.Join(t.TempDir(), "crawl.log")
	cfg.Console = false
	cfg.Level = slog.LevelWarn

	logger, err := NewLogger(*cfg)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.Info("quiet message")
	logger.Warn("loud message")

	data, err := os.ReadFile(cfg.FilePath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	content := string(data)
	if strings.Contains(content, "quiet message") {
		t.Error("Expected info record to be filtered at warn level")
	}
	if !strings.Contains(content, "loud message") {
		t.Error("Expected warn record to be written")
	}
}
