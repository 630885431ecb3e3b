package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"reellog/internal/config"
	"reellog/internal/logging"
)

func newFileLogger(t *testing.T, format, level string) (*slog.Logger, string) {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.Format = format
	cfg.Logging.Level = level
	logger, err := logging.NewFromConfig(&cfg, io.Discard)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	return logger, cfg.LogPath()
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logger, logPath := newFileLogger(t, "console", "info")
	logger.Info("message without caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
	if !strings.Contains(string(content), "INFO message without caller") {
		t.Fatalf("unexpected console line %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	logger, logPath := newFileLogger(t, "console", "debug")
	logger.Info("message with caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", content)
	}
}

func TestJSONLoggerFieldNames(t *testing.T) {
	logger, logPath := newFileLogger(t, "json", "info")
	logger = logging.NewComponentLogger(logger, "storage")
	logger.Warn("save failed", logging.Args(logging.String(logging.FieldPath, "/tmp/x"))...)

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(content), &entry); err != nil {
		t.Fatalf("decode json line %q: %v", content, err)
	}
	if entry["level"] != "warn" || entry["msg"] != "save failed" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry["component"] != "storage" || entry["path"] != "/tmp/x" {
		t.Fatalf("missing structured fields in %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key in %v", entry)
	}
}

func TestNewFromConfigRejectsUnknownFormat(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.Format = "xml"
	if _, err := logging.NewFromConfig(&cfg, io.Discard); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewFromConfigSplitsFileAndTerminal(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.Level = "debug"

	var stderr bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &stderr)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger = logging.WithSession(logger, "sess-1")
	logger.Info("catalog loaded")
	logger.Warn("save failed")
	logger.Error("lock lost")

	if strings.Contains(stderr.String(), "catalog loaded") || strings.Contains(stderr.String(), "save failed") {
		t.Fatalf("info/warn lines leaked to terminal: %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "ERROR lock lost") {
		t.Fatalf("expected error on terminal, got %q", stderr.String())
	}
	if strings.Contains(stderr.String(), "sess-1") {
		t.Fatalf("terminal output should omit session id: %q", stderr.String())
	}

	content, err := os.ReadFile(cfg.LogPath())
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	for _, want := range []string{"catalog loaded", "save failed", "lock lost", "session_id=sess-1"} {
		if !strings.Contains(string(content), want) {
			t.Fatalf("log file missing %q: %q", want, content)
		}
	}
}

func TestNewFromConfigWithoutLogDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = ""

	var stderr bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &stderr)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Error("boom", logging.Args(logging.Int(logging.FieldCount, 2))...)
	if !strings.Contains(stderr.String(), "ERROR boom count=2") {
		t.Fatalf("unexpected terminal output %q", stderr.String())
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger should never be enabled")
	}
}
