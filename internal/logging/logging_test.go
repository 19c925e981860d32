package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"longbox/internal/config"
)

func newBufferLogger(format string) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelDebug)
	if format == "json" {
		return slog.New(newJSONHandler(&buf, levelVar)), &buf
	}
	return slog.New(newConsoleHandler(&buf, levelVar)), &buf
}

func TestConsoleHandlerFormatsComponentPrefix(t *testing.T) {
	logger, buf := newBufferLogger("console")
	logger.With("component", "scanner").Info("indexed archive", "path", "/comics/saga-01.cbz", "tagged", true)

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, " INFO scanner: indexed archive") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "path=/comics/saga-01.cbz") {
		t.Fatalf("missing path attr: %q", line)
	}
	if !strings.Contains(line, "tagged=true") {
		t.Fatalf("missing bool attr: %q", line)
	}
}

func TestConsoleHandlerQuotesValuesWithSpaces(t *testing.T) {
	logger, buf := newBufferLogger("console")
	logger.Warn("scan failed", "error", "no such file")

	if !strings.Contains(buf.String(), `error="no such file"`) {
		t.Fatalf("value not quoted: %q", buf.String())
	}
}

func TestConsoleHandlerGroups(t *testing.T) {
	logger, buf := newBufferLogger("console")
	logger.WithGroup("db").Info("opened", "path", "/tmp/library.db")

	if !strings.Contains(buf.String(), "db.path=/tmp/library.db") {
		t.Fatalf("group prefix missing: %q", buf.String())
	}
}

func TestJSONHandlerFieldNames(t *testing.T) {
	logger, buf := newBufferLogger("json")
	logger.Info("hello", "count", 3)

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if decoded["msg"] != "hello" {
		t.Fatalf("unexpected msg: %v", decoded)
	}
	if decoded["level"] != "info" {
		t.Fatalf("level not lowercased: %v", decoded)
	}
	if _, ok := decoded["ts"]; !ok {
		t.Fatalf("missing ts: %v", decoded)
	}
	if decoded["count"] != float64(3) {
		t.Fatalf("missing attr: %v", decoded)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "syslog"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewFromConfigCreatesLogFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}

	logger, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	logger.Info("startup")

	logPath := filepath.Join(cfg.Paths.LogDir, "longbox.log")
	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}
