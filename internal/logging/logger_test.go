package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelDebug)
	logger := slog.New(newConsoleHandler(&buf, lvl))

	WithComponent(logger, "server").Info("listening",
		String("address", "127.0.0.1:5000"),
		Int("status", 200),
	)

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, " INFO server: listening") {
		t.Fatalf("unexpected console line %q", line)
	}
	if !strings.Contains(line, "address=127.0.0.1:5000") || !strings.Contains(line, "status=200") {
		t.Fatalf("attributes missing from %q", line)
	}
}

func TestConsoleHandlerQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, lvl))

	logger.Info("note", String("detail", "two words"))

	if !strings.Contains(buf.String(), `detail="two words"`) {
		t.Fatalf("expected quoted value in %q", buf.String())
	}
}

func TestJSONHandlerKeys(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newJSONHandler(&buf, lvl))

	logger.Warn("slow request", String("path", "/api/chat"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record["level"] != "warn" {
		t.Fatalf("level = %v", record["level"])
	}
	if record["msg"] != "slow request" {
		t.Fatalf("msg = %v", record["msg"])
	}
	if _, ok := record["ts"]; !ok {
		t.Fatal("missing ts key")
	}
	if record["path"] != "/api/chat" {
		t.Fatalf("path = %v", record["path"])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range tests {
		if got := parseLevel(tc.input); got != tc.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestWithComponentNilLogger(t *testing.T) {
	logger := WithComponent(nil, "test")
	if logger == nil {
		t.Fatal("expected a usable logger")
	}
	logger.Info("must not panic")
}
