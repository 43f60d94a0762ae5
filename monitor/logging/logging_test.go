package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", JSON: true}, &buf)
	logger.Info("test message", "component", "fsm")

	var result map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("expected valid JSON, got: %s", buf.String())
	}
	if result["msg"] != "test message" {
		t.Errorf("expected msg 'test message', got %v", result["msg"])
	}
	if result["component"] != "fsm" {
		t.Errorf("expected component attr, got %v", result["component"])
	}
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "debug"}, &buf)
	logger.Debug("debug msg")

	if !strings.Contains(buf.String(), "debug msg") {
		t.Errorf("expected 'debug msg' in output, got: %s", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info"}, &buf)

	logger.Debug("should not appear")
	if buf.Len() > 0 {
		t.Errorf("debug message should be filtered at info level")
	}

	logger.Info("should appear")
	if buf.Len() == 0 {
		t.Errorf("info message should not be filtered at info level")
	}
}

func TestTraceLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "trace"}, &buf)
	logger.Log(context.Background(), LevelTrace, "tick")
	if !strings.Contains(buf.String(), "tick") {
		t.Errorf("expected trace record, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":      slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
		"trace": LevelTrace,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
