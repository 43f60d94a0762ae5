package models

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/R3DPanda1/envmon/monitor/util"
)

func TestValidateDefaults(t *testing.T) {
	c := &ServerConfig{}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Port != DefaultPort || c.Board.Kind != util.BoardSim {
		t.Errorf("unexpected defaults: port=%d kind=%q", c.Port, c.Board.Kind)
	}
	if Duration(c.Monitor.TickInterval) != 10*time.Millisecond {
		t.Errorf("expected 10ms tick, got %q", c.Monitor.TickInterval)
	}
	if Duration(c.Monitor.AlarmPollInterval) != 100*time.Millisecond {
		t.Errorf("expected 100ms poll, got %q", c.Monitor.AlarmPollInterval)
	}
	if c.Events.History != DefaultEventsHistory || c.Board.KeyBuffer != DefaultKeyBuffer {
		t.Errorf("unexpected history/key buffer: %d/%d", c.Events.History, c.Board.KeyBuffer)
	}
	if c.Board.Breaker.OpenTimeout != "" || Duration(c.Board.Breaker.OpenTimeout) != 0 {
		t.Errorf("breaker timeout should stay unset, got %q", c.Board.Breaker.OpenTimeout)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		cfg  ServerConfig
	}{
		{"port", ServerConfig{Port: 70000}},
		{"metrics port", ServerConfig{MetricsPort: -1}},
		{"attempts", ServerConfig{Monitor: MonitorConfig{MaxAttempts: -2}}},
		{"board kind", ServerConfig{Board: BoardConfig{Kind: "serial"}}},
		{"bridge address", ServerConfig{Board: BoardConfig{Kind: util.BoardBridge}}},
		{"bad duration", ServerConfig{Monitor: MonitorConfig{TickInterval: "fast"}}},
		{"negative duration", ServerConfig{Scenario: ScenarioConfig{Interval: "-1s"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestGetConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"address":"localhost","port":8100,"monitor":{"credential":"1234","tickInterval":"5ms"},
		"board":{"kind":"bridge","bridgeAddress":"127.0.0.1:7070"},"scenario":{"name":"dusk"}}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := GetConfigFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Port != 8100 || c.Monitor.Credential != "1234" || c.Scenario.Name != "dusk" {
		t.Errorf("unexpected config %+v", c)
	}
	if Duration(c.Monitor.TickInterval) != 5*time.Millisecond {
		t.Errorf("expected 5ms tick, got %q", c.Monitor.TickInterval)
	}
}

func TestGetConfigFileErrors(t *testing.T) {
	if _, err := GetConfigFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := GetConfigFile(path); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}
