package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/R3DPanda1/envmon/monitor/logging"
	"github.com/R3DPanda1/envmon/monitor/util"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Defaults applied by Validate.
const (
	DefaultPort              = 8000
	DefaultTickInterval      = "10ms"
	DefaultAlarmPollInterval = "100ms"
	DefaultDialTimeout       = "2s"
	DefaultScenarioInterval  = "1s"
	DefaultScenarioTimeout   = "100ms"
	DefaultEventsHistory     = 100
	DefaultKeyBuffer         = 16
)

// MonitorConfig holds the access gate and state machine settings.
type MonitorConfig struct {
	Credential        string `json:"credential"`        // 4-digit access code
	MaxAttempts       int    `json:"maxAttempts"`       // failed attempts before lockout
	TickInterval      string `json:"tickInterval"`      // pause between state machine ticks
	AlarmPollInterval string `json:"alarmPollInterval"` // climate poll period while the alarm holds
}

// RetryConfig bounds the bridge dial backoff.
type RetryConfig struct {
	MaxRetries int    `json:"maxRetries"`
	MaxElapsed string `json:"maxElapsed"`
}

// BreakerConfig tunes the bridge circuit breaker.
type BreakerConfig struct {
	Failures    int    `json:"failures"`    // consecutive failures that open the breaker
	OpenTimeout string `json:"openTimeout"` // time spent open before a trial request
	Window      string `json:"window"`      // closed-state counter reset period
}

// BoardConfig selects and tunes the hardware the monitor drives.
type BoardConfig struct {
	Kind          string        `json:"kind"`          // "sim" or "bridge"
	BridgeAddress string        `json:"bridgeAddress"` // host:port of the IO bridge
	ExposeAddress string        `json:"exposeAddress"` // serve the simulated board over the bridge protocol
	DialTimeout   string        `json:"dialTimeout"`
	KeyBuffer     int           `json:"keyBuffer"` // pending key capacity of the simulated keypad
	Retry         RetryConfig   `json:"retry"`
	Breaker       BreakerConfig `json:"breaker"`
}

// ScenarioConfig picks the script that drives the simulated environment.
type ScenarioConfig struct {
	Name     string `json:"name"` // built-in scenario name
	File     string `json:"file"` // path to a custom script, wins over name
	Interval string `json:"interval"`
	Timeout  string `json:"timeout"`
}

// EventsConfig holds history retention settings for the event broker.
type EventsConfig struct {
	History int `json:"history"` // events kept per topic
}

// ServerConfig holds the configuration for the server including address, ports, and other settings.
type ServerConfig struct {
	Address     string         `json:"address"`     // Address to bind to (e.g., "localhost")
	Port        int            `json:"port"`        // Port to bind to (default is 8000)
	MetricsPort int            `json:"metricsPort"` // Port to bind to for metrics (0 disables it)
	AutoStart   bool           `json:"autoStart"`   // Flag to automatically start the monitor when the server starts
	Verbose     bool           `json:"verbose"`     // Flag to enable verbose logging
	Logging     logging.Config `json:"logging"`
	Monitor     MonitorConfig  `json:"monitor"`
	Board       BoardConfig    `json:"board"`
	Scenario    ScenarioConfig `json:"scenario"`
	Events      EventsConfig   `json:"events"`
}

// GetConfigFile loads the configuration from the specified file path, parses it as JSON,
// validates it and returns a ServerConfig instance.
func GetConfigFile(path string) (*ServerConfig, error) {
	config := &ServerConfig{}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate fills unset fields with defaults and rejects values the monitor
// cannot run with. A zero ServerConfig validates to a simulated board.
func (c *ServerConfig) Validate() error {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Port < 0 || c.Port > 65535 || c.MetricsPort < 0 || c.MetricsPort > 65535 {
		return fmt.Errorf("%w: port out of range", ErrInvalidConfig)
	}
	if c.Monitor.MaxAttempts < 0 {
		return fmt.Errorf("%w: maxAttempts %d", ErrInvalidConfig, c.Monitor.MaxAttempts)
	}
	if c.Events.History <= 0 {
		c.Events.History = DefaultEventsHistory
	}
	if c.Board.KeyBuffer <= 0 {
		c.Board.KeyBuffer = DefaultKeyBuffer
	}

	switch c.Board.Kind {
	case "":
		c.Board.Kind = util.BoardSim
	case util.BoardSim:
	case util.BoardBridge:
		if c.Board.BridgeAddress == "" {
			return fmt.Errorf("%w: bridge board needs bridgeAddress", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown board kind %q", ErrInvalidConfig, c.Board.Kind)
	}

	durations := []struct {
		name  string
		value *string
		def   string
	}{
		{"monitor.tickInterval", &c.Monitor.TickInterval, DefaultTickInterval},
		{"monitor.alarmPollInterval", &c.Monitor.AlarmPollInterval, DefaultAlarmPollInterval},
		{"board.dialTimeout", &c.Board.DialTimeout, DefaultDialTimeout},
		{"board.retry.maxElapsed", &c.Board.Retry.MaxElapsed, ""},
		{"board.breaker.openTimeout", &c.Board.Breaker.OpenTimeout, ""},
		{"board.breaker.window", &c.Board.Breaker.Window, ""},
		{"scenario.interval", &c.Scenario.Interval, DefaultScenarioInterval},
		{"scenario.timeout", &c.Scenario.Timeout, DefaultScenarioTimeout},
	}
	for _, d := range durations {
		if *d.value == "" {
			*d.value = d.def
			continue
		}
		v, err := time.ParseDuration(*d.value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, d.name, err)
		}
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, d.name)
		}
	}
	return nil
}

// Duration parses a validated duration field. Empty means zero, which the
// consumers treat as "use your default".
func Duration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}
