package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Level string `json:"level"` // trace, debug, info, warn, error
	JSON  bool   `json:"json"`
}

// LevelTrace sits below debug and enables tick-by-tick records.
const LevelTrace = slog.LevelDebug - 4

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger writing to w.
func New(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Setup installs a stdout logger as the slog default.
func Setup(cfg Config) {
	slog.SetDefault(New(cfg, os.Stdout))
}
