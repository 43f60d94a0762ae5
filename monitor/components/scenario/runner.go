package scenario

import (
	"context"
	"log/slog"
	"time"

	"github.com/R3DPanda1/envmon/monitor/components/hal"
	"github.com/R3DPanda1/envmon/monitor/metrics"
)

const DefaultInterval = time.Second

// Target is the environment a scenario controls.
type Target interface {
	SetClimate(temperature, humidity float64)
	SetLight(lux float64)
	SetDigital(pin int, level hal.Level)
	SetFault(fault bool)
}

// ClimateReader lets Apply keep the half of the climate a step leaves out.
type ClimateReader interface {
	Climate() (temperature, humidity float64)
}

// Apply writes the fields of r that are set to target.
func Apply(target Target, current ClimateReader, r Reading) {
	if r.Fault != nil {
		target.SetFault(*r.Fault)
	}
	if r.Temperature != nil || r.Humidity != nil {
		t, h := current.Climate()
		if r.Temperature != nil {
			t = *r.Temperature
		}
		if r.Humidity != nil {
			h = *r.Humidity
		}
		target.SetClimate(t, h)
	}
	if r.Lux != nil {
		target.SetLight(*r.Lux)
	}
	if r.Infrared != nil {
		target.SetDigital(hal.PinInfrared, hal.Level(*r.Infrared))
	}
	if r.Hall != nil {
		target.SetDigital(hal.PinHall, hal.Level(*r.Hall))
	}
}

// Board is a Target whose current climate can be read back.
type Board interface {
	Target
	ClimateReader
}

// Runner steps a scenario on a fixed interval.
type Runner struct {
	scenario *Scenario
	board    Board
	interval time.Duration
	log      *slog.Logger
	onError  func(error)
}

func NewRunner(s *Scenario, b Board, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Runner{
		scenario: s,
		board:    b,
		interval: interval,
		log:      slog.Default().With("component", "scenario", "scenario", s.Name),
	}
}

// OnError registers fn to be called with every failed step.
func (r *Runner) OnError(fn func(error)) { r.onError = fn }

// Run steps the scenario until ctx is done. A failing step is logged and
// skipped.
func (r *Runner) Run(ctx context.Context) {
	start := time.Now()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.log.Info("scenario started", "interval", r.interval)
	r.stepAt(0)
	for {
		select {
		case <-ctx.Done():
			r.log.Info("scenario stopped", "steps", r.scenario.Steps())
			return
		case now := <-ticker.C:
			r.stepAt(now.Sub(start))
		}
	}
}

func (r *Runner) stepAt(elapsed time.Duration) {
	reading, err := r.scenario.Step(elapsed)
	if err != nil {
		metrics.ScenarioSteps.WithLabelValues("error").Inc()
		r.log.Warn("scenario step failed", "elapsed", elapsed, "error", err)
		if r.onError != nil {
			r.onError(err)
		}
		return
	}
	metrics.ScenarioSteps.WithLabelValues("ok").Inc()
	Apply(r.board, r.board, reading)
}
