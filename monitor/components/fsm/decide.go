package fsm

import (
	"math"
	"time"

	"github.com/R3DPanda1/envmon/monitor/components/hal"
)

// Thresholds and display gates. They are fixed at build time.
const (
	MinTemperature = 10.0
	MaxTemperature = 40.0
	MinHumidity    = 5.0
	MaxHumidity    = 60.0
	MinLux         = 200.0
	MaxLux         = 700.0

	AmbientRefresh = 4000 * time.Millisecond
	EventRefresh   = 3000 * time.Millisecond
	AlertRefresh   = 3000 * time.Millisecond
)

// LightLevel classifies an illuminance reading.
type LightLevel int

const (
	LightNormal LightLevel = iota
	LightHigh
	LightLow
	LightFault
)

func (l LightLevel) String() string {
	switch l {
	case LightHigh:
		return "High"
	case LightLow:
		return "Low"
	case LightFault:
		return "Fault"
	default:
		return "Normal"
	}
}

func classifyLight(lux float64) LightLevel {
	switch {
	case math.IsNaN(lux):
		return LightFault
	case lux > MaxLux:
		return LightHigh
	case lux < MinLux:
		return LightLow
	default:
		return LightNormal
	}
}

// climateSafe is false for NaN readings.
func climateSafe(temperature, humidity float64) bool {
	return temperature >= MinTemperature && temperature <= MaxTemperature &&
		humidity >= MinHumidity && humidity <= MaxHumidity
}

// decideAmbient skips the display gate when the climate is out of range.
func decideAmbient(temperature, humidity float64, dwell time.Duration) (next State, render bool) {
	if !climateSafe(temperature, humidity) {
		return Alarm, false
	}
	if dwell >= AmbientRefresh {
		return EventMonitoring, true
	}
	return AmbientMonitoring, false
}

func decideEvent(level LightLevel, dwell time.Duration) (next State, render bool) {
	if dwell < EventRefresh {
		return EventMonitoring, false
	}
	if level != LightNormal {
		return Alert, true
	}
	return AmbientMonitoring, true
}

// decideAlert reports whether the alert is due and whether it pulses.
func decideAlert(level LightLevel, dwell time.Duration) (render, pulse bool) {
	if dwell < AlertRefresh {
		return false, false
	}
	return true, level != LightNormal
}

// menuTarget maps an unlocked menu key to the state it selects; D re-locks.
// The current state, non-menu keys and non-cooperative states select nothing.
func menuTarget(current State, key hal.Key) (State, bool) {
	if !current.Cooperative() {
		return current, false
	}
	var next State
	switch key {
	case 'A':
		next = AmbientMonitoring
	case 'B':
		next = InfraredWatch
	case 'C':
		next = HallWatch
	case 'D':
		next = Locked
	default:
		return current, false
	}
	if next == current {
		return current, false
	}
	return next, true
}
