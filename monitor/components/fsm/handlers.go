package fsm

import (
	"context"
	"fmt"
	"math"

	"github.com/R3DPanda1/envmon/monitor/components/gate"
	"github.com/R3DPanda1/envmon/monitor/components/hal"
	"github.com/R3DPanda1/envmon/monitor/components/light"
	"github.com/R3DPanda1/envmon/monitor/components/signal"
	"github.com/R3DPanda1/envmon/monitor/events"
	"github.com/R3DPanda1/envmon/monitor/metrics"
)

// Display texts.
const (
	AmbientTitle  = "Ambient monitor"
	EventTitle    = "Event monitor"
	AlertTitle    = "Alert!"
	CriticalTitle = "CRITICAL ALERT!"
	CriticalLine  = "T/H out of range"
	InfraredTitle = "Infrared active"
	HallTitle     = "Hall active"
	InfraredMenu  = "Infrared watch"
	HallMenu      = "Hall watch"
)

func (m *Machine) show(title, line string) {
	m.board.Clear()
	m.board.Print(title)
	if line != "" {
		m.board.SetCursor(0, 1)
		m.board.Print(line)
	}
}

func (m *Machine) locked(_ context.Context, key hal.Key, ok bool) Transition {
	r := m.gate.Feed(key, ok)
	switch r.Outcome {
	case gate.OutcomeGranted:
		metrics.AccessAttempts.WithLabelValues(r.Outcome.String()).Inc()
		m.broker.PublishAccessEvent(events.AccessEvent{Type: events.AccessGranted})
		m.signal.Confirm(hal.PinLEDGreen, signal.WelcomeHold)
		return m.to(AmbientMonitoring)

	case gate.OutcomeDenied:
		metrics.AccessAttempts.WithLabelValues(r.Outcome.String()).Inc()
		m.broker.PublishAccessEvent(events.AccessEvent{Type: events.AccessDenied, Failures: r.Failures})

	case gate.OutcomeLockedOut:
		metrics.AccessAttempts.WithLabelValues(gate.OutcomeDenied.String()).Inc()
		metrics.Lockouts.Inc()
		m.mu.Lock()
		m.snap.Lockouts++
		m.mu.Unlock()
		m.broker.PublishAccessEvent(events.AccessEvent{Type: events.AccessLockedOut, Failures: r.Failures})
		m.signal.AlarmPattern()
		m.signal.Indicate(hal.PinLEDRed, signal.LockoutHold)
		m.gate.Reset()
	}
	return m.stay()
}

func (m *Machine) selectMenu(next State) Transition {
	switch next {
	case Locked:
		for _, led := range []int{hal.PinLEDGreen, hal.PinLEDRed, hal.PinLEDBlue} {
			m.board.DigitalWrite(led, hal.Low)
		}
		m.gate.Reset()
		m.log.Info("monitor re-locked")
		m.broker.PublishAccessEvent(events.AccessEvent{Type: events.AccessRelocked})
	case InfraredWatch:
		m.show(InfraredMenu, "")
	case HallWatch:
		m.show(HallMenu, "")
	}
	return m.to(next)
}

func (m *Machine) readClimate() (t, h float64) {
	h = m.board.ReadHumidity()
	t = m.board.ReadTemperature()
	if math.IsNaN(t) || math.IsNaN(h) {
		m.fault("climate")
	}
	return t, h
}

// climateUnsafe reads the climate once and reports whether it calls for the
// alarm.
func (m *Machine) climateUnsafe() bool {
	t, h := m.readClimate()
	if climateSafe(t, h) {
		return false
	}
	m.log.Warn("climate out of range", "temperature", t, "humidity", h)
	return true
}

func (m *Machine) ambient(_ context.Context, _ hal.Key, _ bool) Transition {
	t, h := m.readClimate()
	next, render := decideAmbient(t, h, m.dwell())
	if next == Alarm {
		m.log.Warn("climate out of range", "temperature", t, "humidity", h)
		return m.to(Alarm)
	}
	if !render {
		return m.stay()
	}
	m.show(AmbientTitle, fmt.Sprintf("T:%.2fC H:%.2f", t, h))
	m.broker.PublishSensorEvent(events.SensorEvent{
		Type: events.SensorClimate, State: m.state.String(), Temperature: &t, Humidity: &h,
	})
	return m.to(next)
}

func (m *Machine) readLight() (float64, LightLevel) {
	lux := light.Lux(m.board.AnalogRead(hal.PinPhotoResistor))
	level := classifyLight(lux)
	if level == LightFault {
		m.fault("light")
	}
	return lux, level
}

func (m *Machine) event(_ context.Context, _ hal.Key, _ bool) Transition {
	lux, level := m.readLight()
	next, render := decideEvent(level, m.dwell())
	if !render {
		return m.stay()
	}
	m.show(EventTitle, "Light: "+formatLux(lux))
	m.publishLight(lux, level)
	return m.to(next)
}

func (m *Machine) alert(_ context.Context, _ hal.Key, _ bool) Transition {
	lux, level := m.readLight()
	render, pulse := decideAlert(level, m.dwell())
	if !render {
		return m.stay()
	}
	if !pulse {
		m.show(AlertTitle, "")
		return m.to(EventMonitoring)
	}
	m.show(AlertTitle, "Light: "+level.String())
	m.publishLight(lux, level)
	m.signal.Pulse(hal.PinLEDBlue, signal.PulseHold)
	return m.to(EventMonitoring)
}

func (m *Machine) infrared(_ context.Context, _ hal.Key, _ bool) Transition {
	return m.watch(hal.PinInfrared, InfraredTitle, events.SensorInfrared)
}

func (m *Machine) hall(_ context.Context, _ hal.Key, _ bool) Transition {
	return m.watch(hal.PinHall, HallTitle, events.SensorHall)
}

func (m *Machine) watch(pin int, title, sensor string) Transition {
	if m.board.DigitalRead(pin) != hal.High {
		return m.stay()
	}
	m.show(title, "")
	m.broker.PublishSensorEvent(events.SensorEvent{Type: sensor, State: m.state.String(), Level: hal.High.String()})
	m.signal.Pulse(hal.PinLEDBlue, signal.PulseHold)
	return m.to(EventMonitoring)
}

func (m *Machine) alarm(ctx context.Context, _ hal.Key, _ bool) Transition {
	m.board.DigitalWrite(hal.PinLEDRed, hal.High)
	m.signal.AlarmPattern()
	m.show(CriticalTitle, CriticalLine)
	m.signal.Siren(signal.SirenHz)

	m.setHolding(true)
	res, err := m.critical.Hold(ctx)
	m.setHolding(false)

	m.board.DigitalWrite(hal.PinLEDRed, hal.Low)
	m.signal.Silence()
	metrics.CriticalHoldDuration.Observe(res.Duration.Seconds())
	if res.Faults > 0 {
		metrics.SensorFaults.WithLabelValues("climate").Add(float64(res.Faults))
	}

	if err != nil {
		m.log.Warn("critical section abandoned", "polls", res.Polls, "error", err)
		return m.stay()
	}
	m.log.Info("climate back in range", "polls", res.Polls, "held", res.Duration, "faults", res.Faults)
	return m.to(AmbientMonitoring)
}

func (m *Machine) fault(sensor string) {
	metrics.SensorFaults.WithLabelValues(sensor).Inc()
	m.log.Warn("sensor fault", "sensor", sensor, "state", m.state)
	m.broker.PublishSensorEvent(events.SensorEvent{
		Type: events.SensorFault, State: m.state.String(), Level: sensor, IsFault: true,
	})
}

func (m *Machine) publishLight(lux float64, level LightLevel) {
	e := events.SensorEvent{Type: events.SensorLight, State: m.state.String(), Level: level.String()}
	if !math.IsNaN(lux) && !math.IsInf(lux, 0) {
		e.Lux = &lux
	}
	m.broker.PublishSensorEvent(e)
}

func formatLux(lux float64) string {
	if math.IsNaN(lux) {
		return LightFault.String()
	}
	return fmt.Sprintf("%.2f", lux)
}
