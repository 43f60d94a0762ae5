// Package fsm is the monitor's state machine. A Machine is driven one tick at
// a time from a single goroutine; only Snapshot may be called concurrently.
package fsm

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/R3DPanda1/envmon/monitor/clock"
	"github.com/R3DPanda1/envmon/monitor/components/gate"
	"github.com/R3DPanda1/envmon/monitor/components/hal"
	"github.com/R3DPanda1/envmon/monitor/components/signal"
	"github.com/R3DPanda1/envmon/monitor/events"
	"github.com/R3DPanda1/envmon/monitor/metrics"
)

type Config struct {
	Credential        string
	MaxAttempts       int
	AlarmPollInterval time.Duration
}

// Snapshot is a consistent copy of the machine state.
type Snapshot struct {
	State       State         `json:"state"`
	EnteredAt   time.Duration `json:"enteredAt"`
	Transitions uint64        `json:"transitions"`
	Entered     int           `json:"entered"`
	Failures    int           `json:"failures"`
	Lockouts    uint64        `json:"lockouts"`
	Holding     bool          `json:"holding"`
	MaxAttempts int           `json:"maxAttempts"`
}

type handler func(ctx context.Context, key hal.Key, ok bool) Transition

type Machine struct {
	board    hal.Board
	clock    clock.Clock
	signal   *signal.Signaler
	gate     *gate.Gate
	critical *CriticalSection
	broker   *events.Broker
	log      *slog.Logger
	handlers map[State]handler

	// owned by the tick goroutine
	state     State
	enteredAt time.Duration

	mu   sync.Mutex
	snap Snapshot
}

// New configures the board pins, draws the access prompt and returns a
// machine in the Locked state. broker may be nil.
func New(cfg Config, b hal.Board, c clock.Clock, broker *events.Broker) (*Machine, error) {
	if cfg.Credential == "" {
		cfg.Credential = gate.DefaultCredential
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = gate.DefaultMaxAttempts
	}
	g, err := gate.New(cfg.Credential, cfg.MaxAttempts, b)
	if err != nil {
		return nil, err
	}

	m := &Machine{
		board:    b,
		clock:    c,
		signal:   signal.New(b, c, hal.PinBuzzer),
		gate:     g,
		critical: NewCriticalSection(b, c, cfg.AlarmPollInterval),
		broker:   broker,
		log:      slog.Default().With("component", "fsm"),
	}
	m.handlers = map[State]handler{
		Locked:            m.locked,
		AmbientMonitoring: m.ambient,
		EventMonitoring:   m.event,
		Alert:             m.alert,
		Alarm:             m.alarm,
		InfraredWatch:     m.infrared,
		HallWatch:         m.hall,
	}

	setupPins(b)
	g.Reset()
	m.state = Locked
	m.enteredAt = c.Now()
	m.sync()
	setCurrentState(Locked)
	return m, nil
}

func setupPins(b hal.GPIO) {
	for _, pin := range []int{hal.PinLEDGreen, hal.PinLEDRed, hal.PinLEDBlue, hal.PinBuzzer} {
		b.PinMode(pin, hal.Output)
		b.DigitalWrite(pin, hal.Low)
	}
	for _, pin := range []int{hal.PinPhotoResistor, hal.PinInfrared, hal.PinHall} {
		b.PinMode(pin, hal.Input)
	}
}

// Tick reads the keypad once and runs the active state's handler. It returns
// the state after the tick. Only the Alarm handler can block; it returns when
// the climate is safe or ctx is done.
func (m *Machine) Tick(ctx context.Context) State {
	start := m.clock.Now()
	key, ok := m.board.GetKey()

	var tr Transition
	if next, selected := menuTarget(m.state, key); ok && selected {
		// the climate check still runs before leaving ambient monitoring
		if m.state == AmbientMonitoring && m.climateUnsafe() {
			tr = m.to(Alarm)
		} else {
			tr = m.selectMenu(next)
		}
	} else {
		tr = m.handlers[m.state](ctx, key, ok)
	}

	if tr.Next != m.state || tr.At != m.enteredAt {
		m.enter(tr)
	}
	m.sync()
	metrics.TickDuration.Observe((m.clock.Now() - start).Seconds())
	return m.state
}

// State must only be called from the tick goroutine; use Snapshot elsewhere.
func (m *Machine) State() State { return m.state }

func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}

func (m *Machine) stay() Transition {
	return Transition{Next: m.state, At: m.enteredAt}
}

// to stamps the entry time of next.
func (m *Machine) to(next State) Transition {
	return Transition{Next: next, At: m.clock.Now()}
}

func (m *Machine) dwell() time.Duration {
	return m.clock.Now() - m.enteredAt
}

func (m *Machine) enter(tr Transition) {
	from := m.state
	dwell := tr.At - m.enteredAt
	m.state = tr.Next
	m.enteredAt = tr.At

	m.mu.Lock()
	m.snap.Transitions++
	m.mu.Unlock()

	metrics.StateTransitions.WithLabelValues(from.String(), tr.Next.String()).Inc()
	setCurrentState(tr.Next)
	m.log.Debug("state transition", "from", from, "to", tr.Next, "dwell", dwell)
	m.broker.PublishStateEvent(events.StateEvent{From: from.String(), To: tr.Next.String(), Dwell: dwell})
}

func (m *Machine) sync() {
	m.mu.Lock()
	m.snap.State = m.state
	m.snap.EnteredAt = m.enteredAt
	m.snap.Entered = m.gate.Entered()
	m.snap.Failures = m.gate.Failures()
	m.snap.MaxAttempts = m.gate.MaxAttempts()
	m.mu.Unlock()
}

func (m *Machine) setHolding(h bool) {
	m.mu.Lock()
	m.snap.Holding = h
	m.mu.Unlock()
}

func setCurrentState(active State) {
	for _, s := range States {
		v := 0.0
		if s == active {
			v = 1
		}
		metrics.CurrentState.WithLabelValues(s.String()).Set(v)
	}
}
