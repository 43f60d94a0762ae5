// Package monitor runs the environmental monitor: it owns the board, the
// state machine tick loop, the scenario runner and the event broker.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/R3DPanda1/envmon/models"
	"github.com/R3DPanda1/envmon/monitor/clock"
	"github.com/R3DPanda1/envmon/monitor/components/board"
	"github.com/R3DPanda1/envmon/monitor/components/bridge"
	"github.com/R3DPanda1/envmon/monitor/components/fsm"
	"github.com/R3DPanda1/envmon/monitor/components/hal"
	"github.com/R3DPanda1/envmon/monitor/components/scenario"
	"github.com/R3DPanda1/envmon/monitor/events"
	"github.com/R3DPanda1/envmon/monitor/util"
	"github.com/R3DPanda1/envmon/shared"
)

var (
	ErrAlreadyRunning = errors.New("monitor already running")
	ErrNotRunning     = errors.New("monitor not running")
	// ErrNotSimulated is returned by panel inputs when the monitor drives a
	// bridged board.
	ErrNotSimulated = errors.New("board is not simulated")
)

// Monitor ties the state machine to a board. Run and Stop may be called from
// any goroutine; the tick loop is the only caller of the machine.
type Monitor struct {
	State uint8 // util.Stopped or util.Running

	cfg    models.ServerConfig
	clock  clock.Clock
	broker *events.Broker
	sim    *board.SimBoard // nil for a bridged board
	log    *slog.Logger

	mu       sync.Mutex
	board    hal.Board
	client   *bridge.Client
	exposer  *bridge.Server
	machine  *fsm.Machine
	scenario *scenario.Scenario
	runCtx   context.Context
	cancel   context.CancelFunc
	stopScen context.CancelFunc
	last     *fsm.Snapshot // machine state at the last Stop
	wg       sync.WaitGroup
}

// New builds a stopped monitor. cfg must already be validated.
func New(cfg models.ServerConfig) *Monitor {
	m := &Monitor{
		State:  util.Stopped,
		cfg:    cfg,
		clock:  clock.NewSystem(),
		broker: events.NewBroker(cfg.Events.History),
		log:    slog.Default().With("component", "monitor"),
	}
	if cfg.Board.Kind != util.BoardBridge {
		m.sim = board.NewSim(cfg.Board.KeyBuffer)
		m.sim.OnDisplay(func(lines [hal.DisplayRows]string) {
			m.broker.PublishDisplayEvent(events.DisplayEvent{Lines: lines[:]})
		})
	}
	return m
}

// setup resolves the board and builds a fresh machine for one run.
func (m *Monitor) setup(ctx context.Context) error {
	shared.DebugPrint("Executing setup")
	if m.sim != nil {
		m.board = m.sim
		if addr := m.cfg.Board.ExposeAddress; addr != "" {
			m.exposer = bridge.NewServer(m.sim)
			srv := m.exposer
			go func() {
				if err := srv.ListenAndServe(addr); err != nil && !errors.Is(err, net.ErrClosed) {
					m.fail("bridge server", err)
				}
			}()
		}
	} else {
		b := m.cfg.Board
		client, err := bridge.Dial(ctx, bridge.Config{
			Address:       b.BridgeAddress,
			DialTimeout:   models.Duration(b.DialTimeout),
			MaxRetries:    b.Retry.MaxRetries,
			MaxElapsed:    models.Duration(b.Retry.MaxElapsed),
			BreakerFails:  b.Breaker.Failures,
			BreakerOpen:   models.Duration(b.Breaker.OpenTimeout),
			BreakerWindow: models.Duration(b.Breaker.Window),
		})
		if err != nil {
			return fmt.Errorf("connect bridge: %w", err)
		}
		m.client = client
		m.board = client
	}

	machine, err := fsm.New(fsm.Config{
		Credential:        m.cfg.Monitor.Credential,
		MaxAttempts:       m.cfg.Monitor.MaxAttempts,
		AlarmPollInterval: models.Duration(m.cfg.Monitor.AlarmPollInterval),
	}, m.board, m.clock, m.broker)
	if err != nil {
		m.teardown()
		return fmt.Errorf("build state machine: %w", err)
	}
	m.machine = machine

	if m.scenario == nil {
		if err := m.configuredScenario(); err != nil {
			m.log.Warn("configured scenario not loaded", "error", err)
			m.fail("scenario", err)
		}
	}

	m.broker.PublishSystemEvent(events.SystemEvent{Type: events.SysEventSetup, Message: "board " + m.cfg.Board.Kind})
	return nil
}

func (m *Monitor) configuredScenario() error {
	sc := m.cfg.Scenario
	timeout := m.scenarioTimeout()
	switch {
	case sc.File != "":
		script, err := os.ReadFile(sc.File)
		if err != nil {
			return fmt.Errorf("read scenario: %w", err)
		}
		s, err := scenario.Load(filepath.Base(sc.File), string(script), timeout)
		if err != nil {
			return err
		}
		m.scenario = s
	case sc.Name != "":
		s, err := scenario.LoadBuiltin(sc.Name, timeout)
		if err != nil {
			return err
		}
		m.scenario = s
	}
	return nil
}

func (m *Monitor) scenarioTimeout() time.Duration {
	return models.Duration(m.cfg.Scenario.Timeout)
}

// loop ticks the machine until ctx is done. Tick itself returns early from a
// held alarm once ctx is cancelled.
func (m *Monitor) loop(ctx context.Context, machine *fsm.Machine) {
	defer m.wg.Done()
	every := models.Duration(m.cfg.Monitor.TickInterval)
	if every <= 0 {
		every = time.Millisecond
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		machine.Tick(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// startScenario launches the loaded scenario against the simulated board.
// m.mu must be held.
func (m *Monitor) startScenario(parent context.Context) {
	if m.scenario == nil || m.sim == nil {
		return
	}
	if m.stopScen != nil {
		m.stopScen()
	}
	ctx, cancel := context.WithCancel(parent)
	m.stopScen = cancel

	name := m.scenario.Name
	runner := scenario.NewRunner(m.scenario, m.sim, models.Duration(m.cfg.Scenario.Interval))
	runner.OnError(func(err error) { m.fail("scenario "+name, err) })
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		runner.Run(ctx)
	}()
	m.broker.PublishSystemEvent(events.SystemEvent{Type: events.SysEventScenario, Message: "scenario " + name + " started"})
}

// teardown releases what setup acquired. m.mu must be held.
func (m *Monitor) teardown() {
	if m.exposer != nil {
		if err := m.exposer.Close(); err != nil {
			m.log.Warn("bridge server close failed", "error", err)
		}
		m.exposer = nil
	}
	if m.client != nil {
		if err := m.client.Close(); err != nil {
			m.log.Warn("bridge client close failed", "error", err)
		}
		m.client = nil
	}
	m.machine = nil
	m.board = nil
}

// quiet switches the outputs off after the loop has stopped.
func (m *Monitor) quiet() {
	if m.board == nil {
		return
	}
	for _, pin := range []int{hal.PinLEDGreen, hal.PinLEDRed, hal.PinLEDBlue} {
		m.board.DigitalWrite(pin, hal.Low)
	}
	m.board.NoTone(hal.PinBuzzer)
}

func (m *Monitor) fail(what string, err error) {
	m.log.Error(what+" failed", "error", err)
	m.broker.PublishSystemEvent(events.SystemEvent{
		Type:    events.SysEventError,
		Message: fmt.Sprintf("%s: %v", what, err),
		IsError: true,
	})
}
