package monitor

import (
	"context"
	"fmt"

	"github.com/R3DPanda1/envmon/monitor/components/board"
	"github.com/R3DPanda1/envmon/monitor/components/fsm"
	"github.com/R3DPanda1/envmon/monitor/components/hal"
	"github.com/R3DPanda1/envmon/monitor/components/scenario"
	"github.com/R3DPanda1/envmon/monitor/events"
	"github.com/R3DPanda1/envmon/monitor/util"
	"github.com/R3DPanda1/envmon/shared"
)

// Panel is what the operator panel renders.
type Panel struct {
	Running  bool            `json:"running"`
	Board    string          `json:"board"`
	Machine  *fsm.Snapshot   `json:"machine,omitempty"`
	Sim      *board.Snapshot `json:"sim,omitempty"`
	Scenario string          `json:"scenario,omitempty"`
	Breaker  string          `json:"breaker,omitempty"`
}

// Run clears the event history, boots the machine into Locked and starts
// the tick loop.
func (m *Monitor) Run() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.State == util.Running {
		return ErrAlreadyRunning
	}
	shared.DebugPrint("Executing Run")
	// each run starts with a fresh history
	m.broker.Reset()

	ctx, cancel := context.WithCancel(context.Background())
	if err := m.setup(ctx); err != nil {
		cancel()
		m.fail("setup", err)
		return err
	}
	m.runCtx = ctx
	m.cancel = cancel
	m.State = util.Running

	m.wg.Add(1)
	go m.loop(ctx, m.machine)
	m.startScenario(ctx)

	m.broker.PublishSystemEvent(events.SystemEvent{Type: events.SysEventStarted, Message: "monitor started"})
	m.log.Info("monitor started", "board", m.cfg.Board.Kind)
	return nil
}

// Stop cancels the loop, waits for it and switches the outputs off. Keys
// still buffered are discarded.
func (m *Monitor) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.State != util.Running {
		return ErrNotRunning
	}
	shared.DebugPrint("Executing Stop")

	m.cancel()
	m.wg.Wait()
	m.stopScen = nil

	snap := m.machine.Snapshot()
	m.last = &snap
	m.quiet()
	dropped := 0
	if m.sim != nil {
		dropped = m.sim.DropKeys()
	}
	m.teardown()
	m.runCtx, m.cancel = nil, nil
	m.State = util.Stopped

	m.broker.PublishSystemEvent(events.SystemEvent{Type: events.SysEventStopped, Message: "monitor stopped"})
	m.log.Info("monitor stopped", "state", snap.State, "droppedKeys", dropped)
	return nil
}

func (m *Monitor) Status() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.State == util.Running
}

func (m *Monitor) GetEventBroker() *events.Broker {
	return m.broker
}

// Panel reports the machine and, for a simulated board, the board outputs.
// While stopped it reports the machine as it was at the last Stop.
func (m *Monitor) Panel() Panel {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := Panel{Running: m.State == util.Running, Board: m.cfg.Board.Kind}
	if m.machine != nil {
		snap := m.machine.Snapshot()
		p.Machine = &snap
	} else {
		p.Machine = m.last
	}
	if m.sim != nil {
		snap := m.sim.Snapshot()
		p.Sim = &snap
	}
	if m.scenario != nil {
		p.Scenario = m.scenario.Name
	}
	if m.client != nil {
		p.Breaker = m.client.BreakerState().String()
	}
	return p
}

func (m *Monitor) simBoard() (*board.SimBoard, error) {
	if m.sim == nil {
		return nil, ErrNotSimulated
	}
	return m.sim, nil
}

// PressKeys queues a key sequence on the simulated keypad. Keys are only
// accepted while the monitor runs.
func (m *Monitor) PressKeys(seq string) error {
	b, err := m.simBoard()
	if err != nil {
		return err
	}
	if !m.Status() {
		return ErrNotRunning
	}
	if err := b.PressKeys(seq); err != nil {
		return fmt.Errorf("press %q: %w", seq, err)
	}
	return nil
}

func (m *Monitor) SetClimate(temperature, humidity float64) error {
	b, err := m.simBoard()
	if err != nil {
		return err
	}
	b.SetClimate(temperature, humidity)
	return nil
}

func (m *Monitor) SetLight(lux float64) error {
	b, err := m.simBoard()
	if err != nil {
		return err
	}
	if lux < 0 {
		return fmt.Errorf("lux %v: must not be negative", lux)
	}
	b.SetLight(lux)
	return nil
}

// SetAnalog writes a raw photoresistor sample; values outside the converter
// range read as a light fault.
func (m *Monitor) SetAnalog(value int) error {
	b, err := m.simBoard()
	if err != nil {
		return err
	}
	b.SetAnalog(hal.PinPhotoResistor, value)
	return nil
}

func (m *Monitor) SetInfrared(on bool) error {
	return m.setDigital(hal.PinInfrared, on)
}

func (m *Monitor) SetHall(on bool) error {
	return m.setDigital(hal.PinHall, on)
}

func (m *Monitor) setDigital(pin int, on bool) error {
	b, err := m.simBoard()
	if err != nil {
		return err
	}
	b.SetDigital(pin, hal.Level(on))
	return nil
}

// SetFault makes the climate sensor fail every read until cleared.
func (m *Monitor) SetFault(fault bool) error {
	b, err := m.simBoard()
	if err != nil {
		return err
	}
	b.SetFault(fault)
	return nil
}

func (m *Monitor) Scenarios() []string {
	return scenario.Library()
}

// LoadScenario replaces the active scenario. An empty script selects the
// built-in named name. The scenario starts at once if the monitor is running.
func (m *Monitor) LoadScenario(name, script string) error {
	if _, err := m.simBoard(); err != nil {
		return err
	}
	timeout := m.scenarioTimeout()

	var (
		s   *scenario.Scenario
		err error
	)
	if script == "" {
		s, err = scenario.LoadBuiltin(name, timeout)
	} else {
		s, err = scenario.Load(name, script, timeout)
	}
	if err != nil {
		return fmt.Errorf("load scenario %q: %w", name, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.scenario = s
	if m.State == util.Running {
		m.startScenario(m.runCtx)
	}
	m.log.Info("scenario loaded", "scenario", name)
	return nil
}

// StopScenario halts and unloads the active scenario. The board keeps its
// last values.
func (m *Monitor) StopScenario() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopScen != nil {
		m.stopScen()
		m.stopScen = nil
	}
	if m.scenario != nil {
		m.broker.PublishSystemEvent(events.SystemEvent{Type: events.SysEventScenario, Message: "scenario " + m.scenario.Name + " stopped"})
		m.scenario = nil
	}
}
