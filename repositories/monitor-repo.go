package repositories

import (
	"log/slog"

	"github.com/R3DPanda1/envmon/models"
	"github.com/R3DPanda1/envmon/monitor"
	"github.com/R3DPanda1/envmon/monitor/events"
)

// MonitorRepository is the interface that defines the methods that the monitor repository must implement.
type MonitorRepository interface {
	GetInstance(models.ServerConfig) // Build the monitor instance
	Run() bool                       // Run the monitor
	Stop() bool                      // Stop the monitor
	Status() bool                    // Get the status of the monitor
	Panel() monitor.Panel            // Get the panel snapshot

	// Simulated board inputs
	PressKeys(string) error
	SetClimate(float64, float64) error
	SetLight(float64) error
	SetAnalog(int) error
	SetInfrared(bool) error
	SetHall(bool) error
	SetFault(bool) error

	// Scenarios
	GetScenarios() []string
	LoadScenario(string, string) error
	StopScenario()

	// Event broker
	GetEventBroker() *events.Broker
}

// monitorRepository repository struct
type monitorRepository struct {
	mon *monitor.Monitor
}

// NewMonitorRepository create a new repository instance
func NewMonitorRepository() MonitorRepository {
	return &monitorRepository{}
}

// --- Repository calls to Monitor, no need to comment them, they are self-explanatory ---
// Check the monitor methods to see what they do

func (r *monitorRepository) GetInstance(cfg models.ServerConfig) {
	r.mon = monitor.New(cfg)
}

// Run If the monitor is stopped, it starts it and returns True, otherwise returns False.
func (r *monitorRepository) Run() bool {
	if err := r.mon.Run(); err != nil {
		slog.Warn("monitor not started", "component", "monitor", "error", err)
		return false
	}
	return true
}

// Stop If the monitor is running, it stops it and returns True, otherwise returns False.
func (r *monitorRepository) Stop() bool {
	if err := r.mon.Stop(); err != nil {
		slog.Warn("monitor not stopped", "component", "monitor", "error", err)
		return false
	}
	return true
}

func (r *monitorRepository) Status() bool {
	return r.mon.Status()
}

func (r *monitorRepository) Panel() monitor.Panel {
	return r.mon.Panel()
}

func (r *monitorRepository) PressKeys(seq string) error {
	return r.mon.PressKeys(seq)
}

func (r *monitorRepository) SetClimate(temperature, humidity float64) error {
	return r.mon.SetClimate(temperature, humidity)
}

func (r *monitorRepository) SetLight(lux float64) error {
	return r.mon.SetLight(lux)
}

func (r *monitorRepository) SetAnalog(value int) error {
	return r.mon.SetAnalog(value)
}

func (r *monitorRepository) SetInfrared(on bool) error {
	return r.mon.SetInfrared(on)
}

func (r *monitorRepository) SetHall(on bool) error {
	return r.mon.SetHall(on)
}

func (r *monitorRepository) SetFault(fault bool) error {
	return r.mon.SetFault(fault)
}

func (r *monitorRepository) GetScenarios() []string {
	return r.mon.Scenarios()
}

func (r *monitorRepository) LoadScenario(name, script string) error {
	return r.mon.LoadScenario(name, script)
}

func (r *monitorRepository) StopScenario() {
	r.mon.StopScenario()
}

func (r *monitorRepository) GetEventBroker() *events.Broker {
	return r.mon.GetEventBroker()
}
