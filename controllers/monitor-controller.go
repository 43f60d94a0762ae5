package controllers

import (
	"github.com/R3DPanda1/envmon/models"
	"github.com/R3DPanda1/envmon/monitor"
	"github.com/R3DPanda1/envmon/monitor/events"
	repo "github.com/R3DPanda1/envmon/repositories"
)

// MonitorController is the interface that defines the methods that the monitor controller must implement.
type MonitorController interface {
	GetInstance(models.ServerConfig) // Build the monitor instance
	Run() bool                       // Run the monitor
	Stop() bool                      // Stop the monitor
	Status() bool                    // Get the status of the monitor
	Panel() monitor.Panel            // Get the panel snapshot

	// Simulated board inputs
	PressKeys(string) error            // Queue keypad presses
	SetClimate(float64, float64) error // Set temperature and humidity
	SetLight(float64) error            // Set the light level in lux
	SetAnalog(int) error               // Set the raw photoresistor sample
	SetInfrared(bool) error            // Set the infrared input
	SetHall(bool) error                // Set the Hall input
	SetFault(bool) error               // Make the climate sensor fail

	// Scenarios
	GetScenarios() []string            // Built-in scenario names
	LoadScenario(string, string) error // Load a built-in (empty script) or custom scenario
	StopScenario()                     // Unload the active scenario

	// Event broker
	GetEventBroker() *events.Broker
}

// monitorController controller struct
type monitorController struct {
	repo repo.MonitorRepository
}

// NewMonitorController create a new controller instance with the provided repository
func NewMonitorController(repo repo.MonitorRepository) MonitorController {
	return &monitorController{
		repo: repo,
	}
}

// --- Controller calls to Repository, no need to comment them, they are self-explanatory ---
// Check the repository methods to see what they do

func (c *monitorController) GetInstance(cfg models.ServerConfig) {
	c.repo.GetInstance(cfg)
}

func (c *monitorController) Run() bool {
	return c.repo.Run()
}

func (c *monitorController) Stop() bool {
	return c.repo.Stop()
}

func (c *monitorController) Status() bool {
	return c.repo.Status()
}

func (c *monitorController) Panel() monitor.Panel {
	return c.repo.Panel()
}

func (c *monitorController) PressKeys(seq string) error {
	return c.repo.PressKeys(seq)
}

func (c *monitorController) SetClimate(temperature, humidity float64) error {
	return c.repo.SetClimate(temperature, humidity)
}

func (c *monitorController) SetLight(lux float64) error {
	return c.repo.SetLight(lux)
}

func (c *monitorController) SetAnalog(value int) error {
	return c.repo.SetAnalog(value)
}

func (c *monitorController) SetInfrared(on bool) error {
	return c.repo.SetInfrared(on)
}

func (c *monitorController) SetHall(on bool) error {
	return c.repo.SetHall(on)
}

func (c *monitorController) SetFault(fault bool) error {
	return c.repo.SetFault(fault)
}

func (c *monitorController) GetScenarios() []string {
	return c.repo.GetScenarios()
}

func (c *monitorController) LoadScenario(name, script string) error {
	return c.repo.LoadScenario(name, script)
}

func (c *monitorController) StopScenario() {
	c.repo.StopScenario()
}

func (c *monitorController) GetEventBroker() *events.Broker {
	return c.repo.GetEventBroker()
}
