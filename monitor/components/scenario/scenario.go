// Package scenario drives the simulated environment from JavaScript.
//
// A scenario defines function Step(t), where t is the number of seconds
// since the scenario started, and returns an object with any of the fields
// temperature, humidity, lux, infrared, hall and fault. Fields left out keep
// their current value on the board.
package scenario

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dop251/goja"
)

var (
	// ErrTimeout is returned when a script runs longer than its timeout
	ErrTimeout = errors.New("scenario execution timeout")
	// ErrInvalidScript is returned when the JavaScript code is invalid
	ErrInvalidScript = errors.New("invalid JavaScript code")
	// ErrStepNotFound is returned when Step is not defined
	ErrStepNotFound = errors.New("Step function not found")
	// ErrInvalidReturnType is returned when Step returns something other than an object
	ErrInvalidReturnType = errors.New("invalid return type from scenario")
	// ErrUnknownScenario is returned for a name that is not in the library
	ErrUnknownScenario = errors.New("unknown scenario")
)

const DefaultTimeout = 100 * time.Millisecond

// Reading is one step of the environment. Nil fields are left untouched.
type Reading struct {
	Temperature *float64 `json:"temperature,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty"`
	Lux         *float64 `json:"lux,omitempty"`
	Infrared    *bool    `json:"infrared,omitempty"`
	Hall        *bool    `json:"hall,omitempty"`
	Fault       *bool    `json:"fault,omitempty"`
}

// Scenario is a loaded script. Step calls are serialized.
type Scenario struct {
	Name string

	mu      sync.Mutex
	vm      *goja.Runtime
	step    goja.Callable
	state   *State
	timeout time.Duration
	steps   uint64
}

// Load compiles script and resolves its Step function.
func Load(name, script string, timeout time.Duration) (*Scenario, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	prog, err := goja.Compile(name, script, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}

	s := &Scenario{Name: name, state: NewState(), timeout: timeout}
	s.vm = newRuntime(name, s.state)

	if err := s.guard(func() error {
		_, err := s.vm.RunProgram(prog)
		return err
	}); err != nil {
		if errors.Is(err, ErrTimeout) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}

	step, ok := goja.AssertFunction(s.vm.Get("Step"))
	if !ok {
		return nil, ErrStepNotFound
	}
	s.step = step
	return s, nil
}

// LoadBuiltin loads a scenario from the library.
func LoadBuiltin(name string, timeout time.Duration) (*Scenario, error) {
	script, ok := Builtin(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScenario, name)
	}
	return Load(name, script, timeout)
}

// guard runs fn and interrupts the VM if it exceeds the timeout.
func (s *Scenario) guard(fn func() error) error {
	timer := time.AfterFunc(s.timeout, func() {
		s.vm.Interrupt(ErrTimeout)
	})
	err := fn()
	timer.Stop()
	s.vm.ClearInterrupt()

	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		return ErrTimeout
	}
	return err
}

// Step evaluates the scenario at elapsed time t.
func (s *Scenario) Step(t time.Duration) (Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result goja.Value
	err := s.guard(func() error {
		var err error
		result, err = s.step(goja.Undefined(), s.vm.ToValue(t.Seconds()))
		return err
	})
	if err != nil {
		if errors.Is(err, ErrTimeout) {
			return Reading{}, err
		}
		return Reading{}, fmt.Errorf("step execution error: %w", err)
	}
	s.steps++
	return toReading(result.Export())
}

func (s *Scenario) Steps() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steps
}

// State exposes the variables kept by getState/setState.
func (s *Scenario) State() *State { return s.state }

func toReading(exported interface{}) (Reading, error) {
	if exported == nil {
		return Reading{}, nil
	}
	obj, ok := exported.(map[string]interface{})
	if !ok {
		return Reading{}, fmt.Errorf("%w: expected object, got %T", ErrInvalidReturnType, exported)
	}

	var r Reading
	floats := map[string]**float64{"temperature": &r.Temperature, "humidity": &r.Humidity, "lux": &r.Lux}
	for key, dst := range floats {
		v, ok := obj[key]
		if !ok || v == nil {
			continue
		}
		f, err := toFloat(v)
		if err != nil {
			return Reading{}, fmt.Errorf("%s: %w", key, err)
		}
		*dst = &f
	}
	bools := map[string]**bool{"infrared": &r.Infrared, "hall": &r.Hall, "fault": &r.Fault}
	for key, dst := range bools {
		v, ok := obj[key]
		if !ok || v == nil {
			continue
		}
		b, err := toBool(v)
		if err != nil {
			return Reading{}, fmt.Errorf("%s: %w", key, err)
		}
		*dst = &b
	}
	return r, nil
}
