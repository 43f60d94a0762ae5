package scenario

import (
	"sync"
	"time"
)

// State holds the variables a scenario keeps between steps through
// getState/setState.
type State struct {
	Variables map[string]interface{} `json:"variables"`
	UpdatedAt time.Time              `json:"updatedAt"`
	mu        sync.RWMutex
}

func NewState() *State {
	return &State{Variables: make(map[string]interface{})}
}

// GetVariable returns the value of a variable (nil if not set)
func (s *State) GetVariable(name string) interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Variables[name]
}

// SetVariable sets the value of a variable
func (s *State) SetVariable(name string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Variables[name] = value
	s.UpdatedAt = time.Now()
}

// Reset clears all variables
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Variables = make(map[string]interface{})
	s.UpdatedAt = time.Now()
}

// Snapshot returns a shallow copy of the variables
func (s *State) Snapshot() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]interface{}, len(s.Variables))
	for k, v := range s.Variables {
		out[k] = v
	}
	return out
}
