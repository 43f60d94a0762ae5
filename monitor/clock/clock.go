// Package clock provides the monotonic time source used by the state machine.
package clock

import (
	"sync"
	"time"
)

// Clock reports elapsed time since boot and can block for a duration.
type Clock interface {
	Now() time.Duration
	Sleep(d time.Duration)
}

// System is the wall clock, measured from its creation.
type System struct {
	start time.Time
}

func NewSystem() *System {
	return &System{start: time.Now()}
}

func (s *System) Now() time.Duration {
	return time.Since(s.start)
}

func (s *System) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// Fake is a manual clock for tests. Sleep advances it instantly.
type Fake struct {
	mu    sync.Mutex
	now   time.Duration
	slept time.Duration
}

func NewFake(start time.Duration) *Fake {
	return &Fake{now: start}
}

func (f *Fake) Now() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	f.mu.Lock()
	f.now += d
	f.slept += d
	f.mu.Unlock()
}

// Advance moves the clock forward without counting it as sleep.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	f.now += d
	f.mu.Unlock()
}

// Slept returns the total duration spent in Sleep.
func (f *Fake) Slept() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.slept
}
