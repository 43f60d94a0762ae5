package clock

import (
	"testing"
	"time"
)

func TestFakeSleepAdvances(t *testing.T) {
	c := NewFake(time.Second)
	c.Sleep(250 * time.Millisecond)
	c.Sleep(-time.Second)

	if got := c.Now(); got != 1250*time.Millisecond {
		t.Errorf("expected 1.25s, got %v", got)
	}
	if got := c.Slept(); got != 250*time.Millisecond {
		t.Errorf("expected 250ms slept, got %v", got)
	}
}

func TestFakeAdvanceIsNotSleep(t *testing.T) {
	c := NewFake(0)
	c.Advance(3 * time.Second)

	if c.Now() != 3*time.Second {
		t.Errorf("expected 3s, got %v", c.Now())
	}
	if c.Slept() != 0 {
		t.Errorf("advance should not count as sleep, got %v", c.Slept())
	}
}

func TestSystemIsMonotonic(t *testing.T) {
	c := NewSystem()
	a := c.Now()
	c.Sleep(time.Millisecond)
	if b := c.Now(); b <= a {
		t.Errorf("expected %v > %v", b, a)
	}
}
