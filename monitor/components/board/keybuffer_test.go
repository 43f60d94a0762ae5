package board

import (
	"testing"

	"github.com/R3DPanda1/envmon/monitor/components/hal"
)

func TestKeyBufferPushPop(t *testing.T) {
	kb := NewKeyBuffer(4)
	kb.Push('5')

	k, ok := kb.TryPop()
	if !ok {
		t.Fatal("expected ok=true")
	}
	if k != '5' {
		t.Errorf("expected '5', got %q", k)
	}
}

func TestKeyBufferEmpty(t *testing.T) {
	kb := NewKeyBuffer(4)
	if k, ok := kb.TryPop(); ok || k != hal.NoKey {
		t.Errorf("expected no key, got %q ok=%v", k, ok)
	}
}

func TestKeyBufferBackpressure(t *testing.T) {
	kb := NewKeyBuffer(2)
	kb.Push('1')
	kb.Push('2')
	kb.Push('3') // should drop '1'

	k, _ := kb.TryPop()
	if k != '2' {
		t.Errorf("expected '2' after overflow, got %q", k)
	}
	if kb.Len() != 1 {
		t.Errorf("expected 1 pending, got %d", kb.Len())
	}
}

func TestKeyBufferDrain(t *testing.T) {
	kb := NewKeyBuffer(0)
	for _, k := range "0690#" {
		kb.Push(hal.Key(k))
	}
	if n := kb.Drain(); n != 5 {
		t.Errorf("expected 5 drained, got %d", n)
	}
	if kb.Len() != 0 {
		t.Errorf("expected empty buffer, got %d", kb.Len())
	}
}
