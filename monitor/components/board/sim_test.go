package board

import (
	"errors"
	"math"
	"testing"

	"github.com/R3DPanda1/envmon/monitor/components/hal"
	"github.com/R3DPanda1/envmon/monitor/components/light"
)

func TestSimDefaultsAreSafe(t *testing.T) {
	b := NewSim(0)
	if tc := b.ReadTemperature(); tc != DefaultTemperature {
		t.Errorf("expected %v, got %v", DefaultTemperature, tc)
	}
	lux := light.Lux(b.AnalogRead(hal.PinPhotoResistor))
	if lux < 200 || lux > 700 {
		t.Errorf("default light %v outside the comfortable band", lux)
	}
	if b.DigitalRead(hal.PinInfrared) != hal.Low {
		t.Error("infrared should start low")
	}
}

func TestSimPressKey(t *testing.T) {
	b := NewSim(0)
	if err := b.PressKeys("06#"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range "06#" {
		k, ok := b.GetKey()
		if !ok || k != hal.Key(want) {
			t.Fatalf("expected %c, got %q ok=%v", want, k, ok)
		}
	}
	if _, ok := b.GetKey(); ok {
		t.Error("expected empty keypad")
	}

	if err := b.PressKey('x'); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("expected ErrUnknownKey, got %v", err)
	}
}

func TestSimFault(t *testing.T) {
	b := NewSim(0)
	b.SetFault(true)
	if !math.IsNaN(b.ReadTemperature()) || !math.IsNaN(b.ReadHumidity()) {
		t.Error("expected NaN climate while faulted")
	}
	b.SetFault(false)
	b.SetClimate(45, 30)
	if b.ReadTemperature() != 45 || b.ReadHumidity() != 30 {
		t.Error("expected configured climate after fault cleared")
	}
	if b.ClimateReads() != 2 {
		t.Errorf("expected 2 climate polls, got %d", b.ClimateReads())
	}
}

func TestSimUnknownAnalogPin(t *testing.T) {
	b := NewSim(0)
	if v := b.AnalogRead(99); v != -1 {
		t.Errorf("expected -1, got %d", v)
	}
}

func TestSimDisplayHook(t *testing.T) {
	b := NewSim(0)
	var got [][hal.DisplayRows]string
	b.OnDisplay(func(lines [hal.DisplayRows]string) {
		// the board must not hold its lock here
		_ = b.Lines()
		got = append(got, lines)
	})

	b.Clear()
	b.Print("Welcome")
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[1][0] != "Welcome" {
		t.Errorf("expected Welcome, got %q", got[1])
	}
}

func TestSimSnapshot(t *testing.T) {
	b := NewSim(0)
	b.DigitalWrite(hal.PinLEDRed, hal.High)
	b.SetDigital(hal.PinHall, hal.High)
	b.Tone(hal.PinBuzzer, 1000, 0)
	_ = b.PressKey('1')
	b.SetLight(650)

	s := b.Snapshot()
	if !s.LEDs["red"] || s.LEDs["green"] {
		t.Errorf("unexpected LEDs %v", s.LEDs)
	}
	if !s.Hall || s.Infrared {
		t.Errorf("unexpected proximity inputs %+v", s)
	}
	if !s.Buzzer.Active || s.Buzzer.FreqHz != 1000 || s.Buzzer.Tones != 1 {
		t.Errorf("unexpected buzzer %+v", s.Buzzer)
	}
	if s.PendingKeys != 1 {
		t.Errorf("expected 1 pending key, got %d", s.PendingKeys)
	}
	if math.Abs(s.Lux-650)/650 > 0.02 {
		t.Errorf("expected about 650 lux, got %v", s.Lux)
	}

	b.NoTone(hal.PinBuzzer)
	if b.Snapshot().Buzzer.Active {
		t.Error("expected buzzer off")
	}
}

func TestSimSnapshotFaultyLight(t *testing.T) {
	b := NewSim(0)
	b.SetAnalog(hal.PinPhotoResistor, 2000)
	if s := b.Snapshot(); s.Lux != -1 {
		t.Errorf("expected -1 lux marker, got %v", s.Lux)
	}
}
