// Package signal plays the monitor's audio and LED feedback patterns.
// Every pattern is synchronous: it returns once the pattern has finished.
package signal

import (
	"time"

	"github.com/R3DPanda1/envmon/monitor/clock"
	"github.com/R3DPanda1/envmon/monitor/components/hal"
)

const (
	NoteDuration = 500 * time.Millisecond
	AlarmCycles  = 5
	AlarmHigh    = 1000
	AlarmLow     = 500
	AlarmHalf    = 250 * time.Millisecond
	SirenHz      = 1000
	PulseHold    = 1000 * time.Millisecond
	WelcomeHold  = 1000 * time.Millisecond
	LockoutHold  = 2000 * time.Millisecond
)

// SuccessNotes is the ascending C-E-G welcome arpeggio.
var SuccessNotes = []int{262, 330, 392}

// Output is the hardware a Signaler drives.
type Output interface {
	hal.Tone
	DigitalWrite(pin int, level hal.Level)
}

type Signaler struct {
	out    Output
	clock  clock.Clock
	buzzer int
}

func New(out Output, c clock.Clock, buzzerPin int) *Signaler {
	return &Signaler{out: out, clock: c, buzzer: buzzerPin}
}

// SuccessTone plays three ascending notes.
func (s *Signaler) SuccessTone() {
	for _, f := range SuccessNotes {
		s.out.Tone(s.buzzer, f, NoteDuration)
		s.clock.Sleep(NoteDuration)
	}
	s.out.NoTone(s.buzzer)
}

// AlarmPattern alternates two tones for AlarmCycles cycles.
func (s *Signaler) AlarmPattern() {
	for i := 0; i < AlarmCycles; i++ {
		s.out.Tone(s.buzzer, AlarmHigh, AlarmHalf)
		s.clock.Sleep(AlarmHalf)
		s.out.Tone(s.buzzer, AlarmLow, AlarmHalf)
		s.clock.Sleep(AlarmHalf)
	}
	s.out.NoTone(s.buzzer)
}

// Indicate holds an LED on for hold.
func (s *Signaler) Indicate(led int, hold time.Duration) {
	s.out.DigitalWrite(led, hal.High)
	s.clock.Sleep(hold)
	s.out.DigitalWrite(led, hal.Low)
}

// Confirm lights an LED, plays the success tone and keeps the LED lit for
// hold.
func (s *Signaler) Confirm(led int, hold time.Duration) {
	s.out.DigitalWrite(led, hal.High)
	s.SuccessTone()
	s.clock.Sleep(hold)
	s.out.DigitalWrite(led, hal.Low)
}

// Pulse lights an LED, sounds the alarm pattern, then keeps the LED lit for
// hold before switching it off.
func (s *Signaler) Pulse(led int, hold time.Duration) {
	s.out.DigitalWrite(led, hal.High)
	s.AlarmPattern()
	s.clock.Sleep(hold)
	s.out.DigitalWrite(led, hal.Low)
}

// Siren starts a continuous tone that lasts until Silence.
func (s *Signaler) Siren(freqHz int) {
	s.out.Tone(s.buzzer, freqHz, 0)
}

func (s *Signaler) Silence() {
	s.out.NoTone(s.buzzer)
}
