// Package board provides an in-memory board that satisfies hal.Board. The
// monitor core drives it from the tick loop while the operator panel and the
// scenario runner change its inputs from other goroutines.
package board

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/R3DPanda1/envmon/monitor/components/hal"
	"github.com/R3DPanda1/envmon/monitor/components/light"
)

var ErrUnknownKey = errors.New("key is not on the keypad")

const (
	DefaultTemperature = 22.0
	DefaultHumidity    = 40.0
	DefaultLux         = 400.0
)

// Buzzer is the last tone request seen by the board.
type Buzzer struct {
	Active   bool          `json:"active"`
	FreqHz   int           `json:"freqHz"`
	Duration time.Duration `json:"duration"`
	Tones    int           `json:"tones"`
}

// Snapshot is a copy of the board state for the panel.
type Snapshot struct {
	Lines       [hal.DisplayRows]string `json:"lines"`
	LEDs        map[string]bool         `json:"leds"`
	Infrared    bool                    `json:"infrared"`
	Hall        bool                    `json:"hall"`
	Analog      int                     `json:"analog"`
	Lux         float64                 `json:"lux"`
	Temperature float64                 `json:"temperature"`
	Humidity    float64                 `json:"humidity"`
	Fault       bool                    `json:"fault"`
	Buzzer      Buzzer                  `json:"buzzer"`
	PendingKeys int                     `json:"pendingKeys"`
}

type SimBoard struct {
	mu sync.Mutex

	lcd     *LCD
	keys    *KeyBuffer
	modes   map[int]hal.PinMode
	digital map[int]hal.Level
	analog  map[int]int

	temperature float64
	humidity    float64
	fault       bool
	buzzer      Buzzer

	climateReads int
	onDisplay    func([hal.DisplayRows]string)
}

// NewSim returns a board in a comfortable environment: climate and light
// inside every threshold, proximity inputs low.
func NewSim(keyBufferSize int) *SimBoard {
	return &SimBoard{
		lcd:         NewLCD(),
		keys:        NewKeyBuffer(keyBufferSize),
		modes:       make(map[int]hal.PinMode),
		digital:     make(map[int]hal.Level),
		analog:      map[int]int{hal.PinPhotoResistor: light.AnalogForLux(DefaultLux)},
		temperature: DefaultTemperature,
		humidity:    DefaultHumidity,
	}
}

// OnDisplay registers fn to receive the display contents after each write.
// fn runs on the writer's goroutine without the board lock held.
func (b *SimBoard) OnDisplay(fn func([hal.DisplayRows]string)) {
	b.mu.Lock()
	b.onDisplay = fn
	b.mu.Unlock()
}

// ---- hal.Display ----

func (b *SimBoard) Clear() {
	b.mu.Lock()
	b.lcd.Clear()
	b.notifyLocked()
}

func (b *SimBoard) SetCursor(col, row int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lcd.SetCursor(col, row)
}

func (b *SimBoard) Print(text string) {
	b.mu.Lock()
	b.lcd.Print(text)
	b.notifyLocked()
}

// notifyLocked releases the lock before calling the display hook.
func (b *SimBoard) notifyLocked() {
	fn := b.onDisplay
	lines := b.lcd.Lines()
	b.mu.Unlock()
	if fn != nil {
		fn(lines)
	}
}

func (b *SimBoard) Lines() [hal.DisplayRows]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lcd.Lines()
}

// ---- hal.Keypad ----

func (b *SimBoard) GetKey() (hal.Key, bool) {
	return b.keys.TryPop()
}

// PressKey queues a key as if it had been pressed on the keypad.
func (b *SimBoard) PressKey(k hal.Key) error {
	if !hal.ValidKey(k) {
		return fmt.Errorf("%w: %q", ErrUnknownKey, rune(k))
	}
	b.keys.Push(k)
	return nil
}

// PressKeys queues every key of seq in order.
func (b *SimBoard) PressKeys(seq string) error {
	for i := 0; i < len(seq); i++ {
		if err := b.PressKey(hal.Key(seq[i])); err != nil {
			return err
		}
	}
	return nil
}

func (b *SimBoard) DropKeys() int {
	return b.keys.Drain()
}

// ---- hal.GPIO ----

func (b *SimBoard) PinMode(pin int, mode hal.PinMode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.modes[pin] = mode
}

func (b *SimBoard) DigitalRead(pin int) hal.Level {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.digital[pin]
}

func (b *SimBoard) DigitalWrite(pin int, level hal.Level) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.digital[pin] = level
}

func (b *SimBoard) AnalogRead(pin int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.analog[pin]
	if !ok {
		return -1
	}
	return v
}

// SetDigital drives an input pin, e.g. the infrared or Hall sensor output.
func (b *SimBoard) SetDigital(pin int, level hal.Level) {
	b.DigitalWrite(pin, level)
}

func (b *SimBoard) SetAnalog(pin, value int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.analog[pin] = value
}

// SetLight sets the photoresistor sample that reads back as lux.
func (b *SimBoard) SetLight(lux float64) {
	b.SetAnalog(hal.PinPhotoResistor, light.AnalogForLux(lux))
}

// ---- hal.Climate ----

func (b *SimBoard) ReadTemperature() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.climateReads++
	if b.fault {
		return math.NaN()
	}
	return b.temperature
}

func (b *SimBoard) ReadHumidity() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fault {
		return math.NaN()
	}
	return b.humidity
}

func (b *SimBoard) SetClimate(temperature, humidity float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.temperature = temperature
	b.humidity = humidity
}

// Climate returns the configured climate, ignoring the fault switch.
func (b *SimBoard) Climate() (temperature, humidity float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.temperature, b.humidity
}

// SetFault makes both climate reads return NaN until cleared.
func (b *SimBoard) SetFault(fault bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fault = fault
}

// ClimateReads counts temperature reads, i.e. climate polls.
func (b *SimBoard) ClimateReads() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.climateReads
}

// ---- hal.Tone ----

func (b *SimBoard) Tone(pin int, freqHz int, d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buzzer = Buzzer{Active: true, FreqHz: freqHz, Duration: d, Tones: b.buzzer.Tones + 1}
}

func (b *SimBoard) NoTone(pin int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buzzer.Active = false
	b.buzzer.FreqHz = 0
	b.buzzer.Duration = 0
}

func (b *SimBoard) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	a, ok := b.analog[hal.PinPhotoResistor]
	if !ok {
		a = -1
	}
	s := Snapshot{
		Lines: b.lcd.Lines(),
		LEDs: map[string]bool{
			"blue":  bool(b.digital[hal.PinLEDBlue]),
			"green": bool(b.digital[hal.PinLEDGreen]),
			"red":   bool(b.digital[hal.PinLEDRed]),
		},
		Infrared:    bool(b.digital[hal.PinInfrared]),
		Hall:        bool(b.digital[hal.PinHall]),
		Analog:      a,
		Lux:         light.Lux(a),
		Temperature: b.temperature,
		Humidity:    b.humidity,
		Fault:       b.fault,
		Buzzer:      b.buzzer,
		PendingKeys: b.keys.Len(),
	}
	if math.IsNaN(s.Lux) {
		// NaN has no JSON encoding
		s.Lux = -1
	}
	return s
}

var _ hal.Board = (*SimBoard)(nil)
