// Package hal defines the hardware capabilities the monitor core consumes.
// Implementations live in the board (simulated) and bridge (TCP) packages.
package hal

import "time"

// Level is a digital pin level.
type Level bool

const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "HIGH"
	}
	return "LOW"
}

// PinMode configures a GPIO pin direction.
type PinMode uint8

const (
	Input PinMode = iota
	Output
)

// Pin map of the reference wiring.
const (
	PinLEDBlue       = 8
	PinLEDGreen      = 9
	PinLEDRed        = 10
	PinBuzzer        = 6
	PinDHT           = 13
	PinInfrared      = 14
	PinHall          = 15
	PinPhotoResistor = 54 // A0 on a Mega-class board
	AnalogResolution = 1024
	DisplayColumns   = 16
	DisplayRows      = 2
	KeypadRows       = 4
	KeypadColumns    = 4
)

// NoKey is what a keypad scan yields when nothing is pressed.
const NoKey Key = 0

// Key is a decoded keypad character.
type Key byte

// Keymap is the 4x4 matrix layout.
var Keymap = [KeypadRows][KeypadColumns]Key{
	{'1', '2', '3', 'A'},
	{'4', '5', '6', 'B'},
	{'7', '8', '9', 'C'},
	{'*', '0', '#', 'D'},
}

// ValidKey reports whether k is present on the keymap.
func ValidKey(k Key) bool {
	for _, row := range Keymap {
		for _, c := range row {
			if c == k {
				return true
			}
		}
	}
	return false
}

// IsDigit reports whether k is one of the ten digit keys.
func (k Key) IsDigit() bool { return k >= '0' && k <= '9' }

func (k Key) String() string {
	if k == NoKey {
		return ""
	}
	return string(rune(k))
}

// Display is a character display.
type Display interface {
	Clear()
	SetCursor(col, row int)
	Print(text string)
}

// Keypad is a non-blocking matrix keypad.
type Keypad interface {
	// GetKey returns the next decoded key, or false when none is pending.
	GetKey() (Key, bool)
}

// GPIO is the digital/analog pin abstraction.
type GPIO interface {
	PinMode(pin int, mode PinMode)
	DigitalRead(pin int) Level
	DigitalWrite(pin int, level Level)
	// AnalogRead returns a sample in [0, AnalogResolution), or a negative
	// value when the sample could not be taken.
	AnalogRead(pin int) int
}

// Climate is a temperature/humidity sensor. Both reads return NaN on a
// transient fault.
type Climate interface {
	ReadTemperature() float64
	ReadHumidity() float64
}

// Tone drives a buzzer. A zero duration plays until NoTone.
type Tone interface {
	Tone(pin int, freqHz int, d time.Duration)
	NoTone(pin int)
}

// Board is everything the monitor needs from the hardware.
type Board interface {
	Display
	Keypad
	GPIO
	Climate
	Tone
}
