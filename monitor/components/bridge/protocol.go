// Package bridge carries hal.Board calls over TCP to an IO bridge process.
//
// Every request is one 8 byte frame, cmd | pin | a (uint16 BE) | b (int32 BE),
// and is answered by exactly one frame with the same command. Print requests
// are followed by b bytes of text. Climate values travel in hundredths, with
// math.MinInt32 standing for an invalid reading.
package bridge

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	FrameSize = 8
	MaxPrint  = 64
	nanCenti  = math.MinInt32
)

var (
	ErrUnknownCommand = errors.New("unknown bridge command")
	ErrPrintTooLong   = errors.New("print payload too long")
	ErrRemote         = errors.New("bridge reported an error")
	ErrMismatch       = errors.New("reply does not match request")
)

type Command byte

const (
	CmdPinMode Command = iota + 1
	CmdDigitalWrite
	CmdDigitalRead
	CmdAnalogRead
	CmdTone
	CmdNoTone
	CmdGetKey
	CmdTemperature
	CmdHumidity
	CmdClear
	CmdSetCursor
	CmdPrint
	CmdError Command = 0xff
)

var commandNames = map[Command]string{
	CmdPinMode:      "pin_mode",
	CmdDigitalWrite: "digital_write",
	CmdDigitalRead:  "digital_read",
	CmdAnalogRead:   "analog_read",
	CmdTone:         "tone",
	CmdNoTone:       "no_tone",
	CmdGetKey:       "get_key",
	CmdTemperature:  "temperature",
	CmdHumidity:     "humidity",
	CmdClear:        "clear",
	CmdSetCursor:    "set_cursor",
	CmdPrint:        "print",
	CmdError:        "error",
}

func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return fmt.Sprintf("cmd(0x%02x)", byte(c))
}

type Frame struct {
	Cmd Command
	Pin byte
	A   uint16
	B   int32
}

func (f Frame) encode(buf []byte) {
	buf[0] = byte(f.Cmd)
	buf[1] = f.Pin
	binary.BigEndian.PutUint16(buf[2:4], f.A)
	binary.BigEndian.PutUint32(buf[4:8], uint32(f.B))
}

func decode(buf []byte) Frame {
	return Frame{
		Cmd: Command(buf[0]),
		Pin: buf[1],
		A:   binary.BigEndian.Uint16(buf[2:4]),
		B:   int32(binary.BigEndian.Uint32(buf[4:8])),
	}
}

// WriteFrame writes f followed by payload, which only Print carries.
func WriteFrame(w io.Writer, f Frame, payload []byte) error {
	if len(payload) > MaxPrint {
		return ErrPrintTooLong
	}
	buf := make([]byte, FrameSize+len(payload))
	f.encode(buf)
	copy(buf[FrameSize:], payload)
	_, err := w.Write(buf)
	return err
}

// ReadFrame reads one frame and, for Print, its payload.
func ReadFrame(r io.Reader) (Frame, []byte, error) {
	var buf [FrameSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Frame{}, nil, err
	}
	f := decode(buf[:])
	if f.Cmd != CmdPrint {
		return f, nil, nil
	}
	if f.B < 0 || f.B > MaxPrint {
		return f, nil, fmt.Errorf("%w: %d bytes", ErrPrintTooLong, f.B)
	}
	payload := make([]byte, f.B)
	if _, err := io.ReadFull(r, payload); err != nil {
		return f, nil, err
	}
	return f, payload, nil
}

func toCenti(v float64) int32 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nanCenti
	}
	c := math.Round(v * 100)
	if c <= math.MinInt32 || c > math.MaxInt32 {
		return nanCenti
	}
	return int32(c)
}

func fromCenti(c int32) float64 {
	if c == nanCenti {
		return math.NaN()
	}
	return float64(c) / 100
}
