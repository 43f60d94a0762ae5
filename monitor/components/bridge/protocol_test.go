package bridge

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFrameLayout(t *testing.T) {
	var buf bytes.Buffer
	f := Frame{Cmd: CmdTone, Pin: 6, A: 1000, B: 250}
	if err := WriteFrame(&buf, f, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{byte(CmdTone), 6, 0x03, 0xe8, 0, 0, 0, 0xfa}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("expected % x, got % x", want, buf.Bytes())
	}

	got, payload, err := ReadFrame(&buf)
	if err != nil || payload != nil || got != f {
		t.Errorf("decoded %+v %v %v", got, payload, err)
	}
}

func TestPrintPayload(t *testing.T) {
	var buf bytes.Buffer
	text := []byte("Welcome")
	if err := WriteFrame(&buf, Frame{Cmd: CmdPrint, B: int32(len(text))}, text); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, payload, err := ReadFrame(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(payload) != "Welcome" {
		t.Errorf("expected Welcome, got %q", payload)
	}
}

func TestPrintTooLong(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFrame(&buf, Frame{Cmd: CmdPrint}, make([]byte, MaxPrint+1)); !errors.Is(err, ErrPrintTooLong) {
		t.Errorf("expected ErrPrintTooLong on write, got %v", err)
	}

	buf.Reset()
	_ = WriteFrame(&buf, Frame{Cmd: CmdPrint, B: MaxPrint + 1}, nil)
	if _, _, err := ReadFrame(&buf); !errors.Is(err, ErrPrintTooLong) {
		t.Errorf("expected ErrPrintTooLong on read, got %v", err)
	}
}

func TestCenti(t *testing.T) {
	if got := toCenti(23.456); got != 2346 {
		t.Errorf("expected 2346, got %d", got)
	}
	if got := fromCenti(-512); got != -5.12 {
		t.Errorf("expected -5.12, got %v", got)
	}
	if got := toCenti(math.NaN()); got != math.MinInt32 {
		t.Errorf("expected NaN marker, got %d", got)
	}
	if !math.IsNaN(fromCenti(math.MinInt32)) {
		t.Error("expected NaN from marker")
	}
	if got := toCenti(1e12); got != math.MinInt32 {
		t.Errorf("expected overflow to map to NaN marker, got %d", got)
	}
}

func TestCommandString(t *testing.T) {
	if CmdGetKey.String() != "get_key" {
		t.Errorf("unexpected name %q", CmdGetKey.String())
	}
	if Command(0x42).String() != "cmd(0x42)" {
		t.Errorf("unexpected name %q", Command(0x42).String())
	}
}

func TestClipKeepsRunesWhole(t *testing.T) {
	// 63 ASCII bytes then a two-byte rune straddling the limit
	text := strings.Repeat("a", MaxPrint-1) + "°C"
	got := clip(text)
	if len(got) != MaxPrint-1 || !utf8.ValidString(got) {
		t.Errorf("expected %d valid bytes, got %d %q", MaxPrint-1, len(got), got)
	}
	if short := "T:22.00°C"; clip(short) != short {
		t.Errorf("short text changed: %q", clip(short))
	}
}
