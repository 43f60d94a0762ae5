package board

import "testing"

func TestLCDPrintAndClear(t *testing.T) {
	l := NewLCD()
	l.Print("Ambient monitor")
	l.SetCursor(0, 1)
	l.Print("T:25.00C H:40.00")

	lines := l.Lines()
	if lines[0] != "Ambient monitor" || lines[1] != "T:25.00C H:40.00" {
		t.Fatalf("unexpected lines %q", lines)
	}

	l.Clear()
	if lines := l.Lines(); lines[0] != "" || lines[1] != "" {
		t.Errorf("expected blank display, got %q", lines)
	}
}

func TestLCDClipsLongText(t *testing.T) {
	l := NewLCD()
	l.Print("0123456789abcdefXYZ")
	if got := l.Lines()[0]; got != "0123456789abcdef" {
		t.Errorf("expected clipped row, got %q", got)
	}
	if got := l.Lines()[1]; got != "" {
		t.Errorf("overflow leaked into row 1: %q", got)
	}
}

func TestLCDCursorOverwrites(t *testing.T) {
	l := NewLCD()
	l.Print("Light: High")
	l.SetCursor(7, 0)
	l.Print("Low ")
	if got := l.Lines()[0]; got != "Light: Low" {
		t.Errorf("expected overwrite, got %q", got)
	}
}

func TestLCDCursorClamped(t *testing.T) {
	l := NewLCD()
	l.SetCursor(-3, 9)
	l.Print("x")
	if got := l.Lines()[1]; got != "x" {
		t.Errorf("expected write on last row, got %q", l.Lines())
	}
}
