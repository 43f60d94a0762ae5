package board

import (
	"strings"

	"github.com/R3DPanda1/envmon/monitor/components/hal"
)

// LCD is a character grid with a write cursor. Text past the last column
// is clipped.
type LCD struct {
	cells [hal.DisplayRows][hal.DisplayColumns]byte
	col   int
	row   int
}

func NewLCD() *LCD {
	l := &LCD{}
	l.Clear()
	return l
}

func (l *LCD) Clear() {
	for r := range l.cells {
		for c := range l.cells[r] {
			l.cells[r][c] = ' '
		}
	}
	l.col, l.row = 0, 0
}

func (l *LCD) SetCursor(col, row int) {
	l.col = clamp(col, 0, hal.DisplayColumns)
	l.row = clamp(row, 0, hal.DisplayRows-1)
}

func (l *LCD) Print(text string) {
	for i := 0; i < len(text) && l.col < hal.DisplayColumns; i++ {
		ch := text[i]
		if ch < 0x20 || ch > 0x7e {
			ch = '?'
		}
		l.cells[l.row][l.col] = ch
		l.col++
	}
}

// Lines returns each row with trailing blanks removed.
func (l *LCD) Lines() [hal.DisplayRows]string {
	var out [hal.DisplayRows]string
	for r := range l.cells {
		out[r] = strings.TrimRight(string(l.cells[r][:]), " ")
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
