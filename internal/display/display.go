// Package display renders the controller's screens on a 16x2 character
// panel. The Screen interface abstracts the character protocol (clear,
// cursor addressing, fixed-width writes); backends exist for an HD44780
// module behind an I2C backpack, for a plain terminal, and for tests.
//
// Every rendered field is space-padded to a constant width so a shorter
// value fully overwrites a longer one left on the glass.
package display

import "fmt"

// Panel geometry.
const (
	Rows = 2
	Cols = 16
)

// Screen is a character sink with addressable rows. Rows and columns are
// 1-based, matching HD44780 cursor addressing conventions.
type Screen interface {
	// Clear blanks the panel and homes the cursor.
	Clear() error

	// SetCursor moves the cursor to the given row and column.
	SetCursor(row, col int) error

	// Write prints s from the cursor position, advancing the cursor.
	// Characters past the last column are dropped.
	Write(s string) error
}

// cellBuffer is the in-memory panel model shared by the console and fake
// backends. Row and col are 0-based internally.
type cellBuffer struct {
	cells [Rows][Cols]byte
	row   int
	col   int
}

func newCellBuffer() cellBuffer {
	var b cellBuffer
	b.blank()
	return b
}

func (b *cellBuffer) blank() {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			b.cells[r][c] = ' '
		}
	}
	b.row, b.col = 0, 0
}

func (b *cellBuffer) setCursor(row, col int) error {
	if row < 1 || row > Rows || col < 1 {
		return fmt.Errorf("display: cursor out of range (%d,%d)", row, col)
	}
	b.row, b.col = row-1, col-1
	return nil
}

// write copies s into the buffer from the cursor. Overflow past the last
// column is dropped, as an HD44780 would push it into invisible DDRAM.
// Reports whether any visible cell changed.
func (b *cellBuffer) write(s string) bool {
	changed := false
	for i := 0; i < len(s); i++ {
		if b.col >= Cols {
			break
		}
		if b.cells[b.row][b.col] != s[i] {
			b.cells[b.row][b.col] = s[i]
			changed = true
		}
		b.col++
	}
	return changed
}

// rowString returns the full 16-character contents of a 1-based row.
func (b *cellBuffer) rowString(row int) string {
	return string(b.cells[row-1][:])
}
