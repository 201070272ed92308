package display

import (
	"fmt"
	"io"
)

// Console renders the panel to an io.Writer, one line per repaint in the
// form "lcd: |....row1....|....row2....|". It repaints only when the
// visible contents change, so a status screen rewritten with identical
// text every poll stays quiet. Used when the daemon runs without a
// physical LCD.
type Console struct {
	w   io.Writer
	buf cellBuffer
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w, buf: newCellBuffer()}
}

// Clear blanks the panel and homes the cursor.
func (c *Console) Clear() error {
	c.buf.blank()
	return nil
}

// SetCursor moves the cursor.
func (c *Console) SetCursor(row, col int) error {
	return c.buf.setCursor(row, col)
}

// Write prints s from the cursor position and repaints if anything
// visible changed.
func (c *Console) Write(s string) error {
	if !c.buf.write(s) {
		return nil
	}
	_, err := fmt.Fprintf(c.w, "lcd: |%s|%s|\n", c.buf.rowString(1), c.buf.rowString(2))
	return err
}
