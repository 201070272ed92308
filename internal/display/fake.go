package display

import "strings"

// FakeScreen records writes into an in-memory panel for test assertions.
type FakeScreen struct {
	buf cellBuffer

	// Clears counts calls to Clear.
	Clears int

	// Writes contains each string passed to Write, in order.
	Writes []string

	// Err, if set, is returned by every method.
	Err error
}

// NewFakeScreen creates a blank FakeScreen.
func NewFakeScreen() *FakeScreen {
	return &FakeScreen{buf: newCellBuffer()}
}

// Clear blanks the panel.
func (f *FakeScreen) Clear() error {
	if f.Err != nil {
		return f.Err
	}
	f.Clears++
	f.buf.blank()
	return nil
}

// SetCursor moves the cursor.
func (f *FakeScreen) SetCursor(row, col int) error {
	if f.Err != nil {
		return f.Err
	}
	return f.buf.setCursor(row, col)
}

// Write prints s from the cursor position.
func (f *FakeScreen) Write(s string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Writes = append(f.Writes, s)
	f.buf.write(s)
	return nil
}

// Row returns the full 16-character contents of a 1-based row.
func (f *FakeScreen) Row(row int) string {
	return f.buf.rowString(row)
}

// Line returns a row with trailing spaces trimmed.
func (f *FakeScreen) Line(row int) string {
	return strings.TrimRight(f.Row(row), " ")
}
