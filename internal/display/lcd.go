package display

import (
	"io"

	"tinygo.org/x/drivers/hd44780i2c"
)

// LCD adapts an HD44780 16x2 module behind an I2C backpack to the Screen
// interface. The device must already be configured for a 16x2 panel.
type LCD struct {
	device hd44780i2c.Device
	closer io.Closer // underlying bus, nil when the caller owns it
}

// NewLCD creates an LCD backed by the given driver device. The caller
// keeps ownership of the bus; see OpenLCD for the managed path.
func NewLCD(device hd44780i2c.Device) *LCD {
	return &LCD{device: device}
}

// Clear blanks the panel and homes the cursor.
func (l *LCD) Clear() error {
	return l.device.ClearDisplay()
}

// SetCursor moves the cursor. The driver addresses (column, row)
// zero-based; Screen addresses (row, column) one-based.
func (l *LCD) SetCursor(row, col int) error {
	return l.device.SetCursor(uint8(col-1), uint8(row-1))
}

// Write prints s from the cursor position.
func (l *LCD) Write(s string) error {
	return l.device.Print([]byte(s))
}

// Close releases the underlying bus if this LCD owns one.
func (l *LCD) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
