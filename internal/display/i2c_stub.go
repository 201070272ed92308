//go:build !linux

package display

import "errors"

// OpenLCD requires the Linux I2C character device; the console backend
// serves on other platforms.
func OpenLCD(bus int, addr uint8) (*LCD, error) {
	return nil, errors.New("display: lcd backend requires linux i2c support")
}
