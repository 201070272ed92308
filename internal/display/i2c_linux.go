//go:build linux

package display

import (
	"fmt"

	"golang.org/x/sys/unix"
	"tinygo.org/x/drivers/hd44780i2c"
)

// i2cSlave is I2C_SLAVE from <linux/i2c-dev.h>: select the peripheral
// address for subsequent reads and writes on the bus fd.
const i2cSlave = 0x0703

// I2CBus adapts a Linux /dev/i2c-N character device to the tinygo
// drivers bus interface, so the same HD44780 driver that runs on a
// microcontroller drives the panel from the Pi.
type I2CBus struct {
	fd   int
	addr uint16
}

// OpenI2C opens /dev/i2c-<bus>.
func OpenI2C(bus int) (*I2CBus, error) {
	path := fmt.Sprintf("/dev/i2c-%d", bus)
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &I2CBus{fd: fd, addr: ^uint16(0)}, nil
}

// Tx writes w to the peripheral at addr, then reads len(r) bytes into r.
func (b *I2CBus) Tx(addr uint16, w, r []byte) error {
	if addr != b.addr {
		if err := unix.IoctlSetInt(b.fd, i2cSlave, int(addr)); err != nil {
			return fmt.Errorf("select i2c address %#x: %w", addr, err)
		}
		b.addr = addr
	}
	if len(w) > 0 {
		if _, err := unix.Write(b.fd, w); err != nil {
			return fmt.Errorf("i2c write: %w", err)
		}
	}
	if len(r) > 0 {
		if _, err := unix.Read(b.fd, r); err != nil {
			return fmt.Errorf("i2c read: %w", err)
		}
	}
	return nil
}

// Close releases the bus fd.
func (b *I2CBus) Close() error {
	return unix.Close(b.fd)
}

// OpenLCD opens the panel on the given I2C bus and address and
// configures it for 16x2 operation. Close releases the bus.
func OpenLCD(bus int, addr uint8) (*LCD, error) {
	i2c, err := OpenI2C(bus)
	if err != nil {
		return nil, err
	}
	device := hd44780i2c.New(i2c, addr)
	if err := device.Configure(hd44780i2c.Config{Width: Cols, Height: Rows}); err != nil {
		i2c.Close()
		return nil, fmt.Errorf("configure lcd: %w", err)
	}
	return &LCD{device: device, closer: i2c}, nil
}
