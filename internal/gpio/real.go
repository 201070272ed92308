//go:build linux

package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// RealSampler reads the LDR and PIR sensor modules using the Linux GPIO
// character device.
type RealSampler struct {
	chip   *gpiocdev.Chip
	ldrPin *gpiocdev.Line
	pirPin *gpiocdev.Line
}

// NewRealSampler creates a sampler for actual Raspberry Pi hardware.
func NewRealSampler(pinLDR, pinPIR int) (*RealSampler, error) {
	chip, err := gpiocdev.NewChip("gpiochip0")
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	// Request lines as input with pull-down so a disconnected sensor
	// module reads as day / no motion rather than floating.
	ldrLine, err := chip.RequestLine(pinLDR, gpiocdev.AsInput, gpiocdev.WithPullDown)
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request LDR pin %d: %w", pinLDR, err)
	}

	pirLine, err := chip.RequestLine(pinPIR, gpiocdev.AsInput, gpiocdev.WithPullDown)
	if err != nil {
		ldrLine.Close()
		chip.Close()
		return nil, fmt.Errorf("request PIR pin %d: %w", pinPIR, err)
	}

	return &RealSampler{
		chip:   chip,
		ldrPin: ldrLine,
		pirPin: pirLine,
	}, nil
}

// Sample returns the logical states (isNight, motion). Both modules
// output active-high.
func (s *RealSampler) Sample() (bool, bool, error) {
	nightRaw, err := s.ldrPin.Value()
	if err != nil {
		return false, false, fmt.Errorf("read LDR pin: %w", err)
	}

	motionRaw, err := s.pirPin.Value()
	if err != nil {
		return false, false, fmt.Errorf("read PIR pin: %w", err)
	}

	return nightRaw != 0, motionRaw != 0, nil
}

// Close releases GPIO resources, restoring the pins to input with
// pull-down to match Pi boot defaults.
func (s *RealSampler) Close() error {
	var errs []error

	for _, pin := range []*gpiocdev.Line{s.ldrPin, s.pirPin} {
		if pin == nil {
			continue
		}
		if err := pin.Reconfigure(gpiocdev.AsInput, gpiocdev.WithPullDown); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure pin: %w", err))
		}
		if err := pin.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close pin: %w", err))
		}
	}
	if s.chip != nil {
		if err := s.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// RealLamp drives the lamp output using the Linux GPIO character device.
type RealLamp struct {
	chip *gpiocdev.Chip
	pin  *gpiocdev.Line
}

// NewRealLamp creates a lamp driver on the given pin, initially off.
func NewRealLamp(pinLamp int) (*RealLamp, error) {
	chip, err := gpiocdev.NewChip("gpiochip0")
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	line, err := chip.RequestLine(pinLamp, gpiocdev.AsOutput(0))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request lamp pin %d: %w", pinLamp, err)
	}

	return &RealLamp{chip: chip, pin: line}, nil
}

// Set energizes or de-energizes the lamp.
func (l *RealLamp) Set(on bool) error {
	v := 0
	if on {
		v = 1
	}
	if err := l.pin.SetValue(v); err != nil {
		return fmt.Errorf("write lamp pin: %w", err)
	}
	return nil
}

// Close de-energizes the lamp, restores the pin to input with pull-down,
// and releases GPIO resources.
func (l *RealLamp) Close() error {
	var errs []error

	if l.pin != nil {
		if err := l.pin.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("lamp off: %w", err))
		}
		if err := l.pin.Reconfigure(gpiocdev.AsInput, gpiocdev.WithPullDown); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure lamp pin: %w", err))
		}
		if err := l.pin.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close lamp pin: %w", err))
		}
	}
	if l.chip != nil {
		if err := l.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
