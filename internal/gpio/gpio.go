// Package gpio provides the sensor inputs and lamp output with hardware
// abstraction. The real implementations use the Linux GPIO character
// device; the fakes allow testing without hardware.
package gpio

// Sampler reads the two sensor inputs.
type Sampler interface {
	// Sample returns the logical sensor states (isNight, motion).
	// Both sensor modules output active-high: line high = night, line
	// high = motion present.
	Sample() (bool, bool, error)

	// Close releases GPIO resources.
	Close() error
}

// Lamp drives the street light output.
type Lamp interface {
	// Set energizes (true) or de-energizes (false) the lamp.
	Set(on bool) error

	// Close releases GPIO resources, leaving the lamp de-energized.
	Close() error
}

// Default pin assignments (BCM numbering).
const (
	DefaultPinLDR  = 17 // ambient light sensor module
	DefaultPinPIR  = 27 // motion sensor module
	DefaultPinLamp = 22 // lamp driver
)
