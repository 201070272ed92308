//go:build !linux

package gpio

import "errors"

var errUnsupported = errors.New("gpio: not supported on this platform (requires Linux)")

// RealSampler is not available on non-Linux platforms.
type RealSampler struct{}

// NewRealSampler returns an error on non-Linux platforms.
func NewRealSampler(pinLDR, pinPIR int) (*RealSampler, error) {
	return nil, errUnsupported
}

// Sample is not implemented on non-Linux platforms.
func (s *RealSampler) Sample() (bool, bool, error) {
	return false, false, errUnsupported
}

// Close is not implemented on non-Linux platforms.
func (s *RealSampler) Close() error { return nil }

// RealLamp is not available on non-Linux platforms.
type RealLamp struct{}

// NewRealLamp returns an error on non-Linux platforms.
func NewRealLamp(pinLamp int) (*RealLamp, error) {
	return nil, errUnsupported
}

// Set is not implemented on non-Linux platforms.
func (l *RealLamp) Set(on bool) error { return errUnsupported }

// Close is not implemented on non-Linux platforms.
func (l *RealLamp) Close() error { return nil }
