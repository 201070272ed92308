package gpio

import "errors"

// FakeSampler is a test double that returns scripted sensor readings.
type FakeSampler struct {
	// Samples contains scripted (isNight, motion) values to return.
	// Each call to Sample() consumes the next one.
	Samples []Sample

	// index tracks the current position in Samples
	index int

	// Closed tracks if Close was called
	Closed bool

	// ReadError, if set, will be returned by Sample()
	ReadError error
}

// Sample is a single scripted sensor reading.
type Sample struct {
	Night  bool
	Motion bool
}

// NewFakeSampler creates a FakeSampler with the given samples.
func NewFakeSampler(samples []Sample) *FakeSampler {
	return &FakeSampler{Samples: samples}
}

// Sample returns the next scripted reading. If the script is exhausted,
// the last reading repeats.
func (f *FakeSampler) Sample() (bool, bool, error) {
	if f.ReadError != nil {
		return false, false, f.ReadError
	}

	if len(f.Samples) == 0 {
		return false, false, errors.New("no samples configured")
	}

	s := f.Samples[f.index]
	if f.index < len(f.Samples)-1 {
		f.index++
	}

	return s.Night, s.Motion, nil
}

// Close marks the sampler as closed.
func (f *FakeSampler) Close() error {
	f.Closed = true
	return nil
}

// Reset rewinds the sampler to the beginning of its script.
func (f *FakeSampler) Reset() {
	f.index = 0
	f.Closed = false
}

// FakeLamp records every commanded lamp state.
type FakeLamp struct {
	// Writes contains each state passed to Set, in order.
	Writes []bool

	// SetError, if set, will be returned by Set()
	SetError error

	// Closed tracks if Close was called
	Closed bool
}

// NewFakeLamp creates a FakeLamp.
func NewFakeLamp() *FakeLamp {
	return &FakeLamp{}
}

// Set records the commanded state.
func (f *FakeLamp) Set(on bool) error {
	if f.SetError != nil {
		return f.SetError
	}
	f.Writes = append(f.Writes, on)
	return nil
}

// On returns the most recently commanded state, or false if the lamp was
// never commanded.
func (f *FakeLamp) On() bool {
	if len(f.Writes) == 0 {
		return false
	}
	return f.Writes[len(f.Writes)-1]
}

// Close marks the lamp as closed.
func (f *FakeLamp) Close() error {
	f.Closed = true
	return nil
}
