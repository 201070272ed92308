// Package clock implements the software real-time clock for the street
// light controller. The clock is a seconds/minutes/hours counter advanced
// by a fixed periodic tick, wrapping at 24 hours. There is no date, no
// persistence, and no synchronization to real wall time: the counter
// starts from a configured seed on every boot and drifts with the tick
// source.
//
// Concurrency: a single writer (the tick goroutine) calls Tick; any
// number of readers call Now. All three fields live in one atomically
// updated word, so a reader can never observe a torn combination such as
// minutes from before a carry and hours from after it.
package clock

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// Time is a wall-clock triple. The zero value is midnight.
type Time struct {
	Hours   int // 0-23
	Minutes int // 0-59
	Seconds int // 0-59
}

// SecondsPerDay is the wraparound period of the clock.
const SecondsPerDay = 24 * 60 * 60

// DefaultSeed is the time loaded into the clock at startup when no seed
// is configured.
var DefaultSeed = Time{Hours: 22}

// String formats the time as HH:MM:SS.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}

// HHMM formats the time as HH:MM, the form shown on the transition screen.
func (t Time) HHMM() string {
	return fmt.Sprintf("%02d:%02d", t.Hours, t.Minutes)
}

// SecondOfDay returns the time as seconds since midnight.
func (t Time) SecondOfDay() int {
	return t.Hours*3600 + t.Minutes*60 + t.Seconds
}

// AddSeconds returns the time advanced by n seconds, modulo one day.
// Negative n moves backwards.
func (t Time) AddSeconds(n int) Time {
	s := (t.SecondOfDay() + n) % SecondsPerDay
	if s < 0 {
		s += SecondsPerDay
	}
	return Time{
		Hours:   s / 3600,
		Minutes: s / 60 % 60,
		Seconds: s % 60,
	}
}

// Parse converts an HH:MM:SS string into a Time. The form is strict:
// two digits per field, colon-separated, nothing else.
func Parse(s string) (Time, error) {
	if len(s) != 8 || s[2] != ':' || s[5] != ':' {
		return Time{}, fmt.Errorf("parse time %q: want HH:MM:SS", s)
	}
	var t Time
	if _, err := fmt.Sscanf(s, "%02d:%02d:%02d", &t.Hours, &t.Minutes, &t.Seconds); err != nil {
		return Time{}, fmt.Errorf("parse time %q: want HH:MM:SS", s)
	}
	if t.Hours < 0 || t.Hours > 23 || t.Minutes < 0 || t.Minutes > 59 || t.Seconds < 0 || t.Seconds > 59 {
		return Time{}, fmt.Errorf("parse time %q: out of range", s)
	}
	return t, nil
}

// Clock is the soft clock. Create with New; the zero value reads as
// midnight.
type Clock struct {
	// hours<<16 | minutes<<8 | seconds
	state atomic.Uint32
}

// New returns a clock reading the given seed time.
func New(seed Time) *Clock {
	c := &Clock{}
	c.state.Store(pack(seed))
	return c
}

// Tick advances the clock by one second, carrying seconds into minutes,
// minutes into hours, and wrapping hours at 24. It is infallible, does no
// I/O, and completes in constant time. Only the single tick goroutine may
// call Tick; concurrent readers are safe.
func (c *Clock) Tick() {
	t := unpack(c.state.Load())
	t.Seconds++
	if t.Seconds >= 60 {
		t.Seconds = 0
		t.Minutes++
		if t.Minutes >= 60 {
			t.Minutes = 0
			t.Hours++
			if t.Hours >= 24 {
				t.Hours = 0
			}
		}
	}
	c.state.Store(pack(t))
}

// Now returns a consistent snapshot of the current clock reading.
func (c *Clock) Now() Time {
	return unpack(c.state.Load())
}

// Run advances the clock once per received tick until ctx is cancelled.
// Pass a time.Ticker channel with the configured tick period; the period
// is fixed for the life of the clock and cumulative drift is accepted.
func (c *Clock) Run(ctx context.Context, tick <-chan time.Time) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
			c.Tick()
		}
	}
}

func pack(t Time) uint32 {
	return uint32(t.Hours)<<16 | uint32(t.Minutes)<<8 | uint32(t.Seconds)
}

func unpack(v uint32) Time {
	return Time{
		Hours:   int(v >> 16 & 0xff),
		Minutes: int(v >> 8 & 0xff),
		Seconds: int(v & 0xff),
	}
}
