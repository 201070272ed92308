// Package logic contains the pure control policy for the street light:
// the lighting decision table and the sunrise/sunset transition logger.
// This package has NO hardware, display, or I/O dependencies; clock
// readings enter only as values passed by the caller.
package logic

import "github.com/aymanmw1/streetlight/internal/clock"

// Brightness is the commanded lamp level. The output is binary — there is
// no dimmed intermediate level.
type Brightness string

const (
	BrightnessOff  Brightness = "OFF"
	BrightnessFull Brightness = "FULL"
)

// SensorFrame is one polled reading of both sensors. Frames are consumed
// the iteration they are sampled and never retained.
type SensorFrame struct {
	IsNight bool // LDR: true when ambient light is below the day threshold
	Motion  bool // PIR: true when motion is present
}

// LightCommand is the decision engine's output for one frame.
type LightCommand struct {
	LampOn bool
	Level  Brightness
}

// TransitionKind identifies a day/night boundary crossing.
type TransitionKind string

const (
	Sunrise TransitionKind = "SUNRISE"
	Sunset  TransitionKind = "SUNSET"
)

// TransitionEvent records a boundary crossing and the soft-clock reading
// at which it was observed.
type TransitionEvent struct {
	Kind TransitionKind
	Time clock.Time
}

// EventCounts tracks the number of transitions observed since startup.
type EventCounts struct {
	Sunrise int
	Sunset  int
}
