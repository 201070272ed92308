// Package status provides a thread-safe status tracker for the
// streetlight daemon. It is read by the HTTP handlers and by heartbeat
// publishing.
package status

import (
	"sync"
	"time"

	"github.com/aymanmw1/streetlight/internal/clock"
	"github.com/aymanmw1/streetlight/internal/logic"
)

// Config contains daemon configuration for display.
type Config struct {
	PollMs      int64
	TickMs      int64
	DwellMs     int64
	HeartbeatMs int64
	Seed        string
	Broker      string
	HTTPAddr    string
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type — safe to use after the lock is released.
type Snapshot struct {
	Frame         logic.SensorFrame
	Lamp          logic.LightCommand
	Clock         clock.Time
	Seeded        bool // transition logger has absorbed its first sample
	Sunrise       clock.Time
	Sunset        clock.Time
	Counts        logic.EventCounts
	StartTime     time.Time
	Now           time.Time
	MQTTConnected bool
	Config        Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			Lamp:      logic.LightCommand{Level: logic.BrightnessOff},
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Update sets the current sensor frame, lamp command, and clock reading.
// Called from the control loop on every poll.
func (t *Tracker) Update(frame logic.SensorFrame, lamp logic.LightCommand, now clock.Time) {
	t.mu.Lock()
	t.snap.Frame = frame
	t.snap.Lamp = lamp
	t.snap.Clock = now
	t.mu.Unlock()
}

// UpdateTransitions sets the transition logger's latched state.
func (t *Tracker) UpdateTransitions(seeded bool, sunrise, sunset clock.Time, counts logic.EventCounts) {
	t.mu.Lock()
	t.snap.Seeded = seeded
	t.snap.Sunrise = sunrise
	t.snap.Sunset = sunset
	t.snap.Counts = counts
	t.mu.Unlock()
}

// SetMQTTConnected sets the MQTT connection status.
func (t *Tracker) SetMQTTConnected(connected bool) {
	t.mu.Lock()
	t.snap.MQTTConnected = connected
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
