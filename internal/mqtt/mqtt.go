// Package mqtt provides MQTT publishing with abstraction for testing.
package mqtt

import (
	"encoding/json"
	"time"

	"github.com/aymanmw1/streetlight/internal/logic"
)

// Topic is the MQTT topic for sunrise/sunset transition events.
const Topic = "streetlight/controller/events"

// TopicSystem is the MQTT topic for system lifecycle events.
const TopicSystem = "streetlight/controller/system"

// Publisher publishes events to MQTT.
type Publisher interface {
	// PublishTransition sends a sunrise/sunset event to the broker.
	// at is the host wall time of the observation; the event itself
	// carries the soft-clock reading.
	PublishTransition(event logic.TransitionEvent, at time.Time) error

	// PublishSystem sends a system lifecycle event to the broker.
	PublishSystem(event SystemEvent) error

	// Close disconnects from the broker.
	Close() error
}

// ConnectionStatus reports whether the MQTT connection is active.
type ConnectionStatus interface {
	IsConnected() bool
}

// SystemEvent represents a system lifecycle event (e.g., startup, shutdown, heartbeat).
type SystemEvent struct {
	Timestamp  time.Time
	Event      string // e.g., "STARTUP", "SHUTDOWN", "HEARTBEAT"
	Reason     string // e.g., "SIGTERM", "SIGINT" (shutdown only)
	RawPayload []byte // Pre-formatted JSON payload; if set, FormatSystemPayload returns it directly
	Retained   bool   // Whether the message should be retained by the broker
}

// Payload represents the MQTT message payload structure.
type Payload struct {
	Streetlight TransitionPayload `json:"streetlight"`
}

// TransitionPayload contains the transition event details. Timestamp is
// host wall time; ClockTime is the soft clock's reading, which is what
// the controller latches and displays.
type TransitionPayload struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
	ClockTime string `json:"clock_time"`
}

// FormatTransitionPayload creates the JSON payload for a transition event.
func FormatTransitionPayload(event logic.TransitionEvent, at time.Time) ([]byte, error) {
	payload := Payload{
		Streetlight: TransitionPayload{
			Timestamp: at.UTC().Format(time.RFC3339),
			Event:     string(event.Kind),
			ClockTime: event.Time.String(),
		},
	}
	return json.Marshal(payload)
}

// SystemPayload represents the MQTT message payload for system events
// that don't carry a full status snapshot.
type SystemPayload struct {
	System SystemPayloadInner `json:"system"`
}

// SystemPayloadInner contains the system event details.
type SystemPayloadInner struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
	Reason    string `json:"reason,omitempty"`
}

// FormatSystemPayload creates the JSON payload for a system event.
// If event.RawPayload is set, it is returned directly (used for full status snapshots).
func FormatSystemPayload(event SystemEvent) ([]byte, error) {
	if event.RawPayload != nil {
		return event.RawPayload, nil
	}

	payload := SystemPayload{
		System: SystemPayloadInner{
			Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
			Event:     event.Event,
			Reason:    event.Reason,
		},
	}
	return json.Marshal(payload)
}
