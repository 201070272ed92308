package status

import (
	"encoding/json"
	"time"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Event         string     `json:"event,omitempty"`
	Reason        string     `json:"reason,omitempty"`
	Ambient       string     `json:"ambient"`
	Motion        bool       `json:"motion"`
	Lamp          string     `json:"lamp"`
	Level         string     `json:"level"`
	Clock         string     `json:"clock"`
	Sunrise       string     `json:"sunrise"`
	Sunset        string     `json:"sunset"`
	Ready         bool       `json:"ready"`
	UptimeSeconds int64      `json:"uptime_seconds"`
	StartTime     string     `json:"start_time"`
	Timestamp     string     `json:"timestamp"`
	MQTT          MQTTStatus `json:"mqtt"`
	Counts        CountsJSON `json:"event_counts"`
	Config        ConfigJSON `json:"config"`
}

// MQTTStatus reports MQTT connection state.
type MQTTStatus struct {
	Connected bool   `json:"connected"`
	Broker    string `json:"broker"`
}

// CountsJSON is the JSON representation of transition counts.
type CountsJSON struct {
	Sunrise int `json:"sunrise"`
	Sunset  int `json:"sunset"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	PollMs      int64  `json:"poll_ms"`
	TickMs      int64  `json:"tick_ms"`
	DwellMs     int64  `json:"dwell_ms"`
	HeartbeatMs int64  `json:"heartbeat_ms"`
	Seed        string `json:"seed"`
	Broker      string `json:"broker"`
	HTTPAddr    string `json:"http_addr"`
}

// ambientString renders the frame's light state for JSON and pages.
func ambientString(isNight bool) string {
	if isNight {
		return "NIGHT"
	}
	return "DAY"
}

// lampString renders the lamp state for JSON and pages.
func lampString(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}

// ToJSON converts a snapshot into its JSON representation, optionally
// tagged with a system event name and reason.
func ToJSON(snap Snapshot, event, reason string) StatusJSON {
	return StatusJSON{
		Status: StatusInner{
			Event:         event,
			Reason:        reason,
			Ambient:       ambientString(snap.Frame.IsNight),
			Motion:        snap.Frame.Motion,
			Lamp:          lampString(snap.Lamp.LampOn),
			Level:         string(snap.Lamp.Level),
			Clock:         snap.Clock.String(),
			Sunrise:       snap.Sunrise.String(),
			Sunset:        snap.Sunset.String(),
			Ready:         snap.Seeded,
			UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
			StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
			Timestamp:     snap.Now.UTC().Format(time.RFC3339),
			MQTT:          MQTTStatus{Connected: snap.MQTTConnected, Broker: snap.Config.Broker},
			Counts:        CountsJSON{Sunrise: snap.Counts.Sunrise, Sunset: snap.Counts.Sunset},
			Config: ConfigJSON{
				PollMs:      snap.Config.PollMs,
				TickMs:      snap.Config.TickMs,
				DwellMs:     snap.Config.DwellMs,
				HeartbeatMs: snap.Config.HeartbeatMs,
				Seed:        snap.Config.Seed,
				Broker:      snap.Config.Broker,
				HTTPAddr:    snap.Config.HTTPAddr,
			},
		},
	}
}

// FormatStatusEvent renders a full status snapshot as the payload for a
// system lifecycle event (STARTUP, SHUTDOWN, HEARTBEAT).
func FormatStatusEvent(snap Snapshot, event, reason string) []byte {
	data, _ := json.Marshal(ToJSON(snap, event, reason))
	return data
}
