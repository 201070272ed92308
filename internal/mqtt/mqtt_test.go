package mqtt

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aymanmw1/streetlight/internal/clock"
	"github.com/aymanmw1/streetlight/internal/logic"
)

func TestFormatTransitionPayload(t *testing.T) {
	event := logic.TransitionEvent{
		Kind: logic.Sunset,
		Time: clock.Time{Hours: 18, Minutes: 42, Seconds: 7},
	}
	at := time.Date(2026, 3, 15, 18, 45, 0, 0, time.UTC)

	payload, err := FormatTransitionPayload(event, at)
	if err != nil {
		t.Fatalf("format: %v", err)
	}

	var p Payload
	if err := json.Unmarshal(payload, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Streetlight.Event != "SUNSET" {
		t.Errorf("event: got %q, want SUNSET", p.Streetlight.Event)
	}
	if p.Streetlight.ClockTime != "18:42:07" {
		t.Errorf("clock_time: got %q, want 18:42:07", p.Streetlight.ClockTime)
	}
	if p.Streetlight.Timestamp != "2026-03-15T18:45:00Z" {
		t.Errorf("timestamp: got %q", p.Streetlight.Timestamp)
	}
}

func TestFormatSystemPayload(t *testing.T) {
	event := SystemEvent{
		Timestamp: time.Date(2026, 3, 15, 6, 0, 0, 0, time.UTC),
		Event:     "SHUTDOWN",
		Reason:    "SIGTERM",
	}

	payload, err := FormatSystemPayload(event)
	if err != nil {
		t.Fatalf("format: %v", err)
	}

	var p SystemPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.System.Event != "SHUTDOWN" {
		t.Errorf("event: got %q", p.System.Event)
	}
	if p.System.Reason != "SIGTERM" {
		t.Errorf("reason: got %q", p.System.Reason)
	}
}

func TestFormatSystemPayloadRawPassthrough(t *testing.T) {
	raw := []byte(`{"custom":true}`)
	payload, err := FormatSystemPayload(SystemEvent{RawPayload: raw})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if string(payload) != string(raw) {
		t.Errorf("raw payload not passed through: got %s", payload)
	}
}

func TestFakePublisherRecords(t *testing.T) {
	f := NewFakePublisher()
	event := logic.TransitionEvent{Kind: logic.Sunrise, Time: clock.Time{Hours: 6}}
	at := time.Now()

	if err := f.PublishTransition(event, at); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(f.Transitions) != 1 || f.Transitions[0].Kind != logic.Sunrise {
		t.Errorf("transitions: got %+v", f.Transitions)
	}
	if len(f.Payloads) != 1 {
		t.Errorf("payloads: got %d", len(f.Payloads))
	}

	if err := f.PublishSystem(SystemEvent{Event: "STARTUP"}); err != nil {
		t.Fatalf("publish system: %v", err)
	}
	if len(f.SystemEvents) != 1 || f.SystemEvents[0].Event != "STARTUP" {
		t.Errorf("system events: got %+v", f.SystemEvents)
	}

	f.Close()
	if !f.Closed {
		t.Error("Closed should be true after Close")
	}

	f.Reset()
	if len(f.Transitions) != 0 || len(f.SystemEvents) != 0 || f.Closed {
		t.Error("Reset should clear all recorded state")
	}
}

func TestFakePublisherErrors(t *testing.T) {
	f := NewFakePublisher()
	f.PublishError = errors.New("boom")
	if err := f.PublishTransition(logic.TransitionEvent{}, time.Now()); err == nil {
		t.Error("expected configured publish error")
	}
	if len(f.Transitions) != 0 {
		t.Error("failed publish should not record the event")
	}

	f.PublishSystemError = errors.New("boom")
	if err := f.PublishSystem(SystemEvent{}); err == nil {
		t.Error("expected configured system publish error")
	}
}
