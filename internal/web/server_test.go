package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aymanmw1/streetlight/internal/clock"
	"github.com/aymanmw1/streetlight/internal/logic"
	"github.com/aymanmw1/streetlight/internal/status"
)

func newTestServer(t *testing.T) (*httptest.Server, *status.Tracker) {
	t.Helper()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := status.Config{
		PollMs:      150,
		TickMs:      1000,
		DwellMs:     5000,
		HeartbeatMs: 900000,
		Seed:        "22:00:00",
		Broker:      "tcp://192.168.1.200:1883",
		HTTPAddr:    ":8080",
	}
	tr := status.NewTracker(start, cfg)
	srv := New(":0", tr)
	ts := httptest.NewServer(srv.httpServer.Handler)
	t.Cleanup(ts.Close)
	return ts, tr
}

func TestJSONEndpoint(t *testing.T) {
	ts, tr := newTestServer(t)
	frame := logic.SensorFrame{IsNight: true, Motion: true}
	tr.Update(frame, logic.Decide(frame), clock.Time{Hours: 23, Minutes: 5})
	tr.UpdateTransitions(true, clock.Time{Hours: 6, Minutes: 30}, clock.Time{Hours: 18, Minutes: 50}, logic.EventCounts{Sunrise: 1, Sunset: 2})
	tr.SetMQTTConnected(true)

	resp, err := http.Get(ts.URL + "/index.json")
	if err != nil {
		t.Fatalf("GET /index.json: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}

	var sj status.StatusJSON
	if err := json.NewDecoder(resp.Body).Decode(&sj); err != nil {
		t.Fatalf("decode JSON: %v", err)
	}

	if sj.Status.Ambient != "NIGHT" {
		t.Errorf("ambient: got %q, want NIGHT", sj.Status.Ambient)
	}
	if sj.Status.Lamp != "ON" {
		t.Errorf("lamp: got %q, want ON", sj.Status.Lamp)
	}
	if sj.Status.Clock != "23:05:00" {
		t.Errorf("clock: got %q", sj.Status.Clock)
	}
	if sj.Status.Sunset != "18:50:00" {
		t.Errorf("sunset: got %q", sj.Status.Sunset)
	}
	if sj.Status.Counts.Sunset != 2 {
		t.Errorf("sunset count: got %d", sj.Status.Counts.Sunset)
	}
	if !sj.Status.MQTT.Connected {
		t.Error("mqtt connected: got false")
	}
	if sj.Status.Config.Seed != "22:00:00" {
		t.Errorf("config seed: got %q", sj.Status.Config.Seed)
	}
}

func TestIndexPage(t *testing.T) {
	ts, tr := newTestServer(t)
	frame := logic.SensorFrame{IsNight: true, Motion: false}
	tr.Update(frame, logic.Decide(frame), clock.Time{Hours: 2})

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type: got %q, want text/html", ct)
	}

	body := readBody(t, resp)
	for _, want := range []string{"Street Light Controller", "NIGHT", "02:00:00", "OFF"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestUnknownPathIs404(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/nope")
	if err != nil {
		t.Fatalf("GET /nope: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 404 {
		t.Errorf("status: got %d, want 404", resp.StatusCode)
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	var sb strings.Builder
	buf := make([]byte, 4096)
	for {
		n, err := resp.Body.Read(buf)
		sb.Write(buf[:n])
		if err != nil {
			break
		}
	}
	return sb.String()
}
