package logic

import (
	"testing"

	"github.com/aymanmw1/streetlight/internal/clock"
)

func TestFirstSampleSeedsWithoutEvent(t *testing.T) {
	for _, first := range []bool{false, true} {
		l := NewTransitionLogger()
		if l.Seeded() {
			t.Fatal("new logger should not be seeded")
		}
		if event := l.Observe(first, clock.Time{Hours: 22}); event != nil {
			t.Errorf("first sample %v: expected no event, got %+v", first, event)
		}
		if !l.Seeded() {
			t.Errorf("first sample %v: logger should be seeded", first)
		}
	}
}

func TestNoEventOnStableRuns(t *testing.T) {
	for _, value := range []bool{false, true} {
		l := NewTransitionLogger()
		now := clock.Time{Hours: 22}
		for i := 0; i < 50; i++ {
			if event := l.Observe(value, now); event != nil {
				t.Fatalf("stable %v sample %d: unexpected event %+v", value, i, event)
			}
			now = now.AddSeconds(1)
		}
	}
}

func TestSunsetTransition(t *testing.T) {
	l := NewTransitionLogger()
	l.Observe(false, clock.Time{Hours: 18})

	at := clock.Time{Hours: 18, Minutes: 42, Seconds: 7}
	event := l.Observe(true, at)
	if event == nil {
		t.Fatal("day→night: expected SUNSET event")
	}
	if event.Kind != Sunset {
		t.Errorf("kind: got %s, want SUNSET", event.Kind)
	}
	if event.Time != at {
		t.Errorf("event time: got %v, want %v", event.Time, at)
	}

	sunrise, sunset := l.Times()
	if sunset != at {
		t.Errorf("latched sunset: got %v, want %v", sunset, at)
	}
	if sunrise != (clock.Time{}) {
		t.Errorf("sunrise slot: got %v, want zero before first sunrise", sunrise)
	}
}

func TestSunriseTransition(t *testing.T) {
	l := NewTransitionLogger()
	l.Observe(true, clock.Time{Hours: 5})

	at := clock.Time{Hours: 6, Minutes: 12}
	event := l.Observe(false, at)
	if event == nil {
		t.Fatal("night→day: expected SUNRISE event")
	}
	if event.Kind != Sunrise {
		t.Errorf("kind: got %s, want SUNRISE", event.Kind)
	}

	sunrise, _ := l.Times()
	if sunrise != at {
		t.Errorf("latched sunrise: got %v, want %v", sunrise, at)
	}
}

// Sequence [true, true, false]: no event on sample 1 (seed), none on
// sample 2 (no change), SUNRISE with snapshot time on sample 3.
func TestSeededNightThenDay(t *testing.T) {
	l := NewTransitionLogger()
	t0 := clock.Time{Hours: 5, Minutes: 59}

	if event := l.Observe(true, t0); event != nil {
		t.Fatalf("sample 1: unexpected event %+v", event)
	}
	if event := l.Observe(true, t0.AddSeconds(1)); event != nil {
		t.Fatalf("sample 2: unexpected event %+v", event)
	}
	at := t0.AddSeconds(2)
	event := l.Observe(false, at)
	if event == nil {
		t.Fatal("sample 3: expected SUNRISE event")
	}
	if event.Kind != Sunrise {
		t.Errorf("sample 3: got %s, want SUNRISE", event.Kind)
	}
	if event.Time != at {
		t.Errorf("sample 3: time got %v, want %v", event.Time, at)
	}
}

func TestSlotsKeepMostRecentOnly(t *testing.T) {
	l := NewTransitionLogger()
	l.Observe(true, clock.Time{})

	first := clock.Time{Hours: 6, Minutes: 10}
	l.Observe(false, first) // sunrise 1
	l.Observe(true, clock.Time{Hours: 18, Minutes: 30})
	second := clock.Time{Hours: 6, Minutes: 25}
	l.Observe(false, second) // sunrise 2 overwrites

	sunrise, sunset := l.Times()
	if sunrise != second {
		t.Errorf("sunrise slot: got %v, want most recent %v", sunrise, second)
	}
	if sunset != (clock.Time{Hours: 18, Minutes: 30}) {
		t.Errorf("sunset slot: got %v", sunset)
	}
}

func TestCounts(t *testing.T) {
	l := NewTransitionLogger()
	l.Observe(false, clock.Time{})
	l.Observe(true, clock.Time{})  // sunset
	l.Observe(false, clock.Time{}) // sunrise
	l.Observe(true, clock.Time{})  // sunset
	l.Observe(true, clock.Time{})  // stable

	counts := l.Counts()
	if counts.Sunset != 2 {
		t.Errorf("sunset count: got %d, want 2", counts.Sunset)
	}
	if counts.Sunrise != 1 {
		t.Errorf("sunrise count: got %d, want 1", counts.Sunrise)
	}
}

func TestAlternatingSamplesFireEveryTime(t *testing.T) {
	// Every change of isNight is a transition; there is no debounce.
	l := NewTransitionLogger()
	l.Observe(false, clock.Time{})

	events := 0
	value := true
	for i := 0; i < 10; i++ {
		if event := l.Observe(value, clock.Time{}); event != nil {
			events++
		}
		value = !value
	}
	if events != 10 {
		t.Errorf("alternating samples: got %d events, want 10", events)
	}
}
