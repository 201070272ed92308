package logic

import "github.com/aymanmw1/streetlight/internal/clock"

// TransitionLogger detects day/night crossings in the sampled
// ambient-light signal and latches the clock reading of the most recent
// sunrise and sunset. It keeps one iteration of memory (the previous
// isNight value); the very first sample only seeds that memory and is
// never evaluated as a transition, so startup cannot fabricate an event
// against an arbitrary default.
type TransitionLogger struct {
	seeded    bool
	prevNight bool
	sunrise   clock.Time
	sunset    clock.Time
	counts    EventCounts
}

// NewTransitionLogger creates an unseeded logger. The first call to
// Observe establishes the baseline.
func NewTransitionLogger() *TransitionLogger {
	return &TransitionLogger{}
}

// Observe feeds one isNight sample together with the clock reading at
// which it was taken. It returns at most one event: a SUNSET on a
// day→night edge, a SUNRISE on a night→day edge, nil otherwise. Each
// event overwrites the corresponding latched slot — only the most recent
// occurrence is retained.
func (l *TransitionLogger) Observe(isNight bool, now clock.Time) *TransitionEvent {
	if !l.seeded {
		l.seeded = true
		l.prevNight = isNight
		return nil
	}
	if isNight == l.prevNight {
		return nil
	}
	l.prevNight = isNight

	if isNight {
		l.sunset = now
		l.counts.Sunset++
		return &TransitionEvent{Kind: Sunset, Time: now}
	}
	l.sunrise = now
	l.counts.Sunrise++
	return &TransitionEvent{Kind: Sunrise, Time: now}
}

// Seeded reports whether the logger has absorbed its first sample.
func (l *TransitionLogger) Seeded() bool {
	return l.seeded
}

// Times returns the latched sunrise and sunset readings. A slot that has
// not been written yet reads as midnight; callers that need to tell
// midnight from "never" should also check Seeded and the counts.
func (l *TransitionLogger) Times() (sunrise, sunset clock.Time) {
	return l.sunrise, l.sunset
}

// Counts returns the transition totals since startup.
func (l *TransitionLogger) Counts() EventCounts {
	return l.counts
}
