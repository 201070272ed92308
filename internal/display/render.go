package display

import (
	"github.com/aymanmw1/streetlight/internal/clock"
	"github.com/aymanmw1/streetlight/internal/logic"
)

// BannerLines returns the two startup banner rows.
func BannerLines() (string, string) {
	return "Street Light", "Controller"
}

// StatusLines formats the per-iteration status screen. Row 1 carries the
// ambient state and motion, row 2 the lamp state. Each field's
// alternatives have equal width: "Night "/"Day   ", "YES "/"NO  ",
// "ON   "/"OFF  ".
func StatusLines(frame logic.SensorFrame, cmd logic.LightCommand) (string, string) {
	state := "Day   "
	if frame.IsNight {
		state = "Night "
	}
	motion := "NO  "
	if frame.Motion {
		motion = "YES "
	}
	lamp := "OFF  "
	if cmd.LampOn {
		lamp = "ON   "
	}
	return state + "M:" + motion, "Light:" + lamp
}

// TransitionLines formats the full-screen sunrise/sunset report shown
// after a day/night crossing. The labels are padded to equal width.
func TransitionLines(sunrise, sunset clock.Time) (string, string) {
	return "Sunrise:" + sunrise.HHMM(), "Sunset :" + sunset.HHMM()
}

// Renderer draws controller screens onto a Screen.
type Renderer struct {
	screen Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Clear wipes the panel.
func (r *Renderer) Clear() error {
	return r.screen.Clear()
}

// ShowBanner clears the panel and draws the startup banner.
func (r *Renderer) ShowBanner() error {
	if err := r.screen.Clear(); err != nil {
		return err
	}
	l1, l2 := BannerLines()
	return r.writeRows(l1, l2)
}

// ShowStatus repaints the status screen in place. No clear is needed:
// every field is fixed width, so the rows overwrite fully.
func (r *Renderer) ShowStatus(frame logic.SensorFrame, cmd logic.LightCommand) error {
	l1, l2 := StatusLines(frame, cmd)
	return r.writeRows(l1, l2)
}

// ShowTransitions clears the panel and draws the sunrise/sunset screen.
// The caller holds it on the glass for the dwell duration.
func (r *Renderer) ShowTransitions(sunrise, sunset clock.Time) error {
	if err := r.screen.Clear(); err != nil {
		return err
	}
	l1, l2 := TransitionLines(sunrise, sunset)
	return r.writeRows(l1, l2)
}

func (r *Renderer) writeRows(line1, line2 string) error {
	if err := r.writeRow(1, line1); err != nil {
		return err
	}
	return r.writeRow(2, line2)
}

func (r *Renderer) writeRow(row int, s string) error {
	if err := r.screen.SetCursor(row, 1); err != nil {
		return err
	}
	return r.screen.Write(s)
}
