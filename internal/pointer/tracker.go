// Package pointer turns per-frame samples of a mouse or touch pointer into
// discrete panel pointer events.
package pointer

import "github.com/phinze/controlpanel/internal/panel"

// Sample is the pointer state observed in one frame.
type Sample struct {
	// Pressed is true while the button or finger is down.
	Pressed bool
	// Focused is false when the host window lost input focus.
	Focused bool
	X, Y    int
}

// Tracker remembers the previous sample and emits the events between it and
// the next one.
type Tracker struct {
	prev Sample
}

// Pressed reports whether the tracker is inside a press.
func (t *Tracker) Pressed() bool {
	return t.prev.Pressed
}

// Next consumes a sample and returns the resulting events, if any.
//
// A press that is interrupted by a focus loss is cancelled rather than
// released. A move is only reported when the position changed.
func (t *Tracker) Next(s Sample) []panel.PointerEvent {
	prev := t.prev
	if !s.Focused {
		s.Pressed = false
	}
	t.prev = s

	ev := func(a panel.Action) []panel.PointerEvent {
		return []panel.PointerEvent{{Action: a, X: float64(s.X), Y: float64(s.Y)}}
	}

	switch {
	case !prev.Pressed && s.Pressed:
		return ev(panel.ActionDown)
	case prev.Pressed && !s.Focused:
		return ev(panel.ActionCancel)
	case prev.Pressed && !s.Pressed:
		return ev(panel.ActionUp)
	case prev.Pressed && (s.X != prev.X || s.Y != prev.Y):
		return ev(panel.ActionMove)
	}
	return nil
}
