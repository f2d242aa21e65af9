package panel

// Action is the kind of pointer event delivered by a host.
type Action uint8

const (
	// ActionDown is the first contact of a press.
	ActionDown Action = iota + 1
	// ActionMove is a drag while pressed.
	ActionMove
	// ActionUp is the end of a press.
	ActionUp
	// ActionCancel aborts a press without a release notification.
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionMove:
		return "move"
	case ActionUp:
		return "up"
	case ActionCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is a raw pointer event in the panel's local pixel space.
type PointerEvent struct {
	Action Action
	X, Y   float64
}

// Emission is the listener notification produced by a transition, if any.
type Emission struct {
	Wedge Wedge
	OK    bool
}

// Transition computes the next touch state for an action, given the wedge hit
// by the event. It is pure: drawing and listener delivery are up to the caller.
//
// Leaving every wedge by dragging resets the state without notifying, while a
// release always notifies NoWedge.
func Transition(cur Wedge, action Action, hit Wedge) (Wedge, Emission) {
	switch action {
	case ActionDown, ActionMove:
		if action == ActionMove && hit == cur {
			return cur, Emission{}
		}
		if hit == NoWedge {
			return NoWedge, Emission{}
		}
		return hit, Emission{Wedge: hit, OK: true}
	case ActionCancel:
		return NoWedge, Emission{}
	case ActionUp:
		return NoWedge, Emission{Wedge: NoWedge, OK: true}
	default:
		return cur, Emission{}
	}
}

// Listener receives wedge press notifications.
type Listener interface {
	// OnWedgePress is called with the newly pressed wedge, or NoWedge when
	// the panel is released.
	OnWedgePress(w Wedge)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(w Wedge)

// OnWedgePress calls f(w).
func (f ListenerFunc) OnWedgePress(w Wedge) {
	f(w)
}
