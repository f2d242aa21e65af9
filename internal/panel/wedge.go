// Package panel implements an eight-wedge radial control surface: geometry,
// rendering, hit testing, and the press/drag/release state machine.
//
// A Panel is not safe for concurrent use. Hosts call it from a single UI
// goroutine or serialize access themselves.
package panel

import "fmt"

// Count is the number of wedges arranged around the panel.
const Count = 8

// Wedge identifies one of the eight wedges, or NoWedge.
// Wedge 0 points right of center; indices increase clockwise on screen.
type Wedge int8

// NoWedge means no wedge is pressed.
const NoWedge Wedge = -1

var directions = [Count]string{
	"right",
	"down-right",
	"down",
	"down-left",
	"left",
	"up-left",
	"up",
	"up-right",
}

// Valid reports whether w names an actual wedge (0..7).
func (w Wedge) Valid() bool {
	return w >= 0 && w < Count
}

// Direction returns the screen direction the wedge points to, for example
// "up-left". NoWedge returns "none".
func (w Wedge) Direction() string {
	if !w.Valid() {
		return "none"
	}
	return directions[w]
}

// String implements fmt.Stringer.
func (w Wedge) String() string {
	if !w.Valid() {
		return "none"
	}
	return fmt.Sprintf("%d (%s)", int(w), directions[w])
}

// ParseWedge converts an integer in {-1, 0..7} into a Wedge.
func ParseWedge(i int) (Wedge, error) {
	if i < int(NoWedge) || i >= Count {
		return NoWedge, fmt.Errorf("wedge index %d out of range [-1, %d]", i, Count-1)
	}
	return Wedge(i), nil
}
