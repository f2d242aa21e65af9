package panel

import (
	"image"

	"golang.org/x/image/draw"
)

// Panel is the radial control: it owns the wedge geometry, the touch state and
// the rendered frame.
type Panel struct {
	style Style
	geom  *Geometry

	state    Wedge
	listener Listener

	// invalidate is called whenever the panel needs to be redrawn.
	invalidate func()

	plate *image.RGBA
	frame *image.RGBA
	dirty bool
}

// New creates a panel with the given style. It has zero size until SetSize is
// called.
func New(style Style) *Panel {
	p := &Panel{
		style: style.withDefaults(),
		state: NoWedge,
	}
	p.SetSize(0, 0)
	return p
}

// SetSize rebuilds the geometry for a new widget size. The touch state is kept.
func (p *Panel) SetSize(width, height int) {
	p.geom = NewGeometry(width, height)
	p.plate = nil
	p.frame = nil
	p.requestRedraw()
}

// Size returns the current widget size.
func (p *Panel) Size() (width, height int) {
	return p.geom.Width, p.geom.Height
}

// Geometry returns the current geometry.
func (p *Panel) Geometry() *Geometry {
	return p.geom
}

// Style returns the style the panel draws with.
func (p *Panel) Style() Style {
	return p.style
}

// State returns the currently pressed wedge, or NoWedge.
func (p *Panel) State() Wedge {
	return p.state
}

// SetListener registers the wedge press listener, replacing any previous one.
// A nil listener disables notifications.
func (p *Panel) SetListener(l Listener) {
	p.listener = l
}

// OnInvalidate registers a function called whenever the panel requests a
// redraw.
func (p *Panel) OnInvalidate(fn func()) {
	p.invalidate = fn
}

// HitTest returns the wedge containing the panel-space point (x, y).
func (p *Panel) HitTest(x, y float64) Wedge {
	return p.geom.HitTest(x, y)
}

// HandlePointer feeds a pointer event through the touch state machine,
// notifies the listener when the transition emits, and requests a redraw.
// It reports whether the action was recognized.
func (p *Panel) HandlePointer(ev PointerEvent) bool {
	var hit Wedge = NoWedge
	switch ev.Action {
	case ActionDown, ActionMove:
		hit = p.geom.HitTest(ev.X, ev.Y)
	case ActionUp, ActionCancel:
	default:
		return false
	}

	next, emit := Transition(p.state, ev.Action, hit)
	p.state = next
	if emit.OK && p.listener != nil {
		p.listener.OnWedgePress(emit.Wedge)
	}

	p.requestRedraw()
	return true
}

// Dirty reports whether a redraw was requested since the last render.
func (p *Panel) Dirty() bool {
	return p.dirty
}

// Frame returns the rendered panel, re-rendering only if a redraw is pending.
// The returned image is owned by the panel and is reused between frames.
func (p *Panel) Frame() *image.RGBA {
	if p.frame != nil && !p.dirty {
		return p.frame
	}

	if p.plate == nil {
		p.plate = renderPlate(p.geom, p.style)
	}
	if p.frame == nil {
		p.frame = image.NewRGBA(p.plate.Bounds())
	}

	draw.Draw(p.frame, p.frame.Bounds(), p.plate, image.Point{}, draw.Src)
	renderWedges(p.frame, p.geom, p.style, p.state)
	p.dirty = false
	return p.frame
}

// Draw renders the panel onto dst with the panel's origin at dst.Bounds().Min.
func (p *Panel) Draw(dst draw.Image) {
	frame := p.Frame()
	r := frame.Bounds().Add(dst.Bounds().Min)
	draw.Draw(dst, r, frame, image.Point{}, draw.Over)
}

func (p *Panel) requestRedraw() {
	p.dirty = true
	if p.invalidate != nil {
		p.invalidate()
	}
}
