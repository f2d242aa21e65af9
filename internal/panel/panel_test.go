package panel

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects listener notifications.
type recorder struct {
	events []Wedge
}

func (r *recorder) OnWedgePress(w Wedge) {
	r.events = append(r.events, w)
}

func newTestPanel(t *testing.T, size int) (*Panel, *recorder) {
	t.Helper()
	p := New(DefaultStyle())
	p.SetSize(size, size)
	rec := &recorder{}
	p.SetListener(rec)
	return p, rec
}

func at(p *Panel, a Action, w Wedge) PointerEvent {
	c := p.Geometry().WedgeCenter(w)
	return PointerEvent{Action: a, X: c.X, Y: c.Y}
}

func TestPanelPressDragRelease(t *testing.T) {
	p, rec := newTestPanel(t, 240)
	require.Equal(t, NoWedge, p.State())

	p.HandlePointer(at(p, ActionDown, 3))
	assert.Equal(t, Wedge(3), p.State())
	assert.Equal(t, []Wedge{3}, rec.events)

	p.HandlePointer(at(p, ActionMove, 3))
	assert.Equal(t, Wedge(3), p.State())
	assert.Equal(t, []Wedge{3}, rec.events)

	p.HandlePointer(at(p, ActionMove, 5))
	assert.Equal(t, Wedge(5), p.State())
	assert.Equal(t, []Wedge{3, 5}, rec.events)

	p.HandlePointer(at(p, ActionUp, 5))
	assert.Equal(t, NoWedge, p.State())
	assert.Equal(t, []Wedge{3, 5, NoWedge}, rec.events)
}

func TestPanelDownOutside(t *testing.T) {
	p, rec := newTestPanel(t, 240)
	c := p.Geometry().Center()

	p.HandlePointer(PointerEvent{Action: ActionDown, X: c.X, Y: c.Y})
	assert.Equal(t, NoWedge, p.State())
	assert.Empty(t, rec.events)
}

func TestPanelCancel(t *testing.T) {
	p, rec := newTestPanel(t, 240)

	p.HandlePointer(at(p, ActionDown, 6))
	p.HandlePointer(PointerEvent{Action: ActionCancel})
	assert.Equal(t, NoWedge, p.State())
	assert.Equal(t, []Wedge{6}, rec.events)

	p.HandlePointer(PointerEvent{Action: ActionCancel})
	assert.Equal(t, NoWedge, p.State())
	assert.Equal(t, []Wedge{6}, rec.events)
}

// Dragging off every wedge clears the state silently; only a release reports
// NoWedge.
func TestPanelDragOffIsSilent(t *testing.T) {
	p, rec := newTestPanel(t, 240)
	c := p.Geometry().Center()

	p.HandlePointer(at(p, ActionDown, 1))
	p.HandlePointer(PointerEvent{Action: ActionMove, X: c.X, Y: c.Y})
	assert.Equal(t, NoWedge, p.State())
	assert.Equal(t, []Wedge{1}, rec.events)

	p.HandlePointer(PointerEvent{Action: ActionUp, X: c.X, Y: c.Y})
	assert.Equal(t, []Wedge{1, NoWedge}, rec.events)
}

func TestPanelWithoutListener(t *testing.T) {
	p := New(DefaultStyle())
	p.SetSize(240, 240)

	assert.NotPanics(t, func() {
		p.HandlePointer(at(p, ActionDown, 0))
		p.HandlePointer(at(p, ActionUp, 0))
	})
}

func TestPanelListenerFunc(t *testing.T) {
	p := New(DefaultStyle())
	p.SetSize(240, 240)

	var got []Wedge
	p.SetListener(ListenerFunc(func(w Wedge) { got = append(got, w) }))
	p.HandlePointer(at(p, ActionDown, 7))
	assert.Equal(t, []Wedge{7}, got)

	p.SetListener(nil)
	p.HandlePointer(at(p, ActionUp, 7))
	assert.Equal(t, []Wedge{7}, got)
}

func TestPanelInvalidate(t *testing.T) {
	p := New(DefaultStyle())
	redraws := 0
	p.OnInvalidate(func() { redraws++ })

	p.SetSize(240, 240)
	assert.Equal(t, 1, redraws)

	p.Frame()
	assert.False(t, p.Dirty())

	for _, a := range []Action{ActionDown, ActionMove, ActionCancel, ActionUp} {
		assert.True(t, p.HandlePointer(PointerEvent{Action: a}))
	}
	assert.Equal(t, 5, redraws)
	assert.True(t, p.Dirty())

	// Unknown actions are ignored entirely.
	assert.False(t, p.HandlePointer(PointerEvent{Action: Action(42)}))
	assert.Equal(t, 5, redraws)
}

func TestPanelResizeKeepsState(t *testing.T) {
	p, _ := newTestPanel(t, 240)
	p.HandlePointer(at(p, ActionDown, 2))

	p.SetSize(400, 400)
	w, h := p.Size()
	assert.Equal(t, 400, w)
	assert.Equal(t, 400, h)
	assert.Equal(t, Wedge(2), p.State())

	c := p.Geometry().WedgeCenter(4)
	assert.Equal(t, Wedge(4), p.HitTest(c.X, c.Y))
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestPanelRender(t *testing.T) {
	p, _ := newTestPanel(t, 240)
	st := p.Style()

	frame := p.Frame()
	require.Equal(t, image.Rect(0, 0, 240, 240), frame.Bounds())

	c := p.Geometry().Center()
	assert.Equal(t, rgba(st.PlateColor), frame.RGBAAt(int(c.X), int(c.Y)))

	// Outlined wedges keep the plate color inside.
	wc := p.Geometry().WedgeCenter(3)
	assert.Equal(t, rgba(st.PlateColor), frame.RGBAAt(int(wc.X), int(wc.Y)))

	// The pressed wedge is filled.
	p.HandlePointer(at(p, ActionDown, 3))
	frame = p.Frame()
	assert.Equal(t, rgba(st.WedgeColor), frame.RGBAAt(int(wc.X), int(wc.Y)))

	other := p.Geometry().WedgeCenter(0)
	assert.Equal(t, rgba(st.PlateColor), frame.RGBAAt(int(other.X), int(other.Y)))

	// Released again.
	p.HandlePointer(at(p, ActionUp, 3))
	frame = p.Frame()
	assert.Equal(t, rgba(st.PlateColor), frame.RGBAAt(int(wc.X), int(wc.Y)))
}

func TestPanelRenderOutline(t *testing.T) {
	p, _ := newTestPanel(t, 240)
	st := p.Style()
	frame := p.Frame()

	// The tip of wedge 0 carries the outline stroke.
	tip := p.Geometry().Template[1]
	c := p.Geometry().Center()
	got := frame.RGBAAt(int(c.X+tip.X)-1, int(c.Y))
	assert.NotEqual(t, rgba(st.PlateColor), got)
}

func TestPanelDrawOffset(t *testing.T) {
	p, _ := newTestPanel(t, 120)
	dst := image.NewRGBA(image.Rect(100, 100, 300, 300))
	p.Draw(dst)

	st := p.Style()
	assert.Equal(t, rgba(st.PlateColor), dst.RGBAAt(160, 160))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(250, 250))
}

func TestPanelShadow(t *testing.T) {
	p, _ := newTestPanel(t, 240)
	frame := p.Frame()

	// The shadow shows past the plate edge.
	assert.NotZero(t, frame.RGBAAt(236, 236).A)
}

func TestPanelFrameLarge(t *testing.T) {
	p := New(DefaultStyle())

	start := time.Now()
	for _, size := range []int{400, 800, 1080} {
		p.SetSize(size, size)
		frame := p.Frame()
		require.Equal(t, image.Rect(0, 0, size, size), frame.Bounds())
	}
	assert.Less(t, time.Since(start), 2*time.Second)

	c := p.Geometry().Center()
	assert.Equal(t, rgba(p.Style().PlateColor), p.Frame().RGBAAt(int(c.X), int(c.Y)))
}

func TestPanelZeroSize(t *testing.T) {
	p := New(Style{})
	frame := p.Frame()
	assert.True(t, frame.Bounds().Empty())
	assert.Equal(t, NoWedge, p.HitTest(0, 0))
}
