// Package deck hosts the control panel on a Stream Deck Plus: the panel is
// drawn on a square of the touch strip and taps and swipes on that square are
// replayed as pointer events.
package deck

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"github.com/phinze/controlpanel/internal/device"
	"github.com/phinze/controlpanel/internal/panel"
	"golang.org/x/image/draw"
)

// ErrNoTouchStrip is returned by Start for devices without a touch strip.
var ErrNoTouchStrip = errors.New("deck: device has no touch strip")

// Options configures a Host.
type Options struct {
	// StripX is the left edge of the panel's square on the touch strip.
	StripX int

	// Key shows the last pressed direction; zero disables it.
	Key device.KeyID

	// Brightness in percent, applied on Start.
	Brightness byte

	// Flash is how long a tapped wedge stays pressed before the release is
	// replayed. Long taps hold for twice as long.
	Flash time.Duration

	// Listener receives the panel's wedge notifications.
	Listener panel.Listener
}

// Host drives a panel from Stream Deck touch strip events.
type Host struct {
	dev   device.Device
	panel *panel.Panel
	opts  Options

	// rect is the panel's square in strip coordinates.
	rect  image.Rectangle
	strip image.Rectangle

	// mu guards the panel and last; device handlers and the render loop run
	// on separate goroutines.
	mu   sync.Mutex
	last panel.Wedge

	redraw chan struct{}

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a Host for the given device and panel.
func New(dev device.Device, p *panel.Panel, opts Options) *Host {
	h := &Host{
		dev:    dev,
		panel:  p,
		opts:   opts,
		last:   panel.NoWedge,
		redraw: make(chan struct{}, 1),
		ctx:    context.Background(),
	}

	p.SetListener(panel.ListenerFunc(h.onWedgePress))
	p.OnInvalidate(h.requestRender)
	return h
}

// Layout sizes the panel to the strip height and places it at StripX,
// clamped so the square stays on the strip.
func (h *Host) Layout() error {
	if !h.dev.GetTouchStripSupported() {
		return ErrNoTouchStrip
	}
	strip, err := h.dev.GetTouchStripImageRectangle()
	if err != nil {
		return fmt.Errorf("reading touch strip size: %w", err)
	}

	size := strip.Dy()
	x := h.opts.StripX
	if x+size > strip.Max.X {
		x = strip.Max.X - size
	}
	if x < strip.Min.X {
		x = strip.Min.X
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.strip = strip
	h.rect = image.Rect(x, strip.Min.Y, x+size, strip.Min.Y+size)
	h.panel.SetSize(size, size)
	return nil
}

// Rect returns the panel's square in strip coordinates.
func (h *Host) Rect() image.Rectangle {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rect
}

// Last returns the last wedge reported pressed, or NoWedge.
func (h *Host) Last() panel.Wedge {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

// Start lays out the panel, registers strip handlers, and runs the render
// loop until ctx is cancelled or the device stops listening.
func (h *Host) Start(ctx context.Context) error {
	h.ctx, h.cancel = context.WithCancel(ctx)

	if err := h.Layout(); err != nil {
		return err
	}

	if err := h.dev.SetBrightness(h.opts.Brightness); err != nil {
		log.Printf("Setting brightness: %v", err)
	}

	if err := h.dev.AddTouchStripTouchHandler(func(d device.Device, t device.TouchStripTouchType, p image.Point) error {
		return h.HandleTap(t, p)
	}); err != nil {
		return fmt.Errorf("registering tap handler: %w", err)
	}
	if err := h.dev.AddTouchStripSwipeHandler(func(d device.Device, origin, dest image.Point) error {
		return h.HandleSwipe(origin, dest)
	}); err != nil {
		return fmt.Errorf("registering swipe handler: %w", err)
	}

	listenErr := make(chan error, 1)
	go func() {
		if err := h.dev.Listen(nil); err != nil {
			listenErr <- err
		}
		close(listenErr)
	}()

	h.wg.Add(1)
	go h.renderLoop()

	select {
	case <-h.ctx.Done():
		return nil
	case err := <-listenErr:
		return err
	}
}

// Stop cancels the render loop, waits for it to exit and blanks the
// direction key.
func (h *Host) Stop() error {
	if h.cancel != nil {
		h.cancel()
	}
	h.wg.Wait()

	if h.opts.Key == 0 {
		return nil
	}
	if err := h.dev.ClearKey(h.opts.Key); err != nil {
		return fmt.Errorf("clearing key %d: %w", h.opts.Key, err)
	}
	return nil
}

// HandleTap replays a tap at strip point p as a press followed by a release.
// Taps outside the panel's square are ignored.
func (h *Host) HandleTap(t device.TouchStripTouchType, p image.Point) error {
	local, ok := h.toLocal(p)
	if !ok {
		return nil
	}

	h.pointer(panel.ActionDown, local)

	hold := h.opts.Flash
	if t == device.TOUCH_STRIP_TOUCH_TYPE_LONG {
		hold *= 2
	}
	h.wait(hold)

	h.pointer(panel.ActionUp, local)
	return nil
}

// HandleSwipe replays a swipe as a press at origin, a drag to dest, and a
// release. Swipes that start outside the panel's square are ignored.
func (h *Host) HandleSwipe(origin, dest image.Point) error {
	from, ok := h.toLocal(origin)
	if !ok {
		return nil
	}
	to, _ := h.toLocal(dest)

	h.pointer(panel.ActionDown, from)
	h.wait(h.opts.Flash / 2)
	h.pointer(panel.ActionMove, to)
	h.wait(h.opts.Flash / 2)
	h.pointer(panel.ActionUp, to)
	return nil
}

// Render draws the panel onto the strip and the last direction onto the
// configured key.
func (h *Host) Render() error {
	h.mu.Lock()
	strip := image.NewRGBA(h.strip)
	draw.Draw(strip, strip.Bounds(), &image.Uniform{colorBackground}, image.Point{}, draw.Src)
	h.panel.Draw(strip.SubImage(h.rect).(*image.RGBA))
	last := h.last
	h.mu.Unlock()

	if err := h.dev.SetTouchStripImage(strip); err != nil {
		return fmt.Errorf("setting strip image: %w", err)
	}

	if h.opts.Key == 0 {
		return nil
	}
	keyRect, err := h.dev.GetKeyImageRectangle()
	if err != nil {
		return fmt.Errorf("reading key size: %w", err)
	}
	if err := h.dev.SetKeyImage(h.opts.Key, renderKey(keyRect, last)); err != nil {
		return fmt.Errorf("setting key image: %w", err)
	}
	return nil
}

// renderLoop redraws on request and on a slow periodic tick.
func (h *Host) renderLoop() {
	defer h.wg.Done()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	h.renderLogged()
	for {
		select {
		case <-h.ctx.Done():
			return
		case <-h.redraw:
			h.renderLogged()
		case <-ticker.C:
			h.renderLogged()
		}
	}
}

func (h *Host) renderLogged() {
	if err := h.Render(); err != nil {
		log.Printf("Render failed: %v", err)
	}
}

// pointer feeds one event to the panel under the lock.
func (h *Host) pointer(a panel.Action, p image.Point) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.panel.HandlePointer(panel.PointerEvent{Action: a, X: float64(p.X), Y: float64(p.Y)})
}

// toLocal converts a strip point into panel coordinates.
func (h *Host) toLocal(p image.Point) (image.Point, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return p.Sub(h.rect.Min), p.In(h.rect)
}

// wait sleeps for d or until the host is stopped.
func (h *Host) wait(d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-h.ctx.Done():
	case <-time.After(d):
	}
}

// onWedgePress runs with h.mu held, from inside panel.HandlePointer.
func (h *Host) onWedgePress(w panel.Wedge) {
	if w != panel.NoWedge {
		h.last = w
		log.Printf("Wedge pressed: %s", w)
	}
	if h.opts.Listener != nil {
		h.opts.Listener.OnWedgePress(w)
	}
}

// requestRender schedules a render without blocking.
func (h *Host) requestRender() {
	select {
	case h.redraw <- struct{}{}:
	default:
	}
}
