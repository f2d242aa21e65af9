package deck

import (
	"context"
	"image"
	"image/color"
	"sync"
	"testing"
	"time"

	"github.com/phinze/controlpanel/internal/device"
	"github.com/phinze/controlpanel/internal/panel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDevice records what the host draws and lets tests fire strip events.
type fakeDevice struct {
	mu sync.Mutex

	noStrip    bool
	brightness byte
	strip      image.Image
	keys       map[device.KeyID]image.Image

	taps   []device.TouchStripTouchHandler
	swipes []device.TouchStripSwipeHandler

	stop chan struct{}
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		keys: make(map[device.KeyID]image.Image),
		stop: make(chan struct{}),
	}
}

func (f *fakeDevice) Open() error                  { return nil }
func (f *fakeDevice) Close() error                 { return nil }
func (f *fakeDevice) GetModelName() string         { return "fake" }
func (f *fakeDevice) GetTouchStripSupported() bool { return !f.noStrip }

func (f *fakeDevice) GetKeyImageRectangle() (image.Rectangle, error) {
	return image.Rect(0, 0, 72, 72), nil
}

func (f *fakeDevice) GetTouchStripImageRectangle() (image.Rectangle, error) {
	return image.Rect(0, 0, 800, 100), nil
}

func (f *fakeDevice) SetBrightness(perc byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.brightness = perc
	return nil
}

func (f *fakeDevice) SetKeyImage(key device.KeyID, img image.Image) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys[key] = img
	return nil
}

func (f *fakeDevice) SetTouchStripImage(img image.Image) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.strip = img
	return nil
}

func (f *fakeDevice) ClearKey(key device.KeyID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.keys, key)
	return nil
}

func (f *fakeDevice) AddTouchStripTouchHandler(fn device.TouchStripTouchHandler) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.taps = append(f.taps, fn)
	return nil
}

func (f *fakeDevice) AddTouchStripSwipeHandler(fn device.TouchStripSwipeHandler) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.swipes = append(f.swipes, fn)
	return nil
}

func (f *fakeDevice) Listen(errCh chan error) error {
	<-f.stop
	return nil
}

func (f *fakeDevice) stripImage() image.Image {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.strip
}

type recorder struct {
	mu     sync.Mutex
	events []panel.Wedge
}

func (r *recorder) OnWedgePress(w panel.Wedge) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, w)
}

func (r *recorder) got() []panel.Wedge {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]panel.Wedge(nil), r.events...)
}

func newTestHost(t *testing.T, opts Options) (*Host, *fakeDevice, *recorder) {
	t.Helper()
	dev := newFakeDevice()
	rec := &recorder{}
	opts.Listener = rec
	h := New(dev, panel.New(panel.DefaultStyle()), opts)
	require.NoError(t, h.Layout())
	return h, dev, rec
}

// stripPoint returns the strip coordinates of wedge w's center.
func stripPoint(h *Host, w panel.Wedge) image.Point {
	c := h.panel.Geometry().WedgeCenter(w)
	return image.Pt(int(c.X), int(c.Y)).Add(h.Rect().Min)
}

func TestLayout(t *testing.T) {
	h, _, _ := newTestHost(t, Options{StripX: 350})
	assert.Equal(t, image.Rect(350, 0, 450, 100), h.Rect())

	w, hh := h.panel.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 100, hh)

	// Clamped to the strip.
	h, _, _ = newTestHost(t, Options{StripX: 780})
	assert.Equal(t, image.Rect(700, 0, 800, 100), h.Rect())
}

func TestLayoutNoStrip(t *testing.T) {
	dev := newFakeDevice()
	dev.noStrip = true
	h := New(dev, panel.New(panel.DefaultStyle()), Options{})
	assert.ErrorIs(t, h.Layout(), ErrNoTouchStrip)
}

func TestHandleTap(t *testing.T) {
	h, _, rec := newTestHost(t, Options{StripX: 350})

	require.NoError(t, h.HandleTap(device.TOUCH_STRIP_TOUCH_TYPE_SHORT, stripPoint(h, 2)))
	assert.Equal(t, []panel.Wedge{2, panel.NoWedge}, rec.got())
	assert.Equal(t, panel.Wedge(2), h.Last())
}

func TestHandleTapOutside(t *testing.T) {
	h, _, rec := newTestHost(t, Options{StripX: 350})

	require.NoError(t, h.HandleTap(device.TOUCH_STRIP_TOUCH_TYPE_SHORT, image.Pt(10, 50)))
	assert.Empty(t, rec.got())

	// Inside the square but off every wedge: the release still reports.
	center := h.Rect().Min.Add(image.Pt(50, 50))
	require.NoError(t, h.HandleTap(device.TOUCH_STRIP_TOUCH_TYPE_LONG, center))
	assert.Equal(t, []panel.Wedge{panel.NoWedge}, rec.got())
	assert.Equal(t, panel.NoWedge, h.Last())
}

func TestHandleSwipe(t *testing.T) {
	h, _, rec := newTestHost(t, Options{StripX: 0})

	require.NoError(t, h.HandleSwipe(stripPoint(h, 0), stripPoint(h, 4)))
	assert.Equal(t, []panel.Wedge{0, 4, panel.NoWedge}, rec.got())
	assert.Equal(t, panel.Wedge(4), h.Last())
}

func TestRender(t *testing.T) {
	h, dev, _ := newTestHost(t, Options{StripX: 350, Key: 3})
	require.NoError(t, h.Render())

	strip := dev.stripImage()
	require.NotNil(t, strip)
	assert.Equal(t, image.Rect(0, 0, 800, 100), strip.Bounds())

	plate := color.RGBAModel.Convert(h.panel.Style().PlateColor)
	assert.Equal(t, plate, color.RGBAModel.Convert(strip.At(400, 50)))
	assert.Equal(t, color.Color(colorBackground), color.RGBAModel.Convert(strip.At(10, 50)))

	dev.mu.Lock()
	key := dev.keys[3]
	dev.mu.Unlock()
	require.NotNil(t, key)
	assert.Equal(t, image.Rect(0, 0, 72, 72), key.Bounds())
}

func TestStopClearsKey(t *testing.T) {
	h, dev, _ := newTestHost(t, Options{StripX: 350, Key: 3})
	require.NoError(t, h.Render())

	dev.mu.Lock()
	assert.Contains(t, dev.keys, device.KeyID(3))
	dev.mu.Unlock()

	require.NoError(t, h.Stop())

	dev.mu.Lock()
	assert.NotContains(t, dev.keys, device.KeyID(3))
	dev.mu.Unlock()
}

func TestStartStop(t *testing.T) {
	dev := newFakeDevice()
	h := New(dev, panel.New(panel.DefaultStyle()), Options{StripX: 350, Brightness: 60})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Start(ctx) }()

	require.Eventually(t, func() bool { return dev.stripImage() != nil }, 2*time.Second, 10*time.Millisecond)

	dev.mu.Lock()
	assert.Equal(t, byte(60), dev.brightness)
	assert.Len(t, dev.taps, 1)
	assert.Len(t, dev.swipes, 1)
	dev.mu.Unlock()

	cancel()
	require.NoError(t, <-done)
	require.NoError(t, h.Stop())
	close(dev.stop)
}
