package device

import (
	"image"

	"rafaelmartins.com/p/streamdeck"
)

// Hardware adapts a streamdeck.Device to the Device interface.
type Hardware struct {
	dev *streamdeck.Device
}

// NewHardware wraps an opened or unopened streamdeck.Device.
func NewHardware(dev *streamdeck.Device) *Hardware {
	return &Hardware{dev: dev}
}

// Find returns the first attached Stream Deck, unopened.
func Find() (*Hardware, error) {
	dev, err := streamdeck.GetDevice("")
	if err != nil {
		return nil, err
	}
	return NewHardware(dev), nil
}

func (h *Hardware) Open() error  { return h.dev.Open() }
func (h *Hardware) Close() error { return h.dev.Close() }

func (h *Hardware) GetModelName() string         { return h.dev.GetModelName() }
func (h *Hardware) GetTouchStripSupported() bool { return h.dev.GetTouchStripSupported() }

func (h *Hardware) GetKeyImageRectangle() (image.Rectangle, error) {
	return h.dev.GetKeyImageRectangle()
}

func (h *Hardware) GetTouchStripImageRectangle() (image.Rectangle, error) {
	return h.dev.GetTouchStripImageRectangle()
}

func (h *Hardware) SetBrightness(perc byte) error { return h.dev.SetBrightness(perc) }

func (h *Hardware) SetKeyImage(key KeyID, img image.Image) error {
	return h.dev.SetKeyImage(streamdeck.KeyID(key), img)
}

func (h *Hardware) SetTouchStripImage(img image.Image) error {
	return h.dev.SetTouchStripImage(img)
}

func (h *Hardware) ClearKey(key KeyID) error {
	return h.dev.ClearKey(streamdeck.KeyID(key))
}

// AddTouchStripTouchHandler forwards strip taps, passing the adapter rather
// than the raw device to fn.
func (h *Hardware) AddTouchStripTouchHandler(fn TouchStripTouchHandler) error {
	return h.dev.AddTouchStripTouchHandler(func(_ *streamdeck.Device, t streamdeck.TouchStripTouchType, p image.Point) error {
		return fn(h, TouchStripTouchType(t), p)
	})
}

// AddTouchStripSwipeHandler forwards strip swipes.
func (h *Hardware) AddTouchStripSwipeHandler(fn TouchStripSwipeHandler) error {
	return h.dev.AddTouchStripSwipeHandler(func(_ *streamdeck.Device, origin, destination image.Point) error {
		return fn(h, origin, destination)
	})
}

// Listen runs the device event loop; errors from handlers are sent to errCh.
func (h *Hardware) Listen(errCh chan error) error {
	return h.dev.Listen(errCh)
}
