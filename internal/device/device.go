// Package device defines the abstraction layer for the Stream Deck surfaces the
// control panel draws on: the touch strip and the keys.
package device

import (
	"image"
)

// Device is the subset of Stream Deck hardware the deck host uses.
// The hardware adapter and test fakes implement it.
type Device interface {
	// Lifecycle
	Open() error
	Close() error

	// Device info
	GetModelName() string
	GetTouchStripSupported() bool
	GetKeyImageRectangle() (image.Rectangle, error)
	GetTouchStripImageRectangle() (image.Rectangle, error)

	// Display
	SetBrightness(perc byte) error
	SetKeyImage(key KeyID, img image.Image) error
	SetTouchStripImage(img image.Image) error
	ClearKey(key KeyID) error

	// Event handlers
	AddTouchStripTouchHandler(fn TouchStripTouchHandler) error
	AddTouchStripSwipeHandler(fn TouchStripSwipeHandler) error

	// Listen runs the event loop until the device disconnects.
	Listen(errCh chan error) error
}

// KeyID identifies a physical key, starting at 1.
type KeyID byte

// KeyCount is the number of keys on a Stream Deck Plus.
const KeyCount = 8

// TouchStripTouchType represents the type of touch on the strip.
type TouchStripTouchType byte

// Touch strip touch types
const (
	TOUCH_STRIP_TOUCH_TYPE_SHORT TouchStripTouchType = iota + 1
	TOUCH_STRIP_TOUCH_TYPE_LONG
)

type (
	// TouchStripTouchHandler is called when the touch strip is tapped.
	TouchStripTouchHandler func(d Device, t TouchStripTouchType, p image.Point) error

	// TouchStripSwipeHandler is called when the touch strip is swiped.
	TouchStripSwipeHandler func(d Device, origin, destination image.Point) error
)
