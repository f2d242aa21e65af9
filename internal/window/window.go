// Package window hosts the control panel in a desktop window using Ebitengine.
// Mouse and touch input drive the panel; the window stays square.
package window

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phinze/controlpanel/internal/panel"
	"github.com/phinze/controlpanel/internal/pointer"
)

var colorBackground = color.RGBA{30, 30, 30, 255}

// Options configures the window.
type Options struct {
	Title     string
	Size      int
	Resizable bool

	// ShowState prints the pressed wedge in the corner.
	ShowState bool
}

// Window implements ebiten.Game around a panel.
type Window struct {
	panel *panel.Panel
	opts  Options

	tracker pointer.Tracker
	size    int
	img     *ebiten.Image
}

// New creates a window for p.
func New(p *panel.Panel, opts Options) *Window {
	if opts.Size <= 0 {
		opts.Size = 400
	}
	return &Window{panel: p, opts: opts}
}

// Run opens the window and blocks until it is closed. It must be called from
// the main goroutine.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.opts.Size, w.opts.Size)
	ebiten.SetWindowTitle(w.opts.Title)
	if w.opts.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// Update polls input and feeds the panel.
func (w *Window) Update() error {
	for _, ev := range w.tracker.Next(w.sample()) {
		w.panel.HandlePointer(ev)
	}
	return nil
}

// sample reads the first touch if there is one, else the left mouse button.
func (w *Window) sample() pointer.Sample {
	s := pointer.Sample{Focused: ebiten.IsFocused()}

	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		s.Pressed = true
		s.X, s.Y = ebiten.TouchPosition(ids[0])
		return s
	}

	s.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.X, s.Y = ebiten.CursorPosition()
	return s
}

// Draw uploads the panel frame when it changed and blits it.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.size <= 0 {
		screen.Fill(colorBackground)
		return
	}

	if w.img == nil || w.panel.Dirty() {
		frame := w.panel.Frame()
		if w.img == nil {
			w.img = ebiten.NewImage(w.size, w.size)
		}
		w.img.WritePixels(frame.Pix)
	}

	screen.Fill(colorBackground)
	screen.DrawImage(w.img, nil)

	if w.opts.ShowState {
		ebitenutil.DebugPrintAt(screen, "wedge: "+w.panel.State().Direction(), 4, 4)
	}
}

// Layout keeps the logical screen square, sized to the smaller window side,
// and resizes the panel when that changes.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := min(outsideWidth, outsideHeight)
	if side != w.size {
		log.Printf("Panel resized to %dx%d", side, side)
		w.size = side
		w.panel.SetSize(side, side)
		if w.img != nil {
			w.img.Deallocate()
			w.img = nil
		}
	}
	return max(side, 1), max(side, 1)
}
