package panel

import "image/color"

// Style controls how the panel is drawn.
type Style struct {
	// PlateColor fills the circular base plate.
	PlateColor color.Color

	// ShadowColor, ShadowOffset and ShadowBlur describe the drop shadow under
	// the plate. ShadowBlur is a fraction of the radius.
	ShadowColor  color.Color
	ShadowOffset Point
	ShadowBlur   float64

	// WedgeColor is used both for outlines and for the pressed wedge fill.
	WedgeColor color.Color

	// StrokeWidth is the outline width in pixels.
	StrokeWidth float64
}

// DefaultStyle returns a white plate with a soft lavender shadow and yellow
// wedges.
func DefaultStyle() Style {
	return Style{
		PlateColor:   color.RGBA{255, 255, 255, 255},
		ShadowColor:  color.RGBA{0xcd, 0xcb, 0xdb, 255},
		ShadowOffset: Point{X: 5, Y: 5},
		ShadowBlur:   1,
		WedgeColor:   color.RGBA{255, 255, 0, 255},
		StrokeWidth:  2,
	}
}

// withDefaults fills unset fields from DefaultStyle.
func (s Style) withDefaults() Style {
	d := DefaultStyle()
	if s.PlateColor == nil {
		s.PlateColor = d.PlateColor
	}
	if s.ShadowColor == nil {
		s.ShadowColor = d.ShadowColor
	}
	if s.WedgeColor == nil {
		s.WedgeColor = d.WedgeColor
	}
	if s.StrokeWidth <= 0 {
		s.StrokeWidth = d.StrokeWidth
	}
	if s.ShadowBlur < 0 {
		s.ShadowBlur = 0
	}
	return s
}
