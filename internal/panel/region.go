package panel

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
)

// insideAlpha is the mask coverage at or above which a pixel counts as inside.
const insideAlpha = 0x80

// Region is a rasterized polygon used as a pixel containment test.
// It covers [-width, width) x [-height, height), which is large enough to hold
// the wedge template without clipping it.
type Region struct {
	mask *image.Alpha
}

// NewRegion rasterizes the closed polygon pts into a region sized for a widget
// of width x height pixels.
func NewRegion(pts []Point, width, height int) *Region {
	if width <= 0 || height <= 0 {
		return &Region{mask: image.NewAlpha(image.Rectangle{})}
	}

	bounds := image.Rect(-width, -height, width, height)
	mask := image.NewAlpha(bounds)

	// The rasterizer's origin lands on bounds.Min, so shift the polygon by the
	// same amount to keep mask pixel (x, y) aligned with template (x, y).
	w, h := bounds.Dx(), bounds.Dy()
	scanner := rasterx.NewScannerGV(w, h, mask, bounds)
	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetColor(color.Opaque)
	addPolygon(&rasterx.MatrixAdder{
		Adder: filler,
		M:     rasterx.Identity.Translate(float64(width), float64(height)),
	}, pts)
	filler.Draw()

	return &Region{mask: mask}
}

// Bounds returns the area covered by the region.
func (r *Region) Bounds() image.Rectangle {
	return r.mask.Bounds()
}

// Contains reports whether pixel (x, y) lies inside the region.
func (r *Region) Contains(x, y int) bool {
	return r.mask.AlphaAt(x, y).A >= insideAlpha
}

// Equal reports whether two regions cover the same pixels.
func (r *Region) Equal(o *Region) bool {
	if r.mask.Rect != o.mask.Rect {
		return false
	}
	b := r.mask.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if r.Contains(x, y) != o.Contains(x, y) {
				return false
			}
		}
	}
	return true
}
