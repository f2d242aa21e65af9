package panel

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

// renderPlate draws the shadowed base plate. It depends only on size and
// style, so the panel caches it between resizes.
func renderPlate(g *Geometry, st Style) *image.RGBA {
	plate := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	if g.Width <= 0 || g.Height <= 0 {
		return plate
	}

	c := g.Center()

	renderShadow(plate, g, st)

	fillCircle(plate, c.X, c.Y, g.Radius, st.PlateColor)
	return plate
}

// maxShadowKernel is the largest blur radius, in pixels, renderShadow
// convolves with. Wider shadows are blurred at a reduced resolution and scaled
// back up.
const maxShadowKernel = 4

// renderShadow composites the blurred drop shadow onto plate.
func renderShadow(plate *image.RGBA, g *Geometry, st Style) {
	c := g.Center()
	r := st.ShadowBlur * g.Radius

	k := 1.0
	if r > maxShadowKernel {
		k = math.Ceil(r / maxShadowKernel)
	}

	sw := max(1, int(math.Ceil(float64(g.Width)/k)))
	sh := max(1, int(math.Ceil(float64(g.Height)/k)))
	shadow := image.NewRGBA(image.Rect(0, 0, sw, sh))
	fillCircle(shadow, (c.X+st.ShadowOffset.X)/k, (c.Y+st.ShadowOffset.Y)/k, g.Radius/k, st.ShadowColor)
	if r > 0 {
		shadow = blur.Gaussian(shadow, r/k)
	}

	if k == 1 {
		draw.Draw(plate, plate.Bounds(), shadow, image.Point{}, draw.Over)
		return
	}
	dr := image.Rect(0, 0, int(float64(sw)*k), int(float64(sh)*k))
	draw.BiLinear.Scale(plate, dr, shadow, shadow.Bounds(), draw.Over, nil)
}

// fillCircle fills a circle into dst.
func fillCircle(dst *image.RGBA, cx, cy, r float64, col color.Color) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetColor(col)
	rasterx.AddCircle(cx, cy, r, filler)
	filler.Draw()
}

// renderWedges draws all eight wedges into dst: the pressed one filled, the
// rest outlined. The template path is reused under each wedge's transform.
func renderWedges(dst *image.RGBA, g *Geometry, st Style, pressed Wedge) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return
	}

	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())

	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetColor(st.WedgeColor)

	stroker := rasterx.NewStroker(w, h, scanner)
	stroker.SetColor(st.WedgeColor)
	stroker.SetStroke(
		fixed.Int26_6(st.StrokeWidth*64),
		fixed.I(4),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter)

	for i := 0; i < Count; i++ {
		var raster interface {
			rasterx.Adder
			Draw()
			Clear()
		} = stroker
		if Wedge(i) == pressed {
			raster = filler
		}

		g.addTemplate(&rasterx.MatrixAdder{Adder: raster, M: g.Forward[i]})
		raster.Draw()
		raster.Clear()
	}
}
