package panel

import (
	"math"

	"github.com/srwiley/rasterx"
)

// Point is a position in panel or template space.
type Point struct {
	X, Y float64
}

// Geometry holds everything derived from the widget size: the wedge template,
// the per-wedge transforms and the hit region. It is immutable once built.
type Geometry struct {
	Width, Height int

	// Radius is half the widget width.
	Radius float64

	// WedgeWidth is Radius/6; the template is WedgeWidth long and
	// WedgeWidth/2 tall on each side of the x axis.
	WedgeWidth float64

	// Template is the closed triangle for wedge 0, pointing along +x.
	Template [3]Point

	// Forward maps template space into panel space for each wedge:
	// translate to the center, then rotate by 45 degrees per index.
	Forward [Count]rasterx.Matrix2D

	// Inverse maps panel space back into template space for each wedge.
	Inverse [Count]rasterx.Matrix2D

	// Region is the filled template used for containment tests.
	Region *Region
}

// wedgeAngle is the rotation between neighbouring wedges.
const wedgeAngle = 2 * math.Pi / Count

// NewGeometry builds the geometry for a widget of the given pixel size.
// Non-positive sizes produce degenerate geometry in which nothing is hit.
func NewGeometry(width, height int) *Geometry {
	g := &Geometry{
		Width:  width,
		Height: height,
	}

	g.Radius = float64(width) / 2
	g.WedgeWidth = g.Radius / 6

	r, w := g.Radius, g.WedgeWidth
	g.Template = [3]Point{
		{X: r - 2*w, Y: -w / 2},
		{X: r - w, Y: 0},
		{X: r - 2*w, Y: w / 2},
	}

	// Each wedge is the previous one rotated a further 45 degrees, the same
	// way a canvas accumulates rotations between draws.
	g.Forward[0] = rasterx.Identity.Translate(float64(width)/2, float64(height)/2)
	for i := 1; i < Count; i++ {
		g.Forward[i] = g.Forward[i-1].Rotate(wedgeAngle)
	}
	for i := range g.Forward {
		g.Inverse[i] = g.Forward[i].Invert()
	}

	g.Region = NewRegion(g.Template[:], width, height)
	return g
}

// Center returns the widget center in panel space.
func (g *Geometry) Center() Point {
	return Point{X: float64(g.Width) / 2, Y: float64(g.Height) / 2}
}

// HitTest returns the first wedge, in ascending order, whose region contains
// the panel-space point (x, y), or NoWedge.
func (g *Geometry) HitTest(x, y float64) Wedge {
	for i := range g.Inverse {
		lx, ly := g.Inverse[i].Transform(x, y)
		if g.Region.Contains(int(lx), int(ly)) {
			return Wedge(i)
		}
	}
	return NoWedge
}

// WedgeCenter returns the centroid of wedge w in panel space. It is a point
// safely inside the wedge, which hosts and tests use to aim at a wedge.
func (g *Geometry) WedgeCenter(w Wedge) Point {
	var cx, cy float64
	for _, p := range g.Template {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(g.Template))
	cy /= float64(len(g.Template))

	if !w.Valid() {
		return g.Center()
	}
	x, y := g.Forward[w].Transform(cx, cy)
	return Point{X: x, Y: y}
}

// addTemplate feeds the closed template path to a rasterx adder.
func (g *Geometry) addTemplate(a rasterx.Adder) {
	addPolygon(a, g.Template[:])
}

func addPolygon(a rasterx.Adder, pts []Point) {
	if len(pts) == 0 {
		return
	}
	a.Start(rasterx.ToFixedP(pts[0].X, pts[0].Y))
	for _, p := range pts[1:] {
		a.Line(rasterx.ToFixedP(p.X, p.Y))
	}
	a.Stop(true)
}
