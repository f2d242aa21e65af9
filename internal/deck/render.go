package deck

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"strings"

	"github.com/phinze/controlpanel/internal/panel"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// iconArrowSVG points right; the rotation is filled in per wedge.
const iconArrowSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">
<g transform="rotate(%d 12 12)"><line x1="5" y1="12" x2="19" y2="12"/><polyline points="12 5 19 12 12 19"/></g>
</svg>`

// iconIdleSVG is shown before any wedge has been pressed.
const iconIdleSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
<circle cx="12" cy="12" r="9"/><circle cx="12" cy="12" r="2"/>
</svg>`

var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorKeyBg      = color.RGBA{40, 40, 40, 255}
	colorArrow      = color.RGBA{255, 255, 0, 255}
	colorLabel      = color.RGBA{160, 160, 160, 255}
)

// renderKey draws the direction of w onto a key-sized image.
func renderKey(rect image.Rectangle, w panel.Wedge) image.Image {
	img := image.NewRGBA(rect)
	draw.Draw(img, img.Bounds(), &image.Uniform{colorKeyBg}, image.Point{}, draw.Src)

	size := rect.Dx()
	iconSize := size / 2

	svg := iconIdleSVG
	if w.Valid() {
		svg = fmt.Sprintf(iconArrowSVG, int(w)*360/panel.Count)
	}
	icon := renderSVGIcon(svg, iconSize, colorArrow)
	iconX := rect.Min.X + (size-iconSize)/2
	iconY := rect.Min.Y + size/8
	draw.Draw(img, image.Rect(iconX, iconY, iconX+iconSize, iconY+iconSize), icon, image.Point{}, draw.Over)

	drawTextCentered(img, strings.ToUpper(w.Direction()), rect.Min.X+size/2, rect.Max.Y-size/8, colorLabel)
	return img
}

// renderSVGIcon renders an SVG string to an image with the given size and color.
func renderSVGIcon(svgContent string, size int, iconColor color.Color) image.Image {
	r, g, b, _ := iconColor.RGBA()
	hexColor := fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
	svgContent = strings.ReplaceAll(svgContent, "currentColor", hexColor)

	img := image.NewRGBA(image.Rect(0, 0, size, size))

	icon, err := oksvg.ReadIconStream(strings.NewReader(svgContent))
	if err != nil {
		log.Printf("Failed to parse SVG: %v", err)
		return img
	}

	icon.SetTarget(0, 0, float64(size), float64(size))

	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return img
}

// drawTextCentered draws text horizontally centered on x with its baseline at y.
func drawTextCentered(img *image.RGBA, text string, x, y int, col color.Color) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x) - width/2, Y: fixed.I(y)},
	}
	d.DrawString(text)
}
