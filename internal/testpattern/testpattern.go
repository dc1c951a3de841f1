// Package testpattern draws deterministic aliased images: hard edges,
// polygons and bitmap text with no intermediate colors along their borders.
// They are the inputs antialiasing is most visible on.
package testpattern

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Colors used by Scene.
var (
	Black = color.NRGBA{A: 255}
	White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Gray  = color.NRGBA{R: 40, G: 40, B: 48, A: 255}
	Red   = color.NRGBA{R: 230, G: 40, B: 30, A: 255}
	Green = color.NRGBA{R: 40, G: 200, B: 70, A: 255}
	Blue  = color.NRGBA{R: 40, G: 90, B: 230, A: 255}
)

// coverageCutoff is the rasterizer coverage at which a pixel is considered
// inside a polygon.
const coverageCutoff = 0x80

// Fill returns a w x h image filled with c.
func Fill(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// HardEdge returns a w x h image whose columns left of split are left and
// the remaining columns right.
func HardEdge(w, h, split int, left, right color.NRGBA) *image.NRGBA {
	img := Fill(w, h, right)
	draw.Draw(img, image.Rect(0, 0, split, h), image.NewUniform(left), image.Point{}, draw.Src)
	return img
}

// Polygon returns a w x h image of bg with the polygon pts filled with fg.
// The polygon is thresholded, so its border is aliased.
func Polygon(w, h int, pts [][2]float32, fg, bg color.NRGBA) *image.NRGBA {
	img := Fill(w, h, bg)
	FillPolygon(img, pts, fg)
	return img
}

// FillPolygon fills the polygon pts on dst with c, without antialiasing.
// Pixels whose center coverage is at least one half are painted.
func FillPolygon(dst *image.NRGBA, pts [][2]float32, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}

	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Src
	r.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		r.LineTo(p[0], p[1])
	}
	r.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := range b.Dy() {
		for x := range b.Dx() {
			if mask.AlphaAt(x, y).A >= coverageCutoff {
				dst.SetNRGBA(b.Min.X+x, b.Min.Y+y, c)
			}
		}
	}
}

// Regular returns the vertices of a regular n-gon centered at (cx, cy) with
// radius r, its first vertex rotated by angle radians.
func Regular(cx, cy, r float32, n int, angle float64) [][2]float32 {
	pts := make([][2]float32, n)
	for i := range n {
		a := angle + 2*math.Pi*float64(i)/float64(n)
		pts[i] = [2]float32{
			cx + r*float32(math.Cos(a)),
			cy + r*float32(math.Sin(a)),
		}
	}
	return pts
}

// Text returns a w x h image of bg with s written in fg using a 7x13 bitmap
// font, starting at the top-left corner.
func Text(w, h int, s string, fg, bg color.NRGBA) *image.NRGBA {
	img := Fill(w, h, bg)
	DrawText(img, 2, 2, s, fg)
	return img
}

// DrawText writes s on dst with its top-left corner at (x, y).
func DrawText(dst *image.NRGBA, x, y int, s string, c color.NRGBA) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// Scene returns a w x h test image combining a hard vertical edge, a
// rotated triangle, a thin diagonal bar, a many-sided polygon approximating
// a disk and a text label.
func Scene(w, h int) *image.NRGBA {
	img := HardEdge(w, h, w/8, Black, Gray)

	fw, fh := float32(w), float32(h)
	FillPolygon(img, Regular(fw*0.35, fh*0.45, min(fw, fh)*0.25, 3, 0.3), Red)
	FillPolygon(img, Regular(fw*0.72, fh*0.4, min(fw, fh)*0.18, 32, 0), Blue)
	FillPolygon(img, [][2]float32{
		{fw * 0.15, fh * 0.95},
		{fw * 0.18, fh * 0.95},
		{fw * 0.95, fh * 0.08},
		{fw * 0.92, fh * 0.08},
	}, Green)

	DrawText(img, w/8+4, h-16, "SMAA", White)
	return img
}
