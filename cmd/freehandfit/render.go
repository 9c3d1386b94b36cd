package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"honnef.co/go/freehand"
)

// flattenTolerance is the maximum distance, in output pixels, between the
// rendered polyline and the spline.
const flattenTolerance = 0.1

// canvas maps spline coordinates to output coordinates.
type canvas struct {
	bounds freehand.Rect
	scale  float64
	aff    freehand.Affine
}

func newCanvas(spline freehand.Spline, width, scale float64) canvas {
	margin := width/2 + 1
	bounds := spline.ControlBox().Inflate(margin, margin)
	origin := freehand.Vec2(bounds.Origin())
	return canvas{
		bounds: bounds,
		scale:  scale,
		aff:    freehand.Translate(origin.Negate()).ThenScale(scale, scale),
	}
}

func (c canvas) size() (int, int) {
	w := int(math.Ceil(c.bounds.Width() * c.scale))
	h := int(math.Ceil(c.bounds.Height() * c.scale))
	return max(w, 1), max(h, 1)
}

func (c canvas) project(p freehand.Point) freehand.Point {
	return p.Transform(c.aff)
}

func writeSVG(w io.Writer, spline freehand.Spline, width float64) error {
	c := newCanvas(spline, width, 1)
	_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%g %g %g %g">
<path d="%s" fill="none" stroke="black" stroke-width="%g" stroke-linecap="round" stroke-linejoin="round"/>
</svg>
`, c.bounds.X0, c.bounds.Y0, c.bounds.Width(), c.bounds.Height(), spline.BezPath().SVG(), width)
	return err
}

// rasterize strokes the spline into a new image. The spline is flattened to
// a polyline; every polyline segment is filled as a quad and every vertex as
// a small disc, which produces round joins and caps.
func rasterize(spline freehand.Spline, width, scale float64, ink color.Color) *image.RGBA {
	c := newCanvas(spline, width, scale)
	w, h := c.size()
	z := vector.NewRasterizer(w, h)

	hw := width * scale / 2
	var last freehand.Point
	first := true
	for cb := range spline.Transform(c.aff).BezPath().Cubics() {
		for q := range cb.Flatten(flattenTolerance) {
			if first {
				disc(z, q, hw)
				first = false
			} else if q != last {
				quad(z, last, q, hw)
				disc(z, q, hw)
			}
			last = q
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	z.Draw(dst, dst.Bounds(), image.NewUniform(ink), image.Point{})
	return dst
}

func quad(z *vector.Rasterizer, a, b freehand.Point, hw float64) {
	n := b.Sub(a).Normal().Normalize().Mul(hw)
	// Same winding as disc, so that overlaps don't cancel out.
	moveTo(z, a.Translate(n.Negate()))
	lineTo(z, b.Translate(n.Negate()))
	lineTo(z, b.Translate(n))
	lineTo(z, a.Translate(n))
	z.ClosePath()
}

// disc adds a regular polygon approximating a circle around p.
func disc(z *vector.Rasterizer, p freehand.Point, r float64) {
	const sides = 16
	for i := range sides {
		th := 2 * math.Pi * float64(i) / sides
		q := p.Translate(freehand.Vec(r*math.Cos(th), r*math.Sin(th)))
		if i == 0 {
			moveTo(z, q)
		} else {
			lineTo(z, q)
		}
	}
	z.ClosePath()
}

func moveTo(z *vector.Rasterizer, p freehand.Point) { z.MoveTo(float32(p.X), float32(p.Y)) }
func lineTo(z *vector.Rasterizer, p freehand.Point) { z.LineTo(float32(p.X), float32(p.Y)) }

func writePNG(w io.Writer, spline freehand.Spline, width, scale float64) error {
	return png.Encode(w, rasterize(spline, width, scale, color.Black))
}
