package freehand

import (
	"iter"
	"math"
)

// CubicBez is a cubic Bézier curve. P0 is the start point, P1 and P2 are the
// control points (handles) and P3 is the end point.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Eval evaluates the curve at t ∈ [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	d := Vec2(c.P2).Mul(mt * 3.0)
	e := Vec2(c.P3)
	v := a.Add(b.Add(d.Add(e.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// EndTangent returns the direction of the curve's last handle, P3−P2.
func (c CubicBez) EndTangent() Vec2 {
	return c.P3.Sub(c.P2)
}

// PathElements returns the elements drawing the curve on its own: a move to
// its start followed by a single cubic.
func (c CubicBez) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(c.P0)) &&
			yield(CubicTo(c.P1, c.P2, c.P3))
	}
}

// Flatten approximates the curve with a polyline whose distance from the
// curve doesn't exceed tolerance. The iterator yields the polyline's
// vertices, starting with P0 and ending with P3.
//
// The curve is subdivided uniformly in t. The number of subdivisions is
// derived from the largest second difference of the control polygon, which
// bounds the curve's second derivative.
func (c CubicBez) Flatten(tolerance float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		dd0 := Vec2(c.P0).Sub(Vec2(c.P1).Mul(2)).Add(Vec2(c.P2)).Hypot()
		dd1 := Vec2(c.P1).Sub(Vec2(c.P2).Mul(2)).Add(Vec2(c.P3)).Hypot()
		dd := max(dd0, dd1)
		n := 1
		if tolerance > 0 && dd > 0 {
			n = max(int(math.Ceil(math.Sqrt(0.75*dd/tolerance))), 1)
		}
		if !yield(c.P0) {
			return
		}
		for i := 1; i < n; i++ {
			if !yield(c.Eval(float64(i) / float64(n))) {
				return
			}
		}
		yield(c.P3)
	}
}
