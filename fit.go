package freehand

import (
	"gonum.org/v1/gonum/mat"
)

// powerFromBezier maps the control points of a cubic Bézier to the
// coefficients of its power basis form at³ + bt² + ct + d.
var powerFromBezier = mat.NewDense(4, 4, []float64{
	-1, 3, -3, 1,
	3, -6, 3, 0,
	-3, 3, 0, 0,
	1, 0, 0, 0,
})

// bezierFromPower is the inverse of powerFromBezier.
var bezierFromPower = mat.NewDense(4, 4, []float64{
	0, 0, 0, 1,
	0, 0, 1.0 / 3.0, 1,
	0, 1.0 / 3.0, 2.0 / 3.0, 1,
	1, 1, 1, 1,
})

// FitCubic fits a single cubic Bézier to points, minimizing the squared
// distance between each point and the curve evaluated at the point's
// normalized arc length along the polyline through points.
//
// Because the fit is a least-squares approximation, the curve's end points
// need not coincide with the first and last of points.
//
// If all points coincide, the result is the degenerate curve with all control
// points equal to that point. FitCubic returns the zero curve if points is
// empty.
func FitCubic(points []Point) CubicBez {
	c, _ := FitCubicMethod(points)
	return c
}

// FitCubicMethod is like [FitCubic] but additionally reports how the normal
// equations of the fit were solved.
func FitCubicMethod(points []Point) (CubicBez, SolveMethod) {
	if len(points) == 0 {
		return CubicBez{}, SolveNone
	}
	ts, ok := arclenParams(points)
	if !ok {
		p := points[0]
		return CubicBez{p, p, p, p}, SolveNone
	}

	n := len(points)
	u := mat.NewDense(n, 4, nil)
	xy := mat.NewDense(n, 2, nil)
	for i, t := range ts {
		u.SetRow(i, []float64{t * t * t, t * t, t, 1})
		xy.Set(i, 0, points[i].X)
		xy.Set(i, 1, points[i].Y)
	}

	// control points = M⁻¹ · (UᵀU)⁻¹ · Uᵀ · [X Y]
	var normal mat.Dense
	normal.Mul(u.T(), u)
	inv := invert(&normal, inverters)

	var rhs, coeffs, ctrl mat.Dense
	rhs.Mul(u.T(), xy)
	coeffs.Mul(inv.matrix, &rhs)
	ctrl.Mul(bezierFromPower, &coeffs)

	return CubicBez{
		P0: Pt(ctrl.At(0, 0), ctrl.At(0, 1)),
		P1: Pt(ctrl.At(1, 0), ctrl.At(1, 1)),
		P2: Pt(ctrl.At(2, 0), ctrl.At(2, 1)),
		P3: Pt(ctrl.At(3, 0), ctrl.At(3, 1)),
	}, inv.method
}

// arclenParams returns the cumulative length of the polyline through points
// up to each point, normalized to [0, 1]. It returns false if the polyline
// has zero length.
func arclenParams(points []Point) ([]float64, bool) {
	ts := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		ts[i] = ts[i-1] + points[i].Distance(points[i-1])
	}
	total := ts[len(ts)-1]
	if total == 0 {
		return nil, false
	}
	for i := range ts {
		ts[i] /= total
	}
	return ts, true
}
