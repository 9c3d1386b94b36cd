// Package freehand turns freehand pointer traces into smooth cubic Bézier
// splines suitable for stroking in real time.
//
// A trace is the sequence of points sampled while a stylus or mouse button is
// held down. Fitting it happens in three steps:
//
//   - [Segment] splits the trace into runs of points that stay within a
//     distance of the run's first point. Consecutive runs share one point.
//   - [FitCubic] fits each run with a single cubic Bézier, using a
//     closed-form least-squares fit over the points' normalized arc length.
//     Runs are independent and are fitted in parallel.
//   - [Smooth] adjusts the start and first handle of every curve but the
//     first, based on its predecessor, to hide the seams between runs.
//
// [Fitter] composes the three steps and [Stroke] applies them to a trace that
// grows one sample at a time, refitting the whole trace on every sample.
//
// # Least-squares fitting
//
// Each point of a run is assigned the parameter t ∈ [0, 1] proportional to
// the distance traveled along the run up to that point. The power basis
// coefficients of the curve are the solution of the normal equations
// (UᵀU)·C = Uᵀ·P, where the rows of U are [t³, t², t, 1]. They are converted
// to control points with the inverse of the Bernstein basis matrix.
//
// Solving the normal equations never fails. If UᵀU is singular or can't be
// inverted, its pseudo-inverse is used instead, and if that fails too, the
// matrix is used as is. Fallbacks are logged, see [SetLogger], and reported
// by [FitCubicMethod].
//
// # Drawing splines
//
// [Spline.BezPath] returns the path a renderer should stroke: a move to the
// start of the first curve, followed by a cubic per curve. [BezPath.SVG]
// formats it as SVG path data.
package freehand
