package freehand

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// DefaultSize is the default segmentation distance.
const DefaultSize = 100

var (
	ErrInvalidSize  = errors.New("freehand: segment size must be positive and finite")
	ErrTooFewPoints = errors.New("freehand: at least two points are required")
)

// Options configures a [Fitter].
type Options struct {
	// Size is the maximum distance between the first point of a run and any
	// other point in it, see [Segment]. Larger sizes produce fewer, longer
	// curves. Zero means DefaultSize.
	Size float64
	// Workers is the maximum number of goroutines used to fit the runs of a
	// single spline. Zero or negative means GOMAXPROCS.
	Workers int
}

// Validate reports whether the options are usable.
func (opts Options) Validate() error {
	if opts.Size < 0 || math.IsNaN(opts.Size) || math.IsInf(opts.Size, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidSize, opts.Size)
	}
	return nil
}

// A Fitter turns pointer traces into splines. A Fitter is safe for
// concurrent use.
type Fitter struct {
	size    float64
	workers int
}

// NewFitter returns a Fitter using opts.
func NewFitter(opts Options) (*Fitter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Size == 0 {
		opts.Size = DefaultSize
	}
	return &Fitter{size: opts.Size, workers: opts.Workers}, nil
}

// Size returns the segmentation distance used by f.
func (f *Fitter) Size() float64 { return f.size }

// Fit computes the spline approximating points. It splits points into runs
// with [Segment], fits each run with [FitCubic] in parallel and finally joins
// the curves with [Smooth].
//
// Fit returns ErrTooFewPoints if points has fewer than two elements.
func (f *Fitter) Fit(points []Point) (Spline, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}
	runs := Segment(points, f.size)
	spline := make(Spline, len(runs))
	methods := make([]SolveMethod, len(runs))
	forEach(len(runs), f.workers, func(i int) {
		spline[i], methods[i] = FitCubicMethod(runs[i])
	})
	smooth(spline, f.workers)

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		fallbacks := 0
		for _, m := range methods {
			if m == SolvePseudoInverse || m == SolvePassthrough {
				fallbacks++
			}
		}
		l.Debug("fitted spline",
			"points", len(points),
			"curves", len(spline),
			"fallbacks", fallbacks)
	}
	return spline, nil
}

// FitSpline fits points with segmentation distance size, using all
// available CPUs.
func FitSpline(points []Point, size float64) (Spline, error) {
	if !(size > 0) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidSize, size)
	}
	f, err := NewFitter(Options{Size: size})
	if err != nil {
		return nil, err
	}
	return f.Fit(points)
}

// Spline is a sequence of cubic Béziers approximating a single stroke.
// Consecutive curves are meant to be drawn as one path, see
// [Spline.BezPath].
type Spline []CubicBez

// BezPath returns the path drawing the spline: a move to the start of the
// first curve, followed by one cubic per curve. The start points of the
// other curves are not part of the path.
func (s Spline) BezPath() BezPath {
	if len(s) == 0 {
		return nil
	}
	p := make(BezPath, 0, len(s)+1)
	p.MoveTo(s[0].P0)
	for _, c := range s {
		p.CubicTo(c.P1, c.P2, c.P3)
	}
	return p
}

// ControlBox returns the union of the control boxes of the spline's curves.
// It returns the zero Rect for an empty spline.
func (s Spline) ControlBox() Rect {
	if len(s) == 0 {
		return Rect{}
	}
	r := s[0].ControlBox()
	for _, c := range s[1:] {
		r = r.Union(c.ControlBox())
	}
	return r
}
