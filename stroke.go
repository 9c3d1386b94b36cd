package freehand

import (
	"errors"
	"slices"
)

var ErrStrokeEnded = errors.New("freehand: stroke has ended")

// A Stroke accumulates the samples of one freehand stroke, from the pointer
// being pressed until it is released, and keeps the spline fitted to them up
// to date.
//
// Every sample causes the whole spline to be refitted, so the cost of Append
// grows with the length of the stroke. Callers that throttle input should
// do so before calling Append.
//
// A Stroke is not safe for concurrent use.
type Stroke struct {
	fitter *Fitter
	points []Point
	spline Spline
	ended  bool
}

// NewStroke starts a new, empty stroke.
func (f *Fitter) NewStroke() *Stroke {
	return &Stroke{fitter: f}
}

// Append adds a sample to the stroke and returns the refitted spline. The
// spline is empty until the stroke has at least two samples. The returned
// spline is not modified by later calls.
func (s *Stroke) Append(pt Point) (Spline, error) {
	if s.ended {
		return nil, ErrStrokeEnded
	}
	s.points = append(s.points, pt)
	if len(s.points) < 2 {
		return nil, nil
	}
	spline, err := s.fitter.Fit(s.points)
	if err != nil {
		return nil, err
	}
	s.spline = spline
	return spline, nil
}

// End finishes the stroke and returns its final spline. Further calls to
// Append fail with ErrStrokeEnded. End may be called more than once.
func (s *Stroke) End() Spline {
	s.ended = true
	return s.spline
}

// Ended reports whether End has been called.
func (s *Stroke) Ended() bool { return s.ended }

// Points returns a copy of the samples appended so far.
func (s *Stroke) Points() []Point { return slices.Clone(s.points) }

// Spline returns the spline fitted to the current samples.
func (s *Stroke) Spline() Spline { return s.spline }
