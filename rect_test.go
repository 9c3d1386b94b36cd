package freehand

import (
	"testing"
)

func TestRectUnion(t *testing.T) {
	r := NewRectFromPoints(Pt(10, 10), Pt(0, 0))
	diff(t, Rect{0, 0, 10, 10}, r)
	diff(t, Rect{-5, 0, 10, 12}, r.UnionPoint(Pt(-5, 12)))
	diff(t, Rect{0, -3, 20, 10}, r.Union(Rect{5, -3, 20, 4}))
	diff(t, Rect{-1, -2, 11, 12}, r.Inflate(1, 2))
	if w, h := r.Width(), r.Height(); w != 10 || h != 10 {
		t.Errorf("got size %vx%v, want 10x10", w, h)
	}
	diff(t, Pt(0, 0), r.Origin())
}
