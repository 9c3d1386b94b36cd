package freehand

import (
	"slices"
	"strings"
	"testing"
)

func TestBezPathSVG(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0.5))
	p.CubicTo(Pt(1, 2), Pt(3, -4), Pt(5.25, 6))
	p.CubicTo(Pt(7, 8), Pt(9, 10), Pt(11, 12))

	want := "M0,0.5 C1,2 3,-4 5.25,6 C7,8 9,10 11,12"
	if got := p.SVG(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	var sb strings.Builder
	if err := p.WriteSVG(&sb); err != nil {
		t.Fatal(err)
	}
	if sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}

	if got := BezPath(nil).SVG(); got != "" {
		t.Errorf("got %q for the empty path", got)
	}
}

func TestBezPathCubics(t *testing.T) {
	s := Spline{
		{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0)},
		{Pt(3, 0), Pt(4, -1), Pt(5, -1), Pt(6, 0)},
	}
	diff(t, []CubicBez(s), slices.Collect(s.BezPath().Cubics()))

	// Start points that don't continue the previous curve are replaced by
	// the pen position.
	s[1].P0 = Pt(100, 100)
	got := slices.Collect(s.BezPath().Cubics())
	diff(t, Pt(3, 0), got[1].P0)
}

func TestPathElementString(t *testing.T) {
	tests := []struct {
		el   PathElement
		want string
	}{
		{MoveTo(Pt(1, 2)), "MoveTo((1, 2), (0, 0), (0, 0))"},
		{CubicTo(Pt(1, 2), Pt(3, 4), Pt(5, 6)), "CubicTo((1, 2), (3, 4), (5, 6))"},
		{PathElement{}, "InvalidPathElement((0, 0), (0, 0), (0, 0))"},
	}
	for _, tt := range tests {
		if got := tt.el.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestCubicBezPathElements(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0)}
	want := []PathElement{
		MoveTo(Pt(0, 0)),
		CubicTo(Pt(1, 1), Pt(2, 1), Pt(3, 0)),
	}
	diff(t, want, slices.Collect(c.PathElements()))
}
