package freehand

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		size   float64
		want   [][]Point
	}{
		{
			name:   "split",
			points: []Point{Pt(0, 0), Pt(0, 50), Pt(0, 160), Pt(0, 170)},
			size:   100,
			want: [][]Point{
				{Pt(0, 0), Pt(0, 50), Pt(0, 160)},
				{Pt(0, 160), Pt(0, 170)},
			},
		},
		{
			name:   "no split",
			points: []Point{Pt(0, 0), Pt(30, 0), Pt(60, 0), Pt(90, 0)},
			size:   100,
			want:   [][]Point{{Pt(0, 0), Pt(30, 0), Pt(60, 0), Pt(90, 0)}},
		},
		{
			// Distance is measured from the anchor, not from the previous
			// point.
			name:   "anchor distance",
			points: []Point{Pt(0, 0), Pt(60, 0), Pt(120, 0), Pt(140, 0)},
			size:   100,
			want: [][]Point{
				{Pt(0, 0), Pt(60, 0), Pt(120, 0)},
				{Pt(120, 0), Pt(140, 0)},
			},
		},
		{
			name:   "exactly size",
			points: []Point{Pt(0, 0), Pt(100, 0)},
			size:   100,
			want:   [][]Point{{Pt(0, 0), Pt(100, 0)}},
		},
		{
			name:   "split on last point",
			points: []Point{Pt(0, 0), Pt(10, 0), Pt(200, 0)},
			size:   100,
			want: [][]Point{
				{Pt(0, 0), Pt(10, 0), Pt(200, 0)},
				{Pt(200, 0)},
			},
		},
		{
			name:   "single point",
			points: []Point{Pt(1, 1)},
			size:   100,
			want:   [][]Point{{Pt(1, 1)}},
		},
		{
			name:   "empty",
			points: nil,
			size:   100,
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, Segment(tt.points, tt.size))
		})
	}
}

func TestSegmentAppendDoesNotClobber(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(0, 200), Pt(0, 210)}
	runs := Segment(points, 100)
	_ = append(runs[0], Pt(-1, -1))
	diff(t, []Point{Pt(0, 200), Pt(0, 210)}, runs[1])
}

func TestSegmentCoverage(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, size := range []float64{0.5, 1, 5, 20, 100} {
		for n := 1; n <= 60; n++ {
			t.Run(fmt.Sprintf("size=%g/n=%d", size, n), func(t *testing.T) {
				points := randomWalk(rng, n, 10)
				runs := Segment(points, size)
				checkRuns(t, points, runs, size)
			})
		}
	}
}

func checkRuns(t *testing.T, points []Point, runs [][]Point, size float64) {
	t.Helper()
	if len(runs) == 0 {
		t.Fatal("got no runs")
	}
	var joined []Point
	for i, run := range runs {
		if len(run) == 0 {
			t.Fatalf("run %d is empty", i)
		}
		if i == 0 {
			joined = append(joined, run...)
			continue
		}
		if prev := runs[i-1]; prev[len(prev)-1] != run[0] {
			t.Errorf("run %d starts at %v, but run %d ends at %v", i, run[0], i-1, prev[len(prev)-1])
		}
		joined = append(joined, run[1:]...)
	}
	diff(t, points, joined)

	for i, run := range runs {
		last := len(run) - 1
		if i == len(runs)-1 {
			last++
		}
		for j := 1; j < last; j++ {
			if d := run[0].Distance(run[j]); d > size {
				t.Errorf("run %d: point %d is %v away from the anchor", i, j, d)
			}
		}
		if i < len(runs)-1 {
			if d := run[0].Distance(run[len(run)-1]); d <= size {
				t.Errorf("run %d was closed at distance %v", i, d)
			}
		}
	}
}

func randomWalk(rng *rand.Rand, n int, step float64) []Point {
	points := make([]Point, n)
	var p Point
	for i := range points {
		points[i] = p
		p = p.Translate(Vec((rng.Float64()*2-1)*step, (rng.Float64()*2-1)*step))
	}
	return points
}
