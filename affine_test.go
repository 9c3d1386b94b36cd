package freehand

import (
	"math"
	"math/rand/v2"
	"testing"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(Translate(Vec(-3, -4)).ThenScale(2, 3)), Pt(0, 0), epsilon)
	assertNear(t, p.Transform(Scale(2, 3).ThenTranslate(Vec(1, 1))), Pt(7, 13), epsilon)
	assertNear(t, p.Transform(Identity.ThenRotate(math.Pi)), Pt(-3, -4), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
	}
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv := a.Invert()

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(aInv).Transform(a), p, epsilon)
		assertNear(t, p.Transform(a).Transform(aInv), p, epsilon)
	}
}

func TestFitSimilarityInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(15, 16))
	points := randomWalk(rng, 30, 10)
	aff := Rotate(0.7).ThenScale(2.5, 2.5).ThenTranslate(Vec(100, -40))

	want := FitCubic(points).Transform(aff)
	got := FitCubic(TransformPoints(points, aff))
	diff(t, want, got, pointComparer)

	// Smoothing commutes with affine transforms.
	spline, err := FitSpline(randomWalk(rng, 200, 10), 25)
	if err != nil {
		t.Fatal(err)
	}
	if len(spline) < 2 {
		t.Fatalf("got %d curves, want several", len(spline))
	}
	smoothed := Spline{spline[0], spline[1]}.Transform(aff)
	Smooth(smoothed)
	pair := Spline{spline[0], spline[1]}
	Smooth(pair)
	diff(t, pair.Transform(aff), smoothed, pointComparer)
}
