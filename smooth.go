package freehand

// continuity is the correction applied to a curve so that it continues its
// predecessor.
type continuity struct {
	start    Vec2
	control1 Vec2
}

func continuityBetween(prev, cur CubicBez) continuity {
	tangent := prev.EndTangent()
	return continuity{
		start:    cur.P0.Sub(prev.P3),
		control1: cur.P0.Translate(tangent).Sub(cur.P1),
	}
}

// Smooth reduces kinks between consecutive, independently fitted curves.
// The first curve is left untouched. Every other curve has its first handle
// moved so that it leaves its start point in the direction its predecessor
// arrived at its end, P3−P2. Its start point is moved by its offset from the
// predecessor's end.
//
// All corrections are computed from the curves as passed in, before any of
// them are modified: correcting a curve never takes into account the
// correction applied to its predecessor.
//
// Note that the start point correction only closes the gap between two
// curves that already touch; otherwise the new start point is the reflection
// of the predecessor's end through the old start point.
func Smooth(curves []CubicBez) {
	smooth(curves, 0)
}

func smooth(curves []CubicBez, workers int) {
	if len(curves) < 2 {
		return
	}
	adj := make([]continuity, len(curves)-1)
	forEach(len(adj), workers, func(i int) {
		adj[i] = continuityBetween(curves[i], curves[i+1])
	})
	forEach(len(adj), workers, func(i int) {
		c := &curves[i+1]
		c.P0 = c.P0.Translate(adj[i].start)
		c.P1 = c.P1.Translate(adj[i].control1)
	})
}
