package freehand

// Segment partitions points into contiguous runs whose points lie within
// size of the run's first point, its anchor.
//
// Distances are measured from the anchor, not from the previous point. When
// a point is farther than size from the anchor, the current run is closed
// including that point, and the point becomes the anchor of the next run.
// Consecutive runs thus share exactly one point. The last run extends from
// the last anchor to the end of points, no matter how short it is; it may
// consist of the anchor alone.
//
// The returned runs are subslices of points. Segment returns nil if points is
// empty.
func Segment(points []Point, size float64) [][]Point {
	if len(points) == 0 {
		return nil
	}
	var runs [][]Point
	anchorIdx := 0
	anchor := points[0]
	for i := 1; i < len(points); i++ {
		if anchor.Distance(points[i]) > size {
			runs = append(runs, points[anchorIdx:i+1:i+1])
			anchor = points[i]
			anchorIdx = i
		}
	}
	return append(runs, points[anchorIdx:])
}
