package freehand

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
)

// PathElement is a drawing command of a Bézier path. Points that the
// element's kind doesn't use are zero.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case CubicToKind:
		kind = "CubicTo"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

// BezPath is a sequence of path elements, in the form consumed by stroking
// renderers.
type BezPath []PathElement

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// CubicTo pushes a "curve to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Cubics returns an iterator over the cubic Béziers drawn by the path. Each
// cubic starts at the pen position left by the preceding element.
func (p BezPath) Cubics() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		var pen Point
		for _, el := range p {
			switch el.Kind {
			case MoveToKind:
				pen = el.P0
			case CubicToKind:
				if !yield(CubicBez{pen, el.P0, el.P1, el.P2}) {
					return
				}
				pen = el.P2
			}
		}
	}
}

// SVG returns the path as SVG path data, suitable for the d attribute of a
// path element.
func (p BezPath) SVG() string {
	var b []byte
	for i, el := range p {
		if i > 0 {
			b = append(b, ' ')
		}
		switch el.Kind {
		case MoveToKind:
			b = append(b, 'M')
			b = appendPoint(b, el.P0)
		case CubicToKind:
			b = append(b, 'C')
			b = appendPoint(b, el.P0)
			b = append(b, ' ')
			b = appendPoint(b, el.P1)
			b = append(b, ' ')
			b = appendPoint(b, el.P2)
		}
	}
	return string(b)
}

// WriteSVG writes the path as SVG path data to w.
func (p BezPath) WriteSVG(w io.Writer) error {
	_, err := io.WriteString(w, p.SVG())
	return err
}

func appendPoint(b []byte, pt Point) []byte {
	b = strconv.AppendFloat(b, pt.X, 'g', -1, 64)
	b = append(b, ',')
	return strconv.AppendFloat(b, pt.Y, 'g', -1, 64)
}
