package stroke

import "math"

// Op is the kind of a path element.
type Op int

const (
	// OpMoveTo starts a new subpath at Pts[0].
	OpMoveTo Op = iota
	// OpLineTo draws a line to Pts[0].
	OpLineTo
	// OpQuadTo draws a quadratic Bézier with control Pts[0] to Pts[1].
	OpQuadTo
	// OpCubeTo draws a cubic Bézier with controls Pts[0], Pts[1] to Pts[2].
	OpCubeTo
	// OpClose closes the current subpath.
	OpClose
)

// Element is one drawing command of a Path.
type Element struct {
	Op  Op
	Pts [3]Point
}

// End returns the point the element leaves the pen at. It is the zero
// Point for OpClose.
func (e Element) End() Point {
	switch e.Op {
	case OpQuadTo:
		return e.Pts[1]
	case OpCubeTo:
		return e.Pts[2]
	case OpClose:
		return Point{}
	default:
		return e.Pts[0]
	}
}

// Path is a sequence of drawing commands, as consumed by a rasterizer.
type Path []Element

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt Point) {
	*p = append(*p, Element{Op: OpMoveTo, Pts: [3]Point{pt}})
}

// LineTo adds a line to pt.
func (p *Path) LineTo(pt Point) {
	*p = append(*p, Element{Op: OpLineTo, Pts: [3]Point{pt}})
}

// QuadTo adds a quadratic Bézier curve to pt.
func (p *Path) QuadTo(c, pt Point) {
	*p = append(*p, Element{Op: OpQuadTo, Pts: [3]Point{c, pt}})
}

// CubeTo adds a cubic Bézier curve to pt.
func (p *Path) CubeTo(c1, c2, pt Point) {
	*p = append(*p, Element{Op: OpCubeTo, Pts: [3]Point{c1, c2, pt}})
}

// Close closes the current subpath.
func (p *Path) Close() {
	*p = append(*p, Element{Op: OpClose})
}

// Bounds returns the smallest box holding every point and control point
// of p. Curves lie inside the hull of their control points, so the box
// covers the drawn path. ok is false for a path with no points.
func (p Path) Bounds() (lo, hi Point, ok bool) {
	lo = Point{X: math.Inf(1), Y: math.Inf(1)}
	hi = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, el := range p {
		n := 1
		switch el.Op {
		case OpClose:
			continue
		case OpQuadTo:
			n = 2
		case OpCubeTo:
			n = 3
		}
		for _, pt := range el.Pts[:n] {
			lo.X, lo.Y = math.Min(lo.X, pt.X), math.Min(lo.Y, pt.Y)
			hi.X, hi.Y = math.Max(hi.X, pt.X), math.Max(hi.Y, pt.Y)
			ok = true
		}
	}
	return lo, hi, ok
}
