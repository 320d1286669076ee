// Package clip trims open polylines to a rectangular viewport before they
// are stroked.
//
// Segments are clipped with the Cohen-Sutherland algorithm. A polyline that
// leaves and re-enters the viewport comes back as several runs, so the
// stroker never joins points across the part that was cut away.
package clip

import "math"

// Point is a 2D canvas position.
type Point struct {
	X, Y float64
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle with float64 coordinates.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a Rect from position and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the right edge x-coordinate.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the bottom edge y-coordinate.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Outset grows r by d on every side. A negative d shrinks it.
func (r Rect) Outset(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: math.Max(r.W+2*d, 0), H: math.Max(r.H+2*d, 0)}
}

// IsEmpty reports whether r has zero area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Outcodes of the Cohen-Sutherland algorithm.
const (
	outcodeInside = 0
	outcodeLeft   = 1
	outcodeRight  = 2
	outcodeBottom = 4
	outcodeTop    = 8
)

// Clipper clips segments and polylines against a fixed rectangle.
type Clipper struct {
	clip Rect
}

// NewClipper creates a clipper for the given bounds.
func NewClipper(clip Rect) *Clipper {
	return &Clipper{clip: clip}
}

// Rect returns the clip rectangle.
func (c *Clipper) Rect() Rect {
	return c.clip
}

func (c *Clipper) outcode(p Point) int {
	code := outcodeInside
	if p.X < c.clip.X {
		code |= outcodeLeft
	} else if p.X > c.clip.Right() {
		code |= outcodeRight
	}
	if p.Y < c.clip.Y {
		code |= outcodeTop
	} else if p.Y > c.clip.Bottom() {
		code |= outcodeBottom
	}
	return code
}

// Line clips the segment p0-p1. It reports false when no part of the
// segment lies inside the rectangle. Endpoints inside the rectangle are
// returned unchanged.
func (c *Clipper) Line(p0, p1 Point) (Point, Point, bool) {
	if c.clip.IsEmpty() {
		return p0, p1, false
	}
	code0, code1 := c.outcode(p0), c.outcode(p1)
	for {
		if code0|code1 == 0 {
			return p0, p1, true
		}
		if code0&code1 != 0 {
			return p0, p1, false
		}

		out := code0
		if out == 0 {
			out = code1
		}

		var p Point
		switch {
		case out&outcodeTop != 0:
			t := (c.clip.Y - p0.Y) / (p1.Y - p0.Y)
			p = Point{X: p0.X + t*(p1.X-p0.X), Y: c.clip.Y}
		case out&outcodeBottom != 0:
			t := (c.clip.Bottom() - p0.Y) / (p1.Y - p0.Y)
			p = Point{X: p0.X + t*(p1.X-p0.X), Y: c.clip.Bottom()}
		case out&outcodeRight != 0:
			t := (c.clip.Right() - p0.X) / (p1.X - p0.X)
			p = Point{X: c.clip.Right(), Y: p0.Y + t*(p1.Y-p0.Y)}
		case out&outcodeLeft != 0:
			t := (c.clip.X - p0.X) / (p1.X - p0.X)
			p = Point{X: c.clip.X, Y: p0.Y + t*(p1.Y-p0.Y)}
		}

		if out == code0 {
			p0, code0 = p, c.outcode(p)
		} else {
			p1, code1 = p, c.outcode(p)
		}
	}
}

// Polyline clips the open polyline pts and returns the runs that remain
// inside the rectangle, in order. A run breaks wherever the polyline
// leaves the rectangle. A single point inside the rectangle is returned as
// a run of one.
func (c *Clipper) Polyline(pts []Point) [][]Point {
	if len(pts) == 1 {
		if c.outcode(pts[0]) == outcodeInside && !c.clip.IsEmpty() {
			return [][]Point{{pts[0]}}
		}
		return nil
	}

	var runs [][]Point
	var cur []Point
	for i := 1; i < len(pts); i++ {
		a, b, ok := c.Line(pts[i-1], pts[i])
		if !ok {
			if len(cur) > 0 {
				runs = append(runs, cur)
				cur = nil
			}
			continue
		}
		if len(cur) > 0 && cur[len(cur)-1] != a {
			runs = append(runs, cur)
			cur = nil
		}
		if len(cur) == 0 {
			cur = append(cur, a)
		}
		cur = append(cur, b)
		if b != pts[i] {
			runs = append(runs, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}
