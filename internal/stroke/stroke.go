// Package stroke converts stroked polylines into filled outlines.
//
// An outline is built from two offset paths, half the stroke width to
// either side of the polyline. The forward path runs along the polyline,
// the end cap crosses to the backward path, the backward path runs back
// reversed, and the start cap closes the loop. Joins are added at every
// vertex where the direction changes.
//
// Every outline winds the same way relative to its polyline, so outlines
// filled together with a nonzero rule never cancel where they overlap.
package stroke

import "math"

// Point is a 2D canvas position.
type Point struct {
	X, Y float64
}

// Add returns p moved by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec2 is a 2D displacement.
type Vec2 struct {
	X, Y float64
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of the cross product of v and w.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Perp returns v rotated by 90 degrees, toward positive angles.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Angle returns the direction of v in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Cap is the shape drawn at the two ends of a stroke.
type Cap int

const (
	// CapButt ends the stroke flat at the endpoint.
	CapButt Cap = iota
	// CapRound ends the stroke with a half disc of radius Width/2.
	CapRound
	// CapSquare extends the stroke by Width/2 past the endpoint.
	CapSquare
)

// Join is the shape drawn where two segments of a stroke meet.
type Join int

const (
	// JoinMiter extends the outer edges to a point, falling back to a
	// bevel beyond MiterLimit.
	JoinMiter Join = iota
	// JoinRound fills the outer corner with a circular arc.
	JoinRound
	// JoinBevel cuts the outer corner with a straight line.
	JoinBevel
)

// Style describes how a polyline is stroked. The zero Join is JoinMiter,
// which bevels every corner while MiterLimit is zero.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// Reach returns how far the outline can extend from the polyline.
func (s Style) Reach() float64 {
	r := s.Width / 2
	switch {
	case s.Join == JoinMiter && s.MiterLimit > 1:
		r *= s.MiterLimit
	case s.Cap == CapSquare:
		r *= math.Sqrt2
	}
	return r
}

// tolerance bounds the error of joins that are skipped as too shallow.
const tolerance = 0.25

// Expander strokes polylines. It keeps scratch buffers between calls and is
// not safe for concurrent use.
type Expander struct {
	style Style

	forward  Path
	backward Path
	out      Path

	startPt   Point
	startNorm Vec2
	lastPt    Point
	lastTan   Vec2
	lastNorm  Vec2 // offset at lastPt, pointing to the backward side

	joinThresh float64
}

// NewExpander creates an expander for the given style.
func NewExpander(style Style) *Expander {
	return &Expander{style: style}
}

// Expand returns the closed outline of the open polyline pts. Repeated
// points are skipped. A polyline with fewer than two distinct points, or
// a non-positive width, has no outline and yields nil.
//
// The returned path is owned by the caller.
func (e *Expander) Expand(pts []Point) Path {
	if len(pts) < 2 || e.style.Width <= 0 {
		return nil
	}
	e.reset()
	e.startPt, e.lastPt = pts[0], pts[0]
	for _, p := range pts[1:] {
		if p == e.lastPt {
			continue
		}
		tan := p.Sub(e.lastPt)
		e.join(tan)
		e.lastTan = tan
		e.line(tan, p)
	}
	e.finish()
	return e.out
}

func (e *Expander) reset() {
	e.forward = e.forward[:0]
	e.backward = e.backward[:0]
	e.out = nil
	e.startNorm = Vec2{}
	e.lastTan = Vec2{}
	e.lastNorm = Vec2{}
	e.joinThresh = 2 * tolerance / e.style.Width
}

// normal returns the offset for tangent tan, half the width long.
func (e *Expander) normal(tan Vec2) Vec2 {
	return tan.Perp().Scale(0.5 * e.style.Width / tan.Length())
}

// join connects the segment starting at lastPt with direction tan to the
// previous one, or starts both offset paths for the first segment.
func (e *Expander) join(tan Vec2) {
	norm := e.normal(tan)
	p0 := e.lastPt

	if len(e.forward) == 0 {
		e.forward.MoveTo(p0.Add(norm.Neg()))
		e.backward.MoveTo(p0.Add(norm))
		e.startNorm = norm
		return
	}

	cross := e.lastTan.Cross(tan)
	dot := e.lastTan.Dot(tan)
	hypot := math.Hypot(cross, dot)

	// Nearly straight: connect without a visible join.
	if dot > 0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward.LineTo(p0.Add(norm.Neg()))
		e.backward.LineTo(p0.Add(norm))
		return
	}

	switch e.style.Join {
	case JoinMiter:
		e.miterJoin(p0, norm, tan, cross, dot, hypot)
	case JoinRound:
		e.roundJoin(p0, norm, cross, dot)
	default:
		e.forward.LineTo(p0.Add(norm.Neg()))
		e.backward.LineTo(p0.Add(norm))
	}
}

// miterJoin adds the miter point on the outer side when the turn is within
// the miter limit. A positive cross product turns toward the backward side,
// leaving the forward path outside.
func (e *Expander) miterJoin(p0 Point, norm, tan Vec2, cross, dot, hypot float64) {
	limit := e.style.MiterLimit
	if 2*hypot < (hypot+dot)*limit*limit {
		side := 1.0
		outer, inner := &e.backward, &e.forward
		if cross > 0 {
			side = -1
			outer, inner = &e.forward, &e.backward
		}
		last := p0.Add(e.lastNorm.Scale(side))
		this := p0.Add(norm.Scale(side))
		h := e.lastTan.Cross(this.Sub(last)) / cross
		outer.LineTo(this.Add(tan.Scale(-h)))
		inner.LineTo(p0)
	}
	e.forward.LineTo(p0.Add(norm.Neg()))
	e.backward.LineTo(p0.Add(norm))
}

// roundJoin sweeps an arc around p0 on the outer side from the previous
// offset to the new one, and cuts straight across the inner side.
func (e *Expander) roundJoin(p0 Point, norm Vec2, cross, dot float64) {
	angle := math.Atan2(cross, dot)
	if angle > 0 {
		e.backward.LineTo(p0.Add(norm))
		arc(&e.forward, p0, e.lastNorm.Neg(), angle)
	} else {
		e.forward.LineTo(p0.Add(norm.Neg()))
		arc(&e.backward, p0, e.lastNorm, angle)
	}
}

// line extends both offset paths to p1.
func (e *Expander) line(tan Vec2, p1 Point) {
	norm := e.normal(tan)
	e.forward.LineTo(p1.Add(norm.Neg()))
	e.backward.LineTo(p1.Add(norm))
	e.lastPt = p1
	e.lastNorm = norm
}

// finish joins the offset paths with caps into one closed outline.
func (e *Expander) finish() {
	if len(e.forward) == 0 {
		return
	}
	e.out = make(Path, 0, len(e.forward)+len(e.backward)+8)
	e.out = append(e.out, e.forward...)
	e.cap(e.lastPt, e.lastNorm.Neg(), false)
	e.appendReversed(e.backward)
	e.cap(e.startPt, e.startNorm, true)
}

// cap draws the cap around center, starting at center+norm and ending at
// center-norm. The start cap closes the outline instead of drawing its
// last side.
func (e *Expander) cap(center Point, norm Vec2, closing bool) {
	switch e.style.Cap {
	case CapRound:
		arc(&e.out, center, norm, math.Pi)
		if closing {
			e.out.Close()
		}
	case CapSquare:
		ext := norm.Perp()
		e.out.LineTo(center.Add(norm).Add(ext))
		e.out.LineTo(center.Add(norm.Neg()).Add(ext))
		if closing {
			e.out.Close()
		} else {
			e.out.LineTo(center.Add(norm.Neg()))
		}
	default:
		if closing {
			e.out.Close()
		} else {
			e.out.LineTo(center.Add(norm.Neg()))
		}
	}
}

// appendReversed walks p backwards, skipping its MoveTo.
func (e *Expander) appendReversed(p Path) {
	for i := len(p) - 1; i >= 1; i-- {
		end := p[i-1].End()
		switch el := p[i]; el.Op {
		case OpLineTo:
			e.out.LineTo(end)
		case OpQuadTo:
			e.out.QuadTo(el.Pts[0], end)
		case OpCubeTo:
			e.out.CubeTo(el.Pts[1], el.Pts[0], end)
		}
	}
}

// arc appends a circular arc around center that starts at center+from,
// which must be the current point of p, and sweeps by the signed angle
// sweep. It is split into cubic segments of at most 90 degrees.
func arc(p *Path, center Point, from Vec2, sweep float64) {
	n := max(int(math.Ceil(math.Abs(sweep)/(math.Pi/2))), 1)
	step := sweep / float64(n)
	radius := from.Length()
	a := from.Angle()
	for range n {
		arcSegment(p, center, radius, a, a+step)
		a += step
	}
}

// arcSegment appends the cubic approximation of the arc from angle a0 to a1.
func arcSegment(p *Path, center Point, radius, a0, a1 float64) {
	alpha := 4.0 / 3 * math.Tan((a1-a0)/4)

	sin0, cos0 := math.Sincos(a0)
	sin1, cos1 := math.Sincos(a1)

	p0 := Point{X: center.X + radius*cos0, Y: center.Y + radius*sin0}
	p1 := Point{X: center.X + radius*cos1, Y: center.Y + radius*sin1}

	c1 := Point{X: p0.X - alpha*radius*sin0, Y: p0.Y + alpha*radius*cos0}
	c2 := Point{X: p1.X + alpha*radius*sin1, Y: p1.Y - alpha*radius*cos1}

	p.CubeTo(c1, c2, p1)
}
