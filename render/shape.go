// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/ggtraj/internal/clip"
	"github.com/gogpu/ggtraj/internal/stroke"
)

// Stroke styles of the scene elements.
var (
	gridStyle = stroke.Style{Width: 1, Cap: stroke.CapButt, Join: stroke.JoinBevel}
	boxStyle  = stroke.Style{Width: 1, Cap: stroke.CapSquare, Join: stroke.JoinBevel}
)

// trajectoryStyle is the stroke of the trajectory polyline.
func trajectoryStyle(width float64) stroke.Style {
	return stroke.Style{Width: width, Cap: stroke.CapRound, Join: stroke.JoinRound}
}

// shape collects closed outlines that are filled together in one color,
// so overlapping parts (line joins, crossing gridlines) are covered once.
// Coverage adds up signed, so stroked outlines rely on the stroker
// winding them all the same way.
type shape struct {
	paths []stroke.Path
}

func (s *shape) add(p stroke.Path) {
	if len(p) > 0 {
		s.paths = append(s.paths, p)
	}
}

// quad adds the quadrilateral a, b, c, d.
func (s *shape) quad(a, b, c, d stroke.Point) {
	p := make(stroke.Path, 0, 5)
	p.MoveTo(a)
	p.LineTo(b)
	p.LineTo(c)
	p.LineTo(d)
	p.Close()
	s.add(p)
}

// polyline adds the outline of the polyline pts drawn with style. The
// polyline is first cut to view, grown by the reach of the stroke, so
// nothing is expanded that could not show.
func (s *shape) polyline(pts []stroke.Point, style stroke.Style, view image.Rectangle) {
	if len(pts) < 2 {
		return
	}
	r := clip.NewRect(float64(view.Min.X), float64(view.Min.Y), float64(view.Dx()), float64(view.Dy()))
	c := clip.NewClipper(r.Outset(style.Reach() + 1))

	in := make([]clip.Point, len(pts))
	for i, p := range pts {
		in[i] = clip.Point(p)
	}
	e := stroke.NewExpander(style)
	for _, run := range c.Polyline(in) {
		out := make([]stroke.Point, len(run))
		for i, p := range run {
			out[i] = stroke.Point(p)
		}
		s.add(e.Expand(out))
	}
}

// line adds a single stroked segment from a to b.
func (s *shape) line(a, b stroke.Point, style stroke.Style, view image.Rectangle) {
	s.polyline([]stroke.Point{a, b}, style, view)
}

// bounds returns the integer rectangle covering every outline.
func (s *shape) bounds() image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	found := false
	for _, p := range s.paths {
		lo, hi, ok := p.Bounds()
		if !ok {
			continue
		}
		found = true
		minX, maxX = math.Min(minX, lo.X), math.Max(maxX, hi.X)
		minY, maxY = math.Min(minY, lo.Y), math.Max(maxY, hi.Y)
	}
	if !found {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

// fill rasterizes the shape onto dst with anti-aliasing, composited over
// the existing pixels. The rasterizer covers only the part of the shape
// inside dst; coverage of edges left of it is carried into its first
// column and everything else outside is dropped.
func (s *shape) fill(dst *image.RGBA, c color.Color) {
	r := s.bounds().Intersect(dst.Bounds())
	if r.Empty() {
		return
	}

	z := vector.NewRasterizer(r.Dx(), r.Dy())
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	at := func(p stroke.Point) (float32, float32) {
		return float32(p.X - ox), float32(p.Y - oy)
	}
	for _, p := range s.paths {
		open := false
		for _, el := range p {
			switch el.Op {
			case stroke.OpMoveTo:
				if open {
					z.ClosePath()
				}
				z.MoveTo(at(el.Pts[0]))
				open = true
			case stroke.OpLineTo:
				z.LineTo(at(el.Pts[0]))
			case stroke.OpQuadTo:
				cx, cy := at(el.Pts[0])
				x, y := at(el.Pts[1])
				z.QuadTo(cx, cy, x, y)
			case stroke.OpCubeTo:
				c1x, c1y := at(el.Pts[0])
				c2x, c2y := at(el.Pts[1])
				x, y := at(el.Pts[2])
				z.CubeTo(c1x, c1y, c2x, c2y, x, y)
			case stroke.OpClose:
				if open {
					z.ClosePath()
					open = false
				}
			}
		}
		if open {
			z.ClosePath()
		}
	}
	z.Draw(dst, r, image.NewUniform(c), image.Point{})
}
