// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/ggtraj/internal/stroke"
)

func pt(x, y float64) stroke.Point {
	return stroke.Point{X: x, Y: y}
}

func TestShapeBounds(t *testing.T) {
	var s shape
	if b := s.bounds(); !b.Empty() {
		t.Errorf("empty shape bounds = %v, want empty", b)
	}
	wide := stroke.Style{Width: 2, Cap: stroke.CapButt, Join: stroke.JoinBevel}
	s.line(pt(2.5, 3), pt(7.5, 3), wide, image.Rect(0, 0, 20, 20))
	if got, want := s.bounds(), image.Rect(2, 2, 8, 4); got != want {
		t.Errorf("bounds() = %v, want %v", got, want)
	}
}

func TestShapeLineZeroLength(t *testing.T) {
	var s shape
	s.line(pt(3, 3), pt(3, 3), trajectoryStyle(4), image.Rect(0, 0, 10, 10))
	if len(s.paths) != 0 {
		t.Errorf("zero-length line added %d paths", len(s.paths))
	}
}

func TestShapeStrokeOutsideViewIsCulled(t *testing.T) {
	var s shape
	s.line(pt(100, 100), pt(200, 100), gridStyle, image.Rect(0, 0, 20, 20))
	s.polyline([]stroke.Point{pt(-50, -5), pt(-30, 40), pt(-60, 80)}, trajectoryStyle(3), image.Rect(0, 0, 20, 20))
	if len(s.paths) != 0 {
		t.Errorf("strokes outside the view added %d paths", len(s.paths))
	}
}

func TestShapeLongLineIsClipped(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	var s shape
	s.line(pt(-1000, 10), pt(1000, 10), stroke.Style{Width: 2}, dst.Bounds())

	if b := s.bounds(); !b.In(image.Rect(-3, -3, 23, 23)) {
		t.Errorf("bounds() = %v, want the line cut near the view", b)
	}
	s.fill(dst, color.RGBA{255, 255, 255, 255})
	for _, x := range []int{0, 10, 19} {
		if got := dst.RGBAAt(x, 10); got.A != 255 {
			t.Errorf("pixel (%d, 10) alpha = %d, want 255", x, got.A)
		}
	}
	if got := dst.RGBAAt(10, 14); got.A != 0 {
		t.Errorf("pixel (10, 14) = %v, want untouched", got)
	}
}

func TestShapeFill(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	var s shape
	s.quad(pt(5, 5), pt(15, 5), pt(15, 15), pt(5, 15))
	s.fill(dst, color.RGBA{255, 0, 0, 255})

	if got := dst.RGBAAt(10, 10); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("inside pixel = %v, want opaque red", got)
	}
	if got := dst.RGBAAt(2, 2); got.A != 0 {
		t.Errorf("outside pixel = %v, want untouched", got)
	}
}

func TestShapeFillClipped(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var s shape
	s.quad(pt(-50, -50), pt(5, -50), pt(5, 60), pt(-50, 60))
	s.fill(dst, color.RGBA{0, 0, 255, 255})

	if got := dst.RGBAAt(0, 0); got.B != 255 {
		t.Errorf("pixel (0,0) = %v, want blue", got)
	}
	if got := dst.RGBAAt(8, 5); got.A != 0 {
		t.Errorf("pixel (8,5) = %v, want untouched", got)
	}

	var off shape
	off.quad(pt(100, 100), pt(110, 100), pt(110, 110), pt(100, 110))
	off.fill(dst, color.RGBA{0, 255, 0, 255})
	for i := 1; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0 {
			t.Fatalf("off-canvas fill touched byte %d", i)
		}
	}
}

func TestShapePolylineJoinsDoNotCancel(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))
	var s shape
	s.polyline([]stroke.Point{pt(5, 20), pt(20, 20), pt(20, 35)}, trajectoryStyle(6), dst.Bounds())
	s.fill(dst, color.RGBA{255, 255, 255, 255})

	// The corner is covered by both segments and the round join.
	for _, p := range []image.Point{{20, 20}, {21, 18}, {21, 19}} {
		if got := dst.RGBAAt(p.X, p.Y); got.A != 255 {
			t.Errorf("join pixel %v alpha = %d, want 255", p, got.A)
		}
	}
}

func TestShapeCrossingStrokesDoNotCancel(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	var s shape
	s.line(pt(0, 10), pt(20, 10), stroke.Style{Width: 4}, dst.Bounds())
	s.line(pt(10, 0), pt(10, 20), stroke.Style{Width: 4}, dst.Bounds())
	s.line(pt(20, 11), pt(0, 11), stroke.Style{Width: 2}, dst.Bounds())
	s.fill(dst, color.RGBA{255, 255, 255, 255})

	if got := dst.RGBAAt(10, 10); got.A != 255 {
		t.Errorf("crossing pixel alpha = %d, want 255", got.A)
	}
}
