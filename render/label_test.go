// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"math"
	"sync"
	"testing"
)

func newTestLabeler(t *testing.T) *labeler {
	t.Helper()
	l, err := newLabeler(16)
	if err != nil {
		t.Fatalf("newLabeler() error = %v", err)
	}
	return l
}

// inked returns the bounding box of the pixels with any coverage.
func inked(img *image.RGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A > 0 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestLabelerMetrics(t *testing.T) {
	l := newTestLabeler(t)
	if l.ascent <= 0 || l.descent <= 0 || l.ascent+l.descent > 2*l.size {
		t.Errorf("ascent = %v, descent = %v for size %v", l.ascent, l.descent, l.size)
	}
}

func TestLabelerLayout(t *testing.T) {
	l := newTestLabeler(t)

	if p, w := l.layout("", 0, 0); p != nil || w != 0 {
		t.Errorf("layout(\"\") = %v, %v, want nil, 0", p, w)
	}
	if _, w := l.layout(" ", 0, 0); w <= 0 {
		t.Errorf("space advance = %v, want positive", w)
	}

	_, narrow := l.layout("ii", 0, 0)
	_, wide := l.layout("mm", 0, 0)
	if narrow <= 0 || wide <= narrow {
		t.Errorf("advance(ii) = %v, advance(mm) = %v, want 0 < ii < mm", narrow, wide)
	}

	p, w := l.layout("Tx", 5, 20)
	lo, hi, ok := p.Bounds()
	if !ok {
		t.Fatal("layout(\"Tx\") has no outline")
	}
	if lo.X < 5-1 || hi.X > 5+w+1 || hi.Y > 20+l.descent || lo.Y < 20-l.ascent {
		t.Errorf("outline bounds %v..%v escape the line box at (5, 20) of width %v", lo, hi, w)
	}
}

func TestLabelerDraw(t *testing.T) {
	l := newTestLabeler(t)
	dst := image.NewRGBA(image.Rect(0, 0, 60, 40))

	l.draw(dst, "t = 1", 4, 30, color.White)

	r := inked(dst)
	if r.Empty() {
		t.Fatal("draw() left the canvas blank")
	}
	if r.Max.Y > 30+int(math.Ceil(l.descent)) || r.Min.Y < 30-int(math.Ceil(l.ascent)) {
		t.Errorf("inked area %v outside the line at baseline 30", r)
	}
}

func TestLabelerDrawCentered(t *testing.T) {
	l := newTestLabeler(t)
	dst := image.NewRGBA(image.Rect(0, 0, 60, 40))

	l.drawCentered(dst, "H", 30, 20, color.White)

	r := inked(dst)
	if r.Empty() {
		t.Fatal("drawCentered() left the canvas blank")
	}
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	if math.Abs(cx-30) > 3 || math.Abs(cy-20) > 4 {
		t.Errorf("inked area %v centred on (%v, %v), want near (30, 20)", r, cx, cy)
	}
}

func TestLabelerConcurrentUse(t *testing.T) {
	l := newTestLabeler(t)
	_, want := l.layout("pixel x", 0, 0)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				if _, got := l.layout("pixel x", 0, 0); got != want {
					t.Errorf("advance = %v, want %v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
