// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggtraj/internal/stroke"
)

// labeler draws short strings with the Go Regular font. Text is shaped by
// HarfBuzz, glyph outlines come from sfnt and are filled like any other
// shape. The shaper, the face and the glyph buffer all hold state, so
// shaping and outline loading are serialized.
type labeler struct {
	mu     sync.Mutex
	shaper shaping.HarfbuzzShaper
	face   *font.Face
	glyphs *sfnt.Font
	buf    sfnt.Buffer

	size    float64
	ascent  float64
	descent float64
}

// newLabeler parses the embedded Go Regular font at the given pixel size.
func newLabeler(size float64) (*labeler, error) {
	face, err := font.ParseTTF(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}
	glyphs, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parse font outlines: %w", err)
	}

	l := &labeler{face: face, glyphs: glyphs, size: size}
	m, err := glyphs.Metrics(&l.buf, l.ppem(), xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("render: font metrics: %w", err)
	}
	l.ascent = fixedToFloat(m.Ascent)
	l.descent = fixedToFloat(m.Descent)
	return l, nil
}

func (l *labeler) ppem() fixed.Int26_6 {
	return fixed.Int26_6(l.size * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// layout shapes s and returns its glyph outlines with the baseline-left
// corner at (x, y), along with the advance width of the run.
func (l *labeler) layout(s string, x, y float64) (stroke.Path, float64) {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil, 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	out := l.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      l.face,
		Size:      l.ppem(),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	})

	var p stroke.Path
	pen := x
	for _, g := range out.Glyphs {
		gx := pen + fixedToFloat(g.XOffset)
		gy := y - fixedToFloat(g.YOffset)
		pen += fixedToFloat(g.Advance)

		segs, err := l.glyphs.LoadGlyph(&l.buf, sfnt.GlyphIndex(g.GlyphID), l.ppem(), nil)
		if err != nil {
			// Glyphs without an outline (spaces) or missing from the font
			// only move the pen.
			continue
		}
		at := func(v fixed.Point26_6) stroke.Point {
			return stroke.Point{X: gx + fixedToFloat(v.X), Y: gy + fixedToFloat(v.Y)}
		}
		for _, seg := range segs {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				p.MoveTo(at(seg.Args[0]))
			case sfnt.SegmentOpLineTo:
				p.LineTo(at(seg.Args[0]))
			case sfnt.SegmentOpQuadTo:
				p.QuadTo(at(seg.Args[0]), at(seg.Args[1]))
			case sfnt.SegmentOpCubeTo:
				p.CubeTo(at(seg.Args[0]), at(seg.Args[1]), at(seg.Args[2]))
			}
		}
	}
	return p, pen - x
}

// draw writes s with its baseline-left corner at (x, y).
func (l *labeler) draw(dst *image.RGBA, s string, x, y float64, c color.Color) {
	p, _ := l.layout(s, x, y)
	var sh shape
	sh.add(p)
	sh.fill(dst, c)
}

// drawCentered writes s centred horizontally and vertically on (x, y).
func (l *labeler) drawCentered(dst *image.RGBA, s string, x, y float64, c color.Color) {
	_, w := l.layout(s, 0, 0)
	l.draw(dst, s, x-w/2, y+(l.ascent-l.descent)/2, c)
}
