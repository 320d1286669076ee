package main

import (
	"image"
	"image/color"
	"math"
)

// fish draws a small orange fish facing right on a transparent background:
// an elliptical body, a triangular tail and a dark eye.
func fish(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	body := color.NRGBA{0xff, 0x8c, 0x1a, 0xff}
	fin := color.NRGBA{0xe0, 0x60, 0x10, 0xff}
	eye := color.NRGBA{0x10, 0x10, 0x10, 0xff}

	fw, fh := float64(w), float64(h)
	tail := fw * 0.3
	cx, cy := tail+(fw-tail)/2, fh/2
	rx, ry := (fw-tail)/2, fh/2

	for y := range h {
		for x := range w {
			px, py := float64(x)+0.5, float64(y)+0.5
			dx, dy := (px-cx)/rx, (py-cy)/ry
			switch {
			case dx*dx+dy*dy <= 1:
				img.SetNRGBA(x, y, body)
			case px < tail && math.Abs(py-cy) <= (tail-px)/tail*fh/2:
				img.SetNRGBA(x, y, fin)
			}
		}
	}

	ex, ey := int(cx+rx*0.5), int(cy-ry*0.3)
	if image.Pt(ex, ey).In(img.Rect) {
		img.SetNRGBA(ex, ey, eye)
	}
	return img
}
