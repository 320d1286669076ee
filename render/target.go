// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Target is the CPU-backed canvas an animation frame is drawn into.
//
// Example:
//
//	target := render.NewTarget(480, 480)
//	target.Clear(color.Black)
//	img := target.Image()
type Target struct {
	img *image.RGBA
}

// NewTarget creates a width×height canvas.
func NewTarget(width, height int) *Target {
	return &Target{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (t *Target) Image() *image.RGBA {
	return t.img
}

// Clear fills the entire target with the given color.
func (t *Target) Clear(c color.Color) {
	draw.Draw(t.img, t.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}
