// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "math"

// Vec3 is a point in (time, pixel x, pixel y) data space.
type Vec3 struct {
	T, X, Y float64
}

// Projection maps the data box [0,steps] × [0,width] × [0,height] onto a
// canvas with an orthographic camera. The box is first normalized to a unit
// cube centred on the origin, so all three axes get equal screen length
// regardless of their data range.
type Projection struct {
	extent Vec3

	eye, right, up [3]float64

	scale  float64
	cx, cy float64
}

// NewProjection returns the projection of a steps×width×height box seen
// from cam onto a canvasW×canvasH canvas. The cube's bounding sphere fills
// 90% of the shorter canvas side, so the box stays inside the canvas at
// every camera angle.
func NewProjection(steps, width, height int, cam Camera, canvasW, canvasH int) Projection {
	e := cam.Elevation * math.Pi / 180
	a := cam.Azimuth * math.Pi / 180
	se, ce := math.Sincos(e)
	sa, ca := math.Sincos(a)

	return Projection{
		extent: Vec3{T: float64(steps), X: float64(width), Y: float64(height)},
		eye:    [3]float64{ce * ca, ce * sa, se},
		right:  [3]float64{-sa, ca, 0},
		up:     [3]float64{-se * ca, -se * sa, ce},
		scale:  0.45 * float64(min(canvasW, canvasH)) / (math.Sqrt(3) / 2),
		cx:     float64(canvasW) / 2,
		cy:     float64(canvasH) / 2,
	}
}

// normalize maps a data point into the unit cube [-0.5, 0.5]³.
func (p Projection) normalize(v Vec3) [3]float64 {
	return [3]float64{
		v.T/p.extent.T - 0.5,
		v.X/p.extent.X - 0.5,
		v.Y/p.extent.Y - 0.5,
	}
}

func dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Project returns the canvas position of data point v. Canvas y grows
// downward, data y (the vertical axis) grows upward.
func (p Projection) Project(v Vec3) (x, y float64) {
	n := p.normalize(v)
	return p.cx + dot3(n, p.right)*p.scale, p.cy - dot3(n, p.up)*p.scale
}

// Eye returns the unit vector pointing from the scene towards the viewer,
// in (time, x, y) axis order.
func (p Projection) Eye() [3]float64 {
	return p.eye
}
