// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "github.com/charmbracelet/harmonica"

// Camera is a viewing direction in degrees. Elevation 0, azimuth 0 looks
// down the time axis at the frame plane; elevation 90 looks from above.
type Camera struct {
	Elevation float64
	Azimuth   float64
}

// CameraPath gives the camera used to draw frame t of an animation with
// the given number of steps. Implementations must allow random access.
type CameraPath interface {
	At(t, steps int) Camera
}

// LinearCamera interpolates linearly from From at t=0 towards To at t=steps.
type LinearCamera struct {
	From Camera
	To   Camera
}

// DefaultCamera sweeps from a head-on view (0°, 0°) to a top-down view
// (90°, 90°) over the animation.
func DefaultCamera() LinearCamera {
	return LinearCamera{To: Camera{Elevation: 90, Azimuth: 90}}
}

// At implements CameraPath.
func (l LinearCamera) At(t, steps int) Camera {
	if steps <= 0 {
		return l.From
	}
	f := float64(t) / float64(steps)
	return Camera{
		Elevation: l.From.Elevation + (l.To.Elevation-l.From.Elevation)*f,
		Azimuth:   l.From.Azimuth + (l.To.Azimuth-l.From.Azimuth)*f,
	}
}

// SpringCamera follows another CameraPath through a damped spring, easing
// the start and end of the sweep. The whole path is precomputed so frames
// can still be rendered in any order.
type SpringCamera struct {
	cams []Camera
}

// NewSpringCamera precomputes steps camera positions chasing target.
// frequency is the spring's angular frequency and damping its damping
// ratio (1 is critically damped).
func NewSpringCamera(target CameraPath, steps, fps int, frequency, damping float64) *SpringCamera {
	steps = max(steps, 1)
	spring := harmonica.NewSpring(harmonica.FPS(max(fps, 1)), frequency, damping)

	cams := make([]Camera, steps)
	pos := target.At(0, steps)
	var velE, velA float64
	for t := range steps {
		goal := target.At(t, steps)
		pos.Elevation, velE = spring.Update(pos.Elevation, velE, goal.Elevation)
		pos.Azimuth, velA = spring.Update(pos.Azimuth, velA, goal.Azimuth)
		cams[t] = pos
	}
	return &SpringCamera{cams: cams}
}

// At implements CameraPath. t is clamped to the precomputed range.
func (s *SpringCamera) At(t, _ int) Camera {
	return s.cams[max(0, min(t, len(s.cams)-1))]
}
