// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render draws a generated dataset as a 3D animation and writes the
// result to disk.
//
// The scene is a box spanning (time, pixel x, pixel y). Each animation frame
// t places video frame t on the time=0 plane and draws the trajectory of the
// object over the previous t frames receding along the time axis, while the
// camera moves from a head-on view of the frame to a top-down view of the
// time axis.
//
// # Drawing
//
// Everything is drawn on the CPU into an *image.RGBA ([Target]). Lines are
// cut to the canvas and expanded into outlines with round, square or butt
// caps, then filled with anti-aliasing by golang.org/x/image/vector. Axis
// labels are shaped with go-text/typesetting and drawn from the Go Regular
// glyph outlines through the same fill.
//
// # Cameras
//
//   - [LinearCamera]: interpolates elevation and azimuth linearly over the run
//   - [SpringCamera]: follows another camera path through a damped spring
//
// # Export
//
// [Export] picks a format from the output path:
//
//   - *.png: animated PNG
//   - *.gif: animated GIF
//   - "-": concatenated PNG frames on stdout
//   - anything else: a directory of numbered PNG frames
//
// # Usage
//
//	ds, err := ggtraj.GenerateDot(30, 30, 100)
//	if err != nil {
//		log.Fatal(err)
//	}
//	anim, err := render.NewAnimator(ds.Video, ds.Trajectory, render.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	frames, err := anim.RenderAll(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := render.Export("trajectory.png", frames, os.Stdout); err != nil {
//		log.Fatal(err)
//	}
package render
