// Package ggtraj generates synthetic videos of a moving object and the
// trajectory the object follows.
//
// # Overview
//
// A dataset is built in two steps. A Path gives the object's continuous
// position at each discrete time step, and SamplePath truncates it to pixel
// coordinates. A Compositor then writes one time slice per step into a
// Video: a single lit pixel (GenerateDot) or a sprite image clipped to the
// frame (GenerateSprite). The result is a Dataset holding the immutable
// Video and the matching Trajectory.
//
// # Quick Start
//
//	ds, err := ggtraj.GenerateDot(30, 30, 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	frame, _ := ds.Video.Frame(0)
//	fmt.Println(frame.At(22, 15, 0)) // 1
//
// The render sub-package turns a dataset into an animated 3D view of the
// frame stack with the trajectory drawn through it.
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left pixel of a frame
//   - X increases right, Y increases down (pixel rows)
//   - Sprite trajectories flip Y to grow upward; see Trajectory.YUp
//   - Time indices start at 0 and advance by one per frame
//
// # Errors
//
// Non-positive dimensions or step counts fail with ErrInvalidParameter
// before anything is written. A sprite that falls partly or wholly outside
// the frame is not an error: it is clipped, and Clip reports what happened.
package ggtraj

// Version is the current version of the library.
const Version = "0.1.0"
