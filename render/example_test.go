// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gogpu/ggtraj"
	"github.com/gogpu/ggtraj/render"
)

func ExampleLinearCamera() {
	cam := render.DefaultCamera()
	for _, t := range []int{0, 50, 100} {
		c := cam.At(t, 100)
		fmt.Printf("t=%d elevation=%.0f azimuth=%.0f\n", t, c.Elevation, c.Azimuth)
	}
	// Output:
	// t=0 elevation=0 azimuth=0
	// t=50 elevation=45 azimuth=45
	// t=100 elevation=90 azimuth=90
}

func ExampleAnimator() {
	ds, err := ggtraj.GenerateDot(30, 30, 20)
	if err != nil {
		log.Fatal(err)
	}

	cfg := render.DefaultConfig()
	cfg.Width, cfg.Height = 240, 240
	anim, err := render.NewAnimator(ds.Video, ds.Trajectory, cfg)
	if err != nil {
		log.Fatal(err)
	}

	frames, err := anim.RenderAll(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	dir, err := os.MkdirTemp("", "ggtraj")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	if err := render.Export(filepath.Join(dir, "dot.gif"), frames, os.Stdout); err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(frames), "frames")
	// Output: 20 frames
}
