// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/ggtraj"
	"github.com/gogpu/ggtraj/internal/parallel"
	"github.com/gogpu/ggtraj/internal/stroke"
)

// FrameSource is the read-only view of a video the renderer needs.
// *ggtraj.Video implements it.
type FrameSource interface {
	Frame(t int) (ggtraj.Frame, error)
	Steps() int
	Width() int
	Height() int
}

// Ensure *ggtraj.Video implements FrameSource.
var _ FrameSource = (*ggtraj.Video)(nil)

// Config holds the appearance of an animation. Zero fields take the value
// from DefaultConfig.
type Config struct {
	// Width and Height are the canvas size in pixels.
	Width, Height int

	Background color.Color
	Grid       color.Color
	Box        color.Color
	Trajectory color.Color
	Label      color.Color

	// LineWidth is the trajectory stroke width in pixels.
	LineWidth float64

	// GridStep is the gridline spacing along the pixel axes.
	GridStep int

	// TimeTick is the gridline spacing along the time axis.
	TimeTick int

	// HideLabels disables axis labels and the frame caption.
	HideLabels bool

	// FontSize is the label size in pixels.
	FontSize float64

	// Camera gives the view for each frame. Defaults to DefaultCamera().
	Camera CameraPath
}

// DefaultConfig returns a 480×480 dark canvas with a red trajectory,
// pixel gridlines and a camera sweeping from head-on to top-down.
func DefaultConfig() Config {
	return Config{
		Width:      480,
		Height:     480,
		Background: color.NRGBA{0x1e, 0x1e, 0x1e, 0xff},
		Grid:       color.NRGBA{0x80, 0x80, 0x80, 0x50},
		Box:        color.NRGBA{0xa0, 0xa0, 0xa0, 0xff},
		Trajectory: color.NRGBA{0xff, 0x00, 0x00, 0xff},
		Label:      color.NRGBA{0xdd, 0xdd, 0xdd, 0xff},
		LineWidth:  5,
		GridStep:   1,
		TimeTick:   10,
		FontSize:   12,
		Camera:     DefaultCamera(),
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Width == 0 {
		c.Width = d.Width
	}
	if c.Height == 0 {
		c.Height = d.Height
	}
	if c.Background == nil {
		c.Background = d.Background
	}
	if c.Grid == nil {
		c.Grid = d.Grid
	}
	if c.Box == nil {
		c.Box = d.Box
	}
	if c.Trajectory == nil {
		c.Trajectory = d.Trajectory
	}
	if c.Label == nil {
		c.Label = d.Label
	}
	if c.LineWidth == 0 {
		c.LineWidth = d.LineWidth
	}
	if c.GridStep == 0 {
		c.GridStep = d.GridStep
	}
	if c.TimeTick == 0 {
		c.TimeTick = d.TimeTick
	}
	if c.FontSize == 0 {
		c.FontSize = d.FontSize
	}
	if c.Camera == nil {
		c.Camera = d.Camera
	}
	return c
}

// Axis labels.
const (
	LabelTime   = "Frame Index (time)"
	LabelPixelX = "Pixel X"
	LabelPixelY = "Pixel Y"
)

// Animator draws the 3D view of a dataset one frame at a time: the video
// frame for time t stands on the time=0 plane and the trajectory up to t
// recedes behind it along the time axis.
//
// Render only reads the source, so frames can be drawn in any order,
// repeatedly and from several goroutines.
type Animator struct {
	src   FrameSource
	traj  *ggtraj.Trajectory
	cfg   Config
	label *labeler
}

// NewAnimator validates that traj matches src and prepares the label font.
func NewAnimator(src FrameSource, traj *ggtraj.Trajectory, cfg Config) (*Animator, error) {
	if src == nil || traj == nil {
		return nil, fmt.Errorf("%w: nil frame source or trajectory", ggtraj.ErrInvalidParameter)
	}
	if traj.Len() != src.Steps() {
		return nil, fmt.Errorf("%w: trajectory has %d samples for %d frames",
			ggtraj.ErrInvalidParameter, traj.Len(), src.Steps())
	}
	cfg = cfg.withDefaults()
	if cfg.Width < 0 || cfg.Height < 0 || cfg.GridStep < 0 || cfg.TimeTick < 0 || cfg.LineWidth < 0 {
		return nil, fmt.Errorf("%w: negative render setting", ggtraj.ErrInvalidParameter)
	}

	a := &Animator{src: src, traj: traj, cfg: cfg}
	if !cfg.HideLabels {
		l, err := newLabeler(cfg.FontSize)
		if err != nil {
			return nil, err
		}
		a.label = l
	}
	return a, nil
}

// Steps returns the number of animation frames.
func (a *Animator) Steps() int {
	return a.src.Steps()
}

// Config returns the effective configuration.
func (a *Animator) Config() Config {
	return a.cfg
}

// Projection returns the projection used for frame t.
func (a *Animator) Projection(t int) Projection {
	steps := a.src.Steps()
	return NewProjection(steps, a.src.Width(), a.src.Height(),
		a.cfg.Camera.At(t, steps), a.cfg.Width, a.cfg.Height)
}

// Render draws animation frame t.
func (a *Animator) Render(t int) (*image.RGBA, error) {
	frame, err := a.src.Frame(t)
	if err != nil {
		return nil, err
	}

	target := NewTarget(a.cfg.Width, a.cfg.Height)
	target.Clear(a.cfg.Background)
	dst := target.Image()
	proj := a.Projection(t)

	a.drawGrid(dst, proj)
	a.drawBox(dst, proj)
	a.drawFrame(dst, proj, frame)
	a.drawTrajectory(dst, proj, t)
	if a.label != nil {
		a.drawLabels(dst, proj, t)
	}
	return dst, nil
}

// RenderAll draws every frame in time order. It stops early with ctx.Err()
// when ctx is cancelled.
func (a *Animator) RenderAll(ctx context.Context) ([]image.Image, error) {
	frames := make([]image.Image, 0, a.Steps())
	for t := range a.Steps() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := a.Render(t)
		if err != nil {
			return nil, fmt.Errorf("render: frame %d: %w", t, err)
		}
		frames = append(frames, img)
	}
	ggtraj.Logger().Info("animation rendered", "frames", len(frames),
		"width", a.cfg.Width, "height", a.cfg.Height)
	return frames, nil
}

// RenderParallel draws every frame using the given number of worker
// goroutines (GOMAXPROCS when workers <= 0). Frames are returned in time
// order. Frames not yet started when ctx is cancelled are skipped and
// ctx.Err() is returned.
func (a *Animator) RenderParallel(ctx context.Context, workers int) ([]image.Image, error) {
	pool := parallel.NewPool(workers)
	defer pool.Close()

	frames := make([]image.Image, a.Steps())
	errs := make([]error, a.Steps())
	pool.Run(a.Steps(), func(t int) {
		if err := ctx.Err(); err != nil {
			errs[t] = err
			return
		}
		img, err := a.Render(t)
		if err != nil {
			errs[t] = fmt.Errorf("render: frame %d: %w", t, err)
			return
		}
		frames[t] = img
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	ggtraj.Logger().Info("animation rendered", "frames", len(frames),
		"width", a.cfg.Width, "height", a.cfg.Height, "workers", pool.Workers())
	return frames, nil
}

func (a *Animator) project(proj Projection, v Vec3) stroke.Point {
	x, y := proj.Project(v)
	return stroke.Point{X: x, Y: y}
}

// backPlanes returns, per axis, the coordinate of the box face farthest
// from the viewer, and whether that face is seen at a usable angle.
func (a *Animator) backPlanes(proj Projection) (planes Vec3, visible [3]bool) {
	eye := proj.Eye()
	ext := [3]float64{float64(a.src.Steps()), float64(a.src.Width()), float64(a.src.Height())}
	var v [3]float64
	for i := range 3 {
		if eye[i] < 0 {
			v[i] = ext[i]
		}
		visible[i] = math.Abs(eye[i]) > 1e-3
	}
	return Vec3{T: v[0], X: v[1], Y: v[2]}, visible
}

// ticks returns the multiples of step in [0, limit].
func ticks(limit, step int) []float64 {
	if step <= 0 {
		return nil
	}
	var out []float64
	for v := 0; v <= limit; v += step {
		out = append(out, float64(v))
	}
	return out
}

// drawGrid draws gridlines on the three back faces of the data box.
func (a *Animator) drawGrid(dst *image.RGBA, proj Projection) {
	steps, w, h := float64(a.src.Steps()), float64(a.src.Width()), float64(a.src.Height())
	tTicks := ticks(a.src.Steps(), a.cfg.TimeTick)
	xTicks := ticks(a.src.Width(), a.cfg.GridStep)
	yTicks := ticks(a.src.Height(), a.cfg.GridStep)
	back, visible := a.backPlanes(proj)

	var s shape
	view := dst.Bounds()
	seg := func(p, q Vec3) { s.line(a.project(proj, p), a.project(proj, q), gridStyle, view) }

	if visible[0] {
		for _, x := range xTicks {
			seg(Vec3{back.T, x, 0}, Vec3{back.T, x, h})
		}
		for _, y := range yTicks {
			seg(Vec3{back.T, 0, y}, Vec3{back.T, w, y})
		}
	}
	if visible[1] {
		for _, t := range tTicks {
			seg(Vec3{t, back.X, 0}, Vec3{t, back.X, h})
		}
		for _, y := range yTicks {
			seg(Vec3{0, back.X, y}, Vec3{steps, back.X, y})
		}
	}
	if visible[2] {
		for _, t := range tTicks {
			seg(Vec3{t, 0, back.Y}, Vec3{t, w, back.Y})
		}
		for _, x := range xTicks {
			seg(Vec3{0, x, back.Y}, Vec3{steps, x, back.Y})
		}
	}
	s.fill(dst, a.cfg.Grid)
}

// drawBox outlines the twelve edges of the data box.
func (a *Animator) drawBox(dst *image.RGBA, proj Projection) {
	ext := Vec3{float64(a.src.Steps()), float64(a.src.Width()), float64(a.src.Height())}
	corner := func(i int) Vec3 {
		var v Vec3
		if i&1 != 0 {
			v.T = ext.T
		}
		if i&2 != 0 {
			v.X = ext.X
		}
		if i&4 != 0 {
			v.Y = ext.Y
		}
		return v
	}

	var s shape
	for i := range 8 {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				s.line(a.project(proj, corner(i)), a.project(proj, corner(i|bit)), boxStyle, dst.Bounds())
			}
		}
	}
	s.fill(dst, a.cfg.Box)
}

// drawFrame paints every visible pixel of frame as a cell of the time=0
// plane. Row r is drawn at height r, or height-1-r when the trajectory
// measures y upward.
func (a *Animator) drawFrame(dst *image.RGBA, proj Projection, frame ggtraj.Frame) {
	h := frame.Height()
	flip := a.traj.YUp()
	for r := range h {
		z := float64(r)
		if flip {
			z = float64(h - 1 - r)
		}
		for c := range frame.Width() {
			px := frame.RGBA(c, r)
			if px.A <= 0 {
				continue
			}
			x := float64(c)
			var s shape
			s.quad(
				a.project(proj, Vec3{0, x, z}),
				a.project(proj, Vec3{0, x + 1, z}),
				a.project(proj, Vec3{0, x + 1, z + 1}),
				a.project(proj, Vec3{0, x, z + 1}),
			)
			s.fill(dst, px.NRGBA())
		}
	}
}

// drawTrajectory strokes the positions before frame t, newest at time 0.
func (a *Animator) drawTrajectory(dst *image.RGBA, proj Projection, t int) {
	hist := a.traj.History(t)
	if len(hist) == 0 {
		return
	}
	pts := make([]stroke.Point, len(hist))
	for i, smp := range hist {
		pts[i] = a.project(proj, Vec3{float64(smp.T), float64(smp.X), float64(smp.Y)})
	}
	var s shape
	s.polyline(pts, trajectoryStyle(a.cfg.LineWidth), dst.Bounds())
	s.fill(dst, a.cfg.Trajectory)
}

// drawLabels names the three axes next to the box edges through the origin
// and captions the frame index.
func (a *Animator) drawLabels(dst *image.RGBA, proj Projection, t int) {
	ext := Vec3{float64(a.src.Steps()), float64(a.src.Width()), float64(a.src.Height())}
	cx, cy := float64(a.cfg.Width)/2, float64(a.cfg.Height)/2
	pad := a.cfg.FontSize * 1.5

	axes := []struct {
		text string
		mid  Vec3
	}{
		{LabelTime, Vec3{ext.T / 2, 0, 0}},
		{LabelPixelX, Vec3{0, ext.X / 2, 0}},
		{LabelPixelY, Vec3{0, 0, ext.Y / 2}},
	}
	for _, ax := range axes {
		p := a.project(proj, ax.mid)
		// Push the label away from the canvas centre so it clears the box.
		dx, dy := p.X-cx, p.Y-cy
		if l := math.Hypot(dx, dy); l > 1e-6 {
			p.X += dx / l * pad
			p.Y += dy / l * pad
		}
		a.label.drawCentered(dst, ax.text, p.X, p.Y, a.cfg.Label)
	}

	cam := a.cfg.Camera.At(t, a.src.Steps())
	caption := fmt.Sprintf("t = %d  elev %.0f°  azim %.0f°", t, cam.Elevation, cam.Azimuth)
	a.label.draw(dst, caption, a.cfg.FontSize/2, a.cfg.FontSize*1.5, a.cfg.Label)
}
