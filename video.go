package ggtraj

import (
	"fmt"
	"image"
)

// Video is a time-indexed stack of frames: height × width × channels × steps
// normalized intensities in [0, 1].
//
// Data is stored time-major ([t][y][x][c]) so each frame is contiguous.
// A Video has no exported mutators; once returned by a Compositor it can be
// read concurrently and in any order.
type Video struct {
	width    int
	height   int
	channels int
	steps    int
	data     []float32
}

func newVideo(width, height, channels, steps int) *Video {
	return &Video{
		width:    width,
		height:   height,
		channels: channels,
		steps:    steps,
		data:     make([]float32, width*height*channels*steps),
	}
}

// Width returns the frame width in pixels.
func (v *Video) Width() int { return v.width }

// Height returns the frame height in pixels.
func (v *Video) Height() int { return v.height }

// Channels returns the number of values per pixel (1 for gray, 4 for RGBA).
func (v *Video) Channels() int { return v.channels }

// Steps returns the number of frames.
func (v *Video) Steps() int { return v.steps }

// frameSize is the number of values in one frame.
func (v *Video) frameSize() int {
	return v.width * v.height * v.channels
}

// offset returns the index of (x, y, c, t) in data, or -1 if out of range.
func (v *Video) offset(x, y, c, t int) int {
	if x < 0 || x >= v.width || y < 0 || y >= v.height ||
		c < 0 || c >= v.channels || t < 0 || t >= v.steps {
		return -1
	}
	return t*v.frameSize() + (y*v.width+x)*v.channels + c
}

// At returns the value of channel c at pixel (x, y) in frame t.
// Out-of-range coordinates return 0.
func (v *Video) At(x, y, c, t int) float32 {
	i := v.offset(x, y, c, t)
	if i < 0 {
		return 0
	}
	return v.data[i]
}

// Frame returns the read-only time slice t.
func (v *Video) Frame(t int) (Frame, error) {
	if t < 0 || t >= v.steps {
		return Frame{}, fmt.Errorf("%w: %d not in [0, %d)", ErrFrameIndex, t, v.steps)
	}
	n := v.frameSize()
	return Frame{
		index:    t,
		width:    v.width,
		height:   v.height,
		channels: v.channels,
		pix:      v.data[t*n : (t+1)*n : (t+1)*n],
	}, nil
}

// Frame is one time slice of a Video. It shares storage with the Video and
// exposes no way to modify it.
type Frame struct {
	index    int
	width    int
	height   int
	channels int
	pix      []float32
}

// Index returns the frame's time index.
func (f Frame) Index() int { return f.index }

// Width returns the width of the frame.
func (f Frame) Width() int { return f.width }

// Height returns the height of the frame.
func (f Frame) Height() int { return f.height }

// Channels returns the number of values per pixel.
func (f Frame) Channels() int { return f.channels }

// At returns channel c of pixel (x, y). Out-of-range coordinates return 0.
func (f Frame) At(x, y, c int) float32 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height || c < 0 || c >= f.channels {
		return 0
	}
	return f.pix[(y*f.width+x)*f.channels+c]
}

// RGBA returns pixel (x, y) as a color. Single-channel frames are white with
// alpha equal to the intensity, so unlit pixels are fully transparent.
func (f Frame) RGBA(x, y int) RGBA {
	if f.channels < 4 {
		v := float64(f.At(x, y, 0))
		return RGBA{R: v, G: v, B: v, A: v}
	}
	return RGBA{
		R: float64(f.At(x, y, 0)),
		G: float64(f.At(x, y, 1)),
		B: float64(f.At(x, y, 2)),
		A: float64(f.At(x, y, 3)),
	}
}

// Image converts the frame to an 8-bit image using RGBA for each pixel.
func (f Frame) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.width, f.height))
	for y := range f.height {
		for x := range f.width {
			img.SetNRGBA(x, y, f.RGBA(x, y).NRGBA())
		}
	}
	return img
}

// Bounds returns the frame rectangle, anchored at the origin.
func (f Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}
