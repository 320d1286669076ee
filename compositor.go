package ggtraj

import (
	"fmt"
	"image"
)

// CompositeMode selects how sprite pixels combine with the frame.
type CompositeMode uint8

const (
	// CompositeReplace copies sprite values over the frame, alpha included.
	CompositeReplace CompositeMode = iota

	// CompositeOver blends the sprite over the frame with straight alpha.
	CompositeOver
)

// String returns a string representation of the composite mode.
func (m CompositeMode) String() string {
	switch m {
	case CompositeReplace:
		return "replace"
	case CompositeOver:
		return "over"
	default:
		return "unknown"
	}
}

// ParseCompositeMode parses "replace" or "over".
func ParseCompositeMode(s string) (CompositeMode, error) {
	switch s {
	case "replace":
		return CompositeReplace, nil
	case "over":
		return CompositeOver, nil
	default:
		return 0, fmt.Errorf("%w: composite mode %q", ErrInvalidParameter, s)
	}
}

// Clip describes where a sprite lands in a frame after clipping to the
// frame bounds.
type Clip struct {
	// Full is the unclipped sprite rectangle in frame coordinates.
	Full image.Rectangle

	// Dst is the part of Full inside the frame. Empty when the sprite lies
	// entirely outside.
	Dst image.Rectangle

	// Src is the sprite pixel copied to Dst.Min.
	Src image.Point
}

// Empty reports whether nothing of the sprite is visible.
func (c Clip) Empty() bool {
	return c.Dst.Empty()
}

// Clipped reports whether part of the sprite fell outside the frame.
func (c Clip) Clipped() bool {
	return c.Dst != c.Full
}

// ClipSprite intersects a spriteW×spriteH sprite whose upper-left corner is
// at (xmin, ymin) with a width×height frame. Leading rows and columns cut
// off at the top or left edge shift the source origin by (-xmin, -ymin).
func ClipSprite(xmin, ymin, spriteW, spriteH, width, height int) Clip {
	full := image.Rect(xmin, ymin, xmin+spriteW, ymin+spriteH)
	dst := full.Intersect(image.Rect(0, 0, width, height))
	if dst.Empty() {
		return Clip{Full: full}
	}
	return Clip{Full: full, Dst: dst, Src: dst.Min.Sub(full.Min)}
}

// Compositor owns a Video under construction and performs every write to
// it. Writes are bounds-checked: nothing outside the declared dimensions is
// ever touched.
//
// A Compositor is not safe for concurrent use. Call Finish to obtain the
// immutable Video; the Compositor cannot be written to afterwards.
type Compositor struct {
	video *Video
	mode  CompositeMode
}

// NewCompositor allocates a zeroed width×height×channels×steps buffer.
// Dimensions whose product does not fit in memory addressing are rejected
// with ErrInvalidParameter.
func NewCompositor(width, height, channels, steps int) (*Compositor, error) {
	dims := []param{
		{"width", width},
		{"height", height},
		{"channels", channels},
		{"steps", steps},
	}
	if err := checkPositive(dims...); err != nil {
		return nil, err
	}
	if err := checkVolume(dims...); err != nil {
		return nil, err
	}
	return &Compositor{video: newVideo(width, height, channels, steps)}, nil
}

// SetMode sets how Blit combines sprite pixels with the frame.
func (c *Compositor) SetMode(m CompositeMode) {
	c.mode = m
}

// buffer returns the video under construction.
func (c *Compositor) buffer() *Video {
	if c.video == nil {
		panic("ggtraj: Compositor used after Finish")
	}
	return c.video
}

// PlotDot lights pixel (x, y) of frame t by setting all of its channels to 1.
// Coordinates or a time index outside the buffer are not clamped: the write
// is skipped and PlotDot returns false.
func (c *Compositor) PlotDot(t, x, y int) bool {
	v := c.buffer()
	i := v.offset(x, y, 0, t)
	if i < 0 {
		Logger().Debug("dot outside frame, skipped", "t", t, "x", x, "y", y)
		return false
	}
	for ch := range v.channels {
		v.data[i+ch] = 1
	}
	return true
}

// Blit copies sprite s into frame t with its upper-left corner at
// (xmin, ymin), clipped to the frame. A sprite entirely outside the frame is
// skipped without error. The returned Clip reports what was written.
//
// The buffer must have four channels; otherwise nothing is written.
func (c *Compositor) Blit(t int, s *Sprite, xmin, ymin int) Clip {
	v := c.buffer()
	if s == nil || t < 0 || t >= v.steps {
		return Clip{}
	}
	if v.channels != spriteChannels {
		Logger().Warn("sprite blit needs an RGBA buffer", "channels", v.channels)
		return Clip{}
	}

	clip := ClipSprite(xmin, ymin, s.width, s.height, v.width, v.height)
	if clip.Empty() {
		Logger().Debug("sprite outside frame, skipped", "t", t, "xmin", xmin, "ymin", ymin)
		return clip
	}
	if clip.Clipped() {
		Logger().Debug("sprite clipped", "t", t, "dst", clip.Dst, "src", clip.Src)
	}

	w := clip.Dst.Dx()
	for dy := range clip.Dst.Dy() {
		src := s.row(clip.Src.Y+dy, clip.Src.X, clip.Src.X+w)
		start := v.offset(clip.Dst.Min.X, clip.Dst.Min.Y+dy, 0, t)
		dst := v.data[start : start+w*spriteChannels]
		if c.mode == CompositeOver {
			blendOver(dst, src)
		} else {
			copy(dst, src)
		}
	}
	return clip
}

// blendOver composites straight-alpha RGBA src over dst in place.
func blendOver(dst, src []float32) {
	for i := 0; i+3 < len(src); i += 4 {
		sa := src[i+3]
		if sa == 0 {
			continue
		}
		da := dst[i+3]
		outA := sa + da*(1-sa)
		for ch := range 3 {
			dst[i+ch] = clamp01((src[i+ch]*sa + dst[i+ch]*da*(1-sa)) / outA)
		}
		dst[i+3] = clamp01(outA)
	}
}

// Finish returns the completed Video and releases it from the Compositor.
func (c *Compositor) Finish() *Video {
	v := c.buffer()
	c.video = nil
	return v
}
