package ggtraj

import (
	"fmt"
	"image"
	"io"

	ggimage "github.com/gogpu/ggtraj/internal/image"
)

// spriteChannels is the channel count of sprite pixels (RGBA).
const spriteChannels = 4

// Sprite is a small read-only RGBA image composited onto every frame of a
// sprite dataset. Values are normalized to [0, 1] with straight alpha.
type Sprite struct {
	width  int
	height int
	pix    []float32
}

// NewSprite converts img to a sprite. It returns ErrInvalidParameter for an
// empty image.
func NewSprite(img image.Image) (*Sprite, error) {
	if img == nil {
		return nil, ErrNilSprite
	}
	b := img.Bounds()
	if err := checkPositive(param{"sprite width", b.Dx()}, param{"sprite height", b.Dy()}); err != nil {
		return nil, err
	}

	n := ggimage.ToNRGBA(img)
	s := &Sprite{
		width:  b.Dx(),
		height: b.Dy(),
		pix:    make([]float32, b.Dx()*b.Dy()*spriteChannels),
	}
	for y := range s.height {
		row := n.Pix[y*n.Stride : y*n.Stride+s.width*4]
		for i, v := range row {
			s.pix[y*s.width*spriteChannels+i] = float32(v) / 255
		}
	}
	return s, nil
}

// SpriteOption configures sprite loading.
type SpriteOption func(*spriteOptions)

type spriteOptions struct {
	width, height int
}

// WithSpriteSize resamples the decoded image to width×height.
func WithSpriteSize(width, height int) SpriteOption {
	return func(o *spriteOptions) {
		o.width = width
		o.height = height
	}
}

// LoadSprite decodes a PNG, JPEG, GIF, BMP or WebP file into a sprite.
func LoadSprite(path string, opts ...SpriteOption) (*Sprite, error) {
	img, format, err := ggimage.Load(path)
	if err != nil {
		return nil, fmt.Errorf("ggtraj: load sprite: %w", err)
	}
	Logger().Debug("sprite decoded", "path", path, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return spriteFrom(img, opts)
}

// DecodeSprite decodes a sprite from r.
func DecodeSprite(r io.Reader, opts ...SpriteOption) (*Sprite, error) {
	img, _, err := ggimage.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("ggtraj: decode sprite: %w", err)
	}
	return spriteFrom(img, opts)
}

func spriteFrom(img *image.NRGBA, opts []SpriteOption) (*Sprite, error) {
	var o spriteOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.width != 0 || o.height != 0 {
		scaled, err := ggimage.Scale(img, o.width, o.height)
		if err != nil {
			return nil, fmt.Errorf("%w: sprite size: %w", ErrInvalidParameter, err)
		}
		img = scaled
	}
	return NewSprite(img)
}

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int { return s.width }

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int { return s.height }

// At returns channel c (0=R, 1=G, 2=B, 3=A) of pixel (x, y).
// Out-of-range coordinates return 0.
func (s *Sprite) At(x, y, c int) float32 {
	if x < 0 || x >= s.width || y < 0 || y >= s.height || c < 0 || c >= spriteChannels {
		return 0
	}
	return s.pix[(y*s.width+x)*spriteChannels+c]
}

// row returns the pixel values of columns [x0, x1) in row y.
func (s *Sprite) row(y, x0, x1 int) []float32 {
	start := (y*s.width + x0) * spriteChannels
	return s.pix[start : start+(x1-x0)*spriteChannels]
}
