// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/setanarut/apng"

	"github.com/gogpu/ggtraj"
)

// ErrNoFrames is returned when an export is given no frames.
var ErrNoFrames = errors.New("render: no frames to export")

// FrameDelay is the display time of one animation frame in hundredths of
// a second. APNG and GIF both use it, so the two files play at the same rate.
const FrameDelay = 6

// WriteAPNG saves frames as an animated PNG at path.
func WriteAPNG(path string, frames []image.Image) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	// A previous file must not pass the existence check after Save.
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("render: write apng: %w", err)
	}
	apng.Save(path, frames, FrameDelay)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("render: write apng: %w", err)
	}
	ggtraj.Logger().Info("animation saved", "format", "apng", "path", path, "frames", len(frames))
	return nil
}

// EncodeGIF writes frames as a looping animated GIF. Frames are quantized
// to the Plan 9 palette with Floyd-Steinberg dithering.
func EncodeGIF(w io.Writer, frames []image.Image) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	anim := &gif.GIF{
		Image: make([]*image.Paletted, len(frames)),
		Delay: make([]int, len(frames)),
	}
	for i, f := range frames {
		b := f.Bounds()
		p := image.NewPaletted(b, palette.Plan9)
		draw.FloydSteinberg.Draw(p, b, f, b.Min)
		anim.Image[i] = p
		anim.Delay[i] = FrameDelay
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("render: encode gif: %w", err)
	}
	return nil
}

// WriteGIF saves frames as an animated GIF at path.
func WriteGIF(path string, frames []image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: write gif: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: write gif: %w", cerr)
		}
	}()
	if err := EncodeGIF(f, frames); err != nil {
		return err
	}
	ggtraj.Logger().Info("animation saved", "format", "gif", "path", path, "frames", len(frames))
	return nil
}

// WritePNGSequence saves each frame as dir/<prefix><index>.png, with the
// index zero-padded to the width of the largest index. The directory is
// created if needed. It returns the written paths in frame order.
func WritePNGSequence(dir, prefix string, frames []image.Image) ([]string, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: create %s: %w", dir, err)
	}
	digits := len(fmt.Sprint(len(frames) - 1))
	paths := make([]string, 0, len(frames))
	for i, img := range frames {
		p := filepath.Join(dir, fmt.Sprintf("%s%0*d.png", prefix, digits, i))
		if err := writePNG(p, img); err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	ggtraj.Logger().Info("frames saved", "format", "png", "dir", dir, "frames", len(frames))
	return paths, nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: write png: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: write png: %w", cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	return nil
}

// EncodePNGStream writes frames back to back as PNG images, for piping into
// tools that read a concatenated image stream.
func EncodePNGStream(w io.Writer, frames []image.Image) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	for i, img := range frames {
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("render: encode frame %d: %w", i, err)
		}
	}
	return nil
}

// Export writes frames to path, choosing the format from it:
// ".png" gives an animated PNG, ".gif" an animated GIF, "-" a PNG stream on
// stdout, and anything else is a directory of numbered PNG frames.
func Export(path string, frames []image.Image, stdout io.Writer) error {
	switch {
	case path == "-":
		return EncodePNGStream(stdout, frames)
	case strings.EqualFold(filepath.Ext(path), ".png"):
		return WriteAPNG(path, frames)
	case strings.EqualFold(filepath.Ext(path), ".gif"):
		return WriteGIF(path, frames)
	default:
		_, err := WritePNGSequence(path, "frame_", frames)
		return err
	}
}
