package ggtraj

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestVideoDimensions(t *testing.T) {
	comp, err := NewCompositor(5, 4, 4, 3)
	if err != nil {
		t.Fatalf("NewCompositor: %v", err)
	}
	v := comp.Finish()
	if v.Width() != 5 || v.Height() != 4 || v.Channels() != 4 || v.Steps() != 3 {
		t.Errorf("dimensions = %dx%dx%dx%d, want 5x4x4x3", v.Width(), v.Height(), v.Channels(), v.Steps())
	}
}

func TestVideoFrameIndexOutOfRange(t *testing.T) {
	ds, err := GenerateDot(8, 8, 4)
	if err != nil {
		t.Fatalf("GenerateDot: %v", err)
	}
	for _, i := range []int{-1, 4, 100} {
		if _, err := ds.Video.Frame(i); !errors.Is(err, ErrFrameIndex) {
			t.Errorf("Frame(%d) error = %v, want ErrFrameIndex", i, err)
		}
	}
}

func TestVideoFrameIsolatesTimeSlices(t *testing.T) {
	comp, _ := NewCompositor(3, 3, 1, 2)
	comp.PlotDot(0, 1, 1)
	comp.PlotDot(1, 2, 0)
	v := comp.Finish()

	f0, _ := v.Frame(0)
	f1, _ := v.Frame(1)
	if f0.Index() != 0 || f1.Index() != 1 {
		t.Errorf("indices = %d, %d, want 0, 1", f0.Index(), f1.Index())
	}
	if f0.At(1, 1, 0) != 1 || f0.At(2, 0, 0) != 0 {
		t.Error("frame 0 should only contain (1,1)")
	}
	if f1.At(2, 0, 0) != 1 || f1.At(1, 1, 0) != 0 {
		t.Error("frame 1 should only contain (2,0)")
	}
	if v.At(2, 0, 0, 1) != 1 {
		t.Error("Video.At should agree with Frame.At")
	}
	// Out-of-range reads return zero rather than panicking.
	if f0.At(-1, 0, 0) != 0 || f0.At(0, 3, 0) != 0 || f0.At(0, 0, 1) != 0 || v.At(0, 0, 0, 2) != 0 {
		t.Error("out-of-range reads should return 0")
	}
}

func TestVideoFrameRereadable(t *testing.T) {
	ds, err := GenerateDot(30, 30, 10)
	if err != nil {
		t.Fatalf("GenerateDot: %v", err)
	}
	// Read frames in a replayed order; every read must be identical.
	order := []int{9, 0, 5, 0, 9, 3}
	first := map[int]*image.NRGBA{}
	for _, i := range order {
		f, err := ds.Video.Frame(i)
		if err != nil {
			t.Fatalf("Frame(%d): %v", i, err)
		}
		img := f.Image()
		if prev, ok := first[i]; ok {
			for j := range img.Pix {
				if img.Pix[j] != prev.Pix[j] {
					t.Fatalf("frame %d changed between reads", i)
				}
			}
		}
		first[i] = img
	}
}

func TestFrameImageGray(t *testing.T) {
	ds, err := GenerateDot(30, 30, 1)
	if err != nil {
		t.Fatalf("GenerateDot: %v", err)
	}
	f, _ := ds.Video.Frame(0)
	img := f.Image()
	if img.Bounds() != f.Bounds() {
		t.Errorf("Image().Bounds() = %v, want %v", img.Bounds(), f.Bounds())
	}
	if got := img.NRGBAAt(22, 15); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("lit pixel = %v, want opaque white", got)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{}) {
		t.Errorf("unlit pixel = %v, want transparent", got)
	}
}

func TestFrameImageRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 255, A: 255})
	s, err := NewSprite(src)
	if err != nil {
		t.Fatalf("NewSprite: %v", err)
	}
	comp, _ := NewCompositor(2, 2, 4, 1)
	comp.Blit(0, s, 1, 0)
	f, _ := comp.Finish().Frame(0)

	if got := f.RGBA(1, 0); got != (RGBA{R: 1, G: 0, B: 1, A: 1}) {
		t.Errorf("RGBA(1,0) = %+v, want magenta", got)
	}
	if got := f.Image().NRGBAAt(1, 0); got != (color.NRGBA{R: 255, B: 255, A: 255}) {
		t.Errorf("Image() pixel = %v, want magenta", got)
	}
}
