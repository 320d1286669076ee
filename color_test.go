package ggtraj

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestRGBANRGBA(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want color.NRGBA
	}{
		{"opaque black", Black, color.NRGBA{A: 255}},
		{"opaque white", White, color.NRGBA{255, 255, 255, 255}},
		{"opaque red", Red, color.NRGBA{R: 255, A: 255}},
		{"transparent", Transparent, color.NRGBA{}},
		{"out of range clamps", RGBA{R: 2, G: -1, B: 0.5, A: 1}, color.NRGBA{R: 255, G: 0, B: 127, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.NRGBA(); got != tt.want {
				t.Errorf("NRGBA() = %v, want %v", got, tt.want)
			}
			if got := tt.c.Color(); got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 0, B: 51, A: 102})
	want := RGBA{R: 1, G: 0, B: 0.2, A: 0.4}
	if math.Abs(got.R-want.R) > 1e-9 || got.G != 0 ||
		math.Abs(got.B-want.B) > 1e-2 || math.Abs(got.A-want.A) > 1e-9 {
		t.Errorf("FromColor() = %+v, want %+v", got, want)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#f00", color.NRGBA{R: 255, A: 255}},
		{"0f08", color.NRGBA{G: 255, A: 136}},
		{"#3366cc", color.NRGBA{R: 0x33, G: 0x66, B: 0xcc, A: 255}},
		{"FF000080", color.NRGBA{R: 255, A: 128}},
		{"nope", color.NRGBA{A: 255}},
		{"#12345g", color.NRGBA{A: 255}},
		{"ff00zz80", color.NRGBA{A: 255}},
		{"zzz", color.NRGBA{A: 255}},
		{"", color.NRGBA{A: 255}},
	}
	for _, tt := range tests {
		if got := Hex(tt.in).NRGBA(); got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	valid := []string{"#abc", "ABCD", "#0a0B0c", "00000000"}
	for _, in := range valid {
		if _, err := ParseHex(in); err != nil {
			t.Errorf("ParseHex(%q) error = %v, want nil", in, err)
		}
	}

	invalid := []string{"", "#", "nope", "#12345g", "ff00zz80", "#1234567", "0x123456"}
	for _, in := range invalid {
		c, err := ParseHex(in)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidParameter", in, err)
		}
		if c != Black {
			t.Errorf("ParseHex(%q) = %+v, want Black", in, c)
		}
	}
}
