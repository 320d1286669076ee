package ggtraj

import (
	"errors"
	"image"
	"math"
	"testing"
)

func TestNewEllipseIntegerGeometry(t *testing.T) {
	tests := []struct {
		width, height  int
		cx, cy, rx, ry float64
	}{
		{30, 30, 15, 15, 7, 7},
		{50, 50, 25, 25, 12, 12},
		{31, 9, 15, 4, 7, 2},
		{1, 1, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		e := NewEllipse(tt.width, tt.height)
		if e.CX != tt.cx || e.CY != tt.cy || e.RX != tt.rx || e.RY != tt.ry {
			t.Errorf("NewEllipse(%d, %d) = %+v, want centre (%v,%v) radii (%v,%v)",
				tt.width, tt.height, e, tt.cx, tt.cy, tt.rx, tt.ry)
		}
		if e.Step != DefaultAngularStep {
			t.Errorf("NewEllipse(%d, %d).Step = %v, want %v", tt.width, tt.height, e.Step, DefaultAngularStep)
		}
	}
}

func TestSamplePathFirstPoint(t *testing.T) {
	pts, err := SamplePath(NewEllipse(30, 30), 100)
	if err != nil {
		t.Fatalf("SamplePath: %v", err)
	}
	if pts[0] != image.Pt(22, 15) {
		t.Errorf("pts[0] = %v, want (22,15)", pts[0])
	}
}

func TestSamplePathMatchesClosedForm(t *testing.T) {
	const w, h, steps = 30, 30, 100
	pts, err := SamplePath(NewEllipse(w, h), steps)
	if err != nil {
		t.Fatalf("SamplePath: %v", err)
	}
	if len(pts) != steps {
		t.Fatalf("len = %d, want %d", len(pts), steps)
	}
	for i, p := range pts {
		x := 15 + 7*math.Cos(float64(i)/4)
		y := 15 + 7*math.Sin(float64(i)/4)
		if p.X != int(x) || p.Y != int(y) {
			t.Errorf("t=%d: got %v, want (%d,%d)", i, p, int(x), int(y))
		}
	}
}

func TestSamplePathStaysInBounds(t *testing.T) {
	for _, size := range [][2]int{{30, 30}, {50, 50}, {7, 13}, {1, 1}, {640, 480}} {
		w, h := size[0], size[1]
		for _, p := range []Path{NewEllipse(w, h), NewLissajous(w, h)} {
			pts, err := SamplePath(p, 500)
			if err != nil {
				t.Fatalf("SamplePath: %v", err)
			}
			bounds := image.Rect(0, 0, w, h)
			for i, pt := range pts {
				if !pt.In(bounds) {
					t.Errorf("%T %dx%d t=%d: %v outside %v", p, w, h, i, pt, bounds)
				}
			}
		}
	}
}

func TestSamplePathTruncatesTowardZero(t *testing.T) {
	// Centre at the origin with radius 3 crosses into negative coordinates.
	e := Ellipse{RX: 3, RY: 3, Step: math.Pi / 2}
	pts, err := SamplePath(e, 4)
	if err != nil {
		t.Fatalf("SamplePath: %v", err)
	}
	want := []image.Point{{3, 0}, {0, 3}, {-3, 0}, {0, -3}}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("t=%d: got %v, want %v", i, pts[i], want[i])
		}
	}

	// -0.5 truncates to 0, not -1.
	pts, _ = SamplePath(Ellipse{CX: -0.5, CY: 1.9}, 1)
	if pts[0] != image.Pt(0, 1) {
		t.Errorf("truncation: got %v, want (0,1)", pts[0])
	}
}

func TestSamplePathInvalid(t *testing.T) {
	tests := []struct {
		name  string
		path  Path
		steps int
	}{
		{"zero steps", NewEllipse(30, 30), 0},
		{"negative steps", NewEllipse(30, 30), -1},
		{"nil path", nil, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SamplePath(tt.path, tt.steps); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("SamplePath() error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestLissajousPosition(t *testing.T) {
	l := NewLissajous(40, 40)
	x, y := l.Position(0)
	// sin(0) = 0 for x, sin(pi/2) = 1 for y.
	if x != 20 || math.Abs(y-30) > 1e-9 {
		t.Errorf("Position(0) = (%v, %v), want (20, 30)", x, y)
	}
}
