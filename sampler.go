package ggtraj

import (
	"fmt"
	"image"
	"math"
)

// Path is a closed-form motion law: the continuous position of the object
// at discrete time step t. Implementations must be pure functions of t.
type Path interface {
	Position(t int) (x, y float64)
}

// DefaultAngularStep is the angle advanced per time step by NewEllipse (t/4).
const DefaultAngularStep = 0.25

// Ellipse moves around (CX, CY) with radii RX, RY, advancing Step radians
// per time step:
//
//	x = CX + RX*cos(t*Step)
//	y = CY + RY*sin(t*Step)
type Ellipse struct {
	CX, CY float64
	RX, RY float64
	Step   float64
}

// NewEllipse returns the default path for a width×height buffer: centred on
// the buffer midpoint with radii of a quarter of each dimension. Centre and
// radii use integer division, so a 30×30 buffer gets centre 15 and radius 7,
// which keeps every sample inside [0, width) × [0, height).
func NewEllipse(width, height int) Ellipse {
	return Ellipse{
		CX:   float64(width / 2),
		CY:   float64(height / 2),
		RX:   float64(width / 4),
		RY:   float64(height / 4),
		Step: DefaultAngularStep,
	}
}

// Position implements Path.
func (e Ellipse) Position(t int) (x, y float64) {
	a := float64(t) * e.Step
	return e.CX + e.RX*math.Cos(a), e.CY + e.RY*math.Sin(a)
}

// Lissajous traces a Lissajous figure around (CX, CY):
//
//	x = CX + AX*sin(FreqX*t*Step)
//	y = CY + AY*sin(FreqY*t*Step + Phase)
type Lissajous struct {
	CX, CY       float64
	AX, AY       float64
	FreqX, FreqY float64
	Phase        float64
	Step         float64
}

// NewLissajous returns a 3:2 Lissajous figure sized like NewEllipse.
func NewLissajous(width, height int) Lissajous {
	return Lissajous{
		CX:    float64(width / 2),
		CY:    float64(height / 2),
		AX:    float64(width / 4),
		AY:    float64(height / 4),
		FreqX: 3,
		FreqY: 2,
		Phase: math.Pi / 2,
		Step:  DefaultAngularStep / 2,
	}
}

// Position implements Path.
func (l Lissajous) Position(t int) (x, y float64) {
	a := float64(t) * l.Step
	return l.CX + l.AX*math.Sin(l.FreqX*a), l.CY + l.AY*math.Sin(l.FreqY*a+l.Phase)
}

// SamplePath evaluates p at every step in [0, steps) and truncates each
// position toward zero to integer pixel coordinates. The result is indexed
// by time step.
func SamplePath(p Path, steps int) ([]image.Point, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil path", ErrInvalidParameter)
	}
	if err := checkPositive(param{"steps", steps}); err != nil {
		return nil, err
	}

	pts := make([]image.Point, steps)
	for t := range steps {
		x, y := p.Position(t)
		pts[t] = image.Pt(int(x), int(y))
	}
	return pts, nil
}
