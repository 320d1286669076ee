package ggtraj

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by dataset construction and access.
var (
	// ErrInvalidParameter is returned when a dimension, step count, path or
	// sprite argument cannot produce a dataset. Nothing is written when it
	// is returned.
	ErrInvalidParameter = errors.New("ggtraj: invalid parameter")

	// ErrNilSprite is returned by GenerateSprite when no sprite is given.
	ErrNilSprite = fmt.Errorf("%w: nil sprite", ErrInvalidParameter)

	// ErrFrameIndex is returned when a time slice outside [0, steps) is requested.
	ErrFrameIndex = errors.New("ggtraj: frame index out of range")
)

// param is a named integer argument checked by checkPositive.
type param struct {
	name  string
	value int
}

// checkPositive returns ErrInvalidParameter naming the first parameter
// that is not strictly positive.
func checkPositive(params ...param) error {
	for _, p := range params {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidParameter, p.name, p.value)
		}
	}
	return nil
}

// maxElements bounds a video buffer so its size in bytes fits in an int.
const maxElements = math.MaxInt / 4

// checkVolume returns ErrInvalidParameter when the product of the positive
// dimensions dims exceeds maxElements.
func checkVolume(dims ...param) error {
	n := 1
	for _, d := range dims {
		if n > maxElements/d.value {
			return fmt.Errorf("%w: %s overflows the buffer size", ErrInvalidParameter, d.name)
		}
		n *= d.value
	}
	return nil
}
