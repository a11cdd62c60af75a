package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in the frameblend engine.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrEmptyInput is returned when an average is requested over zero frames.
	ErrEmptyInput = errors.New("frameblend: empty input")

	// ErrInvalidCapacity is returned when a window is created with capacity < 1.
	ErrInvalidCapacity = errors.New("frameblend: invalid window capacity")

	// ErrInvalidCadence is returned when a blend is requested with cadence < 1.
	ErrInvalidCadence = errors.New("frameblend: invalid cadence")

	// ErrShapeMismatch is returned when frames in one call differ in shape.
	ErrShapeMismatch = errors.New("frameblend: shape mismatch")

	// ErrMalformedFrame is returned when a pixel buffer does not match its shape.
	ErrMalformedFrame = errors.New("frameblend: malformed frame")

	// ErrInvalidSteps is returned when a blend is requested with negative steps.
	ErrInvalidSteps = errors.New("frameblend: invalid step count")

	// ErrInvalidWorkers is returned when a parallel blend is configured with
	// fewer than one worker.
	ErrInvalidWorkers = errors.New("frameblend: invalid worker count")
)

// ShapeMismatchError reports the first frame whose shape differs from the
// reference frame of the call. It unwraps to ErrShapeMismatch.
type ShapeMismatchError struct {
	Index int
	Want  Shape
	Got   Shape
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: frame %d is %s, want %s", ErrShapeMismatch, e.Index, e.Got, e.Want)
}

func (e *ShapeMismatchError) Unwrap() error {
	return ErrShapeMismatch
}
