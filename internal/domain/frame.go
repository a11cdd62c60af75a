package domain

import "fmt"

// Shape describes the dimensions of a frame.
type Shape struct {
	Height   int
	Width    int
	Channels int
}

// Len returns the number of samples in a frame of this shape.
func (s Shape) Len() int {
	return s.Height * s.Width * s.Channels
}

// Valid reports whether every dimension is positive.
func (s Shape) Valid() bool {
	return s.Height > 0 && s.Width > 0 && s.Channels > 0
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%dx%d", s.Height, s.Width, s.Channels)
}

// Frame is a height x width x channel array of 8-bit samples.
// Pix is laid out row-major with interleaved channels (HWC), so the sample
// at (y, x, c) lives at Pix[(y*Width+x)*Channels+c].
type Frame struct {
	Shape Shape
	Pix   []uint8
}

// NewFrame allocates a zeroed frame of the given shape.
func NewFrame(shape Shape) Frame {
	return Frame{Shape: shape, Pix: make([]uint8, shape.Len())}
}

// FrameOf wraps a caller-owned pixel buffer without copying it.
func FrameOf(shape Shape, pix []uint8) (Frame, error) {
	f := Frame{Shape: shape, Pix: pix}
	if err := f.Validate(); err != nil {
		return Frame{}, err
	}
	return f, nil
}

// Validate checks that the shape is usable and the buffer length matches it.
func (f Frame) Validate() error {
	if !f.Shape.Valid() {
		return fmt.Errorf("%w: shape %s", ErrMalformedFrame, f.Shape)
	}
	if len(f.Pix) != f.Shape.Len() {
		return fmt.Errorf("%w: %d samples for shape %s (want %d)",
			ErrMalformedFrame, len(f.Pix), f.Shape, f.Shape.Len())
	}
	return nil
}

// Equal reports whether two frames have the same shape and samples.
func (f Frame) Equal(other Frame) bool {
	if f.Shape != other.Shape || len(f.Pix) != len(other.Pix) {
		return false
	}
	for i := range f.Pix {
		if f.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}
