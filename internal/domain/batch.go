package domain

import "fmt"

// Batch is an ordered, non-empty sequence of frames sharing one shape.
// A Batch only holds frame views; it never owns a copy of the pixels.
type Batch struct {
	frames []Frame
	shape  Shape
}

// NewBatch validates and wraps the given frames.
// It fails with ErrEmptyInput for zero frames and with *ShapeMismatchError
// when a frame differs in shape from the first one.
func NewBatch(frames ...Frame) (Batch, error) {
	if len(frames) == 0 {
		return Batch{}, ErrEmptyInput
	}
	if err := CheckShapes(frames); err != nil {
		return Batch{}, err
	}
	own := make([]Frame, len(frames))
	copy(own, frames)
	return Batch{frames: own, shape: frames[0].Shape}, nil
}

// BatchFromBuffer slices a contiguous NHWC buffer holding n frames of the
// given shape into a batch of frame views. The buffer is not copied.
func BatchFromBuffer(shape Shape, n int, pix []uint8) (Batch, error) {
	if n <= 0 {
		return Batch{}, ErrEmptyInput
	}
	if !shape.Valid() {
		return Batch{}, fmt.Errorf("%w: shape %s", ErrMalformedFrame, shape)
	}
	size := shape.Len()
	if len(pix) != n*size {
		return Batch{}, fmt.Errorf("%w: buffer holds %d samples, want %d for %d frames of %s",
			ErrMalformedFrame, len(pix), n*size, n, shape)
	}
	frames := make([]Frame, n)
	for i := range frames {
		lo := i * size
		frames[i] = Frame{Shape: shape, Pix: pix[lo : lo+size : lo+size]}
	}
	return Batch{frames: frames, shape: shape}, nil
}

// CheckShapes verifies every frame is well formed and shaped like frames[0].
// An empty slice is reported as ErrEmptyInput.
func CheckShapes(frames []Frame) error {
	if len(frames) == 0 {
		return ErrEmptyInput
	}
	want := frames[0].Shape
	for i, f := range frames {
		if f.Shape != want {
			return &ShapeMismatchError{Index: i, Want: want, Got: f.Shape}
		}
		if err := f.Validate(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

// Len returns the number of frames in the batch.
func (b Batch) Len() int {
	return len(b.frames)
}

// Shape returns the shared shape of every frame in the batch.
func (b Batch) Shape() Shape {
	return b.shape
}

// Frame returns the frame at index i.
func (b Batch) Frame(i int) Frame {
	return b.frames[i]
}

// Cycle returns the frame for step i, wrapping around so a short batch can
// feed an arbitrarily long run.
func (b Batch) Cycle(i int) Frame {
	return b.frames[i%len(b.frames)]
}

// Frames returns the batch's frame views in order.
// The returned slice is a copy; the pixel buffers are shared.
func (b Batch) Frames() []Frame {
	out := make([]Frame, len(b.frames))
	copy(out, b.frames)
	return out
}

// Empty returns true if the batch has no frames (only the zero Batch).
func (b Batch) Empty() bool {
	return len(b.frames) == 0
}
