package frameblend

import (
	"github.com/bft-labs/frameblend/internal/app"
	"github.com/bft-labs/frameblend/internal/domain"
	"github.com/bft-labs/frameblend/pkg/log"
)

type (
	// Shape describes the dimensions of a frame.
	Shape = domain.Shape

	// Frame is a height x width x channel array of 8-bit samples in HWC order.
	Frame = domain.Frame

	// Batch is an ordered, non-empty sequence of same-shaped frames.
	Batch = domain.Batch

	// Tick is one averaged frame emitted by a blend.
	Tick = app.Tick

	// Stream is a lazy sequence of ticks.
	Stream = app.Stream

	// ShapeMismatchError reports which frame differed in shape.
	ShapeMismatchError = domain.ShapeMismatchError

	// Logger is the interface for structured logging.
	Logger = log.Logger
)

// Errors returned by the engine. Match them with errors.Is.
var (
	// ErrEmptyInput is returned when an average is requested over zero frames.
	ErrEmptyInput = domain.ErrEmptyInput

	// ErrInvalidCapacity is returned for a window size below one.
	ErrInvalidCapacity = domain.ErrInvalidCapacity

	// ErrInvalidCadence is returned for a cadence below one.
	ErrInvalidCadence = domain.ErrInvalidCadence

	// ErrShapeMismatch is returned when frames in one call differ in shape.
	ErrShapeMismatch = domain.ErrShapeMismatch

	// ErrMalformedFrame is returned when a pixel buffer does not match its shape.
	ErrMalformedFrame = domain.ErrMalformedFrame

	// ErrInvalidSteps is returned for a negative step count.
	ErrInvalidSteps = domain.ErrInvalidSteps

	// ErrInvalidWorkers is returned for a worker count below one.
	ErrInvalidWorkers = domain.ErrInvalidWorkers
)

// NewFrame allocates a zeroed frame.
func NewFrame(shape Shape) Frame {
	return domain.NewFrame(shape)
}

// FrameOf wraps a caller-owned HWC buffer without copying it.
func FrameOf(shape Shape, pix []uint8) (Frame, error) {
	return domain.FrameOf(shape, pix)
}

// NewBatch validates frames and groups them into a batch.
func NewBatch(frames ...Frame) (Batch, error) {
	return domain.NewBatch(frames...)
}

// BatchFromBuffer views a contiguous NHWC buffer of n frames as a batch.
func BatchFromBuffer(shape Shape, n int, pix []uint8) (Batch, error) {
	return domain.BatchFromBuffer(shape, n, pix)
}
