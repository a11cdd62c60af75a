// Package frameblend averages 8-bit video frames, either as a one-shot batch
// mean or as a temporal blend over a bounded window of recent frames.
//
// # Basic Usage
//
// Wrap caller-owned pixel buffers in a [Batch] and average them:
//
//	batch, err := frameblend.BatchFromBuffer(
//	    frameblend.Shape{Height: 1080, Width: 1920, Channels: 3}, 10, pix)
//	if err != nil {
//	    return err
//	}
//	mean, err := frameblend.Average(batch)
//
// # Blending
//
// [Blend] cycles through the batch for a number of steps, pushing each frame
// into a window whose capacity equals the cadence, and emits the window mean
// at every step that is a multiple of the cadence (step 0 included):
//
//	s, err := frameblend.Blend(batch, 1000, 10)
//	if err != nil {
//	    return err
//	}
//	for s.Next() {
//	    t := s.Tick()
//	    // t.Frame is the mean of t.Frames frames
//	}
//	if err := s.Err(); err != nil {
//	    return err
//	}
//
// # Engine
//
// An [Engine] carries optional settings: a [Logger], a window size that
// differs from the cadence, and a worker count for [Engine.BlendAll]:
//
//	e, err := frameblend.New(
//	    frameblend.WithLogger(logger),
//	    frameblend.WithWindowSize(5),
//	    frameblend.WithWorkers(4),
//	)
//
// # Ownership
//
// Input buffers are never written. [Average] and [Engine.BlendAll] do not
// retain them after returning. A [Stream] from [Blend] keeps views into the
// batch until it is drained, so the caller must not modify the batch while
// the stream is live. Every averaged frame is a newly allocated buffer owned
// by the caller.
//
// # Errors
//
// All failures are reported eagerly and can be matched with errors.Is:
// [ErrEmptyInput], [ErrInvalidCapacity], [ErrInvalidCadence],
// [ErrShapeMismatch], [ErrMalformedFrame], [ErrInvalidSteps] and
// [ErrInvalidWorkers]. Shape mismatches carry details in [ShapeMismatchError].
package frameblend
