// Package reduce computes elementwise means over same-shaped frames.
package reduce

import (
	"math"

	"github.com/bft-labs/frameblend/internal/domain"
)

// maxNarrowFrames is the largest frame count whose per-sample sum is
// guaranteed to fit a uint32 accumulator.
const maxNarrowFrames = math.MaxUint32 / math.MaxUint8

// Average returns the elementwise mean of frames.
//
// The output shape is taken from frames[0]; every other frame must match it.
// Sums are accumulated in a wider integer type and divided by len(frames),
// truncating toward zero. Inputs are never modified and the result is a
// newly allocated frame.
func Average(frames []domain.Frame) (domain.Frame, error) {
	if err := domain.CheckShapes(frames); err != nil {
		return domain.Frame{}, err
	}

	out := domain.NewFrame(frames[0].Shape)
	if len(frames) <= maxNarrowFrames {
		mean(out.Pix, frames, make([]uint32, len(out.Pix)))
	} else {
		mean(out.Pix, frames, make([]uint64, len(out.Pix)))
	}
	return out, nil
}

// AverageBatch returns the elementwise mean of every frame in the batch.
func AverageBatch(batch domain.Batch) (domain.Frame, error) {
	if batch.Empty() {
		return domain.Frame{}, domain.ErrEmptyInput
	}
	return Average(batch.Frames())
}

func mean[T uint32 | uint64](dst []uint8, frames []domain.Frame, acc []T) {
	for _, f := range frames {
		for i, v := range f.Pix {
			acc[i] += T(v)
		}
	}
	n := T(len(frames))
	for i, s := range acc {
		dst[i] = uint8(s / n)
	}
}
