// Package synth builds deterministic frame batches for the benchmark
// harness and tests.
package synth

import (
	"math/rand"

	"github.com/bft-labs/frameblend/internal/domain"
)

// Batch returns n frames of the given shape backed by one contiguous NHWC
// buffer. The content depends only on seed.
func Batch(shape domain.Shape, n int, seed int64) (domain.Batch, error) {
	if n <= 0 {
		return domain.Batch{}, domain.ErrEmptyInput
	}
	if !shape.Valid() {
		return domain.BatchFromBuffer(shape, n, nil)
	}
	pix := make([]uint8, n*shape.Len())
	rng := rand.New(rand.NewSource(seed))
	_, _ = rng.Read(pix)
	return domain.BatchFromBuffer(shape, n, pix)
}

// Solid returns n frames where frame i has every sample set to values[i%len(values)].
func Solid(shape domain.Shape, n int, values ...uint8) (domain.Batch, error) {
	if n <= 0 || len(values) == 0 {
		return domain.Batch{}, domain.ErrEmptyInput
	}
	if !shape.Valid() {
		return domain.BatchFromBuffer(shape, n, nil)
	}
	size := shape.Len()
	pix := make([]uint8, n*size)
	for i := 0; i < n; i++ {
		v := values[i%len(values)]
		frame := pix[i*size : (i+1)*size]
		for j := range frame {
			frame[j] = v
		}
	}
	return domain.BatchFromBuffer(shape, n, pix)
}
