package frameblend

import (
	"context"
	"fmt"
	"time"

	"github.com/bft-labs/frameblend/internal/app"
	"github.com/bft-labs/frameblend/internal/domain"
	"github.com/bft-labs/frameblend/internal/reduce"
	"github.com/bft-labs/frameblend/pkg/log"
)

// Average returns the elementwise mean of every frame in the batch.
func Average(batch Batch) (Frame, error) {
	return reduce.AverageBatch(batch)
}

// AverageFrames returns the elementwise mean of the given frames.
func AverageFrames(frames ...Frame) (Frame, error) {
	return reduce.Average(frames)
}

// Blend starts a lazy blend of totalSteps steps over batch, emitting the
// mean of the last cadence frames every cadence steps.
func Blend(batch Batch, totalSteps, cadence int) (*Stream, error) {
	d, err := app.NewDriver(app.DriverConfig{Cadence: cadence}, nil)
	if err != nil {
		return nil, err
	}
	return d.Stream(batch, totalSteps)
}

// Engine runs averages and blends with a fixed set of options.
// An Engine holds no per-session state and is safe for concurrent use.
type Engine struct {
	opts   options
	logger log.Logger
}

// New creates an Engine. It fails when an option is out of range.
func New(opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.windowSize < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidCapacity, o.windowSize)
	}
	if o.workers < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidWorkers, o.workers)
	}
	return &Engine{opts: o, logger: o.logger}, nil
}

// Average returns the elementwise mean of every frame in the batch.
func (e *Engine) Average(batch Batch) (Frame, error) {
	start := time.Now()
	out, err := reduce.AverageBatch(batch)
	if err != nil {
		e.logger.Warn("average failed", log.Err(err))
		return Frame{}, err
	}
	e.logger.Debug("batch averaged",
		log.Int("frames", batch.Len()),
		log.Stringer("shape", batch.Shape()),
		log.Duration("elapsed", time.Since(start)),
	)
	return out, nil
}

// Blend starts a lazy blend using the engine's window size and logger.
func (e *Engine) Blend(batch Batch, totalSteps, cadence int) (*Stream, error) {
	d, err := e.driver(cadence)
	if err != nil {
		return nil, err
	}
	return d.Stream(batch, totalSteps)
}

// BlendAll runs a blend to completion, overlapping reductions across the
// engine's workers, and returns the ticks in order.
func (e *Engine) BlendAll(ctx context.Context, batch Batch, totalSteps, cadence int) ([]Tick, error) {
	d, err := e.driver(cadence)
	if err != nil {
		return nil, err
	}
	return d.BlendAll(ctx, batch, totalSteps)
}

func (e *Engine) driver(cadence int) (*app.Driver, error) {
	return app.NewDriver(app.DriverConfig{
		Cadence:    cadence,
		WindowSize: e.opts.windowSize,
		Workers:    e.opts.workers,
	}, e.logger)
}
