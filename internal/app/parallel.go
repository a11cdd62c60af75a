package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/frameblend/internal/domain"
	"github.com/bft-labs/frameblend/internal/reduce"
	"github.com/bft-labs/frameblend/pkg/log"
)

// BlendAll runs a whole session and returns every tick in order.
//
// With one worker it behaves like Collect. With more, the window is still
// advanced by this goroutine alone, and each tick's snapshot is reduced on
// a bounded pool of goroutines. Reductions only ever see their own snapshot.
func (d *Driver) BlendAll(ctx context.Context, batch domain.Batch, totalSteps int) ([]Tick, error) {
	if d.config.Workers == 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return d.Collect(batch, totalSteps)
	}

	s, err := d.Stream(batch, totalSteps)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	// Each reduction writes through its own slot, so the slice of slots can
	// grow while earlier reductions are still running.
	slots := make([]*Tick, 0, tickCapacity(totalSteps, d.config.Cadence))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.config.Workers)

	for idx := 0; ; idx++ {
		if err := gctx.Err(); err != nil {
			break
		}
		step, frames, ok := s.advance()
		if !ok {
			break
		}
		slot := new(Tick)
		slots = append(slots, slot)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			avg, err := reduce.Average(frames)
			if err != nil {
				return fmt.Errorf("tick %d (step %d): %w", idx, step, err)
			}
			*slot = Tick{Index: idx, Step: step, Frames: len(frames), Frame: avg}
			d.logger.Debug("window averaged",
				log.Int("tick", idx),
				log.Int("step", step),
				log.Int("frames", len(frames)),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Cancellation observed by the producer loop after the last Go call.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ticks := make([]Tick, len(slots))
	for i, slot := range slots {
		ticks[i] = *slot
	}
	d.logger.Info("blend session complete",
		log.Int("ticks", len(ticks)),
		log.Int("workers", d.config.Workers),
		log.Duration("elapsed", time.Since(start)),
	)
	return ticks, nil
}
