package app

import (
	"fmt"
	"time"

	"github.com/bft-labs/frameblend/internal/domain"
	"github.com/bft-labs/frameblend/internal/window"
	"github.com/bft-labs/frameblend/pkg/log"
)

// DriverConfig contains configuration for a blending session.
type DriverConfig struct {
	// Cadence is the step interval between emitted averages.
	Cadence int

	// WindowSize is the number of most recent frames averaged on each tick.
	// Zero means "same as Cadence".
	WindowSize int

	// Workers bounds how many reductions BlendAll runs at once.
	// Zero means 1 (sequential).
	Workers int
}

// SetDefaults fills zero-valued optional fields.
func (c *DriverConfig) SetDefaults() {
	if c.WindowSize == 0 {
		c.WindowSize = c.Cadence
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
}

// Validate checks each parameter independently.
func (c DriverConfig) Validate() error {
	if c.Cadence < 1 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidCadence, c.Cadence)
	}
	if c.WindowSize < 1 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidCapacity, c.WindowSize)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidWorkers, c.Workers)
	}
	return nil
}

// Tick is one emitted average.
type Tick struct {
	// Index is the position of this tick in the output sequence.
	Index int
	// Step is the step index that triggered the tick.
	Step int
	// Frames is how many frames were averaged.
	Frames int
	// Frame is the averaged frame.
	Frame domain.Frame
}

// Driver cycles a batch through a bounded window and averages the window
// every Cadence steps.
type Driver struct {
	config DriverConfig
	logger log.Logger
}

// NewDriver validates the configuration and creates a driver.
func NewDriver(config DriverConfig, logger log.Logger) (*Driver, error) {
	config.SetDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Driver{config: config, logger: logger}, nil
}

// Config returns the effective configuration.
func (d *Driver) Config() DriverConfig {
	return d.config
}

// Stream starts a lazy blending session over totalSteps steps.
// No frame is read until the first call to Next.
func (d *Driver) Stream(batch domain.Batch, totalSteps int) (*Stream, error) {
	if totalSteps < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidSteps, totalSteps)
	}
	if batch.Empty() {
		return nil, domain.ErrEmptyInput
	}
	win, err := window.New[domain.Frame](d.config.WindowSize)
	if err != nil {
		return nil, err
	}
	d.logger.Debug("blend session started",
		log.Int("batch", batch.Len()),
		log.Stringer("shape", batch.Shape()),
		log.Int("steps", totalSteps),
		log.Int("cadence", d.config.Cadence),
		log.Int("window", d.config.WindowSize),
	)
	return &Stream{
		batch:   batch,
		win:     win,
		cadence: d.config.Cadence,
		total:   totalSteps,
		logger:  d.logger,
	}, nil
}

// Collect runs a session to completion and returns every tick in order.
func (d *Driver) Collect(batch domain.Batch, totalSteps int) ([]Tick, error) {
	s, err := d.Stream(batch, totalSteps)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	ticks := make([]Tick, 0, tickCapacity(totalSteps, d.config.Cadence))
	for s.Next() {
		ticks = append(ticks, s.Tick())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	d.logger.Info("blend session complete",
		log.Int("ticks", len(ticks)),
		log.Duration("elapsed", time.Since(start)),
	)
	return ticks, nil
}

// ExpectedTicks returns how many ticks a session of totalSteps emits:
// ceil(totalSteps / cadence), counting the tick at step 0.
func ExpectedTicks(totalSteps, cadence int) int {
	if totalSteps <= 0 || cadence < 1 {
		return 0
	}
	n := totalSteps / cadence
	if totalSteps%cadence != 0 {
		n++
	}
	return n
}

// maxPrealloc caps how many ticks are reserved up front; longer sessions
// grow the result slice as ticks arrive.
const maxPrealloc = 1024

func tickCapacity(totalSteps, cadence int) int {
	return min(ExpectedTicks(totalSteps, cadence), maxPrealloc)
}
