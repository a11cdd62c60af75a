// Package bench times the engine's averaging and blending paths over a
// synthetic batch.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/bft-labs/frameblend/internal/domain"
	"github.com/bft-labs/frameblend/pkg/frameblend"
	"github.com/bft-labs/frameblend/pkg/log"
)

// Scenario names.
const (
	ScenarioAverage       = "average"
	ScenarioBlend         = "blend"
	ScenarioBlendParallel = "blend-parallel"
)

// Scenarios lists every known scenario in run order.
var Scenarios = []string{ScenarioAverage, ScenarioBlend, ScenarioBlendParallel}

// Known reports whether name is a scenario.
func Known(name string) bool {
	for _, s := range Scenarios {
		if s == name {
			return true
		}
	}
	return false
}

// Config selects what to run.
type Config struct {
	Steps     int
	Cadence   int
	Window    int
	Workers   int
	Runs      int
	Scenarios []string
}

// Result is the timing of one scenario.
type Result struct {
	Name    string
	Runs    int
	Total   time.Duration
	PerRun  time.Duration
	Outputs int // averaged frames produced by one run
}

// RunsPerSecond returns the scenario throughput.
func (r Result) RunsPerSecond() float64 {
	if r.Total <= 0 {
		return 0
	}
	return float64(r.Runs) / r.Total.Seconds()
}

// Runner executes scenarios against a batch.
type Runner struct {
	config Config
	logger log.Logger
}

// NewRunner creates a runner.
func NewRunner(config Config, logger log.Logger) *Runner {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	if config.Runs < 1 {
		config.Runs = 1
	}
	return &Runner{config: config, logger: logger}
}

// Run times each configured scenario in order and stops at the first error.
func (r *Runner) Run(ctx context.Context, batch domain.Batch) ([]Result, error) {
	results := make([]Result, 0, len(r.config.Scenarios))
	for _, name := range r.config.Scenarios {
		fn, err := r.scenario(name)
		if err != nil {
			return results, err
		}

		var outputs int
		start := time.Now()
		for i := 0; i < r.config.Runs; i++ {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			if outputs, err = fn(ctx, batch); err != nil {
				return results, fmt.Errorf("scenario %s: %w", name, err)
			}
		}
		total := time.Since(start)

		res := Result{
			Name:    name,
			Runs:    r.config.Runs,
			Total:   total,
			PerRun:  total / time.Duration(r.config.Runs),
			Outputs: outputs,
		}
		r.logger.Info("scenario executed",
			log.String("scenario", res.Name),
			log.Int("runs", res.Runs),
			log.Int("outputs", res.Outputs),
			log.Duration("per_run", res.PerRun),
			log.Float64("runs_per_sec", res.RunsPerSecond()),
			log.Duration("total", res.Total),
		)
		results = append(results, res)
	}
	return results, nil
}

type scenarioFunc func(ctx context.Context, batch domain.Batch) (int, error)

func (r *Runner) scenario(name string) (scenarioFunc, error) {
	switch name {
	case ScenarioAverage:
		e, err := frameblend.New(frameblend.WithLogger(r.logger))
		if err != nil {
			return nil, err
		}
		return func(_ context.Context, batch domain.Batch) (int, error) {
			if _, err := e.Average(batch); err != nil {
				return 0, err
			}
			return 1, nil
		}, nil

	case ScenarioBlend:
		e, err := frameblend.New(
			frameblend.WithLogger(r.logger),
			frameblend.WithWindowSize(r.config.Window),
		)
		if err != nil {
			return nil, err
		}
		return func(_ context.Context, batch domain.Batch) (int, error) {
			s, err := e.Blend(batch, r.config.Steps, r.config.Cadence)
			if err != nil {
				return 0, err
			}
			for s.Next() {
			}
			return s.Emitted(), s.Err()
		}, nil

	case ScenarioBlendParallel:
		e, err := frameblend.New(
			frameblend.WithLogger(r.logger),
			frameblend.WithWindowSize(r.config.Window),
			frameblend.WithWorkers(r.config.Workers),
		)
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context, batch domain.Batch) (int, error) {
			ticks, err := e.BlendAll(ctx, batch, r.config.Steps, r.config.Cadence)
			return len(ticks), err
		}, nil
	}
	return nil, fmt.Errorf("unknown scenario %q", name)
}
