package frameblend

import "github.com/bft-labs/frameblend/pkg/log"

// Option configures optional behavior of an Engine.
type Option func(*options)

type options struct {
	logger     log.Logger
	windowSize int
	workers    int
}

func defaultOptions() options {
	return options{
		logger:  log.NewNoopLogger(),
		workers: 1,
	}
}

// WithLogger sets a logger for session diagnostics.
// If not provided, a no-op logger is used.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithWindowSize averages the last n frames on each tick instead of the last
// cadence frames. Zero restores the default.
func WithWindowSize(n int) Option {
	return func(o *options) {
		o.windowSize = n
	}
}

// WithWorkers sets how many reductions BlendAll may run concurrently.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
