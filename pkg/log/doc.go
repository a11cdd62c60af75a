// Package log provides the logging abstraction used across frameblend.
//
// The engine only depends on the [Logger] interface. A zerolog-backed
// implementation and a no-op implementation are provided:
//
//	logger := log.NewZerologAdapterWithLogger(log.NewConsoleLogger(os.Stderr, "debug"))
//	engine, err := frameblend.New(frameblend.WithLogger(logger))
//
// The no-op logger is the default and is what tests use:
//
//	logger := log.NewNoopLogger()
//
// Implement [Logger] to route engine diagnostics into another logging stack.
package log
