package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/frameblend/internal/bench"
	"github.com/bft-labs/frameblend/internal/cliconfig"
	"github.com/bft-labs/frameblend/internal/configwatch"
	"github.com/bft-labs/frameblend/internal/domain"
	"github.com/bft-labs/frameblend/internal/synth"
	"github.com/bft-labs/frameblend/pkg/frameblend"
	"github.com/bft-labs/frameblend/pkg/log"
)

const longHelp = `Benchmark frame averaging and temporal blending on synthetic frames.

A batch of seeded random frames is built in memory, then each scenario runs:
  average         mean of the whole batch
  blend           lazy windowed blend, one reduction per cadence tick
  blend-parallel  the same blend with reductions spread over workers

Configuration is read from $HOME/.frameblend/config.toml, then FRAMEBLEND_*
environment variables, then flags. With --watch the harness re-runs every
time the config file changes.`

var exampleUsage = strings.TrimSpace(`
  frameblend --frames 10 --steps 1000 --cadence 10
  frameblend --height 480 --width 640 --scenario blend --runs 5
  frameblend --config ./frameblend.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return frameblend.Version
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "frameblend",
		Short:         "Benchmark frame averaging and temporal blending",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// cfg now holds defaults overlaid with flags; file and env fill
			// in everything the user did not pass explicitly.
			base := cfg
			current, err := loadConfig(base, cfgFile, changed)
			if err != nil {
				return err
			}

			logger := log.NewConsoleLogger(os.Stderr, current.LogLevel)
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := run(ctx, current, logger); err != nil {
				return err
			}
			if !current.Watch {
				return nil
			}
			return watch(ctx, base, cfgFile, changed, logger)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.frameblend/config.toml)")
	root.Flags().IntVar(&cfg.Height, "height", cfg.Height, "frame height in pixels")
	root.Flags().IntVar(&cfg.Width, "width", cfg.Width, "frame width in pixels")
	root.Flags().IntVar(&cfg.Channels, "channels", cfg.Channels, "samples per pixel")
	root.Flags().IntVar(&cfg.Frames, "frames", cfg.Frames, "frames in the synthetic batch")
	root.Flags().IntVar(&cfg.Steps, "steps", cfg.Steps, "blend steps (the batch is cycled)")
	root.Flags().IntVar(&cfg.Cadence, "cadence", cfg.Cadence, "steps between emitted averages")
	root.Flags().IntVar(&cfg.Window, "window", cfg.Window, "frames averaged per tick (0 = cadence)")
	root.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent reductions for blend-parallel")
	root.Flags().IntVar(&cfg.Runs, "runs", cfg.Runs, "repetitions per scenario")
	root.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for synthetic frames")
	root.Flags().StringSliceVar(&cfg.Scenarios, "scenario", cfg.Scenarios, "scenarios to run")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-run whenever the config file changes")

	if err := root.Execute(); err != nil {
		fallback := log.NewConsoleLogger(os.Stderr, "info")
		fallback.Error().Err(err).Msg("frameblend")
		os.Exit(1)
	}
}

// loadConfig layers the config file and environment over base and validates
// the result.
func loadConfig(base cliconfig.Config, cfgFile string, changed map[string]bool) (cliconfig.Config, error) {
	cfg := base
	cfg.Scenarios = append([]string(nil), base.Scenarios...)

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
			return cfg, err
		}
	}
	if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg cliconfig.Config, logger zerolog.Logger) error {
	logger.Info().Interface("config", cfg).Msg("configuration")

	shape := domain.Shape{Height: cfg.Height, Width: cfg.Width, Channels: cfg.Channels}
	batch, err := synth.Batch(shape, cfg.Frames, cfg.Seed)
	if err != nil {
		return fmt.Errorf("build batch: %w", err)
	}

	runner := bench.NewRunner(bench.Config{
		Steps:     cfg.Steps,
		Cadence:   cfg.Cadence,
		Window:    cfg.Window,
		Workers:   cfg.Workers,
		Runs:      cfg.Runs,
		Scenarios: cfg.Scenarios,
	}, log.NewZerologAdapterWithLogger(logger))

	if _, err := runner.Run(ctx, batch); err != nil {
		return err
	}
	return nil
}

// watch re-runs the harness on every config change until ctx is done.
func watch(ctx context.Context, base cliconfig.Config, cfgFile string, changed map[string]bool, logger zerolog.Logger) error {
	if cfgFile == "" {
		return fmt.Errorf("--watch needs a config file")
	}

	reload := make(chan struct{}, 1)
	w := configwatch.New(cfgFile, configwatch.DefaultConfig(), log.NewZerologAdapterWithLogger(logger))
	if err := w.Start(ctx, func() {
		select {
		case reload <- struct{}{}:
		default:
		}
	}); err != nil {
		return err
	}
	defer w.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("received signal, stopping...")
			return nil
		case <-reload:
			cfg, err := loadConfig(base, cfgFile, changed)
			if err != nil {
				logger.Error().Err(err).Msg("config reload rejected")
				continue
			}
			if err := run(ctx, cfg, logger); err != nil {
				logger.Error().Err(err).Msg("run failed")
			}
		}
	}
}
