package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (FRAMEBLEND_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	ints := []struct {
		flag string
		env  string
		dst  *int
	}{
		{"height", "HEIGHT", &cfg.Height},
		{"width", "WIDTH", &cfg.Width},
		{"channels", "CHANNELS", &cfg.Channels},
		{"frames", "FRAMES", &cfg.Frames},
		{"steps", "STEPS", &cfg.Steps},
		{"cadence", "CADENCE", &cfg.Cadence},
		{"window", "WINDOW", &cfg.Window},
		{"workers", "WORKERS", &cfg.Workers},
		{"runs", "RUNS", &cfg.Runs},
	}
	for _, v := range ints {
		if err := s.setIntFromString(v.flag, os.Getenv(EnvPrefix+v.env), v.dst); err != nil {
			return err
		}
	}

	if err := s.setInt64FromString("seed", os.Getenv(EnvPrefix+"SEED"), &cfg.Seed); err != nil {
		return err
	}

	s.setStringsFromString("scenario", os.Getenv(EnvPrefix+"SCENARIOS"), &cfg.Scenarios)
	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)
	s.setBoolFromString("watch", os.Getenv(EnvPrefix+"WATCH"), &cfg.Watch)

	return nil
}
