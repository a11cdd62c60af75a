package cliconfig

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/bft-labs/frameblend/internal/bench"
)

// EnvPrefix prefixes every environment variable read by ApplyEnvConfig.
const EnvPrefix = "FRAMEBLEND_"

// Config holds CLI configuration for frameblend.
type Config struct {
	Height   int
	Width    int
	Channels int

	Frames  int
	Steps   int
	Cadence int
	Window  int
	Workers int

	Runs      int
	Seed      int64
	Scenarios []string

	LogLevel string
	Watch    bool
}

// DefaultConfig returns a Config with default values: ten 1080p RGB frames
// blended over a thousand steps.
func DefaultConfig() Config {
	return Config{
		Height:    1080,
		Width:     1920,
		Channels:  3,
		Frames:    10,
		Steps:     1000,
		Cadence:   10,
		Window:    0, // same as cadence
		Workers:   runtime.NumCPU(),
		Runs:      1,
		Seed:      1,
		Scenarios: append([]string(nil), bench.Scenarios...),
		LogLevel:  "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Height <= 0 || c.Width <= 0 || c.Channels <= 0 {
		return fmt.Errorf("frame shape %dx%dx%d must be positive", c.Height, c.Width, c.Channels)
	}
	if c.Frames <= 0 {
		return fmt.Errorf("frames must be positive")
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps must not be negative")
	}
	if c.Cadence <= 0 {
		return fmt.Errorf("cadence must be positive")
	}
	if c.Window < 0 {
		return fmt.Errorf("window must not be negative")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}
	if c.Runs <= 0 {
		return fmt.Errorf("runs must be positive")
	}
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("at least one scenario is required")
	}
	for _, s := range c.Scenarios {
		if !bench.Known(s) {
			return fmt.Errorf("unknown scenario %q", s)
		}
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a list if not empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), value...)
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt64 sets an int64 value if non-zero and flag not changed.
func (s *configSetter) setInt64(flag string, value int64, dst *int64) {
	if value == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if positive.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setInt64FromString parses a string to int64 and sets the destination.
func (s *configSetter) setInt64FromString(flag, value string, dst *int64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setStringsFromString splits a comma separated list.
func (s *configSetter) setStringsFromString(flag, value string, dst *[]string) {
	if value == "" || s.changed[flag] {
		return
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) > 0 {
		*dst = out
	}
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
