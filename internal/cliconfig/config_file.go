package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config for the TOML config file.
type FileConfig struct {
	Height    int      `toml:"height"`
	Width     int      `toml:"width"`
	Channels  int      `toml:"channels"`
	Frames    int      `toml:"frames"`
	Steps     int      `toml:"steps"`
	Cadence   int      `toml:"cadence"`
	Window    int      `toml:"window"`
	Workers   int      `toml:"workers"`
	Runs      int      `toml:"runs"`
	Seed      int64    `toml:"seed"`
	Scenarios []string `toml:"scenarios"`
	LogLevel  string   `toml:"log_level"`
	Watch     *bool    `toml:"watch"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.frameblend/config.toml, or "" when the home
// directory cannot be determined.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".frameblend", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setInt("height", fc.Height, &cfg.Height)
	s.setInt("width", fc.Width, &cfg.Width)
	s.setInt("channels", fc.Channels, &cfg.Channels)
	s.setInt("frames", fc.Frames, &cfg.Frames)
	s.setInt("steps", fc.Steps, &cfg.Steps)
	s.setInt("cadence", fc.Cadence, &cfg.Cadence)
	s.setInt("window", fc.Window, &cfg.Window)
	s.setInt("workers", fc.Workers, &cfg.Workers)
	s.setInt("runs", fc.Runs, &cfg.Runs)
	s.setInt64("seed", fc.Seed, &cfg.Seed)

	s.setStrings("scenario", fc.Scenarios, &cfg.Scenarios)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
