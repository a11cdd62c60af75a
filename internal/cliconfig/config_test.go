package cliconfig

import (
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Height != 1080 || cfg.Width != 1920 || cfg.Channels != 3 {
		t.Errorf("shape = %dx%dx%d, want 1080x1920x3", cfg.Height, cfg.Width, cfg.Channels)
	}
	if cfg.Cadence != 10 {
		t.Errorf("Cadence = %v, want 10", cfg.Cadence)
	}
	if cfg.Steps != 1000 {
		t.Errorf("Steps = %v, want 1000", cfg.Steps)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %v, want %v", cfg.Workers, runtime.NumCPU())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "zero steps allowed", mutate: func(c *Config) { c.Steps = 0 }},
		{name: "zero height", mutate: func(c *Config) { c.Height = 0 }, wantErr: true},
		{name: "zero channels", mutate: func(c *Config) { c.Channels = 0 }, wantErr: true},
		{name: "zero frames", mutate: func(c *Config) { c.Frames = 0 }, wantErr: true},
		{name: "negative steps", mutate: func(c *Config) { c.Steps = -1 }, wantErr: true},
		{name: "zero cadence", mutate: func(c *Config) { c.Cadence = 0 }, wantErr: true},
		{name: "negative window", mutate: func(c *Config) { c.Window = -1 }, wantErr: true},
		{name: "zero workers", mutate: func(c *Config) { c.Workers = 0 }, wantErr: true},
		{name: "zero runs", mutate: func(c *Config) { c.Runs = 0 }, wantErr: true},
		{name: "no scenarios", mutate: func(c *Config) { c.Scenarios = nil }, wantErr: true},
		{name: "unknown scenario", mutate: func(c *Config) { c.Scenarios = []string{"numpy"} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
