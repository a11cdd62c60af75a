package cliconfig

import (
	"reflect"
	"testing"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"FRAMEBLEND_HEIGHT":    "240",
				"FRAMEBLEND_WIDTH":     "320",
				"FRAMEBLEND_CHANNELS":  "4",
				"FRAMEBLEND_FRAMES":    "6",
				"FRAMEBLEND_STEPS":     "60",
				"FRAMEBLEND_CADENCE":   "3",
				"FRAMEBLEND_WINDOW":    "2",
				"FRAMEBLEND_WORKERS":   "8",
				"FRAMEBLEND_RUNS":      "5",
				"FRAMEBLEND_SEED":      "-3",
				"FRAMEBLEND_SCENARIOS": "average, blend",
				"FRAMEBLEND_LOG_LEVEL": "warn",
				"FRAMEBLEND_WATCH":     "1",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Height:    240,
				Width:     320,
				Channels:  4,
				Frames:    6,
				Steps:     60,
				Cadence:   3,
				Window:    2,
				Workers:   8,
				Runs:      5,
				Seed:      -3,
				Scenarios: []string{"average", "blend"},
				LogLevel:  "warn",
				Watch:     true,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"FRAMEBLEND_CADENCE": "3",
				"FRAMEBLEND_FRAMES":  "6",
			},
			changed:  map[string]bool{"cadence": true},
			initial:  Config{Cadence: 10},
			expected: Config{Cadence: 10, Frames: 6},
		},
		{
			name:    "returns error for invalid int",
			envVars: map[string]string{"FRAMEBLEND_CADENCE": "ten"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for invalid seed",
			envVars: map[string]string{"FRAMEBLEND_SEED": "x"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:     "handles bool 'false' as false",
			envVars:  map[string]string{"FRAMEBLEND_WATCH": "false"},
			changed:  map[string]bool{},
			initial:  Config{Watch: true},
			expected: Config{Watch: false},
		},
		{
			name:     "ignores non-positive ints",
			envVars:  map[string]string{"FRAMEBLEND_CADENCE": "0"},
			changed:  map[string]bool{},
			initial:  Config{Cadence: 10},
			expected: Config{Cadence: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(cfg, tt.expected) {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}
