package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pingrid/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(cfg *Config)
		wantErr     bool
		errContains string
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *Config) {},
		},
		{
			name: "version from the future",
			mutate: func(cfg *Config) {
				cfg.Version = CurrentConfigVersion + 1
			},
			wantErr:     true,
			errContains: "from the future",
		},
		{
			name: "older version is fine",
			mutate: func(cfg *Config) {
				cfg.Version = 0
			},
		},
		{
			name: "empty target",
			mutate: func(cfg *Config) {
				cfg.Target = ""
			},
			wantErr:     true,
			errContains: "No target configured",
		},
		{
			name: "whitespace-only target",
			mutate: func(cfg *Config) {
				cfg.Target = "   "
			},
			wantErr:     true,
			errContains: "No target configured",
		},
		{
			name: "target with embedded space",
			mutate: func(cfg *Config) {
				cfg.Target = "two hosts"
			},
			wantErr:     true,
			errContains: "contains whitespace",
		},
		{
			name: "interval too fast",
			mutate: func(cfg *Config) {
				cfg.Interval = 50 * time.Millisecond
			},
			wantErr:     true,
			errContains: "too fast",
		},
		{
			name: "interval at the minimum",
			mutate: func(cfg *Config) {
				cfg.Interval = MinInterval
			},
		},
		{
			name: "zero timeout",
			mutate: func(cfg *Config) {
				cfg.Timeout = 0
			},
			wantErr:     true,
			errContains: "Timeout",
		},
		{
			name: "negative timeout",
			mutate: func(cfg *Config) {
				cfg.Timeout = -time.Second
			},
			wantErr:     true,
			errContains: "Timeout",
		},
		{
			name: "negative count",
			mutate: func(cfg *Config) {
				cfg.Count = -1
			},
			wantErr:     true,
			errContains: "negative",
		},
		{
			name: "zero count runs forever",
			mutate: func(cfg *Config) {
				cfg.Count = 0
			},
		},
		{
			name: "invalid color mode",
			mutate: func(cfg *Config) {
				cfg.Output.Color = "rainbow"
			},
			wantErr:     true,
			errContains: "isn't valid",
		},
		{
			name: "never color mode",
			mutate: func(cfg *Config) {
				cfg.Output.Color = "never"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateNilConfig(t *testing.T) {
	err := Validate(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config is nil")
}
