package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.PlayerCount)
	assert.Equal(t, 60.0, cfg.FirstRoundTime)
	assert.Equal(t, 15.0, cfg.RoundTime)
	assert.Equal(t, 5.0, cfg.GraceTime)
	assert.Equal(t, 5.0, cfg.SpawnInterval)
	assert.Equal(t, 5, cfg.WinPoints)
	assert.False(t, cfg.LegacyScoring)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"one player", func(c *Config) { c.PlayerCount = 1 }, "player count 1"},
		{"five players", func(c *Config) { c.PlayerCount = 5 }, "player count 5"},
		{"zero first round", func(c *Config) { c.FirstRoundTime = 0 }, "first round time"},
		{"negative round", func(c *Config) { c.RoundTime = -1 }, "round time"},
		{"zero grace", func(c *Config) { c.GraceTime = 0 }, "grace time"},
		{"zero spawn", func(c *Config) { c.SpawnInterval = 0 }, "spawn interval"},
		{"zero win points", func(c *Config) { c.WinPoints = 0 }, "win points"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNewHeadless_RejectsInvalidConfig(t *testing.T) {
	_, err := NewHeadless(WithPlayers(7))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "headless match")
}
