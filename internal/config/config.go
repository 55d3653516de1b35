// Package config provides YAML-based engine configuration loading,
// environment overrides and difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// EngineConfig contains the tunable rules of a game session.
type EngineConfig struct {
	WinValue          int     `yaml:"win_value" env:"TILE2048_WIN_VALUE"`
	Spawn4Probability float64 `yaml:"spawn4_probability" env:"TILE2048_SPAWN4_PROBABILITY"` // Chance a spawned tile is 4 instead of 2
	InitialTiles      int     `yaml:"initial_tiles" env:"TILE2048_INITIAL_TILES"`
	Seed              int64   `yaml:"seed" env:"TILE2048_SEED"` // 0 means seed from the clock
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid engine config")

// Validate checks that the configuration describes a playable game.
func (c EngineConfig) Validate() error {
	if c.WinValue < 4 || c.WinValue&(c.WinValue-1) != 0 {
		return fmt.Errorf("%w: win_value %d is not a power of two >= 4", ErrInvalidConfig, c.WinValue)
	}
	if c.Spawn4Probability < 0 || c.Spawn4Probability > 1 {
		return fmt.Errorf("%w: spawn4_probability %v outside [0, 1]", ErrInvalidConfig, c.Spawn4Probability)
	}
	if c.InitialTiles < 0 || c.InitialTiles > 16 {
		return fmt.Errorf("%w: initial_tiles %d outside [0, 16]", ErrInvalidConfig, c.InitialTiles)
	}
	return nil
}
