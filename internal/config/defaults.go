package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// DefaultEngineConfig returns the classic 2048 rules.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		WinValue:          2048,
		Spawn4Probability: 0.25,
		InitialTiles:      2,
		Seed:              0,
	}
}

// GetDefaultYAML returns the embedded default engine YAML.
func GetDefaultYAML() []byte {
	return defaultEngineYAML
}
