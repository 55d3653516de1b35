package config

import "fmt"

// DifficultyPreset represents a named spawn profile.
type DifficultyPreset string

const (
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyClassic DifficultyPreset = "classic"
	DifficultyHard    DifficultyPreset = "hard"
)

// Spawn4ForPreset returns the probability of spawning a 4 for a preset.
func Spawn4ForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.10
	case DifficultyHard:
		return 0.40
	default:
		return 0.25
	}
}

// ParsePreset validates a preset name. An empty name means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyClassic, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, classic or hard)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *EngineConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Spawn4Probability = Spawn4ForPreset(preset)
}
