package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LoadEngine loads the engine configuration.
// Search order: customPath -> ~/.tile2048/engine.yaml -> ./configs/engine.yaml -> embedded default.
// Keys missing from a file keep their default values. Environment
// variables (TILE2048_*) override whatever the file provided.
// A broken user or local file is skipped with a warning on logger,
// which may be nil.
func LoadEngine(customPath string, logger *log.Logger) (EngineConfig, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg, err := loadEngineFile(customPath, logger)
	if err != nil {
		return cfg, err
	}

	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadEngineFile resolves the YAML source following the search order.
func loadEngineFile(customPath string, logger *log.Logger) (EngineConfig, error) {
	cfg := DefaultEngineConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("engine.yaml"), filepath.Join("configs", "engine.yaml")} {
		if path == "" {
			continue
		}
		if fileCfg, ok := tryEngineFile(path, logger); ok {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultEngineYAML, &cfg); err != nil {
		return DefaultEngineConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryEngineFile parses path over the defaults. A missing file is skipped
// silently; any other failure is logged and skipped.
func tryEngineFile(path string, logger *log.Logger) (EngineConfig, bool) {
	cfg := DefaultEngineConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("ignoring unreadable config", "path", path, "error", err)
		}
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Warn("ignoring malformed config", "path", path, "error", err)
		return DefaultEngineConfig(), false
	}
	return cfg, true
}

// ParseEnv applies TILE2048_* environment overrides to target.
// Unset variables leave the current values untouched.
func ParseEnv(target *EngineConfig) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tile2048", filename)
}
