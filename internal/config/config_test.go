package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// isolate points HOME at an empty directory so a real user config
// cannot leak into the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)

	cfg, err := LoadEngine("", nil)
	if err != nil {
		t.Fatalf("LoadEngine: %v", err)
	}
	if cfg != DefaultEngineConfig() {
		t.Errorf("embedded config = %+v, want %+v", cfg, DefaultEngineConfig())
	}
	if len(GetDefaultYAML()) == 0 {
		t.Error("embedded YAML is empty")
	}
}

func TestLoadCustomPathKeepsMissingKeys(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "engine.yaml", "win_value: 512\nseed: 42\n")

	cfg, err := LoadEngine(path, nil)
	if err != nil {
		t.Fatalf("LoadEngine: %v", err)
	}
	if cfg.WinValue != 512 || cfg.Seed != 42 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Spawn4Probability != 0.25 || cfg.InitialTiles != 2 {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := LoadEngine(filepath.Join(dir, "missing.yaml"), nil); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := writeFile(t, dir, "bad.yaml", "win_value: [not, a, number]\n")
	if _, err := LoadEngine(bad, nil); err == nil {
		t.Error("malformed custom file should fail")
	}

	invalid := writeFile(t, dir, "invalid.yaml", "win_value: 1000\n")
	if _, err := LoadEngine(invalid, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid win value error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if err := os.MkdirAll(filepath.Join(home, ".tile2048"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(home, ".tile2048"), "engine.yaml", "initial_tiles: 4\n")

	cfg, err := LoadEngine("", nil)
	if err != nil {
		t.Fatalf("LoadEngine: %v", err)
	}
	if cfg.InitialTiles != 4 {
		t.Errorf("initial tiles = %d, want 4 from user config", cfg.InitialTiles)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "engine.yaml", "win_value: 512\n")
	t.Setenv("TILE2048_WIN_VALUE", "4096")
	t.Setenv("TILE2048_SPAWN4_PROBABILITY", "0.5")

	cfg, err := LoadEngine(path, nil)
	if err != nil {
		t.Fatalf("LoadEngine: %v", err)
	}
	if cfg.WinValue != 4096 {
		t.Errorf("win value = %d, want env override 4096", cfg.WinValue)
	}
	if cfg.Spawn4Probability != 0.5 {
		t.Errorf("spawn probability = %v, want 0.5", cfg.Spawn4Probability)
	}
}

func TestEnvParseError(t *testing.T) {
	isolate(t)
	t.Setenv("TILE2048_SEED", "not-a-number")

	if _, err := LoadEngine("", nil); err == nil {
		t.Error("unparseable env value should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EngineConfig)
		ok     bool
	}{
		{"defaults", func(*EngineConfig) {}, true},
		{"small win value", func(c *EngineConfig) { c.WinValue = 4 }, true},
		{"win value too small", func(c *EngineConfig) { c.WinValue = 2 }, false},
		{"win value not power of two", func(c *EngineConfig) { c.WinValue = 3000 }, false},
		{"negative probability", func(c *EngineConfig) { c.Spawn4Probability = -0.1 }, false},
		{"probability above one", func(c *EngineConfig) { c.Spawn4Probability = 1.5 }, false},
		{"too many tiles", func(c *EngineConfig) { c.InitialTiles = 17 }, false},
		{"no opening tiles", func(c *EngineConfig) { c.InitialTiles = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultEngineConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name string
		want float64
	}{
		{"easy", 0.10},
		{"classic", 0.25},
		{"hard", 0.40},
	}

	for _, tt := range tests {
		preset, err := ParsePreset(tt.name)
		if err != nil {
			t.Fatalf("ParsePreset(%q): %v", tt.name, err)
		}
		cfg := DefaultEngineConfig()
		ApplyPreset(&cfg, preset)
		if cfg.Spawn4Probability != tt.want {
			t.Errorf("%s spawn probability = %v, want %v", tt.name, cfg.Spawn4Probability, tt.want)
		}
	}

	cfg := DefaultEngineConfig()
	cfg.Spawn4Probability = 0.9
	ApplyPreset(&cfg, "")
	if cfg.Spawn4Probability != 0.9 {
		t.Error("empty preset should leave the config unchanged")
	}

	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestBrokenUserConfigIsSkippedWithWarning(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if err := os.MkdirAll(filepath.Join(home, ".tile2048"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(home, ".tile2048"), "engine.yaml", "win_value: [broken\n")

	var out bytes.Buffer
	cfg, err := LoadEngine("", log.New(&out))
	if err != nil {
		t.Fatalf("LoadEngine: %v", err)
	}
	if cfg != DefaultEngineConfig() {
		t.Errorf("config = %+v, want defaults", cfg)
	}
	if !strings.Contains(out.String(), "ignoring malformed config") {
		t.Errorf("log = %q, want a malformed config warning", out.String())
	}
}

func TestMissingUserConfigIsSilent(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	if _, err := LoadEngine("", log.New(&out)); err != nil {
		t.Fatalf("LoadEngine: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("log = %q, want nothing for absent files", out.String())
	}
}
