// tile2048 is a headless 2048 rules engine driven from the command line.
//
// Usage:
//
//	tile2048 play            - Play by typing directions on stdin
//	tile2048 auto            - Let a strategy play one or more games
//	tile2048 list            - List available strategies
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible games
//	--config <path>       - Engine config YAML (default search: ~/.tile2048, ./configs)
//	--difficulty <name>   - Spawn preset: easy, classic, hard
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/config"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tile2048",
	Short: "tile2048 - the 2048 sliding tile game, headless",
	Long: `tile2048 runs the 2048 rules engine without a UI.

Available commands:
  play     - Play a game by typing moves on stdin
  auto     - Run games with an auto-play strategy
  list     - Show all available strategies

Examples:
  tile2048 play
  echo "left up left" | tile2048 play --format yaml
  tile2048 auto --strategy greedy --games 10
  tile2048 play --difficulty hard --seed 42`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config, or random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, classic, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(autoCmd)
	rootCmd.AddCommand(listCmd)
}

// newLogger builds the stderr logger shared by all commands.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tile2048",
	})
	logger.SetLevel(level)
	return logger, nil
}

// loadEngineConfig resolves config file, environment, preset and --seed.
func loadEngineConfig(logger *log.Logger) (config.EngineConfig, error) {
	cfg, err := config.LoadEngine(flagConfig, logger)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	return cfg, nil
}

// fail prints err and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
