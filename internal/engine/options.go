package engine

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile2048/internal/config"
)

// Option configures a Game at construction.
type Option func(*Game)

// WithConfig applies rules loaded by the config package.
// A zero seed leaves the clock-based default in place.
func WithConfig(cfg config.EngineConfig) Option {
	return func(g *Game) {
		g.winValue = cfg.WinValue
		g.spawn4Prob = cfg.Spawn4Probability
		g.initialTiles = cfg.InitialTiles
		if cfg.Seed != 0 {
			g.seed = cfg.Seed
		}
	}
}

// WithSeed fixes the RNG seed for reproducible games.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// WithLogger sets the logger. Games log nothing by default.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithWinValue sets the tile value that wins the game.
func WithWinValue(v int) Option {
	return func(g *Game) {
		g.winValue = v
	}
}

// WithSpawn4Probability sets the chance that a spawned tile is a 4.
func WithSpawn4Probability(p float64) Option {
	return func(g *Game) {
		g.spawn4Prob = p
	}
}
