package strategy

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile2048/internal/engine"
)

// ErrStalled is returned when a strategy keeps choosing moves that do not
// change the board.
var ErrStalled = errors.New("strategy: no progress")

// maxNoOps bounds consecutive no-op moves before Play gives up.
const maxNoOps = 64

// StopReason tells why Play returned.
type StopReason string

const (
	StopGameOver StopReason = "game_over"
	StopWon      StopReason = "won"
	StopMaxMoves StopReason = "max_moves"
)

// Options control a Play run.
type Options struct {
	MaxMoves     int  // 0 means no limit
	AutoContinue bool // Keep playing after a win
	Seed         int64
	Logger       *log.Logger
}

// Result summarizes a finished game.
type Result struct {
	Strategy  string     `yaml:"strategy"`
	Score     int        `yaml:"score"`
	BestScore int        `yaml:"best_score"`
	Moves     int        `yaml:"moves"`
	MaxTile   int        `yaml:"max_tile"`
	Won       bool       `yaml:"won"`
	Stop      StopReason `yaml:"stop"`
}

// Play starts a new game on g and lets s choose every move until the game
// ends, the move limit is hit or ctx is cancelled. A win stops the run
// unless AutoContinue is set.
func Play(ctx context.Context, g *engine.Game, s Strategy, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s.Reset(opts.Seed)
	g.NewGame()

	noOps := 0
	for {
		snap := g.Snapshot()
		res := Result{
			Strategy:  s.ID(),
			Score:     snap.Score,
			BestScore: snap.BestScore,
			Moves:     snap.MoveCount,
			MaxTile:   snap.MaxTile,
			Won:       snap.Won,
		}

		switch {
		case snap.Over:
			res.Stop = StopGameOver
		case snap.State == engine.StateWon && !opts.AutoContinue:
			res.Stop = StopWon
		case opts.MaxMoves > 0 && snap.MoveCount >= opts.MaxMoves:
			res.Stop = StopMaxMoves
		}
		if res.Stop != "" {
			logger.Debug("auto-play finished", "strategy", s.ID(), "stop", string(res.Stop), "score", res.Score, "moves", res.Moves)
			return res, nil
		}

		if err := ctx.Err(); err != nil {
			return res, err
		}

		if snap.State == engine.StateWon {
			g.ContinueGame()
			continue
		}

		dir := s.Next(snap)
		if err := g.Move(dir); err != nil {
			return res, fmt.Errorf("strategy %s: %w", s.ID(), err)
		}

		if g.SameBoard() {
			noOps++
			if noOps >= maxNoOps {
				return res, fmt.Errorf("%w: %s made %d moves without change", ErrStalled, s.ID(), noOps)
			}
			continue
		}
		noOps = 0
	}
}
