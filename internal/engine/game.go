package engine

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

const (
	// DefaultWinValue is the tile that wins a classic game.
	DefaultWinValue = 2048

	// DefaultSpawn4Probability is the chance a spawned tile is a 4.
	DefaultSpawn4Probability = 0.25
)

// Game is a single 2048 session. It owns its board exclusively and is not
// safe for concurrent use; observers are notified synchronously.
type Game struct {
	board Board

	winValue     int
	spawn4Prob   float64
	initialTiles int

	seed   int64
	rng    *rand.Rand
	logger *log.Logger

	lastSpawn Cell
	spawned   bool // Whether lastSpawn refers to the latest move

	subs      []subscription
	nextSubID SubscriptionID
}

// New creates a game with an empty board. Call NewGame to deal the
// opening tiles.
func New(opts ...Option) *Game {
	g := &Game{
		board:        newBoard(),
		winValue:     DefaultWinValue,
		spawn4Prob:   DefaultSpawn4Probability,
		initialTiles: 2,
		seed:         time.Now().UnixNano(),
		logger:       log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.rng = rand.New(rand.NewSource(g.seed))
	return g
}

// NewGame resets score, move count and flags, then spawns the opening tiles.
// The best score is kept.
func (g *Game) NewGame() {
	g.board.reset()
	g.spawned = false

	for range g.initialTiles {
		if !HasEmptyCell(g.board.grid.Matrix()) {
			break
		}
		g.spawnTile()
	}

	g.logger.Debug("new game", "tiles", g.initialTiles, "best", g.board.bestScore)

	g.emit(NewGameEvent{Correlation: uuid.New(), Snapshot: g.Snapshot()})
	g.emit(g.scoreEvent())

	if g.detectGameOver() {
		g.emit(GameOverEvent{Snapshot: g.Snapshot()})
	}
}

// Move executes a player move in dir.
//
// The trial pass slides and merges every line and fires a MoveEvent with
// PhaseNoOp or PhaseMovedPendingSpawn. When the board changed, the move
// count grows, a tile spawns (unless the game is won and not continued)
// and a second MoveEvent with PhaseSettled follows.
func (g *Game) Move(dir Direction) error {
	if !dir.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}

	g.spawned = false
	gained, changed := g.board.resolve(dir)
	g.logger.Debug("move resolved", "direction", dir.String(), "gained", gained, "changed", changed)

	if !changed {
		g.emit(MoveEvent{Direction: dir, Phase: PhaseNoOp, Snapshot: g.Snapshot()})
		return nil
	}

	g.board.moveCount++
	g.emit(MoveEvent{Direction: dir, Phase: PhaseMovedPendingSpawn, Gained: gained, Snapshot: g.Snapshot()})

	if gained > 0 {
		g.emit(g.scoreEvent())
		g.checkWin()
	}

	g.settle(dir)

	if g.spawnAllowed() {
		g.spawnTile()
	}

	over := g.detectGameOver()
	g.emit(MoveEvent{Direction: dir, Phase: PhaseSettled, Gained: gained, Snapshot: g.Snapshot()})
	if over {
		g.emit(GameOverEvent{Snapshot: g.Snapshot()})
	}
	return nil
}

// ContinueGame lets play resume after a win without resetting the board.
func (g *Game) ContinueGame() {
	g.board.continued = true
	g.logger.Debug("continue after win", "score", g.board.score)
	g.emit(ContinueEvent{Snapshot: g.Snapshot()})
}

// Load replaces the grid with m, stamping no provenance.
// Score and move count are kept; won and continued are cleared. A full
// board with no legal move is marked over and emits a GameOverEvent.
func (g *Game) Load(m Matrix) error {
	for y := range BoardSize {
		for x := range BoardSize {
			if !validTileValue(m[y][x]) {
				return fmt.Errorf("%w: %d at row %d col %d", ErrInvalidTile, m[y][x], y, x)
			}
		}
	}

	g.board.grid = gridFromMatrix(m)
	g.board.won = false
	g.board.continued = false
	g.board.over = false
	g.board.sameBoard = true
	g.spawned = false

	if g.detectGameOver() {
		g.emit(GameOverEvent{Snapshot: g.Snapshot()})
	}
	return nil
}

// settle re-runs compaction without merging. Lines are already compacted
// after the trial pass, so this never moves a tile.
func (g *Game) settle(dir Direction) {
	if _, changed := g.board.grid.shift(dir, false); changed {
		g.logger.Error("settle pass moved tiles", "direction", dir.String())
	}
}

// spawnAllowed reports whether a new tile may appear.
func (g *Game) spawnAllowed() bool {
	return (!g.board.won || g.board.continued) && !g.board.over
}

// spawnTile places a 2 or 4 on a uniformly chosen empty cell.
// Callers must guarantee a free cell; a full board panics.
func (g *Game) spawnTile() {
	empty := EmptyCells(g.board.grid.Matrix())
	if len(empty) == 0 {
		panic("engine: spawn requested on a full board")
	}

	cell := empty[g.rng.Intn(len(empty))]

	value := 2
	if g.rng.Float64() < g.spawn4Prob {
		value = 4
	}

	g.board.grid[cell.Row][cell.Col] = Tile{Value: value, CreatedOnMove: g.board.moveCount}
	g.lastSpawn = cell
	g.spawned = true
	g.logger.Debug("tile spawned", "row", cell.Row, "col", cell.Col, "value", value, "move", g.board.moveCount)
}

// checkWin marks the game won the first time the win value appears.
func (g *Game) checkWin() {
	if g.board.won || g.board.continued {
		return
	}
	if MaxTile(g.board.grid.Matrix()) < g.winValue {
		return
	}

	g.board.won = true
	g.logger.Info("game won", "value", g.winValue, "score", g.board.score, "moves", g.board.moveCount)
	g.emit(WonEvent{Value: g.winValue, Snapshot: g.Snapshot()})
}

// detectGameOver sets over when the grid is full and no direction changes it.
// Returns true only on the transition.
func (g *Game) detectGameOver() bool {
	if g.board.over || !g.board.full() {
		return false
	}
	if g.board.hasLegalMove() {
		return false
	}

	g.board.over = true
	g.logger.Info("game over", "score", g.board.score, "moves", g.board.moveCount, "max", MaxTile(g.board.grid.Matrix()))
	return true
}

func (g *Game) scoreEvent() ScoreEvent {
	return ScoreEvent{Score: g.board.score, BestScore: g.board.bestScore, Snapshot: g.Snapshot()}
}

// Grid returns the board as an integer matrix.
func (g *Game) Grid() Matrix {
	return g.board.grid.Matrix()
}

// Tiles returns a copy of the grid including tile provenance.
func (g *Game) Tiles() Grid {
	return g.board.grid
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.board.score
}

// BestScore returns the highest score reached during this session.
func (g *Game) BestScore() int {
	return g.board.bestScore
}

// MoveCount returns the number of moves that changed the board.
func (g *Game) MoveCount() int {
	return g.board.moveCount
}

// Won reports whether the win value was reached in this game.
// It stays set after ContinueGame; see Continued.
func (g *Game) Won() bool {
	return g.board.won
}

// Continued reports whether play resumed after a win.
func (g *Game) Continued() bool {
	return g.board.continued
}

// Over reports whether no legal move remains.
func (g *Game) Over() bool {
	return g.board.over
}

// SameBoard reports whether the latest move attempt changed nothing.
func (g *Game) SameBoard() bool {
	return g.board.sameBoard
}

// WinValue returns the tile value that wins the game.
func (g *Game) WinValue() int {
	return g.winValue
}

// LastSpawn returns the cell filled by the latest move, if any.
func (g *Game) LastSpawn() (Cell, bool) {
	return g.lastSpawn, g.spawned
}
