package engine

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateWon      GameStateType = "won"
	StateGameOver GameStateType = "game_over"
)

// Snapshot is an immutable copy of a game's observable state.
// It contains only values and is safe to hand to another goroutine.
type Snapshot struct {
	Board     Matrix
	Tiles     Grid // Same cells with provenance, for appear-animation hints
	Score     int
	BestScore int
	MoveCount int
	MaxTile   int
	Won       bool
	Continued bool
	Over      bool
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	b := g.board
	m := b.grid.Matrix()

	state := StatePlaying
	switch {
	case b.over:
		state = StateGameOver
	case b.won && !b.continued:
		state = StateWon
	}

	return Snapshot{
		Board:     m,
		Tiles:     b.grid,
		Score:     b.score,
		BestScore: b.bestScore,
		MoveCount: b.moveCount,
		MaxTile:   MaxTile(m),
		Won:       b.won,
		Continued: b.continued,
		Over:      b.over,
		State:     state,
	}
}
