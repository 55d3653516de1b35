package engine

import "github.com/google/uuid"

// EventKind is the canonical name of a notification.
type EventKind string

const (
	KindNewGame  EventKind = "new-game"
	KindScore    EventKind = "score"
	KindUp       EventKind = "up"
	KindDown     EventKind = "down"
	KindLeft     EventKind = "left"
	KindRight    EventKind = "right"
	KindWonGame  EventKind = "won-game"
	KindContinue EventKind = "continue"
	KindGameOver EventKind = "game-over"
)

// Event is a notification sent from a Game to its observers.
// The set of implementations is closed to this package.
type Event interface {
	Kind() EventKind
	gameEvent()
}

// MovePhase tells observers how far a move has progressed.
type MovePhase int

const (
	PhaseNoOp              MovePhase = iota // Nothing moved; no tile will spawn
	PhaseMovedPendingSpawn                  // Board changed; spawn decision pending
	PhaseSettled                            // Spawn done; board stable until next input
)

func (p MovePhase) String() string {
	switch p {
	case PhaseNoOp:
		return "no-op"
	case PhaseMovedPendingSpawn:
		return "moved"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// NewGameEvent is sent after the board is reset and the opening tiles spawn.
type NewGameEvent struct {
	Correlation uuid.UUID
	Snapshot    Snapshot
}

func (NewGameEvent) Kind() EventKind { return KindNewGame }
func (NewGameEvent) gameEvent()      {}

// ScoreEvent is sent whenever score or best score may have changed.
type ScoreEvent struct {
	Score     int
	BestScore int
	Snapshot  Snapshot
}

func (ScoreEvent) Kind() EventKind { return KindScore }
func (ScoreEvent) gameEvent()      {}

// MoveEvent is sent once after the trial pass of a move and, when the
// board changed, once more after it settles.
type MoveEvent struct {
	Direction Direction
	Phase     MovePhase
	Gained    int // Score gained by the move's merges
	Snapshot  Snapshot
}

// Kind returns the direction name, e.g. "left".
func (e MoveEvent) Kind() EventKind { return EventKind(e.Direction.String()) }
func (MoveEvent) gameEvent()        {}

// WonEvent is sent when the win value is first reached in a game.
type WonEvent struct {
	Value    int
	Snapshot Snapshot
}

func (WonEvent) Kind() EventKind { return KindWonGame }
func (WonEvent) gameEvent()      {}

// ContinueEvent is sent when the player keeps playing after a win.
type ContinueEvent struct {
	Snapshot Snapshot
}

func (ContinueEvent) Kind() EventKind { return KindContinue }
func (ContinueEvent) gameEvent()      {}

// GameOverEvent is sent when a full board has no legal move left.
type GameOverEvent struct {
	Snapshot Snapshot
}

func (GameOverEvent) Kind() EventKind { return KindGameOver }
func (GameOverEvent) gameEvent()      {}
