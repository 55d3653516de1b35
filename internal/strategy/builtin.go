package strategy

import (
	"math/rand"

	"github.com/vovakirdan/tile2048/internal/engine"
)

func init() {
	Register("cycle", func() Strategy { return &Cycle{} })
	Register("random", func() Strategy { return &Random{} })
	Register("greedy", func() Strategy { return &Greedy{} })
}

// cycleOrder is the rotation used by Cycle and by Greedy to break ties.
var cycleOrder = [...]engine.Direction{engine.DirUp, engine.DirRight, engine.DirDown, engine.DirLeft}

// Cycle plays up, right, down, left in turn, skipping directions that
// would not change the board.
type Cycle struct {
	next int
}

func (c *Cycle) ID() string    { return "cycle" }
func (c *Cycle) Title() string { return "Rotate up, right, down, left" }

func (c *Cycle) Reset(int64) {
	c.next = 0
}

func (c *Cycle) Next(s engine.Snapshot) engine.Direction {
	for range len(cycleOrder) {
		dir := cycleOrder[c.next]
		c.next = (c.next + 1) % len(cycleOrder)
		if _, _, changed := engine.Slide(s.Board, dir); changed {
			return dir
		}
	}
	return cycleOrder[c.next]
}

// Random picks uniformly among the directions that change the board.
type Random struct {
	rng *rand.Rand
}

func (r *Random) ID() string    { return "random" }
func (r *Random) Title() string { return "Uniform choice among legal moves" }

func (r *Random) Reset(seed int64) {
	r.rng = rand.New(rand.NewSource(seed))
}

func (r *Random) Next(s engine.Snapshot) engine.Direction {
	if r.rng == nil {
		r.Reset(1)
	}

	legal := make([]engine.Direction, 0, len(engine.Directions))
	for _, dir := range engine.Directions {
		if _, _, changed := engine.Slide(s.Board, dir); changed {
			legal = append(legal, dir)
		}
	}
	if len(legal) == 0 {
		return engine.DirUp
	}
	return legal[r.rng.Intn(len(legal))]
}

// Greedy avoids moves after which a single spawned 2 can end the game,
// then takes the highest immediate gain, preferring the move that leaves
// more empty cells on a tie.
type Greedy struct{}

func (Greedy) ID() string    { return "greedy" }
func (Greedy) Title() string { return "Avoid dead ends, maximize immediate score, then free cells" }
func (Greedy) Reset(int64)   {}

func (Greedy) Next(s engine.Snapshot) engine.Direction {
	best := cycleOrder[0]
	bestRisk, bestGain, bestFree := -1, -1, -1

	for _, dir := range cycleOrder {
		next, gained, changed := engine.Slide(s.Board, dir)
		if !changed {
			continue
		}
		empty := engine.EmptyCells(next)
		risk := deadSpawns(next, empty)
		free := len(empty)

		better := bestRisk < 0 ||
			risk < bestRisk ||
			(risk == bestRisk && gained > bestGain) ||
			(risk == bestRisk && gained == bestGain && free > bestFree)
		if better {
			best, bestRisk, bestGain, bestFree = dir, risk, gained, free
		}
	}
	return best
}

// deadSpawns counts the empty cells where a spawned 2 would leave m with
// no legal move.
func deadSpawns(m engine.Matrix, empty []engine.Cell) int {
	dead := 0
	for _, c := range empty {
		m[c.Row][c.Col] = 2
		if !engine.CanMove(m) {
			dead++
		}
		m[c.Row][c.Col] = 0
	}
	return dead
}
