package engine

// Board is the state of one game: the grid plus counters and flags.
// It holds no references, so a plain assignment yields an isolated copy.
type Board struct {
	grid      Grid
	score     int
	bestScore int
	moveCount int

	won       bool // Win value reached in this game
	continued bool // Player chose to keep playing past a win
	over      bool // Grid full with no legal move
	sameBoard bool // Last move attempt left every value unchanged
}

// newBoard returns a board of empty tiles.
func newBoard() Board {
	b := Board{sameBoard: true}
	b.clearGrid()
	return b
}

// clearGrid empties every cell.
func (b *Board) clearGrid() {
	for y := range BoardSize {
		for x := range BoardSize {
			b.grid[y][x] = EmptyTile()
		}
	}
}

// reset prepares the board for a new game. Best score survives.
func (b *Board) reset() {
	b.clearGrid()
	b.score = 0
	b.moveCount = 0
	b.won = false
	b.continued = false
	b.over = false
	b.sameBoard = true
}

// resolve runs the trial pass for dir: the geometric move, merges and
// score. Sets sameBoard and returns the score gained.
func (b *Board) resolve(dir Direction) (gained int, changed bool) {
	gained, changed = b.grid.shift(dir, true)
	b.sameBoard = !changed
	b.addScore(gained)
	return gained, changed
}

// addScore raises score and keeps bestScore as the running maximum.
func (b *Board) addScore(n int) {
	b.score += n
	if b.score > b.bestScore {
		b.bestScore = b.score
	}
}

// full reports whether no cell is empty.
func (b *Board) full() bool {
	return !HasEmptyCell(b.grid.Matrix())
}

// hasLegalMove probes every direction on a scratch copy of the board.
// Probes run in the order up, down, right, left and stop at the first
// one that changes the copy.
func (b *Board) hasLegalMove() bool {
	for _, dir := range Directions {
		probe := *b
		probe.resolve(dir)
		if !probe.grid.sameValues(b.grid) {
			return true
		}
	}
	return false
}
