// Package engine implements the rules of the 2048 sliding-tile puzzle:
// line compaction and merging, random tile spawning, win and game-over
// detection, and typed change notifications for presentation layers.
// It performs no I/O and holds no package-level game state.
package engine

// Tile is a single board cell.
// Tiles are values: a merge or spawn produces a new Tile rather than
// mutating an existing one.
type Tile struct {
	Value         int // 0 means empty
	CreatedOnMove int // Move index the tile was placed on, -1 if never stamped
}

// EmptyTile returns an empty tile with no provenance.
func EmptyTile() Tile {
	return Tile{Value: 0, CreatedOnMove: -1}
}

// NewTile returns a tile holding v with no provenance.
func NewTile(v int) Tile {
	return Tile{Value: v, CreatedOnMove: -1}
}

// IsEmpty reports whether the tile holds no value.
func (t Tile) IsEmpty() bool {
	return t.Value == 0
}

// validTileValue reports whether v may appear on a board.
func validTileValue(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}
