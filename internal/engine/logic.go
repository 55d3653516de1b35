package engine

import (
	"strconv"
	"strings"
)

// BoardSize is the board dimension.
const BoardSize = 4

// Grid is the 4x4 tile grid, row-major.
type Grid [BoardSize][BoardSize]Tile

// Matrix is the integer view of a grid, row-major.
type Matrix [BoardSize][BoardSize]int

// Cell addresses a grid position.
type Cell struct {
	Row, Col int
}

// line holds one row or column ordered from the wall tiles travel toward.
type line [BoardSize]Tile

// lineCells returns the positions of line i for dir, nearest wall first.
func lineCells(dir Direction, i int) [BoardSize]Cell {
	var cells [BoardSize]Cell
	for j := range BoardSize {
		switch dir {
		case DirLeft:
			cells[j] = Cell{Row: i, Col: j}
		case DirRight:
			cells[j] = Cell{Row: i, Col: BoardSize - 1 - j}
		case DirUp:
			cells[j] = Cell{Row: j, Col: i}
		case DirDown:
			cells[j] = Cell{Row: BoardSize - 1 - j, Col: i}
		}
	}
	return cells
}

// compact moves non-empty tiles toward the wall, keeping their order.
// Returns the packed tiles and how many there are.
func compact(in line) (packed line, n int) {
	for _, t := range in {
		if !t.IsEmpty() {
			packed[n] = t
			n++
		}
	}
	for i := n; i < BoardSize; i++ {
		packed[i] = EmptyTile()
	}
	return packed, n
}

// slideLine compacts, merges and pads a single line.
// Each tile takes part in at most one merge. Returns the score gained.
func slideLine(in line) (out line, gained int) {
	packed, n := compact(in)

	w := 0
	for i := 0; i < n; i++ {
		if i+1 < n && packed[i].Value == packed[i+1].Value {
			v := packed[i].Value * 2
			out[w] = NewTile(v)
			gained += v
			w++
			i++ // skip the partner
			continue
		}
		out[w] = packed[i]
		w++
	}

	for ; w < BoardSize; w++ {
		out[w] = EmptyTile()
	}
	return out, gained
}

// shift runs the resolver over every line of the grid.
// With merge false only compaction is applied. Returns the score gained
// and whether any cell value changed.
func (g *Grid) shift(dir Direction, merge bool) (gained int, changed bool) {
	for i := range BoardSize {
		cells := lineCells(dir, i)

		var before line
		for j, c := range cells {
			before[j] = g[c.Row][c.Col]
		}

		var after line
		if merge {
			var score int
			after, score = slideLine(before)
			gained += score
		} else {
			after, _ = compact(before)
		}

		for j, c := range cells {
			g[c.Row][c.Col] = after[j]
			if before[j].Value != after[j].Value {
				changed = true
			}
		}
	}
	return gained, changed
}

// Matrix returns the integer view of the grid.
func (g Grid) Matrix() Matrix {
	var m Matrix
	for y := range BoardSize {
		for x := range BoardSize {
			m[y][x] = g[y][x].Value
		}
	}
	return m
}

// sameValues reports whether two grids hold identical values cell by cell.
func (g Grid) sameValues(other Grid) bool {
	return g.Matrix() == other.Matrix()
}

// gridFromMatrix wraps every value in an unstamped tile.
func gridFromMatrix(m Matrix) Grid {
	var g Grid
	for y := range BoardSize {
		for x := range BoardSize {
			g[y][x] = NewTile(m[y][x])
		}
	}
	return g
}

// Slide performs a move on a bare matrix with the same resolver used by Game.
// Returns the new matrix, score gained, and whether the board changed.
func Slide(m Matrix, dir Direction) (Matrix, int, bool) {
	if !dir.Valid() {
		return m, 0, false
	}
	g := gridFromMatrix(m)
	gained, changed := g.shift(dir, true)
	return g.Matrix(), gained, changed
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(m Matrix) []Cell {
	var cells []Cell
	for y := range BoardSize {
		for x := range BoardSize {
			if m[y][x] == 0 {
				cells = append(cells, Cell{Row: y, Col: x})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(m Matrix) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			if m[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any adjacent tiles can merge.
func HasPossibleMerge(m Matrix) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := m[y][x]
			if val == 0 {
				continue
			}
			if x < BoardSize-1 && m[y][x+1] == val {
				return true
			}
			if y < BoardSize-1 && m[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(m Matrix) bool {
	return HasEmptyCell(m) || HasPossibleMerge(m)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(m Matrix) int {
	maxVal := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if m[y][x] > maxVal {
				maxVal = m[y][x]
			}
		}
	}
	return maxVal
}

// String renders the matrix as tab-separated rows.
func (m Matrix) String() string {
	var sb strings.Builder
	for y := range BoardSize {
		for x := range BoardSize {
			if x > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(strconv.Itoa(m[y][x]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
