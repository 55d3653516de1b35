package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in game-over probe order.
var Directions = [...]Direction{DirUp, DirDown, DirRight, DirLeft}

var (
	// ErrInvalidDirection is returned for a direction outside the four moves.
	ErrInvalidDirection = errors.New("engine: invalid direction")

	// ErrInvalidTile is returned when a loaded board holds a value that is
	// neither 0 nor a power of two >= 2.
	ErrInvalidTile = errors.New("engine: invalid tile value")
)

// String returns the canonical event name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four moves.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// ParseDirection converts a direction name into a Direction.
// Accepts full names and the first letter, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
