package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tile2048/internal/engine"
)

// commandKind is a parsed line of play input.
type commandKind int

const (
	cmdMove commandKind = iota
	cmdNew
	cmdContinue
	cmdQuit
)

type command struct {
	kind commandKind
	dir  engine.Direction
}

// wasdKeys maps WASD letters when --keys wasd is set.
var wasdKeys = map[string]engine.Direction{
	"w": engine.DirUp,
	"a": engine.DirLeft,
	"s": engine.DirDown,
	"d": engine.DirRight,
}

// parseCommand interprets a single token. Direction names are always
// accepted; single letters follow the chosen key map.
func parseCommand(token, keys string) (command, error) {
	token = strings.ToLower(strings.TrimSpace(token))

	switch token {
	case "new", "n":
		return command{kind: cmdNew}, nil
	case "continue", "c":
		return command{kind: cmdContinue}, nil
	case "quit", "q", "exit":
		return command{kind: cmdQuit}, nil
	}

	if keys == "wasd" {
		if dir, ok := wasdKeys[token]; ok {
			return command{kind: cmdMove, dir: dir}, nil
		}
		if len(token) == 1 {
			return command{}, fmt.Errorf("unknown key %q", token)
		}
	}

	dir, err := engine.ParseDirection(token)
	if err != nil {
		return command{}, err
	}
	return command{kind: cmdMove, dir: dir}, nil
}

// parseBoard reads rows separated by '/' with comma separated values,
// e.g. "2,2,0,0/0,0,0,0/0,0,0,0/0,0,0,4". Missing trailing rows and
// cells are empty.
func parseBoard(s string) (engine.Matrix, error) {
	var m engine.Matrix

	rows := strings.Split(strings.TrimSpace(s), "/")
	if len(rows) > engine.BoardSize {
		return m, fmt.Errorf("board has %d rows, want at most %d", len(rows), engine.BoardSize)
	}

	for y, row := range rows {
		if strings.TrimSpace(row) == "" {
			continue
		}
		cells := strings.Split(row, ",")
		if len(cells) > engine.BoardSize {
			return m, fmt.Errorf("row %d has %d cells, want at most %d", y, len(cells), engine.BoardSize)
		}
		for x, cell := range cells {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return m, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			m[y][x] = v
		}
	}
	return m, nil
}
