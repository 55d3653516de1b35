package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tile2048/internal/engine"
)

var (
	flagBoard      string
	flagKeys       string
	flagPlayFormat string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game from stdin",
	Long: `Play 2048 by typing commands, one or more per line.

Commands:
  up/down/left/right  - Move (u/d/l/r, or w/a/s/d with --keys wasd)
  new                 - Start a new game (best score is kept)
  continue            - Keep playing after reaching the win tile
  quit                - Stop and print the summary

When stdin is a terminal the board is printed after every move.
Otherwise commands are applied quietly and only the summary is printed.

Examples:
  tile2048 play
  tile2048 play --keys wasd
  echo "l u l u" | tile2048 play --seed 1
  tile2048 play --board "2,2,0,0/0,0,0,0/0,0,0,0/0,0,0,0" --format yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBoard, "board", "", "Initial board, rows separated by '/', values by ','")
	playCmd.Flags().StringVar(&flagKeys, "keys", "letters", "Single letter key map: letters (u/d/l/r), wasd")
	playCmd.Flags().StringVar(&flagPlayFormat, "format", "text", "Summary format: text, yaml")
}

// summary is the final report printed by play.
type summary struct {
	Score     int           `yaml:"score"`
	BestScore int           `yaml:"best_score"`
	Moves     int           `yaml:"moves"`
	MaxTile   int           `yaml:"max_tile"`
	State     string        `yaml:"state"`
	Board     engine.Matrix `yaml:"board"`
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagKeys != "letters" && flagKeys != "wasd" {
		fail(fmt.Errorf("unknown key map %q", flagKeys))
	}
	if flagPlayFormat != "text" && flagPlayFormat != "yaml" {
		fail(fmt.Errorf("unknown format %q", flagPlayFormat))
	}

	logger, err := newLogger()
	if err != nil {
		fail(err)
	}
	cfg, err := loadEngineConfig(logger)
	if err != nil {
		fail(err)
	}

	g := engine.New(engine.WithConfig(cfg), engine.WithLogger(logger))

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		g.Subscribe(&boardPrinter{out: os.Stdout})
	}

	g.NewGame()
	if flagBoard != "" {
		m, err := parseBoard(flagBoard)
		if err != nil {
			fail(fmt.Errorf("--board: %w", err))
		}
		if err := g.Load(m); err != nil {
			fail(fmt.Errorf("--board: %w", err))
		}
	}

	if interactive {
		fmt.Print(g.Grid())
		fmt.Println()
	}

	if err := playInput(g, os.Stdin, flagKeys, logger.Warn); err != nil {
		fail(err)
	}

	s := g.Snapshot()
	report := summary{
		Score:     s.Score,
		BestScore: s.BestScore,
		Moves:     s.MoveCount,
		MaxTile:   s.MaxTile,
		State:     string(s.State),
		Board:     s.Board,
	}

	if flagPlayFormat == "yaml" {
		out, err := yaml.Marshal(report)
		if err != nil {
			fail(err)
		}
		fmt.Print(string(out))
		return
	}

	fmt.Printf("Score: %d  Best: %d  Moves: %d  Max: %d  State: %s\n",
		report.Score, report.BestScore, report.Moves, report.MaxTile, report.State)
	fmt.Print(s.Board)
}

// playInput applies whitespace separated commands from r until EOF or quit.
// Unknown commands are reported through warn and skipped.
func playInput(g *engine.Game, r io.Reader, keys string, warn func(msg interface{}, keyvals ...interface{})) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		for _, token := range strings.Fields(scanner.Text()) {
			c, err := parseCommand(token, keys)
			if err != nil {
				warn("ignoring input", "token", token, "error", err)
				continue
			}

			switch c.kind {
			case cmdQuit:
				return nil
			case cmdNew:
				g.NewGame()
			case cmdContinue:
				if g.Snapshot().State == engine.StateWon {
					g.ContinueGame()
				}
			case cmdMove:
				if err := g.Move(c.dir); err != nil {
					return err
				}
			}
		}
	}
	return scanner.Err()
}

// boardPrinter redraws the board whenever a move settles.
type boardPrinter struct {
	out io.Writer
}

func (p *boardPrinter) Notify(evt engine.Event) {
	switch e := evt.(type) {
	case engine.MoveEvent:
		if e.Phase == engine.PhaseNoOp {
			fmt.Fprintf(p.out, "%s: nothing moved\n", e.Direction)
			return
		}
		if e.Phase != engine.PhaseSettled {
			return
		}
		fmt.Fprintf(p.out, "%s  score %d  best %d\n", e.Direction, e.Snapshot.Score, e.Snapshot.BestScore)
		fmt.Fprintln(p.out, e.Snapshot.Board)
	case engine.NewGameEvent:
		fmt.Fprintf(p.out, "new game %s\n", e.Correlation)
	case engine.WonEvent:
		fmt.Fprintf(p.out, "You reached %d! Type 'continue' to keep playing or 'new' to restart.\n", e.Value)
	case engine.GameOverEvent:
		fmt.Fprintln(p.out, "Game over. Type 'new' to restart or 'quit' to exit.")
	}
}
