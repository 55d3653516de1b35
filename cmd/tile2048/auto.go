package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/engine"
	"github.com/vovakirdan/tile2048/internal/strategy"
)

var (
	flagStrategy   string
	flagGames      int
	flagMaxMoves   int
	flagContinue   bool
	flagAutoFormat string
)

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Let a strategy play",
	Long: `Run one or more games with an auto-play strategy and print the results.

Each game uses seed+N, so a run with a fixed --seed is reproducible.

Examples:
  tile2048 auto
  tile2048 auto --strategy random --games 20 --seed 7
  tile2048 auto --strategy greedy --continue --format yaml`,
	Run: runAuto,
}

func init() {
	autoCmd.Flags().StringVar(&flagStrategy, "strategy", "greedy", "Strategy ID (see 'tile2048 list')")
	autoCmd.Flags().IntVar(&flagGames, "games", 1, "Number of games to play")
	autoCmd.Flags().IntVar(&flagMaxMoves, "max-moves", 0, "Stop each game after this many moves (0 = no limit)")
	autoCmd.Flags().BoolVar(&flagContinue, "continue", false, "Keep playing after reaching the win tile")
	autoCmd.Flags().StringVar(&flagAutoFormat, "format", "text", "Output format: text, yaml")
}

func runAuto(cmd *cobra.Command, _ []string) {
	if !strategy.Exists(flagStrategy) {
		fmt.Fprintf(os.Stderr, "Error: unknown strategy %q\n", flagStrategy)
		fmt.Fprintln(os.Stderr, "Run 'tile2048 list' to see available strategies.")
		os.Exit(1)
	}
	if flagAutoFormat != "text" && flagAutoFormat != "yaml" {
		fail(fmt.Errorf("unknown format %q", flagAutoFormat))
	}

	logger, err := newLogger()
	if err != nil {
		fail(err)
	}
	cfg, err := loadEngineConfig(logger)
	if err != nil {
		fail(err)
	}

	baseSeed := cfg.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	results, err := playGames(ctx, cfg, baseSeed, logger)
	if err != nil {
		fail(err)
	}

	if flagAutoFormat == "yaml" {
		out, err := yaml.Marshal(results)
		if err != nil {
			fail(err)
		}
		fmt.Print(string(out))
		return
	}

	printResults(results)
}

// playGames runs flagGames games with flagStrategy, seeding game N with
// baseSeed+N. An interrupt stops the run and keeps the finished results.
func playGames(ctx context.Context, cfg config.EngineConfig, baseSeed int64, logger *log.Logger) ([]strategy.Result, error) {
	results := make([]strategy.Result, 0, flagGames)
	for i := range flagGames {
		seed := baseSeed + int64(i)
		s, err := strategy.Create(flagStrategy)
		if err != nil {
			return results, err
		}

		g := engine.New(engine.WithConfig(cfg), engine.WithSeed(seed), engine.WithLogger(logger))

		var drained <-chan struct{}
		var events *engine.ChannelObserver
		if logger.GetLevel() <= log.DebugLevel {
			events = engine.NewChannelObserver(256)
			g.Subscribe(events)
			drained = logEvents(events, logger.With("game", i+1))
		}

		res, err := strategy.Play(ctx, g, s, strategy.Options{
			MaxMoves:     flagMaxMoves,
			AutoContinue: flagContinue,
			Seed:         seed,
			Logger:       logger,
		})

		if events != nil {
			events.Close()
			<-drained
		}

		if err != nil {
			if errors.Is(err, context.Canceled) {
				logger.Warn("interrupted", "games", len(results))
				return results, nil
			}
			return results, err
		}
		results = append(results, res)
		logger.Info("game finished", "game", i+1, "seed", seed, "score", res.Score, "max", res.MaxTile)
	}
	return results, nil
}

// logEvents consumes game events on its own goroutine and logs them at
// debug level. The returned channel closes once obs is closed and every
// buffered event has been logged.
func logEvents(obs *engine.ChannelObserver, logger *log.Logger) <-chan struct{} {
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for {
			select {
			case evt := <-obs.Events():
				logEvent(logger, evt)
			case <-obs.Done():
				for {
					select {
					case evt := <-obs.Events():
						logEvent(logger, evt)
					default:
						return
					}
				}
			}
		}
	}()
	return finished
}

func logEvent(logger *log.Logger, evt engine.Event) {
	kv := []interface{}{"kind", string(evt.Kind())}
	switch e := evt.(type) {
	case engine.MoveEvent:
		kv = append(kv, "phase", e.Phase.String(), "gained", e.Gained, "score", e.Snapshot.Score)
	case engine.ScoreEvent:
		kv = append(kv, "score", e.Score, "best", e.BestScore)
	case engine.WonEvent:
		kv = append(kv, "value", e.Value)
	case engine.NewGameEvent:
		kv = append(kv, "correlation", e.Correlation.String())
	}
	logger.Debug("game event", kv...)
}

func printResults(results []strategy.Result) {
	if len(results) == 0 {
		fmt.Println("No games finished.")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "#", "Score", "Moves", "Max", "Result")
	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "-", "-----", "-----", "---", "------")

	best, total := 0, 0
	for i, r := range results {
		fmt.Printf("  %-4d  %-8d  %-6d  %-8d  %s\n", i+1, r.Score, r.Moves, r.MaxTile, r.Stop)
		total += r.Score
		if r.Score > best {
			best = r.Score
		}
	}

	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Average: %d\n", len(results), best, total/len(results))
}
