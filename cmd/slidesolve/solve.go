package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kovaline/statesearch/search"
	"github.com/kovaline/statesearch/slidepuzzle"
)

var flagScenario Scenario

var solveCmd = &cobra.Command{
	Use:   "solve [SCENARIO.toml]",
	Short: "Scramble a board and race the strategies on it",
	Args:  cobra.MaximumNArgs(1),
	Run:   solveCommand,
}

func init() {
	solveCmd.Flags().IntVar(&flagScenario.Rows, "rows", 3, "Board rows")
	solveCmd.Flags().IntVar(&flagScenario.Cols, "cols", 3, "Board columns")
	solveCmd.Flags().IntVar(&flagScenario.Depth, "depth", 8, "Scramble depth in moves")
	solveCmd.Flags().IntVar(&flagScenario.Trials, "trials", 1, "Number of scrambled boards to average over")
	solveCmd.Flags().Int64Var(&flagScenario.Seed, "seed", 0, "Scramble RNG seed (0 means time-seeded)")
	solveCmd.Flags().DurationVar(&flagScenario.Timeout.Duration, "timeout", 30*time.Second, "Per-strategy wall-clock budget")
	solveCmd.Flags().StringSliceVar(&flagScenario.Strategies, "strategies", allStrategies, "Strategies to run (bfs, dfs, dls, ids, astar)")
}

// runner invokes one strategy; bound is the scramble depth, which serves as
// the limit for the depth-bounded strategies.
type runner func(p *slidepuzzle.Puzzle, bound int, opts ...search.Option[string]) (*search.Result[slidepuzzle.Move], error)

var runners = map[string]runner{
	"bfs": func(p *slidepuzzle.Puzzle, _ int, opts ...search.Option[string]) (*search.Result[slidepuzzle.Move], error) {
		return search.BreadthFirst[string, slidepuzzle.Move](p, opts...)
	},
	"dfs": func(p *slidepuzzle.Puzzle, _ int, opts ...search.Option[string]) (*search.Result[slidepuzzle.Move], error) {
		return search.DepthFirst[string, slidepuzzle.Move](p, opts...)
	},
	"dls": func(p *slidepuzzle.Puzzle, bound int, opts ...search.Option[string]) (*search.Result[slidepuzzle.Move], error) {
		return search.DepthLimited[string, slidepuzzle.Move](p, bound, opts...)
	},
	"ids": func(p *slidepuzzle.Puzzle, bound int, opts ...search.Option[string]) (*search.Result[slidepuzzle.Move], error) {
		return search.IterativeDeepening[string, slidepuzzle.Move](p, bound, opts...)
	},
	"astar": func(p *slidepuzzle.Puzzle, _ int, opts ...search.Option[string]) (*search.Result[slidepuzzle.Move], error) {
		return search.AStar[string, slidepuzzle.Move](p, p.Manhattan(), opts...)
	},
}

// tally accumulates per-strategy totals across trials.
type tally struct {
	elapsed  time.Duration
	expanded int
	fringe   int
	cost     float64
	solved   int
	timedOut int
	moves    string
}

func solveCommand(cmd *cobra.Command, args []string) {
	sc := &flagScenario
	if len(args) == 1 {
		loaded, err := loadScenario(args[0])
		if err != nil {
			log.Fatal().Err(err).Msg("Couldn't load scenario file")
		}
		if err = loaded.merge(flagScenario); err != nil {
			log.Fatal().Err(err).Msg("Invalid scenario")
		}
		sc = loaded
	} else if err := sc.merge(flagScenario); err != nil {
		log.Fatal().Err(err).Msg("Invalid scenario")
	}

	seed := sc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Info().
		Int("rows", sc.Rows).Int("cols", sc.Cols).
		Int("depth", sc.Depth).Int("trials", sc.Trials).
		Int64("seed", seed).
		Msg("Scrambling boards")

	p, err := slidepuzzle.New(sc.Rows, sc.Cols, slidepuzzle.WithRand(rng))
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't build puzzle")
	}
	starts, err := p.Scramble(sc.Depth, sc.Trials)
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't scramble to requested depth")
	}

	tallies := make(map[string]*tally, len(sc.Strategies))
	for _, name := range sc.Strategies {
		tallies[name] = &tally{}
	}

	for trial, start := range starts {
		log.Debug().Int("trial", trial).Str("start", start).Msg("Solving board")
		for _, name := range sc.Strategies {
			if err := p.SetState(start); err != nil {
				log.Fatal().Err(err).Msg("Couldn't reset board")
			}

			ctx, cancel := context.WithTimeout(context.Background(), sc.Timeout.Duration)
			opts := []search.Option[string]{search.WithContext[string](ctx)}
			if zerolog.GlobalLevel() <= zerolog.TraceLevel {
				strategy := name
				opts = append(opts, search.WithOnExpand[string](func(state string, depth int) {
					log.Trace().Str("strategy", strategy).Int("depth", depth).Str("state", state).Msg("Expanding")
				}))
			}

			began := time.Now()
			res, err := runners[name](p, sc.Depth, opts...)
			elapsed := time.Since(began)
			cancel()

			t := tallies[name]
			t.elapsed += elapsed
			switch {
			case errors.Is(err, context.DeadlineExceeded):
				t.timedOut++
				log.Warn().Str("strategy", name).Dur("budget", sc.Timeout.Duration).Msg("Strategy timed out")
				continue
			case err != nil:
				log.Fatal().Err(err).Str("strategy", name).Msg("Strategy failed")
			}

			t.expanded += res.Metrics.Expanded
			if res.Metrics.PeakFringe > t.fringe {
				t.fringe = res.Metrics.PeakFringe
			}
			if res.Solved() {
				t.solved++
				t.cost += res.Cost
				t.moves = moveString(res.Path)
			}
		}
	}

	report(sc, tallies)
}

// moveString renders a path as compass letters, e.g. "WNES".
func moveString(path []slidepuzzle.Move) string {
	var b strings.Builder
	for _, m := range path {
		b.WriteString(m.String())
	}

	return b.String()
}

// report prints one averaged row per strategy.
func report(sc *Scenario, tallies map[string]*tally) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STRATEGY\tSOLVED\tAVG TIME\tAVG EXPANDED\tPEAK FRINGE\tAVG COST\tLAST PATH")
	for _, name := range sc.Strategies {
		t := tallies[name]
		trials := sc.Trials
		cost := "-"
		if t.solved > 0 {
			cost = fmt.Sprintf("%.1f", t.cost/float64(t.solved))
		}
		path := t.moves
		if path == "" {
			path = "-"
		}
		fmt.Fprintf(w, "%s\t%d/%d\t%s\t%d\t%d\t%s\t%s\n",
			name,
			t.solved, trials,
			(t.elapsed / time.Duration(trials)).Round(time.Microsecond),
			t.expanded/trials,
			t.fringe,
			cost,
			path,
		)
	}
	if err := w.Flush(); err != nil {
		log.Error().Err(err).Msg("Couldn't flush report")
	}
}
