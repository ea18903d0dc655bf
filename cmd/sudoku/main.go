package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/logger"
	"svw.info/sudokusolve/internal/ports"
	"svw.info/sudokusolve/internal/solver"
	"svw.info/sudokusolve/internal/textio"
)

type result struct {
	grid  domain.Grid
	stats ports.Stats
	err   error
}

func main() {
	input := flag.String("input", "", "puzzle file in Grid-header batch format; empty or '-' reads stdin")
	workers := flag.Int("workers", 1, "puzzles solved in parallel")
	engine := flag.String("solver", "cp", "solver to use: cp|backtrack")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(strings.ToLower(*levelStr))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	logger.Set(logger.Logger().Level(lvl))
	log := logger.Logger()

	var in io.Reader = os.Stdin
	if *input != "" && *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatal().Err(err).Str("input", *input).Msg("open puzzle file")
		}
		defer f.Close()
		in = f
	}

	puzzles, err := textio.ReadPuzzles(in)
	if err != nil {
		log.Fatal().Err(err).Msg("read puzzles")
	}
	if len(puzzles) == 0 {
		log.Fatal().Msg("no puzzles in input")
	}

	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*engine)) {
	case "backtrack", "backtracking":
		s = solver.NewBacktrackingSolver()
	default:
		s = solver.NewCPSolver()
	}
	log.Info().Int("puzzles", len(puzzles)).Int("workers", *workers).Str("solver", *engine).Msg("solving")

	// Each puzzle is independent, so they fan out across workers; a
	// failed puzzle is a per-puzzle result, not a reason to stop the
	// batch.
	results := make([]result, len(puzzles))
	var grp errgroup.Group
	grp.SetLimit(*workers)
	for i := range puzzles {
		i := i
		grp.Go(func() error {
			g, st, err := s.Solve(context.Background(), puzzles[i].Givens)
			results[i] = result{grid: g, stats: st, err: err}
			return nil
		})
	}
	_ = grp.Wait()

	failed := 0
	for i, p := range puzzles {
		if p.Name != "" {
			fmt.Println(p.Name)
		}
		res := results[i]
		switch {
		case errors.Is(res.err, domain.ErrInvalidInput):
			failed++
			fmt.Printf("invalid input: %v\n", res.err)
		case errors.Is(res.err, domain.ErrUnsolvable):
			failed++
			fmt.Println("no solution found")
		case res.err != nil:
			failed++
			fmt.Printf("error: %v\n", res.err)
		default:
			fmt.Print(textio.FormatGrid(res.grid))
			log.Debug().Int("puzzle", i).Int("nodes", res.stats.Nodes).Dur("dur", res.stats.Duration).Msg("solved")
		}
	}
	if failed > 0 {
		log.Error().Int("failed", failed).Int("total", len(puzzles)).Msg("some puzzles not solved")
		os.Exit(1)
	}
}
