package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudokusolve/internal/board"
	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/ports"
)

// CPSolver solves by naked-single propagation to a fixpoint, falling
// back to depth-first search over the cell with the fewest candidates.
type CPSolver struct{}

func NewCPSolver() *CPSolver { return &CPSolver{} }

func (s *CPSolver) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	b, err := board.New(g)
	if err != nil {
		return domain.Grid{}, ports.Stats{Duration: time.Since(start)}, err
	}
	nodes := 0
	solved, err := search(ctx, b, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return domain.Grid{}, st, err
	}
	return solved.Grid(), st, nil
}

// search drives one board to a solution: commit forced cells until none
// remain, then guess on the fewest-candidate cell, recursing on a clone
// per candidate in ascending order. A failed guess surfaces as
// ErrUnsolvable and the next candidate is tried; only exhaustion of the
// chosen cell propagates the error up a frame.
func search(ctx context.Context, b *board.Board, nodes *int) (*board.Board, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if b.Contradiction() {
			return nil, domain.ErrUnsolvable
		}
		pos, v, ok := b.FindForced()
		if !ok {
			break
		}
		*nodes++
		b.SetKnown(pos.Row, pos.Col, v)
	}
	if b.Solved() {
		return b, nil
	}
	pos, _ := b.MinCandidates()
	for _, v := range b.Candidates(pos.Row, pos.Col) {
		*nodes++
		guess := b.Clone()
		guess.SetKnown(pos.Row, pos.Col, v)
		solved, err := search(ctx, guess, nodes)
		if err == nil {
			return solved, nil
		}
		if !errors.Is(err, domain.ErrUnsolvable) {
			return nil, err
		}
	}
	return nil, domain.ErrUnsolvable
}
