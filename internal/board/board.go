// Package board holds the constraint representation of a Sudoku grid:
// each cell is either committed to a digit or carries the set of digits
// still possible for it. Committing a cell eliminates its digit from
// every peer's candidate set immediately, so the sets are always
// current and never re-derived.
package board

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"svw.info/sudokusolve/internal/domain"
)

// cell is committed once value is nonzero; until then cands tracks the
// digits still possible. cands is dropped on commit and is never nil
// while value is 0.
type cell struct {
	value uint8
	cands *bitset.BitSet
}

func newCell() cell {
	c := cell{cands: bitset.New(10)}
	for v := uint(1); v <= 9; v++ {
		c.cands.Set(v)
	}
	return c
}

// Board owns all 81 cells. It is not safe for sharing: search branches
// must work on a Clone.
type Board struct {
	cells   [81]cell
	unknown int
}

func idx(r, c int) int { return r*9 + c }

// New builds a board from a grid of givens, committing each one with
// immediate peer elimination. It fails with domain.ErrInvalidInput on an
// out-of-range digit or when two givens repeat a value within a row,
// column, or box. A peer candidate set emptied by the givens is not an
// input error; the solver observes it through Contradiction.
func New(g domain.Grid) (*Board, error) {
	b := &Board{unknown: 81}
	for i := range b.cells {
		b.cells[i] = newCell()
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			if v > 9 {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %d, want 1-9", domain.ErrInvalidInput, r, c, v)
			}
			if !b.cells[idx(r, c)].cands.Test(uint(v)) {
				return nil, fmt.Errorf("%w: %d at (%d,%d) repeats a given in its row, column, or box", domain.ErrInvalidInput, v, r, c)
			}
			b.SetKnown(r, c, v)
		}
	}
	return b, nil
}

// SetKnown commits the cell at (r, c) to v and removes v from the
// candidate set of every undecided peer. The cell must be undecided and
// v must be one of its candidates; a violation is a caller bug, not a
// search outcome, and panics.
func (b *Board) SetKnown(r, c int, v uint8) {
	cl := &b.cells[idx(r, c)]
	if cl.value != 0 {
		panic(fmt.Sprintf("board: SetKnown(%d,%d): cell already committed to %d", r, c, cl.value))
	}
	if !cl.cands.Test(uint(v)) {
		panic(fmt.Sprintf("board: SetKnown(%d,%d): %d is not a candidate", r, c, v))
	}
	cl.value = v
	cl.cands = nil
	b.unknown--

	for i := 0; i < 9; i++ {
		b.eliminate(r, i, v)
		b.eliminate(i, c, v)
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			b.eliminate(br+dr, bc+dc, v)
		}
	}
}

// eliminate drops v from an undecided cell's candidates. An emptied set
// is left in place; the board does not self-repair.
func (b *Board) eliminate(r, c int, v uint8) {
	cl := &b.cells[idx(r, c)]
	if cl.value != 0 {
		return
	}
	cl.cands.Clear(uint(v))
}

// FindForced returns the first undecided cell, in row-major order, whose
// candidate set has exactly one member, along with that sole candidate.
func (b *Board) FindForced() (domain.CellCoord, uint8, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cl := &b.cells[idx(r, c)]
			if cl.value != 0 || cl.cands.Count() != 1 {
				continue
			}
			v, _ := cl.cands.NextSet(1)
			return domain.CellCoord{Row: r, Col: c}, uint8(v), true
		}
	}
	return domain.CellCoord{}, 0, false
}

// Contradiction reports whether any undecided cell has run out of
// candidates, meaning the current branch cannot be completed.
func (b *Board) Contradiction() bool {
	for i := range b.cells {
		if b.cells[i].value == 0 && b.cells[i].cands.None() {
			return true
		}
	}
	return false
}

// Solved reports whether every cell is committed.
func (b *Board) Solved() bool { return b.unknown == 0 }

// MinCandidates returns the undecided cell with the fewest candidates,
// ties broken by row-major order. ok is false on a fully committed
// board.
func (b *Board) MinCandidates() (pos domain.CellCoord, ok bool) {
	best := uint(10)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cl := &b.cells[idx(r, c)]
			if cl.value != 0 {
				continue
			}
			if n := cl.cands.Count(); n < best {
				pos, best, ok = domain.CellCoord{Row: r, Col: c}, n, true
			}
		}
	}
	return pos, ok
}

// Candidates returns the remaining candidates of an undecided cell in
// ascending order, or nil for a committed cell.
func (b *Board) Candidates(r, c int) []uint8 {
	cl := &b.cells[idx(r, c)]
	if cl.value != 0 {
		return nil
	}
	out := make([]uint8, 0, cl.cands.Count())
	for v, ok := cl.cands.NextSet(1); ok; v, ok = cl.cands.NextSet(v + 1) {
		out = append(out, uint8(v))
	}
	return out
}

// Value returns the committed digit at (r, c), or 0 while undecided.
func (b *Board) Value(r, c int) uint8 { return b.cells[idx(r, c)].value }

// Clone deep-copies the board, candidate sets included. Search branches
// mutate only their clone.
func (b *Board) Clone() *Board {
	nb := &Board{unknown: b.unknown}
	for i := range b.cells {
		nb.cells[i].value = b.cells[i].value
		if b.cells[i].cands != nil {
			nb.cells[i].cands = b.cells[i].cands.Clone()
		}
	}
	return nb
}

// Grid exports the committed values, 0 for undecided cells.
func (b *Board) Grid() domain.Grid {
	var g domain.Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g[r][c] = b.cells[idx(r, c)].value
		}
	}
	return g
}
