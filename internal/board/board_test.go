package board

import (
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudokusolve/internal/domain"
)

func TestNewEmptyGrid(t *testing.T) {
	b, err := New(domain.Grid{})
	require.NoError(t, err)
	require.False(t, b.Solved())
	require.False(t, b.Contradiction())
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			require.Len(t, b.Candidates(r, c), 9)
		}
	}
}

func TestNewPropagatesGivens(t *testing.T) {
	var g domain.Grid
	g[0][0] = 5
	b, err := New(g)
	require.NoError(t, err)

	require.Equal(t, uint8(5), b.Value(0, 0))
	require.Nil(t, b.Candidates(0, 0))
	// row, column, and box peers all lose 5
	require.NotContains(t, b.Candidates(0, 8), uint8(5))
	require.NotContains(t, b.Candidates(8, 0), uint8(5))
	require.NotContains(t, b.Candidates(2, 2), uint8(5))
	// a cell sharing nothing with (0,0) keeps all nine
	require.Len(t, b.Candidates(4, 4), 9)
}

func TestNewRejectsOutOfRange(t *testing.T) {
	var g domain.Grid
	g[3][3] = 10
	_, err := New(g)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewRejectsConflictingGivens(t *testing.T) {
	cases := []struct {
		name  string
		a, b  domain.CellCoord
		value uint8
	}{
		{"row", domain.CellCoord{Row: 0, Col: 0}, domain.CellCoord{Row: 0, Col: 5}, 5},
		{"col", domain.CellCoord{Row: 1, Col: 2}, domain.CellCoord{Row: 7, Col: 2}, 3},
		{"box", domain.CellCoord{Row: 3, Col: 3}, domain.CellCoord{Row: 5, Col: 5}, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var g domain.Grid
			g[tc.a.Row][tc.a.Col] = tc.value
			g[tc.b.Row][tc.b.Col] = tc.value
			_, err := New(g)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestFindForcedRowMajor(t *testing.T) {
	// Row 0 forces (0,8)=9, column 0 forces (8,0)=9; row-major scan must
	// report (0,8) first.
	var g domain.Grid
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1)
	}
	for i, v := range []uint8{4, 7, 2, 3, 5, 6, 8} {
		g[i+1][0] = v
	}
	b, err := New(g)
	require.NoError(t, err)

	pos, v, ok := b.FindForced()
	require.True(t, ok)
	require.Equal(t, domain.CellCoord{Row: 0, Col: 8}, pos)
	require.Equal(t, uint8(9), v)

	b.SetKnown(pos.Row, pos.Col, v)
	pos, v, ok = b.FindForced()
	require.True(t, ok)
	require.Equal(t, domain.CellCoord{Row: 8, Col: 0}, pos)
	require.Equal(t, uint8(9), v)
}

func TestFindForcedNoneAtFixpoint(t *testing.T) {
	b, err := New(domain.Grid{})
	require.NoError(t, err)
	_, _, ok := b.FindForced()
	require.False(t, ok)
}

func TestContradictionFromEmptiedPeer(t *testing.T) {
	// (0,8) loses 1-8 to its row and 9 to its column: construction
	// succeeds (no given conflicts directly) but the board is dead.
	var g domain.Grid
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1)
	}
	g[1][8] = 9
	b, err := New(g)
	require.NoError(t, err)
	require.True(t, b.Contradiction())
	require.Empty(t, b.Candidates(0, 8))
}

func TestSetKnownContractViolations(t *testing.T) {
	var g domain.Grid
	g[0][0] = 5
	b, err := New(g)
	require.NoError(t, err)

	require.Panics(t, func() { b.SetKnown(0, 0, 5) }) // already committed
	require.Panics(t, func() { b.SetKnown(0, 1, 5) }) // 5 eliminated by (0,0)
}

func TestMinCandidatesTieBreak(t *testing.T) {
	// (0,7) and (0,8) are both down to {8,9}; row-major order picks (0,7).
	var g domain.Grid
	for c := 0; c < 7; c++ {
		g[0][c] = uint8(c + 1)
	}
	b, err := New(g)
	require.NoError(t, err)

	pos, ok := b.MinCandidates()
	require.True(t, ok)
	require.Equal(t, domain.CellCoord{Row: 0, Col: 7}, pos)
	require.Equal(t, []uint8{8, 9}, b.Candidates(0, 7))
}

func TestCloneIsIndependent(t *testing.T) {
	b, err := New(domain.Grid{})
	require.NoError(t, err)

	clone := b.Clone()
	clone.SetKnown(4, 4, 7)

	require.Equal(t, uint8(0), b.Value(4, 4))
	require.Len(t, b.Candidates(4, 4), 9)
	require.Contains(t, b.Candidates(4, 8), uint8(7))
	require.NotContains(t, clone.Candidates(4, 8), uint8(7))
}

func TestGridExport(t *testing.T) {
	var g domain.Grid
	g[2][3] = 4
	g[8][8] = 1
	b, err := New(g)
	require.NoError(t, err)
	require.Equal(t, g, b.Grid())
}
