package solver

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/validator"
)

func gridFromRows(t *testing.T, rows [9]string) domain.Grid {
	t.Helper()
	var g domain.Grid
	for r, row := range rows {
		require.Len(t, row, 9)
		for c := 0; c < 9; c++ {
			g[r][c] = row[c] - '0'
		}
	}
	return g
}

// The reference puzzle and its unique solution.
var (
	refRows = [9]string{
		"120005004",
		"600810500",
		"800060193",
		"403070250",
		"910000830",
		"700200941",
		"078109005",
		"094000000",
		"060080420",
	}
	refSolvedRows = [9]string{
		"127395684",
		"639814572",
		"845762193",
		"483971256",
		"912456837",
		"756238941",
		"278149365",
		"594623718",
		"361587429",
	}
)

// unsolvableGrid has no directly conflicting givens, but (0,8) cannot
// hold anything: 1-8 are taken by its row and 9 by its column.
func unsolvableGrid() domain.Grid {
	var g domain.Grid
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1)
	}
	g[1][8] = 9
	return g
}

func TestCPSolveReference(t *testing.T) {
	in := gridFromRows(t, refRows)
	want := gridFromRows(t, refSolvedRows)

	out, st, err := NewCPSolver().Solve(context.Background(), in)
	require.NoError(t, err)
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("solution mismatch (-want +got):\n%s", diff)
	}
	t.Logf("solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestCPSolveKeepsGivens(t *testing.T) {
	in := gridFromRows(t, refRows)
	out, _, err := NewCPSolver().Solve(context.Background(), in)
	require.NoError(t, err)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if in[r][c] != 0 {
				require.Equal(t, in[r][c], out[r][c], "given at (%d,%d) changed", r, c)
			}
		}
	}
}

func TestCPSolveDeterministic(t *testing.T) {
	in := gridFromRows(t, refRows)
	s := NewCPSolver()
	first, _, err := s.Solve(context.Background(), in)
	require.NoError(t, err)
	second, _, err := s.Solve(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCPSolveSolvedGridIsNoOp(t *testing.T) {
	in := gridFromRows(t, refSolvedRows)
	out, st, err := NewCPSolver().Solve(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, in, out)
	require.Zero(t, st.Nodes, "fixpointed board must need no further work")
}

func TestCPSolveEmptyGrid(t *testing.T) {
	out, _, err := NewCPSolver().Solve(context.Background(), domain.Grid{})
	require.NoError(t, err)
	ok, conflicts, err := validator.New().Validate(context.Background(), out)
	require.NoError(t, err)
	require.True(t, ok, "conflicts: %v", conflicts)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			require.NotZero(t, out[r][c])
		}
	}
}

func TestCPSolveUnsolvable(t *testing.T) {
	_, _, err := NewCPSolver().Solve(context.Background(), unsolvableGrid())
	require.ErrorIs(t, err, domain.ErrUnsolvable)
}

func TestCPSolveInvalidInput(t *testing.T) {
	var g domain.Grid
	g[0][0], g[0][7] = 6, 6
	_, _, err := NewCPSolver().Solve(context.Background(), g)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	require.NotErrorIs(t, err, domain.ErrUnsolvable)

	var oob domain.Grid
	oob[5][5] = 12
	_, _, err = NewCPSolver().Solve(context.Background(), oob)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCPSolveCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewCPSolver().Solve(ctx, gridFromRows(t, refRows))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCPSolveValidatedOutput(t *testing.T) {
	in := gridFromRows(t, refRows)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	out, _, err := NewCPSolver().Solve(ctx, in)
	require.NoError(t, err)
	ok, conflicts, err := validator.New().Validate(ctx, out)
	require.NoError(t, err)
	require.True(t, ok, "conflicts: %v", conflicts)
}
