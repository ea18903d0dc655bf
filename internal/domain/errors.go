package domain

import "errors"

// ErrInvalidInput reports a malformed initial grid: an out-of-range
// digit, or two givens with the same value in one row, column, or box.
// Detected once at board construction, never during search.
var ErrInvalidInput = errors.New("invalid puzzle input")

// ErrUnsolvable reports that no completion exists from a given state.
// Inside the search it rejects a single guess branch; when it reaches
// the caller it means the puzzle has no solution.
var ErrUnsolvable = errors.New("no solution exists")
