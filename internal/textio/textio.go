// Package textio maps puzzle text to and from the grid shape the solver
// consumes. The core never sees text; everything format-specific stays
// here.
package textio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"svw.info/sudokusolve/internal/domain"
)

// ParseGrid reads one puzzle from its textual form: 81 significant
// characters in row-major order. Digits 1-9 are givens; '0', '-' and '.'
// mark unknown cells; whitespace is skipped.
func ParseGrid(s string) (domain.Grid, error) {
	var g domain.Grid
	n := 0
	for _, ch := range s {
		if unicode.IsSpace(ch) {
			continue
		}
		var v uint8
		switch {
		case ch >= '1' && ch <= '9':
			v = uint8(ch - '0')
		case ch == '0' || ch == '-' || ch == '.':
			v = 0
		default:
			return domain.Grid{}, fmt.Errorf("%w: unexpected character %q", domain.ErrInvalidInput, ch)
		}
		if n >= 81 {
			return domain.Grid{}, fmt.Errorf("%w: more than 81 cells", domain.ErrInvalidInput)
		}
		g[n/9][n%9] = v
		n++
	}
	if n != 81 {
		return domain.Grid{}, fmt.Errorf("%w: got %d cells, want 81", domain.ErrInvalidInput, n)
	}
	return g, nil
}

// FormatGrid renders nine rows of nine characters, '-' for unknown
// cells, each row terminated by a newline.
func FormatGrid(g domain.Grid) string {
	var sb strings.Builder
	sb.Grow(90)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				sb.WriteByte('-')
			} else {
				sb.WriteByte('0' + g[r][c])
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ReadPuzzles consumes the batch format: an optional "Grid NN" name line
// followed by nine rows of cells, repeated until EOF. Blank lines are
// ignored.
func ReadPuzzles(r io.Reader) ([]domain.Puzzle, error) {
	var (
		out  []domain.Puzzle
		name string
		rows = make([]string, 0, 9)
	)
	flush := func() error {
		if len(rows) == 0 {
			return nil
		}
		if len(rows) != 9 {
			return fmt.Errorf("%w: puzzle %q has %d rows, want 9", domain.ErrInvalidInput, name, len(rows))
		}
		g, err := ParseGrid(strings.Join(rows, "\n"))
		if err != nil {
			return fmt.Errorf("puzzle %q: %w", name, err)
		}
		out = append(out, domain.Puzzle{Name: name, Givens: g})
		rows = rows[:0]
		name = ""
		return nil
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "Grid") {
			if err := flush(); err != nil {
				return nil, err
			}
			name = line
			continue
		}
		rows = append(rows, line)
		if len(rows) == 9 {
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) != 0 {
		return nil, fmt.Errorf("%w: puzzle %q truncated at %d rows", domain.ErrInvalidInput, name, len(rows))
	}
	return out, nil
}
