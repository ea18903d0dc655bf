package validator

import (
	"context"

	"svw.info/sudokusolve/internal/domain"
)

// FastValidator scans each row, column, and box with a bitmask and
// reports the coordinates of duplicated values. Unknown cells are
// skipped, so a partial grid with no repeats is valid.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, g domain.Grid) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	scan := func(unit [9]domain.CellCoord) {
		seen := 0
		for _, cc := range unit {
			val := g[cc.Row][cc.Col]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if seen&bit != 0 {
				conf = append(conf, cc)
			}
			seen |= bit
		}
	}

	var unit [9]domain.CellCoord
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			unit[c] = domain.CellCoord{Row: r, Col: c}
		}
		scan(unit)
	}
	for c := 0; c < 9; c++ {
		for r := 0; r < 9; r++ {
			unit[r] = domain.CellCoord{Row: r, Col: c}
		}
		scan(unit)
	}
	for bx := 0; bx < 9; bx++ {
		for i := 0; i < 9; i++ {
			unit[i] = domain.CellCoord{Row: (bx/3)*3 + i/3, Col: (bx%3)*3 + i%3}
		}
		scan(unit)
	}
	return len(conf) == 0, conf, nil
}
