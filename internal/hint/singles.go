package hint

import (
	"context"
	"fmt"

	"svw.info/sudokusolve/internal/board"
	"svw.info/sudokusolve/internal/domain"
)

// Singles suggests naked singles straight from the board's candidate
// sets: build the constraint board once, take the first forced cell.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

func (h *Singles) Hint(ctx context.Context, g domain.Grid) (domain.Hint, bool, error) {
	b, err := board.New(g)
	if err != nil {
		return domain.Hint{}, false, err
	}
	pos, v, ok := b.FindForced()
	if !ok {
		return domain.Hint{}, false, nil
	}
	return domain.Hint{
		Message: fmt.Sprintf("Single: only %d fits here", v),
		Cell:    pos,
		Value:   v,
	}, true, nil
}
