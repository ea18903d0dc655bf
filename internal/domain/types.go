package domain

// Grid is the 9x9 boundary shape: digits 1-9 are committed values, 0
// marks an unknown cell. The candidate-set representation lives in the
// board package; Grid is what crosses package and process boundaries.
type Grid [9][9]uint8

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes the next forced placement a player could make.
type Hint struct {
	Message string    `json:"message,omitempty"`
	Cell    CellCoord `json:"cell"`
	Value   uint8     `json:"value"`
}

// Puzzle is a persisted Sudoku with optional solution and metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Givens    Grid   `json:"givens"`
	Solution  *Grid  `json:"solution,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Solved    bool   `json:"solved"`
	CreatedAt int64  `json:"createdAt"`
}
