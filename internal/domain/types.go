package domain

// Board holds current cell values and which cells are fixed givens.
// Givens are supplied once at load time and are never overwritten by solving.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Given  [9][9]bool  `json:"given,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Source    Source `json:"source,omitempty"`
	Board     Board  `json:"board"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Source    Source `json:"source"`
	CreatedAt int64  `json:"createdAt"`
}
