package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfRange reports a row, column, or digit outside its legal range.
	ErrOutOfRange = errors.New("coordinate or digit out of range")
	// ErrCellOccupied reports a placement check against a non-empty cell.
	ErrCellOccupied = errors.New("cell is not empty")
	// ErrUnsolvable reports that no consistent completion of the board exists.
	// It is an expected outcome, not a failure of the solver.
	ErrUnsolvable = errors.New("no solution exists")
)

func checkCoord(row, col int) error {
	if row < 0 || row > 8 || col < 0 || col > 8 {
		return fmt.Errorf("%w: cell (%d,%d)", ErrOutOfRange, row, col)
	}
	return nil
}

// Set writes val into the cell at (row, col). It performs no legality check
// beyond range validation; placement legality is the caller's concern via
// IsValid. The given mask is never touched here.
func (b *Board) Set(row, col int, val uint8) error {
	if err := checkCoord(row, col); err != nil {
		return err
	}
	if val > 9 {
		return fmt.Errorf("%w: value %d", ErrOutOfRange, val)
	}
	b.Values[row][col] = val
	return nil
}

// Clear empties the cell at (row, col). Used by the solver on backtrack.
func (b *Board) Clear(row, col int) error {
	return b.Set(row, col, 0)
}

// Load populates the board in one shot from an ingestion collaborator and
// marks every nonzero cell as given. Values outside [0,9] are rejected and
// the board is left unchanged.
func (b *Board) Load(grid [9][9]uint8) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if grid[r][c] > 9 {
				return fmt.Errorf("%w: value %d at (%d,%d)", ErrOutOfRange, grid[r][c], r, c)
			}
		}
	}
	b.Values = grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Given[r][c] = grid[r][c] != 0
		}
	}
	return nil
}

// IsValid reports whether num may be placed at (row, col): num must not
// already appear in the cell's row, column, or 3x3 box. The scans cover all
// nine cells of each unit, so the target cell must be empty when this is
// called; a non-empty target is rejected with ErrCellOccupied rather than
// silently compared against its own value.
func (b *Board) IsValid(row, col int, num uint8) (bool, error) {
	if err := checkCoord(row, col); err != nil {
		return false, err
	}
	if num < 1 || num > 9 {
		return false, fmt.Errorf("%w: digit %d", ErrOutOfRange, num)
	}
	if b.Values[row][col] != 0 {
		return false, fmt.Errorf("%w: cell (%d,%d)", ErrCellOccupied, row, col)
	}
	for i := 0; i < 9; i++ {
		if b.Values[row][i] == num || b.Values[i][col] == num {
			return false, nil
		}
	}
	br, bc := (row/3)*3, (col/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b.Values[br+dr][bc+dc] == num {
				return false, nil
			}
		}
	}
	return true, nil
}

// FindEmpty returns the first empty cell in row-major order. The ordering is
// load-bearing: it fixes the search order of the solver and therefore which
// solution is found first on ambiguous boards.
func (b *Board) FindEmpty() (CellCoord, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return CellCoord{Row: r, Col: c}, true
			}
		}
	}
	return CellCoord{}, false
}

// IsComplete reports whether every cell holds a digit.
func (b *Board) IsComplete() bool {
	_, found := b.FindEmpty()
	return !found
}

// Clone returns an independent deep copy.
func (b *Board) Clone() *Board {
	out := *b
	return &out
}

// String renders the board for the console: dots for empty cells, box
// separators every three rows and columns.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("-", 29))
	sb.WriteByte('\n')
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				sb.WriteString(" . ")
			} else {
				fmt.Fprintf(&sb, " %d ", b.Values[r][c])
			}
			if (c+1)%3 == 0 && c != 8 {
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('\n')
		if (r+1)%3 == 0 {
			sb.WriteString(strings.Repeat("-", 29))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
