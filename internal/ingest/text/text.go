// Package text reads a Sudoku grid from free-form textual input, one row per
// line. Spaces are ignored and '.' stands for an empty cell.
package text

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/clarahjk00/Final-Proejct-G2/internal/domain"
)

var ErrTooFewRows = errors.New("input ended before 9 rows were read")

// RowError describes why a single input row was rejected. Row is 0-based.
type RowError struct {
	Row    int
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row+1, e.Reason)
}

// ParseRow cleans and validates one row of input. It accepts exactly nine
// characters after stripping spaces, each a digit 0-9 or '.'.
func ParseRow(line string) ([9]uint8, error) {
	var out [9]uint8
	cleaned := strings.NewReplacer(" ", "", ".", "0").Replace(strings.TrimSpace(line))
	if len(cleaned) != 9 {
		return out, fmt.Errorf("must be 9 digits long, got %d", len(cleaned))
	}
	for i := 0; i < 9; i++ {
		ch := cleaned[i]
		if ch < '0' || ch > '9' {
			return out, fmt.Errorf("invalid character %q, digits only", ch)
		}
		out[i] = ch - '0'
	}
	return out, nil
}

// Read parses nine rows from r into a populated board, marking every nonzero
// cell as given. The first malformed row aborts with a RowError so an
// interactive caller can re-prompt for that row.
func Read(r io.Reader) (*domain.Board, error) {
	sc := bufio.NewScanner(r)
	var grid [9][9]uint8
	for i := 0; i < 9; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, ErrTooFewRows
		}
		row, err := ParseRow(sc.Text())
		if err != nil {
			return nil, &RowError{Row: i, Reason: err.Error()}
		}
		grid[i] = row
	}
	b := &domain.Board{}
	if err := b.Load(grid); err != nil {
		return nil, err
	}
	return b, nil
}
