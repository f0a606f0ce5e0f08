package ports

import (
	"context"
	"time"

	"github.com/clarahjk00/Final-Proejct-G2/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver produces a fully assigned, consistent completion of a board, or
// domain.ErrUnsolvable when none exists. The input board is never mutated.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Recognizer turns an image of a printed grid into digits, best effort.
// Unrecognized cells come back as 0; confidence is per cell in [0,1].
type Recognizer interface {
	Recognize(ctx context.Context, imagePath string) (grid [9][9]uint8, confidence [9][9]float64, err error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
