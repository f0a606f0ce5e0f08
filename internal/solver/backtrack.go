package solver

import (
	"context"
	"time"

	"github.com/clarahjk00/Final-Proejct-G2/internal/domain"
	"github.com/clarahjk00/Final-Proejct-G2/internal/ports"
)

// BacktrackingSolver is a straightforward recursive solver. It tries digits
// 1..9 in ascending order at the first empty cell (row-major), so its output
// is fully deterministic for a fixed input.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// Solve searches for a completion of b by depth-first backtracking. It works
// on a private deep copy, so b is never mutated, by a failed search or
// otherwise. Exhaustion yields domain.ErrUnsolvable; a canceled context
// yields the context's error instead.
func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	work := b.Clone()
	nodes := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		cell, found := work.FindEmpty()
		if !found {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			// The target cell is empty here, so the precondition of
			// IsValid holds and err is impossible.
			ok, err := work.IsValid(cell.Row, cell.Col, v)
			if err != nil || !ok {
				continue
			}
			work.Values[cell.Row][cell.Col] = v
			if dfs() {
				return true
			}
			work.Values[cell.Row][cell.Col] = 0
		}
		return false
	}

	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, domain.ErrUnsolvable
	}
	return work, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
