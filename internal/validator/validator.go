package validator

import (
	"context"

	"github.com/clarahjk00/Final-Proejct-G2/internal/domain"
)

// FastValidator checks every row, column, and box for duplicate digits with
// one bitmask pass per unit. Empty cells never conflict.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// unit enumerates the nine cells of one row, column, or box.
type unit func(i int) (r, c int)

func units() []unit {
	us := make([]unit, 0, 27)
	for r := 0; r < 9; r++ {
		r := r
		us = append(us, func(i int) (int, int) { return r, i })
	}
	for c := 0; c < 9; c++ {
		c := c
		us = append(us, func(i int) (int, int) { return i, c })
	}
	for b := 0; b < 9; b++ {
		br, bc := (b/3)*3, (b%3)*3
		us = append(us, func(i int) (int, int) { return br + i/3, bc + i%3 })
	}
	return us
}

// Validate reports whether b is consistent and lists the cells that repeat a
// digit already seen earlier in their unit.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for _, u := range units() {
		seen := 0
		for i := 0; i < 9; i++ {
			r, c := u(i)
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if seen&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			seen |= bit
		}
	}
	return len(conf) == 0, conf, nil
}
