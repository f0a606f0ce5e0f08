package usecase

import (
	"context"
	"errors"

	"github.com/clarahjk00/Final-Proejct-G2/internal/domain"
	"github.com/clarahjk00/Final-Proejct-G2/internal/ports"
)

type Service struct {
	Solver     ports.Solver
	Validator  ports.Validator
	Recognizer ports.Recognizer
	Storage    ports.Storage
}

func NewService(s ports.Solver, v ports.Validator, r ports.Recognizer, st ports.Storage) *Service {
	return &Service{Solver: s, Validator: v, Recognizer: r, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

// Recognize runs the OCR collaborator and loads its digits into a fresh
// board; every nonzero cell becomes a given.
func (u *Service) Recognize(ctx context.Context, imagePath string) (*domain.Board, [9][9]float64, error) {
	var conf [9][9]float64
	if u.Recognizer == nil {
		return nil, conf, errNotConfigured
	}
	grid, conf, err := u.Recognizer.Recognize(ctx, imagePath)
	if err != nil {
		return nil, conf, err
	}
	b := &domain.Board{}
	if err := b.Load(grid); err != nil {
		return nil, conf, err
	}
	return b, conf, nil
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
