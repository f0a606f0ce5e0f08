package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/clarahjk00/Final-Proejct-G2/internal/domain"
)

type fakeRecognizer struct {
	grid [9][9]uint8
	conf [9][9]float64
	err  error
}

func (f *fakeRecognizer) Recognize(ctx context.Context, imagePath string) ([9][9]uint8, [9][9]float64, error) {
	return f.grid, f.conf, f.err
}

func TestUnconfiguredDependencies(t *testing.T) {
	uc := NewService(nil, nil, nil, nil)
	ctx := context.Background()

	if _, _, err := uc.Solve(ctx, &domain.Board{}); err == nil {
		t.Error("Solve with nil solver should error")
	}
	if _, _, err := uc.Validate(ctx, &domain.Board{}); err == nil {
		t.Error("Validate with nil validator should error")
	}
	if _, _, err := uc.Recognize(ctx, "x.png"); err == nil {
		t.Error("Recognize with nil recognizer should error")
	}
	if err := uc.Save(ctx, &domain.Puzzle{ID: "x"}); err == nil {
		t.Error("Save with nil storage should error")
	}
	if _, err := uc.Load(ctx, "x"); err == nil {
		t.Error("Load with nil storage should error")
	}
	if _, err := uc.List(ctx); err == nil {
		t.Error("List with nil storage should error")
	}
}

func TestRecognizeLoadsGivens(t *testing.T) {
	fake := &fakeRecognizer{}
	fake.grid[0][0] = 5
	fake.grid[4][4] = 9
	uc := NewService(nil, nil, fake, nil)

	b, _, err := uc.Recognize(context.Background(), "board.jpg")
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if b.Values[0][0] != 5 || b.Values[4][4] != 9 {
		t.Fatalf("unexpected board: %v", b.Values)
	}
	if !b.Given[0][0] || !b.Given[4][4] || b.Given[0][1] {
		t.Fatal("given mask not derived from recognized digits")
	}
}

func TestRecognizePropagatesErrors(t *testing.T) {
	wantErr := errors.New("camera on fire")
	uc := NewService(nil, nil, &fakeRecognizer{err: wantErr}, nil)
	if _, _, err := uc.Recognize(context.Background(), "board.jpg"); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}
