package solver

import (
	"errors"
	"testing"

	"github.com/kressly/sudoku/internal/board"
)

const (
	classicPuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	classicSolved = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

// unsolvableBoard builds a conflict-free board with no solution: row 0
// holds 1-8 in its first eight cells while the 9 needed at (0,8) is
// blocked from below in column 8.
func unsolvableBoard(t *testing.T) *board.Board {
	t.Helper()
	b := board.New()
	for col := range 8 {
		if err := b.Set(board.MakePos(0, col), col+1); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}
	if err := b.Set(board.MakePos(1, 8), 9); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	return b
}

func TestSolveClassicPuzzle(t *testing.T) {
	b, err := board.NewFromString(classicPuzzle)
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}

	s := New(b, nil)
	solved, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	// The puzzle has a unique solution, so any candidate order must
	// arrive at the same grid.
	if got := solved.String(); got != classicSolved {
		t.Errorf("Solve produced %q, want %q", got, classicSolved)
	}
	if !solved.IsSolved() {
		t.Error("solved board does not satisfy all constraints")
	}

	// The caller's board stays untouched.
	if got := b.String(); got != classicPuzzle {
		t.Errorf("input board was mutated: %q", got)
	}

	if s.Stats().Nodes == 0 {
		t.Error("Stats().Nodes = 0 after a real search")
	}
}

func TestSolveAlreadySolved(t *testing.T) {
	b, err := board.NewFromString(classicSolved)
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}

	s := New(b, nil)
	solved, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if solved.String() != classicSolved {
		t.Errorf("Solve changed a complete board: %q", solved.String())
	}
	if nodes := s.Stats().Nodes; nodes != 0 {
		t.Errorf("Stats().Nodes = %d on a complete board, want 0", nodes)
	}
}

func TestSolveEmptyBoard(t *testing.T) {
	s := New(board.New(), &Options{Seed: 1})
	solved, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !solved.IsSolved() {
		t.Error("Solve of empty board did not produce a full valid grid")
	}
}

func TestSolveNoSolution(t *testing.T) {
	s := New(unsolvableBoard(t), nil)
	if _, err := s.Solve(); !errors.Is(err, ErrNoSolution) {
		t.Errorf("Solve error = %v, want ErrNoSolution", err)
	}
}

func TestSolveInvalidPuzzle(t *testing.T) {
	b := board.New()
	b.SetForce(board.MakePos(0, 0), 5)
	b.SetForce(board.MakePos(0, 1), 5)

	s := New(b, nil)
	if _, err := s.Solve(); !errors.Is(err, ErrInvalidPuzzle) {
		t.Errorf("Solve error = %v, want ErrInvalidPuzzle", err)
	}
}

func TestSolveSeedReproducible(t *testing.T) {
	solve := func(seed int64) string {
		t.Helper()
		s := New(board.New(), &Options{Seed: seed})
		solved, err := s.Solve()
		if err != nil {
			t.Fatalf("Solve failed: %v", err)
		}
		return solved.String()
	}

	if solve(42) != solve(42) {
		t.Error("same seed should reproduce the same grid")
	}
	if solve(1) == solve(2) {
		t.Error("different seeds should explore different grids")
	}
}

func BenchmarkSolve(b *testing.B) {
	puzzle, err := board.NewFromString(classicPuzzle)
	if err != nil {
		b.Fatalf("NewFromString failed: %v", err)
	}

	b.ResetTimer()
	for range b.N {
		s := New(puzzle, &Options{Seed: 1})
		if _, err := s.Solve(); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}
