package generator

import (
	"testing"

	"github.com/kressly/sudoku/internal/board"
	"github.com/kressly/sudoku/internal/solver"
)

func TestGenerateAllDifficulties(t *testing.T) {
	for _, d := range Difficulties() {
		t.Run(d.String(), func(t *testing.T) {
			g := New(&Options{Difficulty: d, Seed: 12345})
			puzzle, solution, err := g.Generate()
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}

			if !solution.IsSolved() {
				t.Error("solution is not a complete valid grid")
			}
			if !puzzle.IsValid() {
				t.Error("puzzle violates Sudoku constraints")
			}

			// Removal is best-effort: the clue count may exceed the
			// target but never drops below it.
			if got, want := puzzle.ClueCount(), d.Givens(); got < want {
				t.Errorf("ClueCount() = %d, want at least %d", got, want)
			}

			// Every given must agree with the solution.
			for pos := range board.CellCount {
				val := puzzle.Get(pos)
				if val != board.EmptyCell && val != solution.Get(pos) {
					t.Fatalf("given at %d is %d, solution has %d", pos, val, solution.Get(pos))
				}
			}

			if n := solver.CountSolutions(puzzle, 2); n != 1 {
				t.Errorf("puzzle has %d solutions, want exactly 1", n)
			}
		})
	}
}

func TestGenerateSeedReproducible(t *testing.T) {
	generate := func(seed int64) (string, string) {
		t.Helper()
		g := New(&Options{Difficulty: Medium, Seed: seed})
		puzzle, solution, err := g.Generate()
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		return puzzle.String(), solution.String()
	}

	p1, s1 := generate(99)
	p2, s2 := generate(99)
	if p1 != p2 || s1 != s2 {
		t.Error("same seed should reproduce the same puzzle and solution")
	}

	p3, _ := generate(100)
	if p1 == p3 {
		t.Error("different seeds should produce different puzzles")
	}
}

func TestGenerateSolution(t *testing.T) {
	g := New(&Options{Seed: 7})
	solution, err := g.GenerateSolution()
	if err != nil {
		t.Fatalf("GenerateSolution failed: %v", err)
	}
	if !solution.IsSolved() {
		t.Error("generated grid is not solved")
	}
	if solution.ClueCount() != board.CellCount {
		t.Errorf("ClueCount() = %d, want %d", solution.ClueCount(), board.CellCount)
	}
}

func TestSeedDiagonalBoxes(t *testing.T) {
	g := New(&Options{Seed: 3})
	b := board.New()
	g.seedDiagonalBoxes(b)

	if b.ClueCount() != 27 {
		t.Fatalf("ClueCount() = %d after seeding, want 27", b.ClueCount())
	}
	if !b.IsValid() {
		t.Error("seeded board violates Sudoku constraints")
	}

	for pos := range board.CellCount {
		row, col := pos/9, pos%9
		onDiagonal := row/3 == col/3
		filled := b.Get(pos) != board.EmptyCell
		if filled != onDiagonal {
			t.Errorf("position %d: filled = %v, want %v", pos, filled, onDiagonal)
		}
	}
}

func TestGeneratedPuzzleSolvesToSolution(t *testing.T) {
	g := New(&Options{Difficulty: Hard, Seed: 21})
	puzzle, solution, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// The puzzle is unique, so the solver must land on the original
	// solution no matter its candidate order.
	s := solver.New(puzzle, &solver.Options{Seed: 9})
	solved, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if solved.String() != solution.String() {
		t.Error("solving the puzzle did not reproduce the generator's solution")
	}
}

func TestGenerateWithDifficulty(t *testing.T) {
	puzzle, solution, err := GenerateWithDifficulty(Easy)
	if err != nil {
		t.Fatalf("GenerateWithDifficulty failed: %v", err)
	}
	if !solution.IsSolved() {
		t.Error("solution is not a complete valid grid")
	}
	if puzzle.ClueCount() < Easy.Givens() {
		t.Errorf("ClueCount() = %d, want at least %d", puzzle.ClueCount(), Easy.Givens())
	}
}

func TestNewNilOptions(t *testing.T) {
	g := New(nil)
	if g.options.Difficulty != Easy {
		t.Errorf("default difficulty = %v, want Easy", g.options.Difficulty)
	}
}
