package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/kressly/sudoku/internal/board"
	"github.com/kressly/sudoku/internal/solver"
)

// ErrGenerationFailed reports a seeded grid the solver could not complete.
// The diagonal-box construction is always solvable, so this signals an
// internal defect, never an ordinary unsolvable puzzle.
var ErrGenerationFailed = errors.New("failed to generate valid puzzle")

// Generator creates Sudoku puzzles. All randomness (box seeding, solver
// candidate order, removal order) flows from one seeded source, so a
// fixed Options.Seed reproduces the exact puzzle/solution pair.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(Easy)
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate creates a new Sudoku puzzle at the configured difficulty.
// Returns the puzzle and its solution.
func (g *Generator) Generate() (puzzle *board.Board, solution *board.Board, err error) {
	solution, err = g.GenerateSolution()
	if err != nil {
		return nil, nil, err
	}
	return g.RemoveCells(solution), solution, nil
}

// GenerateSolution creates a complete valid Sudoku board. The three
// diagonal 3x3 boxes are seeded with independent random permutations;
// they share no row, column, or box, so the seeding can never conflict
// with itself. A randomized solver then completes the rest. Seeding the
// diagonal first breaks symmetry and sharply reduces backtracking depth
// compared to solving from an empty grid.
func (g *Generator) GenerateSolution() (*board.Board, error) {
	b := board.New()
	g.seedDiagonalBoxes(b)

	s := solver.New(b, &solver.Options{Seed: g.rng.Int63()})
	solution, err := s.Solve()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return solution, nil
}

// seedDiagonalBoxes fills the three diagonal boxes (27 cells total) with a
// fresh random permutation of 1-9 each.
func (g *Generator) seedDiagonalBoxes(b *board.Board) {
	nums := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	for _, start := range []int{0, 3, 6} {
		g.rng.Shuffle(len(nums), func(i, j int) {
			nums[i], nums[j] = nums[j], nums[i]
		})
		for i, val := range nums {
			b.SetForce(board.MakePos(start+i/3, start+i%3), val)
		}
	}
}

// RemoveCells carves a puzzle out of a complete solution while preserving
// solution uniqueness. Candidate cells are visited in random order; each
// is tentatively cleared and the removal kept only if the bounded solution
// count stays at exactly one. The walk stops once enough cells are gone to
// hit the difficulty's target givens, or when positions run out, in which
// case the puzzle silently retains extra givens. The target is
// best-effort, not a guarantee.
//
// This is the performance-critical path: every attempted removal costs a
// full bounded backtracking search.
func (g *Generator) RemoveCells(solution *board.Board) *board.Board {
	puzzle := solution.Clone()

	targetGivens := g.options.Difficulty.Givens()
	cellsToRemove := board.CellCount - targetGivens

	positions := g.rng.Perm(board.CellCount)

	cellsRemoved := 0
	for _, pos := range positions {
		if cellsRemoved >= cellsToRemove {
			break
		}

		val := puzzle.Get(pos)
		if val == board.EmptyCell {
			continue
		}

		puzzle.Clear(pos)
		if solver.CountSolutions(puzzle, 2) == 1 {
			cellsRemoved++
		} else {
			// A second solution appeared; put the clue back.
			puzzle.SetForce(pos, val)
		}
	}

	return puzzle
}

// GenerateWithDifficulty is a convenience function to generate a single
// puzzle at the given difficulty.
func GenerateWithDifficulty(d Difficulty) (*board.Board, *board.Board, error) {
	gen := New(DefaultOptions(d))
	return gen.Generate()
}
