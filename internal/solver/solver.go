package solver

import (
	"errors"
	"math/rand"
	"time"

	"github.com/kressly/sudoku/internal/board"
)

var (
	ErrNoSolution    = errors.New("puzzle has no solution")
	ErrInvalidPuzzle = errors.New("puzzle violates Sudoku constraints")
)

// Stats reports the effort spent by a completed search.
type Stats struct {
	Nodes    int // candidate placements attempted
	Duration time.Duration
}

// Solver implements backtracking search over a Sudoku board.
type Solver struct {
	Board   *board.Board
	options *Options
	rng     *rand.Rand
	stats   Stats
}

// New creates a solver for the given board.
// The board is cloned; the caller's copy is never mutated.
func New(b *board.Board, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Solver{
		Board:   b.Clone(),
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Solve attempts to solve the puzzle.
// Returns the solved board, ErrInvalidPuzzle if the input already violates
// Sudoku constraints, or ErrNoSolution if no assignment exists. An
// unsolvable puzzle is an ordinary outcome, not a defect; the caller
// decides how to report it.
func (s *Solver) Solve() (*board.Board, error) {
	if !s.Board.IsValid() {
		return nil, ErrInvalidPuzzle
	}

	s.stats = Stats{}
	start := time.Now()
	solved := s.backtrack()
	s.stats.Duration = time.Since(start)

	if !solved {
		return nil, ErrNoSolution
	}
	return s.Board, nil
}

// Stats returns counters from the most recent Solve call.
func (s *Solver) Stats() Stats {
	return s.stats
}

// backtrack recursively fills the first empty cell in row-major order.
// Candidates are tried in a fresh random permutation at every call;
// re-drawing per call is what makes the same routine usable both for
// solving puzzles and for completing a seeded grid with varied output.
func (s *Solver) backtrack() bool {
	pos, ok := s.Board.FindEmpty()
	if !ok {
		return true
	}

	for _, val := range s.permutation() {
		s.stats.Nodes++
		if !s.Board.CanPlace(pos, val) {
			continue
		}
		s.Board.SetForce(pos, val)
		if s.backtrack() {
			return true
		}
		s.Board.Clear(pos)
	}

	return false
}

// permutation returns the digits 1-9 in uniform random order.
func (s *Solver) permutation() [9]int {
	vals := [9]int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	s.rng.Shuffle(9, func(i, j int) {
		vals[i], vals[j] = vals[j], vals[i]
	})
	return vals
}
