package generator

// Options configures puzzle generation behavior.
type Options struct {
	Difficulty Difficulty // Difficulty sets the target number of givens
	Seed       int64      // Seed for reproducible puzzles (0 = random)
}

// DefaultOptions returns standard generator options for a difficulty.
func DefaultOptions(difficulty Difficulty) *Options {
	return &Options{
		Difficulty: difficulty,
		Seed:       0,
	}
}
