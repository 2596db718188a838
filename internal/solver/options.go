package solver

// Options configures solver behavior.
type Options struct {
	// Seed for the candidate-order rng. 0 means seed from the clock,
	// giving a different search order on every run; any other value makes
	// the search fully reproducible.
	Seed int64
}

// DefaultOptions returns standard solver options.
func DefaultOptions() *Options {
	return &Options{
		Seed: 0,
	}
}
