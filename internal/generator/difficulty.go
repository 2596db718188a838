package generator

import "strings"

// Difficulty selects how many givens a generated puzzle retains.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Givens returns the target number of filled cells for a difficulty.
// Unrecognized values fall back to the Easy target.
func (d Difficulty) Givens() int {
	switch d {
	case Easy:
		return 40
	case Medium:
		return 32
	case Hard:
		return 26
	default:
		return 40
	}
}

// String returns the difficulty name. Out-of-range values print as "easy",
// matching the fallback the rest of the package applies to them.
func (d Difficulty) String() string {
	switch d {
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "easy"
	}
}

// ParseDifficulty converts a name to a Difficulty. Matching is
// case-insensitive; anything unrecognized maps to Easy. The fallback is
// documented behavior rather than an error path, so no error is returned.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "medium":
		return Medium
	case "hard":
		return Hard
	default:
		return Easy
	}
}

// Difficulties lists the supported levels from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}
