package board

import "testing"

func TestIsValid(t *testing.T) {
	empty := New()
	if !empty.IsValid() {
		t.Error("empty board should be valid")
	}

	partial, err := NewFromString(classicPuzzle)
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}
	if !partial.IsValid() {
		t.Error("conflict-free partial board should be valid")
	}

	full, err := NewFromString(classicSolved)
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}
	if !full.IsValid() {
		t.Error("solved board should be valid")
	}
}

func TestIsValidDetectsDuplicates(t *testing.T) {
	tests := []struct {
		name   string
		second int
	}{
		{"row duplicate", MakePos(0, 8)},
		{"column duplicate", MakePos(8, 0)},
		{"box duplicate", MakePos(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			b.SetForce(MakePos(0, 0), 5)
			b.SetForce(tt.second, 5)
			if b.IsValid() {
				t.Error("IsValid() = true for a board with a duplicate")
			}
		})
	}
}

func TestIsSolved(t *testing.T) {
	full, err := NewFromString(classicSolved)
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}

	before := full.String()
	if !full.IsSolved() {
		t.Error("IsSolved() = false for a solved board")
	}
	if !full.IsSolved() {
		t.Error("IsSolved() should report the same answer when repeated")
	}
	if full.String() != before {
		t.Error("IsSolved() mutated the board")
	}
}

func TestIsSolvedIncomplete(t *testing.T) {
	if New().IsSolved() {
		t.Error("empty board should not be solved")
	}

	almost, err := NewFromString(classicSolved)
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}
	almost.Clear(MakePos(8, 8))
	if almost.IsSolved() {
		t.Error("board with one empty cell should not be solved")
	}
}

func TestIsSolvedRejectsDuplicates(t *testing.T) {
	b, err := NewFromString(classicSolved)
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}

	// Force a duplicate into row 0; the board is full but no longer a
	// solution.
	b.SetForce(MakePos(0, 1), b.Get(MakePos(0, 0)))
	if b.IsSolved() {
		t.Error("IsSolved() = true for a full board with a duplicate")
	}
}
