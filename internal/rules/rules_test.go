package rules

import (
	"testing"

	"github.com/kpitt/sudoku-prover/internal/proof"
	"github.com/kpitt/sudoku-prover/internal/state"
)

func banAllExcept(s *state.Sudoku, r, c int, keep int) {
	for v := 1; v <= 9; v++ {
		if v != keep {
			s.Ban(r, c, v, proof.Consequence{Rule: "setup"})
		}
	}
}

func TestSoleCandidateFindsForcedCell(t *testing.T) {
	s := state.New()
	banAllExcept(s, 0, 0, 7)

	found := SoleCandidate(s)
	if found != 1 {
		t.Fatalf("SoleCandidate found %d, want 1", found)
	}
	fact := s.Allowed[0][0]
	if fact.Len() != 1 {
		t.Fatalf("expected cell still recorded with 1 remaining candidate")
	}
}

func TestSolePositionFindsForcedRowSlot(t *testing.T) {
	s := state.New()
	// Ban value 5 from every column in row 2 except column 3.
	for c := 0; c < 9; c++ {
		if c != 3 {
			s.Ban(2, c, 5, proof.Consequence{Rule: "setup"})
		}
	}

	found := SolePosition(s)
	if found == 0 {
		t.Fatalf("expected SolePosition to find the forced row slot")
	}
}

func TestNakedPairEliminatesFromRestOfRow(t *testing.T) {
	s := state.New()
	// Cells (0,0) and (0,1) both reduced to candidates {1,2}.
	banAllExceptSet(s, 0, 0, []int{1, 2})
	banAllExceptSet(s, 0, 1, []int{1, 2})

	found := NakedPair(s)
	if found == 0 {
		t.Fatalf("expected NakedPair to eliminate 1 and 2 from the rest of row 0")
	}
	if !s.Allowed[0][5].IsResolved(1) || !s.Allowed[0][5].IsResolved(2) {
		t.Fatalf("expected values 1 and 2 banned from (0,5) by the naked pair")
	}
	// The pair's own cells must keep both candidates.
	if s.Allowed[0][0].IsResolved(1) || s.Allowed[0][0].IsResolved(2) {
		t.Fatalf("the naked pair's own cells must not have their shared values banned")
	}
}

func banAllExceptSet(s *state.Sudoku, r, c int, keep []int) {
	keepSet := make(map[int]bool)
	for _, v := range keep {
		keepSet[v] = true
	}
	for v := 1; v <= 9; v++ {
		if !keepSet[v] {
			s.Ban(r, c, v, proof.Consequence{Rule: "setup"})
		}
	}
}

func TestBoxLineEliminatesOutsideBox(t *testing.T) {
	s := state.New()
	// Confine value 4 in box 0 (rows 0-2, cols 0-2) to row 0 only.
	for _, cell := range BoxCells(0) {
		if cell[0] != 0 {
			s.Ban(cell[0], cell[1], 4, proof.Consequence{Rule: "setup"})
		}
	}

	found := BoxLine(s)
	if found == 0 {
		t.Fatalf("expected BoxLine to eliminate value 4 from the rest of row 0")
	}
	if !s.Allowed[0][5].IsResolved(4) {
		t.Fatalf("expected value 4 banned from (0,5), outside the box")
	}
}

func TestRunToFixedPointStopsWhenNothingChanges(t *testing.T) {
	s := state.New()
	found := RunToFixedPoint(s)
	if found != 0 {
		t.Fatalf("an empty board should have nothing forced yet, got %d", found)
	}
}

func TestRunToFixedPointStopsOnContradiction(t *testing.T) {
	s := state.New()
	for v := 1; v <= 9; v++ {
		s.Ban(0, 0, v, proof.Consequence{Rule: "setup"})
	}
	RunToFixedPoint(s)
	if !s.Contradiction {
		t.Fatalf("expected Contradiction to be set")
	}
}
