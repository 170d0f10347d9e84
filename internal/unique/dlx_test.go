package unique

import (
	"strings"
	"testing"

	"github.com/kpitt/sudoku-prover/internal/boardio"
	"github.com/kpitt/sudoku-prover/internal/proof"
	"github.com/kpitt/sudoku-prover/internal/state"
)

const classicPuzzle = `
53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`

func newPuzzle(t *testing.T) *state.Sudoku {
	t.Helper()
	clues, err := boardio.ParseGrid(strings.NewReader(classicPuzzle))
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	s := state.New()
	if err := boardio.Apply(s, clues); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	return s
}

func TestClassicPuzzleHasUniqueCompletion(t *testing.T) {
	s := newPuzzle(t)
	if !IsUnique(s) {
		t.Fatalf("expected the classic puzzle to have a unique completion")
	}
}

func TestEmptyBoardHasManyCompletions(t *testing.T) {
	s := state.New()
	completions := Completions(s, 2)
	if len(completions) != 2 {
		t.Fatalf("expected an empty board to report at least 2 completions, got %d", len(completions))
	}
}

func TestContradictoryBoardHasNoCompletions(t *testing.T) {
	s := state.New()
	for v := 1; v <= 9; v++ {
		s.Ban(0, 0, v, proof.Consequence{Rule: "test-setup"})
	}
	completions := Completions(s, 2)
	if len(completions) != 0 {
		t.Fatalf("expected a contradictory board to have no completions, got %d", len(completions))
	}
}
