package boardio

import (
	"strings"
	"testing"

	"github.com/kpitt/sudoku-prover/internal/state"
)

const validGrid = `
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

func TestParseGridCountsClues(t *testing.T) {
	clues, err := ParseGrid(strings.NewReader(validGrid))
	if err != nil {
		t.Fatalf("ParseGrid returned error: %v", err)
	}
	if len(clues) != 30 {
		t.Fatalf("len(clues) = %d, want 30", len(clues))
	}
}

func TestParseGridRejectsWrongRowCount(t *testing.T) {
	_, err := ParseGrid(strings.NewReader("53..7....\n6..195...\n"))
	if err == nil {
		t.Fatalf("expected an error for a grid with too few rows")
	}
}

func TestParseGridRejectsWrongColumnCount(t *testing.T) {
	_, err := ParseGrid(strings.NewReader("53..7...\n6..195...\n.98....6.\n8...6...3\n4..8.3..1\n7...2...6\n.6....28.\n...419..5\n....8..79\n"))
	if err == nil {
		t.Fatalf("expected an error for a row with the wrong width")
	}
}

func TestParseTriples(t *testing.T) {
	clues, err := ParseTriples(strings.NewReader("0 0 5\n0 1 3\n"))
	if err != nil {
		t.Fatalf("ParseTriples returned error: %v", err)
	}
	if len(clues) != 2 || clues[0] != (Clue{Row: 0, Col: 0, Value: 5}) {
		t.Fatalf("unexpected clues: %v", clues)
	}
}

func TestApplyRejectsConflictingClue(t *testing.T) {
	s := state.New()
	err := Apply(s, []Clue{{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 0, Value: 2}})
	if err == nil {
		t.Fatalf("expected an error for conflicting clues at the same cell")
	}
}

func TestApplyIsIdempotentForRepeatedIdenticalClue(t *testing.T) {
	s := state.New()
	err := Apply(s, []Clue{{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 0, Value: 1}})
	if err != nil {
		t.Fatalf("Apply returned error for a repeated identical clue: %v", err)
	}
	if s.Values[0][0] != 1 {
		t.Fatalf("Values[0][0] = %d, want 1", s.Values[0][0])
	}
}
