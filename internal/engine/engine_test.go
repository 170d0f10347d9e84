package engine

import (
	"strings"
	"testing"

	"github.com/kpitt/sudoku-prover/internal/boardio"
	"github.com/kpitt/sudoku-prover/internal/proof"
	"github.com/kpitt/sudoku-prover/internal/proofstep"
	"github.com/kpitt/sudoku-prover/internal/state"
)

// trivialFillBoard is a complete, valid Sudoku solution with (0,0) blanked
// and row 0 otherwise holding {2..9} (spec scenario S1): the only forced
// cell is (0,0), and its eight eliminations trace back to exactly the
// eight IsValue clues sitting in the rest of row 0.
const trivialFillBoard = `
.45678923
673291458
298453167
819762534
536814792
724935816
962147385
387529641
451386279
`

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		Running:       "running",
		Solved:        "solved",
		Stuck:         "stuck",
		Contradiction: "contradiction",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Fatalf("Status(%d).String() = %q, want %q", status, got, want)
		}
	}
}

func TestRunReturnsStuckOnBlankBoard(t *testing.T) {
	s := state.New()
	e := New(s, proofstep.DefaultConfig())
	if status := e.Run(); status != Stuck {
		t.Fatalf("Run() on a blank board = %v, want Stuck (nothing is forced yet)", status)
	}
}

func TestRunCommitsASoleCandidateStep(t *testing.T) {
	s := state.New()
	for v := 1; v <= 9; v++ {
		if v != 4 {
			s.Ban(0, 0, v, proof.Consequence{Rule: "setup"})
		}
	}
	e := New(s, proofstep.DefaultConfig())
	status, step := e.Step()
	if status != Running && status != Solved {
		t.Fatalf("Step() status = %v, want Running or Solved", status)
	}
	if step == nil {
		t.Fatalf("expected a committed step")
	}
	if step.Row != 0 || step.Col != 0 || step.Value != 4 {
		t.Fatalf("Step = (%d,%d)=%d, want (0,0)=4", step.Row, step.Col, step.Value)
	}
	if s.Values[0][0] != 4 {
		t.Fatalf("Values[0][0] = %d, want 4", s.Values[0][0])
	}
}

func TestRunCommitsSoleCandidateWithEightGroundClues(t *testing.T) {
	clues, err := boardio.ParseGrid(strings.NewReader(trivialFillBoard))
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	s := state.New()
	if err := boardio.Apply(s, clues); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	e := New(s, proofstep.DefaultConfig())
	status, step := e.Step()
	if status != Running && status != Solved {
		t.Fatalf("Step() status = %v, want Running or Solved", status)
	}
	if step == nil {
		t.Fatalf("expected a committed step")
	}
	if step.Row != 0 || step.Col != 0 || step.Value != 1 {
		t.Fatalf("Step = (%d,%d)=%d, want (0,0)=1", step.Row, step.Col, step.Value)
	}
	// Scenario S1: the only rule fired is sole-candidate over row 0's eight
	// other filled cells, so the proof cites exactly their eight IsValue
	// facts as ground clues.
	if len(step.Clues) != 8 {
		t.Fatalf("len(step.Clues) = %d, want 8 (S1 scenario)", len(step.Clues))
	}
}

func TestRunDetectsContradiction(t *testing.T) {
	s := state.New()
	for v := 1; v <= 9; v++ {
		s.Ban(0, 0, v, proof.Consequence{Rule: "setup"})
	}
	e := New(s, proofstep.DefaultConfig())
	if status := e.Run(); status != Contradiction {
		t.Fatalf("Run() = %v, want Contradiction", status)
	}
}
