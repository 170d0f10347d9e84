package proofstep

import (
	"errors"
	"time"

	"github.com/kpitt/sudoku-prover/internal/knowledge"
	"github.com/kpitt/sudoku-prover/internal/proof"
)

// ErrNoFillers is returned when Build is called with no candidate MustBe
// Deductions to choose among — the solver loop has run rules to a fixed
// point and nothing is forced, so there is nothing left to commit.
var ErrNoFillers = errors.New("proofstep: no candidate fillers to build a proof for")

// Step is one chosen, fully ordered proof for a single cell fill: which
// Deduction is committed, the (row, col, value) it resolves to, the exact
// Consequence chosen for every Deduction the proof cites, the ground
// clues it ultimately rests on, and a dependency-respecting order to
// render the proof's lemmas in.
type Step struct {
	Deduction *proof.Deduction
	Fact      knowledge.Fact
	Row, Col  int
	Value     int

	Choice map[*proof.Deduction]int
	Clues  []knowledge.Fact
	Order  []*proof.Deduction

	UsedGreedyFallback bool
}

// Build chooses which of the candidate filler Deductions to commit next
// and constructs its minimal acyclic proof:
//
//   Step A — break cycles in the knowledge graph reachable from each
//     candidate (allowedPaths).
//   Step B — search for the subset of Deductions/Consequences that proves
//     the candidate using the fewest distinct ground clues (solveIP).
//   Step C — fall back to a greedy, non-minimal proof if the search is
//     disabled, times out with nothing found, or the graph is pathological.
//   Step D — topologically order the chosen Deductions (topoOrder).
//   Step E — commit to the single candidate with the lowest clue count
//     across all fillers (k-optimal choice among this pass's forced cells).
//
// Build does not mutate state; the caller commits the winning Step by
// calling state.Assign with Step.Row/Col/Value.
func Build(fillers []*proof.Deduction, cfg Config) (*Step, error) {
	if len(fillers) == 0 {
		return nil, ErrNoFillers
	}

	var best *Step
	for _, filler := range fillers {
		step, err := buildOne(filler, cfg)
		if err != nil {
			continue
		}
		if best == nil || len(step.Clues) < len(best.Clues) {
			best = step
		}
	}
	if best == nil {
		return nil, errors.New("proofstep: every candidate filler failed to produce an acyclic proof")
	}
	return best, nil
}

func buildOne(filler *proof.Deduction, cfg Config) (*Step, error) {
	allowed := allowedPaths(filler)
	if len(allowed[filler]) == 0 {
		return nil, errors.New("proofstep: candidate has no acyclic proof")
	}

	var sel *selection
	usedGreedy := false

	if cfg.Greedy {
		sel = greedySelect(filler, allowed)
		usedGreedy = true
	} else {
		deadline := time.Now().Add(cfg.IPTimeLimit)
		found, _ := solveIP(filler, allowed, deadline)
		if found != nil {
			sel = found
		} else {
			sel = greedySelect(filler, allowed)
			usedGreedy = true
		}
	}

	order, err := topoOrder(sel, allowed)
	if err != nil {
		return nil, err
	}

	row, col := filler.Conclusion.GlobalCell()
	clues := make([]knowledge.Fact, 0, len(sel.clues))
	for fact := range sel.clues {
		clues = append(clues, fact)
	}

	return &Step{
		Deduction:          filler,
		Fact:               filler.Conclusion,
		Row:                row,
		Col:                col,
		Value:              filler.Conclusion.Value,
		Choice:             sel.choice,
		Clues:              clues,
		Order:              order,
		UsedGreedyFallback: usedGreedy,
	}, nil
}
