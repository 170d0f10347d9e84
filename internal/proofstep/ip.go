package proofstep

import (
	"time"

	"github.com/kpitt/sudoku-prover/internal/knowledge"
	"github.com/kpitt/sudoku-prover/internal/proof"
)

// selection is one complete, self-consistent way to prove root: which
// allowed Consequence was picked for every Deduction the proof needs, and
// the set of ground IsValue clues that proof ultimately rests on.
type selection struct {
	choice map[*proof.Deduction]int
	clues  map[knowledge.Fact]bool
}

func cloneChoice(m map[*proof.Deduction]int) map[*proof.Deduction]int {
	out := make(map[*proof.Deduction]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneClues(m map[knowledge.Fact]bool) map[knowledge.Fact]bool {
	out := make(map[knowledge.Fact]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// solveIP performs a 0/1 branch-and-bound search over which Consequence to
// pick for every Deduction reachable from root, minimizing the number of
// distinct IsValue ground clues the resulting proof cites. It returns the
// best selection found and whether the search completed before deadline —
// a false completed flag with a non-nil selection means deadline was hit
// but a valid (possibly non-optimal) answer is still available.
func solveIP(root *proof.Deduction, allowed map[*proof.Deduction][]proof.Consequence, deadline time.Time) (*selection, bool) {
	var best *selection
	bestCost := -1
	timedOut := false

	var search func(decided map[*proof.Deduction]int, clues map[knowledge.Fact]bool, pending []*proof.Deduction)
	search = func(decided map[*proof.Deduction]int, clues map[knowledge.Fact]bool, pending []*proof.Deduction) {
		if timedOut {
			return
		}
		if time.Now().After(deadline) {
			timedOut = true
			return
		}
		if best != nil && len(clues) >= bestCost {
			return // this branch can only match or exceed the best found; prune
		}
		if len(pending) == 0 {
			best = &selection{choice: cloneChoice(decided), clues: cloneClues(clues)}
			bestCost = len(clues)
			return
		}

		d := pending[0]
		rest := pending[1:]
		if _, already := decided[d]; already {
			search(decided, clues, rest)
			return
		}

		for idx, c := range allowed[d] {
			nextDecided := cloneChoice(decided)
			nextDecided[d] = idx
			nextClues := cloneClues(clues)
			var extra []*proof.Deduction
			for _, premise := range c.Premises {
				switch p := premise.(type) {
				case proof.FactPremise:
					nextClues[p.Fact] = true
				case proof.DeductionPremise:
					if _, already := nextDecided[p.Ded]; !already {
						extra = append(extra, p.Ded)
					}
				}
			}
			nextPending := append(append([]*proof.Deduction{}, rest...), extra...)
			search(nextDecided, nextClues, nextPending)
		}
	}

	search(map[*proof.Deduction]int{}, map[knowledge.Fact]bool{}, []*proof.Deduction{root})
	return best, !timedOut
}

// greedySelect picks, for every Deduction the proof needs, the first
// allowed Consequence, with no search for a smaller clue set. This is the
// fallback used when the IP search is disabled or times out with nothing
// found yet.
func greedySelect(root *proof.Deduction, allowed map[*proof.Deduction][]proof.Consequence) *selection {
	decided := make(map[*proof.Deduction]int)
	clues := make(map[knowledge.Fact]bool)
	pending := []*proof.Deduction{root}

	for len(pending) > 0 {
		d := pending[0]
		pending = pending[1:]
		if _, already := decided[d]; already {
			continue
		}
		choices := allowed[d]
		if len(choices) == 0 {
			continue
		}
		decided[d] = 0
		for _, premise := range choices[0].Premises {
			switch p := premise.(type) {
			case proof.FactPremise:
				clues[p.Fact] = true
			case proof.DeductionPremise:
				if _, already := decided[p.Ded]; !already {
					pending = append(pending, p.Ded)
				}
			}
		}
	}
	return &selection{choice: decided, clues: clues}
}
