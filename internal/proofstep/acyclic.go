// Package proofstep builds one minimal, acyclic proof for a single cell
// fill: given the Deduction the solver wants to commit, it walks the
// knowledge graph reachable from that Deduction, breaks any cycles, picks a
// minimal subset of ground clues that still proves the fill (via a 0/1
// integer program, falling back to a greedy heuristic if the program can't
// be solved in time), and numbers the result in dependency order.
package proofstep

import "github.com/kpitt/sudoku-prover/internal/proof"

type color int

const (
	white color = iota
	gray
	black
)

// allowedPaths computes, for every Deduction reachable from root, the
// subset of its Alternatives whose premises can all be resolved without
// stepping back onto the current DFS stack. A Consequence that cites a
// Deduction currently on the stack is cyclic and is dropped; a Consequence
// that cites a Deduction which turned out to have no safe alternatives of
// its own is an unprovable dead end and is dropped too. This is a direct
// translation of the three-colour DFS graph.py's _make_acyclic runs to
// break cycles before a proof is assembled.
func allowedPaths(root *proof.Deduction) map[*proof.Deduction][]proof.Consequence {
	colorOf := make(map[*proof.Deduction]color)
	allowed := make(map[*proof.Deduction][]proof.Consequence)
	var visit func(d *proof.Deduction)
	visit = func(d *proof.Deduction) {
		if colorOf[d] == black {
			return
		}
		colorOf[d] = gray
		var safe []proof.Consequence
		for _, c := range d.Alternatives {
			if consequenceIsSafe(c, colorOf, allowed, visit) {
				safe = append(safe, c)
			}
		}
		allowed[d] = safe
		colorOf[d] = black
	}
	visit(root)
	return allowed
}

func consequenceIsSafe(
	c proof.Consequence,
	colorOf map[*proof.Deduction]color,
	allowed map[*proof.Deduction][]proof.Consequence,
	visit func(d *proof.Deduction),
) bool {
	for _, premise := range c.Premises {
		dp, ok := premise.(proof.DeductionPremise)
		if !ok {
			continue // FactPremise: a ground clue, always available
		}
		switch colorOf[dp.Ded] {
		case gray:
			return false // back edge: this premise is an ancestor on the current path
		case white:
			visit(dp.Ded)
		}
		if len(allowed[dp.Ded]) == 0 {
			return false // the premise itself has no acyclic proof
		}
	}
	return true
}
