package rules

import (
	"github.com/kpitt/sudoku-prover/internal/cellset"
	"github.com/kpitt/sudoku-prover/internal/proof"
	"github.com/kpitt/sudoku-prover/internal/state"
)

// combinations returns every k-element subset of {0, ..., n-1}, as index
// lists. n is at most 9 here (the cells, values, rows or columns of one
// house or grid), so this is cheap to enumerate in full rather than worth
// making lazy.
func combinations(n, k int) [][]int {
	var out [][]int
	var pick func(start int, chosen []int)
	pick = func(start int, chosen []int) {
		if len(chosen) == k {
			out = append(out, append([]int(nil), chosen...))
			return
		}
		for i := start; i < n; i++ {
			pick(i+1, append(chosen, i))
		}
	}
	pick(0, nil)
	return out
}

// nakedSubset looks, within one house, for a group of k unresolved cells
// whose combined candidate set has exactly k values, and bans those values
// from every other cell in the house. Grounded on deduction_rules.py's
// nake_pair, generalized to k=3 for the triple case techniques.go's
// checkNakedTriplesForHouse drives with a subset-union loop.
func nakedSubset(s *state.Sudoku, cells [][2]int, k int, ruleTag string) int {
	unresolved := make([][2]int, 0, 9)
	for _, cell := range cells {
		if s.Values[cell[0]][cell[1]] == 0 {
			unresolved = append(unresolved, cell)
		}
	}
	if len(unresolved) <= k {
		return 0
	}
	found := 0
	for _, combo := range combinations(len(unresolved), k) {
		group := make([][2]int, k)
		union := cellset.New[int]()
		for i, idx := range combo {
			group[i] = unresolved[idx]
			for _, v := range Candidates(s, group[i][0], group[i][1]) {
				union.Add(v)
			}
		}
		if union.Size() != k {
			continue
		}
		values := union.Values()
		for _, cell := range unresolved {
			if containsCell(group, cell) {
				continue
			}
			for _, v := range values {
				if !s.Allowed[cell[0]][cell[1]].IsResolved(v) {
					s.Ban(cell[0], cell[1], v, proof.Consequence{
						Rule:     ruleTag,
						Premises: groupPremises(s, group),
						Details:  "naked subset over the shared values in this house",
					})
					found++
				}
			}
		}
	}
	return found
}

func containsCell(group [][2]int, cell [2]int) bool {
	for _, g := range group {
		if g == cell {
			return true
		}
	}
	return false
}

// groupPremises cites the resolved (banned) candidates of every cell in
// group as premises: together they are what pins each cell's candidates
// down to the shared subset.
func groupPremises(s *state.Sudoku, group [][2]int) []proof.Premise {
	var premises []proof.Premise
	for _, cell := range group {
		premises = append(premises, candidateDeductions(s, cell[0], cell[1])...)
	}
	return premises
}

// NakedPair implements the naked-pair technique over every house.
func NakedPair(s *state.Sudoku) int {
	found := 0
	for _, unit := range AllUnits() {
		found += nakedSubset(s, unit, 2, "naked-pair")
	}
	return found
}

// NakedTriple implements the naked-triple technique over every house.
func NakedTriple(s *state.Sudoku) int {
	found := 0
	for _, unit := range AllUnits() {
		found += nakedSubset(s, unit, 3, "naked-triple")
	}
	return found
}

// hiddenSubset looks, within one house, for k values confined between them
// to the same k cells, and strips every other candidate from those cells.
// Grounded on deduction_rules.py's hidden_pair, generalized to k=3.
func hiddenSubset(s *state.Sudoku, cells [][2]int, k int, ruleTag string) int {
	valuePositions := make(map[int][][2]int)
	for v := 1; v <= 9; v++ {
		for _, cell := range cells {
			if s.Values[cell[0]][cell[1]] != 0 {
				continue
			}
			if !s.Allowed[cell[0]][cell[1]].IsResolved(v) {
				valuePositions[v] = append(valuePositions[v], cell)
			}
		}
	}
	candidateValues := make([]int, 0, len(valuePositions))
	for v, positions := range valuePositions {
		if len(positions) > 0 && len(positions) <= k {
			candidateValues = append(candidateValues, v)
		}
	}
	found := 0
	for _, combo := range combinations(len(candidateValues), k) {
		values := make([]int, k)
		union := cellset.New[[2]int]()
		for i, idx := range combo {
			values[i] = candidateValues[idx]
			for _, pos := range valuePositions[values[i]] {
				union.Add(pos)
			}
		}
		if union.Size() != k {
			continue
		}
		groupCells := union.Values()
		premises := valuePremises(s, cells, values)
		for _, cell := range groupCells {
			for _, v := range Candidates(s, cell[0], cell[1]) {
				if containsValue(values, v) {
					continue
				}
				s.Ban(cell[0], cell[1], v, proof.Consequence{
					Rule:     ruleTag,
					Premises: premises,
					Details:  "values confined to a shared set of cells in this house",
				})
				found++
			}
		}
	}
	return found
}

func containsValue(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// valuePremises cites, for each value in values, the CantBe Deductions that
// confined it to its remaining positions within cells: the cell-view
// (Allowed) elimination of that value at every cell of cells, filled or not,
// where it is already banned.
func valuePremises(s *state.Sudoku, cells [][2]int, values []int) []proof.Premise {
	var premises []proof.Premise
	for _, cell := range cells {
		for _, v := range values {
			if s.Allowed[cell[0]][cell[1]].IsResolved(v) {
				if d, ok := s.Allowed[cell[0]][cell[1]].Get(v); ok && d != nil {
					premises = append(premises, proof.DeductionPremise{Ded: d})
				}
			}
		}
	}
	return premises
}

// HiddenPair implements the hidden-pair technique over every house.
func HiddenPair(s *state.Sudoku) int {
	found := 0
	for _, unit := range AllUnits() {
		found += hiddenSubset(s, unit, 2, "hidden-pair")
	}
	return found
}

// HiddenTriple implements the hidden-triple technique over every house.
// Open-question resolution: this uses the standard value -> position-set
// semantics above (not a dict keyed some other way).
func HiddenTriple(s *state.Sudoku) int {
	found := 0
	for _, unit := range AllUnits() {
		found += hiddenSubset(s, unit, 3, "hidden-triple")
	}
	return found
}
