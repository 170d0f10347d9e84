package rules

import (
	"github.com/kpitt/sudoku-prover/internal/cellset"
	"github.com/kpitt/sudoku-prover/internal/proof"
	"github.com/kpitt/sudoku-prover/internal/state"
)

// fishRows looks for k rows where a value's remaining candidate columns,
// combined, number exactly k, and bans that value from the rest of those
// columns. k=2 is X-wing, k=3 is swordfish. Grounded on deduction_rules.py's
// xwing, generalized by the subset-union loop swordfish needs.
func fishRows(s *state.Sudoku, v, k int, ruleTag string) int {
	var candidateRows []int
	colsByRow := make(map[int][]int)
	for r := 0; r < 9; r++ {
		cols := rowCandidateCols(s, r, v)
		if len(cols) >= 1 && len(cols) <= k {
			candidateRows = append(candidateRows, r)
			colsByRow[r] = cols
		}
	}
	found := 0
	for _, combo := range combinations(len(candidateRows), k) {
		rows := make([]int, k)
		union := cellset.New[int]()
		for i, idx := range combo {
			rows[i] = candidateRows[idx]
			for _, col := range colsByRow[rows[i]] {
				union.Add(col)
			}
		}
		if union.Size() != k {
			continue
		}
		cols := union.Values()
		var premises []proof.Premise
		for _, r := range rows {
			premises = append(premises, premisesFrom(s.RowPos[r][v-1].Resolved())...)
		}
		for _, col := range cols {
			for _, r := range colCandidateRows(s, col, v) {
				if containsValue(rows, r) {
					continue
				}
				s.Ban(r, col, v, proof.Consequence{
					Rule:     ruleTag,
					Premises: premises,
					Details:  "value confined to the same columns across these rows",
				})
				found++
			}
		}
	}
	return found
}

// fishCols is the dual of fishRows, swapping the roles of rows and
// columns.
func fishCols(s *state.Sudoku, v, k int, ruleTag string) int {
	var candidateCols []int
	rowsByCol := make(map[int][]int)
	for c := 0; c < 9; c++ {
		rows := colCandidateRows(s, c, v)
		if len(rows) >= 1 && len(rows) <= k {
			candidateCols = append(candidateCols, c)
			rowsByCol[c] = rows
		}
	}
	found := 0
	for _, combo := range combinations(len(candidateCols), k) {
		cols := make([]int, k)
		union := cellset.New[int]()
		for i, idx := range combo {
			cols[i] = candidateCols[idx]
			for _, row := range rowsByCol[cols[i]] {
				union.Add(row)
			}
		}
		if union.Size() != k {
			continue
		}
		rows := union.Values()
		var premises []proof.Premise
		for _, c := range cols {
			premises = append(premises, premisesFrom(s.ColPos[c][v-1].Resolved())...)
		}
		for _, row := range rows {
			for _, c := range rowCandidateCols(s, row, v) {
				if containsValue(cols, c) {
					continue
				}
				s.Ban(row, c, v, proof.Consequence{
					Rule:     ruleTag,
					Premises: premises,
					Details:  "value confined to the same rows across these columns",
				})
				found++
			}
		}
	}
	return found
}

func rowCandidateCols(s *state.Sudoku, r, v int) []int {
	var out []int
	for c := 0; c < 9; c++ {
		if s.Values[r][c] == 0 && !s.Allowed[r][c].IsResolved(v) {
			out = append(out, c)
		}
	}
	return out
}

func colCandidateRows(s *state.Sudoku, c, v int) []int {
	var out []int
	for r := 0; r < 9; r++ {
		if s.Values[r][c] == 0 && !s.Allowed[r][c].IsResolved(v) {
			out = append(out, r)
		}
	}
	return out
}

// XWing runs the row- and column-based X-wing search for every value.
func XWing(s *state.Sudoku) int {
	found := 0
	for v := 1; v <= 9; v++ {
		found += fishRows(s, v, 2, "x-wing")
		found += fishCols(s, v, 2, "x-wing")
	}
	return found
}

// Swordfish runs the row- and column-based swordfish search for every
// value.
func Swordfish(s *state.Sudoku) int {
	found := 0
	for v := 1; v <= 9; v++ {
		found += fishRows(s, v, 3, "swordfish")
		found += fishCols(s, v, 3, "swordfish")
	}
	return found
}
