// Package rules implements the deduction rule library: given the current
// candidate views in a state.Sudoku, each rule looks for one kind of
// elimination or forced placement and posts it (eliminations through
// state.Ban, forced placements through the Store's MakeDeduction), citing
// the exact premises that justify it. Rules are pure with respect to
// control flow — they only narrow state, they never choose which narrowing
// to commit as a board fill; that choice belongs to the proof-step builder.
package rules

import (
	"github.com/kpitt/sudoku-prover/internal/coord"
	"github.com/kpitt/sudoku-prover/internal/knowledge"
	"github.com/kpitt/sudoku-prover/internal/proof"
	"github.com/kpitt/sudoku-prover/internal/state"
)

// Rule is the common shape every deduction rule implements. It returns the
// number of new eliminations or forced values it found, so the engine can
// tell whether another pass is worth running.
type Rule func(s *state.Sudoku) int

// RowCells returns the nine cells of row r, in column order.
func RowCells(r int) [][2]int {
	out := make([][2]int, 9)
	for c := 0; c < 9; c++ {
		out[c] = [2]int{r, c}
	}
	return out
}

// ColCells returns the nine cells of column c, in row order.
func ColCells(c int) [][2]int {
	out := make([][2]int, 9)
	for r := 0; r < 9; r++ {
		out[r] = [2]int{r, c}
	}
	return out
}

// BoxCells returns the nine cells of section sec, in local (i, j) order.
func BoxCells(sec int) [][2]int {
	out := make([][2]int, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r, c := coord.Global(sec, i, j)
			out[i*3+j] = [2]int{r, c}
		}
	}
	return out
}

// AllUnits returns all 27 houses (9 rows, 9 columns, 9 boxes) as cell lists.
func AllUnits() [][][2]int {
	units := make([][][2]int, 0, 27)
	for i := 0; i < 9; i++ {
		units = append(units, RowCells(i))
	}
	for i := 0; i < 9; i++ {
		units = append(units, ColCells(i))
	}
	for i := 0; i < 9; i++ {
		units = append(units, BoxCells(i))
	}
	return units
}

// Candidates returns the values still possible at (r, c).
func Candidates(s *state.Sudoku, r, c int) []int {
	return s.Allowed[r][c].Unresolved()
}

// candidateDeductions returns the Deduction for every value already banned
// at (r, c) — the CantBe proofs a sole-candidate finding cites as premises.
func candidateDeductions(s *state.Sudoku, r, c int) []proof.Premise {
	resolved := s.Allowed[r][c].Resolved()
	premises := make([]proof.Premise, 0, len(resolved))
	for _, d := range resolved {
		if d != nil {
			premises = append(premises, proof.DeductionPremise{Ded: d})
		}
	}
	return premises
}

// SoleCandidate finds every unresolved cell with exactly one remaining
// candidate value and posts it as a MustBe, citing the CantBe Deductions
// that eliminated the other eight values as premises. Grounded on
// deduction_rules.py's only_one_value.
func SoleCandidate(s *state.Sudoku) int {
	found := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if s.Values[r][c] != 0 {
				continue
			}
			if s.Allowed[r][c].Len() != 1 {
				continue
			}
			value := s.Allowed[r][c].Sole()
			fact := knowledge.AtCell(knowledge.MustBe, r, c, value)
			if _, exists := s.Store.Get(fact); exists {
				continue
			}
			s.Store.MakeDeduction(fact, proof.Consequence{
				Rule:     "sole-candidate",
				Premises: candidateDeductions(s, r, c),
			})
			found++
		}
	}
	return found
}

// solePositionForUnit checks one value within one house, expressed through
// a slot-map keyed by the house's internal position (column within a row,
// row within a column, or local index within a box). It posts a MustBe
// when exactly one position remains. Grounded on only_this_cell.
func solePositionForUnit(
	cells [][2]int,
	value int,
	view knowledge.View,
	posKey func(r, c int) int,
	s *state.Sudoku,
	slot interface {
		Len() int
		Sole() int
		Resolved() []*proof.Deduction
	},
	ruleTag string,
) int {
	if slot.Len() != 1 {
		return 0
	}
	key := slot.Sole()
	var row, col int
	for _, cell := range cells {
		if posKey(cell[0], cell[1]) == key {
			row, col = cell[0], cell[1]
			break
		}
	}
	if s.Values[row][col] != 0 {
		return 0
	}
	var fact knowledge.Fact
	switch view {
	case knowledge.RowPos:
		fact = knowledge.New(knowledge.MustBe, knowledge.RowPos, knowledge.Position{P0: row, P1: col}, value)
	case knowledge.ColPos:
		fact = knowledge.New(knowledge.MustBe, knowledge.ColPos, knowledge.Position{P0: col, P1: row}, value)
	case knowledge.SecPos:
		sec := coord.Section(row, col)
		i, j := coord.Local(row, col)
		fact = knowledge.New(knowledge.MustBe, knowledge.SecPos, knowledge.Position{P0: sec, P1: i*3 + j}, value)
	}
	if _, exists := s.Store.Get(fact); exists {
		return 0
	}
	premises := make([]proof.Premise, 0, len(slot.Resolved()))
	for _, d := range slot.Resolved() {
		if d != nil {
			premises = append(premises, proof.DeductionPremise{Ded: d})
		}
	}
	s.Store.MakeDeduction(fact, proof.Consequence{Rule: ruleTag, Premises: premises})
	return 1
}

// SolePosition finds, for every row/column/box and every value, whether
// only one cell in that house can still hold it, and posts the MustBe.
func SolePosition(s *state.Sudoku) int {
	found := 0
	for r := 0; r < 9; r++ {
		for v := 1; v <= 9; v++ {
			found += solePositionForUnit(RowCells(r), v, knowledge.RowPos,
				func(row, col int) int { return col }, s, s.RowPos[r][v-1], "sole-position-row")
		}
	}
	for c := 0; c < 9; c++ {
		for v := 1; v <= 9; v++ {
			found += solePositionForUnit(ColCells(c), v, knowledge.ColPos,
				func(row, col int) int { return row }, s, s.ColPos[c][v-1], "sole-position-col")
		}
	}
	for sec := 0; sec < 9; sec++ {
		for v := 1; v <= 9; v++ {
			found += solePositionForUnit(BoxCells(sec), v, knowledge.SecPos,
				func(row, col int) int { i, j := coord.Local(row, col); return i*3 + j },
				s, s.SecPos[sec][v-1], "sole-position-box")
		}
	}
	return found
}

// All is the full rule library, run in this order every pass. Order
// matters only for how quickly a pass converges, not for correctness: every
// rule only ever bans candidates that are genuinely impossible.
var All = []Rule{
	SoleCandidate,
	SolePosition,
	NakedPair,
	NakedTriple,
	HiddenPair,
	HiddenTriple,
	BoxLine,
	LineBox,
	XWing,
	Swordfish,
	YWing,
}

// RunToFixedPoint applies every rule in All repeatedly until a full pass
// finds nothing new, or a contradiction is detected. It returns the total
// number of eliminations/forced values posted.
func RunToFixedPoint(s *state.Sudoku) int {
	total := 0
	for {
		if s.Contradiction {
			return total
		}
		passFound := 0
		for _, rule := range All {
			passFound += rule(s)
			if s.Contradiction {
				return total + passFound
			}
		}
		total += passFound
		if passFound == 0 {
			return total
		}
	}
}
