package rules

import (
	"github.com/kpitt/sudoku-prover/internal/proof"
	"github.com/kpitt/sudoku-prover/internal/state"
)

type geometry int

const (
	geomNone geometry = iota
	geomRow
	geomCol
	geomBox
)

func pivotGeometry(pivot, other [2]int) geometry {
	switch {
	case pivot[0] == other[0]:
		return geomRow
	case pivot[1] == other[1]:
		return geomCol
	case coordSection(pivot) == coordSection(other):
		return geomBox
	default:
		return geomNone
	}
}

// allowedYWingPair reports whether (g1, g2) is one of the three geometries
// spec.md restricts Y-wing to: rectangle (row+column), row+section, or
// column+section. Two pincers both sharing only a box with the pivot would
// make the pincers see each other trivially and is excluded, as is sharing
// the same axis twice.
func allowedYWingPair(g1, g2 geometry) bool {
	switch {
	case g1 == geomRow && g2 == geomCol, g1 == geomCol && g2 == geomRow:
		return true
	case g1 == geomRow && g2 == geomBox, g1 == geomBox && g2 == geomRow:
		return true
	case g1 == geomCol && g2 == geomBox, g1 == geomBox && g2 == geomCol:
		return true
	default:
		return false
	}
}

func sees(a, b [2]int) bool {
	return a[0] == b[0] || a[1] == b[1] || coordSection(a) == coordSection(b)
}

func allCells() [][2]int {
	cells := make([][2]int, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cells = append(cells, [2]int{r, c})
		}
	}
	return cells
}

func biValueCells(s *state.Sudoku) [][2]int {
	var out [][2]int
	for _, cell := range allCells() {
		r, c := cell[0], cell[1]
		if s.Values[r][c] == 0 && s.Allowed[r][c].Len() == 2 {
			out = append(out, cell)
		}
	}
	return out
}

func valueSet(s *state.Sudoku, cell [2]int) (v1, v2 int) {
	vals := Candidates(s, cell[0], cell[1])
	return vals[0], vals[1]
}

func otherOf(pair [2]int, known int) int {
	if pair[0] == known {
		return pair[1]
	}
	return pair[0]
}

// eliminateSeeingBoth bans value from every unresolved cell (other than the
// three named cells) that sees both of pincer1 and pincer2, citing the
// candidate-pinning Deductions of pivot and both pincers as premises. It
// returns the number of cells it banned value from.
func eliminateSeeingBoth(s *state.Sudoku, pivot, pincer1, pincer2 [2]int, value int) int {
	changed := 0
	var premises []proof.Premise
	premises = append(premises, candidateDeductions(s, pivot[0], pivot[1])...)
	premises = append(premises, candidateDeductions(s, pincer1[0], pincer1[1])...)
	premises = append(premises, candidateDeductions(s, pincer2[0], pincer2[1])...)

	for _, target := range allCells() {
		if target == pivot || target == pincer1 || target == pincer2 {
			continue
		}
		r, c := target[0], target[1]
		if s.Values[r][c] != 0 || s.Allowed[r][c].IsResolved(value) {
			continue
		}
		if !sees(target, pincer1) || !sees(target, pincer2) {
			continue
		}
		s.Ban(r, c, value, proof.Consequence{
			Rule:     "y-wing",
			Premises: premises,
			Details:  "pivot/pincer chain forces this value out of the wing's shared cell",
		})
		changed++
	}
	return changed
}

// YWing searches every pivot/pincer triple across the three geometries
// spec.md allows (rectangle, row+section, column+section). Open-question
// resolution: each triple is classified by one geometry pair and checked
// once, and the eliminations of every triple are added to the running
// count (accumulated, never XOR-ed), so no triple's findings are lost
// because an earlier triple already changed something.
func YWing(s *state.Sudoku) int {
	found := 0
	candidates := biValueCells(s)

	for _, pivot := range candidates {
		a, b := valueSet(s, pivot)

		for i, pincer1 := range candidates {
			if pincer1 == pivot || !sees(pivot, pincer1) {
				continue
			}
			p1a, p1b := valueSet(s, pincer1)
			var sharedWithPivot, c int
			switch {
			case p1a == a || p1a == b:
				sharedWithPivot, c = p1a, p1b
			case p1b == a || p1b == b:
				sharedWithPivot, c = p1b, p1a
			default:
				continue
			}
			if sharedWithPivot == c {
				continue
			}
			thirdPivotValue := otherOf([2]int{a, b}, sharedWithPivot)
			g1 := pivotGeometry(pivot, pincer1)

			for j, pincer2 := range candidates {
				if j <= i || pincer2 == pivot || pincer2 == pincer1 {
					continue
				}
				if !sees(pivot, pincer2) {
					continue
				}
				p2a, p2b := valueSet(s, pincer2)
				if !((p2a == thirdPivotValue && p2b == c) || (p2a == c && p2b == thirdPivotValue)) {
					continue
				}
				g2 := pivotGeometry(pivot, pincer2)
				if !allowedYWingPair(g1, g2) {
					continue
				}

				found += eliminateSeeingBoth(s, pivot, pincer1, pincer2, c)
			}
		}
	}
	return found
}
