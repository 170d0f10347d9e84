// Package state holds the live board and the four parallel candidate views
// the rule library and solver loop consult and narrow: allowed (per cell,
// keyed by value), rowpos (per row+value, keyed by column), colpos (per
// column+value, keyed by row), and secpos (per section+value, keyed by the
// flattened local position). Every elimination is posted through Ban, which
// keeps all four views consistent and records a Deduction node per view.
package state

import (
	"github.com/kpitt/sudoku-prover/internal/coord"
	"github.com/kpitt/sudoku-prover/internal/knowledge"
	"github.com/kpitt/sudoku-prover/internal/proof"
	"github.com/kpitt/sudoku-prover/internal/slotmap"
)

// Sudoku is the full mutable solving state: the resolved grid, the four
// candidate views, and the shared proof Store every Deduction is recorded
// in.
type Sudoku struct {
	Store *proof.Store

	// Values holds the resolved value of each cell, or 0 if unresolved.
	Values [9][9]int

	// Allowed[r][c] is keyed by value 1..9: the candidate values still
	// possible at cell (r, c).
	Allowed [9][9]*slotmap.Map[int, *proof.Deduction]

	// RowPos[r][v-1] is keyed by column 0..8: the columns in row r where
	// value v could still go.
	RowPos [9][9]*slotmap.Map[int, *proof.Deduction]

	// ColPos[c][v-1] is keyed by row 0..8: the rows in column c where
	// value v could still go.
	ColPos [9][9]*slotmap.Map[int, *proof.Deduction]

	// SecPos[s][v-1] is keyed by flattened local position i*3+j 0..8: the
	// cells in section s where value v could still go.
	SecPos [9][9]*slotmap.Map[int, *proof.Deduction]

	// Contradiction is set once any candidate view empties out for a
	// still-unresolved cell/value, meaning the current partial assignment
	// is impossible.
	Contradiction bool
}

func allValueKeys() []int {
	keys := make([]int, 9)
	for v := 1; v <= 9; v++ {
		keys[v-1] = v
	}
	return keys
}

func allIndexKeys() []int {
	keys := make([]int, 9)
	for i := 0; i < 9; i++ {
		keys[i] = i
	}
	return keys
}

// New creates a Sudoku with every cell unresolved and every candidate view
// open over its full 9-key domain.
func New() *Sudoku {
	s := &Sudoku{Store: proof.NewStore()}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			s.Allowed[r][c] = slotmap.New[int, *proof.Deduction](allValueKeys()...)
		}
	}
	for r := 0; r < 9; r++ {
		for v := 0; v < 9; v++ {
			s.RowPos[r][v] = slotmap.New[int, *proof.Deduction](allIndexKeys()...)
		}
	}
	for c := 0; c < 9; c++ {
		for v := 0; v < 9; v++ {
			s.ColPos[c][v] = slotmap.New[int, *proof.Deduction](allIndexKeys()...)
		}
	}
	for sec := 0; sec < 9; sec++ {
		for v := 0; v < 9; v++ {
			s.SecPos[sec][v] = slotmap.New[int, *proof.Deduction](allIndexKeys()...)
		}
	}
	return s
}

// Ban records that value cannot go at (row, col), across all four candidate
// views at once. If the cell's own allowed view already resolved that
// value, no slot changes (rules that rediscover the same elimination
// through a different unit do not double-count it); reason is only
// attached as another Consequence to the existing Deduction nodes.
func (s *Sudoku) Ban(row, col, value int, reason proof.Consequence) {
	if s.Allowed[row][col].IsResolved(value) {
		s.addReasonToExisting(row, col, value, reason)
		return
	}

	sec := coord.Section(row, col)
	i, j := coord.Local(row, col)
	local := i*3 + j

	cellFact := knowledge.New(knowledge.CantBe, knowledge.Cell, knowledge.Position{P0: row, P1: col}, value)
	rowFact := knowledge.New(knowledge.CantBe, knowledge.RowPos, knowledge.Position{P0: row, P1: col}, value)
	colFact := knowledge.New(knowledge.CantBe, knowledge.ColPos, knowledge.Position{P0: col, P1: row}, value)
	secFact := knowledge.New(knowledge.CantBe, knowledge.SecPos, knowledge.Position{P0: sec, P1: local}, value)

	cellDed := s.Store.MakeDeduction(cellFact, reason)
	rowDed := s.Store.MakeDeduction(rowFact, reason)
	colDed := s.Store.MakeDeduction(colFact, reason)
	secDed := s.Store.MakeDeduction(secFact, reason)

	s.Allowed[row][col].Set(value, cellDed)
	s.RowPos[row][value-1].Set(col, rowDed)
	s.ColPos[col][value-1].Set(row, colDed)
	s.SecPos[sec][value-1].Set(local, secDed)

	if s.Values[row][col] == 0 {
		if s.Allowed[row][col].Len() == 0 ||
			s.RowPos[row][value-1].Len() == 0 ||
			s.ColPos[col][value-1].Len() == 0 ||
			s.SecPos[sec][value-1].Len() == 0 {
			s.Contradiction = true
		}
	}
}

// addReasonToExisting attaches an additional Consequence to the Deduction
// nodes already recorded for an already-banned (row, col, value), so that
// rediscovering the same elimination through a different rule still grows
// the proof graph's alternatives.
func (s *Sudoku) addReasonToExisting(row, col, value int, reason proof.Consequence) {
	if d, ok := s.Allowed[row][col].Get(value); ok && d != nil {
		d.AddReason(reason)
	}
	if d, ok := s.RowPos[row][value-1].Get(col); ok && d != nil {
		d.AddReason(reason)
	}
	if d, ok := s.ColPos[col][value-1].Get(row); ok && d != nil {
		d.AddReason(reason)
	}
	sec := coord.Section(row, col)
	i, j := coord.Local(row, col)
	if d, ok := s.SecPos[sec][value-1].Get(i*3 + j); ok && d != nil {
		d.AddReason(reason)
	}
}

// PeerCells returns every other cell that shares a row, column, or section
// with (row, col), without duplicates.
func PeerCells(row, col int) [][2]int {
	seen := make(map[[2]int]bool)
	var out [][2]int
	add := func(r, c int) {
		if r == row && c == col {
			return
		}
		key := [2]int{r, c}
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	for c := 0; c < 9; c++ {
		add(row, c)
	}
	for r := 0; r < 9; r++ {
		add(r, col)
	}
	baseRow, baseCol := coord.BoxBase(row, col)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			add(baseRow+i, baseCol+j)
		}
	}
	return out
}

// Assign fixes (row, col) to value: it stamps an IsValue ground fact for
// the fill (citing reason as how the fill itself came to be known — a raw
// clue or a committed MustBe), then bans every other candidate value at
// that cell and bans value from every peer cell, with the IsValue fact
// itself as the eliminator of those slots, per spec.md's set_cell contract.
// Assign panics if the cell is already assigned; callers check
// Values[row][col] first.
func (s *Sudoku) Assign(row, col, value int, reason proof.Consequence) {
	if s.Values[row][col] != 0 {
		panic("state: cell already assigned")
	}
	s.Values[row][col] = value

	isValue := knowledge.AtCell(knowledge.IsValue, row, col, value)
	s.Store.MakeDeduction(isValue, reason)
	fillReason := proof.Consequence{
		Rule:     "cell-filled",
		Premises: []proof.Premise{proof.FactPremise{Fact: isValue}},
	}

	for v := 1; v <= 9; v++ {
		if v != value && !s.Allowed[row][col].IsResolved(v) {
			s.Ban(row, col, v, fillReason)
		}
	}
	for _, peer := range PeerCells(row, col) {
		r, c := peer[0], peer[1]
		if s.Values[r][c] == 0 && !s.Allowed[r][c].IsResolved(value) {
			s.Ban(r, c, value, fillReason)
		}
	}
}

// IsSolved reports whether every cell has a resolved value.
func (s *Sudoku) IsSolved() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if s.Values[r][c] == 0 {
				return false
			}
		}
	}
	return true
}
