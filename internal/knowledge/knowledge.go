// Package knowledge defines the three tagged Knowledge fact variants the
// proof engine reasons over: IsValue, MustBe, and CantBe (spec.md §3).
package knowledge

import (
	"fmt"

	"github.com/kpitt/sudoku-prover/internal/coord"
)

// Kind distinguishes the three Knowledge variants.
type Kind int

const (
	IsValue Kind = iota
	MustBe
	CantBe
)

func (k Kind) String() string {
	switch k {
	case IsValue:
		return "IsValue"
	case MustBe:
		return "MustBe"
	case CantBe:
		return "CantBe"
	default:
		return "Unknown"
	}
}

// View names which of the four candidate views a Fact's Position is
// expressed in. Position is stored in that view's own coordinate system
// (never normalized to (row, col)) because two Facts discovered through
// different views, even about the same cell and value, are distinct
// Knowledge instances — spec.md §3 ties equality to the (position, value,
// coord_view) triple, not to a normalized global cell.
type View int

const (
	Cell View = iota
	RowPos
	ColPos
	SecPos
)

func (v View) String() string {
	switch v {
	case Cell:
		return "cell"
	case RowPos:
		return "rowpos"
	case ColPos:
		return "colpos"
	case SecPos:
		return "secpos"
	default:
		return "unknown"
	}
}

// Position is a view-relative coordinate pair. Its meaning depends on the
// View it is paired with in a Fact:
//   - Cell:   (row, col)
//   - RowPos: (row, col)       -- col is the rowpos slot key
//   - ColPos: (col, row)       -- row is the colpos slot key
//   - SecPos: (section, i*3+j) -- local (i,j) flattened to 0..8
type Position struct {
	P0, P1 int
}

// Fact is a single Knowledge instance: IsValue/MustBe/CantBe about one
// value at one position expressed in one coordinate view. Fact is a plain
// comparable struct, so Go's built-in == implements spec.md's equality rule
// directly: two Facts are equal iff Kind, Position, Value, and View all
// match.
type Fact struct {
	Kind     Kind
	Position Position
	Value    int
	View     View
}

// New constructs a Fact. Position must already be expressed in the
// coordinate system named by view; see the Position doc comment.
func New(kind Kind, view View, pos Position, value int) Fact {
	return Fact{Kind: kind, Position: pos, Value: value, View: view}
}

// AtCell constructs a Fact in the Cell view, the common case for rules that
// reason about a single cell's candidate set.
func AtCell(kind Kind, row, col, value int) Fact {
	return Fact{Kind: kind, Position: Position{row, col}, Value: value, View: Cell}
}

// GlobalCell normalizes Position back to (row, col) in the 9x9 grid,
// regardless of which view the Fact was expressed in.
func (f Fact) GlobalCell() (row, col int) {
	switch f.View {
	case Cell, RowPos:
		return f.Position.P0, f.Position.P1
	case ColPos:
		return f.Position.P1, f.Position.P0
	case SecPos:
		return coord.Global(f.Position.P0, f.Position.P1/3, f.Position.P1%3)
	default:
		panic("knowledge: unknown view")
	}
}

func (f Fact) String() string {
	r, c := f.GlobalCell()
	switch f.Kind {
	case IsValue:
		return fmt.Sprintf("(%d, %d) is %d", r, c, f.Value)
	case MustBe:
		return fmt.Sprintf("(%d, %d) must be %d", r, c, f.Value)
	case CantBe:
		return fmt.Sprintf("(%d, %d) can't be %d", r, c, f.Value)
	default:
		return "unknown fact"
	}
}
