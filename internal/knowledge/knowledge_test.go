package knowledge

import "testing"

func TestEqualityByFieldsNotIdentity(t *testing.T) {
	a := AtCell(CantBe, 2, 3, 7)
	b := AtCell(CantBe, 2, 3, 7)
	if a != b {
		t.Fatalf("expected value equality, got %v != %v", a, b)
	}
}

func TestDifferentViewsAreDistinctFacts(t *testing.T) {
	cellFact := Fact{Kind: CantBe, Position: Position{2, 3}, Value: 7, View: Cell}
	rowFact := Fact{Kind: CantBe, Position: Position{2, 3}, Value: 7, View: RowPos}
	if cellFact == rowFact {
		t.Fatalf("facts discovered through different views must be distinct: %v == %v", cellFact, rowFact)
	}
}

func TestGlobalCellCell(t *testing.T) {
	f := AtCell(IsValue, 4, 5, 9)
	r, c := f.GlobalCell()
	if r != 4 || c != 5 {
		t.Fatalf("GlobalCell() = (%d, %d), want (4, 5)", r, c)
	}
}

func TestGlobalCellColPos(t *testing.T) {
	// colpos Position is (col, row); a fact about row=4, col=5 is stored as (5, 4).
	f := New(MustBe, ColPos, Position{5, 4}, 9)
	r, c := f.GlobalCell()
	if r != 4 || c != 5 {
		t.Fatalf("GlobalCell() = (%d, %d), want (4, 5)", r, c)
	}
}

func TestGlobalCellSecPos(t *testing.T) {
	// section 4 (rows 3-5, cols 3-5), local (1,2) -> global (4, 5).
	f := New(CantBe, SecPos, Position{4, 1*3 + 2}, 9)
	r, c := f.GlobalCell()
	if r != 4 || c != 5 {
		t.Fatalf("GlobalCell() = (%d, %d), want (4, 5)", r, c)
	}
}

func TestStringMentionsKindAndCell(t *testing.T) {
	f := AtCell(CantBe, 0, 0, 3)
	got := f.String()
	want := "(0, 0) can't be 3"
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
