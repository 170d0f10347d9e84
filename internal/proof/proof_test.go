package proof

import (
	"testing"

	"github.com/kpitt/sudoku-prover/internal/knowledge"
)

func TestMakeDeductionCreatesOnFirstCall(t *testing.T) {
	s := NewStore()
	fact := knowledge.AtCell(knowledge.CantBe, 0, 0, 5)
	d := s.MakeDeduction(fact, Consequence{Rule: "sole-candidate"})
	if d.Conclusion != fact {
		t.Fatalf("Conclusion = %v, want %v", d.Conclusion, fact)
	}
	if len(d.Alternatives) != 1 {
		t.Fatalf("Alternatives = %v, want 1 entry", d.Alternatives)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestMakeDeductionReusesNodeForSameConclusion(t *testing.T) {
	s := NewStore()
	fact := knowledge.AtCell(knowledge.CantBe, 1, 1, 3)
	first := s.MakeDeduction(fact, Consequence{Rule: "naked-pair"})
	second := s.MakeDeduction(fact, Consequence{Rule: "hidden-pair"})
	if first != second {
		t.Fatalf("expected the same Deduction pointer for the same conclusion")
	}
	if len(second.Alternatives) != 2 {
		t.Fatalf("Alternatives = %v, want 2 distinct reasons", second.Alternatives)
	}
}

func TestAddReasonDedupsEqualConsequences(t *testing.T) {
	fact := knowledge.AtCell(knowledge.MustBe, 2, 2, 7)
	d := NewDeduction(fact)
	premise := knowledge.AtCell(knowledge.IsValue, 2, 0, 7)
	c := Consequence{Rule: "sole-position", Premises: []Premise{FactPremise{Fact: premise}}}
	if !d.AddReason(c) {
		t.Fatalf("first AddReason should report added")
	}
	if d.AddReason(c) {
		t.Fatalf("duplicate AddReason should report not added")
	}
	if len(d.Alternatives) != 1 {
		t.Fatalf("Alternatives = %v, want exactly 1", d.Alternatives)
	}
}

func TestDeductionPremiseEqualityIsByIdentity(t *testing.T) {
	factA := knowledge.AtCell(knowledge.CantBe, 0, 1, 4)
	factB := knowledge.AtCell(knowledge.CantBe, 0, 1, 4)
	dA := NewDeduction(factA)
	dB := NewDeduction(factB)

	c1 := Consequence{Rule: "r", Premises: []Premise{DeductionPremise{Ded: dA}}}
	c2 := Consequence{Rule: "r", Premises: []Premise{DeductionPremise{Ded: dB}}}
	if c1.Equal(c2) {
		t.Fatalf("consequences citing different Deduction pointers must not be equal, even with identical conclusions")
	}

	c3 := Consequence{Rule: "r", Premises: []Premise{DeductionPremise{Ded: dA}}}
	if !c1.Equal(c3) {
		t.Fatalf("consequences citing the same Deduction pointer should be equal")
	}
}
