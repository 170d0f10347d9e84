package render

import (
	"strings"
	"testing"

	"github.com/kpitt/sudoku-prover/internal/knowledge"
	"github.com/kpitt/sudoku-prover/internal/proof"
	"github.com/kpitt/sudoku-prover/internal/proofstep"
	"github.com/kpitt/sudoku-prover/internal/state"
)

func TestFormatCellsCompactGroupsByRow(t *testing.T) {
	got := FormatCellsCompact([][2]int{{0, 0}, {0, 4}, {2, 0}})
	want := "r1c15, r3c1"
	if got != want {
		t.Fatalf("FormatCellsCompact() = %q, want %q", got, want)
	}
}

func TestFormatDigitsCompact(t *testing.T) {
	if got := FormatDigitsCompact([]int{3, 1, 2}); got != "123" {
		t.Fatalf("FormatDigitsCompact() = %q, want %q", got, "123")
	}
}

func TestRenderBoardShowsGivenDigit(t *testing.T) {
	s := state.New()
	s.Assign(0, 0, 5, proof.Consequence{Rule: "given"})
	board := RenderBoard(s)
	if !strings.Contains(board, "5") {
		t.Fatalf("expected the rendered board to contain the assigned digit")
	}
}

func TestComputeStatsCountsRules(t *testing.T) {
	ground := knowledge.AtCell(knowledge.IsValue, 0, 0, 1)
	leaf := proof.NewDeduction(knowledge.AtCell(knowledge.MustBe, 1, 1, 2))
	leaf.AddReason(proof.Consequence{Rule: "sole-candidate", Premises: []proof.Premise{proof.FactPremise{Fact: ground}}})

	step := &proofstep.Step{
		Deduction: leaf,
		Fact:      leaf.Conclusion,
		Row:       1, Col: 1, Value: 2,
		Choice: map[*proof.Deduction]int{leaf: 0},
		Clues:  []knowledge.Fact{ground},
		Order:  []*proof.Deduction{leaf},
	}

	stats := ComputeStats([]*proofstep.Step{step})
	if stats.TotalSteps != 1 {
		t.Fatalf("TotalSteps = %d, want 1", stats.TotalSteps)
	}
	if stats.RuleCounts["sole-candidate"] != 1 {
		t.Fatalf("RuleCounts[sole-candidate] = %d, want 1", stats.RuleCounts["sole-candidate"])
	}
}

func TestDrawGraphOrdersLeafBeforeRoot(t *testing.T) {
	ground := knowledge.AtCell(knowledge.IsValue, 0, 0, 1)
	leaf := proof.NewDeduction(knowledge.AtCell(knowledge.MustBe, 0, 1, 2))
	leaf.AddReason(proof.Consequence{Rule: "leaf", Premises: []proof.Premise{proof.FactPremise{Fact: ground}}})

	root := proof.NewDeduction(knowledge.AtCell(knowledge.MustBe, 0, 2, 3))
	root.AddReason(proof.Consequence{Rule: "root", Premises: []proof.Premise{proof.DeductionPremise{Ded: leaf}}})

	step := &proofstep.Step{
		Deduction: root,
		Fact:      root.Conclusion,
		Row:       0, Col: 2, Value: 3,
		Choice: map[*proof.Deduction]int{leaf: 0, root: 0},
		Order:  []*proof.Deduction{leaf, root},
	}

	diagram := DrawGraph(step)
	leafIdx := strings.Index(diagram, shortLabel(leaf))
	rootIdx := strings.Index(diagram, shortLabel(root))
	if leafIdx == -1 || rootIdx == -1 || leafIdx > rootIdx {
		t.Fatalf("expected leaf to render above root in the diagram:\n%s", diagram)
	}
}
