package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kpitt/sudoku-prover/internal/proof"
	"github.com/kpitt/sudoku-prover/internal/proofstep"
)

// DrawGraph renders a committed proof's dependency graph as a layered
// ASCII diagram: one row per depth, foundational ground-clue-backed
// Deductions at the top and the final committed fill at the bottom, with
// arrows showing which row's nodes justify the row below. This restores
// the ASCII proof diagram the distillation this package is built from
// dropped in favor of a plain textual lemma list.
func DrawGraph(step *proofstep.Step) string {
	depth := make(map[*proof.Deduction]int)
	var depthOf func(d *proof.Deduction) int
	depthOf = func(d *proof.Deduction) int {
		if v, ok := depth[d]; ok {
			return v
		}
		idx, ok := step.Choice[d]
		if !ok || idx >= len(d.Alternatives) {
			depth[d] = 0
			return 0
		}
		max := 0
		for _, premise := range d.Alternatives[idx].Premises {
			if dp, ok := premise.(proof.DeductionPremise); ok {
				if pd := depthOf(dp.Ded); pd+1 > max {
					max = pd + 1
				}
			}
		}
		depth[d] = max
		return max
	}

	rows := make(map[int][]*proof.Deduction)
	maxDepth := 0
	for _, d := range step.Order {
		dd := depthOf(d)
		rows[dd] = append(rows[dd], d)
		if dd > maxDepth {
			maxDepth = dd
		}
	}

	var b strings.Builder
	for level := 0; level <= maxDepth; level++ {
		nodes := rows[level]
		if len(nodes) == 0 {
			continue
		}
		labels := make([]string, len(nodes))
		for i, d := range nodes {
			labels[i] = shortLabel(d)
		}
		sort.Strings(labels)
		fmt.Fprintf(&b, "%s\n", strings.Join(labels, "   "))
		if level < maxDepth {
			connectors := strings.Repeat("  │", len(nodes))
			fmt.Fprintf(&b, "%s\n", connectors)
		}
	}
	return b.String()
}

func shortLabel(d *proof.Deduction) string {
	r, c := d.Conclusion.GlobalCell()
	return fmt.Sprintf("[r%dc%d=%d]", r+1, c+1, d.Conclusion.Value)
}
