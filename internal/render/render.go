// Package render turns proof-step results and board state into the
// human-readable output the interactive shell prints: compact cell/house
// notation, a colored board grid, per-step lemma explanations, solve
// statistics, and an ASCII diagram of a proof's dependency graph.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/kpitt/sudoku-prover/internal/knowledge"
	"github.com/kpitt/sudoku-prover/internal/proof"
	"github.com/kpitt/sudoku-prover/internal/proofstep"
	"github.com/kpitt/sudoku-prover/internal/state"
)

// FormatCellsCompact renders a list of (row, col) cells as "r1c25, r3c1"
// style compact notation, one group per shared row.
func FormatCellsCompact(cells [][2]int) string {
	byRow := make(map[int][]int)
	rows := make([]int, 0)
	for _, cell := range cells {
		r, c := cell[0], cell[1]
		if _, seen := byRow[r]; !seen {
			rows = append(rows, r)
		}
		byRow[r] = append(byRow[r], c)
	}
	sort.Ints(rows)
	parts := make([]string, 0, len(rows))
	for _, r := range rows {
		cols := byRow[r]
		sort.Ints(cols)
		colStrs := make([]string, len(cols))
		for i, c := range cols {
			colStrs[i] = fmt.Sprintf("%d", c+1)
		}
		parts = append(parts, fmt.Sprintf("r%dc%s", r+1, strings.Join(colStrs, "")))
	}
	return strings.Join(parts, ", ")
}

// FormatDigitsCompact renders a list of values as a joined digit string,
// e.g. [1, 2, 3] -> "123".
func FormatDigitsCompact(values []int) string {
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	var b strings.Builder
	for _, v := range sorted {
		fmt.Fprintf(&b, "%d", v)
	}
	return b.String()
}

// FormatDigitsSeparated renders a list of values comma-separated, e.g.
// [1, 2, 3] -> "1, 2, 3".
func FormatDigitsSeparated(values []int) string {
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}

// FormatFact renders a single Knowledge fact in prose.
func FormatFact(f knowledge.Fact) string {
	return f.String()
}

// FormatConsequence renders one rule firing: its tag, its premises, and
// any extra detail.
func FormatConsequence(c proof.Consequence) string {
	parts := make([]string, 0, len(c.Premises))
	for _, p := range c.Premises {
		switch pv := p.(type) {
		case proof.FactPremise:
			parts = append(parts, FormatFact(pv.Fact))
		case proof.DeductionPremise:
			parts = append(parts, FormatFact(pv.Ded.Conclusion))
		}
	}
	line := fmt.Sprintf("[%s] because %s", c.Rule, strings.Join(parts, " and "))
	if c.Details != "" {
		line += " (" + c.Details + ")"
	}
	return line
}

// RenderStep renders a full committed proof step: the final fill, followed
// by every lemma that proof cites, in dependency order (foundational facts
// first).
func RenderStep(step *proofstep.Step) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", color.HiWhiteString("%s", step.Fact.String()))
	for i, d := range step.Order {
		idx, ok := step.Choice[d]
		if !ok {
			continue
		}
		chosen := allowedConsequenceAt(d, idx)
		fmt.Fprintf(&b, "  %d. %s: %s\n", i+1, FormatFact(d.Conclusion), FormatConsequence(chosen))
	}
	return b.String()
}

// allowedConsequenceAt recovers the Consequence a Step's Choice map
// selected for d. Deductions may have grown more Alternatives since the
// proof was built, so this indexes defensively.
func allowedConsequenceAt(d *proof.Deduction, idx int) proof.Consequence {
	if idx < 0 || idx >= len(d.Alternatives) {
		return proof.Consequence{Rule: "unknown"}
	}
	return d.Alternatives[idx]
}

// RenderBoard draws the 9x9 grid with box-drawing borders, matching the
// teacher's board printer. Every filled cell's digit gets the same
// fatih/color style; given clues and solved cells are not told apart.
func RenderBoard(s *state.Sudoku) string {
	var b strings.Builder
	horizontal := "───"
	writeSeparator := func(left, mid, cross, right string) {
		b.WriteString(left)
		for box := 0; box < 3; box++ {
			b.WriteString(strings.Repeat(horizontal, 3))
			if box < 2 {
				b.WriteString(cross)
			}
		}
		b.WriteString(right)
		b.WriteString("\n")
	}

	writeSeparator("┌", "─", "┬", "┐")
	for r := 0; r < 9; r++ {
		b.WriteString("│")
		for c := 0; c < 9; c++ {
			v := s.Values[r][c]
			if v == 0 {
				b.WriteString(" · ")
			} else {
				b.WriteString(" " + color.HiCyanString("%d", v) + " ")
			}
			if c%3 == 2 && c != 8 {
				b.WriteString("│")
			}
		}
		b.WriteString("│\n")
		if r%3 == 2 && r != 8 {
			writeSeparator("├", "─", "┼", "┤")
		}
	}
	writeSeparator("└", "─", "┴", "┘")
	return b.String()
}

// Stats summarizes a completed or in-progress solve: how many steps were
// committed, how many times each rule was the chosen Consequence of a
// Deduction across those steps' proofs, and how often the greedy fallback
// was needed.
type Stats struct {
	TotalSteps    int
	GreedyStepsUsed int
	RuleCounts    map[string]int
	TotalClues    int
}

// ComputeStats aggregates statistics over every committed step.
func ComputeStats(steps []*proofstep.Step) Stats {
	stats := Stats{RuleCounts: make(map[string]int)}
	for _, step := range steps {
		stats.TotalSteps++
		stats.TotalClues += len(step.Clues)
		if step.UsedGreedyFallback {
			stats.GreedyStepsUsed++
		}
		for d, idx := range step.Choice {
			c := allowedConsequenceAt(d, idx)
			stats.RuleCounts[c.Rule]++
		}
	}
	return stats
}

// FormatStats renders Stats as a short report.
func FormatStats(s Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d\n", color.HiWhiteString("steps committed"), s.TotalSteps)
	fmt.Fprintf(&b, "%s: %d\n", color.HiWhiteString("greedy fallbacks"), s.GreedyStepsUsed)
	fmt.Fprintf(&b, "%s: %d\n", color.HiWhiteString("ground clues cited"), s.TotalClues)
	rules := make([]string, 0, len(s.RuleCounts))
	for rule := range s.RuleCounts {
		rules = append(rules, rule)
	}
	sort.Strings(rules)
	for _, rule := range rules {
		fmt.Fprintf(&b, "  %-20s %d\n", rule, s.RuleCounts[rule])
	}
	return b.String()
}
