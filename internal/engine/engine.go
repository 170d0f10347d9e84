// Package engine runs the solver loop: apply every deduction rule to a
// fixed point, hand the resulting set of forced cells to the proof-step
// builder, commit the step it chooses, and repeat until the board is
// solved, stuck, or contradictory.
package engine

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/kpitt/sudoku-prover/internal/knowledge"
	"github.com/kpitt/sudoku-prover/internal/proof"
	"github.com/kpitt/sudoku-prover/internal/proofstep"
	"github.com/kpitt/sudoku-prover/internal/rules"
	"github.com/kpitt/sudoku-prover/internal/state"
)

// Status is the terminal (or in-progress) outcome of a solver run.
type Status int

const (
	Running Status = iota
	Solved
	Stuck
	Contradiction
)

func (st Status) String() string {
	switch st {
	case Running:
		return "running"
	case Solved:
		return "solved"
	case Stuck:
		return "stuck"
	case Contradiction:
		return "contradiction"
	default:
		return "unknown"
	}
}

// Engine drives one Sudoku through repeated passes of rule application and
// proof-step commitment.
type Engine struct {
	Sudoku *state.Sudoku
	Config proofstep.Config
	Steps  []*proofstep.Step

	// Out receives progress lines, styled with fatih/color the same way
	// the teacher's solver reports each pass. A nil Out disables output.
	Out io.Writer
}

// New creates an Engine over s using cfg.
func New(s *state.Sudoku, cfg proofstep.Config) *Engine {
	return &Engine{Sudoku: s, Config: cfg, Out: nil}
}

func (e *Engine) logf(format string, args ...interface{}) {
	if e.Out == nil {
		return
	}
	fmt.Fprintln(e.Out, color.HiBlackString(fmt.Sprintf(format, args...)))
}

// Run applies rules and commits proof steps until the board is solved,
// stuck (no rule fires and nothing is forced), or contradictory (some
// candidate view has emptied out). It returns the terminal Status.
func (e *Engine) Run() Status {
	for {
		if e.Sudoku.Contradiction {
			e.logf("contradiction detected")
			return Contradiction
		}
		if e.Sudoku.IsSolved() {
			e.logf("board solved in %d steps", len(e.Steps))
			return Solved
		}

		found := rules.RunToFixedPoint(e.Sudoku)
		e.logf("pass complete: %d new eliminations/forced cells", found)
		if e.Sudoku.Contradiction {
			return Contradiction
		}

		fillers := e.collectFillers()
		if len(fillers) == 0 {
			e.logf("stuck: no rule produced a forced cell")
			return Stuck
		}

		step, err := proofstep.Build(fillers, e.Config)
		if err != nil {
			e.logf("stuck: %v", err)
			return Stuck
		}
		e.commit(step)
	}
}

// Step runs exactly one pass-and-commit cycle instead of looping to
// completion, for the interactive "step" shell command.
func (e *Engine) Step() (Status, *proofstep.Step) {
	if e.Sudoku.Contradiction {
		return Contradiction, nil
	}
	if e.Sudoku.IsSolved() {
		return Solved, nil
	}
	rules.RunToFixedPoint(e.Sudoku)
	if e.Sudoku.Contradiction {
		return Contradiction, nil
	}
	fillers := e.collectFillers()
	if len(fillers) == 0 {
		return Stuck, nil
	}
	step, err := proofstep.Build(fillers, e.Config)
	if err != nil {
		return Stuck, nil
	}
	e.commit(step)
	if e.Sudoku.Contradiction {
		return Contradiction, step
	}
	if e.Sudoku.IsSolved() {
		return Solved, step
	}
	return Running, step
}

// collectFillers gathers every currently-recorded MustBe Deduction whose
// cell is still unresolved — the candidate set the proof-step builder
// chooses among this pass.
func (e *Engine) collectFillers() []*proof.Deduction {
	var fillers []*proof.Deduction
	for _, d := range e.Sudoku.Store.Nodes() {
		if d.Conclusion.Kind != knowledge.MustBe {
			continue
		}
		row, col := d.Conclusion.GlobalCell()
		if e.Sudoku.Values[row][col] != 0 {
			continue
		}
		fillers = append(fillers, d)
	}
	return fillers
}

func (e *Engine) commit(step *proofstep.Step) {
	reason := proof.Consequence{
		Rule:     "committed-fill",
		Premises: []proof.Premise{proof.DeductionPremise{Ded: step.Deduction}},
	}
	e.Sudoku.Assign(step.Row, step.Col, step.Value, reason)
	e.Steps = append(e.Steps, step)
	e.logf("committed (%d, %d) = %d via %d deduction(s), %d ground clue(s)",
		step.Row, step.Col, step.Value, len(step.Choice), len(step.Clues))
}
