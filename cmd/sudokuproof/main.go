// Command sudokuproof is an interactive shell around the knowledge-graph
// Sudoku solver: load a board, step through forced fills one at a time (or
// run to completion), and inspect the minimal proof behind any fill.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/kpitt/sudoku-prover/internal/boardio"
	"github.com/kpitt/sudoku-prover/internal/engine"
	"github.com/kpitt/sudoku-prover/internal/proof"
	"github.com/kpitt/sudoku-prover/internal/proofstep"
	"github.com/kpitt/sudoku-prover/internal/render"
	"github.com/kpitt/sudoku-prover/internal/state"
	"github.com/kpitt/sudoku-prover/internal/unique"
)

func main() {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println(color.HiWhiteString("sudokuproof — knowledge-graph Sudoku solver"))
		fmt.Println(color.HiBlackString("type \"help\" for a list of commands"))
	}

	shell := newShell(os.Stdin, os.Stdout)
	shell.run()
}

type shell struct {
	in     *bufio.Scanner
	out    *os.File
	sudoku *state.Sudoku
	eng    *engine.Engine
	cfg    proofstep.Config
}

func newShell(in *os.File, out *os.File) *shell {
	s := state.New()
	cfg := proofstep.DefaultConfig()
	return &shell{
		in:     bufio.NewScanner(in),
		out:    out,
		sudoku: s,
		eng:    engine.New(s, cfg),
		cfg:    cfg,
	}
}

func (sh *shell) run() {
	for {
		fmt.Fprint(sh.out, "> ")
		if !sh.in.Scan() {
			return
		}
		line := strings.TrimSpace(sh.in.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd := fields[0]
		args := fields[1:]

		switch cmd {
		case "help":
			sh.printHelp()
		case "load":
			sh.cmdLoad(args)
		case "set":
			sh.cmdSet(args)
		case "ban":
			sh.cmdBan(args)
		case "step":
			sh.cmdStep()
		case "solve":
			sh.cmdSolve()
		case "proof":
			sh.cmdProof()
		case "stats":
			sh.cmdStats()
		case "unique":
			sh.cmdUnique()
		case "board":
			fmt.Fprint(sh.out, render.RenderBoard(sh.sudoku))
		case "config":
			sh.cmdConfig(args)
		case "quit", "exit":
			return
		default:
			fmt.Fprintf(sh.out, "unrecognized command %q\n", cmd)
		}
	}
}

func (sh *shell) printHelp() {
	fmt.Fprintln(sh.out, `commands:
  load <path>            read a 9-line ASCII grid as the starting board
  set <row> <col> <val>  assign a given value to a cell
  ban <row> <col> <val>  manually rule out a candidate value at a cell
  step                   run one rule pass and commit the cheapest forced fill
  solve                  run to completion (solved, stuck, or contradiction)
  proof                  show the proof for the most recently committed step
  stats                  show rule-usage statistics for the steps so far
  unique                 check whether the current board has a unique completion
  board                  print the current board
  config <name> <value>  set k-opt, ip-time-limit, greedy, reset-always, or ignore-filled
  quit`)
}

func (sh *shell) cmdLoad(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(sh.out, "usage: load <path>")
		return
	}
	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(sh.out, "error: %v\n", err)
		return
	}
	defer f.Close()
	clues, err := boardio.ParseGrid(f)
	if err != nil {
		fmt.Fprintf(sh.out, "error: %v\n", err)
		return
	}
	sh.sudoku = state.New()
	sh.eng = engine.New(sh.sudoku, sh.cfg)
	if err := boardio.Apply(sh.sudoku, clues); err != nil {
		fmt.Fprintf(sh.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(sh.out, "loaded %d clues\n", len(clues))
}

func (sh *shell) cmdSet(args []string) {
	row, col, value, ok := parseTriple(args)
	if !ok {
		fmt.Fprintln(sh.out, "usage: set <row> <col> <value>")
		return
	}
	if sh.sudoku.Values[row][col] != 0 {
		fmt.Fprintln(sh.out, "that cell is already assigned")
		return
	}
	sh.sudoku.Assign(row, col, value, proof.Consequence{Rule: "given"})
	if sh.sudoku.Contradiction {
		fmt.Fprintln(sh.out, "that assignment makes the board unsolvable")
	}
}

func (sh *shell) cmdBan(args []string) {
	row, col, value, ok := parseTriple(args)
	if !ok {
		fmt.Fprintln(sh.out, "usage: ban <row> <col> <value>")
		return
	}
	sh.sudoku.Ban(row, col, value, proof.Consequence{Rule: "manual-ban"})
}

func parseTriple(args []string) (row, col, value int, ok bool) {
	if len(args) != 3 {
		return 0, 0, 0, false
	}
	var err1, err2, err3 error
	row, err1 = strconv.Atoi(args[0])
	col, err2 = strconv.Atoi(args[1])
	value, err3 = strconv.Atoi(args[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	if row < 0 || row > 8 || col < 0 || col > 8 || value < 1 || value > 9 {
		return 0, 0, 0, false
	}
	return row, col, value, true
}

func (sh *shell) cmdStep() {
	status, step := sh.eng.Step()
	if step != nil {
		fmt.Fprintf(sh.out, "committed (%d,%d)=%d\n", step.Row, step.Col, step.Value)
	}
	fmt.Fprintf(sh.out, "status: %s\n", status)
}

func (sh *shell) cmdSolve() {
	status := sh.eng.Run()
	fmt.Fprint(sh.out, render.RenderBoard(sh.sudoku))
	fmt.Fprintf(sh.out, "status: %s\n", status)
}

func (sh *shell) cmdProof() {
	if len(sh.eng.Steps) == 0 {
		fmt.Fprintln(sh.out, "no steps committed yet")
		return
	}
	last := sh.eng.Steps[len(sh.eng.Steps)-1]
	fmt.Fprint(sh.out, render.RenderStep(last))
	fmt.Fprint(sh.out, render.DrawGraph(last))
}

func (sh *shell) cmdStats() {
	stats := render.ComputeStats(sh.eng.Steps)
	fmt.Fprint(sh.out, render.FormatStats(stats))
}

func (sh *shell) cmdUnique() {
	if unique.IsUnique(sh.sudoku) {
		fmt.Fprintln(sh.out, "unique completion")
	} else {
		fmt.Fprintln(sh.out, "not uniquely determined")
	}
}

func (sh *shell) cmdConfig(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(sh.out, "usage: config <k-opt|ip-time-limit|greedy|reset-always|ignore-filled> <value>")
		return
	}
	name, value := args[0], args[1]
	switch name {
	case "k-opt":
		n, err := strconv.Atoi(value)
		if err != nil {
			fmt.Fprintln(sh.out, "k-opt expects an integer")
			return
		}
		sh.cfg.KOpt = n
	case "ip-time-limit":
		ms, err := strconv.Atoi(value)
		if err != nil {
			fmt.Fprintln(sh.out, "ip-time-limit expects milliseconds")
			return
		}
		sh.cfg.IPTimeLimit = time.Duration(ms) * time.Millisecond
	case "greedy":
		sh.cfg.Greedy = value == "true"
	case "reset-always":
		sh.cfg.ResetAlways = value == "true"
	case "ignore-filled":
		sh.cfg.IgnoreFilled = value == "true"
	default:
		fmt.Fprintf(sh.out, "unknown config variable %q\n", name)
		return
	}
	sh.eng.Config = sh.cfg
}
