// Package boardio parses a starting board from plain text, either as a
// 9-line ASCII grid or as a list of (row, col, value) triples, and applies
// the resulting clues to a state.Sudoku.
package boardio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kpitt/sudoku-prover/internal/proof"
	"github.com/kpitt/sudoku-prover/internal/state"
)

// Clue is one given value at one cell, as read from input.
type Clue struct {
	Row, Col, Value int
}

// ParseGrid reads exactly nine lines, each holding nine characters: a
// digit 1-9 for a given clue, or '.' or '0' for a blank cell. It rejects
// input with the wrong number of rows or a row of the wrong width,
// mirroring the teacher's reader's row-count rejection.
func ParseGrid(r io.Reader) ([]Clue, error) {
	scanner := bufio.NewScanner(r)
	var rows []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("boardio: reading grid: %w", err)
	}
	if len(rows) != 9 {
		return nil, fmt.Errorf("boardio: grid must have exactly 9 rows, got %d", len(rows))
	}

	var clues []Clue
	for r, row := range rows {
		if len(row) != 9 {
			return nil, fmt.Errorf("boardio: row %d must have exactly 9 columns, got %d", r+1, len(row))
		}
		for c, ch := range row {
			if ch == '.' || ch == '0' {
				continue
			}
			if ch < '1' || ch > '9' {
				return nil, fmt.Errorf("boardio: row %d col %d has invalid character %q", r+1, c+1, ch)
			}
			clues = append(clues, Clue{Row: r, Col: c, Value: int(ch - '0')})
		}
	}
	return clues, nil
}

// ParseTriples reads whitespace-separated "row col value" lines (all
// 0-indexed), one clue per line.
func ParseTriples(r io.Reader) ([]Clue, error) {
	scanner := bufio.NewScanner(r)
	var clues []Clue
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("boardio: line %d: expected 3 fields \"row col value\", got %d", lineNo, len(fields))
		}
		row, err1 := strconv.Atoi(fields[0])
		col, err2 := strconv.Atoi(fields[1])
		value, err3 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("boardio: line %d: could not parse integers", lineNo)
		}
		if row < 0 || row > 8 || col < 0 || col > 8 || value < 1 || value > 9 {
			return nil, fmt.Errorf("boardio: line %d: values out of range", lineNo)
		}
		clues = append(clues, Clue{Row: row, Col: col, Value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("boardio: reading triples: %w", err)
	}
	return clues, nil
}

// Apply assigns every clue to s as a given value. It returns an error if
// two clues conflict or a clue is otherwise impossible given the clues
// already applied.
func Apply(s *state.Sudoku, clues []Clue) error {
	for _, clue := range clues {
		if s.Values[clue.Row][clue.Col] != 0 {
			if s.Values[clue.Row][clue.Col] != clue.Value {
				return fmt.Errorf("boardio: conflicting clues at (%d, %d)", clue.Row, clue.Col)
			}
			continue
		}
		s.Assign(clue.Row, clue.Col, clue.Value, proof.Consequence{Rule: "given"})
		if s.Contradiction {
			return fmt.Errorf("boardio: clue at (%d, %d)=%d makes the board unsolvable", clue.Row, clue.Col, clue.Value)
		}
	}
	return nil
}
