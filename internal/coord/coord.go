// Package coord converts between the four coordinate views a Sudoku cell is
// addressed by: the global (row, col) grid, the 3x3 section grid, and the
// local (i, j) position of a cell inside its section.
package coord

// Section returns the 0-8 index of the 3x3 section containing the cell at
// (row, col) in the 9x9 grid.
func Section(row, col int) int {
	return (row/3)*3 + col/3
}

// Local returns the local (i, j) position of (row, col) inside its section.
func Local(row, col int) (i, j int) {
	return row % 3, col % 3
}

// Global returns the (row, col) position in the 9x9 grid for the cell at
// local position (i, j) inside section sec.
func Global(sec, i, j int) (row, col int) {
	return (sec/3)*3 + i, (sec%3)*3 + j
}

// BoxBase returns the (row, col) of the top-left cell of the section
// containing (row, col).
func BoxBase(row, col int) (baseRow, baseCol int) {
	return (row / 3) * 3, (col / 3) * 3
}
