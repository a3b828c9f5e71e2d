package engine

// LineTable holds every winning line for a square board as index sets:
// all rows, all columns, and the two main diagonals. It is computed once
// per side length and never changes afterwards.
type LineTable struct {
	side  int
	lines [][]int
}

func NewLineTable(side int) LineTable {
	lines := make([][]int, 0, 2*side+2)
	for y := 0; y < side; y++ {
		row := make([]int, side)
		for x := 0; x < side; x++ {
			row[x] = y*side + x
		}
		lines = append(lines, row)
	}
	for x := 0; x < side; x++ {
		col := make([]int, side)
		for y := 0; y < side; y++ {
			col[y] = y*side + x
		}
		lines = append(lines, col)
	}
	diag := make([]int, side)
	anti := make([]int, side)
	for i := 0; i < side; i++ {
		diag[i] = i*side + i
		anti[i] = i*side + (side - 1 - i)
	}
	lines = append(lines, diag, anti)
	return LineTable{side: side, lines: lines}
}

func (t LineTable) Side() int {
	return t.side
}

// Size is the cell count a board must have to match this table.
func (t LineTable) Size() int {
	return t.side * t.side
}

func (t LineTable) Lines() [][]int {
	return t.lines
}
