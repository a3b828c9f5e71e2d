package engine

import "fmt"

type Cell int

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

type Player int

const (
	PlayerX Player = iota
	PlayerO
)

// Other returns the opponent of player. It is its own inverse.
func Other(player Player) Player {
	if player == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Board is an immutable snapshot of the grid, cells in row-major order.
// Mutating operations return a fresh Board and leave the receiver untouched.
type Board struct {
	cells []Cell
}

func NewBoard(size int) Board {
	return Board{cells: make([]Cell, size)}
}

func FromCells(cells []Cell) Board {
	b := Board{cells: make([]Cell, len(cells))}
	copy(b.cells, cells)
	return b
}

func (b Board) Len() int {
	return len(b.cells)
}

func (b Board) At(index int) Cell {
	return b.cells[index]
}

func (b Board) IsEmpty(index int) bool {
	return index >= 0 && index < len(b.cells) && b.cells[index] == CellEmpty
}

func (b Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == CellEmpty {
			count++
		}
	}
	return count
}

func (b Board) Cells() []Cell {
	return append([]Cell(nil), b.cells...)
}

// WithCell returns a copy of the board with index set to value.
func (b Board) WithCell(index int, value Cell) Board {
	next := Board{cells: make([]Cell, len(b.cells))}
	copy(next.cells, b.cells)
	next.cells[index] = value
	return next
}

func (b Board) Equal(other Board) bool {
	if len(b.cells) != len(other.cells) {
		return false
	}
	for i, cell := range b.cells {
		if other.cells[i] != cell {
			return false
		}
	}
	return true
}

func (b Board) String() string {
	out := make([]byte, len(b.cells))
	for i, cell := range b.cells {
		switch cell {
		case CellX:
			out[i] = 'x'
		case CellO:
			out[i] = 'o'
		default:
			out[i] = '_'
		}
	}
	return string(out)
}

func (c Cell) String() string {
	switch c {
	case CellX:
		return "X"
	case CellO:
		return "O"
	default:
		return "Empty"
	}
}

func (p Player) String() string {
	if p == PlayerX {
		return "X"
	}
	return "O"
}

func CellFromPlayer(player Player) Cell {
	if player == PlayerX {
		return CellX
	}
	return CellO
}

func PlayerFromCell(cell Cell) (Player, error) {
	switch cell {
	case CellX:
		return PlayerX, nil
	case CellO:
		return PlayerO, nil
	default:
		return PlayerX, fmt.Errorf("empty cell has no player")
	}
}
