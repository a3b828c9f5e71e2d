// Package engine picks the best next move on a square n-in-a-row board
// using exhaustive, depth-bounded minimax. The search is full-width and
// single-threaded; positions past the depth horizon score as neutral.
package engine

// Engine evaluates boards against one fixed line table. The table is
// supplied at construction and held immutably for the engine's lifetime.
type Engine struct {
	table LineTable
}

func New(table LineTable) *Engine {
	return &Engine{table: table}
}

func (e *Engine) Table() LineTable {
	return e.table
}

// Validate rejects malformed search inputs. Checks run in a fixed order
// (symbols, size, player, depth) and the first failure is returned.
func (e *Engine) Validate(depth int, player Player, board Board) error {
	for _, cell := range board.Cells() {
		if cell != CellEmpty && cell != CellX && cell != CellO {
			return ErrInvalidBoardSymbols
		}
	}
	if board.Len() != e.table.Size() {
		return ErrInvalidBoardSize
	}
	if player != PlayerX && player != PlayerO {
		return ErrInvalidPlayer
	}
	if depth < 1 {
		return ErrInvalidDepth
	}
	return nil
}
