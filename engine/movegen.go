package engine

// AllMoves returns every board reachable by placing player's symbol in one
// currently-empty cell, in ascending cell-index order. The order is the
// tie-break order of the search: among equally-scored moves the last one
// enumerated wins, so results are reproducible.
func AllMoves(player Player, board Board) []Board {
	symbol := CellFromPlayer(player)
	moves := make([]Board, 0, board.CountEmpty())
	for i := 0; i < board.Len(); i++ {
		if board.At(i) == CellEmpty {
			moves = append(moves, board.WithCell(i, symbol))
		}
	}
	return moves
}
