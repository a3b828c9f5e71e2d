package engine

// IsWinning reports whether player owns every cell of any winning line.
// Lines that reach past the end of the board never match, so the check is
// safe on boards that have not been validated yet.
func (e *Engine) IsWinning(player Player, board Board) bool {
	target := CellFromPlayer(player)
	for _, line := range e.table.Lines() {
		owned := true
		for _, index := range line {
			if index >= board.Len() || board.At(index) != target {
				owned = false
				break
			}
		}
		if owned {
			return true
		}
	}
	return false
}
