package engine

// MiniMax returns the board after the best move for player, searching at
// most depth plies ahead. A board that is already decided (either player
// winning, or no empty cell left) is returned unchanged without touching
// validation. The search is full-width: no pruning, no heuristic leaves.
func (e *Engine) MiniMax(depth int, player Player, board Board) (Board, error) {
	if e.isTerminal(board) {
		return board, nil
	}
	if err := e.Validate(depth, player, board); err != nil {
		return Board{}, err
	}
	best, _, ok := e.miniMaxStep(depth, player, player, true, board)
	if !ok {
		// Unreachable: a non-terminal board always has at least one move.
		return board, nil
	}
	return best, nil
}

func (e *Engine) isTerminal(board Board) bool {
	return e.IsWinning(PlayerX, board) ||
		e.IsWinning(PlayerO, board) ||
		board.CountEmpty() == 0
}

// miniMaxStep scans every move of currentPlayer and keeps the best one for
// the given mode. Terminal children are scored directly; the rest recurse
// one ply deeper with the players and the mode flipped. The returned bool
// is false when no candidate exists (depth exhausted or no legal moves),
// standing in for an out-of-range sentinel score.
func (e *Engine) miniMaxStep(depth int, originalPlayer, currentPlayer Player, maximizing bool, board Board) (Board, int, bool) {
	if depth == 0 {
		return Board{}, e.ScoreBoard(0, originalPlayer, board), false
	}
	var (
		best      Board
		bestScore int
		hasBest   bool
	)
	for _, move := range AllMoves(currentPlayer, board) {
		var score int
		if e.isTerminal(move) {
			score = e.ScoreBoard(depth, originalPlayer, move)
		} else {
			_, score, _ = e.miniMaxStep(depth-1, originalPlayer, Other(currentPlayer), !maximizing, move)
		}
		if !hasBest || (maximizing && score >= bestScore) || (!maximizing && score <= bestScore) {
			best = move
			bestScore = score
			hasBest = true
		}
	}
	if !hasBest {
		return Board{}, ScoreDraw, false
	}
	return best, bestScore, true
}
