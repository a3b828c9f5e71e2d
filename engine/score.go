package engine

const (
	ScoreWin  = 1
	ScoreDraw = 0
	ScoreLoss = -1
)

// ScoreBoard evaluates a terminal or horizon board from originalPlayer's
// perspective. Precedence: exhausted depth, degenerate empty board, a win
// for originalPlayer, a win for the opponent, then a full board (draw).
// The search never calls it on a non-terminal board with depth remaining.
func (e *Engine) ScoreBoard(depth int, originalPlayer Player, board Board) int {
	if depth == 0 {
		return ScoreDraw
	}
	if board.Len() == 0 {
		return ScoreDraw
	}
	if e.IsWinning(originalPlayer, board) {
		return ScoreWin
	}
	if e.IsWinning(Other(originalPlayer), board) {
		return ScoreLoss
	}
	return ScoreDraw
}
