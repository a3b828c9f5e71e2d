package engine

import "testing"

func TestMiniMaxTakesImmediateWin(t *testing.T) {
	e := newEngine3(t)
	board := boardFrom(t, "xx_oo____")
	result, err := e.MiniMax(1, PlayerX, board)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := boardFrom(t, "xxxoo____")
	if !result.Equal(want) {
		t.Fatalf("expected %v, got %v", want, result)
	}
}

func TestMiniMaxBlocksOpponentWin(t *testing.T) {
	e := newEngine3(t)
	// O holds cells 4 and 5 and threatens cell 3; X has no win of its own
	// and every non-blocking move loses on O's reply.
	board := boardFrom(t, "x___oo__x")
	result, err := e.MiniMax(9, PlayerX, board)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.At(3) != CellX {
		t.Fatalf("expected X to block at cell 3, got %v", result)
	}
}

func TestMiniMaxDecidedBoardsReturnedUnchanged(t *testing.T) {
	e := newEngine3(t)
	boards := []string{
		"xxxoo____", // X already winning
		"ooo_xx_x_", // O already winning
		"xoxoxooxo", // full board, drawn
	}
	for _, layout := range boards {
		board := boardFrom(t, layout)
		for _, player := range []Player{PlayerX, PlayerO} {
			result, err := e.MiniMax(4, player, board)
			if err != nil {
				t.Fatalf("%q: unexpected error: %v", layout, err)
			}
			if !result.Equal(board) {
				t.Fatalf("%q: decided board changed to %v", layout, result)
			}
		}
	}
}

func TestMiniMaxDecidedBoardSkipsValidation(t *testing.T) {
	e := newEngine3(t)
	board := boardFrom(t, "xxxoo____")
	// Depth 0 would fail validation, but a decided board short-circuits it.
	result, err := e.MiniMax(0, PlayerX, board)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Equal(board) {
		t.Fatalf("expected the board back, got %v", result)
	}
}

func TestMiniMaxFillsLastEmptyCell(t *testing.T) {
	e := newEngine3(t)
	// One empty cell, no winner yet.
	board := boardFrom(t, "xox_oxoxo")
	for _, tc := range []struct {
		player Player
		want   string
	}{
		{PlayerX, "xoxxoxoxo"},
		{PlayerO, "xoxooxoxo"},
	} {
		result, err := e.MiniMax(3, tc.player, board)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := boardFrom(t, tc.want)
		if !result.Equal(want) {
			t.Fatalf("player %v: expected %v, got %v", tc.player, want, result)
		}
	}
}

func TestMiniMaxValidationFailures(t *testing.T) {
	e := newEngine3(t)
	open := boardFrom(t, "x___o____")

	if _, err := e.MiniMax(0, PlayerX, open); err != ErrInvalidDepth {
		t.Fatalf("expected ErrInvalidDepth, got %v", err)
	}
	if _, err := e.MiniMax(2, Player(3), open); err != ErrInvalidPlayer {
		t.Fatalf("expected ErrInvalidPlayer, got %v", err)
	}
	if _, err := e.MiniMax(2, PlayerX, boardFrom(t, "x___o___")); err != ErrInvalidBoardSize {
		t.Fatalf("expected ErrInvalidBoardSize for length 8, got %v", err)
	}
	bad := FromCells([]Cell{CellX, Cell(9), CellEmpty, CellEmpty, CellEmpty, CellEmpty, CellEmpty, CellEmpty, CellEmpty})
	if _, err := e.MiniMax(2, PlayerX, bad); err != ErrInvalidBoardSymbols {
		t.Fatalf("expected ErrInvalidBoardSymbols, got %v", err)
	}
}

func TestMiniMaxPrefersWinOverBlock(t *testing.T) {
	e := newEngine3(t)
	// Both sides threaten: X completes its own row instead of blocking.
	board := boardFrom(t, "xx_oo___x")
	result, err := e.MiniMax(5, PlayerX, board)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.At(2) != CellX {
		t.Fatalf("expected X to take the win at cell 2, got %v", result)
	}
}

func TestMiniMaxFullSearchNeverLosesFromEmptyBoard(t *testing.T) {
	// Self-play from the empty board with full depth must end in a draw.
	e := newEngine3(t)
	board := NewBoard(9)
	player := PlayerX
	for board.CountEmpty() > 0 {
		next, err := e.MiniMax(board.CountEmpty(), player, board)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.Equal(board) {
			break
		}
		board = next
		player = Other(player)
	}
	if e.IsWinning(PlayerX, board) || e.IsWinning(PlayerO, board) {
		t.Fatalf("perfect self-play must draw, got %v", board)
	}
	if score := e.ScoreBoard(1, PlayerX, board); score != ScoreDraw {
		t.Fatalf("expected draw score, got %d", score)
	}
}

func TestMiniMaxHorizonScoresNeutral(t *testing.T) {
	e := newEngine3(t)
	// Depth 1 from an empty board cannot see any outcome; the engine must
	// still return a legal move with exactly one new X on the board.
	board := NewBoard(9)
	result, err := e.MiniMax(1, PlayerX, board)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	placed := 0
	for i := 0; i < result.Len(); i++ {
		if result.At(i) == CellX {
			placed++
		} else if result.At(i) != CellEmpty {
			t.Fatalf("unexpected symbol on %v", result)
		}
	}
	if placed != 1 {
		t.Fatalf("expected exactly one placed symbol, got %d", placed)
	}
}

func TestMiniMaxTieBreakKeepsLastCandidate(t *testing.T) {
	e := newEngine3(t)
	// At depth 1 every move scores neutral, so the replace-on-tie scan
	// keeps the last empty cell in ascending index order.
	board := boardFrom(t, "xo_______")
	result, err := e.MiniMax(1, PlayerX, board)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.At(8) != CellX {
		t.Fatalf("expected the last enumerated move to win ties, got %v", result)
	}
}
