package main

type HumanPlayer struct {
	pending      bool
	pendingIndex int
}

func NewHumanPlayer() *HumanPlayer {
	return &HumanPlayer{}
}

func (h *HumanPlayer) IsHuman() bool {
	return true
}

func (h *HumanPlayer) ChooseMove(GameState) (int, bool) {
	return -1, false
}

func (h *HumanPlayer) SetPendingMove(index int) {
	h.pendingIndex = index
	h.pending = true
}

func (h *HumanPlayer) HasPendingMove() bool {
	return h.pending
}

func (h *HumanPlayer) TakePendingMove() int {
	h.pending = false
	return h.pendingIndex
}
