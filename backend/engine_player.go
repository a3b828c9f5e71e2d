package main

import (
	"log"

	"github.com/mwrenn/ninarow/engine"
)

// EnginePlayer answers with the minimax engine's best move. The search is
// synchronous; at the board sizes this server runs it finishes well within
// one tick.
type EnginePlayer struct {
	eng   *engine.Engine
	depth int
}

func NewEnginePlayer(eng *engine.Engine, depth int) *EnginePlayer {
	return &EnginePlayer{eng: eng, depth: depth}
}

func (p *EnginePlayer) IsHuman() bool {
	return false
}

func (p *EnginePlayer) ChooseMove(state GameState) (int, bool) {
	next, err := p.eng.MiniMax(p.depth, state.ToMove, state.Board)
	if err != nil {
		log.Printf("[backend] engine search rejected position: %v", err)
		return -1, false
	}
	index, ok := changedCell(state.Board, next)
	if !ok {
		return -1, false
	}
	return index, true
}

// changedCell finds the single cell the search filled, if any.
func changedCell(before, after engine.Board) (int, bool) {
	if before.Len() != after.Len() {
		return -1, false
	}
	for i := 0; i < before.Len(); i++ {
		if before.At(i) != after.At(i) {
			return i, true
		}
	}
	return -1, false
}
