package main

import "github.com/mwrenn/ninarow/engine"

type GameStatus int

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusXWon
	StatusOWon
	StatusDraw
)

type GameState struct {
	Board       engine.Board
	ToMove      engine.Player
	Status      GameStatus
	HasLastMove bool
	LastMove    int
	LastMessage string
	WinningLine []int
}

func DefaultGameState(settings GameSettings) GameState {
	state := GameState{}
	state.Reset(settings)
	return state
}

func (s *GameState) Reset(settings GameSettings) {
	s.Board = engine.NewBoard(settings.BoardSide * settings.BoardSide)
	if settings.XStarts {
		s.ToMove = engine.PlayerX
	} else {
		s.ToMove = engine.PlayerO
	}
	s.Status = StatusNotStarted
	s.HasLastMove = false
	s.LastMove = -1
	s.LastMessage = ""
	s.WinningLine = nil
}

func (s GameState) Clone() GameState {
	clone := s
	clone.WinningLine = append([]int(nil), s.WinningLine...)
	return clone
}
