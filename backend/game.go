package main

import (
	"log"
	"time"

	"github.com/mwrenn/ninarow/engine"
)

type Game struct {
	settings  GameSettings
	eng       *engine.Engine
	state     GameState
	history   MoveHistory
	xPlayer   IPlayer
	oPlayer   IPlayer
	turnStart time.Time
}

func NewGame(settings GameSettings) Game {
	g := Game{}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings GameSettings) {
	g.settings = settings
	g.eng = engine.New(engine.NewLineTable(settings.BoardSide))
	g.state.Reset(settings)
	g.history.Clear()
	g.createPlayers()
	g.turnStart = time.Now()
	g.logMatchup()
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
		g.turnStart = time.Now()
	}
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) Settings() GameSettings {
	return g.settings
}

func (g *Game) Engine() *engine.Engine {
	return g.eng
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

func (g *Game) TryApplyMove(index int) (bool, string) {
	if g.state.Status != StatusRunning {
		return false, "game not running"
	}
	if index < 0 || index >= g.state.Board.Len() {
		g.state.LastMessage = "Illegal move: out of bounds"
		return false, g.state.LastMessage
	}
	if !g.state.Board.IsEmpty(index) {
		g.state.LastMessage = "Illegal move: occupied"
		return false, g.state.LastMessage
	}

	player := g.currentPlayer()
	isEngineMove := player != nil && !player.IsHuman()
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	mover := g.state.ToMove

	g.state.LastMessage = ""
	g.state.Board = g.state.Board.WithCell(index, engine.CellFromPlayer(mover))
	g.state.LastMove = index
	g.state.HasLastMove = true
	g.state.WinningLine = nil

	entry := HistoryEntry{Index: index, Player: mover, ElapsedMs: elapsedMs, IsEngine: isEngineMove, Depth: g.settings.SearchDepth}
	g.history.Push(entry)
	g.logMovePlayed(index, mover, elapsedMs, isEngineMove)

	if g.eng.IsWinning(mover, g.state.Board) {
		g.state.WinningLine = winningLine(g.eng, mover, g.state.Board)
		if mover == engine.PlayerX {
			g.state.Status = StatusXWon
		} else {
			g.state.Status = StatusOWon
		}
		g.logWin(mover)
		return true, ""
	}
	if g.state.Board.CountEmpty() == 0 {
		g.state.Status = StatusDraw
		log.Printf("[backend] game drawn after %d moves", g.history.Size())
		return true, ""
	}

	g.state.ToMove = engine.Other(mover)
	g.turnStart = time.Now()
	return true, ""
}

// Tick advances the game by at most one move: a pending human move if the
// human is to move, otherwise the engine's reply. Returns whether a move
// was applied.
func (g *Game) Tick() bool {
	if g.state.Status != StatusRunning {
		return false
	}
	player := g.currentPlayer()
	if player == nil {
		return false
	}
	if player.IsHuman() {
		human, ok := player.(*HumanPlayer)
		if ok && human.HasPendingMove() {
			applied, _ := g.TryApplyMove(human.TakePendingMove())
			return applied
		}
		return false
	}
	index, ok := player.ChooseMove(g.state.Clone())
	if !ok {
		return false
	}
	applied, _ := g.TryApplyMove(index)
	return applied
}

func (g *Game) SubmitHumanMove(index int) bool {
	player := g.currentPlayer()
	if player == nil || !player.IsHuman() {
		return false
	}
	human, ok := player.(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingMove(index)
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	player := g.currentPlayer()
	return player != nil && player.IsHuman()
}

func (g *Game) currentPlayer() IPlayer {
	return g.playerFor(g.state.ToMove)
}

func (g *Game) playerFor(player engine.Player) IPlayer {
	if player == engine.PlayerX {
		return g.xPlayer
	}
	return g.oPlayer
}

func (g *Game) createPlayers() {
	if g.settings.XType == PlayerHuman {
		g.xPlayer = NewHumanPlayer()
	} else {
		g.xPlayer = NewEnginePlayer(g.eng, g.settings.SearchDepth)
	}
	if g.settings.OType == PlayerHuman {
		g.oPlayer = NewHumanPlayer()
	} else {
		g.oPlayer = NewEnginePlayer(g.eng, g.settings.SearchDepth)
	}
}

// winningLine returns the first fully-owned line, for highlighting.
func winningLine(eng *engine.Engine, player engine.Player, board engine.Board) []int {
	target := engine.CellFromPlayer(player)
	for _, line := range eng.Table().Lines() {
		owned := true
		for _, index := range line {
			if index >= board.Len() || board.At(index) != target {
				owned = false
				break
			}
		}
		if owned {
			return append([]int(nil), line...)
		}
	}
	return nil
}

func (g *Game) logMatchup() {
	label := func(t PlayerType) string {
		if t == PlayerEngine {
			return "Engine"
		}
		return "Human"
	}
	log.Printf("[backend] new game: X (%s) vs O (%s), side=%d depth=%d",
		label(g.settings.XType), label(g.settings.OType), g.settings.BoardSide, g.settings.SearchDepth)
}

func (g *Game) logMovePlayed(index int, player engine.Player, elapsedMs float64, isEngineMove bool) {
	if !GetConfig().LogMoves {
		return
	}
	kind := "human"
	if isEngineMove {
		kind = "engine"
	}
	log.Printf("[backend] %v played cell %d (%s, %.0fms)", player, index, kind, elapsedMs)
}

func (g *Game) logWin(player engine.Player) {
	log.Printf("[backend] %v wins after %d moves", player, g.history.Size())
}
