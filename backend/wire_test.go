package main

import (
	"testing"

	"github.com/mwrenn/ninarow/engine"
)

func TestBoardWireRoundTrip(t *testing.T) {
	values := []int{1, 2, 0, 0, 1, 0, 2, 0, 0}
	board := boardFromWire(values)
	back := boardToWire(board)
	for i, value := range values {
		if back[i] != value {
			t.Fatalf("cell %d: expected %d, got %d", i, value, back[i])
		}
	}
}

func TestBoardFromWireKeepsUnknownSymbols(t *testing.T) {
	board := boardFromWire([]int{1, 7, 0, 0, 0, 0, 0, 0, 0})
	eng := engine.New(engine.NewLineTable(3))
	if err := eng.Validate(3, engine.PlayerX, board); err != engine.ErrInvalidBoardSymbols {
		t.Fatalf("expected the validator to see the bad symbol, got %v", err)
	}
}

func TestPlayerFromWireRejectsUnknownValues(t *testing.T) {
	eng := engine.New(engine.NewLineTable(3))
	empty := boardFromWire(make([]int, 9))
	for _, value := range []int{0, 3, -1} {
		if err := eng.Validate(3, playerFromWire(value), empty); err != engine.ErrInvalidPlayer {
			t.Fatalf("wire player %d: expected ErrInvalidPlayer, got %v", value, err)
		}
	}
}

func TestErrorKindNames(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{engine.ErrInvalidBoardSymbols, "invalid_board_symbols"},
		{engine.ErrInvalidBoardSize, "invalid_board_size"},
		{engine.ErrInvalidPlayer, "invalid_player"},
		{engine.ErrInvalidDepth, "invalid_depth"},
	}
	for _, tc := range cases {
		if got := errorKind(tc.err); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestSettingsFromDTOModes(t *testing.T) {
	base := DefaultGameSettings()

	settings := settingsFromDTO(GameSettingsDTO{Mode: "engine_vs_engine"}, base)
	if settings.XType != PlayerEngine || settings.OType != PlayerEngine {
		t.Fatalf("engine_vs_engine not applied: %+v", settings)
	}
	settings = settingsFromDTO(GameSettingsDTO{Mode: "human_vs_human"}, base)
	if settings.XType != PlayerHuman || settings.OType != PlayerHuman {
		t.Fatalf("human_vs_human not applied: %+v", settings)
	}
	settings = settingsFromDTO(GameSettingsDTO{Mode: "engine_vs_human", HumanPlayer: 2}, base)
	if settings.XType != PlayerEngine || settings.OType != PlayerHuman {
		t.Fatalf("engine_vs_human with human O not applied: %+v", settings)
	}
	round := controllerSettingsDTO(settings)
	if round.Mode != "engine_vs_human" || round.HumanPlayer != 2 {
		t.Fatalf("settings DTO round trip broken: %+v", round)
	}
}

func TestConfigStoreSanitizesUpdates(t *testing.T) {
	prev := GetConfig()
	defer configStore.Update(prev)

	configStore.Update(Config{BoardSide: 0, SearchDepth: 0, TickMs: 1})
	config := GetConfig()
	if config.BoardSide < 2 {
		t.Fatalf("board side not sanitized: %d", config.BoardSide)
	}
	if config.SearchDepth < 1 {
		t.Fatalf("search depth not sanitized: %d", config.SearchDepth)
	}
	if config.TickMs < 10 {
		t.Fatalf("tick interval not sanitized: %d", config.TickMs)
	}
}

func TestStatusCarriesLastMove(t *testing.T) {
	controller := NewGameController(testSettings(PlayerHuman, PlayerHuman))
	controller.StartGame(controller.Settings())

	if got := controllerStatus(controller).LastMove; got != -1 {
		t.Fatalf("expected -1 before the first move, got %d", got)
	}
	if applied, msg := controller.ApplyHumanMove(4); !applied {
		t.Fatalf("move rejected: %s", msg)
	}
	if got := controllerStatus(controller).LastMove; got != 4 {
		t.Fatalf("expected last move 4, got %d", got)
	}
	if got := resetFromController(controller).LastMove; got != 4 {
		t.Fatalf("reset payload: expected last move 4, got %d", got)
	}

	controller.Reset(controller.Settings())
	if got := controllerStatus(controller).LastMove; got != -1 {
		t.Fatalf("expected -1 after reset, got %d", got)
	}
}

func TestSolveServiceReusesEnginePerSide(t *testing.T) {
	solver := &solveService{}
	first := solver.engineFor(3)
	if solver.engineFor(3) != first {
		t.Fatalf("engine rebuilt for an unchanged side")
	}
	if solver.engineFor(4) == first {
		t.Fatalf("engine not rebuilt after side change")
	}
}
