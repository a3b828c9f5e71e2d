package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/mwrenn/ninarow/engine"
)

type StatusResponse struct {
	Settings        GameSettingsDTO   `json:"settings"`
	Config          Config            `json:"config"`
	Board           []int             `json:"board"`
	NextPlayer      int               `json:"next_player"`
	Winner          int               `json:"winner"`
	BoardSide       int               `json:"board_side"`
	Status          string            `json:"status"`
	LastMove        int               `json:"last_move"`
	History         []historyEntryDTO `json:"history"`
	WinningLine     []int             `json:"winning_line"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

type GameSettingsDTO struct {
	Mode        string `json:"mode"`
	HumanPlayer int    `json:"human_player"`
}

type apiMove struct {
	Index int `json:"index"`
}

type historyEntryDTO struct {
	Index     int     `json:"index"`
	Player    int     `json:"player"`
	ElapsedMs float64 `json:"elapsed_ms"`
	IsEngine  bool    `json:"is_engine"`
	Depth     int     `json:"depth"`
}

type historyPayload struct {
	History []historyEntryDTO `json:"history"`
}

type resetPayload struct {
	History         []historyEntryDTO `json:"history"`
	Board           []int             `json:"board"`
	NextPlayer      int               `json:"next_player"`
	Winner          int               `json:"winner"`
	Status          string            `json:"status"`
	BoardSide       int               `json:"board_side"`
	LastMove        int               `json:"last_move"`
	WinningLine     []int             `json:"winning_line"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

type settingsPayload struct {
	Settings GameSettingsDTO `json:"settings"`
	Config   Config          `json:"config"`
}

type solveRequest struct {
	Board  []int `json:"board"`
	Player int   `json:"player"`
	Depth  int   `json:"depth"`
}

type solveResponse struct {
	Board []int `json:"board"`
	Move  int   `json:"move"`
}

// solveService hands out one engine per configured board side; the line
// table is computed once and reused across requests, never per call.
type solveService struct {
	mu   sync.Mutex
	side int
	eng  *engine.Engine
}

func (s *solveService) engineFor(side int) *engine.Engine {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.eng == nil || s.side != side {
		s.side = side
		s.eng = engine.New(engine.NewLineTable(side))
	}
	return s.eng
}

func main() {
	controller := NewGameController(DefaultGameSettings())
	hub := NewHub()
	solver := &solveService{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go hub.Run(ctx.Done())
	go func() {
		ticker := time.NewTicker(time.Duration(GetConfig().TickMs) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if controller.Tick() && hub.HasClients() {
					if entry, ok := controller.LatestHistoryEntry(); ok {
						hub.broadcastHistory <- historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}}
					}
					hub.broadcastStatus <- controllerStatus(controller)
				}
			}
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/start", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings GameSettingsDTO `json:"settings"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		settings := settingsFromDTO(payload.Settings, DefaultGameSettings())
		controller.StartGame(settings)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetFromController(controller)
	})

	r.Post("/api/stop", func(w http.ResponseWriter, r *http.Request) {
		settings := controller.Settings()
		controller.Reset(settings)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetFromController(controller)
	})

	r.Post("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings *GameSettingsDTO `json:"settings"`
			Config   *Config          `json:"config"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if payload.Config != nil {
			configStore.Update(*payload.Config)
			controller.ResetForConfigChange()
		}
		if payload.Settings != nil {
			settings := settingsFromDTO(*payload.Settings, controller.Settings())
			controller.UpdateSettings(settings)
		}
		hub.broadcastSettings <- settingsPayload{
			Settings: controllerSettingsDTO(controller.Settings()),
			Config:   GetConfig(),
		}
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		var payload apiMove
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		applied, errMsg := controller.ApplyHumanMove(payload.Index)
		if !applied {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
			return
		}
		if entry, ok := controller.LatestHistoryEntry(); ok {
			hub.broadcastHistory <- historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}}
		}
		hub.broadcastStatus <- controllerStatus(controller)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/solve", func(w http.ResponseWriter, r *http.Request) {
		var payload solveRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		eng := solver.engineFor(GetConfig().BoardSide)
		board := boardFromWire(payload.Board)
		result, err := eng.MiniMax(payload.Depth, playerFromWire(payload.Player), board)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errorKind(err)})
			return
		}
		move, _ := changedCell(board, result)
		writeJSON(w, http.StatusOK, solveResponse{Board: boardToWire(result), Move: move})
	})

	r.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, controller, w, r)
	})

	server := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Println("backend listening on :8080")
	var runErr error
	select {
	case <-sigCtx.Done():
		log.Printf("[backend] shutdown signal received: %v", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			runErr = err
			log.Printf("[backend] server error: %v", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[backend] graceful shutdown failed: %v", err)
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Printf("[backend] forced close failed: %v", closeErr)
		}
	}

	cancel()
	if runErr != nil {
		log.Printf("[backend] exiting after server error: %v", runErr)
	}
}

func serveWS(hub *Hub, controller *GameController, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.Register(client)

	status := controllerStatus(controller)
	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(status)})

	go func() {
		defer conn.Close()
		if err := client.writeLoop(conn); err != nil {
			return
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_status":
			status := controllerStatus(controller)
			client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(status)})
		}
	}
}

func controllerStatus(controller *GameController) StatusResponse {
	state := controller.State()
	settings := controller.Settings()
	return StatusResponse{
		Settings:        controllerSettingsDTO(settings),
		Config:          GetConfig(),
		Board:           boardToWire(state.Board),
		NextPlayer:      playerToWire(state.ToMove),
		Winner:          winnerFromStatus(state.Status),
		BoardSide:       settings.BoardSide,
		Status:          statusToString(state.Status),
		LastMove:        lastMoveToWire(state),
		History:         historyToDTO(controller.History()),
		WinningLine:     append([]int(nil), state.WinningLine...),
		TurnStartedAtMs: controller.CurrentTurnStartedAtMs(),
	}
}

func settingsFromDTO(dto GameSettingsDTO, base GameSettings) GameSettings {
	settings := base
	switch dto.Mode {
	case "engine_vs_engine":
		settings.XType = PlayerEngine
		settings.OType = PlayerEngine
	case "human_vs_human":
		settings.XType = PlayerHuman
		settings.OType = PlayerHuman
	case "engine_vs_human":
		if dto.HumanPlayer == 2 {
			settings.XType = PlayerEngine
			settings.OType = PlayerHuman
		} else {
			settings.XType = PlayerHuman
			settings.OType = PlayerEngine
		}
	}
	return settings
}

func controllerSettingsDTO(settings GameSettings) GameSettingsDTO {
	mode := "engine_vs_human"
	if settings.XType == PlayerEngine && settings.OType == PlayerEngine {
		mode = "engine_vs_engine"
	} else if settings.XType == PlayerHuman && settings.OType == PlayerHuman {
		mode = "human_vs_human"
	}
	humanPlayer := 0
	if settings.XType == PlayerHuman {
		humanPlayer = 1
	} else if settings.OType == PlayerHuman {
		humanPlayer = 2
	}
	return GameSettingsDTO{Mode: mode, HumanPlayer: humanPlayer}
}

func boardToWire(board engine.Board) []int {
	out := make([]int, board.Len())
	for i := 0; i < board.Len(); i++ {
		out[i] = cellToWire(board.At(i))
	}
	return out
}

// boardFromWire keeps unknown symbols intact so the engine's validator can
// reject them instead of this layer silently mapping them to empty.
func boardFromWire(values []int) engine.Board {
	cells := make([]engine.Cell, len(values))
	for i, value := range values {
		cells[i] = cellFromWire(value)
	}
	return engine.FromCells(cells)
}

func cellToWire(cell engine.Cell) int {
	switch cell {
	case engine.CellX:
		return 1
	case engine.CellO:
		return 2
	default:
		return 0
	}
}

func cellFromWire(value int) engine.Cell {
	switch value {
	case 0:
		return engine.CellEmpty
	case 1:
		return engine.CellX
	case 2:
		return engine.CellO
	default:
		return engine.Cell(value)
	}
}

func playerToWire(player engine.Player) int {
	if player == engine.PlayerX {
		return 1
	}
	return 2
}

func playerFromWire(value int) engine.Player {
	switch value {
	case 1:
		return engine.PlayerX
	case 2:
		return engine.PlayerO
	default:
		// Anything else must fail the engine's player validation.
		return engine.Player(-1)
	}
}

func winnerFromStatus(status GameStatus) int {
	switch status {
	case StatusXWon:
		return 1
	case StatusOWon:
		return 2
	default:
		return 0
	}
}

func statusToString(status GameStatus) string {
	switch status {
	case StatusNotStarted:
		return "not_started"
	case StatusXWon:
		return "x_won"
	case StatusOWon:
		return "o_won"
	case StatusDraw:
		return "draw"
	default:
		return "running"
	}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, engine.ErrInvalidBoardSymbols):
		return "invalid_board_symbols"
	case errors.Is(err, engine.ErrInvalidBoardSize):
		return "invalid_board_size"
	case errors.Is(err, engine.ErrInvalidPlayer):
		return "invalid_player"
	case errors.Is(err, engine.ErrInvalidDepth):
		return "invalid_depth"
	default:
		return "internal"
	}
}

func historyToDTO(history MoveHistory) []historyEntryDTO {
	entries := history.All()
	result := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		result = append(result, historyEntryToDTO(entry))
	}
	return result
}

func historyEntryToDTO(entry HistoryEntry) historyEntryDTO {
	return historyEntryDTO{
		Index:     entry.Index,
		Player:    playerToWire(entry.Player),
		ElapsedMs: entry.ElapsedMs,
		IsEngine:  entry.IsEngine,
		Depth:     entry.Depth,
	}
}

func resetFromController(controller *GameController) resetPayload {
	state := controller.State()
	settings := controller.Settings()
	return resetPayload{
		History:         historyToDTO(controller.History()),
		Board:           boardToWire(state.Board),
		NextPlayer:      playerToWire(state.ToMove),
		Winner:          winnerFromStatus(state.Status),
		Status:          statusToString(state.Status),
		BoardSide:       settings.BoardSide,
		LastMove:        lastMoveToWire(state),
		WinningLine:     append([]int(nil), state.WinningLine...),
		TurnStartedAtMs: controller.CurrentTurnStartedAtMs(),
	}
}

// lastMoveToWire reports the most recent cell played, or -1 before the
// first move of a game.
func lastMoveToWire(state GameState) int {
	if !state.HasLastMove {
		return -1
	}
	return state.LastMove
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
