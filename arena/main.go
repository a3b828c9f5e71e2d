// Arena plays the backend's solver against itself over HTTP and tallies
// the results. Depths are configurable per side, so it doubles as a quick
// sanity check that a deeper search never loses to a shallower one.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"
)

type arena struct {
	client  *http.Client
	baseURL string
	logger  *log.Logger

	games     int
	boardSide int
	xDepth    int
	oDepth    int
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

type tally struct {
	xWins int
	oWins int
	draws int
}

func main() {
	logger := log.New(os.Stdout, "[arena] ", log.LstdFlags)
	a := &arena{
		client:    &http.Client{Timeout: 30 * time.Second},
		baseURL:   getenv("BACKEND_URL", "http://localhost:8080"),
		logger:    logger,
		games:     getenvInt("ARENA_GAMES", 10),
		boardSide: getenvInt("ARENA_BOARD_SIDE", 3),
		xDepth:    getenvInt("ARENA_X_DEPTH", 9),
		oDepth:    getenvInt("ARENA_O_DEPTH", 9),
	}

	if err := a.waitForBackend(30 * time.Second); err != nil {
		logger.Fatalf("backend unreachable: %v", err)
	}

	var result tally
	for game := 0; game < a.games; game++ {
		// Alternate who opens so neither depth always gets the first move.
		xOpens := game%2 == 0
		winner, err := a.playGame(xOpens)
		if err != nil {
			logger.Fatalf("game %d failed: %v", game+1, err)
		}
		switch winner {
		case 1:
			result.xWins++
		case 2:
			result.oWins++
		default:
			result.draws++
		}
		logger.Printf("game %d/%d done (winner=%s)", game+1, a.games, winnerLabel(winner))
	}

	logger.Printf("finished: X(depth %d) wins=%d, O(depth %d) wins=%d, draws=%d",
		a.xDepth, result.xWins, a.oDepth, result.oWins, result.draws)
}

// playGame drives one stateless game through /api/solve and returns the
// winner: 1 for X, 2 for O, 0 for a draw.
func (a *arena) playGame(xOpens bool) (int, error) {
	size := a.boardSide * a.boardSide
	board := make([]int, size)
	player := 1
	if !xOpens {
		player = 2
	}
	for ply := 0; ply < size; ply++ {
		depth := a.xDepth
		if player == 2 {
			depth = a.oDepth
		}
		next, move, err := a.solve(board, player, depth)
		if err != nil {
			return 0, err
		}
		if move < 0 {
			// The solver returned the board unchanged: already decided.
			break
		}
		board = next
		if winner := winnerOn(board, a.boardSide); winner != 0 {
			return winner, nil
		}
		player = 3 - player
	}
	return winnerOn(board, a.boardSide), nil
}

func (a *arena) solve(board []int, player, depth int) ([]int, int, error) {
	body, err := json.Marshal(solveRequest{Board: board, Player: player, Depth: depth})
	if err != nil {
		return nil, -1, err
	}
	resp, err := a.client.Post(a.baseURL+"/api/solve", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, -1, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return nil, -1, fmt.Errorf("solve returned %d: %s", resp.StatusCode, payload)
	}
	var solved solveResponse
	if err := json.NewDecoder(resp.Body).Decode(&solved); err != nil {
		return nil, -1, err
	}
	return solved.Board, solved.Move, nil
}

func (a *arena) waitForBackend(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		resp, err := a.client.Get(a.baseURL + "/api/ping")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		if time.Now().After(deadline) {
			if err != nil {
				return err
			}
			return fmt.Errorf("ping returned non-200")
		}
		time.Sleep(time.Second)
	}
}

// winnerOn checks rows, columns and both diagonals of the wire board.
func winnerOn(board []int, side int) int {
	lineOwner := func(start, step int) int {
		owner := board[start]
		if owner == 0 {
			return 0
		}
		for i := 1; i < side; i++ {
			if board[start+i*step] != owner {
				return 0
			}
		}
		return owner
	}
	for y := 0; y < side; y++ {
		if owner := lineOwner(y*side, 1); owner != 0 {
			return owner
		}
	}
	for x := 0; x < side; x++ {
		if owner := lineOwner(x, side); owner != 0 {
			return owner
		}
	}
	if owner := lineOwner(0, side+1); owner != 0 {
		return owner
	}
	return lineOwner(side-1, side-1)
}

func winnerLabel(winner int) string {
	switch winner {
	case 1:
		return "X"
	case 2:
		return "O"
	default:
		return "draw"
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
