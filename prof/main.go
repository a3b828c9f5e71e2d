// Profiling harness for the minimax engine: runs full-depth searches from a
// fixed set of openings under a CPU profile, printing per-search timing.
package main

import (
	"fmt"
	"time"

	"github.com/pkg/profile"

	"github.com/mwrenn/ninarow/engine"
)

// Openings with progressively fewer empty cells; the first is the full
// empty-board search, the dominant cost at depth 9.
var openings = []string{
	"_________",
	"x________",
	"x___o____",
	"xo__x____",
}

func main() {
	defer profile.Start().Stop()
	fmt.Println("Starting...")

	eng := engine.New(engine.NewLineTable(3))
	for _, layout := range openings {
		board, player, err := parseOpening(layout)
		if err != nil {
			fmt.Println("bad opening:", err)
			continue
		}
		depth := board.CountEmpty()
		start := time.Now()
		result, err := eng.MiniMax(depth, player, board)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Println("search failed:", err)
			continue
		}
		fmt.Printf("opening %q depth %d -> %q in %s\n", layout, depth, result.String(), elapsed)
	}
}

// parseOpening reads an x/o/_ layout and infers whose turn it is from the
// stone counts (x moves first).
func parseOpening(layout string) (engine.Board, engine.Player, error) {
	cells := make([]engine.Cell, len(layout))
	xCount, oCount := 0, 0
	for i, r := range layout {
		switch r {
		case 'x':
			cells[i] = engine.CellX
			xCount++
		case 'o':
			cells[i] = engine.CellO
			oCount++
		case '_':
			cells[i] = engine.CellEmpty
		default:
			return engine.Board{}, engine.PlayerX, fmt.Errorf("unknown symbol %q", r)
		}
	}
	player := engine.PlayerX
	if xCount > oCount {
		player = engine.PlayerO
	}
	return engine.FromCells(cells), player, nil
}
