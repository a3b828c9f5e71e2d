// Terminal client for playing against the minimax engine in-process.
package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/mwrenn/ninarow/engine"
)

type game struct {
	eng    *engine.Engine
	board  engine.Board
	toMove engine.Player
	human  engine.Player
	depth  int
	side   int
}

func newGame(side, depth int, human engine.Player) *game {
	table := engine.NewLineTable(side)
	return &game{
		eng:    engine.New(table),
		board:  engine.NewBoard(table.Size()),
		toMove: engine.PlayerX,
		human:  human,
		depth:  depth,
		side:   side,
	}
}

func (g *game) over() (string, bool) {
	if g.eng.IsWinning(engine.PlayerX, g.board) {
		return "X wins!", true
	}
	if g.eng.IsWinning(engine.PlayerO, g.board) {
		return "O wins!", true
	}
	if g.board.CountEmpty() == 0 {
		return "Draw.", true
	}
	return "", false
}

func (g *game) humanMove(index int) bool {
	if g.toMove != g.human || !g.board.IsEmpty(index) {
		return false
	}
	g.board = g.board.WithCell(index, engine.CellFromPlayer(g.human))
	g.toMove = engine.Other(g.toMove)
	return true
}

func (g *game) engineMove() bool {
	next, err := g.eng.MiniMax(g.depth, g.toMove, g.board)
	if err != nil || next.Equal(g.board) {
		return false
	}
	g.board = next
	g.toMove = engine.Other(g.toMove)
	return true
}

func main() {
	app := tview.NewApplication()

	var humanSymbol string
	var depthOption string
	var sideOption string

	var showStartScreen func()
	var startGame func()

	showStartScreen = func() {
		form := tview.NewForm()
		form.
			AddDropDown("Your symbol", []string{"X", "O"}, 0, func(option string, index int) {
				humanSymbol = option
			}).
			AddDropDown("Board side", []string{"3", "4"}, 0, func(option string, index int) {
				sideOption = option
			}).
			AddDropDown("Search depth", []string{"Full", "1", "2", "3", "4", "5", "6"}, 0, func(option string, index int) {
				depthOption = option
			}).
			AddButton("Start Game", func() {
				startGame()
			}).
			AddButton("Quit", func() {
				app.Stop()
			})
		form.SetBorder(true).SetTitle("n-in-a-row").SetTitleAlign(tview.AlignCenter)

		app.SetRoot(form, true).SetFocus(form)
	}

	startGame = func() {
		side := 3
		if sideOption == "4" {
			side = 4
		}
		// "Full" means the whole board on 3x3; larger boards get a capped
		// horizon to keep the full-width search interactive.
		depth := side * side
		if side > 3 {
			depth = 6
		}
		switch depthOption {
		case "1":
			depth = 1
		case "2":
			depth = 2
		case "3":
			depth = 3
		case "4":
			depth = 4
		case "5":
			depth = 5
		case "6":
			depth = 6
		}
		human := engine.PlayerX
		if humanSymbol == "O" {
			human = engine.PlayerO
		}
		g := newGame(side, depth, human)

		boardTable := tview.NewTable()
		boardTable.SetSelectable(true, true)
		boardTable.SetBorder(true)
		boardTable.SetBorders(true)
		boardTable.SetTitleAlign(tview.AlignLeft)
		boardTable.SetBorderColor(tcell.ColorGreen)

		updateBoard := func() {
			for y := 0; y < side; y++ {
				for x := 0; x < side; x++ {
					symbol := " "
					color := tcell.ColorWhite
					switch g.board.At(y*side + x) {
					case engine.CellX:
						symbol = "X"
						color = tcell.ColorYellow
					case engine.CellO:
						symbol = "O"
						color = tcell.ColorAqua
					}
					cell := tview.NewTableCell(" " + symbol + " ")
					cell.SetAlign(tview.AlignCenter)
					cell.SetTextColor(color)
					boardTable.SetCell(y, x, cell)
				}
			}
			boardTable.SetTitle(fmt.Sprintf(" %v to move (you are %v) ", g.toMove, g.human))
		}

		var showGameOver func(message string)
		showGameOver = func(message string) {
			modal := tview.NewModal().
				SetText("Game over!\n" + message).
				AddButtons([]string{"New Game", "Quit"}).
				SetDoneFunc(func(buttonIndex int, buttonLabel string) {
					if buttonLabel == "New Game" {
						showStartScreen()
					} else {
						app.Stop()
					}
				})
			app.SetRoot(modal, false).SetFocus(modal)
		}

		advance := func() {
			if message, done := g.over(); done {
				updateBoard()
				showGameOver(message)
				return
			}
			if g.toMove != g.human {
				g.engineMove()
				updateBoard()
				if message, done := g.over(); done {
					showGameOver(message)
				}
			}
		}

		boardTable.SetSelectedFunc(func(row, column int) {
			if g.humanMove(row*side + column) {
				updateBoard()
				advance()
			}
		})
		boardTable.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
			return event
		})

		updateBoard()
		app.SetRoot(boardTable, true).SetFocus(boardTable)
		// If the engine opens the game, let it move right away.
		advance()
	}

	showStartScreen()

	if err := app.Run(); err != nil {
		panic(err)
	}
}
