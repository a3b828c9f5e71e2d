package engine

import "errors"

var (
	ErrInvalidBoardSymbols = errors.New("board contains an unrecognized symbol")
	ErrInvalidBoardSize    = errors.New("board size does not match the configured geometry")
	ErrInvalidPlayer       = errors.New("player is not one of the two recognized symbols")
	ErrInvalidDepth        = errors.New("search depth must be at least 1")
)
