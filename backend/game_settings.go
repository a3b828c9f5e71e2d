package main

type PlayerType int

const (
	PlayerHuman PlayerType = iota
	PlayerEngine
)

type GameSettings struct {
	BoardSide   int        `json:"board_side"`
	SearchDepth int        `json:"search_depth"`
	XType       PlayerType `json:"-"`
	OType       PlayerType `json:"-"`
	XStarts     bool       `json:"x_starts"`
}

func DefaultGameSettings() GameSettings {
	config := GetConfig()
	return GameSettings{
		BoardSide:   config.BoardSide,
		SearchDepth: config.SearchDepth,
		XType:       PlayerHuman,
		OType:       PlayerEngine,
		XStarts:     true,
	}
}
