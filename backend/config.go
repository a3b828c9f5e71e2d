package main

import "sync"

type Config struct {
	BoardSide   int  `json:"board_side"`
	SearchDepth int  `json:"search_depth"`
	TickMs      int  `json:"tick_ms"`
	LogMoves    bool `json:"log_moves"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		BoardSide:   3,
		SearchDepth: 9, // full horizon on a 3x3 board
		TickMs:      50,
		LogMoves:    true,
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = sanitizeConfig(newConfig)
	c.mu.Unlock()
}

func sanitizeConfig(config Config) Config {
	if config.BoardSide < 2 {
		config.BoardSide = 2
	}
	if config.SearchDepth < 1 {
		config.SearchDepth = 1
	}
	if config.TickMs < 10 {
		config.TickMs = 10
	}
	// Full-width search past this horizon cannot answer within a tick.
	maxDepth := 9
	if config.BoardSide > 3 {
		maxDepth = 6
	}
	if config.SearchDepth > maxDepth {
		config.SearchDepth = maxDepth
	}
	return config
}
