package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the reference Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:   10,
			Height:  24,
			Visible: 20,
			Buffer:  4,
			SpawnX:  4,
			SpawnY:  20,
		},
		Rules: RulesConfig{
			WinLines:      25,
			Rounds:        6,
			Points:        []int{0, 40, 100, 300, 1200},
			StageDelaysMS: []int{1333, 1083, 833, 667, 533, 417, 333, 283, 250, 217},
		},
	}
}
