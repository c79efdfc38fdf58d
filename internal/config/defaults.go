package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:  10,
			Height: 20,
		},
		Timing: TetrisTiming{
			BaseDropMs:     1000,
			MinDropMs:      100,
			LevelSpeedupMs: 100,
		},
		Scoring: TetrisScoring{
			Single:        100,
			Double:        300,
			Triple:        500,
			Tetris:        800,
			SoftDrop:      1,
			LinesPerLevel: 10,
		},
	}
}
