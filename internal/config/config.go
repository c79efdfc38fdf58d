// Package config provides YAML-based game configuration loading
// for the blockfall platform.
package config

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Board   TetrisBoard   `yaml:"board"`
	Timing  TetrisTiming  `yaml:"timing"`
	Scoring TetrisScoring `yaml:"scoring"`
}

// TetrisBoard defines the playfield dimensions.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisTiming defines the automatic drop timing policy.
// All values are in milliseconds.
type TetrisTiming struct {
	BaseDropMs     int `yaml:"base_drop_ms"`     // Drop interval at level 1
	MinDropMs      int `yaml:"min_drop_ms"`      // Floor for the drop interval
	LevelSpeedupMs int `yaml:"level_speedup_ms"` // Interval reduction per level
}

// TetrisScoring defines points awarded for line clears and soft drops.
type TetrisScoring struct {
	Single        int `yaml:"single"`          // 1 line cleared
	Double        int `yaml:"double"`          // 2 lines cleared
	Triple        int `yaml:"triple"`          // 3 lines cleared
	Tetris        int `yaml:"tetris"`          // 4 lines cleared
	SoftDrop      int `yaml:"soft_drop"`       // Per successful soft-drop step
	LinesPerLevel int `yaml:"lines_per_level"` // Cumulative lines per level-up
}
