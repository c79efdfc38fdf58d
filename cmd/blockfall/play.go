package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mzoryn/blockfall/internal/core"
	"github.com/mzoryn/blockfall/internal/games/tetris"
	"github.com/mzoryn/blockfall/internal/platform/tui"
	"github.com/mzoryn/blockfall/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: tetris).

Controls:
  Left/Right/A/D  - Move piece
  Down/S          - Soft drop
  Up/W/X          - Rotate
  P/Esc           - Pause
  R/Space         - Restart (after game over)
  Q/Ctrl+C        - Quit

Examples:
  blockfall play
  blockfall play tetris
  blockfall play tetris --seed 42
  blockfall play tetris --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "tetris"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		log.Errorf("unknown game %q; run 'blockfall list' to see available games", gameID)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path for games before creation
	if gameID == "tetris" {
		tetris.SetConfigPath(flagConfig)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		log.Error("creating game", "err", err)
		os.Exit(1)
	}

	if err := tui.Run(game, cfg); err != nil {
		log.Error("running game", "err", err)
		os.Exit(1)
	}
}
