// blockfall is a terminal falling-block puzzle game.
//
// Usage:
//
//	blockfall play           - Play the game
//	blockfall list           - List available games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/mzoryn/blockfall/internal/games/tetris"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "blockfall - falling-block puzzles in your terminal",
	Long: `blockfall is a terminal-based falling-block puzzle game.

Available commands:
  play     - Start a game
  list     - Show all available games

Examples:
  blockfall play
  blockfall play tetris --seed 42
  blockfall play tetris --config ./my-tetris.yaml
  blockfall list`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
}
