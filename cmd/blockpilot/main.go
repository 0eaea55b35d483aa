// blockpilot is a terminal Tetris platform with a built-in autopilot.
//
// Usage:
//
//	blockpilot list              - List available games
//	blockpilot play <game>       - Play a game (press A to hand over to the pilot)
//	blockpilot sim <game>        - Run headless autopilot games
//	blockpilot scores <game>     - Show high scores for a game
//	blockpilot board             - Browse scores and runs interactively
//	blockpilot serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.blockpilot/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/blockpilot/internal/games/tetris"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockpilot",
	Short: "Terminal Tetris with an autopilot",
	Long: `blockpilot is a terminal-based Tetris platform with a built-in
autopilot that can take over the stacking at any moment.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  sim      - Run headless autopilot games and report statistics
  scores   - View high scores
  board    - Browse scores and runs interactively
  serve    - Start SSH server for remote play

Examples:
  blockpilot list
  blockpilot play tetris
  blockpilot play tetris --auto
  blockpilot sim tetris --games 20
  blockpilot scores tetris`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockpilot/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
}
