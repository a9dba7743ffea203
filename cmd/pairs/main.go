// pairs is a TUI memory game: flip tiles two at a time and clear the
// board by matching color pairs.
//
// Usage:
//
//	pairs list               - List available games
//	pairs play <game>        - Play a game
//	pairs menu               - Start menu to pick games interactively
//	pairs serve              - Start SSH server for remote play
//	pairs scores <game>      - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.pairs/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-pairs/internal/games/pairs"
	_ "github.com/vovakirdan/tui-pairs/internal/games/safari"
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
	Use:   "pairs",
	Short: "Pairs - A tile-matching memory game for your terminal",
	Long: `Pairs is a terminal memory game. A grid of face-down tiles hides
matching color pairs; flip two at a time and clear the board. Play the
classic mode at your own pace or race the clock in timed mode.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  pairs list
  pairs play pairs
  pairs play pairs --level hard --timed
  pairs menu
  pairs serve --ssh :2222
  pairs scores pairs`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pairs/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
