package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pairs/internal/core"
	"github.com/vovakirdan/tui-pairs/internal/games/pairs"
	"github.com/vovakirdan/tui-pairs/internal/platform/tui"
	"github.com/vovakirdan/tui-pairs/internal/registry"
	"github.com/vovakirdan/tui-pairs/internal/storage"
)

var (
	flagConfig string
	flagLevel  string
	flagTimed  bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  WASD/Arrows  - Move the cursor
  Space/Enter  - Flip the tile under the cursor
  P            - Pause
  R            - Restart (after game over)
  B/Esc        - Back
  Q/Ctrl+C     - Quit

Levels:
  easy    - 3x3 board (4 pairs + 1 blocked tile)
  medium  - 4x4 board (8 pairs)
  hard    - 5x5 board (12 pairs + 1 blocked tile)

Examples:
  pairs play pairs
  pairs play pairs --level medium
  pairs play pairs --level hard --timed
  pairs play pairs --config ./my-pairs.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Difficulty level: easy, medium, hard (skips the picker)")
	playCmd.Flags().BoolVar(&flagTimed, "timed", false, "Play against the level clock")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pairs list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size early for the mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	switch gameID {
	case "pairs", "pairs_timed":
		pairs.SetConfigPath(flagConfig)

		if flagTimed {
			gameID = "pairs_timed"
		}

		if flagLevel != "" {
			// Level given on the command line: skip the picker
			level := pairs.GetLevel(pairs.LevelID(flagLevel))
			if level == nil {
				fmt.Fprintf(os.Stderr, "Error: unknown level %q (easy, medium, hard)\n", flagLevel)
				os.Exit(1)
			}
			pairs.SetLevel(level.ID)
			break
		}

		// Show the mode/level selector
		selection, updatedCfg, selErr := tui.RunPairsSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		// Apply selection
		pairs.SetLevel(selection.Level)
		if selection.Mode == tui.PairsModeTimed {
			gameID = "pairs_timed"
		} else {
			gameID = "pairs"
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
