package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-arcade/internal/games/breakout"
	"github.com/vovakirdan/brick-arcade/internal/platform/tui"
	"github.com/vovakirdan/brick-arcade/internal/registry"
)

var (
	flagDifficulty string
	flagResume     bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: breakout).

Controls:
  Left/Right, A/D, -/+  - Move paddle
  Mouse                 - Move paddle, click to launch
  Space                 - Launch the ball
  P/Esc                 - Pause
  R                     - Restart (after game over or win)
  M                     - Menu
  Ctrl+S                - Quick-save
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - Slow ball, wide paddle, 3 rows
  normal - 5 rows
  hard   - Fast ball, narrow paddle, 7 rows

Without --difficulty the last difficulty picked in the menu is used.

Examples:
  arcade play
  arcade play breakout --difficulty hard
  arcade play --resume
  arcade play --config ./my-breakout.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Resume the quick-saved game")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "breakout"
	if len(args) > 0 {
		gameID = args[0]
	}

	entry, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
	if !entry.Supports(registry.FrontendTerminal) {
		fatal("%s does not run in the terminal (runs on: %s)", entry.Title, entry.FrontendList())
	}

	requireTerminal()

	logger, closeLog := fileLogger("arcade")
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(parseDifficulty(flagDifficulty, store))

	opts := []tui.Option{tui.WithLogger(logger)}
	savePath, err := breakout.DefaultSavePath()
	if err != nil {
		logger.Warn("quick-save disabled", "error", err)
	} else {
		opts = append(opts, tui.WithSavePath(savePath))
	}

	if flagResume {
		if savePath == "" {
			fatal("no save location: %v", err)
		}
		snap, loadErr := breakout.LoadSnapshot(savePath)
		if errors.Is(loadErr, os.ErrNotExist) {
			fatal("no saved game at %s", savePath)
		}
		if loadErr != nil {
			fatal("%v", loadErr)
		}
		opts = append(opts, tui.WithResume(&snap))
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fatal("creating game: %v", err)
	}

	if _, err := tui.Run(game, store, runtimeConfig(), opts...); err != nil {
		logger.Error("game exited with error", "error", err)
		fatal("running game: %v", err)
	}
}
