package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-arcade/internal/games/breakout"
	"github.com/vovakirdan/brick-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a difficulty picker",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start. Press M in a game to
come back to the menu. The last chosen difficulty is remembered.

Controls:
  Up/Down/j/k  - Navigate menu
  1/2/3        - Start easy, normal or hard
  Enter/Space  - Start selected difficulty
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	requireTerminal()

	logger, closeLog := fileLogger("arcade")
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	gameCfg := loadGameConfig(logger)
	breakout.SetConfigPath(flagConfig)

	cfg := runtimeConfig()
	savePath, _ := breakout.DefaultSavePath() //nolint:errcheck // Quick-save is optional

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, gameCfg.Difficulties, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		game := breakout.New()
		game.SetDifficulty(menuResult.Difficulty)

		// Fresh seed for each game unless one was fixed
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, cfg,
			tui.WithLogger(logger),
			tui.WithSavePath(savePath),
			tui.WithExitToMenu(),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}
		if !backToMenu {
			break
		}
	}
}
