package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-arcade/internal/platform/window"
	"github.com/vovakirdan/brick-arcade/internal/registry"
)

var (
	flagWindowDifficulty string
	flagScale            float64
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the brick breaker in a desktop window at the field's native
800x600 resolution.

Controls:
  Left/Right, A/D  - Move paddle
  Mouse            - Move paddle, click to launch
  1/2/3            - Pick difficulty in the menu
  Space            - Start / launch the ball
  P/Esc            - Pause
  R                - Restart (after game over or win)
  M                - Menu
  Q                - Quit

Examples:
  arcade window
  arcade window --difficulty hard --scale 1.5`,
	Run: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagWindowDifficulty, "difficulty", "", "Initial difficulty: easy, normal, hard")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the field")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := stderrLogger("arcade-window")

	entry, ok := registry.Lookup(window.GameID)
	if !ok || !entry.Supports(registry.FrontendWindow) {
		fatal("no game registered for the window front end")
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	err := window.Run(window.Options{
		Config: loadGameConfig(logger),
		Preset: parseDifficulty(flagWindowDifficulty, store),
		Seed:   runtimeConfig().Seed,
		Scale:  flagScale,
		Store:  store,
		Logger: logger,
	})
	if err != nil {
		logger.Error("window closed with error", "error", err)
		fatal("%v", err)
	}
}
