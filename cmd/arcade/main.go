// arcade is a terminal brick breaker with a desktop window mode and an
// SSH server for remote play.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play [game]       - Play a game
//	arcade menu              - Pick a difficulty interactively
//	arcade window            - Play in a desktop window
//	arcade serve             - Start SSH server for remote play
//	arcade scores [game]     - Show high scores for a game
//	arcade stats [game]      - Show lifetime stats
//	arcade weather <city>    - Show the weather for a city
//	arcade config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--config <path>      - Custom breakout config YAML
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/brick-arcade/internal/games/breakout"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Brick Arcade - break bricks in your terminal",
	Long: `Brick Arcade is a brick breaker you can play in the terminal, in a
desktop window, or remotely over SSH.

Available commands:
  list     - Show all available games
  play     - Play directly
  menu     - Interactive difficulty picker
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  stats    - View lifetime stats
  weather  - Current weather and forecast for a city
  config   - Print the default config, a starting point for --config

Examples:
  arcade play --difficulty hard
  arcade menu
  arcade window --scale 1.5
  arcade serve --ssh :2222
  arcade scores --level Normal`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom breakout config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(weatherCmd)
	rootCmd.AddCommand(configCmd)
}
