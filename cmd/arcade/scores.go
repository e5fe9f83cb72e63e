package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/registry"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

var (
	flagScoresLevel string
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game (default: breakout).

Examples:
  arcade scores
  arcade scores --level hard
  arcade scores breakout --limit 20
  arcade scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresLevel, "level", "", "Only show one difficulty: easy, normal, hard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "breakout"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	level := ""
	if flagScoresLevel != "" {
		preset, err := config.ParseDifficulty(flagScoresLevel)
		if err != nil {
			fatal("%v", err)
		}
		level = preset.Label()
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fatal("creating game: %v", err)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fatal("%v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	scores, err := store.LevelScores(gameID, level, flagScoresLimit)
	if err != nil {
		fatal("retrieving scores: %v", err)
	}

	// Display scores
	if level != "" {
		fmt.Printf("High Scores - %s (%s)\n", title, level)
	} else {
		fmt.Printf("High Scores - %s\n", title)
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-7s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-7s  %s\n", "----", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-7s  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", scores[0].Score)
}
