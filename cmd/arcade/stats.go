package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-arcade/internal/registry"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [game]",
	Short: "Show lifetime stats",
	Long: `Display lifetime stats for a game (default: breakout): games
finished, best score, bricks broken, and score table aggregates.

Examples:
  arcade stats
  arcade stats --db ./scores.db`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

var (
	statsTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statsLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(14)
	statsValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	statsBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
)

func runStats(_ *cobra.Command, args []string) {
	gameID := "breakout"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	player, err := store.LoadStats(gameID)
	if err != nil {
		fatal("%v", err)
	}
	table, err := store.GetGameStats(gameID)
	if err != nil {
		fatal("%v", err)
	}

	fmt.Println(renderStats(gameID, player, table))
}

func renderStats(gameID string, player storage.PlayerStats, table *storage.GameStats) string {
	rows := [][2]string{
		{"Games played", fmt.Sprint(player.TotalGames)},
		{"Best score", fmt.Sprint(player.BestScore)},
		{"Bricks broken", fmt.Sprint(player.TotalBricks)},
		{"Scores saved", fmt.Sprint(table.GamesCount)},
		{"Average score", fmt.Sprintf("%.0f", table.AvgScore)},
	}
	if !table.LastPlayed.IsZero() {
		rows = append(rows, [2]string{"Last played", table.LastPlayed.Format("2006-01-02 15:04")})
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = statsLabelStyle.Render(r[0]) + statsValueStyle.Render(r[1])
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		statsTitleStyle.Render("Lifetime stats - "+gameID),
		statsBoxStyle.Render(strings.Join(lines, "\n")),
	)
}
