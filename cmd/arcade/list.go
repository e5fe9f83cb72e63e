package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available games",
	Long:  `Shows every registered game with the front ends it runs on and its difficulty presets.`,
	Run:   runList,
}

var (
	listIDStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	listTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	listDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func runList(cmd *cobra.Command, args []string) {
	cfg := loadGameConfig(stderrLogger("arcade"))
	fmt.Println(renderGameList(registry.List(), cfg.Difficulties))
}

func renderGameList(entries []registry.Entry, table config.DifficultyTable) string {
	if len(entries) == 0 {
		return "No games available."
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(listIDStyle.Render(e.ID) + "  " + listTitleStyle.Render(e.Title) + "\n")
		if e.Summary != "" {
			b.WriteString("  " + e.Summary + "\n")
		}
		b.WriteString(listDimStyle.Render("  runs on: "+e.FrontendList()) + "\n")
		for _, p := range config.Presets() {
			s := table.For(p)
			b.WriteString(listDimStyle.Render(fmt.Sprintf("  %-7s ball %.0f  paddle %.0f  rows %d",
				p, s.BallSpeed, s.PaddleWidth, s.BrickRows)) + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString("Run 'arcade play <id>' for the terminal or 'arcade window' for a desktop window.")
	return b.String()
}
