package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/registry"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

func TestParseDifficultyFallsBackToSettings(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if got := parseDifficulty("", store); got != config.DifficultyNormal {
		t.Errorf("default = %q", got)
	}

	s := storage.DefaultSettings()
	s.Difficulty = "easy"
	if err := store.SaveSettings(s); err != nil {
		t.Fatal(err)
	}
	if got := parseDifficulty("", store); got != config.DifficultyEasy {
		t.Errorf("from settings = %q", got)
	}
	if got := parseDifficulty("hard", store); got != config.DifficultyHard {
		t.Errorf("flag should win, got %q", got)
	}

	s.Difficulty = "bogus"
	if err := store.SaveSettings(s); err != nil {
		t.Fatal(err)
	}
	if got := parseDifficulty("", store); got != config.DifficultyNormal {
		t.Errorf("bad stored value should fall back to normal, got %q", got)
	}
}

func TestRenderStats(t *testing.T) {
	out := renderStats("breakout",
		storage.PlayerStats{TotalGames: 7, BestScore: 450, TotalBricks: 132},
		&storage.GameStats{GamesCount: 5, AvgScore: 210.4},
	)
	for _, want := range []string{"Lifetime stats - breakout", "Games played", "7", "450", "132", "210"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Last played") {
		t.Error("last played should be hidden without scores")
	}
}

func TestRenderGameList(t *testing.T) {
	if got := renderGameList(nil, config.DefaultBreakoutConfig().Difficulties); got != "No games available." {
		t.Errorf("empty list = %q", got)
	}

	entries := []registry.Entry{{
		ID:        "breakout",
		Title:     "Brick Breaker",
		Summary:   "Clear the wall.",
		Frontends: []registry.Frontend{registry.FrontendTerminal, registry.FrontendWindow},
	}}
	out := renderGameList(entries, config.DefaultBreakoutConfig().Difficulties)
	for _, want := range []string{"breakout", "Brick Breaker", "Clear the wall.", "terminal, window", "rows 3", "rows 7"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}
