package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

func openMenuStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestMenu(store *storage.Store) MenuModel {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24}
	return NewMenuModel(store, cfg, config.DefaultBreakoutConfig().Difficulties, nil)
}

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return mm, cmd
}

func TestMenuPreselectsLastDifficulty(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		expected config.DifficultyPreset
	}{
		{"default", "", config.DifficultyNormal},
		{"easy", "easy", config.DifficultyEasy},
		{"hard", "hard", config.DifficultyHard},
		{"unknown falls back", "insane", config.DifficultyEasy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openMenuStore(t)
			if tt.stored != "" {
				s := storage.DefaultSettings()
				s.Difficulty = tt.stored
				if err := store.SaveSettings(s); err != nil {
					t.Fatal(err)
				}
			}

			m := newTestMenu(store)
			if got := m.presets[m.cursor]; got != tt.expected {
				t.Errorf("preselected %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestMenuChooseSavesSettings(t *testing.T) {
	store := openMenuStore(t)
	m := newTestMenu(store)

	m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || m.Selected() == nil {
		t.Fatal("enter should select and quit")
	}
	if *m.Selected() != config.DifficultyHard {
		t.Errorf("selected %q, expected hard", *m.Selected())
	}

	s, err := store.LoadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if s.Difficulty != "hard" {
		t.Errorf("stored difficulty = %q", s.Difficulty)
	}
	if s.SFXVolume != storage.DefaultSettings().SFXVolume {
		t.Error("other settings should be kept")
	}
}

func TestMenuNumberKeys(t *testing.T) {
	m := newTestMenu(nil)

	m, _ = updateMenu(t, m, runeKey('1'))
	if m.Selected() == nil || *m.Selected() != config.DifficultyEasy {
		t.Errorf("1 should pick easy, got %v", m.Selected())
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := newTestMenu(nil)

	for range 5 {
		m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected 0", m.cursor)
	}
	for range 5 {
		m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.presets)-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, len(m.presets)-1)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := newTestMenu(nil)
	m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if cmd == nil || !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m = newTestMenu(nil)
	m, _ = updateMenu(t, m, runeKey('q'))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit the menu")
	}
}

func TestMenuViewShowsStats(t *testing.T) {
	store := openMenuStore(t)
	if err := store.AddStats(breakoutID, storage.PlayerStats{TotalGames: 4, BestScore: 310, TotalBricks: 61}); err != nil {
		t.Fatal(err)
	}

	view := newTestMenu(store).View()
	for _, want := range []string{"Select difficulty", "Easy", "Hard", "Best 310", "4 games"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"abc", 9, "   abc"},
		{"abcdef", 4, "abcdef"},
		{menuTitleStyle.Render("ab"), 6, "  " + menuTitleStyle.Render("ab")},
	}

	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.expected {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.expected)
		}
	}
}
