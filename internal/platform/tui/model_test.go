package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/games/breakout"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

type modelFixture struct {
	model Model
	game  *breakout.Game
	store *storage.Store
	dir   string
}

func newModelFixture(t *testing.T, opts ...Option) *modelFixture {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	store, err := storage.Open(filepath.Join(dir, "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	game := breakout.New()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}
	m := NewModel(game, store, cfg, opts...)
	m.Init()

	return &modelFixture{model: m, game: game, store: store, dir: dir}
}

func (f *modelFixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := f.model.Update(msg)
	m, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	f.model = m
	return cmd
}

func (f *modelFixture) tick(t *testing.T) tea.Cmd {
	t.Helper()
	return f.send(t, TickMsg{})
}

func TestModelKeyMovesPaddle(t *testing.T) {
	f := newModelFixture(t)
	x := f.game.World().Paddle.X

	f.send(t, tea.KeyMsg{Type: tea.KeyRight})
	f.tick(t)
	f.tick(t)

	if got := f.game.World().Paddle.X; got != x+14 {
		t.Errorf("paddle X = %v, expected %v after two held ticks", got, x+14)
	}
}

func TestModelMouseMovesPaddleAndLaunches(t *testing.T) {
	f := newModelFixture(t)

	f.send(t, tea.MouseMsg{X: 19, Y: 10, Action: tea.MouseActionMotion})
	f.tick(t)
	if got := f.game.World().Paddle.X; got != 145 {
		t.Errorf("paddle X = %v, expected 145", got)
	}

	f.send(t, tea.MouseMsg{X: 19, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	f.tick(t)
	if !f.game.World().Ball.Launched {
		t.Error("left click should launch the ball")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	f := newModelFixture(t)
	f.send(t, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	f.tick(t)
	world := f.game.World()

	f.send(t, tea.WindowSizeMsg{Width: 100, Height: 30})
	if f.game.World() != world || !world.Ball.Launched {
		t.Error("resize should not restart the game")
	}
	if !strings.Contains(f.model.View(), "Score: 0") {
		t.Error("view should render at the new size")
	}
}

func TestModelQuickSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves", "breakout.msgpack")
	f := newModelFixture(t, WithSavePath(path))

	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlS})
	f.tick(t)

	snap, err := breakout.LoadSnapshot(path)
	if err != nil {
		t.Fatalf("quick-save not written: %v", err)
	}
	if snap.Lives != 3 {
		t.Errorf("saved lives = %d", snap.Lives)
	}
	if !strings.Contains(f.model.View(), "Game saved") {
		t.Error("save notice missing")
	}
}

func TestModelResume(t *testing.T) {
	src := newModelFixture(t)
	snap := src.game.World().Snapshot()
	snap.Score = 130
	snap.Lives = 2

	f := newModelFixture(t, WithResume(&snap))
	st := f.game.State()
	if st.Score != 130 || st.Lives != 2 {
		t.Errorf("resumed state = %+v", st)
	}
}

func TestModelGameOverSavesScoreAndStats(t *testing.T) {
	f := newModelFixture(t)
	f.store.AddStats("breakout", storage.PlayerStats{TotalGames: 2, BestScore: 20, TotalBricks: 9}) //nolint:errcheck
	f.model.Init()

	// Last life with the ball about to leave the field.
	snap := f.game.World().Snapshot()
	snap.Lives = 1
	snap.Score = 50
	snap.Ball.Launched = true
	snap.Ball.X, snap.Ball.Y = 700, 595
	snap.Ball.SpeedX, snap.Ball.SpeedY = 0, 5
	snap.Paddle.X = 0
	if err := f.game.World().ApplySnapshot(snap); err != nil {
		t.Fatal(err)
	}

	for range 300 {
		f.tick(t)
	}
	if !f.model.gameState.GameOver {
		t.Fatalf("state = %+v, expected game over", f.model.gameState)
	}

	scores, err := f.store.TopScores("breakout", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 50 || scores[0].Level != "Normal" {
		t.Fatalf("scores = %+v", scores)
	}

	stats, err := f.store.LoadStats("breakout")
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalGames != 3 || stats.BestScore != 50 || stats.TotalBricks != 9 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestModelMenuExit(t *testing.T) {
	f := newModelFixture(t, WithExitToMenu())

	f.send(t, runeKey('m'))
	cmd := f.tick(t)
	if !f.model.BackToMenu() || cmd == nil {
		t.Error("m should return to the outer menu")
	}
}

func TestModelMenuStaysWithoutExit(t *testing.T) {
	f := newModelFixture(t)

	f.send(t, runeKey('m'))
	f.tick(t)
	if f.model.BackToMenu() {
		t.Error("without an outer menu the game shows its own")
	}
	if !strings.Contains(f.model.View(), "BRICK BREAKER") {
		t.Error("in-game menu not shown")
	}
}

// breakBrick aims the ball at the bottom brick of a column so the next
// tick destroys it.
func breakBrick(w *breakout.GameWorld, col int) {
	b := w.Bricks.BrickAt(col, w.Bricks.Rows-1)
	cx, _ := b.Bounds().Center()
	w.Ball.Launched = true
	w.Ball.X, w.Ball.Y = cx, b.Y+b.Height+10
	w.Ball.SpeedX, w.Ball.SpeedY = 0, -4
}

func TestModelQuitPersistsStats(t *testing.T) {
	f := newModelFixture(t)
	f.store.AddStats("breakout", storage.PlayerStats{TotalGames: 1, BestScore: 40, TotalBricks: 12}) //nolint:errcheck
	f.model.Init()

	breakBrick(f.game.World(), 3)
	f.tick(t)
	if f.game.World().Stats().TotalBricks != 13 {
		t.Fatalf("stats = %+v, expected the stored ones plus a brick", f.game.World().Stats())
	}

	// Another session on the same database finishes a game meanwhile.
	f.store.AddStats("breakout", storage.PlayerStats{TotalGames: 1, BestScore: 30, TotalBricks: 5}) //nolint:errcheck

	cmd := f.send(t, runeKey('q'))
	if cmd == nil || !f.model.IsQuitting() {
		t.Fatal("q should quit")
	}
	if f.model.View() != "" {
		t.Error("view should be empty after quit")
	}

	stats, err := f.store.LoadStats("breakout")
	if err != nil {
		t.Fatal(err)
	}
	want := storage.PlayerStats{TotalGames: 2, BestScore: 40, TotalBricks: 18}
	if stats != want {
		t.Errorf("stats = %+v, expected %+v", stats, want)
	}
}

func TestModelWithoutStore(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	game := breakout.New()
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m.Init()

	next, _ := m.Update(TickMsg{})
	if next.(Model).View() == "" {
		t.Error("model should run without a store")
	}
	if _, err := os.Stat(filepath.Join(os.Getenv("HOME"), ".arcade")); err == nil {
		t.Error("nothing should be written without a store or save path")
	}
}
