package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/games/breakout"
	"github.com/vovakirdan/brick-arcade/internal/logging"
	"github.com/vovakirdan/brick-arcade/internal/registry"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

// noticeMillis is how long a status notice stays on screen.
const noticeMillis = 1500

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithResume restores a saved game after the first reset.
func WithResume(snap *breakout.Snapshot) Option {
	return func(m *Model) { m.resume = snap }
}

// WithSavePath sets where ctrl+s writes the quick-save. Saving is
// disabled when the path is empty.
func WithSavePath(path string) Option {
	return func(m *Model) { m.savePath = path }
}

// WithExitToMenu makes the model quit when the game returns to its menu,
// so an outer menu can take over.
func WithExitToMenu() Option {
	return func(m *Model) { m.exitToMenu = true }
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	input     *heldInput
	keyMapper *KeyMapper
	gameState core.GameState

	resume     *breakout.Snapshot
	savePath   string
	exitToMenu bool

	notice      string
	noticeTicks int

	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logging.Discard(),
		config:    cfg,
		input:     newHeldInput(cfg.TickRate),
		keyMapper: NewKeyMapper(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.startGame()
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// startGame resets the game, then loads lifetime stats and any saved
// game into it.
func (m Model) startGame() {
	m.game.Reset(m.config)

	bg, ok := m.game.(*breakout.Game)
	if !ok {
		return
	}
	if err := bg.ConfigError(); err != nil {
		m.logger.Warn("invalid config, using defaults", "error", err)
	}

	if m.store != nil {
		stats, err := m.store.LoadStats(m.game.ID())
		if err != nil {
			m.logger.Warn("could not load stats", "error", err)
		} else {
			bg.SeedStats(breakout.Stats(stats))
		}
	}

	if m.resume != nil {
		if err := bg.World().ApplySnapshot(*m.resume); err != nil {
			m.logger.Warn("could not resume saved game", "error", err)
		} else {
			m.logger.Info("resumed saved game", "score", m.resume.Score, "lives", m.resume.Lives)
		}
	}
	m.logger.Info("game started", "game", m.game.ID(), "level", m.game.State().Level)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.persistStats()
		return m, tea.Quit
	}

	m.input.Press(action)
	return m, nil
}

// handleMouse maps pointer motion to paddle position and clicks to launch.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.config.ScreenW > 0 {
		m.input.Point((float64(msg.X) + 0.5) / float64(m.config.ScreenW))
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.input.Press(core.ActionLaunch)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games that can adapt keep their state; others restart.
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.input.Frame()
	if frame.Has(core.ActionSave) {
		m.quickSave()
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	if result.Events != 0 {
		m.logger.Debug("tick", "events", result.Events.Names(), "score", result.State.Score)
	}
	if result.Events.Has(core.EventGameOver) || result.Events.Has(core.EventWin) {
		m.recordGame(result.State)
	}

	if m.noticeTicks > 0 {
		m.noticeTicks--
	}

	if m.exitToMenu && m.gameState.InMenu {
		m.backToMenu = true
		m.persistStats()
		m.input.Reset()
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// recordGame stores the final score and lifetime stats once per game.
func (m *Model) recordGame(st core.GameState) {
	m.logger.Info("game finished", "won", st.Won, "score", st.Score, "level", st.Level)
	if m.store == nil {
		return
	}

	if st.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), st.Level, st.Score); err != nil {
			m.logger.Warn("could not save score", "error", err)
		}
	}
	m.persistStats()
}

// persistStats adds what this session recorded since the last save, since
// the counters also grow mid-game.
func (m *Model) persistStats() {
	bg, ok := m.game.(*breakout.Game)
	if !ok || m.store == nil || bg.World() == nil {
		return
	}
	delta := bg.World().TakePendingStats()
	if delta == (breakout.Stats{}) {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.AddStats(m.game.ID(), storage.PlayerStats(delta))
}

// quickSave writes the running game to the save path.
func (m *Model) quickSave() {
	bg, ok := m.game.(*breakout.Game)
	if !ok || m.savePath == "" || bg.World() == nil {
		return
	}

	if err := breakout.SaveSnapshot(m.savePath, bg.World()); err != nil {
		m.logger.Error("quick-save failed", "error", err)
		m.setNotice("Save failed")
		return
	}
	m.logger.Info("quick-saved", "path", m.savePath)
	m.setNotice("Game saved")
}

func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeTicks = max(m.config.TickRate*noticeMillis/1000, 1)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.noticeTicks > 0 && m.screen.Height() > 0 {
		m.screen.DrawTextColored(m.screen.Width()-len(m.notice)-1, m.screen.Height()-1, m.notice, core.ColorGreen)
	}

	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the game returned to its menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model. It reports
// whether the player left for the menu rather than quitting.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Paddle follows the mouse without a button held
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
