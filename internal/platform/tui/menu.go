package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/logging"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the difficulty picker. The last
// chosen difficulty is preselected from the stored settings.
type MenuModel struct {
	presets        []config.DifficultyPreset
	table          config.DifficultyTable
	cursor         int
	width          int
	height         int
	store          *storage.Store
	logger         *log.Logger
	settings       storage.Settings
	stats          storage.PlayerStats
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *config.DifficultyPreset // Set when user picks a difficulty
	openScoreboard bool                     // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, table config.DifficultyTable, logger *log.Logger) MenuModel {
	if logger == nil {
		logger = logging.Discard()
	}

	m := MenuModel{
		presets:   config.Presets(),
		table:     table,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		logger:    logger,
		settings:  storage.DefaultSettings(),
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	if store != nil {
		if s, err := store.LoadSettings(); err != nil {
			logger.Warn("could not load settings", "error", err)
		} else {
			m.settings = s
		}
		if st, err := store.LoadStats(breakoutID); err == nil {
			m.stats = st
		}
	}

	if last, err := config.ParseDifficulty(m.settings.Difficulty); err == nil {
		m.cursor = m.indexOf(last)
	}
	return m
}

// breakoutID is the registry and storage key of the game.
const breakoutID = "breakout"

func (m MenuModel) indexOf(p config.DifficultyPreset) int {
	for i, preset := range m.presets {
		if preset == p {
			return i
		}
	}
	return 0
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}

	case MenuActionEasy:
		return m.choose(m.indexOf(config.DifficultyEasy))
	case MenuActionNormal:
		return m.choose(m.indexOf(config.DifficultyNormal))
	case MenuActionHard:
		return m.choose(m.indexOf(config.DifficultyHard))

	case MenuActionSelect:
		return m.choose(m.cursor)

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// choose selects a difficulty and remembers it in the settings.
func (m MenuModel) choose(i int) (tea.Model, tea.Cmd) {
	m.cursor = i
	preset := m.presets[i]
	m.selected = &preset

	if m.store != nil {
		m.settings.Difficulty = string(preset)
		if err := m.store.SaveSettings(m.settings); err != nil {
			m.logger.Warn("could not save settings", "error", err)
		}
	}
	return m, tea.Quit // Exit menu to start game
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("B R I C K   B R E A K E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty", m.width))
	b.WriteString("\n\n")

	for i, preset := range m.presets {
		s := m.table.For(preset)
		line := fmt.Sprintf("%d. %-7s ball %.0f  paddle %.0f  %d rows",
			i+1, preset.Label(), s.BallSpeed, s.PaddleWidth, s.BrickRows)
		if i == m.cursor {
			line = "> " + line
			b.WriteString(centerText(menuCursorStyle.Render(line), m.width))
		} else {
			line = "  " + line
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.stats.TotalGames > 0 {
		best := fmt.Sprintf("Best %d  |  %d games  |  %d bricks", m.stats.BestScore, m.stats.TotalGames, m.stats.TotalBricks)
		b.WriteString(centerText(menuDimStyle.Render(best), m.width))
		b.WriteString("\n\n")
	}

	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen difficulty, or nil if none was chosen.
func (m MenuModel) Selected() *config.DifficultyPreset {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width, ignoring escape codes.
func centerText(text string, width int) string {
	visible := lipgloss.Width(text)
	if visible >= width {
		return text
	}
	padding := (width - visible) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, table config.DifficultyTable, logger *log.Logger) (MenuResult, error) {
	model := NewMenuModel(store, cfg, table, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.Difficulty = *m.Selected()
	} else {
		result.Quit = true
	}

	return result, nil
}
