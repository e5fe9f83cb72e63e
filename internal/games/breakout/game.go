package breakout

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar   = '▀'
	BallChar     = '●'
	BrickChar    = '█'
	ParticleChar = '·'
	BorderHoriz  = '─'
)

// HUD rows above the play area.
const hudRows = 2

// Minimum terminal size that keeps every brick column visible.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty used when a game starts.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game adapts a GameWorld to the arcade registry and draws it on a
// character screen.
type Game struct {
	world   *GameWorld
	runtime core.RuntimeConfig
	stats   Stats
	loadErr error
	preset  config.DifficultyPreset

	// pinned, when set, replaces loading the config on every reset.
	pinned *config.BreakoutConfig

	screenTooSmall bool
}

// New creates a new brick breaker instance using the preset set by
// SetDifficultyPreset.
func New() *Game {
	return &Game{preset: difficultyPreset}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Brick Breaker"
}

// SetDifficulty changes the difficulty used by the next start.
func (g *Game) SetDifficulty(p config.DifficultyPreset) {
	g.preset = p
}

// SeedStats sets the lifetime stats, typically loaded from storage. A
// running world picks them up immediately.
func (g *Game) SeedStats(s Stats) {
	g.stats = s
	if g.world != nil {
		g.world.SetStats(s)
	}
}

// UseConfig makes every following reset run with cfg instead of loading
// the config from disk. Servers load it once and share it with sessions.
func (g *Game) UseConfig(cfg config.BreakoutConfig) {
	g.pinned = &cfg
	g.loadErr = nil
}

// World exposes the simulation, for saving and stats.
func (g *Game) World() *GameWorld {
	return g.world
}

// ConfigError returns the error from loading a custom config, if any.
// The game falls back to defaults when it is set.
func (g *Game) ConfigError() error {
	return g.loadErr
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var cfg config.BreakoutConfig
	if g.pinned != nil {
		cfg = *g.pinned
	} else {
		var err error
		cfg, err = config.LoadBreakout(configPath)
		g.loadErr = err
		if err != nil {
			cfg = config.DefaultBreakoutConfig()
		}
	}

	var pending Stats
	if g.world != nil {
		g.stats = g.world.Stats()
		pending = g.world.TakePendingStats()
	}
	g.world = NewWorld(cfg,
		WithSeed(runtime.Seed),
		WithTickRate(runtime.TickRate),
		WithStats(g.stats),
	)
	g.world.pending = pending
	g.world.Start(g.preset)
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize tracks the terminal size without restarting the game. The
// simulation holds still while the screen is too small to show it.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW, g.runtime.ScreenH = width, height
	g.screenTooSmall = width < MinScreenW || height < MinScreenH
}

// Step advances the simulation by one tick. In the menu phase, launch
// starts a new game at the chosen difficulty.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}
	if g.world.Phase() == PhaseMenu && in.Has(core.ActionLaunch) {
		g.world.Start(g.preset)
		return core.StepResult{State: g.State()}
	}
	return g.world.Step(in)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return g.world.CoreState()
}

// projection maps field pixels to screen cells below the HUD.
type projection struct {
	sx, sy float64
	rows   int
}

func (g *Game) projection(dst *core.Screen) projection {
	cfg := g.world.Config()
	rows := dst.Height() - hudRows
	return projection{
		sx:   float64(dst.Width()) / cfg.Field.Width,
		sy:   float64(rows) / cfg.Field.Height,
		rows: rows,
	}
}

func (p projection) col(x float64) int { return int(x * p.sx) }
func (p projection) row(y float64) int { return hudRows + min(int(y*p.sy), p.rows-1) }

// span returns the first cell and cell count covering [x, x+w).
func (p projection) span(x, w float64) (int, int) {
	start := p.col(x)
	end := max(int((x+w)*p.sx+0.5), start+1)
	return start, end - start
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	p := g.projection(dst)
	g.renderHUD(dst)
	g.renderBricks(dst, p)
	g.renderItems(dst, p)
	g.renderParticles(dst, p)
	g.renderPaddle(dst, p)
	g.renderBall(dst, p)
	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, difficulty and active effects.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.world.State()

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", st.Score), core.ColorWhite)
	lives := fmt.Sprintf("Lives: %s", strings.Repeat("♥", st.Lives))
	dst.DrawTextCentered(0, lives, core.ColorRed)
	level := st.Difficulty.Label()
	dst.DrawTextColored(dst.Width()-len(level)-1, 0, level, core.ColorCyan)

	if fx := EffectsSummary(g.world); fx != "" {
		dst.DrawTextColored(1, 1, fx, core.ColorYellow)
		return
	}
	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz, core.ColorGray)
}

// EffectsSummary lists active effects with whole seconds remaining.
func EffectsSummary(w *GameWorld) string {
	now := w.Now()
	var parts []string
	for name := range effectCount {
		if !w.Effects.IsActive(name) {
			continue
		}
		secs := (w.Effects.Remaining(name, now) + 999) / 1000
		parts = append(parts, fmt.Sprintf("%s %ds", name, secs))
	}
	return strings.Join(parts, "  ")
}

func (g *Game) renderBricks(dst *core.Screen, p projection) {
	for _, b := range g.world.Bricks.Bricks {
		if !b.Alive {
			continue
		}
		x, w := p.span(b.X, b.Width)
		// Leave a gap so neighbouring bricks stay distinguishable.
		if w > 2 {
			w--
		}
		dst.FillRect(x, p.row(b.Y), w, 1, BrickChar, b.Color)
	}
}

func (g *Game) renderItems(dst *core.Screen, p projection) {
	for _, it := range g.world.Items.Items {
		cx, cy := it.Bounds().Center()
		dst.SetColored(p.col(cx), p.row(cy), it.Type.Glyph(), it.Type.Color())
	}
}

func (g *Game) renderParticles(dst *core.Screen, p projection) {
	for _, pt := range g.world.Particles {
		dst.SetColored(p.col(pt.X), p.row(pt.Y), ParticleChar, pt.Color)
	}
	for _, pop := range g.world.Popups {
		text := fmt.Sprintf("+%d", pop.Value)
		dst.DrawTextColored(p.col(pop.X)-len(text)/2, p.row(pop.Y), text, core.ColorYellow)
	}
}

func (g *Game) renderPaddle(dst *core.Screen, p projection) {
	pad := g.world.Paddle
	x, w := p.span(pad.X, g.world.PaddleWidth())
	dst.FillRect(x, p.row(pad.Y), w, 1, PaddleChar, g.world.PaddleColor())
}

func (g *Game) renderBall(dst *core.Screen, p projection) {
	b := g.world.Ball
	dst.SetColored(p.col(b.X), p.row(b.Y), BallChar, g.world.BallColor())
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	w := g.world
	st := w.State()

	switch w.Phase() {
	case PhaseMenu:
		sub := fmt.Sprintf("%s  |  Press SPACE to start", g.preset.Label())
		g.drawCenteredBox(dst, core.ColorCyan, "BRICK BREAKER", sub)
	case PhasePlaying:
		if !w.Ball.Launched {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch", core.ColorGray)
		}
	case PhasePaused:
		g.drawCenteredBox(dst, core.ColorYellow, "PAUSED", "Press P to resume  |  M for menu")
	case PhaseTransition:
		t := w.Transition()
		color := core.ColorGray
		if t.Opacity(w.Now()) >= 0.5 {
			color = core.ColorWhite
		}
		dst.DrawTextCentered(dst.Height()/2, t.Text, color)
	case PhaseGameOver:
		sub := fmt.Sprintf("Score: %d  Best: %d  |  R restart  M menu", st.Score, w.Stats().BestScore)
		g.drawCenteredBox(dst, core.ColorRed, "GAME OVER", sub)
	case PhaseWin:
		sub := fmt.Sprintf("Final Score: %d  |  R restart  M menu", st.Score)
		g.drawCenteredBox(dst, core.ColorGreen, "YOU WIN!", sub)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, c core.Color, title, subtitle string) {
	tw, sw := len([]rune(title)), len([]rune(subtitle))
	boxW := min(max(tw, sw)+4, dst.Width())
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, c)
	dst.DrawTextColored(boxX+(boxW-tw)/2, boxY+1, title, c)
	dst.DrawTextColored(boxX+(boxW-sw)/2, boxY+3, subtitle, core.ColorWhite)
}

// Register the game with the registry
func init() {
	registry.Register(registry.Entry{
		ID:      "breakout",
		Title:   "Brick Breaker",
		Summary: "Clear the wall with paddle and ball; catch falling items for timed effects.",
		Frontends: []registry.Frontend{
			registry.FrontendTerminal,
			registry.FrontendSSH,
			registry.FrontendWindow,
		},
		New: func() registry.Game { return New() },
	})
}
