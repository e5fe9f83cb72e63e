package window

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/games/breakout"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// Options configures the window front end.
type Options struct {
	Config config.BreakoutConfig
	Preset config.DifficultyPreset
	Seed   int64
	Scale  float64 // Window size relative to the field, 1 if unset
	Store  *storage.Store
	Logger *log.Logger
}

// App adapts a Session to ebiten.Game.
type App struct {
	session *Session
	field   config.FieldConfig
	lastX   int
	lastY   int
}

// NewApp creates the window game. The simulation ticks at 60 TPS.
func NewApp(opts Options) *App {
	world := breakout.NewWorld(opts.Config,
		breakout.WithSeed(opts.Seed),
		breakout.WithTickRate(ebiten.DefaultTPS),
	)
	return &App{
		session: NewSession(world, opts.Store, opts.Preset, opts.Logger),
		field:   opts.Config.Field,
		lastX:   -1,
		lastY:   -1,
	}
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(opts Options) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	app := NewApp(opts)

	ebiten.SetWindowTitle("Brick Breaker")
	ebiten.SetWindowSize(int(opts.Config.Field.Width*scale), int(opts.Config.Field.Height*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.DefaultTPS)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Update samples input and advances the session one frame.
func (a *App) Update() error {
	if !a.session.Update(a.readControls()) {
		return ebiten.Termination
	}
	return nil
}

func (a *App) readControls() Controls {
	c := Controls{
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Launch:  inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Menu:    inpututil.IsKeyJustPressed(ebiten.KeyM),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		c.Pick = config.DifficultyEasy
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		c.Pick = config.DifficultyNormal
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		c.Pick = config.DifficultyHard
	}

	// Only real motion steers, so the keyboard keeps working while the
	// cursor rests inside the window.
	x, y := ebiten.CursorPosition()
	if x != a.lastX || y != a.lastY {
		if a.lastX >= 0 {
			c.CursorX, c.CursorMoved = float64(x), true
		}
		a.lastX, a.lastY = x, y
	}
	return c
}

// Layout keeps the logical screen at field size; ebiten scales it.
func (a *App) Layout(_, _ int) (int, int) {
	return int(a.field.Width), int(a.field.Height)
}

// Draw renders the world at native resolution.
func (a *App) Draw(screen *ebiten.Image) {
	w := a.session.World()
	screen.Fill(core.ColorBackground.RGBA())

	for _, b := range w.Bricks.Bricks {
		if b.Alive {
			fillRect(screen, b.X, b.Y, b.Width, b.Height, b.Color.RGBA())
		}
	}
	for _, it := range w.Items.Items {
		fillRect(screen, it.X, it.Y, it.Width, it.Height, it.Type.Color().RGBA())
		label := itemLabel(it.Type)
		ebitenutil.DebugPrintAt(screen, label, int(it.X+it.Width/2)-len(label)*glyphW/2, int(it.Y+it.Height/2)-glyphH/2)
	}

	lifetime := w.Config().Animation.ParticleLifetime
	for _, p := range w.Particles {
		fillRect(screen, p.X-1.5, p.Y-1.5, 3, 3, fade(p.Color.RGBA(), lifeRatio(p.Life, lifetime)))
	}
	for _, p := range w.Popups {
		text := fmt.Sprintf("+%d", p.Value)
		ebitenutil.DebugPrintAt(screen, text, int(p.X)-len(text)*glyphW/2, int(p.Y))
	}

	pad := w.Paddle
	fillRect(screen, pad.X, pad.Y, w.PaddleWidth(), pad.Height, w.PaddleColor().RGBA())
	vector.DrawFilledCircle(screen, float32(w.Ball.X), float32(w.Ball.Y), float32(w.Ball.Radius), w.BallColor().RGBA(), true)

	a.drawHUD(screen, w)
	a.drawOverlay(screen, w)
}

func (a *App) drawHUD(screen *ebiten.Image, w *breakout.GameWorld) {
	st := w.State()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", st.Score), 10, 10)
	lives := fmt.Sprintf("Lives: %d", st.Lives)
	ebitenutil.DebugPrintAt(screen, lives, centerX(lives, int(a.field.Width)), 10)
	level := st.Difficulty.Label()
	ebitenutil.DebugPrintAt(screen, level, int(a.field.Width)-len(level)*glyphW-10, 10)
	if fx := breakout.EffectsSummary(w); fx != "" {
		ebitenutil.DebugPrintAt(screen, fx, 10, 10+glyphH)
	}
}

func (a *App) drawOverlay(screen *ebiten.Image, w *breakout.GameWorld) {
	if w.Phase() == breakout.PhasePlaying && !w.Ball.Launched {
		hint := "Press SPACE or click to launch"
		ebitenutil.DebugPrintAt(screen, hint, centerX(hint, int(a.field.Width)), int(w.Paddle.Y)-3*glyphH)
		return
	}

	lines, dim := overlayText(w, a.session.Preset())
	if len(lines) == 0 {
		return
	}
	if dim > 0 {
		fillRect(screen, 0, 0, a.field.Width, a.field.Height, color.RGBA{A: uint8(dim * 0xb0)})
	}
	y := int(a.field.Height)/2 - len(lines)*glyphH
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, centerX(line, int(a.field.Width)), y)
		y += 2 * glyphH
	}
}

// overlayText returns the centered message lines for the current phase
// and how strongly to dim the field behind them.
func overlayText(w *breakout.GameWorld, preset config.DifficultyPreset) ([]string, float64) {
	st := w.State()
	switch w.Phase() {
	case breakout.PhaseMenu:
		return []string{
			"BRICK BREAKER",
			fmt.Sprintf("Difficulty: %s  (1 Easy  2 Normal  3 Hard)", preset.Label()),
			"SPACE or click to start  |  Q to quit",
		}, 1
	case breakout.PhasePaused:
		return []string{"PAUSED", "P to resume  |  M for menu"}, 1
	case breakout.PhaseTransition:
		t := w.Transition()
		return []string{t.Text}, t.Opacity(w.Now())
	case breakout.PhaseGameOver:
		return []string{
			"GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d", st.Score, w.Stats().BestScore),
			"R restart  |  M menu",
		}, 1
	case breakout.PhaseWin:
		return []string{"YOU WIN!", fmt.Sprintf("Final Score: %d", st.Score), "R restart  |  M menu"}, 1
	}
	return nil, 0
}

// itemLabel is the ASCII stand-in for an item glyph in the debug font.
func itemLabel(t breakout.ItemType) string {
	if t == breakout.ItemExtraLife {
		return "1UP"
	}
	return strings.ToUpper(string(t.Glyph()))
}

func centerX(text string, width int) int {
	return (width - len(text)*glyphW) / 2
}

func lifeRatio(life, lifetime int) float64 {
	if lifetime <= 0 {
		return 1
	}
	return core.Clamp(float64(life)/float64(lifetime), 0, 1)
}

// fade scales alpha, keeping the color premultiplied.
func fade(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}
