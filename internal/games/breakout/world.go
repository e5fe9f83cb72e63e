package breakout

import (
	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
)

// Phase is the game state machine position.
type Phase int

const (
	PhaseMenu       Phase = iota // Waiting for a difficulty choice
	PhasePlaying                 // Ball and paddle live
	PhasePaused                  // Frozen by the player
	PhaseTransition              // End banner animating, gameplay frozen
	PhaseGameOver                // Lost all lives
	PhaseWin                     // Cleared every brick
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseTransition:
		return "transition"
	case PhaseGameOver:
		return "game_over"
	case PhaseWin:
		return "win"
	default:
		return "unknown"
	}
}

// GameState is the score and session flags.
type GameState struct {
	Score      int
	Lives      int
	Difficulty config.DifficultyPreset
	Running    bool
	Paused     bool
}

// IsPlaying reports whether gameplay updates run.
func (s GameState) IsPlaying() bool {
	return s.Running && !s.Paused
}

// Stats are the lifetime counters carried across sessions.
type Stats struct {
	TotalGames  int `json:"totalGames" msgpack:"total_games"`
	BestScore   int `json:"bestScore" msgpack:"best_score"`
	TotalBricks int `json:"totalBricks" msgpack:"total_bricks"`
}

// Record folds one update into the counters. Best score never decreases.
func (s *Stats) Record(completed bool, score, bricks int) {
	if completed {
		s.TotalGames++
	}
	if score > s.BestScore {
		s.BestScore = score
	}
	s.TotalBricks += max(bricks, 0)
}

// Option configures a GameWorld.
type Option func(*GameWorld)

// WithClock replaces the default frame clock.
func WithClock(c Clock) Option {
	return func(w *GameWorld) { w.clock = c }
}

// WithSeed seeds the item RNG.
func WithSeed(seed int64) Option {
	return func(w *GameWorld) { w.rng = NewSimpleRNG(seed) }
}

// WithTickRate sets the frame clock rate used when no clock is given.
func WithTickRate(rate int) Option {
	return func(w *GameWorld) { w.clock = NewFrameClock(rate) }
}

// WithStats starts from previously persisted stats.
func WithStats(s Stats) Option {
	return func(w *GameWorld) { w.stats = s }
}

// GameWorld owns every piece of game state and advances it one frame at a
// time. It has no I/O: front ends feed input and draw the result.
type GameWorld struct {
	Ball    *Ball
	Paddle  *Paddle
	Bricks  *BrickManager
	Items   *ItemManager
	Effects *EffectManager

	Particles []*Particle
	Popups    []*ScorePopup

	cfg        config.BreakoutConfig
	clock      Clock
	rng        *SimpleRNG
	state      GameState
	phase      Phase
	transition *Transition
	stats      Stats

	// pending holds the part of stats not yet handed to storage.
	pending Stats
	frame   uint64
}

// NewWorld creates a world in the menu phase.
func NewWorld(cfg config.BreakoutConfig, opts ...Option) *GameWorld {
	w := &GameWorld{
		Ball:    newBall(cfg),
		Paddle:  newPaddle(cfg),
		Bricks:  NewBrickManager(cfg.Bricks),
		Items:   NewItemManager(cfg.Items),
		Effects: NewEffectManager(),
		cfg:     cfg,
		clock:   NewFrameClock(60),
		rng:     NewSimpleRNG(1),
		state: GameState{
			Lives:      cfg.Game.InitialLives,
			Difficulty: config.DifficultyNormal,
		},
	}
	for _, opt := range opts {
		opt(w)
	}
	w.resetEntities()
	return w
}

// Config returns the configuration the world runs with.
func (w *GameWorld) Config() config.BreakoutConfig { return w.cfg }

// State returns a copy of the score and session flags.
func (w *GameWorld) State() GameState { return w.state }

// Phase returns the state machine position.
func (w *GameWorld) Phase() Phase { return w.phase }

// Stats returns the lifetime counters including this session.
func (w *GameWorld) Stats() Stats { return w.stats }

// SetStats replaces the lifetime counters, typically with stored ones.
func (w *GameWorld) SetStats(s Stats) { w.stats = s }

// TakePendingStats returns the games, bricks and best score recorded since
// the last call and clears them. Storage adds them to the stored counters,
// so sessions sharing a database never overwrite each other.
func (w *GameWorld) TakePendingStats() Stats {
	p := w.pending
	w.pending = Stats{}
	return p
}

// Transition returns the running end banner, or nil.
func (w *GameWorld) Transition() *Transition { return w.transition }

// Now returns the simulation time in milliseconds.
func (w *GameWorld) Now() int64 { return w.clock.Now() }

// Frame returns the number of steps taken.
func (w *GameWorld) Frame() uint64 { return w.frame }

// Setting returns the tuning of the current difficulty.
func (w *GameWorld) Setting() config.DifficultySetting {
	return w.cfg.Difficulties.For(w.state.Difficulty)
}

// PaddleWidth returns the width currently shown, including any running
// resize animation. Ball and paddle collisions use this width.
func (w *GameWorld) PaddleWidth() float64 {
	return w.Paddle.AnimatedWidth(w.Effects.Flags())
}

// PaddleColor tints the paddle by the active width effect.
func (w *GameWorld) PaddleColor() core.Color {
	switch fx := w.Effects.Flags(); {
	case fx.PaddleExpanded:
		return core.ColorBlue
	case fx.PaddleShrink:
		return core.ColorOrange
	}
	return core.ColorIndigo
}

// BallColor tints the ball while it is slowed.
func (w *GameWorld) BallColor() core.Color {
	if w.Effects.IsActive(EffectBallSlow) {
		return core.ColorEmerald
	}
	return core.ColorWhite
}

// Start leaves the menu and begins a fresh game at the given difficulty.
func (w *GameWorld) Start(d config.DifficultyPreset) {
	w.state = GameState{
		Score:      0,
		Lives:      w.cfg.Game.InitialLives,
		Difficulty: d,
		Running:    true,
	}
	w.transition = nil
	w.phase = PhasePlaying
	w.resetEntities()
}

// Restart begins a new game at the current difficulty. It is ignored in
// the menu.
func (w *GameWorld) Restart() {
	if w.phase == PhaseMenu {
		return
	}
	w.Start(w.state.Difficulty)
}

// TogglePause switches between playing and paused. It has no effect in
// other phases, so the end banner cannot be interrupted.
func (w *GameWorld) TogglePause() {
	switch w.phase {
	case PhasePlaying:
		w.phase = PhasePaused
		w.state.Paused = true
	case PhasePaused:
		w.phase = PhasePlaying
		w.state.Paused = false
	}
}

// QuitToMenu abandons the current game from any phase.
func (w *GameWorld) QuitToMenu() {
	w.state.Running = false
	w.state.Paused = false
	w.transition = nil
	w.phase = PhaseMenu
	w.resetEntities()
}

func (w *GameWorld) resetEntities() {
	setting := w.Setting()
	w.Bricks.Init(setting.BrickRows)
	w.Paddle.Reset(setting)
	w.Ball.Reset(setting)
	w.resetItems()
}

// resetItems clears items, effects and cosmetic animations.
func (w *GameWorld) resetItems() {
	w.Items.Reset()
	w.Effects.Reset()
	w.Paddle.animation = nil
	w.Particles = w.Particles[:0]
	w.Popups = w.Popups[:0]
}

// Step advances the world by one frame. Cosmetic animations always run;
// gameplay runs only while playing.
func (w *GameWorld) Step(in core.InputFrame) core.StepResult {
	var res core.StepResult

	if a, ok := w.clock.(advancer); ok {
		a.Advance()
	}
	w.frame++
	now := w.clock.Now()

	w.updateAnimations(now)
	w.handleControls(in)

	if w.state.IsPlaying() {
		w.handleInput(in, &res)
		w.updateGameplay(now, &res)
	}

	res.State = w.CoreState()
	return res
}

func (w *GameWorld) updateAnimations(now int64) {
	w.Particles = stepParticles(w.Particles, w.cfg.Animation.ParticleGravity)
	w.Popups = stepPopups(w.Popups, w.cfg.Animation.PopupFloat)
	w.Paddle.Update(now)

	if w.transition != nil && w.transition.Update(now) {
		w.phase = w.transition.Outcome
		w.transition = nil
		w.state.Running = false
		w.state.Paused = false
	}
}

func (w *GameWorld) handleControls(in core.InputFrame) {
	switch {
	case in.Has(core.ActionMenu):
		w.QuitToMenu()
	case in.Has(core.ActionRestart) && (w.phase == PhaseGameOver || w.phase == PhaseWin):
		w.Restart()
	case in.Has(core.ActionPause):
		w.TogglePause()
	}
}

func (w *GameWorld) handleInput(in core.InputFrame, res *core.StepResult) {
	if in.Has(core.ActionLaunch) && w.Ball.Launch() {
		res.Events.Add(core.EventLaunched)
	}

	width := w.PaddleWidth()
	if in.Pointer.Valid {
		w.Paddle.MoveTo(in.Pointer.X*w.cfg.Field.Width, width)
	}
	if in.Has(core.ActionRight) {
		w.Paddle.Move(DirRight, width)
	} else if in.Has(core.ActionLeft) {
		w.Paddle.Move(DirLeft, width)
	}
}

func (w *GameWorld) updateGameplay(now int64, res *core.StepResult) {
	width := w.PaddleWidth()
	if w.Ball.Update(w.Paddle.X, width) != WallNone {
		res.Events.Add(core.EventWallHit)
	}

	w.checkCollisions(now, width, res)
	if !w.state.IsPlaying() {
		return
	}

	paddleRect := core.NewRect(w.Paddle.X, w.Paddle.Y, w.Paddle.Width(w.Effects.Flags()), w.Paddle.Height)
	for _, t := range w.Items.Update(w.cfg.Field.Height, paddleRect) {
		w.applyItem(t, now)
		res.Events.Add(core.EventItemCaught)
	}

	w.expireEffects(now)
}

// checkCollisions resolves at most one of: a brick hit, a paddle bounce,
// or a fall through the bottom.
func (w *GameWorld) checkCollisions(now int64, paddleWidth float64, res *core.StepResult) {
	if brick := w.Bricks.CheckBallCollision(w.Ball); brick != nil {
		w.onBrickHit(brick, now, res)
		return
	}

	p := w.Paddle
	if w.Ball.CheckPaddleCollision(p.X, p.Y, paddleWidth, p.Height) {
		res.Events.Add(core.EventPaddleHit)
		return
	}

	if w.Ball.CheckBottomCollision() {
		w.onLifeLost(now, res)
	}
}

func (w *GameWorld) onBrickHit(b *Brick, now int64, res *core.StepResult) {
	w.Ball.SpeedY = -w.Ball.SpeedY
	if !w.Bricks.DestroyBrick(b) {
		return
	}

	points := w.cfg.Bricks.Points
	w.state.Score += points
	w.record(false, 0, 1)
	res.BricksBroken++
	res.Events.Add(core.EventBrickBroken)

	cx, cy := b.Bounds().Center()
	w.Particles = append(w.Particles, burst(w.cfg.Animation, cx, cy, b.Color)...)
	w.Popups = append(w.Popups, &ScorePopup{X: cx, Y: cy, Value: points, Life: w.cfg.Animation.PopupLifetime})

	w.Items.TrySpawn(w.rng, cx, b.Y)

	if w.Bricks.CheckAllCleared() {
		w.endGame("YOU WIN!", PhaseWin, now)
		res.Events.Add(core.EventWin)
	}
}

func (w *GameWorld) onLifeLost(now int64, res *core.StepResult) {
	w.state.Lives--
	res.Events.Add(core.EventLifeLost)

	if w.state.Lives <= 0 {
		w.state.Lives = 0
		w.endGame("GAME OVER", PhaseGameOver, now)
		res.Events.Add(core.EventGameOver)
		return
	}

	setting := w.Setting()
	w.Ball.Reset(setting)
	w.Paddle.Reset(setting)
	w.resetItems()
}

// endGame freezes gameplay behind the end banner and counts the game.
func (w *GameWorld) endGame(text string, outcome Phase, now int64) {
	w.state.Paused = true
	w.phase = PhaseTransition
	w.transition = newTransition(text, outcome, now, w.cfg.Animation)
	w.record(true, w.state.Score, 0)
}

func (w *GameWorld) record(completed bool, score, bricks int) {
	w.stats.Record(completed, score, bricks)
	w.pending.Record(completed, score, bricks)
}

func (w *GameWorld) applyItem(t ItemType, now int64) {
	duration := w.cfg.Effects.DurationMs

	switch t {
	case ItemPaddleExpand:
		w.activatePaddleEffect(EffectPaddleExpanded, duration, now)
	case ItemPaddleShrink:
		w.activatePaddleEffect(EffectPaddleShrink, duration, now)
	case ItemBallSlow:
		// Refreshing an active slow only extends it.
		alreadySlow := w.Effects.IsActive(EffectBallSlow)
		w.Effects.Activate(EffectBallSlow, duration, now)
		if !alreadySlow {
			w.Ball.AdjustSpeed(w.cfg.Effects.SlowMultiplier)
		}
	case ItemExtraLife:
		if w.state.Lives < w.cfg.Game.MaxLives {
			w.state.Lives++
		}
	}
}

func (w *GameWorld) activatePaddleEffect(name EffectName, duration, now int64) {
	from := w.PaddleWidth()
	w.Effects.Activate(name, duration, now)
	w.Paddle.StartResize(from, w.Paddle.Width(w.Effects.Flags()), now)
}

func (w *GameWorld) expireEffects(now int64) {
	before := w.PaddleWidth()
	expired := w.Effects.Update(now)

	resize := false
	for _, name := range expired {
		if name == EffectBallSlow {
			w.Ball.RestoreSpeed(w.Setting().BallSpeed)
		}
		if name.IsPaddleEffect() {
			resize = true
		}
	}
	if resize {
		w.Paddle.StartResize(before, w.Paddle.Width(w.Effects.Flags()), now)
	}
}

// CoreState converts the world state for the platform layer.
func (w *GameWorld) CoreState() core.GameState {
	return core.GameState{
		Score:    w.state.Score,
		Lives:    w.state.Lives,
		Level:    w.state.Difficulty.Label(),
		GameOver: w.phase == PhaseGameOver || w.phase == PhaseWin,
		Won:      w.phase == PhaseWin,
		Paused:   w.phase == PhasePaused,
		InMenu:   w.phase == PhaseMenu,
	}
}
