package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
)

func newTestWorld(t *testing.T, preset config.DifficultyPreset, opts ...Option) (*GameWorld, *ManualClock) {
	t.Helper()
	clock := &ManualClock{}
	opts = append([]Option{WithClock(clock), WithSeed(1)}, opts...)
	w := NewWorld(testConfig(), opts...)
	w.Start(preset)
	return w, clock
}

func noInput() core.InputFrame {
	return core.NewInputFrame()
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// finishTransition runs the end banner to completion.
func finishTransition(w *GameWorld, clock *ManualClock) {
	clock.Add(3000)
	w.Step(noInput())
}

func TestWorldStartsInMenu(t *testing.T) {
	w := NewWorld(testConfig())
	if w.Phase() != PhaseMenu || w.State().IsPlaying() {
		t.Fatalf("new world phase = %v, expected menu", w.Phase())
	}

	x := w.Ball.X
	w.Step(input(core.ActionLaunch, core.ActionRight))
	if w.Ball.Launched || w.Ball.X != x {
		t.Error("menu phase should not run gameplay")
	}
}

func TestStartResetsSession(t *testing.T) {
	w, _ := newTestWorld(t, config.DifficultyHard)

	st := w.State()
	if st.Score != 0 || st.Lives != 3 || !st.Running || st.Paused {
		t.Errorf("state after Start() = %+v", st)
	}
	if len(w.Bricks.Bricks) != 9*7 {
		t.Errorf("hard grid has %d bricks, expected 63", len(w.Bricks.Bricks))
	}
	if w.Paddle.BaseWidth != 80 || math.Abs(w.Ball.Speed()-7) > eps {
		t.Errorf("hard paddle %v ball speed %v", w.Paddle.BaseWidth, w.Ball.Speed())
	}
}

// The easy grid is cleared column by column with a ball shot straight up.
func TestEasyWinScenario(t *testing.T) {
	w, clock := newTestWorld(t, config.DifficultyEasy)
	w.Step(input(core.ActionLaunch))

	destroyed := 0
	wins := 0
	for col := range w.Bricks.Cols {
		for row := w.Bricks.Rows - 1; row >= 0; row-- {
			b := w.Bricks.BrickAt(col, row)
			cx, _ := b.Bounds().Center()
			w.Ball.X, w.Ball.Y = cx, b.Y+b.Height+w.Ball.Radius+2
			w.Ball.SpeedX, w.Ball.SpeedY = 0, -4

			if wins > 0 {
				t.Fatalf("win fired before brick %d", destroyed+1)
			}
			res := w.Step(noInput())
			if b.Alive {
				t.Fatalf("brick col %d row %d not destroyed", col, row)
			}
			destroyed++
			if res.Events.Has(core.EventWin) {
				wins++
			}
		}
	}

	if destroyed != 27 || wins != 1 {
		t.Fatalf("destroyed %d bricks with %d wins, expected 27 and 1", destroyed, wins)
	}
	if w.State().Score != 270 {
		t.Errorf("score = %d, expected 270", w.State().Score)
	}
	if w.Phase() != PhaseTransition || w.State().IsPlaying() {
		t.Errorf("phase = %v, expected transition", w.Phase())
	}

	finishTransition(w, clock)
	if w.Phase() != PhaseWin {
		t.Errorf("phase after banner = %v, expected win", w.Phase())
	}
	stats := w.Stats()
	if stats.TotalGames != 1 || stats.BestScore != 270 || stats.TotalBricks != 27 {
		t.Errorf("stats = %+v", stats)
	}
}

func dropBall(w *GameWorld) {
	w.Ball.Launched = true
	w.Paddle.X = 0
	w.Ball.X, w.Ball.Y = 700, 590
	w.Ball.SpeedX, w.Ball.SpeedY = 0, 5
}

func TestGameOverOnLastLife(t *testing.T) {
	tests := []struct {
		name     string
		prevBest int
		score    int
		wantBest int
	}{
		{"new best", 50, 100, 100},
		{"below best", 500, 100, 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, clock := newTestWorld(t, config.DifficultyNormal,
				WithStats(Stats{TotalGames: 4, BestScore: tc.prevBest}))
			w.state.Lives = 1
			w.state.Score = tc.score
			dropBall(w)

			res := w.Step(noInput())
			if !res.Events.Has(core.EventLifeLost) || !res.Events.Has(core.EventGameOver) {
				t.Fatalf("events = %v, expected life lost and game over", res.Events.Names())
			}
			if w.State().Lives != 0 {
				t.Errorf("lives = %d, expected 0", w.State().Lives)
			}

			gameOvers := 1
			for range 300 {
				clock.Add(16)
				if w.Step(noInput()).Events.Has(core.EventGameOver) {
					gameOvers++
				}
			}
			if gameOvers != 1 {
				t.Errorf("game over fired %d times", gameOvers)
			}
			if w.Phase() != PhaseGameOver {
				t.Errorf("phase = %v, expected game over", w.Phase())
			}
			if w.Stats().TotalGames != 5 {
				t.Errorf("TotalGames = %d, expected 5", w.Stats().TotalGames)
			}
			if w.Stats().BestScore != tc.wantBest {
				t.Errorf("BestScore = %d, expected %d", w.Stats().BestScore, tc.wantBest)
			}
			if !w.CoreState().GameOver || w.CoreState().Won {
				t.Errorf("core state = %+v", w.CoreState())
			}
		})
	}
}

func TestLifeLostResetsBallPaddleAndItems(t *testing.T) {
	w, clock := newTestWorld(t, config.DifficultyNormal)
	w.applyItem(ItemPaddleExpand, clock.Now())
	w.Items.Items = append(w.Items.Items, &Item{X: 10, Y: 10, Width: 20, Height: 20})
	dropBall(w)

	res := w.Step(noInput())
	if !res.Events.Has(core.EventLifeLost) || res.Events.Has(core.EventGameOver) {
		t.Fatalf("events = %v", res.Events.Names())
	}
	if w.State().Lives != 2 || !w.State().IsPlaying() {
		t.Errorf("state = %+v", w.State())
	}
	if w.Ball.Launched || len(w.Items.Items) != 0 || w.Effects.Flags() != (EffectSet{}) {
		t.Error("life loss should reset the ball, items and effects")
	}
	if w.Paddle.X != 350 || w.Paddle.Resizing() {
		t.Errorf("paddle X = %v resizing=%v", w.Paddle.X, w.Paddle.Resizing())
	}
}

func TestPaddleHitExcludesBottom(t *testing.T) {
	w, _ := newTestWorld(t, config.DifficultyNormal)
	w.Ball.Launched = true
	w.Paddle.X = 350
	// Overlaps the paddle and is already past the bottom edge.
	w.Ball.X, w.Ball.Y = 400, 588
	w.Ball.SpeedX, w.Ball.SpeedY = 0, 5

	res := w.Step(noInput())
	if !res.Events.Has(core.EventPaddleHit) || res.Events.Has(core.EventLifeLost) {
		t.Errorf("events = %v, expected only a paddle hit", res.Events.Names())
	}
	if w.State().Lives != 3 {
		t.Errorf("lives = %d, expected 3", w.State().Lives)
	}
}

func TestPauseFreezesGameplay(t *testing.T) {
	w, _ := newTestWorld(t, config.DifficultyNormal)
	w.Step(input(core.ActionLaunch))

	w.Step(input(core.ActionPause))
	if w.Phase() != PhasePaused || !w.State().Paused {
		t.Fatalf("phase = %v, expected paused", w.Phase())
	}
	x, y := w.Ball.X, w.Ball.Y
	for range 10 {
		w.Step(input(core.ActionRight))
	}
	if w.Ball.X != x || w.Ball.Y != y {
		t.Error("ball moved while paused")
	}

	w.Step(input(core.ActionPause))
	if w.Phase() != PhasePlaying {
		t.Errorf("phase = %v, expected playing", w.Phase())
	}
}

func TestPauseIgnoredDuringTransition(t *testing.T) {
	w, _ := newTestWorld(t, config.DifficultyNormal)
	w.state.Lives = 1
	dropBall(w)
	w.Step(noInput())

	w.Step(input(core.ActionPause))
	if w.Phase() != PhaseTransition || !w.State().Paused {
		t.Errorf("pause toggled the banner: phase %v", w.Phase())
	}
}

func TestTransitionAdvancesWhilePaused(t *testing.T) {
	w, clock := newTestWorld(t, config.DifficultyNormal)
	w.state.Lives = 1
	dropBall(w)
	w.Step(noInput())

	tr := w.Transition()
	if tr == nil || tr.Text != "GAME OVER" {
		t.Fatalf("transition = %+v", tr)
	}

	steps := []struct {
		advance int64
		stage   TransitionStage
	}{
		{250, StageFadeIn},
		{250, StageDisplay},
		{1999, StageDisplay},
		{1, StageFadeOut},
	}
	for _, s := range steps {
		clock.Add(s.advance)
		w.Step(noInput())
		if w.Transition() == nil || w.Transition().Stage != s.stage {
			t.Fatalf("at t=%d stage = %+v, expected %v", clock.Now(), w.Transition(), s.stage)
		}
	}

	clock.Add(500)
	w.Step(noInput())
	if w.Transition() != nil || w.Phase() != PhaseGameOver {
		t.Errorf("phase = %v after fade out", w.Phase())
	}
	if st := w.State(); st.Running || st.Paused {
		t.Errorf("state = %+v, expected stopped", st)
	}
}

func TestRestartAndQuitToMenu(t *testing.T) {
	w, clock := newTestWorld(t, config.DifficultyEasy)
	w.state.Lives = 1
	w.state.Score = 40
	dropBall(w)
	w.Step(noInput())
	finishTransition(w, clock)

	w.Step(input(core.ActionRestart))
	if w.Phase() != PhasePlaying || w.State().Score != 0 || w.State().Lives != 3 {
		t.Fatalf("restart: phase %v state %+v", w.Phase(), w.State())
	}
	if w.State().Difficulty != config.DifficultyEasy {
		t.Errorf("restart changed difficulty to %v", w.State().Difficulty)
	}

	w.Step(input(core.ActionRestart))
	if w.State().Difficulty != config.DifficultyEasy || w.Phase() != PhasePlaying {
		t.Error("restart key mid-game should be ignored")
	}

	w.Step(input(core.ActionMenu))
	if w.Phase() != PhaseMenu || w.State().Running {
		t.Errorf("phase = %v, expected menu", w.Phase())
	}
}

func TestExtraLifeCapped(t *testing.T) {
	w, clock := newTestWorld(t, config.DifficultyNormal)

	for range 5 {
		w.applyItem(ItemExtraLife, clock.Now())
	}
	if w.State().Lives != 5 {
		t.Errorf("lives = %d, expected cap of 5", w.State().Lives)
	}
}

func TestBallSlowEffectLifecycle(t *testing.T) {
	w, clock := newTestWorld(t, config.DifficultyNormal)
	w.Step(input(core.ActionLaunch))

	w.applyItem(ItemBallSlow, clock.Now())
	if math.Abs(w.Ball.Speed()-3.5) > eps {
		t.Fatalf("slowed speed = %v, expected 3.5", w.Ball.Speed())
	}

	// Catching a second slow item refreshes the timer without compounding.
	clock.Add(5000)
	w.applyItem(ItemBallSlow, clock.Now())
	if math.Abs(w.Ball.Speed()-3.5) > eps {
		t.Errorf("second slow changed speed to %v", w.Ball.Speed())
	}

	clock.Add(9999)
	w.expireEffects(clock.Now())
	if !w.Effects.IsActive(EffectBallSlow) {
		t.Fatal("slow expired before its refreshed duration")
	}

	clock.Add(1)
	w.expireEffects(clock.Now())
	if w.Effects.IsActive(EffectBallSlow) {
		t.Fatal("slow should expire after 10s")
	}
	if math.Abs(w.Ball.Speed()-5) > eps {
		t.Errorf("speed after expiry = %v, expected base 5", w.Ball.Speed())
	}
}

func TestPaddleEffectsSwapAndExpire(t *testing.T) {
	w, clock := newTestWorld(t, config.DifficultyNormal)

	w.applyItem(ItemPaddleShrink, clock.Now())
	if w.Paddle.Width(w.Effects.Flags()) != 70 || !w.Paddle.Resizing() {
		t.Fatalf("shrink: width %v resizing %v", w.Paddle.Width(w.Effects.Flags()), w.Paddle.Resizing())
	}

	clock.Add(1000)
	w.Paddle.Update(clock.Now())
	w.applyItem(ItemPaddleExpand, clock.Now())
	fx := w.Effects.Flags()
	if fx.PaddleShrink || !fx.PaddleExpanded {
		t.Fatalf("flags = %+v, expected expand only", fx)
	}
	if w.Paddle.animation.StartWidth != 70 || w.Paddle.animation.TargetWidth != 150 {
		t.Errorf("resize %v -> %v, expected 70 -> 150", w.Paddle.animation.StartWidth, w.Paddle.animation.TargetWidth)
	}

	clock.Add(10000)
	w.Paddle.Update(clock.Now())
	w.expireEffects(clock.Now())
	if w.Effects.IsActive(EffectPaddleExpanded) {
		t.Fatal("expand should have expired")
	}
	if w.Paddle.animation == nil || w.Paddle.animation.StartWidth != 150 || w.Paddle.animation.TargetWidth != 100 {
		t.Errorf("expiry should animate back from 150 to 100, got %+v", w.Paddle.animation)
	}
}

func TestBrickHitScoresAndReflects(t *testing.T) {
	w, _ := newTestWorld(t, config.DifficultyNormal)
	w.Step(input(core.ActionLaunch))

	b := w.Bricks.BrickAt(4, 4)
	cx, _ := b.Bounds().Center()
	w.Ball.X, w.Ball.Y = cx, b.Y+b.Height+10
	w.Ball.SpeedX, w.Ball.SpeedY = 1, -4

	res := w.Step(noInput())
	if !res.Events.Has(core.EventBrickBroken) || res.BricksBroken != 1 {
		t.Fatalf("events = %v", res.Events.Names())
	}
	if w.State().Score != 10 || w.Ball.SpeedY != 4 || w.Ball.SpeedX != 1 {
		t.Errorf("score %d speed (%v, %v)", w.State().Score, w.Ball.SpeedX, w.Ball.SpeedY)
	}
	if w.Stats().TotalBricks != 1 || w.Stats().TotalGames != 0 {
		t.Errorf("stats = %+v", w.Stats())
	}
	if len(w.Particles) != 8 || len(w.Popups) != 1 {
		t.Errorf("particles %d popups %d", len(w.Particles), len(w.Popups))
	}
}

func TestPointerMovesPaddle(t *testing.T) {
	w, _ := newTestWorld(t, config.DifficultyNormal)

	in := noInput()
	in.PointTo(0.25)
	w.Step(in)
	if w.Paddle.X != 150 {
		t.Errorf("paddle X = %v, expected 150", w.Paddle.X)
	}
	if w.Ball.X != 200 {
		t.Errorf("resting ball X = %v, expected paddle center 200", w.Ball.X)
	}
}

func runScript(seed int64) Snapshot {
	w := NewWorld(testConfig(), WithSeed(seed), WithTickRate(60))
	w.Start(config.DifficultyNormal)

	for i := range 3000 {
		in := core.NewInputFrame()
		switch {
		case i == 10:
			in.Set(core.ActionLaunch)
		case i%40 < 20:
			in.Set(core.ActionRight)
		default:
			in.Set(core.ActionLeft)
		}
		// Track the ball so the run lasts and hits bricks.
		in.PointTo(w.Ball.X / w.Config().Field.Width)
		w.Step(in)
	}
	return w.Snapshot()
}

func TestWorldDeterminism(t *testing.T) {
	a := runScript(12345)
	b := runScript(12345)

	if a.Hash() != b.Hash() {
		t.Errorf("same seed diverged: %d vs %d", a.Hash(), b.Hash())
	}
	if a.Score == 0 {
		t.Error("scripted run should break some bricks")
	}
}

func TestPendingStatsTakenOnce(t *testing.T) {
	w, _ := newTestWorld(t, config.DifficultyNormal, WithStats(Stats{TotalGames: 9, BestScore: 500, TotalBricks: 300}))
	w.Step(input(core.ActionLaunch))

	b := w.Bricks.BrickAt(2, 4)
	cx, _ := b.Bounds().Center()
	w.Ball.X, w.Ball.Y = cx, b.Y+b.Height+10
	w.Ball.SpeedX, w.Ball.SpeedY = 0, -4
	w.Step(noInput())

	if got := w.TakePendingStats(); got != (Stats{TotalBricks: 1}) {
		t.Errorf("pending after one brick = %+v", got)
	}
	if got := w.TakePendingStats(); got != (Stats{}) {
		t.Errorf("pending should be cleared, got %+v", got)
	}
	if got := w.Stats(); got.TotalBricks != 301 || got.TotalGames != 9 {
		t.Errorf("lifetime stats = %+v", got)
	}

	w.state.Lives = 1
	w.Ball.X, w.Ball.Y = 400, w.cfg.Field.Height+w.Ball.Radius
	w.Ball.SpeedX, w.Ball.SpeedY = 0, 4
	w.Paddle.X = 0
	res := w.Step(noInput())
	if !res.Events.Has(core.EventGameOver) {
		t.Fatalf("events = %v, expected game over", res.Events.Names())
	}
	if got := w.TakePendingStats(); got != (Stats{TotalGames: 1, BestScore: 10}) {
		t.Errorf("pending after game over = %+v", got)
	}
}
