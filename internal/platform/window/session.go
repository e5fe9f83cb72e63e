// Package window runs the brick breaker in a desktop window at the
// field's native resolution.
package window

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/games/breakout"
	"github.com/vovakirdan/brick-arcade/internal/logging"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

// GameID is the game the window front end runs.
const GameID = "breakout"

// Controls is the input sampled from the window for one frame.
type Controls struct {
	Left, Right bool
	Launch      bool // Space or left click
	Pause       bool
	Restart     bool
	Menu        bool
	Quit        bool

	// Pick is a difficulty chosen in the menu, empty when none.
	Pick config.DifficultyPreset

	// CursorX is the pointer in field pixels, valid when CursorMoved.
	CursorX     float64
	CursorMoved bool
}

// Session drives one world from window input and records finished games.
type Session struct {
	world  *breakout.GameWorld
	store  *storage.Store
	logger *log.Logger
	preset config.DifficultyPreset
}

// NewSession wraps a world in the menu phase. Store may be nil.
func NewSession(world *breakout.GameWorld, store *storage.Store, preset config.DifficultyPreset, logger *log.Logger) *Session {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Session{world: world, store: store, logger: logger, preset: preset}

	if store != nil {
		st, err := store.LoadStats(GameID)
		if err != nil {
			logger.Warn("could not load stats", "error", err)
		} else {
			world.SetStats(breakout.Stats(st))
		}
	}
	return s
}

// World returns the simulated world.
func (s *Session) World() *breakout.GameWorld { return s.world }

// Preset returns the difficulty the next game starts with.
func (s *Session) Preset() config.DifficultyPreset { return s.preset }

// Update advances one frame. It reports false once the player quits.
func (s *Session) Update(c Controls) bool {
	if c.Quit {
		s.persistStats()
		return false
	}

	if s.world.Phase() == breakout.PhaseMenu {
		if c.Pick != "" {
			s.preset = c.Pick
		}
		if c.Launch {
			s.world.Start(s.preset)
			s.logger.Info("game started", "level", s.preset.Label())
		}
		return true
	}

	res := s.world.Step(frameFor(c, s.world.Config().Field.Width))
	if res.Events != 0 {
		s.logger.Debug("tick", "events", res.Events.Names(), "score", res.State.Score)
	}
	if res.Events.Has(core.EventGameOver) || res.Events.Has(core.EventWin) {
		s.record(res.State)
	}
	return true
}

// frameFor converts sampled controls into a simulation input frame.
func frameFor(c Controls, fieldW float64) core.InputFrame {
	frame := core.NewInputFrame()
	for _, a := range []struct {
		on     bool
		action core.Action
	}{
		{c.Left, core.ActionLeft},
		{c.Right, core.ActionRight},
		{c.Launch, core.ActionLaunch},
		{c.Pause, core.ActionPause},
		{c.Restart, core.ActionRestart},
		{c.Menu, core.ActionMenu},
	} {
		if a.on {
			frame.Set(a.action)
		}
	}
	if c.CursorMoved && fieldW > 0 {
		frame.PointTo(c.CursorX / fieldW)
	}
	return frame
}

func (s *Session) record(st core.GameState) {
	s.logger.Info("game finished", "won", st.Won, "score", st.Score, "level", st.Level)
	if s.store == nil {
		return
	}
	if st.Score > 0 {
		if _, err := s.store.SaveScore(GameID, st.Level, st.Score); err != nil {
			s.logger.Warn("could not save score", "error", err)
		}
	}
	s.persistStats()
}

func (s *Session) persistStats() {
	if s.store == nil {
		return
	}
	delta := s.world.TakePendingStats()
	if delta == (breakout.Stats{}) {
		return
	}
	if err := s.store.AddStats(GameID, storage.PlayerStats(delta)); err != nil {
		s.logger.Warn("could not save stats", "error", err)
	}
}
