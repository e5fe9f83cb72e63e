package breakout

import (
	"math"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
)

// Particle is a cosmetic brick fragment. Life counts down in frames.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
	Color  core.Color
}

// ScorePopup is a floating score label. Life counts down in frames.
type ScorePopup struct {
	X, Y  float64
	Value int
	Life  int
}

// burst spawns evenly spread particles from a point.
func burst(cfg config.AnimationConfig, x, y float64, c core.Color) []*Particle {
	out := make([]*Particle, 0, cfg.ParticleCount)
	for i := range cfg.ParticleCount {
		angle := 2 * math.Pi * float64(i) / float64(cfg.ParticleCount)
		out = append(out, &Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * cfg.ParticleSpeed,
			VY:    math.Sin(angle) * cfg.ParticleSpeed,
			Life:  cfg.ParticleLifetime,
			Color: c,
		})
	}
	return out
}

func stepParticles(ps []*Particle, gravity float64) []*Particle {
	alive := ps[:0]
	for _, p := range ps {
		p.X += p.VX
		p.Y += p.VY
		p.VY += gravity
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	clear(ps[len(alive):])
	return alive
}

func stepPopups(ps []*ScorePopup, floatSpeed float64) []*ScorePopup {
	alive := ps[:0]
	for _, p := range ps {
		p.Y -= floatSpeed
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	clear(ps[len(alive):])
	return alive
}

// TransitionStage is the current part of the end-of-game banner.
type TransitionStage int

const (
	StageFadeIn TransitionStage = iota
	StageDisplay
	StageFadeOut
	StageDone
)

// Transition is the banner shown between the last gameplay frame and the
// game over or win screen. It advances even while the game is paused.
type Transition struct {
	Text      string
	Outcome   Phase
	Stage     TransitionStage
	StartedAt int64 // Start of the current stage

	timing config.AnimationConfig
}

func newTransition(text string, outcome Phase, now int64, timing config.AnimationConfig) *Transition {
	return &Transition{
		Text:      text,
		Outcome:   outcome,
		Stage:     StageFadeIn,
		StartedAt: now,
		timing:    timing,
	}
}

// Update moves through the stages and reports whether the fade out has
// finished.
func (t *Transition) Update(now int64) bool {
	for t.Stage != StageDone {
		limit := t.stageLength()
		if now-t.StartedAt < limit {
			return false
		}
		t.StartedAt += limit
		t.Stage++
	}
	return true
}

// Opacity returns the banner opacity in [0, 1].
func (t *Transition) Opacity(now int64) float64 {
	limit := t.stageLength()
	progress := 1.0
	if limit > 0 {
		progress = core.Clamp(float64(now-t.StartedAt)/float64(limit), 0, 1)
	}
	switch t.Stage {
	case StageFadeIn:
		return progress
	case StageDisplay:
		return 1
	case StageFadeOut:
		return 1 - progress
	default:
		return 0
	}
}

func (t *Transition) stageLength() int64 {
	switch t.Stage {
	case StageFadeIn:
		return t.timing.FadeInMs
	case StageDisplay:
		return t.timing.DisplayMs
	case StageFadeOut:
		return t.timing.FadeOutMs
	default:
		return 0
	}
}
