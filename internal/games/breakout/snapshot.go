package breakout

import (
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/brick-arcade/internal/config"
)

// Snapshot contains the complete deterministic game state for quick-save
// and replay checks. Cosmetic particles and popups are not included, and
// neither are lifetime stats, which belong to the player rather than the game.
type Snapshot struct {
	Frame      uint64 `msgpack:"frame"`
	Now        int64  `msgpack:"now"`
	Phase      int    `msgpack:"phase"`
	Difficulty string `msgpack:"difficulty"`
	Score      int    `msgpack:"score"`
	Lives      int    `msgpack:"lives"`
	Running    bool   `msgpack:"running"`
	Paused     bool   `msgpack:"paused"`

	Ball   BallState   `msgpack:"ball"`
	Paddle PaddleState `msgpack:"paddle"`

	// Brick alive flags in build order (column-major).
	Rows   int    `msgpack:"rows"`
	Bricks []bool `msgpack:"bricks"`

	Items      []ItemState      `msgpack:"items"`
	Effects    []EffectState    `msgpack:"effects"`
	Transition *TransitionState `msgpack:"transition,omitempty"`

	RNGState uint64 `msgpack:"rng"`
}

// BallState is the serialized ball.
type BallState struct {
	X         float64 `msgpack:"x"`
	Y         float64 `msgpack:"y"`
	SpeedX    float64 `msgpack:"sx"`
	SpeedY    float64 `msgpack:"sy"`
	BaseSpeed float64 `msgpack:"base"`
	Launched  bool    `msgpack:"launched"`
}

// PaddleState is the serialized paddle with its resize animation.
type PaddleState struct {
	X         float64          `msgpack:"x"`
	BaseWidth float64          `msgpack:"base_width"`
	Resize    *resizeAnimation `msgpack:"resize,omitempty"`
}

// ItemState is one serialized falling item.
type ItemState struct {
	X    float64 `msgpack:"x"`
	Y    float64 `msgpack:"y"`
	Type int     `msgpack:"type"`
}

// EffectState is one serialized effect flag.
type EffectState struct {
	Active    bool  `msgpack:"active"`
	ExpiresAt int64 `msgpack:"expires_at"`
}

// TransitionState is the serialized end banner.
type TransitionState struct {
	Text      string `msgpack:"text"`
	Outcome   int    `msgpack:"outcome"`
	Stage     int    `msgpack:"stage"`
	StartedAt int64  `msgpack:"started_at"`
}

// Snapshot returns the current game state.
func (w *GameWorld) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:      w.frame,
		Now:        w.clock.Now(),
		Phase:      int(w.phase),
		Difficulty: string(w.state.Difficulty),
		Score:      w.state.Score,
		Lives:      w.state.Lives,
		Running:    w.state.Running,
		Paused:     w.state.Paused,
		Ball: BallState{
			X:         w.Ball.X,
			Y:         w.Ball.Y,
			SpeedX:    w.Ball.SpeedX,
			SpeedY:    w.Ball.SpeedY,
			BaseSpeed: w.Ball.BaseSpeed,
			Launched:  w.Ball.Launched,
		},
		Paddle: PaddleState{
			X:         w.Paddle.X,
			BaseWidth: w.Paddle.BaseWidth,
		},
		Rows:     w.Bricks.Rows,
		Bricks:   make([]bool, len(w.Bricks.Bricks)),
		Items:    make([]ItemState, 0, len(w.Items.Items)),
		Effects:  make([]EffectState, effectCount),
		RNGState: w.rng.state,
	}

	if a := w.Paddle.animation; a != nil {
		copied := *a
		snap.Paddle.Resize = &copied
	}
	for i, b := range w.Bricks.Bricks {
		snap.Bricks[i] = b.Alive
	}
	for _, it := range w.Items.Items {
		snap.Items = append(snap.Items, ItemState{X: it.X, Y: it.Y, Type: int(it.Type)})
	}
	for name := range effectCount {
		snap.Effects[name] = EffectState{
			Active:    w.Effects.active[name],
			ExpiresAt: w.Effects.expiresAt[name],
		}
	}
	if t := w.transition; t != nil {
		snap.Transition = &TransitionState{
			Text:      t.Text,
			Outcome:   int(t.Outcome),
			Stage:     int(t.Stage),
			StartedAt: t.StartedAt,
		}
	}
	return snap
}

// ErrSnapshotMismatch is returned when a snapshot does not fit the
// world's configuration.
var ErrSnapshotMismatch = errors.New("breakout: snapshot does not match config")

// ApplySnapshot restores game state from a snapshot. The world is left
// unchanged if the snapshot is inconsistent.
func (w *GameWorld) ApplySnapshot(snap Snapshot) error {
	difficulty, err := config.ParseDifficulty(snap.Difficulty)
	if err != nil {
		return fmt.Errorf("breakout: restore: %w", err)
	}
	if snap.Rows <= 0 || len(snap.Bricks) != w.cfg.Bricks.Cols*snap.Rows {
		return fmt.Errorf("%w: %d flags for %d rows", ErrSnapshotMismatch, len(snap.Bricks), snap.Rows)
	}
	if len(snap.Effects) != int(effectCount) {
		return fmt.Errorf("%w: %d effects", ErrSnapshotMismatch, len(snap.Effects))
	}
	if snap.Phase < int(PhaseMenu) || snap.Phase > int(PhaseWin) {
		return fmt.Errorf("%w: phase %d", ErrSnapshotMismatch, snap.Phase)
	}
	for _, it := range snap.Items {
		if it.Type < 0 || it.Type >= int(itemTypeCount) {
			return fmt.Errorf("%w: item type %d", ErrSnapshotMismatch, it.Type)
		}
	}

	w.frame = snap.Frame
	if s, ok := w.clock.(setter); ok {
		s.Set(snap.Now)
	}
	w.phase = Phase(snap.Phase)
	w.state = GameState{
		Score:      snap.Score,
		Lives:      snap.Lives,
		Difficulty: difficulty,
		Running:    snap.Running,
		Paused:     snap.Paused,
	}

	w.Ball.X, w.Ball.Y = snap.Ball.X, snap.Ball.Y
	w.Ball.SpeedX, w.Ball.SpeedY = snap.Ball.SpeedX, snap.Ball.SpeedY
	w.Ball.BaseSpeed = snap.Ball.BaseSpeed
	w.Ball.Launched = snap.Ball.Launched

	w.Paddle.X = snap.Paddle.X
	w.Paddle.BaseWidth = snap.Paddle.BaseWidth
	w.Paddle.animation = nil
	if snap.Paddle.Resize != nil {
		copied := *snap.Paddle.Resize
		w.Paddle.animation = &copied
	}

	w.Bricks.Init(snap.Rows)
	for i, alive := range snap.Bricks {
		w.Bricks.Bricks[i].Alive = alive
	}

	w.Items.Reset()
	for _, it := range snap.Items {
		w.Items.Items = append(w.Items.Items, &Item{
			X:      it.X,
			Y:      it.Y,
			Width:  w.cfg.Items.Size,
			Height: w.cfg.Items.Size,
			Type:   ItemType(it.Type),
		})
	}

	for i, e := range snap.Effects {
		w.Effects.active[i] = e.Active
		w.Effects.expiresAt[i] = e.ExpiresAt
	}

	w.transition = nil
	if t := snap.Transition; t != nil {
		w.transition = &Transition{
			Text:      t.Text,
			Outcome:   Phase(t.Outcome),
			Stage:     TransitionStage(t.Stage),
			StartedAt: t.StartedAt,
			timing:    w.cfg.Animation,
		}
	}

	w.Particles = w.Particles[:0]
	w.Popups = w.Popups[:0]
	w.rng.state = snap.RNGState
	return nil
}

// Encode serializes the snapshot with msgpack.
func (snap *Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("breakout: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a msgpack snapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("breakout: decode snapshot: %w", err)
	}
	return snap, nil
}

// Hash returns a hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	data, err := snap.Encode()
	if err != nil {
		return 0
	}
	h := fnv.New64a()
	h.Write(data) //nolint:errcheck
	return h.Sum64()
}
