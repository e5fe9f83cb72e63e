package breakout

import (
	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
)

// ItemType represents the kinds of falling items.
type ItemType int

const (
	ItemPaddleExpand ItemType = iota // Widen paddle
	ItemBallSlow                     // Slow the ball
	ItemExtraLife                    // One more life, up to the cap
	ItemPaddleShrink                 // Narrow paddle
	itemTypeCount                    // Sentinel for counting types
)

// Glyph returns the display character for an item type.
func (t ItemType) Glyph() rune {
	switch t {
	case ItemPaddleExpand:
		return '+'
	case ItemBallSlow:
		return 'S'
	case ItemExtraLife:
		return '♥'
	case ItemPaddleShrink:
		return '-'
	default:
		return '?'
	}
}

// Color returns the item's palette color.
func (t ItemType) Color() core.Color {
	switch t {
	case ItemPaddleExpand:
		return core.ColorBlue
	case ItemBallSlow:
		return core.ColorEmerald
	case ItemExtraLife:
		return core.ColorRed
	case ItemPaddleShrink:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// String returns the name of the item type.
func (t ItemType) String() string {
	switch t {
	case ItemPaddleExpand:
		return "paddle_expand"
	case ItemBallSlow:
		return "ball_slow"
	case ItemExtraLife:
		return "extra_life"
	case ItemPaddleShrink:
		return "paddle_shrink"
	default:
		return "unknown"
	}
}

// Item is a falling item. X and Y are its top-left corner.
type Item struct {
	X, Y          float64
	Width, Height float64
	Type          ItemType
}

// Bounds returns the item rectangle in field pixels.
func (it *Item) Bounds() core.Rect {
	return core.NewRect(it.X, it.Y, it.Width, it.Height)
}

// ItemManager handles item spawning, falling and collection.
type ItemManager struct {
	Items []*Item
	cfg   config.ItemConfig
}

// NewItemManager creates an empty item manager.
func NewItemManager(cfg config.ItemConfig) *ItemManager {
	return &ItemManager{cfg: cfg}
}

// TrySpawn rolls the drop chance and, on success, drops a uniformly chosen
// item centered on x with its top at y. The type is only rolled after a
// successful drop.
func (m *ItemManager) TrySpawn(rng *SimpleRNG, x, y float64) (*Item, bool) {
	if rng.Float64() >= m.cfg.DropChance {
		return nil, false
	}
	it := &Item{
		X:      x - m.cfg.Size/2,
		Y:      y,
		Width:  m.cfg.Size,
		Height: m.cfg.Size,
		Type:   ItemType(rng.Intn(int(itemTypeCount))),
	}
	m.Items = append(m.Items, it)
	return it, true
}

// Update moves every item down, drops those that left the field and
// returns the types caught by the paddle rectangle, in spawn order.
func (m *ItemManager) Update(fieldH float64, paddle core.Rect) []ItemType {
	var caught []ItemType
	active := m.Items[:0]

	for _, it := range m.Items {
		it.Y += m.cfg.FallSpeed
		if it.Y > fieldH {
			continue
		}
		if it.Bounds().Intersects(paddle) {
			caught = append(caught, it.Type)
			continue
		}
		active = append(active, it)
	}

	clear(m.Items[len(active):])
	m.Items = active
	return caught
}

// Reset removes all items.
func (m *ItemManager) Reset() {
	m.Items = m.Items[:0]
}

// EffectName identifies a timed effect.
type EffectName int

const (
	EffectPaddleExpanded EffectName = iota
	EffectBallSlow
	EffectPaddleShrink
	effectCount
)

// String returns the short name for effect display.
func (e EffectName) String() string {
	switch e {
	case EffectPaddleExpanded:
		return "Wide"
	case EffectBallSlow:
		return "Slow"
	case EffectPaddleShrink:
		return "Narrow"
	default:
		return "?"
	}
}

// opposite returns the mutually exclusive effect, if any.
func (e EffectName) opposite() (EffectName, bool) {
	switch e {
	case EffectPaddleExpanded:
		return EffectPaddleShrink, true
	case EffectPaddleShrink:
		return EffectPaddleExpanded, true
	default:
		return 0, false
	}
}

// IsPaddleEffect reports whether the effect changes the paddle width.
func (e EffectName) IsPaddleEffect() bool {
	_, ok := e.opposite()
	return ok
}

// EffectSet is a read-only view of the active flags.
type EffectSet struct {
	PaddleExpanded bool
	BallSlow       bool
	PaddleShrink   bool
}

// EffectManager tracks timed effects as flags with expiry timestamps.
// At most one expiry is pending per effect, and paddle expand and shrink
// are never active together.
type EffectManager struct {
	active    [effectCount]bool
	expiresAt [effectCount]int64 // Zero means no expiry
}

// NewEffectManager creates a manager with no active effects.
func NewEffectManager() *EffectManager {
	return &EffectManager{}
}

// Activate turns an effect on, replacing any pending expiry. For paddle
// effects the opposite effect is cancelled first and returned as
// superseded. A non-positive duration never expires.
func (m *EffectManager) Activate(name EffectName, durationMs, now int64) (superseded EffectName, ok bool) {
	if opp, has := name.opposite(); has && m.active[opp] {
		m.Deactivate(opp)
		superseded, ok = opp, true
	}

	m.active[name] = true
	m.expiresAt[name] = 0
	if durationMs > 0 {
		m.expiresAt[name] = now + durationMs
	}
	return superseded, ok
}

// Deactivate turns an effect off and cancels its expiry. It reports
// whether the effect was active.
func (m *EffectManager) Deactivate(name EffectName) bool {
	was := m.active[name]
	m.active[name] = false
	m.expiresAt[name] = 0
	return was
}

// IsActive reports whether an effect is on.
func (m *EffectManager) IsActive(name EffectName) bool {
	return m.active[name]
}

// Flags returns the active flags.
func (m *EffectManager) Flags() EffectSet {
	return EffectSet{
		PaddleExpanded: m.active[EffectPaddleExpanded],
		BallSlow:       m.active[EffectBallSlow],
		PaddleShrink:   m.active[EffectPaddleShrink],
	}
}

// Remaining returns milliseconds until an effect expires, or 0 if it is
// inactive or has no expiry.
func (m *EffectManager) Remaining(name EffectName, now int64) int64 {
	if !m.active[name] || m.expiresAt[name] == 0 {
		return 0
	}
	return max(m.expiresAt[name]-now, 0)
}

// Update clears every effect whose expiry has passed and returns them in
// declaration order.
func (m *EffectManager) Update(now int64) []EffectName {
	var expired []EffectName
	for name := range effectCount {
		if m.active[name] && m.expiresAt[name] != 0 && now >= m.expiresAt[name] {
			m.active[name] = false
			m.expiresAt[name] = 0
			expired = append(expired, name)
		}
	}
	return expired
}

// Reset clears all flags and pending expiries.
func (m *EffectManager) Reset() {
	*m = EffectManager{}
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a simple LCG (Linear Congruential Generator).
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
