package breakout

import (
	"testing"

	"github.com/vovakirdan/brick-arcade/internal/core"
)

func TestEffectActivateIsExclusive(t *testing.T) {
	m := NewEffectManager()

	m.Activate(EffectPaddleShrink, 10000, 0)
	superseded, ok := m.Activate(EffectPaddleExpanded, 10000, 100)

	if !ok || superseded != EffectPaddleShrink {
		t.Errorf("Activate() superseded = %v, %v, expected shrink", superseded, ok)
	}
	fx := m.Flags()
	if !fx.PaddleExpanded || fx.PaddleShrink {
		t.Errorf("flags = %+v, expected only expanded", fx)
	}

	m.Activate(EffectPaddleShrink, 10000, 200)
	if m.IsActive(EffectPaddleExpanded) || !m.IsActive(EffectPaddleShrink) {
		t.Error("shrink should cancel expand")
	}
	if _, ok := m.Activate(EffectBallSlow, 10000, 200); ok {
		t.Error("ball slow supersedes nothing")
	}
}

func TestEffectReactivationRefreshesExpiry(t *testing.T) {
	m := NewEffectManager()
	m.Activate(EffectBallSlow, 10000, 0)
	m.Activate(EffectBallSlow, 10000, 6000)

	if expired := m.Update(10000); len(expired) != 0 {
		t.Errorf("refreshed effect expired early: %v", expired)
	}
	if got := m.Remaining(EffectBallSlow, 10000); got != 6000 {
		t.Errorf("Remaining() = %d, expected 6000", got)
	}
	expired := m.Update(16000)
	if len(expired) != 1 || expired[0] != EffectBallSlow {
		t.Errorf("Update() = %v, expected [Slow]", expired)
	}
	if m.IsActive(EffectBallSlow) {
		t.Error("expired effect still active")
	}
	if expired := m.Update(20000); len(expired) != 0 {
		t.Errorf("effect expired twice: %v", expired)
	}
}

func TestEffectDeactivateAndReset(t *testing.T) {
	m := NewEffectManager()
	m.Activate(EffectPaddleExpanded, 10000, 0)
	m.Activate(EffectBallSlow, 0, 0)

	if !m.Deactivate(EffectPaddleExpanded) {
		t.Error("Deactivate() should report an active effect")
	}
	if m.Deactivate(EffectPaddleExpanded) {
		t.Error("second Deactivate() should report inactive")
	}
	if expired := m.Update(1 << 40); len(expired) != 0 {
		t.Errorf("effect without duration expired: %v", expired)
	}

	m.Reset()
	if m.Flags() != (EffectSet{}) {
		t.Errorf("Reset() left flags %+v", m.Flags())
	}
}

func TestItemSpawnAndFall(t *testing.T) {
	cfg := testConfig()
	cfg.Items.DropChance = 1
	m := NewItemManager(cfg.Items)
	rng := NewSimpleRNG(7)

	it, ok := m.TrySpawn(rng, 72.5, 60)
	if !ok {
		t.Fatal("drop chance 1 should always spawn")
	}
	if it.X != 62.5 || it.Y != 60 || it.Width != 20 {
		t.Errorf("item = %+v, expected centered at the brick", it)
	}
	if it.Type < 0 || it.Type >= itemTypeCount {
		t.Errorf("item type %d out of range", it.Type)
	}

	paddle := core.NewRect(0, 575, 100, 15)
	caught := m.Update(600, paddle)
	if len(caught) != 0 || it.Y != 62 {
		t.Errorf("item should fall 2px without being caught, y=%v caught=%v", it.Y, caught)
	}

	it.Y = 560
	caught = m.Update(600, paddle)
	if len(caught) != 1 || caught[0] != it.Type || len(m.Items) != 0 {
		t.Errorf("item overlapping the paddle should be caught, got %v", caught)
	}

	cfg.Items.DropChance = 0
	m = NewItemManager(cfg.Items)
	if _, ok := m.TrySpawn(rng, 0, 0); ok {
		t.Error("drop chance 0 should never spawn")
	}
}

func TestItemLeavesField(t *testing.T) {
	m := NewItemManager(testConfig().Items)
	m.Items = append(m.Items, &Item{X: 400, Y: 599, Width: 20, Height: 20})

	caught := m.Update(600, core.NewRect(0, 575, 100, 15))
	if len(caught) != 0 || len(m.Items) != 0 {
		t.Errorf("item below the field should be removed, items=%d caught=%v", len(m.Items), caught)
	}
}

func TestItemTypesAreUniform(t *testing.T) {
	cfg := testConfig()
	cfg.Items.DropChance = 1
	m := NewItemManager(cfg.Items)
	rng := NewSimpleRNG(42)

	counts := make(map[ItemType]int)
	for range 4000 {
		it, _ := m.TrySpawn(rng, 0, 0)
		counts[it.Type]++
	}
	for typ := range itemTypeCount {
		if counts[typ] < 700 || counts[typ] > 1300 {
			t.Errorf("type %s drawn %d times out of 4000", typ, counts[typ])
		}
	}
}

func TestSimpleRNGDeterminism(t *testing.T) {
	a, b := NewSimpleRNG(99), NewSimpleRNG(99)
	for range 100 {
		if a.Next() != b.Next() {
			t.Fatal("same seed produced different sequences")
		}
	}
	for range 1000 {
		if f := a.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v out of range", f)
		}
	}
}
