package tui

import "github.com/vovakirdan/brick-arcade/internal/core"

// Terminals report key presses, not key releases. A movement key therefore
// stays held for a short window, long enough to bridge the gap between
// auto-repeat events, and is released when that window lapses.
const holdMillis = 150

// heldInput turns discrete key and mouse events into per-tick input frames.
type heldInput struct {
	holdTicks int
	held      map[core.Action]int // Remaining ticks per held action
	pending   core.InputFrame     // One-shot actions and pointer for the next tick
}

func newHeldInput(tickRate int) *heldInput {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &heldInput{
		holdTicks: max(tickRate*holdMillis/1000, 1),
		held:      make(map[core.Action]int),
		pending:   core.NewInputFrame(),
	}
}

// Press records an action. Movement is held; everything else fires once.
func (h *heldInput) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.held, core.ActionRight)
		h.held[a] = h.holdTicks
	case core.ActionRight:
		delete(h.held, core.ActionLeft)
		h.held[a] = h.holdTicks
	case core.ActionNone:
	default:
		h.pending.Set(a)
	}
}

// Point records an absolute pointer position as a fraction of the width.
// Pointer movement overrides held keyboard movement.
func (h *heldInput) Point(x float64) {
	h.pending.PointTo(x)
	delete(h.held, core.ActionLeft)
	delete(h.held, core.ActionRight)
}

// Frame returns the input for the next tick and ages held actions.
func (h *heldInput) Frame() core.InputFrame {
	frame := h.pending.Clone()
	for a, ticks := range h.held {
		frame.Set(a)
		if ticks <= 1 {
			delete(h.held, a)
			continue
		}
		h.held[a] = ticks - 1
	}
	h.pending.Clear()
	return frame
}

// Reset drops all held and pending input.
func (h *heldInput) Reset() {
	clear(h.held)
	h.pending.Clear()
}
