// Package registry holds the games the arcade can launch. A game package
// registers an Entry from its init function; front ends look entries up by
// ID and never import a game directly.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/brick-arcade/internal/core"
)

// Game is a frame-stepped simulation with no UI dependencies. Front ends
// translate their input into core.InputFrame, call Step once per tick and
// draw through Render.
type Game interface {
	// ID is the stable key used on the command line and in the score table.
	ID() string

	Title() string

	// Reset starts over with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances exactly one frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a cleared screen buffer.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizer is implemented by games that adapt to a new screen size in
// place. Games without it are reset when the terminal is resized.
type Resizer interface {
	Resize(width, height int)
}

// Frontend names a way of running a game.
type Frontend string

const (
	FrontendTerminal Frontend = "terminal"
	FrontendSSH      Frontend = "ssh"
	FrontendWindow   Frontend = "window"
)

// Entry describes a registered game.
type Entry struct {
	ID      string
	Title   string
	Summary string
	// Frontends lists where the game can run. Empty means terminal only.
	Frontends []Frontend
	New       func() Game
}

// Supports reports whether the game can run on f.
func (e Entry) Supports(f Frontend) bool {
	if len(e.Frontends) == 0 {
		return f == FrontendTerminal
	}
	return slices.Contains(e.Frontends, f)
}

// FrontendList joins the supported front ends for display.
func (e Entry) FrontendList() string {
	if len(e.Frontends) == 0 {
		return string(FrontendTerminal)
	}
	names := make([]string, len(e.Frontends))
	for i, f := range e.Frontends {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

var (
	mu      sync.RWMutex
	entries = make(map[string]Entry)
)

// Register adds e. It panics on a missing ID or factory and on a duplicate
// ID, since both are programming errors caught at startup.
func Register(e Entry) {
	if e.ID == "" || e.New == nil {
		panic("registry: entry needs an ID and a factory")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := entries[e.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", e.ID))
	}
	if e.Title == "" {
		e.Title = e.New().Title()
	}
	entries[e.ID] = e
}

// List returns all entries sorted by ID.
func List() []Entry {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Lookup returns the entry registered under id.
func Lookup(id string) (Entry, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[id]
	return e, ok
}

// Create returns a fresh game instance.
func Create(id string) (Game, error) {
	e, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.New(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
