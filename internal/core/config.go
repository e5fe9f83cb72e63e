package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Lives    int    // Remaining lives
	Level    string // Difficulty or level label
	GameOver bool   // Whether the game has ended (lost or won)
	Won      bool   // Whether the game ended in a win
	Paused   bool   // Whether the game is paused
	InMenu   bool   // Whether the game is waiting in its menu phase
}

// Event is a bit flag describing something that happened during a tick.
type Event uint16

const (
	EventBrickBroken Event = 1 << iota
	EventPaddleHit
	EventWallHit
	EventLifeLost
	EventItemCaught
	EventGameOver
	EventWin
	EventLaunched
)

// Events is a set of events produced by one tick.
type Events uint16

// Add records e in the set.
func (s *Events) Add(e Event) {
	*s |= Events(e)
}

// Has reports whether e occurred.
func (s Events) Has(e Event) bool {
	return s&Events(e) != 0
}

// Names lists the events in the set in declaration order.
func (s Events) Names() []string {
	var out []string
	for _, e := range []struct {
		ev   Event
		name string
	}{
		{EventBrickBroken, "brick_broken"},
		{EventPaddleHit, "paddle_hit"},
		{EventWallHit, "wall_hit"},
		{EventLifeLost, "life_lost"},
		{EventItemCaught, "item_caught"},
		{EventGameOver, "game_over"},
		{EventWin, "win"},
		{EventLaunched, "launched"},
	} {
		if s.Has(e.ev) {
			out = append(out, e.name)
		}
	}
	return out
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events Events
	// BricksBroken counts bricks destroyed this tick, for stats.
	BricksBroken int
}
