package breakout

// Clock supplies the simulation time in milliseconds. Effect expiry and
// animations read it once per step, so tests can drive time explicitly.
type Clock interface {
	Now() int64
}

// advancer is implemented by clocks that move forward once per step.
type advancer interface {
	Advance()
}

// setter is implemented by clocks that can be restored from a snapshot.
type setter interface {
	Set(ms int64)
}

// FrameClock derives time from the number of steps taken, so time is a
// pure function of the step count and no rounding accumulates at rates
// that do not divide 1000.
type FrameClock struct {
	base   int64
	frames int64
	rate   int64
}

// NewFrameClock creates a clock running tickRate steps per second.
func NewFrameClock(tickRate int) *FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameClock{rate: int64(tickRate)}
}

// Now returns the current time.
func (c *FrameClock) Now() int64 { return c.base + c.frames*1000/c.rate }

// Advance moves the clock forward by one step.
func (c *FrameClock) Advance() { c.frames++ }

// Set jumps to an absolute time and counts steps from there.
func (c *FrameClock) Set(ms int64) {
	c.base = ms
	c.frames = 0
}

// ManualClock only moves when told to.
type ManualClock struct {
	T int64
}

// Now returns the current time.
func (c *ManualClock) Now() int64 { return c.T }

// Add moves the clock forward.
func (c *ManualClock) Add(ms int64) { c.T += ms }

// Set jumps to an absolute time.
func (c *ManualClock) Set(ms int64) { c.T = ms }
