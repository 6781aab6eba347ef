package simhw

import "sync/atomic"

// Clock is an in-memory tick source: current_tick advanced explicitly by
// the embedder (a CLI command, a test) rather than a real hardware timer.
type Clock struct {
	ticks atomic.Uint64
}

// NewClock returns a Clock starting at tick zero.
func NewClock() *Clock { return &Clock{} }

func (c *Clock) Tick() uint64 { return c.ticks.Load() }

// Advance moves the clock forward by one tick and returns the new value.
func (c *Clock) Advance() uint64 { return c.ticks.Add(1) }
