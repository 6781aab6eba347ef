package simhw

import "sync"

// IRQController is a nesting-counter stand-in for push_cli/pop_cli/sti:
// there is no real interrupt source here to mask, only the discipline of
// matched push/pop calls.
type IRQController struct {
	mu    sync.Mutex
	depth int
}

// NewIRQController returns an IRQController with interrupts enabled
// (depth 0).
func NewIRQController() *IRQController { return &IRQController{} }

func (c *IRQController) PushCLI() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.depth++
}

func (c *IRQController) PopCLI() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.depth == 0 {
		panic("simhw: pop_cli without a matching push_cli")
	}
	c.depth--
}

// EnableBriefly is a no-op: there are no pending IRQs to take in this
// simulation, only the scheduler's own dispatch rounds.
func (c *IRQController) EnableBriefly() {}

// Disabled reports whether this controller is currently nested inside at
// least one PushCLI, the stand-in for read-eflags & FL_IF.
func (c *IRQController) Disabled() bool {
	return c.Depth() > 0
}

// Depth reports the current push_cli nesting depth, for tests.
func (c *IRQController) Depth() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.depth
}
