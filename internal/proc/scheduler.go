package proc

import "context"

// CPU is one per-CPU dispatch loop (spec.md section 4.4), represented as a
// goroutine that runs Run until its context is cancelled. Per spec.md's
// non-goals, any CPU may run any RUNNABLE process; there is no affinity or
// load balancing.
type CPU struct {
	id    int
	table *Table
	irq   IRQController

	current *Proc
	lastLog Pid // last dispatched pid, for the coalesced trace in log.go
}

// NewCPU constructs a CPU. It must be registered with a Table via
// Table.RegisterCPU before Run is called.
func NewCPU(irq IRQController) *CPU {
	return &CPU{irq: irq}
}

// ID returns the CPU's index, assigned by RegisterCPU.
func (c *CPU) ID() int { return c.id }

// Current returns the process this CPU is currently running, or nil. This
// is myproc's analog (SUPPLEMENTED FEATURES item 2): safe to call only from
// this CPU's own Run goroutine, since current is written solely by that
// goroutine.
func (c *CPU) Current() *Proc { return c.current }

// Run is the scheduler's infinite loop, one per CPU, spec.md section 4.4.
// It returns when ctx is cancelled, the one concession to this being a
// goroutine with a lifetime rather than a physical core that never stops.
func (c *CPU) Run(ctx context.Context) {
	t := c.table
	for {
		if err := ctx.Err(); err != nil {
			return
		}
		c.irq.EnableBriefly()

		t.lock()
		p := t.pickNext()
		if p == nil {
			t.unlock()
			continue
		}

		c.current = p
		if p.priority > PriorityIdle {
			p.timeslice--
		}
		p.rutime++
		p.state = Running
		if p.pageTable != nil {
			p.pageTable.BindUser()
		}
		f := p.fiber
		t.logDispatch(c, p)
		t.unlock()

		f.dispatch()

		t.lock()
		c.current = nil
		t.unlock()
	}
}

// Yield voluntarily gives up the CPU: acquire table lock, set caller
// RUNNABLE, sched. Spec.md section 4.4.
func (t *Table) Yield(p *Proc) {
	t.lock()
	p.state = Runnable
	p.fiber.sched(t)
}
