package proc

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Table is the process-scope singleton: a fixed array of NPROC slots behind
// a single mutex, the pid counter, and the initproc back-reference. It is
// the process-scope singleton design note in spec.md section 9 made
// concrete: slot access is always a short critical section bounded by
// mu.Lock/Unlock.
type Table struct {
	mu sync.Mutex
	// irq is the interrupt-masking collaborator lock/unlock push/pop around
	// every table-lock acquisition, per spec.md section 4.1 ("interrupts
	// must be disabled while the table lock is held"). locked mirrors
	// holding(&ptable.lock) for fiber.sched's precondition check; it is
	// only ever written by the goroutine currently holding mu, but read by
	// sched before that goroutine may have acquired it at all (that is
	// precisely the violation sched exists to catch), so it is an
	// atomic.Bool rather than a plain bool guarded by mu.
	irq    IRQController
	locked atomic.Bool

	slots   [NPROC]*Proc
	nextPid Pid

	initproc *Proc
	cpus     []*CPU

	// cursors holds the per-priority rotating scan position the dispatch
	// algorithm advances past each chosen slot, indexed by Priority.
	cursors [4]int

	// fsInitDone is the one-shot latch forkret uses to run deferred
	// filesystem initialization exactly once, in process context, on the
	// first process ever dispatched.
	fsInitDone bool

	clock      Clock
	stacks     KernelStackAllocator
	pageTables PageTableAllocator
	trapFrames TrapFrames
	files      FileTableAllocator
	fsInit     func()

	log zerolog.Logger
}

// Config wires the out-of-scope collaborators a Table needs to allocate and
// run real processes: a tick source, a kernel-stack allocator, a page-table
// allocator, and the deferred filesystem bring-up forkret performs once.
type Config struct {
	Clock      Clock
	Stacks     KernelStackAllocator
	PageTables PageTableAllocator
	TrapFrames TrapFrames
	Files      FileTableAllocator
	// FSInit runs exactly once, in process context, the first time any
	// process reaches forkret. May be nil.
	FSInit func()
	// IRQ is the interrupt-masking collaborator the table lock's
	// acquire/release couples to (spec.md section 4.1). Nil is permitted
	// for tests that drive Table internals directly with no CPU/Kernel
	// wiring; the table then falls back to a no-op controller that always
	// reports interrupts disabled.
	IRQ IRQController
	Log zerolog.Logger
}

// NewTable allocates an empty process table wired to the given collaborators.
func NewTable(cfg Config) *Table {
	irq := cfg.IRQ
	if irq == nil {
		irq = nullIRQController{}
	}
	t := &Table{
		irq:        irq,
		clock:      cfg.Clock,
		stacks:     cfg.Stacks,
		pageTables: cfg.PageTables,
		trapFrames: cfg.TrapFrames,
		files:      cfg.Files,
		fsInit:     cfg.FSInit,
		log:        cfg.Log,
	}
	for i := range t.slots {
		t.slots[i] = &Proc{table: t}
	}
	return t
}

// lock acquires the table lock, pushing a CLI level first so interrupts are
// disabled for the duration it is held, exactly as spec.md section 4.1
// requires ("acquisition takes care of this"); mirrors acquire()'s
// pushcli() pairing in the source this generalizes.
func (t *Table) lock() {
	t.irq.PushCLI()
	t.mu.Lock()
	t.locked.Store(true)
}

// unlock releases the table lock and pops the CLI level acquired by the
// matching lock, mirroring release()'s popcli() pairing.
func (t *Table) unlock() {
	t.locked.Store(false)
	t.mu.Unlock()
	t.irq.PopCLI()
}

// RegisterCPU attaches a CPU to this table so cpuByID and CPU can resolve
// it. Must be called before the CPU's Run loop starts.
func (t *Table) RegisterCPU(c *CPU) {
	t.lock()
	defer t.unlock()
	c.id = len(t.cpus)
	c.table = t
	t.cpus = append(t.cpus, c)
}

// cpuByID panics on an unregistered id, mirroring mycpu's panic on an
// apicid absent from the cpus[] table: an unknown CPU identity is a kernel
// bug, never a user-surfaced error.
func (t *Table) cpuByID(id int) *CPU {
	if id < 0 || id >= len(t.cpus) {
		invariantViolation("unknown cpu id %d", id)
	}
	return t.cpus[id]
}

// CPU resolves a registered CPU by id, the exported form of cpuByID, for
// callers (tests, the CLI) that need to inspect a specific CPU's Current().
func (t *Table) CPU(id int) *CPU {
	t.lock()
	defer t.unlock()
	return t.cpuByID(id)
}

// runForkretOnce runs the deferred filesystem init exactly once, the first
// time any process reaches forkret. Must be called with the table lock
// held, matching the "set under the table lock" requirement on the latch
// design note.
func (t *Table) runForkretOnce() {
	if t.fsInitDone {
		return
	}
	t.fsInitDone = true
	if t.fsInit != nil {
		t.fsInit()
	}
}
