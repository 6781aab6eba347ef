package proc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIRQAlwaysEnabled reports interrupts as never disabled regardless of
// push/pop calls, so tests can drive sched's "interrupts enabled" branch
// without needing a real push_cli imbalance.
type fakeIRQAlwaysEnabled struct{}

func (fakeIRQAlwaysEnabled) PushCLI()       {}
func (fakeIRQAlwaysEnabled) PopCLI()        {}
func (fakeIRQAlwaysEnabled) EnableBriefly() {}
func (fakeIRQAlwaysEnabled) Disabled() bool { return false }

func TestSchedPanicsWithoutTheTableLock(t *testing.T) {
	tbl := newTestTable()
	p, err := tbl.allocProc("x")
	require.NoError(t, err)
	p.fiber = newFiber(p, func(*Proc) {})
	p.state = Runnable

	assert.PanicsWithValue(t, "proc: invariant violation: sched without the table lock", func() {
		p.fiber.sched(tbl)
	})
}

func TestSchedPanicsWithInterruptsEnabled(t *testing.T) {
	tbl := NewTable(Config{
		Clock:      fakeClock{},
		Stacks:     fakeStackAlloc{},
		PageTables: fakePageTableAlloc{},
		TrapFrames: fakeTrapFrames{},
		Files:      fakeFileTableAlloc{},
		IRQ:        fakeIRQAlwaysEnabled{},
	})
	p, err := tbl.allocProc("x")
	require.NoError(t, err)
	p.fiber = newFiber(p, func(*Proc) {})
	p.state = Runnable

	tbl.lock()
	assert.PanicsWithValue(t, "proc: invariant violation: sched with interrupts enabled", func() {
		p.fiber.sched(tbl)
	})
}

func TestSchedPanicsWhileRunning(t *testing.T) {
	tbl := newTestTable()
	p, err := tbl.allocProc("x")
	require.NoError(t, err)
	p.fiber = newFiber(p, func(*Proc) {})
	p.state = Running

	tbl.lock()
	assert.PanicsWithValue(t, "proc: invariant violation: sched while running", func() {
		p.fiber.sched(tbl)
	})
}

func TestWaitPanicsOnStaleWaiter(t *testing.T) {
	tbl := newTestTable()
	p, err := tbl.allocProc("x")
	require.NoError(t, err)
	p.state = Unused

	assert.PanicsWithValue(t, "proc: invariant violation: sleeping waiter with a stale parent", func() {
		tbl.Wait(p)
	})
}
