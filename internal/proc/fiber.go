package proc

import "runtime"

// fiber is a process's kernel thread, represented as a long-lived goroutine
// standing in for the real swtch(&from, to) trampoline. Exactly two
// unbuffered channels carry the hand-off: resume (CPU -> fiber: "you are
// RUNNING, proceed") and ceded (fiber -> CPU: "I have stopped running,
// your turn").
//
// A fiber's goroutine is only ever resumed by the CPU goroutine that most
// recently observed it transition RUNNABLE -> RUNNING under the table lock,
// so the two channels never have more than one sender/receiver pair active
// at a time; no additional synchronization guards resume/ceded/started.
type fiber struct {
	proc    *Proc
	entry   func(*Proc)
	resume  chan struct{}
	ceded   chan struct{}
	started bool
}

func newFiber(p *Proc, entry func(*Proc)) *fiber {
	return &fiber{
		proc:   p,
		entry:  entry,
		resume: make(chan struct{}),
		ceded:  make(chan struct{}),
	}
}

// dispatch hands control to the fiber: starting its goroutine on first
// dispatch, then blocking until the fiber cedes back (voluntarily, via
// sched, or terminally, via exit). Called by a CPU goroutine with the table
// lock already released.
func (f *fiber) dispatch() {
	if !f.started {
		f.started = true
		go f.loop()
	}
	f.resume <- struct{}{}
	<-f.ceded
}

func (f *fiber) loop() {
	<-f.resume
	t := f.proc.table
	// forkret's one-shot latch: the first process ever dispatched performs
	// deferred filesystem bring-up in its own process context.
	t.lock()
	t.runForkretOnce()
	t.unlock()

	f.entry(f.proc)
	// entry returned instead of calling exit: treat as an implicit exit so
	// the slot is never left RUNNING with nobody to resume it.
	t.Exit(f.proc)
}

// sched cedes the CPU back to the scheduler and blocks until this fiber is
// dispatched again. Callers (yield, sleep) must hold the table lock on
// entry; sched releases it as part of the hand-off and returns with it not
// held, exactly as the process resumes "mid-syscall" with no lock of its
// own. This is legal because sync.Mutex does not require the goroutine that
// unlocks to be the one that locked (see DESIGN.md).
//
// Preconditions, all fatal if violated per spec.md sections 4.4 and 7: the
// table lock is held exactly once on this CPU, interrupts are disabled, and
// the caller's state is not RUNNING.
func (f *fiber) sched(t *Table) {
	if !t.locked.Load() {
		invariantViolation("sched without the table lock")
	}
	if !t.irq.Disabled() {
		invariantViolation("sched with interrupts enabled")
	}
	if f.proc.state == Running {
		invariantViolation("sched while running")
	}
	f.ceded <- struct{}{}
	t.unlock()
	<-f.resume
}

// exitCede is sched's terminal counterpart: it hands the CPU back one last
// time and never waits for another resume. The caller must not touch
// anything belonging to this process after calling exitCede; the goroutine
// ends immediately after via runtime.Goexit so a forgetful entry function
// cannot accidentally keep running past exit.
func (f *fiber) exitCede(t *Table) {
	f.ceded <- struct{}{}
	t.unlock()
	runtime.Goexit()
}
