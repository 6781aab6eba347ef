package proc

import "sync"

// sleepLocked is the core of sleep, used by callers (Wait, WaitExt, Sleep
// below) that already hold the table lock and pass
// it as their own external lock, the common case in the source this
// generalizes. It returns with the table lock held again, having been
// released for the duration of the block.
func (t *Table) sleepLocked(p *Proc, ch Channel) {
	p.channel = ch
	p.state = Sleeping
	p.fiber.sched(t)
	t.lock()
	p.channel = nil
}

// Sleep blocks the caller on channel ch, spec.md section 4.6. If external is
// non-nil and is not itself the table lock's own sleep discipline, it is
// released for the duration of the block and reacquired before Sleep
// returns. Recording channel and SLEEPING under the table lock before
// releasing external is what prevents a lost wakeup: any concurrent Wakeup
// must wait for the table lock, so it can never run between external's
// release and the state becoming visible.
//
// external == nil is this port's equivalent of the original's lk == &ptable.lock
// case: the caller has no third-party resource lock to drop because the
// table lock alone already guards whatever condition it is waiting on
// (every caller in this tree uses it this way: Wait/WaitExt sleep while
// already holding the table lock, and callers with no external resource at
// all pass nil). It is not the original's lk == 0 ("sleep without lk")
// misuse case, which has no equivalent here: this package's Sleep always
// takes the table lock itself before sleeping, so there is no way to reach
// sched with no lock held at all through this entry point (see DESIGN.md).
func (t *Table) Sleep(p *Proc, ch Channel, external *sync.Mutex) {
	if p.fiber == nil {
		invariantViolation("sleep from no process")
	}
	t.lock()
	if external != nil {
		external.Unlock()
	}
	t.sleepLocked(p, ch)
	t.unlock()
	if external != nil {
		external.Lock()
	}
}

// wakeup1 flips every SLEEPING slot waiting on ch to RUNNABLE. Must be
// called with the table lock held; Wakeup is the locking public entry
// point, and Exit calls this directly since it already holds the lock.
func (t *Table) wakeup1(ch Channel) {
	for _, p := range t.slots {
		if p.state == Sleeping && p.channel == ch {
			p.state = Runnable
		}
	}
}

// Wakeup is edge-triggered broadcast: every sleeper on ch becomes RUNNABLE.
// There is no "wake one" variant; spurious wakeups are expected, and
// callers must re-check their condition after waking.
func (t *Table) Wakeup(ch Channel) {
	t.lock()
	defer t.unlock()
	t.wakeup1(ch)
}
