package proc

// Fork duplicates the caller, spec.md section 4.3. entry is the simulated
// user-mode body the child's fiber runs once dispatched; real xv6 has no
// such parameter because the child resumes the parent's own trap frame, but
// this module has no real user code to resume into, so the caller supplies
// it explicitly (see SPEC_FULL.md).
func (t *Table) Fork(parent *Proc, entry func(*Proc)) (Pid, error) {
	child, err := t.allocProc(parent.name)
	if err != nil {
		return 0, err
	}

	pt, err := parent.pageTable.Copy()
	if err != nil {
		t.abortFork(child)
		return 0, ErrOutOfMemoryVM
	}
	child.pageTable = pt

	tf, err := t.trapFrames.Clone(parent.trapFrame)
	if err != nil {
		t.abortFork(child) // frees child.pageTable (pt) via freeSlot
		return 0, ErrOutOfMemory
	}
	t.trapFrames.ZeroReturnValue(tf)
	child.trapFrame = tf

	child.size = parent.size
	child.parent = parent
	child.files = parent.files.Dup()
	child.cwd = parent.cwd
	child.fiber = newFiber(child, entry)

	t.lock()
	child.state = Runnable
	pid := child.pid
	t.unlock()
	return pid, nil
}

// abortFork rolls a partially built fork child back to UNUSED, per spec.md
// section 4.3's "rolled back to UNUSED and any kernel stack freed".
func (t *Table) abortFork(child *Proc) {
	t.lock()
	t.freeSlot(child)
	t.unlock()
}

// GrowProc resizes the caller's user memory by a signed delta, spec.md
// section 4.3. Not lock-protected: it touches only the calling process's
// own page table and size.
func (t *Table) GrowProc(p *Proc, delta int) (int, error) {
	newSize, err := p.pageTable.Resize(p.size, delta)
	if err != nil {
		return 0, ErrOutOfMemoryVM
	}
	p.size = newSize
	p.pageTable.BindUser()
	return newSize, nil
}

// Exit is terminal for the caller and never returns, spec.md section 4.3.
// Calling Exit on initproc is a kernel bug, not a user error.
func (t *Table) Exit(p *Proc) {
	if p.files != nil {
		p.files.CloseAll()
	}

	t.lock()
	if p == t.initproc {
		invariantViolation("exit called on initproc")
	}

	t.wakeup1(Channel(p.parent))

	for _, c := range t.slots {
		if c.parent == p {
			c.parent = t.initproc
			if c.state == Zombie {
				t.wakeup1(Channel(t.initproc))
			}
		}
	}

	p.state = Zombie
	p.fiber.exitCede(t)
	// unreachable: exitCede ends this goroutine via runtime.Goexit.
}

// Wait reaps one ZOMBIE child of the caller, spec.md section 4.3.
func (t *Table) Wait(p *Proc) (Pid, error) {
	t.lock()
	for {
		if p.state == Unused {
			invariantViolation("sleeping waiter with a stale parent")
		}
		haveKids := false
		for _, c := range t.slots {
			if c.parent != p {
				continue
			}
			haveKids = true
			if c.state == Zombie {
				pid := c.pid
				t.freeSlot(c)
				t.unlock()
				return pid, nil
			}
		}
		if !haveKids {
			t.unlock()
			return 0, ErrNoChildren
		}
		if p.killed {
			t.unlock()
			return 0, ErrKilledWhileWait
		}
		t.sleepLocked(p, Channel(p))
	}
}

// WaitStats carries the accounting a reaped child had at the moment it was
// reaped, spec.md section 4.3's wait_ext.
type WaitStats struct {
	Retime, Rutime, Stime, Elapsed uint64
}

// WaitExt is identical to Wait except it additionally returns the reaped
// child's final accounting counters before the slot is cleared.
func (t *Table) WaitExt(p *Proc) (Pid, WaitStats, error) {
	t.lock()
	for {
		if p.state == Unused {
			invariantViolation("sleeping waiter with a stale parent")
		}
		haveKids := false
		for _, c := range t.slots {
			if c.parent != p {
				continue
			}
			haveKids = true
			if c.state == Zombie {
				pid := c.pid
				stats := WaitStats{c.retime, c.rutime, c.stime, c.elapsed}
				t.freeSlot(c)
				t.unlock()
				return pid, stats, nil
			}
		}
		if !haveKids {
			t.unlock()
			return 0, WaitStats{}, ErrNoChildren
		}
		if p.killed {
			t.unlock()
			return 0, WaitStats{}, ErrKilledWhileWait
		}
		t.sleepLocked(p, Channel(p))
	}
}

// Kill requests termination of the process with the given pid, spec.md
// section 4.3. A SLEEPING target is forced RUNNABLE so it can observe the
// flag at its next user-space boundary; actual termination is the target's
// own responsibility, outside this package. Calling Kill twice on the same
// pid has the same effect as once.
func (t *Table) Kill(pid Pid) error {
	t.lock()
	defer t.unlock()
	for _, p := range t.slots {
		if p.state == Unused || p.pid != pid {
			continue
		}
		p.killed = true
		if p.state == Sleeping {
			p.state = Runnable
		}
		return nil
	}
	return ErrNoSuchPid
}
