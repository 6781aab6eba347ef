package proc

// allocProc implements the slot allocator (spec.md section 4.2). The table
// lock is held only across slot selection and pid assignment; the kernel
// stack allocation happens outside the lock, matching the teacher's
// proc_new, which likewise selects a slot and stamps its pid under a lock
// and only then does the (possibly slow) unlocked initialization work.
func (t *Table) allocProc(name string) (*Proc, error) {
	t.lock()
	var p *Proc
	for _, slot := range t.slots {
		if slot.state == Unused {
			p = slot
			break
		}
	}
	if p == nil {
		t.unlock()
		return nil, ErrOutOfSlots
	}
	t.nextPid++
	p.pid = t.nextPid
	p.state = Embryo
	p.name = name
	p.ctime = t.clock.Tick()
	p.retime, p.rutime, p.stime, p.elapsed = 0, 0, 0, 0
	p.priority = defaultPriority
	p.timeslice = defaultTimeslice
	p.killed = false
	p.channel = nil
	t.unlock()

	stack, err := t.stacks.Alloc()
	if err != nil {
		t.lock()
		p.pid = 0
		p.state = Unused
		p.name = ""
		t.unlock()
		return nil, ErrOutOfMemory
	}
	p.kernelStack = stack
	p.fiber = nil // installed by the caller once it knows the process's entry point
	return p, nil
}

// freeSlot releases a slot's resources and returns it to Unused. Must be
// called with the table lock held; mirrors the release half of wait().
func (t *Table) freeSlot(p *Proc) {
	if p.kernelStack != nil {
		p.kernelStack.Free()
	}
	if p.pageTable != nil {
		p.pageTable.Free()
	}
	p.pid = 0
	p.state = Unused
	p.parent = nil
	p.name = ""
	p.killed = false
	p.channel = nil
	p.kernelStack = nil
	p.pageTable = nil
	p.trapFrame = nil
	p.context = nil
	p.files = nil
	p.cwd = ""
	p.size = 0
	p.fiber = nil
}
