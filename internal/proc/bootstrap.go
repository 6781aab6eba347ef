package proc

// PageSize is the page size user_init maps the embedded init-code blob
// into and sets the initial user stack pointer to, spec.md section 4.8.
const PageSize = 4096

// UserInit is the first-process bootstrap, spec.md section 4.8: it
// allocates the first slot, sets up a fresh user page table, maps an
// embedded init-code blob at virtual address zero, fills the trap frame to
// resume in ring-3 at offset zero with interrupts enabled and the stack
// pointer at PageSize, names the process "initcode", resolves cwd to the
// filesystem root, and publishes RUNNABLE under the table lock.
//
// entry is the simulated user-mode body the bootstrap process's fiber runs
// once dispatched, standing in for what would otherwise be a jump to
// virtual address zero; see SPEC_FULL.md.
func (t *Table) UserInit(initCode []byte, rootCwd string, entry func(*Proc)) (*Proc, error) {
	p, err := t.allocProc("initcode")
	if err != nil {
		return nil, err
	}

	pt, err := t.pageTables.Alloc()
	if err != nil {
		t.abortFork(p)
		return nil, ErrOutOfMemoryVM
	}
	if err := pt.MapInitCode(initCode); err != nil {
		pt.Free()
		t.abortFork(p)
		return nil, err
	}
	p.pageTable = pt
	p.size = len(initCode)

	tf, err := t.trapFrames.NewUserEntry(PageSize)
	if err != nil {
		t.abortFork(p) // frees p.pageTable (pt) via freeSlot
		return nil, err
	}
	p.trapFrame = tf
	p.cwd = rootCwd
	p.files = t.files.New()
	p.fiber = newFiber(p, entry)

	t.lock()
	p.state = Runnable
	if t.initproc != nil {
		invariantViolation("userinit called twice")
	}
	t.initproc = p
	t.unlock()
	return p, nil
}
