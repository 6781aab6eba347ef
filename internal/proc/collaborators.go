package proc

// PageTable is the out-of-scope virtual-memory collaborator: pgdir_alloc,
// pgdir_copy, pgdir_free, switch_user_pagetable, switch_kernel_pagetable,
// alloc_user_vm, dealloc_user_vm, collapsed into one small interface the way
// biscuit collapses its own I/O paths behind userio_i.
type PageTable interface {
	// Copy duplicates this page table for a forked child.
	Copy() (PageTable, error)
	// Grow/shrink the mapped user region by delta bytes (signed); returns
	// the new total size.
	Resize(currentSize int, delta int) (int, error)
	// Free releases any resources backing this page table. Called exactly
	// once, when a slot returns to Unused.
	Free()
	// BindUser switches the running CPU's active address space to this
	// table (switch_user_pagetable).
	BindUser()
	// MapInitCode maps an embedded init-code blob at virtual address zero,
	// used only by bootstrap's first process.
	MapInitCode(code []byte) error
}

// PageTableAllocator allocates a fresh, empty PageTable (pgdir_alloc).
type PageTableAllocator interface {
	Alloc() (PageTable, error)
}

// KernelStack is the out-of-scope kalloc/kfree collaborator: an opaque
// region a process's trap frame and saved context live in.
type KernelStack interface {
	Free()
}

// KernelStackAllocator allocates a fresh kernel stack (kalloc), arranging
// the initial context to resume at the first-return trampoline.
type KernelStackAllocator interface {
	Alloc() (KernelStack, error)
}

// FileTable stands in for the open_files[0..NOFILE]/cwd collaborators:
// file_dup, file_close, inode_dup, inode_put, path_lookup, and the log
// begin_op/end_op bracketing around inode release.
type FileTable interface {
	// Dup returns a duplicate of this table for a forked child, sharing
	// (not copying) the underlying open files per Unix fork semantics.
	Dup() FileTable
	// CloseAll closes every open file and releases the cwd inode, as exit
	// does before acquiring the table lock.
	CloseAll()
}

// FileTableAllocator constructs the first process's empty FileTable;
// every later process gets one via FileTable.Dup instead.
type FileTableAllocator interface {
	New() FileTable
}

// IRQController models push_cli/pop_cli/sti/read-eflags as a small
// nesting-counter interface, since there is no real interrupt source here to
// mask. EnableBriefly corresponds to the scheduler's "enable interrupts
// briefly" step at the top of each dispatch round. Disabled reports
// read-eflags & FL_IF, used by sched to enforce spec.md section 4.4's
// "interrupts are disabled" precondition.
type IRQController interface {
	PushCLI()
	PopCLI()
	EnableBriefly()
	Disabled() bool
}

// nullIRQController is the IRQController a Table falls back to when
// constructed without one: white-box tests that drive allocProc/Fork/Wait
// etc. directly, with no CPU or Kernel wiring, have no real interrupt
// source to model either. It never masks anything and always reports
// interrupts disabled, so the lock-discipline assertions in fiber.sched
// check only what those tests actually exercise (the table lock itself),
// not a nesting counter nothing ever drives.
type nullIRQController struct{}

func (nullIRQController) PushCLI()       {}
func (nullIRQController) PopCLI()        {}
func (nullIRQController) EnableBriefly() {}
func (nullIRQController) Disabled() bool { return true }

// Clock is the out-of-scope tick source: current_tick.
type Clock interface {
	Tick() uint64
}

// TrapFrame is an opaque handle into a process's kernel stack, mutated only
// by out-of-scope trap/return code. This package never reads its fields; it
// only threads the handle through fork/bootstrap.
type TrapFrame any

// TrapFrames builds and duplicates trap frames. Clone/ZeroReturnValue serve
// fork: duplicate the parent's frame and zero the register the child should
// see as fork's return value. NewUserEntry serves bootstrap: a frame that
// resumes in ring-3 at virtual address zero with interrupts enabled and the
// stack pointer at stackTop.
type TrapFrames interface {
	Clone(parent TrapFrame) (TrapFrame, error)
	ZeroReturnValue(child TrapFrame)
	NewUserEntry(stackTop int) (TrapFrame, error)
}

// Context is the opaque saved-register context a context switch resumes,
// analogous to struct context in the source this design generalizes. In this
// goroutine-fiber model the real "context" is the fiber goroutine itself;
// Context is carried only so slot.go's field layout matches spec.md section 3.
type Context any
