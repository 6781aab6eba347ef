package proc

// Proc is one process-table slot. Every field listed here except fiber and
// table is named directly after spec.md's data model; fiber is the goroutine
// plumbing described in doc.go and fiber.go, and table points back at the
// owning Table.
//
// Every field below is guarded by the table's lock whenever it is read or
// written from any goroutine other than the process's own fiber while that
// fiber is RUNNING. The fiber's own goroutine reads priority/timeslice only
// at dispatch boundaries it has already crossed under lock.
type Proc struct {
	pid    Pid
	state  State
	parent *Proc

	size        int
	pageTable   PageTable
	kernelStack KernelStack
	trapFrame   TrapFrame
	context     Context

	channel Channel
	killed  bool
	name    string

	files FileTable
	cwd   string

	priority  Priority
	timeslice int

	ctime   uint64
	retime  uint64
	rutime  uint64
	stime   uint64
	elapsed uint64

	fiber *fiber
	table *Table
}

// Pid returns the process's identifier, or 0 if the slot is free.
func (p *Proc) Pid() Pid { return p.pid }

// State returns the process's current life-cycle state.
func (p *Proc) State() State { return p.state }

// Name returns the process's short printable label.
func (p *Proc) Name() string { return p.name }

// Priority returns the process's current scheduling priority.
func (p *Proc) Priority() Priority { return p.priority }

// Killed reports whether a kill has been requested against this process.
func (p *Proc) Killed() bool { return p.killed }

// Stats returns the accounting counters spec.md section 3 defines: retime,
// rutime, stime, elapsed.
func (p *Proc) Stats() (retime, rutime, stime, elapsed uint64) {
	return p.retime, p.rutime, p.stime, p.elapsed
}

// Parent returns the process's parent slot, or nil for initproc.
func (p *Proc) Parent() *Proc { return p.parent }
