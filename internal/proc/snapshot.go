package proc

// ProcInfo is a point-in-time, lock-free copy of one slot's fields, for
// callers that want to inspect the table programmatically rather than
// parse Dump's console text.
type ProcInfo struct {
	Pid       Pid
	ParentPid Pid
	State     State
	Priority  Priority
	Timeslice int
	Name      string
	Retime    uint64
	Rutime    uint64
	Stime     uint64
	Elapsed   uint64
}

// Snapshot returns one ProcInfo per non-UNUSED slot.
func (t *Table) Snapshot() []ProcInfo {
	t.lock()
	defer t.unlock()

	out := make([]ProcInfo, 0, NPROC)
	for _, p := range t.slots {
		if p.state == Unused {
			continue
		}
		var ppid Pid
		if p.parent != nil {
			ppid = p.parent.pid
		}
		out = append(out, ProcInfo{
			Pid:       p.pid,
			ParentPid: ppid,
			State:     p.state,
			Priority:  p.priority,
			Timeslice: p.timeslice,
			Name:      p.name,
			Retime:    p.retime,
			Rutime:    p.rutime,
			Stime:     p.stime,
			Elapsed:   p.elapsed,
		})
	}
	return out
}
