package proc

// logDispatch emits one structured debug event per dispatch change: when
// the pid dispatched on this CPU differs from the last pid it logged. A
// priority change of the same pid is not logged on its own; the event only
// carries the priority current at the time the pid changes.
// This is the coalesced-trace supplement for the original's commented-out
// print_proc_stat helper (SUPPLEMENTED FEATURES item 3); nothing is logged
// when the same process keeps being redispatched round after round, which
// would otherwise flood the log at timer-tick frequency.
//
// Must be called with the table lock held, same as the dispatch it reports.
func (t *Table) logDispatch(c *CPU, p *Proc) {
	if c.lastLog == p.pid {
		return
	}
	c.lastLog = p.pid
	t.log.Debug().
		Int("cpu", c.id).
		Int64("pid", int64(p.pid)).
		Str("name", p.name).
		Int("priority", int(p.priority)).
		Int("timeslice", p.timeslice).
		Msg("dispatch")
}
