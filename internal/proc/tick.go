package proc

// TickUpdate is called once per timer tick; it takes the table lock itself
// (callers must not hold it) and updates every allocated slot's accounting counters per
// spec.md section 4.7. rutime is not touched here; it is charged by the
// scheduler at dispatch (scheduler.go).
func (t *Table) TickUpdate() {
	t.lock()
	defer t.unlock()
	for _, p := range t.slots {
		if p.state == Unused {
			continue
		}
		if p.state != Zombie {
			p.elapsed++
		}
		switch p.state {
		case Runnable:
			p.retime++
		case Sleeping:
			p.stime++
		}
	}
}
