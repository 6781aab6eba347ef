package proc

// SetPriority resets the caller's time-slice budget per spec.md section
// 4.5. Unrecognized priority values are rejected outright (see DESIGN.md's
// resolution of Open Question 2) rather than silently accepted with a
// timeslice of -1: the original's "success with a budget no dispatch round
// can ever honor" leaves a process unschedulable with no diagnostic.
func (t *Table) SetPriority(p *Proc, prio Priority) error {
	var budget int
	switch prio {
	case PriorityLow:
		budget = 32
	case PriorityMid:
		budget = 16
	case PriorityHigh:
		budget = 8
	default:
		return ErrInvalidPriority
	}
	t.lock()
	defer t.unlock()
	p.priority = prio
	p.timeslice = budget
	return nil
}

// replenishEpoch is the event of refilling every exhausted RUNNABLE budget
// at priority level prio to max(8, 32/prio), per spec.md section 4.5 step 2.
// Must be called with the table lock held.
func (t *Table) replenishEpoch(prio Priority) {
	budget := 32 / int(prio)
	if budget < 8 {
		budget = 8
	}
	for _, p := range t.slots {
		if p.state == Runnable && p.priority == prio && p.timeslice == 0 {
			p.timeslice = budget
		}
	}
}

// scanLevel returns the first RUNNABLE slot at the given priority starting
// from that level's rotating cursor, requiring positive timeslice unless
// ignoreBudget is set (used for the priority-0 idle level, which is
// eligible regardless of budget). The cursor is advanced one past any slot
// returned. Must be called with the table lock held.
func (t *Table) scanLevel(prio Priority, ignoreBudget bool) *Proc {
	cursor := &t.cursors[prio]
	for i := 0; i < NPROC; i++ {
		idx := (*cursor + i) % NPROC
		p := t.slots[idx]
		if p.state != Runnable || p.priority != prio {
			continue
		}
		if !ignoreBudget && p.timeslice <= 0 {
			continue
		}
		*cursor = (idx + 1) % NPROC
		return p
	}
	return nil
}

// hasExhaustedRunnable reports whether any RUNNABLE slot at prio exists with
// a zero budget, the trigger condition for an epoch at that level. Must be
// called with the table lock held.
func (t *Table) hasExhaustedRunnable(prio Priority) bool {
	for _, p := range t.slots {
		if p.state == Runnable && p.priority == prio && p.timeslice == 0 {
			return true
		}
	}
	return false
}

// pickNext implements the dispatch-selection algorithm, spec.md section
// 4.5. Must be called with the table lock held.
func (t *Table) pickNext() *Proc {
	for prio := PriorityHigh; prio >= PriorityLow; prio-- {
		if p := t.scanLevel(prio, false); p != nil {
			return p
		}
		if t.hasExhaustedRunnable(prio) {
			t.replenishEpoch(prio)
			if p := t.scanLevel(prio, false); p != nil {
				return p
			}
		}
	}
	return t.scanLevel(PriorityIdle, true)
}
