package proc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTickUpdateAccounting(t *testing.T) {
	tbl := newTestTable()
	runnable := tbl.slots[0]
	runnable.state, runnable.pid = Runnable, 1
	sleeping := tbl.slots[1]
	sleeping.state, sleeping.pid = Sleeping, 2
	zombie := tbl.slots[2]
	zombie.state, zombie.pid, zombie.elapsed = Zombie, 3, 5

	tbl.TickUpdate()

	assert.EqualValues(t, 1, runnable.elapsed)
	assert.EqualValues(t, 1, runnable.retime)
	assert.EqualValues(t, 0, runnable.stime)

	assert.EqualValues(t, 1, sleeping.elapsed)
	assert.EqualValues(t, 1, sleeping.stime)
	assert.EqualValues(t, 0, sleeping.retime)

	// Zombie slots are excluded from elapsed accrual entirely.
	assert.EqualValues(t, 5, zombie.elapsed)

	// An UNUSED slot must never be touched.
	assert.Zero(t, tbl.slots[3].pid)
	assert.Zero(t, tbl.slots[3].elapsed)
}

func TestTickUpdateAccumulatesAcrossMultipleTicks(t *testing.T) {
	tbl := newTestTable()
	p := tbl.slots[0]
	p.state = Runnable

	tbl.TickUpdate()
	tbl.TickUpdate()
	tbl.TickUpdate()

	assert.EqualValues(t, 3, p.elapsed)
	assert.EqualValues(t, 3, p.retime)
}
