package proc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotOmitsUnusedSlots(t *testing.T) {
	tbl := newTestTable()
	snap := tbl.Snapshot()
	assert.Empty(t, snap)
}

func TestSnapshotReflectsAllocatedSlots(t *testing.T) {
	tbl := newTestTable()
	parent := allocParent(t, tbl)
	parent.state = Running
	parent.priority = PriorityHigh

	child, err := tbl.allocProc("kid")
	require.NoError(t, err)
	child.parent = parent
	child.state = Runnable
	child.retime, child.rutime, child.stime, child.elapsed = 1, 2, 3, 4

	snap := tbl.Snapshot()
	require.Len(t, snap, 2)

	var got *ProcInfo
	for i := range snap {
		if snap[i].Pid == child.pid {
			got = &snap[i]
		}
	}
	require.NotNil(t, got)
	assert.Equal(t, parent.pid, got.ParentPid)
	assert.Equal(t, "kid", got.Name)
	assert.Equal(t, Runnable, got.State)
	assert.EqualValues(t, 1, got.Retime)
	assert.EqualValues(t, 2, got.Rutime)
	assert.EqualValues(t, 3, got.Stime)
	assert.EqualValues(t, 4, got.Elapsed)
}
