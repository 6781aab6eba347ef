package proc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterCPUAssignsSequentialIDs(t *testing.T) {
	tbl := newTestTable()
	a := NewCPU(nil)
	b := NewCPU(nil)
	tbl.RegisterCPU(a)
	tbl.RegisterCPU(b)

	assert.Equal(t, 0, a.ID())
	assert.Equal(t, 1, b.ID())
}

func TestCPULooksUpByID(t *testing.T) {
	tbl := newTestTable()
	a := NewCPU(nil)
	tbl.RegisterCPU(a)
	assert.Same(t, a, tbl.CPU(0))
}

func TestCPUPanicsOnUnknownID(t *testing.T) {
	tbl := newTestTable()
	assert.Panics(t, func() { tbl.CPU(0) })
}

func TestRunForkretOnceRunsFSInitExactlyOnce(t *testing.T) {
	calls := 0
	tbl := NewTable(Config{
		Clock:      fakeClock{},
		Stacks:     fakeStackAlloc{},
		PageTables: fakePageTableAlloc{},
		TrapFrames: fakeTrapFrames{},
		Files:      fakeFileTableAlloc{},
		FSInit:     func() { calls++ },
	})

	tbl.mu.Lock()
	tbl.runForkretOnce()
	tbl.runForkretOnce()
	tbl.runForkretOnce()
	tbl.mu.Unlock()

	assert.Equal(t, 1, calls)
}
