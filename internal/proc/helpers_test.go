package proc

import "errors"

// Shared white-box test fakes. These stay tiny and in-package so
// priority/alloc/lifecycle/tick tests can drive Table internals directly
// without depending on the simhw package (which itself depends on proc).

type fakeClock struct{}

func (fakeClock) Tick() uint64 { return 0 }

type fakeStack struct{}

func (fakeStack) Free() {}

type fakeStackAlloc struct{}

func (fakeStackAlloc) Alloc() (KernelStack, error) { return fakeStack{}, nil }

type failingStackAlloc struct{}

func (failingStackAlloc) Alloc() (KernelStack, error) {
	return nil, errors.New("helpers_test: stack allocation failed")
}

type fakePageTable struct {
	failCopy bool
}

func (p *fakePageTable) Copy() (PageTable, error) {
	if p.failCopy {
		return nil, errors.New("helpers_test: page table copy failed")
	}
	return &fakePageTable{}, nil
}

func (p *fakePageTable) Resize(current, delta int) (int, error) { return current + delta, nil }
func (p *fakePageTable) Free()                                  {}
func (p *fakePageTable) BindUser()                               {}
func (p *fakePageTable) MapInitCode(code []byte) error           { return nil }

type fakePageTableAlloc struct{}

func (fakePageTableAlloc) Alloc() (PageTable, error) { return &fakePageTable{}, nil }

type fakeTrapFrame struct {
	eax int
}

type fakeTrapFrames struct {
	failClone bool
	failEntry bool
}

func (f fakeTrapFrames) Clone(parent TrapFrame) (TrapFrame, error) {
	if f.failClone {
		return nil, errors.New("helpers_test: trap frame clone failed")
	}
	return &fakeTrapFrame{}, nil
}

func (fakeTrapFrames) ZeroReturnValue(child TrapFrame) {
	if tf, ok := child.(*fakeTrapFrame); ok {
		tf.eax = 0
	}
}

func (f fakeTrapFrames) NewUserEntry(stackTop int) (TrapFrame, error) {
	if f.failEntry {
		return nil, errors.New("helpers_test: trap frame entry failed")
	}
	return &fakeTrapFrame{}, nil
}

type fakeFileTable struct{}

func (fakeFileTable) Dup() FileTable { return fakeFileTable{} }
func (fakeFileTable) CloseAll()      {}

type fakeFileTableAlloc struct{}

func (fakeFileTableAlloc) New() FileTable { return fakeFileTable{} }

// newTestTable returns a Table wired to the fakes above, suitable for tests
// that exercise allocProc/Fork/UserInit without any real fiber scheduling.
func newTestTable() *Table {
	return NewTable(Config{
		Clock:      fakeClock{},
		Stacks:     fakeStackAlloc{},
		PageTables: fakePageTableAlloc{},
		TrapFrames: fakeTrapFrames{},
		Files:      fakeFileTableAlloc{},
	})
}
