// Package simhw provides lightweight in-memory fakes for the collaborators
// proc declares but does not implement: virtual memory, kernel stacks, file
// tables, interrupt masking, the tick source, and trap frame construction.
// There is no bare-metal target here, so these are not drivers; they exist
// only so internal/proc's life-cycle and scheduler are exercisable end to
// end, mirroring biscuit's own small fake collaborators such as
// _nilbuf_t/fakeubuf_t.
package simhw

import (
	"errors"
	"sync"

	"github.com/minikern/minikern/internal/proc"
)

// PageTable is an in-memory stand-in for a page table: it tracks a mapped
// byte region and a size, with no real address-space switching underneath.
type PageTable struct {
	mu     sync.Mutex
	mapped []byte
	size   int
}

// PageTableAllocator allocates fresh, empty PageTable fakes.
type PageTableAllocator struct{}

func (PageTableAllocator) Alloc() (proc.PageTable, error) {
	return &PageTable{}, nil
}

func (pt *PageTable) Copy() (proc.PageTable, error) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	cp := make([]byte, len(pt.mapped))
	copy(cp, pt.mapped)
	return &PageTable{mapped: cp, size: pt.size}, nil
}

func (pt *PageTable) Resize(current, delta int) (int, error) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	newSize := current + delta
	if newSize < 0 {
		return 0, errors.New("simhw: resize below zero")
	}
	pt.size = newSize
	return newSize, nil
}

func (pt *PageTable) Free() {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.mapped = nil
	pt.size = 0
}

// BindUser is a no-op: there is no MMU here to reprogram.
func (pt *PageTable) BindUser() {}

func (pt *PageTable) MapInitCode(code []byte) error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.mapped = append([]byte(nil), code...)
	pt.size = len(code)
	return nil
}
