package simhw

import "github.com/minikern/minikern/internal/proc"

// KernelStack is an in-memory stand-in for kalloc'd kernel stack memory.
type KernelStack struct {
	freed bool
}

// KernelStackAllocator allocates fresh KernelStack fakes.
type KernelStackAllocator struct{}

func (KernelStackAllocator) Alloc() (proc.KernelStack, error) {
	return &KernelStack{}, nil
}

func (k *KernelStack) Free() {
	k.freed = true
}
