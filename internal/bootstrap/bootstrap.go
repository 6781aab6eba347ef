// Package bootstrap wires internal/proc's process table to the internal/simhw
// fakes and performs first-process creation (spec.md section 4.8), giving
// cmd/minikernctl a single entry point to bring a kernel instance up.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/minikern/minikern/internal/proc"
	"github.com/minikern/minikern/internal/simhw"
)

// initCode is the embedded init-code blob user_init maps at virtual address
// zero. It carries no real instructions; its only purpose here is to give
// bootstrap something non-empty to map and size the first process's memory
// from, standing in for the assembled initcode.S binary in the source this
// generalizes.
var initCode = []byte{0x00}

// Kernel is a running instance of the process table plus its CPUs and tick
// source, the minimum needed to exercise C1-C9 end to end.
type Kernel struct {
	Table *proc.Table
	Clock *simhw.Clock
	IRQ   *simhw.IRQController

	cpus []*proc.CPU
	init *proc.Proc
}

// New constructs a Kernel with ncpus dispatch loops, wired to in-memory
// simhw collaborators, and boots the first process via UserInit. entry is
// the simulated user-mode body initproc's fiber runs; it must not return
// (that would exit initproc), so callers end it by parking forever in
// Sleep, after forking and reaping a small process tree in the CLI's case.
func New(log zerolog.Logger, ncpus int, entry func(*proc.Proc)) (*Kernel, error) {
	if ncpus < 1 {
		return nil, fmt.Errorf("bootstrap: need at least one cpu, got %d", ncpus)
	}

	clock := simhw.NewClock()
	k := &Kernel{
		Clock: clock,
		IRQ:   simhw.NewIRQController(),
	}
	k.Table = proc.NewTable(proc.Config{
		Clock:      clock,
		Stacks:     simhw.KernelStackAllocator{},
		PageTables: simhw.PageTableAllocator{},
		TrapFrames: simhw.TrapFrames{},
		Files:      simhw.FileTableAllocator{},
		IRQ:        k.IRQ,
		Log:        log,
	})

	for i := 0; i < ncpus; i++ {
		cpu := proc.NewCPU(k.IRQ)
		k.Table.RegisterCPU(cpu)
		k.cpus = append(k.cpus, cpu)
	}

	initProc, err := k.Table.UserInit(initCode, "/", entry)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: userinit: %w", err)
	}
	k.init = initProc
	return k, nil
}

// Init returns the bootstrap process (initproc).
func (k *Kernel) Init() *proc.Proc { return k.init }

// CPUs returns the kernel's registered dispatch loops.
func (k *Kernel) CPUs() []*proc.CPU { return k.cpus }

// Run starts every CPU's dispatch loop and blocks until ctx is cancelled or
// one loop returns an error. There is no per-CPU error path in proc.CPU.Run
// today, so this mainly gives the CLI a single supervised fan-out/shutdown
// point to extend, using errgroup for the shared-cancellation fan-out.
func (k *Kernel) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, cpu := range k.cpus {
		cpu := cpu
		g.Go(func() error {
			cpu.Run(ctx)
			return nil
		})
	}
	return g.Wait()
}

// Tick advances the clock by one and runs tick accounting over the table.
func (k *Kernel) Tick() uint64 {
	n := k.Clock.Advance()
	k.Table.TickUpdate()
	return n
}
