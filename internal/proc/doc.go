// Package proc implements the process table, the per-CPU scheduler, the
// priority policy, and the sleep/wakeup rendezvous for a small teaching-style
// kernel. It is the hardest package in this repository: every operation must
// coordinate multiple CPU goroutines scanning a shared table, a four-level
// priority scheme with per-process time budgets and epoch replenishment,
// strict ordering between state transitions and the table lock, and
// tick-driven accounting gathered concurrently with the scheduling decisions
// that depend on it.
//
// There is no bare-metal target underneath this package. Virtual memory,
// kernel stacks, file/inode handles, the context switch, the trap frame,
// interrupt masking, CPU identification, and the tick source are external
// collaborators, referenced here only through the interfaces in
// collaborators.go. A "CPU" is a long-lived goroutine running CPU.Run; a
// process's kernel thread is a long-lived "fiber" goroutine (fiber.go); the
// context switch is a synchronous two-way channel hand-off between the two,
// standing in for the original's swtch trampoline.
//
// rutime is charged once per dispatch, not once per tick of actual
// execution — this over-counts short quanta and under-counts long ones. It
// is carried over unchanged from the system this package implements; see
// DESIGN.md for why it is not corrected here.
package proc
