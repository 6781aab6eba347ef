package simhw

import (
	"fmt"

	"github.com/minikern/minikern/internal/proc"
)

// TrapFrame is an in-memory stand-in for the trap frame: just enough fields
// to exercise fork's "copy with zeroed return register" and bootstrap's
// "resume in ring-3 at zero" contracts, with no real register file behind
// them.
type TrapFrame struct {
	EIP, ESP int
	EAX      int // the return-value register fork zeroes in the child
}

// TrapFrames builds and clones TrapFrame fakes.
type TrapFrames struct{}

func (TrapFrames) Clone(parent proc.TrapFrame) (proc.TrapFrame, error) {
	p, ok := parent.(*TrapFrame)
	if !ok {
		return nil, fmt.Errorf("simhw: not a trap frame: %T", parent)
	}
	cp := *p
	return &cp, nil
}

func (TrapFrames) ZeroReturnValue(child proc.TrapFrame) {
	if tf, ok := child.(*TrapFrame); ok {
		tf.EAX = 0
	}
}

func (TrapFrames) NewUserEntry(stackTop int) (proc.TrapFrame, error) {
	return &TrapFrame{EIP: 0, ESP: stackTop}, nil
}
