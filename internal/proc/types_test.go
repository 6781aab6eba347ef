package proc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateString(t *testing.T) {
	cases := map[State]string{
		Unused:   "unused",
		Embryo:   "embryo",
		Sleeping: "sleep",
		Runnable: "runble",
		Running:  "run",
		Zombie:   "zombie",
	}
	for state, want := range cases {
		assert.Equal(t, want, state.String())
	}
	assert.Equal(t, "state(99)", State(99).String())
}

func TestPriorityValid(t *testing.T) {
	assert.True(t, PriorityIdle.Valid())
	assert.True(t, PriorityLow.Valid())
	assert.True(t, PriorityMid.Valid())
	assert.True(t, PriorityHigh.Valid())
	assert.False(t, Priority(4).Valid())
	assert.False(t, Priority(-1).Valid())
}
