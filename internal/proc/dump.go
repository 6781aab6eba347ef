package proc

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Dump writes one line per non-UNUSED slot, the form "pid\tprio\tstate\tname"
// spec.md section 6 specifies for proc_dump, followed by a sleep-channel
// label for SLEEPING processes. The original calls getcallerpcs against a
// saved ebp to print a backtrace; this module has no real call stack to
// unwind, so it prints the channel the process is waiting on instead — a
// deliberate substitution, not a silent drop (see DESIGN.md).
func (t *Table) Dump(w io.Writer) {
	t.lock()
	defer t.unlock()

	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	defer tw.Flush()
	for _, p := range t.slots {
		if p.state == Unused {
			continue
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s", p.pid, p.priority, p.state, p.name)
		if p.state == Sleeping {
			fmt.Fprintf(tw, "\t[chan %v]", p.channel)
		}
		fmt.Fprintln(tw)
	}
}
