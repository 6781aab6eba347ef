// Command minikernctl boots an in-process minikern instance, drives a small
// demo workload through it, and prints the process-table dump, exercising
// fork/exit/wait, priority dispatch, sleep/wakeup, and tick accounting end
// to end from outside the proc package.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/minikern/minikern/internal/bootstrap"
	"github.com/minikern/minikern/internal/proc"
)

func main() {
	var (
		cpuCount   int
		children   int
		ticks      int
		tickPeriod time.Duration
		logLevel   string
		killOne    bool
	)

	root := &cobra.Command{
		Use:   "minikernctl",
		Short: "Drive a minikern scheduler instance through a demo workload",
		Long: `minikernctl boots a process table and a fleet of per-CPU dispatch
loops, forks a small tree of priority-varied demo processes under initproc,
drives the tick source for a while, and dumps the final process table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), runOpts{
				cpus:       cpuCount,
				children:   children,
				ticks:      ticks,
				tickPeriod: tickPeriod,
				logLevel:   logLevel,
				killOne:    killOne,
			})
		},
	}

	root.Flags().IntVar(&cpuCount, "cpus", 2, "number of per-CPU dispatch loops to run")
	root.Flags().IntVar(&children, "children", 3, "number of demo processes to fork under initproc")
	root.Flags().IntVar(&ticks, "ticks", 200, "number of timer ticks to drive before shutting down")
	root.Flags().DurationVar(&tickPeriod, "tick-period", time.Millisecond, "wall-clock delay between ticks")
	root.Flags().StringVar(&logLevel, "log-level", "info", "zerolog level: debug, info, warn, error")
	root.Flags().BoolVar(&killOne, "kill-one", false, "send kill(2) to one sleeping demo child to exercise the kill path")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type runOpts struct {
	cpus       int
	children   int
	ticks      int
	tickPeriod time.Duration
	logLevel   string
	killOne    bool
}

func run(ctx context.Context, o runOpts) error {
	level, err := zerolog.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("minikernctl: %w", err)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	var killPid atomic.Int64 // written by initproc's fiber, read from run's own goroutine
	var k *bootstrap.Kernel

	init := func(p *proc.Proc) {
		demoWorkload(k.Table, p, o.children, &killPid)
		close(done)
		// initproc may never exit; park forever rather than let its fiber
		// return, which would otherwise implicit-exit the boot process.
		k.Table.Sleep(p, "demo-complete", nil)
	}

	k, err = bootstrap.New(log, o.cpus, init)
	if err != nil {
		return fmt.Errorf("minikernctl: %w", err)
	}

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	runErr := make(chan error, 1)
	go func() { runErr <- k.Run(runCtx) }()

	ticker := time.NewTicker(o.tickPeriod)
	defer ticker.Stop()

	killed := false
	for i := 0; i < o.ticks; i++ {
		select {
		case <-ctx.Done():
			cancelRun()
			return <-runErr
		case <-done:
			i = o.ticks // fall through to shutdown below
		case <-ticker.C:
			k.Tick()
			if pid := proc.Pid(killPid.Load()); o.killOne && !killed && pid != 0 {
				if err := k.Table.Kill(pid); err != nil {
					log.Warn().Err(err).Msg("kill")
				}
				killed = true
			}
			continue
		}
		break
	}

	cancelRun()
	<-runErr

	k.Table.Dump(os.Stdout)
	return nil
}

// demoWorkload runs in initproc's fiber: it forks n priority-varied
// children, each of which yields a few times, sleeps on a shared channel,
// and exits, then reaps all of them via Wait. killPid is published with the
// pid of one sleeping child so the caller can optionally exercise Kill.
func demoWorkload(table *proc.Table, initProc *proc.Proc, n int, killPid *atomic.Int64) {
	var wakeChan proc.Channel = "demo-wake"

	for i := 0; i < n; i++ {
		prio := proc.Priority(1 + i%3)
		_, err := table.Fork(initProc, func(child *proc.Proc) {
			if err := table.SetPriority(child, prio); err != nil {
				panic(err)
			}
			for j := 0; j < 3; j++ {
				table.Yield(child)
			}
			if child.Priority() == proc.PriorityHigh {
				killPid.Store(int64(child.Pid()))
			}
			table.Sleep(child, wakeChan, nil)
			table.Exit(child)
		})
		if err != nil {
			panic(fmt.Sprintf("minikernctl: fork child %d: %v", i, err))
		}
	}

	go func() {
		time.Sleep(10 * time.Millisecond)
		table.Wakeup(wakeChan)
	}()

	for i := 0; i < n; i++ {
		if _, err := table.Wait(initProc); err != nil {
			break
		}
	}
}
