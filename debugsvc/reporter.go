// Package debugsvc renders runtime statistics and driver debug state as
// text, on its own cadence, independent of the control cycle.
package debugsvc

import (
	"context"
	"fmt"
	"time"

	"handctrl/hal"
	"handctrl/sched"
)

const separator = "----------------------------------------"

// Reporter periodically emits one status block: a runtime line per slot,
// then each bound driver's own dump in slot order.
//
// It only ever reads monitor snapshots (atomic loads), so it can run on a
// separate goroutine without touching the control loop.
type Reporter struct {
	log    hal.Logger
	mon    *sched.Monitor
	reg    *sched.Registry
	period time.Duration
}

func New(log hal.Logger, mon *sched.Monitor, reg *sched.Registry, period time.Duration) *Reporter {
	if period <= 0 {
		period = 1 * time.Second
	}
	return &Reporter{log: log, mon: mon, reg: reg, period: period}
}

// Run emits a report every period until the context ends.
func (r *Reporter) Run(ctx context.Context) {
	t := time.NewTicker(r.period)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.Emit()
		}
	}
}

// Emit writes one status block.
func (r *Reporter) Emit() {
	r.log.WriteLineString(separator)
	r.log.WriteLineString(" > runtimes (in microseconds):")
	for i := 0; i < r.reg.Len(); i++ {
		st := r.mon.Snapshot(i)
		r.log.WriteLineString(fmt.Sprintf("    [%d] curr: %d, min: %d, max: %d", i, st.Curr, st.Min, st.Max))
	}
	for i := 0; i < r.reg.Len(); i++ {
		if d, ok := r.reg.Task(i).(sched.DebugDumper); ok {
			d.DebugDump(r.log)
		}
	}
}
