package sched

import "handctrl/hal"

// Task is a driver module bound to one cycle slot.
//
// Init runs exactly once, before the polling loop starts; it is the only
// place a module may fail. Handle runs once per dispatch of the bound slot
// and must return promptly without blocking. Handle has no error channel:
// the only runtime failure mode the design acknowledges is timing
// degradation, where a slow handler delays later slots but never crashes
// the schedule.
type Task interface {
	Init() error
	Handle()
}

// Deiniter is implemented by tasks that release hardware state on shutdown.
type Deiniter interface {
	Deinit()
}

// DebugDumper is implemented by tasks that expose a textual debug dump.
// It is consumed only by the debug reporter, never by the scheduler.
type DebugDumper interface {
	DebugDump(log hal.Logger)
}
