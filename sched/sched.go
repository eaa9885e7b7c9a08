// Package sched multiplexes a single non-blocking polling loop into a
// fixed number of round-robin task slots, measuring how long each handler
// runs so a slow task shows up in the statistics before it starves its
// neighbors.
package sched

import (
	"fmt"

	"handctrl/hal"
)

// Scheduler drives the cooperative slot cycle.
//
// One Tick dispatches at most one slot. There is no preemption and no
// catch-up: a handler that overruns its slot delays every later slot by
// the overrun, but no slot is ever skipped or reordered. Strict ordering
// wins over phase accuracy; the drift is observable in the monitor.
type Scheduler struct {
	clock hal.Clock
	reg   *Registry
	mon   *Monitor

	period uint32 // slot period in microseconds
	last   uint32 // clock reading at the previous dispatch
	slot   uint8
}

// New builds a scheduler over a sealed-to-be registry.
//
// cyclePeriod is the full cycle length in microseconds; each of the N
// slots gets cyclePeriod / N. A division remainder is not redistributed:
// the real cycle is N*slotPeriod and the schedule drifts by the remainder
// every pass relative to the nominal period.
func New(clock hal.Clock, reg *Registry, mon *Monitor, cyclePeriod uint32) (*Scheduler, error) {
	if clock == nil {
		return nil, fmt.Errorf("sched: nil clock")
	}
	if reg == nil {
		return nil, fmt.Errorf("sched: nil registry")
	}
	if mon == nil {
		return nil, fmt.Errorf("sched: nil monitor")
	}
	period := cyclePeriod / uint32(reg.Len())
	if period == 0 {
		return nil, fmt.Errorf("sched: cycle period %dus too short for %d slots", cyclePeriod, reg.Len())
	}
	return &Scheduler{
		clock:  clock,
		reg:    reg,
		mon:    mon,
		period: period,
	}, nil
}

// Tick runs at most one slot dispatch.
//
// The common case, no slot period elapsed yet, returns immediately and
// does not allocate. Otherwise the current slot's handler (if bound) is
// invoked, its duration recorded, and the slot index advanced by exactly
// one. Elapsed time is unsigned modular subtraction, so the decision stays
// correct across a wrap of the 32-bit clock.
func (s *Scheduler) Tick() {
	now := s.clock.Micros()
	if now-s.last < s.period {
		return
	}
	s.last = now

	slot := int(s.slot)
	if t := s.reg.Task(slot); t != nil {
		start := s.clock.Micros()
		t.Handle()
		s.mon.Record(slot, s.clock.Micros()-start)
	}

	s.slot++
	if int(s.slot) >= s.reg.Len() {
		s.slot = 0
	}
}

// Slot returns the index the next dispatch will run.
func (s *Scheduler) Slot() int { return int(s.slot) }

// SlotPeriod returns the per-slot period in microseconds.
func (s *Scheduler) SlotPeriod() uint32 { return s.period }
