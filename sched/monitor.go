package sched

import "sync/atomic"

// Stats is one slot's runtime measurement snapshot, in microseconds.
type Stats struct {
	Curr uint32
	Min  uint32
	Max  uint32
}

type record struct {
	curr atomic.Uint32
	min  atomic.Uint32
	max  atomic.Uint32
}

// Monitor records per-slot handler execution times.
//
// The scheduler is the only writer; the debug reporter reads concurrently
// from its own goroutine, so the fields are atomics rather than plain
// scalars. All records start zeroed and live for the process lifetime.
type Monitor struct {
	recs [MaxSlots]record
}

// Record stores one measured handler duration for a slot.
//
// Max is monotonically non-decreasing. Min treats zero as "not yet
// measured": a handler that legitimately completes in zero microseconds
// keeps re-arming the sentinel, so its min is overwritten on every
// dispatch rather than locked in after the first.
func (m *Monitor) Record(slot int, d uint32) {
	if slot < 0 || slot >= MaxSlots {
		return
	}
	rec := &m.recs[slot]
	rec.curr.Store(d)
	if d > rec.max.Load() {
		rec.max.Store(d)
	}
	if min := rec.min.Load(); min == 0 || d < min {
		rec.min.Store(d)
	}
}

// Snapshot returns a copy of one slot's statistics.
func (m *Monitor) Snapshot(slot int) Stats {
	if slot < 0 || slot >= MaxSlots {
		return Stats{}
	}
	rec := &m.recs[slot]
	return Stats{
		Curr: rec.curr.Load(),
		Min:  rec.min.Load(),
		Max:  rec.max.Load(),
	}
}
