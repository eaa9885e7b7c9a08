package sched

import "fmt"

// MaxSlots is the capacity of the slot table.
const MaxSlots = 16

// Registry is a fixed-size ordered table of task slots.
//
// Bindings are set up once at startup and sealed by Init; an unbound slot
// is a deliberate placeholder the scheduler skips over, not an error.
type Registry struct {
	slots  [MaxSlots]Task
	n      uint8
	sealed bool
}

// NewRegistry returns a registry with n slots, all unbound.
func NewRegistry(n int) (*Registry, error) {
	if n < 1 || n > MaxSlots {
		return nil, fmt.Errorf("sched: slot count %d out of range 1..%d", n, MaxSlots)
	}
	return &Registry{n: uint8(n)}, nil
}

// Len returns the number of slots.
func (r *Registry) Len() int { return int(r.n) }

// Bind attaches a task to a slot. Binding fails once Init has sealed the
// table, on an out-of-range slot, and on a slot that is already bound.
func (r *Registry) Bind(slot int, t Task) error {
	if r.sealed {
		return fmt.Errorf("sched: registry sealed, cannot bind slot %d", slot)
	}
	if slot < 0 || slot >= int(r.n) {
		return fmt.Errorf("sched: slot %d out of range 0..%d", slot, r.n-1)
	}
	if t == nil {
		return fmt.Errorf("sched: slot %d: nil task", slot)
	}
	if r.slots[slot] != nil {
		return fmt.Errorf("sched: slot %d already bound", slot)
	}
	r.slots[slot] = t
	return nil
}

// Task returns the task bound to a slot, or nil.
func (r *Registry) Task(slot int) Task {
	if slot < 0 || slot >= int(r.n) {
		return nil
	}
	return r.slots[slot]
}

// Init initializes every bound task in slot order and seals the table.
// The first failure aborts initialization.
func (r *Registry) Init() error {
	r.sealed = true
	for i := 0; i < int(r.n); i++ {
		t := r.slots[i]
		if t == nil {
			continue
		}
		if err := t.Init(); err != nil {
			return fmt.Errorf("sched: slot %d init: %w", i, err)
		}
	}
	return nil
}

// Deinit releases every bound task that supports it, in reverse slot order.
func (r *Registry) Deinit() {
	for i := int(r.n) - 1; i >= 0; i-- {
		if d, ok := r.slots[i].(Deiniter); ok {
			d.Deinit()
		}
	}
}
