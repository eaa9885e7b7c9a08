// Package btn polls the hand's push buttons.
package btn

import (
	"fmt"

	"handctrl/hal"
)

// NumButtons is the number of button inputs the board wires up.
const NumButtons = 4

// Reader samples every button once per bound slot.
//
// The inputs idle high through pull-ups; a pressed button pulls the pin
// low.
type Reader struct {
	pins   [NumButtons]hal.GPIOPin
	states [NumButtons]bool
}

// New returns a reader over the button pins. A nil pin is tolerated and
// always reads as released.
func New(pins [NumButtons]hal.GPIOPin) *Reader {
	return &Reader{pins: pins}
}

func (r *Reader) Init() error {
	for i, p := range r.pins {
		if p == nil {
			continue
		}
		if err := p.Configure(hal.GPIOModeInput, hal.GPIOPullUp); err != nil {
			return fmt.Errorf("btn: button %d: %w", i, err)
		}
	}
	return nil
}

func (r *Reader) Handle() {
	for i, p := range r.pins {
		if p == nil {
			r.states[i] = false
			continue
		}
		level, err := p.Read()
		if err != nil {
			continue
		}
		r.states[i] = !level // active low
	}
}

// Pressed reports whether button i was down at the last poll.
func (r *Reader) Pressed(i int) bool {
	if i < 0 || i >= NumButtons {
		return false
	}
	return r.states[i]
}

func (r *Reader) DebugDump(log hal.Logger) {
	log.WriteLineString(fmt.Sprintf(" > btn: %v %v %v %v",
		b2i(r.states[0]), b2i(r.states[1]), b2i(r.states[2]), b2i(r.states[3])))
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
