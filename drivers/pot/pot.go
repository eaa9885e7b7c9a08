// Package pot reads the control potentiometer.
package pot

import (
	"fmt"

	"handctrl/hal"
)

// Reader samples the potentiometer channel once per bound slot and keeps a
// lightly smoothed value so servo motion does not chatter on ADC noise.
type Reader struct {
	ch  hal.ADCChannel
	raw uint16
	val uint16
}

func New(ch hal.ADCChannel) *Reader {
	return &Reader{ch: ch}
}

func (r *Reader) Init() error {
	if r.ch == nil {
		return fmt.Errorf("pot: no adc channel")
	}
	// Prime the filter so the first cycles do not ramp up from zero.
	r.raw = r.ch.Read()
	r.val = r.raw
	return nil
}

func (r *Reader) Handle() {
	r.raw = r.ch.Read()
	// 3/4 old, 1/4 new exponential smoothing.
	r.val = uint16((uint32(r.val)*3 + uint32(r.raw)) / 4)
}

// Value returns the smoothed 12-bit reading.
func (r *Reader) Value() uint16 { return r.val }

func (r *Reader) DebugDump(log hal.Logger) {
	log.WriteLineString(fmt.Sprintf(" > pot: raw: %d, filtered: %d", r.raw, r.val))
}
