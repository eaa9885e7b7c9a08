// Package sensor reads the EMG-style muscle sensor.
package sensor

import (
	"fmt"

	"handctrl/hal"
)

// Reader samples the sensor channel once per bound slot.
//
// The raw signal is noisy, so the exported value is smoothed harder than
// the potentiometer's: 7/8 old, 1/8 new.
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
		return fmt.Errorf("sensor: no adc channel")
	}
	r.raw = r.ch.Read()
	r.val = r.raw
	return nil
}

func (r *Reader) Handle() {
	r.raw = r.ch.Read()
	r.val = uint16((uint32(r.val)*7 + uint32(r.raw)) / 8)
}

// Value returns the smoothed 12-bit reading.
func (r *Reader) Value() uint16 { return r.val }

// Deinit parks the exported value at rest so a consumer that keeps running
// does not hold the last measured contraction.
func (r *Reader) Deinit() {
	r.raw = 0
	r.val = 0
}

func (r *Reader) DebugDump(log hal.Logger) {
	log.WriteLineString(fmt.Sprintf(" > sensor: raw: %d, filtered: %d", r.raw, r.val))
}
