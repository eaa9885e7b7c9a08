// Package dipsw reads the board's DIP-switch configuration.
package dipsw

import (
	"fmt"

	"handctrl/hal"
)

// SignalSource selects which analog input drives the servo.
type SignalSource uint8

const (
	SourcePot SignalSource = iota
	SourceSensor
)

func (s SignalSource) String() string {
	switch s {
	case SourcePot:
		return "pot"
	case SourceSensor:
		return "sensor"
	default:
		return "unknown"
	}
}

// Reader refreshes the switch configuration once per bound slot, so a
// reconfiguration takes effect without a reset.
type Reader struct {
	srcPin hal.GPIOPin
	src    SignalSource
}

func New(srcPin hal.GPIOPin) *Reader {
	return &Reader{srcPin: srcPin}
}

func (r *Reader) Init() error {
	if r.srcPin == nil {
		return fmt.Errorf("dipsw: no source-select pin")
	}
	// Pull-down: switch open selects the potentiometer.
	if err := r.srcPin.Configure(hal.GPIOModeInput, hal.GPIOPullDown); err != nil {
		return fmt.Errorf("dipsw: source pin: %w", err)
	}
	r.readConfig()
	return nil
}

func (r *Reader) Handle() {
	r.readConfig()
}

func (r *Reader) readConfig() {
	level, err := r.srcPin.Read()
	if err != nil {
		return
	}
	if level {
		r.src = SourceSensor
	} else {
		r.src = SourcePot
	}
}

// Source returns the configured signal source.
func (r *Reader) Source() SignalSource { return r.src }

func (r *Reader) DebugDump(log hal.Logger) {
	log.WriteLineString(" > dipsw: source: " + r.src.String())
}
