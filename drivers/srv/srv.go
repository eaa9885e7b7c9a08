// Package srv drives the hand's grip servo.
package srv

import (
	"fmt"

	"handctrl/drivers/dipsw"
	"handctrl/hal"
)

// Pulse widths for the servo's travel endpoints.
const (
	minPulseUs = 500
	maxPulseUs = 2500
)

// Default and limit values for the trimmable maximum angle.
const (
	minTrimAngle     = 10
	fullTravelDegree = 180
)

// Source provides the 12-bit control signal the servo tracks.
type Source interface {
	Value() uint16
}

// Selector reports which control source is active.
type Selector interface {
	Source() dipsw.SignalSource
}

// Buttons exposes the poll state of the trim buttons.
type Buttons interface {
	Pressed(i int) bool
}

// Actuator maps the selected control signal to a servo angle once per
// bound slot. Buttons 0 and 1 trim the travel endpoint down and up by one
// degree per dispatch while held.
type Actuator struct {
	out     hal.Servo
	pot     Source
	sensor  Source
	sel     Selector
	buttons Buttons

	maxAngle int16
	angle    int16
	us       int16
}

func New(out hal.Servo, pot, sensor Source, sel Selector, buttons Buttons) *Actuator {
	return &Actuator{
		out:      out,
		pot:      pot,
		sensor:   sensor,
		sel:      sel,
		buttons:  buttons,
		maxAngle: fullTravelDegree,
	}
}

func (a *Actuator) Init() error {
	if a.out == nil {
		return fmt.Errorf("srv: no servo output")
	}
	if a.pot == nil || a.sensor == nil || a.sel == nil {
		return fmt.Errorf("srv: missing control source")
	}
	// Park open.
	a.angle = 0
	a.us = minPulseUs
	return a.out.SetMicroseconds(a.us)
}

func (a *Actuator) Handle() {
	a.trim()

	var v uint16
	if a.sel.Source() == dipsw.SourceSensor {
		v = a.sensor.Value()
	} else {
		v = a.pot.Value()
	}

	a.angle = int16(uint32(v) * uint32(a.maxAngle) / 4095)
	a.us = minPulseUs + int16(int32(a.angle)*(maxPulseUs-minPulseUs)/fullTravelDegree)
	_ = a.out.SetMicroseconds(a.us)
}

func (a *Actuator) trim() {
	if a.buttons == nil {
		return
	}
	if a.buttons.Pressed(0) && a.maxAngle > minTrimAngle {
		a.maxAngle--
	}
	if a.buttons.Pressed(1) && a.maxAngle < fullTravelDegree {
		a.maxAngle++
	}
}

// Angle returns the last commanded angle in degrees.
func (a *Actuator) Angle() int16 { return a.angle }

// MaxAngle returns the current trimmed travel endpoint in degrees.
func (a *Actuator) MaxAngle() int16 { return a.maxAngle }

func (a *Actuator) DebugDump(log hal.Logger) {
	log.WriteLineString(fmt.Sprintf(" > srv: angle: %d, max: %d, pulse: %dus", a.angle, a.maxAngle, a.us))
}
