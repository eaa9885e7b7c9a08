package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Clock is a free-running microsecond counter.
//
// The counter wraps silently at 2^32 (about 71 minutes). Elapsed time must
// be computed with unsigned modular subtraction; the result is correct as
// long as no more than one wrap occurs between the two reads.
type Clock interface {
	Micros() uint32
}

var ErrNotImplemented = errors.New("not implemented")

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// GPIOCaps declares what operations a pin supports.
type GPIOCaps uint8

const (
	GPIOCapInput GPIOCaps = 1 << iota
	GPIOCapOutput
	GPIOCapPullUp
	GPIOCapPullDown
)

// GPIO provides access to general-purpose IO pins.
//
// Implementations may return nil for pins that are not wired on a board.
type GPIO interface {
	PinCount() int
	Pin(id int) GPIOPin
}

// GPIOPin is a single digital IO pin.
type GPIOPin interface {
	Name() string
	Caps() GPIOCaps
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	Write(level bool) error
}

// ADCChannel is a single analog input.
//
// Read returns a 12-bit right-justified sample (0..4095).
type ADCChannel interface {
	Name() string
	Read() uint16
}

// ADC provides access to analog inputs.
type ADC interface {
	ChannelCount() int
	Channel(id int) ADCChannel
}

// Servo is a single RC servo output.
//
// SetMicroseconds sets the pulse width; 1500us is the conventional center,
// with roughly 500..2500us covering the full travel of common servos.
type Servo interface {
	SetMicroseconds(us int16) error
}

// Pin table indices shared by all HAL implementations.
//
// The board wiring differs per target but the logical order is fixed so
// that driver bindings stay the same across host and hardware builds.
const (
	PinBtn0 = iota
	PinBtn1
	PinBtn2
	PinBtn3
	PinDipSrc
	PinDipSpare
)

// ADC channel indices shared by all HAL implementations.
const (
	ChanPot = iota
	ChanSensor
)

// HAL provides the only contact point between the firmware and the board.
type HAL interface {
	Logger() Logger
	Clock() Clock
	GPIO() GPIO
	ADC() ADC
	Servo() Servo
}
