//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/servo"
)

type tinyGoHAL struct {
	logger Logger
	clock  *tinyGoClock
	gpio   GPIO
	adc    ADC
	servo  *pwmServo
}

// New returns a Pico 2 (RP2350) HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// Buttons: GP2..GP5. DIP switch: GP6 (source select), GP7 (spare).
// Analog: ADC0/GP26 potentiometer, ADC1/GP27 sensor.
// Servo: PWM0 on GP16.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	machine.InitADC()

	pins := []GPIOPin{
		&machinePin{name: "BTN0", pin: machine.GP2},
		&machinePin{name: "BTN1", pin: machine.GP3},
		&machinePin{name: "BTN2", pin: machine.GP4},
		&machinePin{name: "BTN3", pin: machine.GP5},
		&machinePin{name: "DIPSRC", pin: machine.GP6},
		&machinePin{name: "DIPSPARE", pin: machine.GP7},
	}

	return &tinyGoHAL{
		logger: newBoardLogger(uart),
		clock:  &tinyGoClock{t0: time.Now()},
		gpio:   newPinTable(pins),
		adc: &machineADC{channels: []ADCChannel{
			newMachineADCChannel("POT", machine.ADC0),
			newMachineADCChannel("SENSOR", machine.ADC1),
		}},
		servo: newPWMServo(machine.PWM0, machine.GP16),
	}
}

func (h *tinyGoHAL) Logger() Logger { return h.logger }
func (h *tinyGoHAL) Clock() Clock   { return h.clock }
func (h *tinyGoHAL) GPIO() GPIO     { return h.gpio }
func (h *tinyGoHAL) ADC() ADC       { return h.adc }
func (h *tinyGoHAL) Servo() Servo   { return h.servo }

type tinyGoClock struct {
	t0 time.Time
}

func (c *tinyGoClock) Micros() uint32 {
	return uint32(time.Since(c.t0) / time.Microsecond)
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type machinePin struct {
	name string
	pin  machine.Pin
}

func (p *machinePin) Name() string { return p.name }

func (p *machinePin) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown
}

func (p *machinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	var m machine.PinMode
	switch {
	case mode == GPIOModeOutput:
		m = machine.PinOutput
	case pull == GPIOPullUp:
		m = machine.PinInputPullup
	case pull == GPIOPullDown:
		m = machine.PinInputPulldown
	default:
		m = machine.PinInput
	}
	p.pin.Configure(machine.PinConfig{Mode: m})
	return nil
}

func (p *machinePin) Read() (bool, error) {
	return p.pin.Get(), nil
}

func (p *machinePin) Write(level bool) error {
	p.pin.Set(level)
	return nil
}

type machineADC struct {
	channels []ADCChannel
}

func (a *machineADC) ChannelCount() int { return len(a.channels) }

func (a *machineADC) Channel(id int) ADCChannel {
	if id < 0 || id >= len(a.channels) {
		return nil
	}
	return a.channels[id]
}

type machineADCChannel struct {
	name string
	adc  machine.ADC
}

func newMachineADCChannel(name string, pin machine.Pin) ADCChannel {
	adc := machine.ADC{Pin: pin}
	adc.Configure(machine.ADCConfig{})
	return &machineADCChannel{name: name, adc: adc}
}

func (c *machineADCChannel) Name() string { return c.name }

// Read scales the 16-bit machine sample down to 12 bits.
func (c *machineADCChannel) Read() uint16 {
	return c.adc.Get() >> 4
}

type pwmServo struct {
	s   servo.Servo
	err error
}

func newPWMServo(pwm servo.PWM, pin machine.Pin) *pwmServo {
	s, err := servo.New(pwm, pin)
	return &pwmServo{s: s, err: err}
}

func (p *pwmServo) SetMicroseconds(us int16) error {
	if p.err != nil {
		return p.err
	}
	p.s.SetMicroseconds(us)
	return nil
}
