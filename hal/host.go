//go:build !tinygo

package hal

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"
)

type hostHAL struct {
	logger *hostLogger
	clock  *hostClock
	gpio   GPIO
	adc    ADC
	servo  *hostServo
}

// SignalWave selects the waveform of a simulated analog channel.
type SignalWave uint8

const (
	WaveConst SignalWave = iota
	WaveSine
	WaveTriangle
)

// SignalSpec describes one simulated analog input on the host.
type SignalSpec struct {
	Wave   SignalWave
	Period time.Duration
	// Level is the output for WaveConst and the midpoint for the others.
	Level uint16
}

// HostConfig controls the simulated board.
type HostConfig struct {
	Pot    SignalSpec
	Sensor SignalSpec
}

// New returns a host HAL implementation with default simulated signals:
// a slow triangle wave on the potentiometer and a faster sine on the
// sensor channel.
func New() HAL {
	return NewWithConfig(HostConfig{
		Pot:    SignalSpec{Wave: WaveTriangle, Period: 8 * time.Second, Level: 2048},
		Sensor: SignalSpec{Wave: WaveSine, Period: 2 * time.Second, Level: 2048},
	})
}

// NewWithConfig returns a host HAL with explicit simulated signal settings.
func NewWithConfig(cfg HostConfig) HAL {
	clock := newHostClock()
	pins := []GPIOPin{
		newVirtualPin("BTN0", GPIOCapInput|GPIOCapPullUp),
		newVirtualPin("BTN1", GPIOCapInput|GPIOCapPullUp),
		newVirtualPin("BTN2", GPIOCapInput|GPIOCapPullUp),
		newVirtualPin("BTN3", GPIOCapInput|GPIOCapPullUp),
		newVirtualPin("DIPSRC", GPIOCapInput|GPIOCapPullUp|GPIOCapPullDown),
		newVirtualPin("DIPSPARE", GPIOCapInput|GPIOCapPullUp|GPIOCapPullDown),
	}
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		clock:  clock,
		gpio:   newPinTable(pins),
		adc: newHostADC(clock, []ADCChannel{
			newSignalChannel("POT", clock, cfg.Pot),
			newSignalChannel("SENSOR", clock, cfg.Sensor),
		}),
		servo: &hostServo{},
	}
}

func (h *hostHAL) Logger() Logger { return h.logger }
func (h *hostHAL) Clock() Clock   { return h.clock }
func (h *hostHAL) GPIO() GPIO     { return h.gpio }
func (h *hostHAL) ADC() ADC       { return h.adc }
func (h *hostHAL) Servo() Servo   { return h.servo }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// hostClock derives the 32-bit microsecond counter from the wall clock.
// The uint32 truncation gives the same wrap behavior as a hardware timer.
type hostClock struct {
	t0 time.Time
}

func newHostClock() *hostClock {
	return &hostClock{t0: time.Now()}
}

func (c *hostClock) Micros() uint32 {
	return uint32(time.Since(c.t0) / time.Microsecond)
}

type hostADC struct {
	clock    *hostClock
	channels []ADCChannel
}

func newHostADC(clock *hostClock, channels []ADCChannel) ADC {
	return &hostADC{clock: clock, channels: channels}
}

func (a *hostADC) ChannelCount() int { return len(a.channels) }

func (a *hostADC) Channel(id int) ADCChannel {
	if id < 0 || id >= len(a.channels) {
		return nil
	}
	return a.channels[id]
}

// signalChannel synthesizes a 12-bit waveform from the host clock so the
// simulated hand moves without any real input attached.
type signalChannel struct {
	name  string
	clock *hostClock
	spec  SignalSpec
}

func newSignalChannel(name string, clock *hostClock, spec SignalSpec) ADCChannel {
	if spec.Period <= 0 {
		spec.Period = 1 * time.Second
	}
	if spec.Level > 4095 {
		spec.Level = 4095
	}
	return &signalChannel{name: name, clock: clock, spec: spec}
}

func (s *signalChannel) Name() string { return s.name }

func (s *signalChannel) Read() uint16 {
	switch s.spec.Wave {
	case WaveSine:
		phase := s.phase()
		v := float64(s.spec.Level) + 2047*math.Sin(2*math.Pi*phase)
		return clamp12(v)
	case WaveTriangle:
		phase := s.phase()
		// 0 -> 4095 -> 0 over one period.
		if phase < 0.5 {
			return clamp12(4095 * 2 * phase)
		}
		return clamp12(4095 * 2 * (1 - phase))
	default:
		return s.spec.Level
	}
}

func (s *signalChannel) phase() float64 {
	elapsed := time.Duration(s.clock.Micros()) * time.Microsecond
	return float64(elapsed%s.spec.Period) / float64(s.spec.Period)
}

func clamp12(v float64) uint16 {
	if v < 0 {
		return 0
	}
	if v > 4095 {
		return 4095
	}
	return uint16(v)
}

// hostServo records the last commanded pulse width.
type hostServo struct {
	mu sync.Mutex
	us int16
}

func (s *hostServo) SetMicroseconds(us int16) error {
	if us < 0 {
		return fmt.Errorf("servo: invalid pulse width %dus", us)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.us = us
	return nil
}
