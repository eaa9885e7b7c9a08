package srv

import (
	"testing"

	"handctrl/drivers/dipsw"
)

type fakeServo struct {
	us   int16
	sets int
}

func (s *fakeServo) SetMicroseconds(us int16) error {
	s.us = us
	s.sets++
	return nil
}

type fixedSource uint16

func (s fixedSource) Value() uint16 { return uint16(s) }

type fixedSelector dipsw.SignalSource

func (s fixedSelector) Source() dipsw.SignalSource { return dipsw.SignalSource(s) }

type fakeButtons [2]bool

func (b fakeButtons) Pressed(i int) bool {
	if i < 0 || i >= len(b) {
		return false
	}
	return b[i]
}

func TestInitParksOpen(t *testing.T) {
	out := &fakeServo{}
	a := New(out, fixedSource(0), fixedSource(0), fixedSelector(dipsw.SourcePot), fakeButtons{})
	if err := a.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if out.us != minPulseUs {
		t.Fatalf("expected park pulse %dus, got %d", minPulseUs, out.us)
	}
}

func TestInitValidation(t *testing.T) {
	if err := New(nil, fixedSource(0), fixedSource(0), fixedSelector(0), nil).Init(); err == nil {
		t.Fatal("expected error without servo output")
	}
	if err := New(&fakeServo{}, nil, fixedSource(0), fixedSelector(0), nil).Init(); err == nil {
		t.Fatal("expected error without pot source")
	}
}

func TestHandleTracksSelectedSource(t *testing.T) {
	out := &fakeServo{}
	a := New(out, fixedSource(4095), fixedSource(0), fixedSelector(dipsw.SourcePot), nil)
	if err := a.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	a.Handle()
	if a.Angle() != 180 {
		t.Fatalf("full pot: expected 180 degrees, got %d", a.Angle())
	}
	if out.us != maxPulseUs {
		t.Fatalf("full pot: expected %dus, got %d", maxPulseUs, out.us)
	}

	b := New(&fakeServo{}, fixedSource(4095), fixedSource(2048), fixedSelector(dipsw.SourceSensor), nil)
	if err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	b.Handle()
	if b.Angle() < 89 || b.Angle() > 91 {
		t.Fatalf("half sensor: expected about 90 degrees, got %d", b.Angle())
	}
}

func TestTrimButtonsAdjustEndpoint(t *testing.T) {
	out := &fakeServo{}
	buttons := &fakeButtons{}
	a := New(out, fixedSource(4095), fixedSource(0), fixedSelector(dipsw.SourcePot), buttons)
	if err := a.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	buttons[0] = true // trim down
	for i := 0; i < 30; i++ {
		a.Handle()
	}
	if a.MaxAngle() != 150 {
		t.Fatalf("expected endpoint trimmed to 150, got %d", a.MaxAngle())
	}
	if a.Angle() != 150 {
		t.Fatalf("full deflection must track trimmed endpoint, got %d", a.Angle())
	}

	buttons[0] = false
	buttons[1] = true // trim up, clamped at full travel
	for i := 0; i < 100; i++ {
		a.Handle()
	}
	if a.MaxAngle() != fullTravelDegree {
		t.Fatalf("expected endpoint back at %d, got %d", fullTravelDegree, a.MaxAngle())
	}

	buttons[1] = false
	buttons[0] = true
	for i := 0; i < 1000; i++ {
		a.Handle()
	}
	if a.MaxAngle() != minTrimAngle {
		t.Fatalf("expected endpoint clamped at %d, got %d", minTrimAngle, a.MaxAngle())
	}
}
