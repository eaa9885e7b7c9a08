// Package app wires the drivers, scheduler and debug reporter into a
// running controller.
package app

import (
	"context"
	"time"

	"handctrl/debugsvc"
	"handctrl/drivers/btn"
	"handctrl/drivers/dipsw"
	"handctrl/drivers/pot"
	"handctrl/drivers/sensor"
	"handctrl/drivers/srv"
	"handctrl/hal"
	"handctrl/sched"
)

// Slot assignments within the control cycle. The remaining slots stay
// unbound as placeholders for future drivers.
const (
	slotBtn = iota
	slotPot
	slotSrv
	slotSensor
	slotDipsw
)

// Config carries the startup scheduling parameters.
type Config struct {
	// CycleMicros is the full cycle length; each slot gets an equal share.
	CycleMicros uint32
	SlotCount   int
	DebugPeriod time.Duration
}

// DefaultConfig matches the hardware constants: a 10ms cycle in 10 slots
// (1000us per slot), reported once a second.
func DefaultConfig() Config {
	return Config{
		CycleMicros: 10000,
		SlotCount:   10,
		DebugPeriod: 1 * time.Second,
	}
}

// System is a fully wired controller.
type System struct {
	Scheduler *sched.Scheduler
	Registry  *sched.Registry
	Monitor   *sched.Monitor
	Reporter  *debugsvc.Reporter
}

// New builds and initializes the controller on top of a HAL.
func New(h hal.HAL, cfg Config) (*System, error) {
	reg, err := sched.NewRegistry(cfg.SlotCount)
	if err != nil {
		return nil, err
	}

	gpio := h.GPIO()
	buttons := btn.New([btn.NumButtons]hal.GPIOPin{
		gpio.Pin(hal.PinBtn0),
		gpio.Pin(hal.PinBtn1),
		gpio.Pin(hal.PinBtn2),
		gpio.Pin(hal.PinBtn3),
	})
	potReader := pot.New(h.ADC().Channel(hal.ChanPot))
	sensorReader := sensor.New(h.ADC().Channel(hal.ChanSensor))
	sw := dipsw.New(gpio.Pin(hal.PinDipSrc))
	actuator := srv.New(h.Servo(), potReader, sensorReader, sw, buttons)

	bindings := []struct {
		slot int
		task sched.Task
	}{
		{slotBtn, buttons},
		{slotPot, potReader},
		{slotSrv, actuator},
		{slotSensor, sensorReader},
		{slotDipsw, sw},
	}
	for _, b := range bindings {
		if err := reg.Bind(b.slot, b.task); err != nil {
			return nil, err
		}
	}
	if err := reg.Init(); err != nil {
		return nil, err
	}

	mon := &sched.Monitor{}
	s, err := sched.New(h.Clock(), reg, mon, cfg.CycleMicros)
	if err != nil {
		return nil, err
	}

	return &System{
		Scheduler: s,
		Registry:  reg,
		Monitor:   mon,
		Reporter:  debugsvc.New(h.Logger(), mon, reg, cfg.DebugPeriod),
	}, nil
}

// Run starts the reporter and spins the polling loop until the context
// ends, then releases the drivers. The loop never sleeps: Tick itself is
// the pacing mechanism.
func (sys *System) Run(ctx context.Context) {
	go sys.Reporter.Run(ctx)

	for ctx.Err() == nil {
		sys.Scheduler.Tick()
	}
	sys.Registry.Deinit()
}

// RunForever is the hardware entrypoint: no shutdown path exists on the
// board, the loop runs until power-off.
func RunForever(h hal.HAL) {
	sys, err := New(h, DefaultConfig())
	if err != nil {
		// No console may exist yet; the best we can do is report and halt.
		h.Logger().WriteLineString("boot failed: " + err.Error())
		select {}
	}
	sys.Run(context.Background())
}
