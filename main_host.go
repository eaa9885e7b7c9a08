//go:build !tinygo

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"handctrl/app"
	"handctrl/config"
	"handctrl/hal"
	"handctrl/internal/buildinfo"
)

func main() {
	var (
		cfgPath  string
		duration time.Duration
	)
	flag.StringVar(&cfgPath, "config", "", "YAML configuration file (defaults apply when empty).")
	flag.DurationVar(&duration, "duration", 0, "Stop after this long (0 = run until interrupted).")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load config")
		}
	}

	h := hal.NewWithConfig(hal.HostConfig{
		Pot:    signalSpec(cfg.Pot),
		Sensor: signalSpec(cfg.Sensor),
	})

	sys, err := app.New(h, app.Config{
		CycleMicros: cfg.CycleMicros,
		SlotCount:   cfg.SlotCount,
		DebugPeriod: time.Duration(cfg.DebugPeriodMS) * time.Millisecond,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("wire controller")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	log.Info().
		Str("build", buildinfo.Short()).
		Uint32("cycle_us", cfg.CycleMicros).
		Int("slots", cfg.SlotCount).
		Uint32("slot_us", sys.Scheduler.SlotPeriod()).
		Msg("controller running")

	sys.Run(ctx)
	log.Info().Msg("controller stopped")
}

func signalSpec(s config.Signal) hal.SignalSpec {
	spec := hal.SignalSpec{
		Period: time.Duration(s.PeriodMS) * time.Millisecond,
		Level:  s.Level,
	}
	switch s.Wave {
	case "sine":
		spec.Wave = hal.WaveSine
	case "triangle":
		spec.Wave = hal.WaveTriangle
	default:
		spec.Wave = hal.WaveConst
	}
	return spec
}
