// Package config loads the host simulator's startup configuration.
//
// Everything here is fixed at startup; nothing is runtime-mutable. TinyGo
// builds do not use this package at all: on hardware the equivalent values
// are compiled in.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"handctrl/sched"
)

// Signal describes one simulated analog input.
type Signal struct {
	// Wave is one of "const", "sine", "triangle".
	Wave     string `yaml:"wave"`
	PeriodMS int    `yaml:"period_ms"`
	Level    uint16 `yaml:"level"`
}

// Config is the host simulator's startup configuration.
type Config struct {
	CycleMicros   uint32 `yaml:"cycle_micros"`
	SlotCount     int    `yaml:"slot_count"`
	DebugPeriodMS int    `yaml:"debug_period_ms"`
	Pot           Signal `yaml:"pot"`
	Sensor        Signal `yaml:"sensor"`
}

// Default returns the configuration matching the hardware constants: a
// 10ms cycle split into 10 slots, reported once a second.
func Default() Config {
	return Config{
		CycleMicros:   10000,
		SlotCount:     10,
		DebugPeriodMS: 1000,
		Pot:           Signal{Wave: "triangle", PeriodMS: 8000, Level: 2048},
		Sensor:        Signal{Wave: "sine", PeriodMS: 2000, Level: 2048},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the scheduling parameters.
func (c Config) Validate() error {
	if c.SlotCount < 1 || c.SlotCount > sched.MaxSlots {
		return fmt.Errorf("config: slot_count %d out of range 1..%d", c.SlotCount, sched.MaxSlots)
	}
	if c.CycleMicros/uint32(c.SlotCount) == 0 {
		return fmt.Errorf("config: cycle_micros %d too short for %d slots", c.CycleMicros, c.SlotCount)
	}
	if c.DebugPeriodMS < 1 {
		return fmt.Errorf("config: debug_period_ms must be positive")
	}
	for _, s := range []Signal{c.Pot, c.Sensor} {
		switch s.Wave {
		case "const", "sine", "triangle":
		default:
			return fmt.Errorf("config: unknown wave %q", s.Wave)
		}
		if s.Level > 4095 {
			return fmt.Errorf("config: signal level %d above 12-bit range", s.Level)
		}
	}
	return nil
}
