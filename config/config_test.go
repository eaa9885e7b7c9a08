package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "handctrl.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
cycle_micros: 20000
slot_count: 5
pot:
  wave: const
  level: 1000
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CycleMicros != 20000 || cfg.SlotCount != 5 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Pot.Wave != "const" || cfg.Pot.Level != 1000 {
		t.Fatalf("pot override not applied: %+v", cfg.Pot)
	}
	// Untouched keys keep their defaults.
	if cfg.DebugPeriodMS != 1000 || cfg.Sensor.Wave != "sine" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"slot count", "slot_count: 99"},
		{"short cycle", "cycle_micros: 5"},
		{"debug period", "debug_period_ms: 0"},
		{"wave", "pot:\n  wave: square"},
		{"level", "sensor:\n  wave: const\n  level: 5000"},
		{"syntax", ":\n  - ["},
	}
	for _, tc := range cases {
		if _, err := Load(writeFile(t, tc.yaml)); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}
