package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.GeneratorWattage != 80000 {
		t.Errorf("GeneratorWattage = %v, want 80000", cfg.GeneratorWattage)
	}
	if cfg.GeneratorTick != 5*time.Second {
		t.Errorf("GeneratorTick = %v, want 5s", cfg.GeneratorTick)
	}
	if cfg.CellCapacity != 9000 {
		t.Errorf("CellCapacity = %v, want 9000", cfg.CellCapacity)
	}
	if cfg.RecyclerTick != 2*time.Second || cfg.RecyclerRecharge != 5 || cfg.RecyclerDraw != 800 {
		t.Errorf("recycler defaults = %v/%v/%v, want 2s/5/800", cfg.RecyclerTick, cfg.RecyclerRecharge, cfg.RecyclerDraw)
	}
	if cfg.GeneratorState != "Off" || cfg.GeneratorProfile != "fusion" {
		t.Errorf("generator = %s/%s, want fusion/Off", cfg.GeneratorProfile, cfg.GeneratorState)
	}
	if cfg.Welder != "welder" {
		t.Errorf("Welder = %q, want welder", cfg.Welder)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("REACTORBAY_CELL_CAPACITY", "500")
	t.Setenv("REACTORBAY_GENERATOR_STATE", "WireExposed")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CellCapacity != 500 {
		t.Errorf("CellCapacity = %v, want 500", cfg.CellCapacity)
	}
	if cfg.GeneratorState != "WireExposed" {
		t.Errorf("GeneratorState = %q, want WireExposed", cfg.GeneratorState)
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("REACTORBAY_GENERATOR_TICK", "soon")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadValidation(t *testing.T) {
	t.Setenv("REACTORBAY_CELL_CAPACITY", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for zero capacity")
	}
}
