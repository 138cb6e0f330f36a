package setup

import (
	"testing"
	"time"

	"reactorbay/pkg/engine/scheduler"
	"reactorbay/pkg/game/config"
	"reactorbay/pkg/game/power"
)

func TestSetupBay_Defaults(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 1
	b, err := SetupBay(cfg, scheduler.New())
	if err != nil {
		t.Fatalf("SetupBay: %v", err)
	}

	if b.Generator.State() != power.Off {
		t.Errorf("State = %v, want Off", b.Generator.State())
	}
	if cell := b.Generator.Cell(); cell == nil || !cell.IsFull() {
		t.Errorf("starting cell = %+v, want a full cell", cell)
	}
	if b.Recycler.Powered() {
		t.Error("recycler should be unpowered while the generator is off")
	}
	if b.Belt.Size() != 5 {
		t.Errorf("belt holds %d items, want 5", b.Belt.Size())
	}
	if len(b.Hints) == 0 {
		t.Error("bay should have hints")
	}
	if b.Player != "Engineer" {
		t.Errorf("Player = %q, want Engineer", b.Player)
	}

	spare := b.FindItem("spare cell")
	if spare == nil {
		t.Fatal("spare cell missing")
	}
}

func TestSetupBay_SpareCellCharge(t *testing.T) {
	cfg := config.Default()
	cfg.SpareCells = 2
	cfg.SpareCellCharge = 25
	b, err := SetupBay(cfg, scheduler.New())
	if err != nil {
		t.Fatalf("SetupBay: %v", err)
	}

	for _, name := range []string{"spare cell 1", "spare cell 2"} {
		item := b.FindItem(name)
		if item == nil {
			t.Fatalf("%s missing", name)
		}
	}
	if b.Belt.Size() != 6 {
		t.Errorf("belt holds %d items, want 6", b.Belt.Size())
	}
}

func TestSetupBay_StartsOn(t *testing.T) {
	cfg := config.Default()
	cfg.GeneratorState = "On"
	b, err := SetupBay(cfg, scheduler.New())
	if err != nil {
		t.Fatalf("SetupBay: %v", err)
	}

	if b.Generator.State() != power.On {
		t.Fatalf("State = %v, want On", b.Generator.State())
	}
	if !b.Recycler.Powered() {
		t.Error("recycler should follow the generator's power")
	}
	if got := b.Generator.ProducingWatts(); got != 80000 {
		t.Errorf("ProducingWatts = %v, want 80000", got)
	}
}

func TestSetupBay_Damaged(t *testing.T) {
	cfg := config.Default()
	cfg.GeneratorState = "WireExposed"
	b, err := SetupBay(cfg, scheduler.New())
	if err != nil {
		t.Fatalf("SetupBay: %v", err)
	}

	if b.Generator.State() != power.WireExposed {
		t.Errorf("State = %v, want WireExposed", b.Generator.State())
	}
	if b.Generator.Integrity().Percent() >= 0.75 {
		t.Errorf("integrity = %v, want damaged", b.Generator.Integrity().Percent())
	}
}

func TestSetupBay_Repairable(t *testing.T) {
	cfg := config.Default()
	cfg.GeneratorProfile = "repairable"
	b, err := SetupBay(cfg, scheduler.New())
	if err != nil {
		t.Fatalf("SetupBay: %v", err)
	}

	if b.Generator.Profile.UsesCells() {
		t.Error("repairable profile should not use cells")
	}
	if b.Generator.Cell() != nil {
		t.Error("repairable generator should not be loaded with a cell")
	}
	if b.Generator.Name != "Generator" {
		t.Errorf("Name = %q, want Generator", b.Generator.Name)
	}
}

func TestSetupBay_Errors(t *testing.T) {
	tests := []struct {
		name string
		edit func(*config.Config)
	}{
		{"unknown profile", func(c *config.Config) { c.GeneratorProfile = "steam" }},
		{"unknown state", func(c *config.Config) { c.GeneratorState = "Melted" }},
		{"unknown welder", func(c *config.Config) { c.Welder = "laser" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.edit(&cfg)
			if _, err := SetupBay(cfg, scheduler.New()); err == nil {
				t.Error("SetupBay succeeded, want error")
			}
		})
	}
}

func TestGeneratorProfile_Overrides(t *testing.T) {
	cfg := config.Default()
	cfg.GeneratorWattage = 1000
	cfg.GeneratorTick = time.Second
	cfg.GeneratorBurnRate = 2
	cfg.RepairDuration = 3 * time.Second

	p, err := GeneratorProfile(cfg)
	if err != nil {
		t.Fatalf("GeneratorProfile: %v", err)
	}
	if p.MaxWattage != 1000 || p.TickInterval != time.Second || p.BurnRate != 2 || p.RepairDuration != 3*time.Second {
		t.Errorf("profile = %+v", p)
	}
	if power.FusionReactor.MaxWattage != 80000 {
		t.Error("overrides must not change the shared profile")
	}
}

func TestSetupBay_Blowtorch(t *testing.T) {
	cfg := config.Default()
	cfg.Welder = "blowtorch"
	b, err := SetupBay(cfg, scheduler.New())
	if err != nil {
		t.Fatalf("SetupBay: %v", err)
	}

	if b.FindItem("blowtorch") == nil {
		t.Error("belt should carry the configured blowtorch")
	}
	if b.FindItem("welding") != nil {
		t.Error("the default welding tool should not be placed as well")
	}
}
