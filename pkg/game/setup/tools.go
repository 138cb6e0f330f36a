package setup

import (
	"fmt"
	"strings"

	"reactorbay/pkg/engine/scheduler"
	"reactorbay/pkg/engine/world"
	"reactorbay/pkg/game/config"
	"reactorbay/pkg/game/entities"
	"reactorbay/pkg/game/power"
	"reactorbay/pkg/game/state"
)

// placeTools puts the engineer's tool kit and spare cells on the belt
func placeTools(b *state.Bay, cfg config.Config, profile entities.WelderProfile, sched scheduler.Scheduler) {
	b.PickUpItem(world.NewItem("wrench", world.TraitWrench))
	b.PickUpItem(world.NewItem("wirecutters", world.TraitWirecutter))
	b.PickUpItem(world.NewItem("crowbar", world.TraitCrowbar))

	welder := entities.NewWelder(profile, cfg.WelderFuel)
	welder.Attach(sched)
	b.PickUpItem(entities.NewWelderItem(strings.ToLower(profile.Name), welder))

	for i := 1; i <= cfg.SpareCells; i++ {
		cell := entities.NewFuelCell(cfg.CellCapacity)
		cell.Current = cell.Capacity * cfg.SpareCellCharge / 100
		name := "spare cell"
		if cfg.SpareCells > 1 {
			name = fmt.Sprintf("spare cell %d", i)
		}
		b.PickUpItem(entities.NewFuelCellItem(name, cell))
	}

	b.AddHint("Use an empty hand on the reactor to toggle it. It needs a fuel cell to start.")
	b.AddHint("Damaged reactors are repaired in stages: welding tool, then wirecutters, then wrench.")
	b.AddHint("Light the welding tool before you weld. It goes out when the fuel runs dry.")
	b.AddHint("The recycler only charges cells while the reactor is running.")
	b.AddHint("Use a crowbar to pry a cell out of a reactor that is switched off.")
}

// startingCell returns the cell loaded into the generator at spawn, if any
func startingCell(cfg config.Config, profile power.Profile) *world.Item {
	if !cfg.StartingCell || !profile.UsesCells() {
		return nil
	}
	return entities.NewFuelCellItem("fusion cell", entities.NewFuelCell(cfg.CellCapacity))
}
