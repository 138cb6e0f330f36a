// Package setup builds an engineering bay from configuration.
package setup

import (
	"fmt"
	"math/rand"
	"time"

	"reactorbay/pkg/engine/action"
	"reactorbay/pkg/engine/scheduler"
	"reactorbay/pkg/game/config"
	"reactorbay/pkg/game/entities"
	"reactorbay/pkg/game/log"
	"reactorbay/pkg/game/power"
	"reactorbay/pkg/game/presentation"
	"reactorbay/pkg/game/recycler"
	"reactorbay/pkg/game/state"
)

// GeneratorProfile resolves the configured profile and applies the tuning
// overrides from cfg
func GeneratorProfile(cfg config.Config) (power.Profile, error) {
	profile, ok := power.Profiles[cfg.GeneratorProfile]
	if !ok {
		return power.Profile{}, fmt.Errorf("unknown generator profile %q", cfg.GeneratorProfile)
	}
	profile.MaxWattage = cfg.GeneratorWattage
	profile.TickInterval = cfg.GeneratorTick
	profile.RepairDuration = cfg.RepairDuration
	if profile.UsesCells() {
		profile.BurnRate = cfg.GeneratorBurnRate
	}
	return profile, nil
}

// SetupBay wires a generator, a recycler and the player's tools onto sched
func SetupBay(cfg config.Config, sched *scheduler.Manager) (*state.Bay, error) {
	profile, err := GeneratorProfile(cfg)
	if err != nil {
		return nil, err
	}
	initial, err := power.ParseState(cfg.GeneratorState)
	if err != nil {
		return nil, fmt.Errorf("generator state: %w", err)
	}
	welder, ok := entities.WelderProfiles[cfg.Welder]
	if !ok {
		return nil, fmt.Errorf("unknown welder %q", cfg.Welder)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	b := state.NewBay(cfg.Player)
	b.Scheduler = sched
	b.Realtime = cfg.Realtime

	b.Generator = power.NewGenerator("", profile, power.Deps{
		Integrity: entities.NewIntegrity(cfg.MaxIntegrity),
		Supply:    &entities.PowerSupply{},
		Scheduler: sched,
		Actions:   action.NewExecutor(sched, b),
		Chat:      b,
		Floor:     b,
		Roller:    rand.New(rand.NewSource(seed)),
	})
	b.GeneratorView = presentation.TrackGenerator(b.Generator, b.Cues)

	b.Recycler = recycler.New("Recycler", recycler.Settings{
		Tick:     cfg.RecyclerTick,
		Recharge: cfg.RecyclerRecharge,
		Draw:     cfg.RecyclerDraw,
	}, sched, b)

	// The recycler hangs off the generator's circuit
	b.Generator.OnStateChanged(func(c power.StateChange) {
		on := c.New == power.On && !c.Final
		if on != b.Recycler.Powered() {
			b.Recycler.SetPowered(on)
		}
	})

	placeTools(b, cfg, welder, sched)

	b.Generator.Spawn(initial, startingCell(cfg, profile))

	log.Info("bay ready", "profile", cfg.GeneratorProfile, "state", b.Generator.State(), "seed", seed)
	return b, nil
}
