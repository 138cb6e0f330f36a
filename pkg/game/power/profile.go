package power

import (
	"time"

	"reactorbay/pkg/engine/world"
)

// FuelSource selects how a generator turns ticks into watts
type FuelSource int

const (
	// FuelCellSource generators burn an inserted fuel cell. Output holds at
	// maximum down to 50% fuel, then loses 2% per 1% of fuel burned.
	FuelCellSource FuelSource = iota
	// NoFuelSource generators ramp up a fixed step per tick and can fail at
	// random, more often the more damaged they are.
	NoFuelSource
)

// Profile is the capability record that distinguishes generator variants
type Profile struct {
	Name           string
	Fuel           FuelSource
	MaxWattage     float64
	TickInterval   time.Duration
	BurnRate       float64 // Cell units per tick at 100% fuel
	RampStep       float64 // Percent gained per tick
	FailureScale   float64 // Failure roll bound per unit of remaining integrity
	RepairDuration time.Duration
	BarLength      float64 // Full travel of the power bar visual
	CellTrait      world.Trait
	RunSound       string
	EndSound       string
}

// Built-in generator profiles
var (
	FusionReactor = Profile{
		Name:           "Fusion Reactor",
		Fuel:           FuelCellSource,
		MaxWattage:     80000,
		TickInterval:   5 * time.Second,
		BurnRate:       5,
		RepairDuration: 5 * time.Second,
		BarLength:      -0.344,
		CellTrait:      world.TraitFuelCell,
		RunSound:       "GeneratorRun",
		EndSound:       "GeneratorEnd",
	}

	RepairableGenerator = Profile{
		Name:           "Generator",
		Fuel:           NoFuelSource,
		MaxWattage:     80000,
		TickInterval:   5 * time.Second,
		RampStep:       1,
		FailureScale:   300,
		RepairDuration: 5 * time.Second,
		BarLength:      0.344,
		RunSound:       "GeneratorRun",
		EndSound:       "GeneratorEnd",
	}
)

// Profiles maps configuration names onto the built-in profiles
var Profiles = map[string]Profile{
	"fusion":     FusionReactor,
	"repairable": RepairableGenerator,
}

// UsesCells reports whether the profile runs on fuel cells
func (p Profile) UsesCells() bool {
	return p.Fuel == FuelCellSource
}
