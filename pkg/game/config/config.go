// Package config loads reactor bay tuning from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable used when building a bay
type Config struct {
	// Generator
	GeneratorProfile  string        `env:"GENERATOR_PROFILE" envDefault:"fusion"`
	GeneratorState    string        `env:"GENERATOR_STATE" envDefault:"Off"`
	GeneratorWattage  float64       `env:"GENERATOR_WATTAGE" envDefault:"80000"`
	GeneratorTick     time.Duration `env:"GENERATOR_TICK" envDefault:"5s"`
	GeneratorBurnRate float64       `env:"GENERATOR_BURN_RATE" envDefault:"5"`
	RepairDuration    time.Duration `env:"REPAIR_DURATION" envDefault:"5s"`
	MaxIntegrity      float64       `env:"MAX_INTEGRITY" envDefault:"100"`
	StartingCell      bool          `env:"STARTING_CELL" envDefault:"true"`

	// Fuel cells
	CellCapacity    float64 `env:"CELL_CAPACITY" envDefault:"9000"`
	SpareCells      int     `env:"SPARE_CELLS" envDefault:"1"`
	SpareCellCharge float64 `env:"SPARE_CELL_CHARGE" envDefault:"40"` // Percent

	// Recycler
	RecyclerTick     time.Duration `env:"RECYCLER_TICK" envDefault:"2s"`
	RecyclerRecharge float64       `env:"RECYCLER_RECHARGE" envDefault:"5"`
	RecyclerDraw     float64       `env:"RECYCLER_DRAW" envDefault:"800"`

	// Tools
	Welder     string  `env:"WELDER" envDefault:"welder"` // welder or blowtorch
	WelderFuel float64 `env:"WELDER_FUEL" envDefault:"10"`

	// Session
	Player   string        `env:"PLAYER" envDefault:"Engineer"`
	LogFile  string        `env:"LOG_FILE"`
	Seed     int64         `env:"SEED" envDefault:"0"`
	Realtime bool          `env:"REALTIME" envDefault:"false"`
	Step     time.Duration `env:"STEP" envDefault:"100ms"`
}

// EnvPrefix is prepended to every variable name
const EnvPrefix = "REACTORBAY_"

// Load parses the configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration with every default applied
func Default() Config {
	var cfg Config
	// Defaults come from struct tags; parsing an empty environment cannot fail.
	_ = env.ParseWithOptions(&cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: map[string]string{},
	})
	return cfg
}

// Validate rejects values the devices cannot run with
func (c Config) Validate() error {
	switch {
	case c.CellCapacity <= 0:
		return fmt.Errorf("cell capacity must be positive, got %v", c.CellCapacity)
	case c.MaxIntegrity <= 0:
		return fmt.Errorf("max integrity must be positive, got %v", c.MaxIntegrity)
	case c.GeneratorTick <= 0 || c.RecyclerTick <= 0:
		return fmt.Errorf("tick intervals must be positive")
	case c.GeneratorWattage < 0 || c.RecyclerDraw < 0:
		return fmt.Errorf("wattages must not be negative")
	case c.SpareCellCharge < 0 || c.SpareCellCharge > 100:
		return fmt.Errorf("spare cell charge must be a percentage, got %v", c.SpareCellCharge)
	case c.Player == "":
		return fmt.Errorf("player name must not be empty")
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
