package power

import (
	"fmt"

	"reactorbay/pkg/game/entities"
)

// State is a generator's operating/damage state
type State int

const (
	On          State = iota // Running, supplying power
	Off                      // Intact and switched off
	PanelOff                 // Minor damage
	WireExposed              // Moderate damage
	GlassBroken              // Heavy damage
)

var stateNames = [...]string{"On", "Off", "PanelOff", "WireExposed", "GlassBroken"}

// stateDescriptions are used in examine text, indexed by State
var stateDescriptions = [...]string{"running", "turned off", "minorly damaged", "moderately damaged", "heavily damaged"}

func (s State) String() string {
	if s < On || s > GlassBroken {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Tier returns the damage tier for the state. On and Off are both intact.
func (s State) Tier() entities.DamageTier {
	switch s {
	case PanelOff:
		return entities.TierMinor
	case WireExposed:
		return entities.TierModerate
	case GlassBroken:
		return entities.TierHeavy
	default:
		return entities.TierIntact
	}
}

// IsDamaged reports whether the state needs repair before the generator can run
func (s State) IsDamaged() bool {
	return s.Tier() != entities.TierIntact
}

// stateForTier maps a damage tier back onto a state. Intact maps to Off.
func stateForTier(t entities.DamageTier) State {
	switch t {
	case entities.TierMinor:
		return PanelOff
	case entities.TierModerate:
		return WireExposed
	case entities.TierHeavy:
		return GlassBroken
	default:
		return Off
	}
}

// ParseState converts a state name (as printed by String) into a State
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return Off, fmt.Errorf("unknown generator state %q", name)
}
