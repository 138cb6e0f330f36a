package entities

import "reactorbay/pkg/engine/world"

// DamageTier represents how badly a device's casing is damaged
type DamageTier int

const (
	TierIntact   DamageTier = iota // Running or switched off, no repairs needed
	TierMinor                      // Panel off - needs a Wrench
	TierModerate                   // Wiring exposed - needs Wirecutters
	TierHeavy                      // Glass broken - needs a lit welding tool
)

// DamageTierInfo contains display and repair information for each damage tier
type DamageTierInfo struct {
	Name        string
	Threshold   float64 // Tier applies once remaining integrity is at or below this fraction
	RepairHint  string
	RepairTool  world.Trait
	RequiresLit bool       // Tool must be a welding tool that is burning
	RepairsTo   DamageTier // Tier reached once the repair completes
	Restore     float64    // Integrity fraction restored on completion
	TargetName  string     // Part of the device being worked on
	FirstPerson [2]string  // Start / finish verbs for the performer
	ThirdPerson [2]string  // Start / finish verbs for bystanders
}

// DamageTiers maps damage tiers to their repair information
var DamageTiers = map[DamageTier]DamageTierInfo{
	TierMinor: {
		Name:        "minorly damaged",
		Threshold:   0.75,
		RepairHint:  "Use a wrench to repair it.",
		RepairTool:  world.TraitWrench,
		RepairsTo:   TierIntact,
		Restore:     1,
		TargetName:  "tubing and plating",
		FirstPerson: [2]string{"You start repairing", "You repair"},
		ThirdPerson: [2]string{"starts repairing", "repairs"},
	},
	TierModerate: {
		Name:        "moderately damaged",
		Threshold:   0.5,
		RepairHint:  "Use a wirecutters, then wrench to repair it.",
		RepairTool:  world.TraitWirecutter,
		RepairsTo:   TierMinor,
		Restore:     0.5,
		TargetName:  "wiring",
		FirstPerson: [2]string{"You start securing", "You secure"},
		ThirdPerson: [2]string{"starts securing", "secures"},
	},
	TierHeavy: {
		Name:        "heavily damaged",
		Threshold:   0.25,
		RepairHint:  "Use a blowtorch, then wirecutters, then wrench to repair it.",
		RepairTool:  world.TraitWelder,
		RequiresLit: true,
		RepairsTo:   TierModerate,
		Restore:     0.25,
		TargetName:  "internal damage",
		FirstPerson: [2]string{"You start welding", "You weld"},
		ThirdPerson: [2]string{"starts welding", "welds"},
	},
}

// TierForIntegrity returns the most severe tier whose threshold the remaining
// integrity fraction has reached, or TierIntact above 75%.
func TierForIntegrity(remaining float64) DamageTier {
	switch {
	case remaining <= DamageTiers[TierHeavy].Threshold:
		return TierHeavy
	case remaining <= DamageTiers[TierModerate].Threshold:
		return TierModerate
	case remaining <= DamageTiers[TierMinor].Threshold:
		return TierMinor
	default:
		return TierIntact
	}
}

// SpawnDamage returns the fraction of initial integrity removed when a device
// spawns already at tier t
func SpawnDamage(t DamageTier) float64 {
	info, ok := DamageTiers[t]
	if !ok {
		return 0
	}
	return 1 - info.Threshold
}

// CanRepair reports whether item is the right tool for tier t
func CanRepair(t DamageTier, item *world.Item) bool {
	info, ok := DamageTiers[t]
	if !ok || !world.HasTrait(item, info.RepairTool) {
		return false
	}
	if info.RequiresLit {
		return IsLitWelder(item)
	}
	return true
}
