package power

import (
	"github.com/leonelquinteros/gotext"

	"reactorbay/pkg/engine/action"
	"reactorbay/pkg/engine/world"
	"reactorbay/pkg/game/entities"
	"reactorbay/pkg/game/log"
)

// WillInteract reports whether the generator has anything to do with the
// interaction. It has no side effects.
func (g *Generator) WillInteract(i world.Interaction) bool {
	if g.disabled || i.Intent == world.IntentHarm || i.Target != g {
		return false
	}
	hand := i.HandObject()
	if hand == nil {
		return g.state == On || g.state == Off
	}
	if g.Profile.UsesCells() {
		if world.HasTrait(hand, g.Profile.CellTrait) || world.HasTrait(hand, world.TraitCrowbar) {
			return true
		}
	}
	return entities.CanRepair(g.state.Tier(), hand)
}

// PerformInteraction toggles, loads, unloads or repairs the generator
// depending on what the performer is holding
func (g *Generator) PerformInteraction(i world.Interaction) {
	hand := i.HandObject()
	switch {
	case hand == nil:
		g.toggle(i)
	case g.Profile.UsesCells() && world.HasTrait(hand, g.Profile.CellTrait):
		g.insertCell(i)
	case g.Profile.UsesCells() && world.HasTrait(hand, world.TraitCrowbar):
		g.removeCell(i)
	default:
		g.startRepair(i)
	}
}

func (g *Generator) toggle(i world.Interaction) {
	switch g.state {
	case Off:
		if !g.TryToggleOn() {
			g.chat.Warning(i.Performer, gotext.Get("The reactor requires a fuel cell before you can turn it on."))
		}
	case On:
		g.ToggleOff()
	}
}

func (g *Generator) insertCell(i world.Interaction) {
	if g.Slot.IsOccupied() {
		g.chat.Warning(i.Performer, gotext.Get("You need to remove the fuel cell from the reactor first."))
		return
	}
	switch g.state {
	case Off:
		hand := i.HandObject()
		if _, ok := world.Component[*entities.FuelCell](hand); !ok {
			log.Error("fuel cell item has no fuel cell component", "generator", g.Name, "item", hand.Name)
			return
		}
		if !world.Transfer(i.Hand, g.Slot) {
			return
		}
		g.updateCell()
		g.chat.Examine(i.Performer, gotext.Get("You load the reactor with the fusion cell."))
	case On:
		g.chat.Warning(i.Performer, gotext.Get("The reactor needs to be turned off first."))
	default:
		g.chat.Warning(i.Performer, gotext.Get("Fusion cell can not be loaded in current reactor state, please seek repairs."))
	}
}

func (g *Generator) removeCell(i world.Interaction) {
	if g.Slot.IsEmpty() {
		return
	}
	switch g.state {
	case Off:
		if !world.Transfer(g.Slot, i.Hand) {
			item := g.Slot.Take()
			if g.floor != nil {
				g.floor.Drop(item)
			}
		}
		g.updateCell()
		g.chat.Examine(i.Performer, gotext.Get("You remove the fusion cell from the reactor."))
	case On:
		g.chat.Warning(i.Performer, gotext.Get("The reactor needs to be turned off first."))
	default:
		g.chat.Warning(i.Performer, gotext.Get("The fusion cell can not be removed in current reactor state, please seek repairs."))
	}
}

// startRepair begins the timed repair for the current damage tier. The
// repair is abandoned if the state changes, the tool leaves the hand, or a
// welding tool goes out.
func (g *Generator) startRepair(i world.Interaction) {
	from := g.state
	tier := from.Tier()
	info, ok := entities.DamageTiers[tier]
	if g.disabled || !ok || !entities.CanRepair(tier, i.HandObject()) {
		return
	}
	tool := i.HandObject()

	welder, _ := world.Component[*entities.Welder](tool)
	offListener := 0

	p := g.actions.Start(action.Spec{
		Performer:   i.Performer,
		Duration:    g.Profile.RepairDuration,
		StartFirst:  gotext.Get("%s the %s's %s...", info.FirstPerson[0], g.Name, info.TargetName),
		StartThird:  gotext.Get("%s %s the %s's %s...", i.Performer, info.ThirdPerson[0], g.Name, info.TargetName),
		FinishFirst: gotext.Get("%s the %s's %s.", info.FirstPerson[1], g.Name, info.TargetName),
		FinishThird: gotext.Get("%s %s the %s's %s.", i.Performer, info.ThirdPerson[1], g.Name, info.TargetName),
		Guard: func() bool {
			return g.state == from && i.HandObject() == tool && entities.CanRepair(tier, tool)
		},
		OnComplete: func() {
			g.completeRepair(stateForTier(info.RepairsTo), info.Restore)
		},
		OnEnd: func() {
			if welder != nil && offListener != 0 {
				welder.RemoveOffListener(offListener)
			}
		},
	})
	if p == nil {
		return
	}
	g.repair = p
	if welder != nil && info.RequiresLit {
		offListener = welder.OnOff(p.Cancel)
	}
}

// completeRepair moves to the repaired state and tops integrity up to the
// given fraction of its initial value
func (g *Generator) completeRepair(target State, fraction float64) {
	g.setState(target)
	restore := fraction*g.integrity.Initial - g.integrity.Current
	if restore > 0 {
		g.integrity.Restore(restore)
	}
	log.Debug("generator repaired", "generator", g.Name, "state", target, "integrity", g.integrity.Current)
}

// Examine describes the generator's fuel, state and any repair hint
func (g *Generator) Examine() string {
	var text string
	if g.Profile.UsesCells() {
		if g.cell == nil {
			text = gotext.Get("No fusion cell in generator.")
		} else {
			text = gotext.Get("Internal fusion cell at: %.2f%% capacity.", g.cell.FuelPercent())
		}
	} else {
		text = gotext.Get("Generator at: %.2f%% power.", g.powerGenPercent)
	}
	text += "\n" + gotext.Get("The generator is currently %s.", gotext.Get(stateDescriptions[g.state]))
	if info, ok := entities.DamageTiers[g.state.Tier()]; ok {
		text += " " + gotext.Get(info.RepairHint)
	}
	return text
}
