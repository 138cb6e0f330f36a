package gameplay

import (
	"strings"

	"reactorbay/pkg/engine/world"
	"reactorbay/pkg/game/entities"
	"reactorbay/pkg/game/recycler"
	"reactorbay/pkg/game/state"
)

// interaction builds the player's interaction with target
func interaction(b *state.Bay, target any) world.Interaction {
	return world.Interaction{
		Performer: b.Player,
		Target:    target,
		Hand:      b.Hand,
		Intent:    world.IntentHelp,
	}
}

// UseHand uses whatever the player holds on the named device. No name means
// the generator.
func UseHand(b *state.Bay, target string) {
	var device world.Interactable
	var on any

	switch {
	case target == "" || isGeneratorName(target):
		if b.Generator == nil {
			return
		}
		device, on = b.Generator, b.Generator
	default:
		name := strings.TrimPrefix(target, "recycler ")
		slot, ok := b.Recycler.SlotByName(name)
		if !ok {
			logMessage(b, "There is no %s here.", target)
			return
		}
		device, on = b.Recycler, slot
	}

	i := interaction(b, on)
	if !device.WillInteract(i) {
		logMessage(b, "%s", nothingHappens(b))
		return
	}
	device.PerformInteraction(i)
}

// UseRecyclerSlot inserts the held cell into, or ejects the cell from, the
// named recycler slot
func UseRecyclerSlot(b *state.Bay, slotName string, insert bool) {
	if b.Recycler == nil {
		return
	}
	slot, ok := b.Recycler.SlotByName(slotName)
	if !ok {
		logMessage(b, "Which slot? ACTION{left} or ACTION{right}.")
		return
	}

	if insert {
		if b.Hand.IsEmpty() {
			logMessage(b, "You are not holding anything.")
			return
		}
		i := interaction(b, slot)
		if !b.Recycler.WillInteract(i) {
			logMessage(b, "%s", nothingHappens(b))
			return
		}
		b.Recycler.Insert(slot, b.Hand, b.Player)
		return
	}

	if b.Hand.IsOccupied() {
		b.Stow()
	}
	if cell := slot.Item(); cell != nil {
		b.Recycler.Eject(slot, b.Hand)
		logMessage(b, "You take the ITEM{%s} out of the recycler.", cell.Name)
	}
}

// HoldItem takes the named item into the hand
func HoldItem(b *state.Bay, name string) {
	item := b.FindItem(name)
	if item == nil {
		logMessage(b, "You don't have anything called %q.", name)
		return
	}
	if b.Hold(item) {
		logMessage(b, "You hold the ITEM{%s}.", item.Name)
	}
}

// LightWelder toggles a held welding tool
func LightWelder(b *state.Bay) {
	held := b.Hand.Item()
	w, ok := world.Component[*entities.Welder](held)
	if !ok {
		logMessage(b, "You are not holding a welding tool.")
		return
	}
	w.Toggle()
	if w.IsOn() {
		logMessage(b, "The ITEM{%s} flares to life.", held.Name)
	} else if w.Fuel <= 0 {
		logMessage(b, "The ITEM{%s} is out of fuel.", held.Name)
	} else {
		logMessage(b, "You extinguish the ITEM{%s}.", held.Name)
	}
}

// ExamineTarget shows the examine text of a device or an item
func ExamineTarget(b *state.Bay, target string) {
	switch {
	case target == "" || isGeneratorName(target):
		if b.Generator != nil {
			b.Examine(b.Player, b.Generator.Examine())
		}
		return
	case strings.HasPrefix(target, "recycler"):
		if b.Recycler != nil {
			b.Examine(b.Player, describeRecycler(b.Recycler))
		}
		return
	}

	if target == "hand" {
		target = ""
		if held := b.Hand.Item(); held != nil {
			target = held.Name
		}
	}
	item := b.FindItem(target)
	if item == nil {
		logMessage(b, "You don't see that here.")
		return
	}
	b.Examine(b.Player, examineItem(item))
}

func examineItem(item *world.Item) string {
	if cell, ok := world.Component[*entities.FuelCell](item); ok {
		return cell.Examine()
	}
	if w, ok := world.Component[*entities.Welder](item); ok {
		return w.Examine()
	}
	return "A " + item.Name + "."
}

func describeRecycler(r *recycler.Recycler) string {
	parts := []string{}
	for _, slot := range []*recycler.Slot{r.Left, r.Right} {
		desc := slot.Name + ": " + slot.Indicator.String()
		if cell := slot.Cell(); cell != nil {
			desc += ", " + cell.Examine()
		}
		parts = append(parts, desc)
	}
	return strings.Join(parts, " ")
}

func isGeneratorName(name string) bool {
	switch name {
	case "generator", "gen", "reactor":
		return true
	}
	return false
}

func nothingHappens(b *state.Bay) string {
	if held := b.Hand.Item(); held != nil {
		return "You can't use the " + held.Name + " on that right now."
	}
	return "Nothing happens."
}
