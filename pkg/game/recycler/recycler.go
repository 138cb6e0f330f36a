// Package recycler implements the two-slot fuel cell charging station.
package recycler

import (
	"time"

	"github.com/leonelquinteros/gotext"

	"reactorbay/pkg/engine/scheduler"
	"reactorbay/pkg/engine/world"
	"reactorbay/pkg/game/entities"
	"reactorbay/pkg/game/log"
)

// Indicator is the light above each charging slot
type Indicator int

const (
	Charging Indicator = iota
	Full
	Empty
)

func (i Indicator) String() string {
	switch i {
	case Charging:
		return "charging"
	case Full:
		return "full"
	default:
		return "empty"
	}
}

// Defaults
const (
	DefaultTick     = 2 * time.Second
	DefaultRecharge = 5.0
	DefaultDraw     = 800.0
)

// Chat delivers feedback to whoever is using the recycler
type Chat interface {
	Warning(performer, msg string)
}

// Slot is one charging bay
type Slot struct {
	*world.ItemSlot
	Indicator Indicator

	cell *entities.FuelCell
}

// Cell returns the fuel cell charging in the slot, or nil
func (s *Slot) Cell() *entities.FuelCell {
	return s.cell
}

// Settings tune the recycler's charging rate and cost
type Settings struct {
	Tick     time.Duration
	Recharge float64 // Cell units added per tick
	Draw     float64 // Watts drawn per slot still charging
}

// Recycler charges up to two fuel cells while it has power
type Recycler struct {
	Name        string
	Left, Right *Slot
	Settings    Settings

	powered   bool
	wattUsage float64
	handle    scheduler.Handle
	sched     scheduler.Scheduler
	chat      Chat
}

// New creates an unpowered recycler with both slots empty
func New(name string, settings Settings, sched scheduler.Scheduler, chat Chat) *Recycler {
	if settings.Tick <= 0 {
		settings.Tick = DefaultTick
	}
	if settings.Recharge <= 0 {
		settings.Recharge = DefaultRecharge
	}
	if settings.Draw <= 0 {
		settings.Draw = DefaultDraw
	}
	return &Recycler{
		Name:     name,
		Left:     &Slot{ItemSlot: world.NewItemSlot("left"), Indicator: Empty},
		Right:    &Slot{ItemSlot: world.NewItemSlot("right"), Indicator: Empty},
		Settings: settings,
		sched:    sched,
		chat:     chat,
	}
}

// SlotByName returns the left or right slot
func (r *Recycler) SlotByName(name string) (*Slot, bool) {
	switch name {
	case "left", "l":
		return r.Left, true
	case "right", "r":
		return r.Right, true
	}
	return nil, false
}

// SetPowered follows the area power state. Charging runs only while powered.
func (r *Recycler) SetPowered(on bool) {
	r.powered = on
	if on {
		r.subscribe()
	} else {
		r.unsubscribe()
	}
	r.update()
}

// Powered reports whether the recycler has power
func (r *Recycler) Powered() bool {
	return r.powered
}

func (r *Recycler) subscribe() {
	if r.handle != scheduler.NoHandle || !r.powered {
		return
	}
	r.handle = r.sched.Add(r.Settings.Tick, r.update)
}

func (r *Recycler) unsubscribe() {
	r.sched.Remove(r.handle)
	r.handle = scheduler.NoHandle
}

// Updating reports whether the periodic charge is registered
func (r *Recycler) Updating() bool {
	return r.handle != scheduler.NoHandle
}

// Insert moves a fuel cell from hand into slot
func (r *Recycler) Insert(slot *Slot, hand *world.ItemSlot, performer string) {
	if slot.IsOccupied() {
		r.chat.Warning(performer, gotext.Get("This slot is already occupied!"))
		return
	}
	item := hand.Item()
	cell, ok := world.Component[*entities.FuelCell](item)
	if !ok {
		log.Error("fuel cell item has no fuel cell component", "recycler", r.Name, "slot", slot.Name)
		return
	}
	if !world.Transfer(hand, slot.ItemSlot) {
		return
	}
	slot.cell = cell
	log.Debug("cell inserted", "recycler", r.Name, "slot", slot.Name, "fuel", cell.FuelPercent())
	r.update()
	r.subscribe()
}

// Eject returns the cell in slot to hand. Ejecting an empty slot does nothing.
func (r *Recycler) Eject(slot *Slot, hand *world.ItemSlot) {
	if slot.IsEmpty() {
		return
	}
	if !world.Transfer(slot.ItemSlot, hand) {
		return
	}
	slot.cell = nil
	if r.Left.IsEmpty() && r.Right.IsEmpty() {
		r.unsubscribe()
	}
	r.update()
}

// update charges each occupied slot and recomputes the power draw
func (r *Recycler) update() {
	wattage := 0.0
	for _, slot := range []*Slot{r.Left, r.Right} {
		if slot.cell == nil {
			slot.Indicator = Empty
			continue
		}
		if r.powered {
			slot.cell.Replenish(r.Settings.Recharge)
		}
		if slot.cell.IsFull() {
			slot.Indicator = Full
			continue
		}
		slot.Indicator = Charging
		if r.powered {
			wattage += r.Settings.Draw
		}
	}
	r.wattUsage = wattage
}

// WattUsage is the draw reported to the power network
func (r *Recycler) WattUsage() float64 {
	return r.wattUsage
}

// Loaded reports whether any slot holds a cell
func (r *Recycler) Loaded() bool {
	return r.Left.IsOccupied() || r.Right.IsOccupied()
}

// WillInteract accepts an empty hand or a fuel cell on either slot
func (r *Recycler) WillInteract(i world.Interaction) bool {
	if i.Intent == world.IntentHarm {
		return false
	}
	if i.Target != r.Left && i.Target != r.Right {
		return false
	}
	hand := i.HandObject()
	return hand == nil || world.HasTrait(hand, world.TraitFuelCell)
}

// PerformInteraction inserts the held cell into the targeted slot, or ejects
// the slot's cell when the hand is empty
func (r *Recycler) PerformInteraction(i world.Interaction) {
	slot, ok := i.Target.(*Slot)
	if !ok || (slot != r.Left && slot != r.Right) {
		return
	}
	if i.HandObject() != nil {
		r.Insert(slot, i.Hand, i.Performer)
		return
	}
	r.Eject(slot, i.Hand)
}

// Info returns the recycler's line on the bay power report
func (r *Recycler) Info() entities.DeviceInfo {
	status := gotext.Get("idle")
	if r.wattUsage > 0 {
		status = gotext.Get("charging")
	} else if !r.powered {
		status = gotext.Get("unpowered")
	}
	return entities.DeviceInfo{
		Name:     r.Name,
		Kind:     entities.DeviceConsumer,
		Watts:    r.wattUsage,
		IsActive: r.Updating(),
		Status:   status,
	}
}
