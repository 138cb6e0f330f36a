// Package power implements the bay's generators: a damage/operation state
// machine with two interchangeable output models, fuel cell burn and ramp-up.
package power

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"

	"reactorbay/pkg/engine/action"
	"reactorbay/pkg/engine/scheduler"
	"reactorbay/pkg/engine/world"
	"reactorbay/pkg/game/entities"
	"reactorbay/pkg/game/log"
)

// Chat delivers feedback to whoever is using the generator
type Chat interface {
	Warning(performer, msg string)
	Examine(performer, msg string)
}

// Dropper takes items that have nowhere else to go
type Dropper interface {
	Drop(item *world.Item)
}

// Roller rolls the ramp profile's failure chance. *rand.Rand satisfies it.
type Roller interface {
	Intn(n int) int
}

// StateChange is sent to observers once per state mutation. Final is set on
// the notification sent by Disable.
type StateChange struct {
	Generator *Generator
	Old, New  State
	Final     bool
}

// Deps are the collaborators a generator is wired to
type Deps struct {
	Integrity *entities.Integrity
	Supply    *entities.PowerSupply
	Scheduler scheduler.Scheduler
	Actions   *action.Executor
	Chat      Chat
	Floor     Dropper
	Roller    Roller
}

// Generator is a power generator on the bay
type Generator struct {
	Name    string
	Profile Profile
	Slot    *world.ItemSlot // Fuel cell slot, nil for profiles without cells

	state           State
	cell            *entities.FuelCell
	powerGenPercent float64
	barOffset       float64
	disabled        bool

	integrity *entities.Integrity
	supply    *entities.PowerSupply
	sched     scheduler.Scheduler
	actions   *action.Executor
	chat      Chat
	floor     Dropper
	roller    Roller

	damageListener int
	updateHandle   scheduler.Handle
	repair         *action.Progress
	observers      []func(StateChange)
}

// NewGenerator creates a generator in the Off state. Call Spawn to bring it
// into the world.
func NewGenerator(name string, profile Profile, deps Deps) *Generator {
	if name == "" {
		name = profile.Name
	}
	g := &Generator{
		Name:      name,
		Profile:   profile,
		state:     Off,
		barOffset: profile.BarLength,
		integrity: deps.Integrity,
		supply:    deps.Supply,
		sched:     deps.Scheduler,
		actions:   deps.Actions,
		chat:      deps.Chat,
		floor:     deps.Floor,
		roller:    deps.Roller,
	}
	if g.integrity == nil {
		g.integrity = entities.NewIntegrity(100)
	}
	if g.supply == nil {
		g.supply = &entities.PowerSupply{}
	}
	if g.roller == nil {
		g.roller = rand.New(rand.NewSource(1))
	}
	if profile.UsesCells() {
		g.Slot = world.NewItemSlot(name + " cell slot")
	}
	return g
}

// Spawn puts the generator into its initial state. Damaged states remove the
// matching share of integrity first. startingCell, when given, is loaded into
// the cell slot before an On generator tries to start.
func (g *Generator) Spawn(initial State, startingCell *world.Item) {
	if startingCell != nil && g.Slot != nil && g.Slot.Put(startingCell) {
		g.updateCell()
	}

	switch {
	case initial.IsDamaged():
		g.integrity.ApplyDamage(entities.SpawnDamage(initial.Tier()) * g.integrity.Initial)
		g.setState(initial)
	case initial == On:
		g.TryToggleOn()
	}

	g.damageListener = g.integrity.OnDamage(g.onTakeDamage)
	log.Debug("generator spawned", "generator", g.Name, "state", g.state, "profile", g.Profile.Name)
}

// Disable forces the generator off, drops its subscriptions and sends a final
// notification so observers can tear down. A disabled generator never runs
// again and ignores interactions.
func (g *Generator) Disable() {
	if g.disabled {
		return
	}
	g.repair.Cancel()
	if g.state == On {
		g.ToggleOff()
	}
	g.integrity.RemoveListener(g.damageListener)
	g.damageListener = 0
	g.disabled = true
	g.notify(StateChange{Generator: g, Old: g.state, New: g.state, Final: true})
}

// Disabled reports whether Disable has been called
func (g *Generator) Disabled() bool {
	return g.disabled
}

// OnStateChanged subscribes fn to state notifications
func (g *Generator) OnStateChanged(fn func(StateChange)) {
	g.observers = append(g.observers, fn)
}

func (g *Generator) notify(c StateChange) {
	for _, fn := range g.observers {
		fn(c)
	}
}

func (g *Generator) setState(s State) {
	old := g.state
	if old == s {
		return
	}
	g.state = s
	log.Debug("generator state changed", "generator", g.Name, "from", old, "to", s)
	g.notify(StateChange{Generator: g, Old: old, New: s})
}

// onTakeDamage moves the generator to the most severe damage state the
// remaining integrity calls for. States never become less damaged here.
func (g *Generator) onTakeDamage() {
	tier := entities.TierForIntegrity(g.integrity.Percent())
	if tier <= g.state.Tier() {
		return
	}
	if g.state == On {
		g.ToggleOff()
	}
	g.setState(stateForTier(tier))
}

// TryToggleOn starts the generator if it is Off and has fuel
func (g *Generator) TryToggleOn() bool {
	if g.state != Off || g.disabled {
		return false
	}
	if g.Profile.UsesCells() && (g.cell == nil || g.cell.FuelPercent() <= 0) {
		return false
	}
	g.ToggleOn()
	return true
}

// ToggleOn starts the periodic update and connects the supply
func (g *Generator) ToggleOn() {
	if g.state == On || g.disabled {
		return
	}
	if g.Profile.UsesCells() {
		g.barOffset = g.Profile.BarLength * (100 - g.cellPercent()) / 100
	} else {
		g.barOffset = g.Profile.BarLength * g.powerGenPercent / 100
	}
	g.supply.ProducingWatts = g.output()
	g.updateHandle = g.sched.Add(g.Profile.TickInterval, g.update)
	g.supply.TurnOnSupply()
	g.setState(On)
}

// ToggleOff stops the periodic update and disconnects the supply. It does
// nothing unless the generator is On.
func (g *Generator) ToggleOff() {
	if g.state != On {
		return
	}
	g.sched.Remove(g.updateHandle)
	g.updateHandle = scheduler.NoHandle
	g.barOffset = g.Profile.BarLength
	g.powerGenPercent = 0
	g.supply.TurnOffSupply()
	g.setState(Off)
}

func (g *Generator) update() {
	if g.Profile.UsesCells() {
		g.burnCell()
	} else {
		g.ramp()
	}
}

func (g *Generator) burnCell() {
	if g.cell == nil || g.cell.FuelPercent() <= 0 {
		g.ToggleOff()
		return
	}
	g.cell.Consume(g.Profile.BurnRate * g.cell.FuelPercent() / 100)
	g.barOffset = g.Profile.BarLength * (100 - g.cell.FuelPercent()) / 100
	g.supply.ProducingWatts = g.output()
}

func (g *Generator) ramp() {
	g.barOffset = g.Profile.BarLength * g.powerGenPercent / 100
	if g.failed() {
		g.ToggleOff()
		return
	}
	if g.powerGenPercent < 100 {
		g.powerGenPercent = clamp(g.powerGenPercent+g.Profile.RampStep, 0, 100)
	}
	g.supply.ProducingWatts = g.output()
}

// failed rolls the ramp profile's breakdown chance, 1 in FailureScale times
// the remaining integrity fraction
func (g *Generator) failed() bool {
	bound := int(g.Profile.FailureScale * g.integrity.Percent())
	if bound <= 0 {
		return true
	}
	return g.roller.Intn(bound) == 0
}

// output is the wattage the current fuel or ramp level produces
func (g *Generator) output() float64 {
	if g.Profile.UsesCells() {
		return clamp(g.Profile.MaxWattage*2*g.cellPercent()/100, 0, g.Profile.MaxWattage)
	}
	return clamp(g.Profile.MaxWattage*g.powerGenPercent/100, 0, g.Profile.MaxWattage)
}

func (g *Generator) cellPercent() float64 {
	if g.cell == nil {
		return 0
	}
	return g.cell.FuelPercent()
}

// updateCell re-reads the fuel cell from the slot
func (g *Generator) updateCell() bool {
	g.cell = nil
	if g.Slot == nil || g.Slot.IsEmpty() {
		return false
	}
	cell, ok := world.Component[*entities.FuelCell](g.Slot.Item())
	if !ok {
		log.Error("fuel cell item has no fuel cell component", "generator", g.Name, "item", g.Slot.Item().Name)
		return false
	}
	g.cell = cell
	return true
}

// State returns the current state
func (g *Generator) State() State {
	return g.state
}

// Cell returns the loaded fuel cell, or nil
func (g *Generator) Cell() *entities.FuelCell {
	return g.cell
}

// Integrity returns the generator's integrity pool
func (g *Generator) Integrity() *entities.Integrity {
	return g.integrity
}

// Supply returns the power supply sink the generator writes into
func (g *Generator) Supply() *entities.PowerSupply {
	return g.supply
}

// ProducingWatts is the current output
func (g *Generator) ProducingWatts() float64 {
	return g.supply.ProducingWatts
}

// PowerGenPercent is the ramp profile's output level
func (g *Generator) PowerGenPercent() float64 {
	return g.powerGenPercent
}

// BarOffset is the power bar visual's current offset
func (g *Generator) BarOffset() float64 {
	return g.barOffset
}

// Running reports whether the periodic update is registered
func (g *Generator) Running() bool {
	return g.updateHandle != scheduler.NoHandle
}

// Repairing reports whether a repair is in progress
func (g *Generator) Repairing() bool {
	return g.repair != nil && !g.repair.Done()
}

// Info returns the generator's line on the bay power report
func (g *Generator) Info() entities.DeviceInfo {
	return entities.DeviceInfo{
		Name:     g.Name,
		Kind:     entities.DeviceSupply,
		Watts:    g.supply.ProducingWatts,
		IsActive: g.state == On,
		Status:   gotext.Get(stateDescriptions[g.state]),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
