package entities

import (
	"time"

	"github.com/leonelquinteros/gotext"

	"reactorbay/pkg/engine/scheduler"
	"reactorbay/pkg/engine/world"
)

// Welding tools burn fuel on a fixed cadence while lit
const (
	WelderBurnInterval = 100 * time.Millisecond
	WelderBurnPerTick  = 0.005
)

// WelderProfile describes one member of the welding tool family
type WelderProfile struct {
	Name         string
	HitDamageOn  float64
	HitDamageOff float64
	FlameFrames  int // Animated flame frames while lit; 0 means a static on/off sprite
}

// Welding tool profiles
var (
	WelderToolProfile = WelderProfile{Name: "Welding Tool", HitDamageOn: 15, HitDamageOff: 5, FlameFrames: 2}
	BlowTorchProfile  = WelderProfile{Name: "Blowtorch", HitDamageOn: 12, HitDamageOff: 4}
)

// WelderProfiles maps configured tool names onto profiles
var WelderProfiles = map[string]WelderProfile{
	"welder":    WelderToolProfile,
	"blowtorch": BlowTorchProfile,
}

// Welder is a fuel-burning tool. It turns itself off when its fuel runs dry.
type Welder struct {
	Profile WelderProfile
	Fuel    float64

	on         bool
	flameFrame int
	sched      scheduler.Scheduler
	burnHandle scheduler.Handle

	offListeners map[int]func()
	nextID       int
}

// NewWelder creates an unlit welder holding fuel units
func NewWelder(profile WelderProfile, fuel float64) *Welder {
	return &Welder{
		Profile:      profile,
		Fuel:         max(0, fuel),
		offListeners: make(map[int]func()),
	}
}

// NewWelderItem wraps a welder in a holdable item
func NewWelderItem(name string, w *Welder) *world.Item {
	return world.NewItem(name, world.TraitWelder).AddComponent(w)
}

// IsLitWelder reports whether item is a welding tool that is currently burning
func IsLitWelder(item *world.Item) bool {
	if !world.HasTrait(item, world.TraitWelder) {
		return false
	}
	w, ok := world.Component[*Welder](item)
	return ok && w.IsOn()
}

// Attach gives the welder the scheduler that drives its burn loop
func (w *Welder) Attach(s scheduler.Scheduler) {
	w.sched = s
}

// IsOn returns whether the welder is lit
func (w *Welder) IsOn() bool {
	return w.on
}

// Toggle lights or extinguishes the welder
func (w *Welder) Toggle() {
	w.setOn(!w.on)
}

// Empty spills the fuel reservoir, extinguishing the flame
func (w *Welder) Empty() {
	w.Fuel = 0
	w.setOn(false)
}

// OnOff subscribes fn to every time the welder is turned off, for any reason
func (w *Welder) OnOff(fn func()) int {
	if w.offListeners == nil {
		w.offListeners = make(map[int]func())
	}
	w.nextID++
	w.offListeners[w.nextID] = fn
	return w.nextID
}

// RemoveOffListener unsubscribes an OnOff listener
func (w *Welder) RemoveOffListener(id int) {
	delete(w.offListeners, id)
}

func (w *Welder) setOn(on bool) {
	if w.Fuel <= 0 {
		on = false
	}
	wasOn := w.on
	w.on = on

	if on {
		if w.sched != nil && w.burnHandle == scheduler.NoHandle {
			w.burnHandle = w.sched.Add(WelderBurnInterval, w.burn)
		}
		return
	}

	if w.sched != nil && w.burnHandle != scheduler.NoHandle {
		w.sched.Remove(w.burnHandle)
	}
	w.burnHandle = scheduler.NoHandle
	w.flameFrame = 0
	if !wasOn {
		return
	}
	for _, fn := range w.offListeners {
		fn()
	}
}

func (w *Welder) burn() {
	if !w.on {
		return
	}
	if w.Profile.FlameFrames > 0 {
		w.flameFrame = (w.flameFrame + 1) % w.Profile.FlameFrames
	}
	w.Fuel = max(0, w.Fuel-WelderBurnPerTick)
	if w.Fuel <= 0 {
		w.setOn(false)
	}
}

// HitDamage returns the damage dealt when swung, which depends on the flame
func (w *Welder) HitDamage() float64 {
	if w.on {
		return w.Profile.HitDamageOn
	}
	return w.Profile.HitDamageOff
}

// DamageType returns "Burn" while lit, "Brute" otherwise
func (w *Welder) DamageType() string {
	if w.on {
		return "Burn"
	}
	return "Brute"
}

// SpriteVariant returns 1 while lit and 0 while off
func (w *Welder) SpriteVariant() int {
	if w.on {
		return 1
	}
	return 0
}

// FlameFrame returns the current flame animation frame
func (w *Welder) FlameFrame() int {
	return w.flameFrame
}

// Examine returns the welder's examine text
func (w *Welder) Examine() string {
	if w.on {
		return gotext.Get("The %s is lit. Fuel: %.2f", w.Profile.Name, w.Fuel)
	}
	return gotext.Get("The %s is off. Fuel: %.2f", w.Profile.Name, w.Fuel)
}
