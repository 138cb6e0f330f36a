// Package gameplay applies player commands to the engineering bay.
package gameplay

import (
	"strconv"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"

	engineinput "reactorbay/pkg/engine/input"
	"reactorbay/pkg/engine/world"
	"reactorbay/pkg/game/entities"
	"reactorbay/pkg/game/renderer"
	"reactorbay/pkg/game/state"
)

// Defaults for commands given without arguments
const (
	DefaultWait   = time.Second
	DefaultDamage = 10.0
	MaxWait       = time.Hour
)

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(b *state.Bay, intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionNone:
		logMessage(b, "%s", gotext.Get("Unknown command. Type ACTION{?} for a hint."))
		return

	case engineinput.ActionQuit:
		b.Quit = true
		return

	case engineinput.ActionHint:
		ShowHint(b)
		return

	case engineinput.ActionStatus:
		ShowStatus(b)
		return

	case engineinput.ActionBindings:
		ShowBindings(b, intent.Args)
		return

	case engineinput.ActionUse:
		UseHand(b, strings.Join(intent.Args, " "))
		return

	case engineinput.ActionHold:
		HoldItem(b, strings.Join(intent.Args, " "))
		return

	case engineinput.ActionStow:
		if held := b.Hand.Item(); held != nil {
			b.Stow()
			logMessage(b, "You put the ITEM{%s} on your belt.", held.Name)
		}
		return

	case engineinput.ActionDrop:
		if held := b.Hand.Take(); held != nil {
			b.Drop(held)
			logMessage(b, "You drop the ITEM{%s}.", held.Name)
		}
		return

	case engineinput.ActionLight:
		LightWelder(b)
		return

	case engineinput.ActionExamine:
		ExamineTarget(b, strings.Join(intent.Args, " "))
		return

	case engineinput.ActionInsert:
		UseRecyclerSlot(b, intent.Arg(0), true)
		return

	case engineinput.ActionEject:
		UseRecyclerSlot(b, intent.Arg(0), false)
		return

	case engineinput.ActionDamage:
		DamageGenerator(b, intent.Arg(0))
		return

	case engineinput.ActionWait:
		Wait(b, intent.Arg(0))
		return

	case engineinput.ActionDisable:
		if b.Generator != nil {
			if b.Generator.Disabled() {
				logMessage(b, "The DEVICE{%s} is already decommissioned.", b.Generator.Name)
				return
			}
			b.Generator.Disable()
			logMessage(b, "DEVICE{%s} decommissioned.", b.Generator.Name)
		}
		return
	}

	logMessage(b, "%s", gotext.Get("Unknown command. Type ACTION{?} for a hint."))
}

// Wait lets time pass on the bay's scheduler. The argument is seconds or a Go
// duration ("500ms", "1m").
func Wait(b *state.Bay, arg string) {
	if b.Realtime {
		logMessage(b, "Time is running on its own.")
		return
	}
	d, ok := parseWait(arg)
	if !ok {
		logMessage(b, "Wait for how long? Try ACTION{wait} 5")
		return
	}
	b.Scheduler.Advance(d)
}

func parseWait(arg string) (time.Duration, bool) {
	if arg == "" {
		return DefaultWait, true
	}
	var d time.Duration
	if secs, err := strconv.ParseFloat(arg, 64); err == nil {
		d = time.Duration(secs * float64(time.Second))
	} else if parsed, err := time.ParseDuration(arg); err == nil {
		d = parsed
	} else {
		return 0, false
	}
	if d <= 0 {
		return 0, false
	}
	return min(d, MaxWait), true
}

// DamageGenerator hits the generator's casing. Without an amount a held
// welding tool strikes with its own hit damage.
func DamageGenerator(b *state.Bay, arg string) {
	if b.Generator == nil {
		return
	}
	if arg == "" {
		held := b.Hand.Item()
		if w, ok := world.Component[*entities.Welder](held); ok {
			b.Generator.Integrity().ApplyDamage(w.HitDamage())
			logMessage(b, "You hit the DEVICE{%s} with the ITEM{%s} for %.0f %s damage.", b.Generator.Name, held.Name, w.HitDamage(), strings.ToLower(w.DamageType()))
			return
		}
	}
	amount := DefaultDamage
	if arg != "" {
		parsed, err := strconv.ParseFloat(arg, 64)
		if err != nil || parsed <= 0 {
			logMessage(b, "Damage must be a positive number.")
			return
		}
		amount = parsed
	}
	b.Generator.Integrity().ApplyDamage(amount)
	logMessage(b, "The DEVICE{%s} takes %.0f damage.", b.Generator.Name, amount)
}

func logMessage(b *state.Bay, msg string, a ...any) {
	formatted := renderer.FormatText(msg, a...)
	b.AddMessage(state.MessageInfo, formatted)
}
