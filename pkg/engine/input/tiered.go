package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceTerminal
	DeviceScript // Commands replayed from a file or test
)

// Action represents a high‑level intent in the bay.
type Action int

const (
	ActionNone Action = iota

	// Hand
	ActionUse     // Use the held item (or empty hand) on the targeted device
	ActionHold    // Take an item from the belt or floor into the hand
	ActionStow    // Put the held item on the belt
	ActionDrop    // Drop the held item on the floor
	ActionLight   // Light or extinguish a held welding tool
	ActionExamine // Examine a device or item

	// Recycler
	ActionInsert
	ActionEject

	// Simulation
	ActionDamage  // Apply damage to the generator
	ActionWait    // Let time pass
	ActionDisable // Decommission the generator

	// Meta / UI
	ActionStatus
	ActionBindings
	ActionHint
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
	Args   []string
}

// Arg returns the n'th argument, or "" when there are fewer arguments
func (i Intent) Arg(n int) string {
	if n < 0 || n >= len(i.Args) {
		return ""
	}
	return i.Args[n]
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is the command line as typed.
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation: the line split into a
// lower‑cased command word and its arguments.
type DebouncedInput struct {
	Device Device
	Code   string
	Args   []string
}

// NewDebouncedInput normalises a raw command line
func NewDebouncedInput(raw RawInput) DebouncedInput {
	fields := strings.Fields(strings.ToLower(raw.Code))
	if len(fields) == 0 {
		return DebouncedInput{Device: raw.Device}
	}
	return DebouncedInput{
		Device: raw.Device,
		Code:   fields[0],
		Args:   fields[1:],
	}
}

// bindings maps command words to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"use":    ActionUse,
	"u":      ActionUse,
	"e":      ActionUse,
	"toggle": ActionUse,

	"hold": ActionHold,
	"take": ActionHold,
	"h":    ActionHold,

	"stow": ActionStow,
	"drop": ActionDrop,

	"light":  ActionLight,
	"ignite": ActionLight,
	"t":      ActionLight,

	"examine": ActionExamine,
	"look":    ActionExamine,
	"x":       ActionExamine,

	"insert": ActionInsert,
	"i":      ActionInsert,
	"eject":  ActionEject,
	"j":      ActionEject,

	"damage": ActionDamage,
	"hit":    ActionDamage,
	"d":      ActionDamage,

	"wait": ActionWait,
	"w":    ActionWait,
	"":     ActionWait, // Bare enter lets a second pass

	"disable": ActionDisable,

	"status": ActionStatus,
	"s":      ActionStatus,

	"bindings": ActionBindings,
	"keys":     ActionBindings,

	// Help / hint
	"?":    ActionHint,
	"hint": ActionHint,
	"help": ActionHint,

	// Quit
	"quit": ActionQuit,
	"q":    ActionQuit,
	"exit": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act, Args: ev.Args}
	}
	return Intent{Action: ActionNone, Args: ev.Args}
}

// Parse runs a command line through every layer
func Parse(device Device, line string) Intent {
	raw := RawInput{Device: device, Code: line, Timestamp: time.Now()}
	return MapToIntent(NewDebouncedInput(raw))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionUse:
		return "Use"
	case ActionHold:
		return "Hold"
	case ActionStow:
		return "Stow"
	case ActionDrop:
		return "Drop"
	case ActionLight:
		return "Light"
	case ActionExamine:
		return "Examine"
	case ActionInsert:
		return "Insert"
	case ActionEject:
		return "Eject"
	case ActionDamage:
		return "Damage"
	case ActionWait:
		return "Wait"
	case ActionDisable:
		return "Disable"
	case ActionStatus:
		return "Status"
	case ActionBindings:
		return "Bindings"
	case ActionHint:
		return "Hint"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// ParseAction looks an action up by its ActionName, ignoring case
func ParseAction(name string) (Action, bool) {
	for a := ActionUse; a <= ActionQuit; a++ {
		if strings.EqualFold(ActionName(a), name) {
			return a, true
		}
	}
	return ActionNone, false
}

// IsRebindable reports whether SetSingleBinding may move an action
func IsRebindable(a Action) bool {
	return a != ActionQuit && a != ActionHint && a != ActionBindings
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		if code == "" {
			continue
		}
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so the help doesn't shuffle.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		// Quit, hint and bindings always stay reachable
		if !IsRebindable(a) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" {
		if existing, ok := bindings[code]; ok && !IsRebindable(existing) {
			return
		}
		bindings[code] = action
	}
}
