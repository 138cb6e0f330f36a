package world

import (
	"github.com/zyedidia/generic/mapset"
)

// ItemSet is a set of items
type ItemSet = mapset.Set[*Item]

// Trait tags an item for tool classification (wrench, crowbar, ...)
type Trait string

// Traits checked by engineering devices
const (
	TraitWrench     Trait = "Wrench"
	TraitWirecutter Trait = "Wirecutter"
	TraitCrowbar    Trait = "Crowbar"
	TraitWelder     Trait = "Welder"
	TraitFuelCell   Trait = "FuelCell"
)

// Item represents a holdable item in the world. Behaviour beyond its traits is
// attached as components (a fuel cell, a welding tool).
type Item struct {
	Name       string
	Traits     mapset.Set[Trait]
	components []any
}

// NewItem creates a new item with the given name and traits
func NewItem(name string, traits ...Trait) *Item {
	item := &Item{
		Name:   name,
		Traits: mapset.New[Trait](),
	}
	for _, t := range traits {
		item.Traits.Put(t)
	}
	return item
}

// AddComponent attaches a behaviour component to the item
func (i *Item) AddComponent(c any) *Item {
	i.components = append(i.components, c)
	return i
}

// HasTrait reports whether item carries trait. A nil item (empty hand) has no traits.
func HasTrait(item *Item, trait Trait) bool {
	if item == nil {
		return false
	}
	return item.Traits.Has(trait)
}

// Component returns the first component of type T attached to item.
func Component[T any](item *Item) (T, bool) {
	var zero T
	if item == nil {
		return zero, false
	}
	for _, c := range item.components {
		if typed, ok := c.(T); ok {
			return typed, true
		}
	}
	return zero, false
}
