package entities

import (
	g "github.com/zyedidia/generic"
	"github.com/zyedidia/generic/avl"
)

// DamageListener is notified after integrity drops
type DamageListener func()

// Integrity tracks how much structural health a device has left
type Integrity struct {
	Initial float64
	Current float64

	listeners *avl.Tree[int, DamageListener] // keyed by subscription id
	nextID    int
}

// NewIntegrity creates a fully intact integrity pool
func NewIntegrity(initial float64) *Integrity {
	return &Integrity{
		Initial:   initial,
		Current:   initial,
		listeners: avl.New[int, DamageListener](g.Less[int]),
	}
}

// Percent returns the remaining integrity as a fraction of Initial, in [0, 1]
func (i *Integrity) Percent() float64 {
	if i.Initial <= 0 {
		return 0
	}
	return i.Current / i.Initial
}

// ApplyDamage removes integrity (never below zero) and notifies listeners
func (i *Integrity) ApplyDamage(amount float64) {
	if amount <= 0 {
		return
	}
	i.Current = clamp(i.Current-amount, 0, i.Initial)
	if i.listeners == nil {
		return
	}

	// Listeners may unsubscribe while being notified
	var ids []int
	i.listeners.Each(func(id int, _ DamageListener) {
		ids = append(ids, id)
	})
	for _, id := range ids {
		if fn, ok := i.listeners.Get(id); ok {
			fn()
		}
	}
}

// Restore adds integrity back, never above Initial
func (i *Integrity) Restore(amount float64) {
	i.Current = clamp(i.Current+amount, 0, i.Initial)
}

// OnDamage subscribes fn and returns an id for RemoveListener
func (i *Integrity) OnDamage(fn DamageListener) int {
	if i.listeners == nil {
		i.listeners = avl.New[int, DamageListener](g.Less[int])
	}
	i.nextID++
	i.listeners.Put(i.nextID, fn)
	return i.nextID
}

// RemoveListener unsubscribes a listener; unknown ids are ignored
func (i *Integrity) RemoveListener(id int) {
	if i.listeners == nil {
		return
	}
	i.listeners.Remove(id)
}
