package entities

import (
	"github.com/leonelquinteros/gotext"

	"reactorbay/pkg/engine/world"
)

// DefaultCellCapacity is the fuel held by a freshly printed fusion cell
const DefaultCellCapacity = 9000

// FuelCell is a bounded fuel store. Current never leaves [0, Capacity].
type FuelCell struct {
	Capacity float64
	Current  float64
}

// NewFuelCell creates a full cell with the given capacity
func NewFuelCell(capacity float64) *FuelCell {
	if capacity <= 0 {
		capacity = DefaultCellCapacity
	}
	return &FuelCell{Capacity: capacity, Current: capacity}
}

// NewFuelCellItem wraps a cell in a holdable item
func NewFuelCellItem(name string, cell *FuelCell) *world.Item {
	return world.NewItem(name, world.TraitFuelCell).AddComponent(cell)
}

// FuelPercent returns the remaining fuel as a percentage of capacity
func (c *FuelCell) FuelPercent() float64 {
	return c.Current / c.Capacity * 100
}

// IsEmpty returns true when no fuel is left
func (c *FuelCell) IsEmpty() bool {
	return c.Current <= 0
}

// IsFull returns true when the cell is at capacity
func (c *FuelCell) IsFull() bool {
	return c.Current >= c.Capacity
}

// Consume removes fuel, stopping at zero. Returns the amount actually removed.
func (c *FuelCell) Consume(amount float64) float64 {
	before := c.Current
	c.Current = clamp(c.Current-amount, 0, c.Capacity)
	return before - c.Current
}

// Replenish adds fuel, stopping at capacity. Returns the amount actually added.
func (c *FuelCell) Replenish(amount float64) float64 {
	before := c.Current
	c.Current = clamp(c.Current+amount, 0, c.Capacity)
	return c.Current - before
}

// SpriteVariant maps fuel level onto one of variants+1 sprites, 0 being full
func (c *FuelCell) SpriteVariant(variants int) int {
	return variants - int(c.FuelPercent()/100*float64(variants))
}

// Examine returns the cell's examine text
func (c *FuelCell) Examine() string {
	return gotext.Get("%.2f%% capacity remaining.", c.FuelPercent())
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
