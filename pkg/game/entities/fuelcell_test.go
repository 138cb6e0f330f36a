package entities

import (
	"math/rand"
	"testing"

	"reactorbay/pkg/engine/world"
)

func TestFuelCell_ConsumeSaturates(t *testing.T) {
	c := NewFuelCell(100)

	if got := c.Consume(30); got != 30 {
		t.Errorf("Consume(30) = %v, want 30", got)
	}
	if got := c.Consume(500); got != 70 {
		t.Errorf("Consume(500) = %v, want 70", got)
	}
	if c.Current != 0 || !c.IsEmpty() {
		t.Errorf("Current = %v, want 0", c.Current)
	}
}

func TestFuelCell_ReplenishSaturates(t *testing.T) {
	c := &FuelCell{Capacity: 100, Current: 98}

	if got := c.Replenish(5); got != 2 {
		t.Errorf("Replenish(5) = %v, want 2", got)
	}
	if !c.IsFull() {
		t.Errorf("Current = %v, want full", c.Current)
	}
}

func TestFuelCell_NegativeAmountsStayBounded(t *testing.T) {
	c := &FuelCell{Capacity: 100, Current: 99}
	c.Consume(-50)
	if c.Current != 100 {
		t.Errorf("Consume(-50) Current = %v, want 100", c.Current)
	}
	c.Replenish(-500)
	if c.Current != 0 {
		t.Errorf("Replenish(-500) Current = %v, want 0", c.Current)
	}
}

func TestFuelCell_RandomSequenceStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := NewFuelCell(9000)

	for i := 0; i < 10000; i++ {
		amount := rng.Float64()*4000 - 1000
		if rng.Intn(2) == 0 {
			c.Consume(amount)
		} else {
			c.Replenish(amount)
		}
		if c.Current < 0 || c.Current > c.Capacity {
			t.Fatalf("step %d: Current = %v outside [0, %v]", i, c.Current, c.Capacity)
		}
	}
}

func TestFuelCell_FuelPercent(t *testing.T) {
	c := &FuelCell{Capacity: 9000, Current: 4500}
	if got := c.FuelPercent(); got != 50 {
		t.Errorf("FuelPercent() = %v, want 50", got)
	}
}

func TestFuelCell_SpriteVariant(t *testing.T) {
	tests := []struct {
		current float64
		want    int
	}{
		{100, 0},
		{50, 2},
		{0, 4},
	}
	for _, tt := range tests {
		c := &FuelCell{Capacity: 100, Current: tt.current}
		if got := c.SpriteVariant(4); got != tt.want {
			t.Errorf("SpriteVariant(4) at %v = %d, want %d", tt.current, got, tt.want)
		}
	}
}

func TestNewFuelCell_DefaultsCapacity(t *testing.T) {
	c := NewFuelCell(0)
	if c.Capacity != DefaultCellCapacity || c.Current != DefaultCellCapacity {
		t.Errorf("NewFuelCell(0) = %+v, want full default cell", c)
	}
}

func TestNewFuelCellItem(t *testing.T) {
	c := NewFuelCell(100)
	item := NewFuelCellItem("Fusion Cell", c)

	if !world.HasTrait(item, world.TraitFuelCell) {
		t.Error("fuel cell item missing FuelCell trait")
	}
	got, ok := world.Component[*FuelCell](item)
	if !ok || got != c {
		t.Errorf("Component[*FuelCell] = %v, %v", got, ok)
	}
}

func TestFuelCell_Examine(t *testing.T) {
	c := &FuelCell{Capacity: 200, Current: 50}
	if got, want := c.Examine(), "25.00% capacity remaining."; got != want {
		t.Errorf("Examine() = %q, want %q", got, want)
	}
}
