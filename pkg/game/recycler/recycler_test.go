package recycler

import (
	"testing"
	"time"

	"reactorbay/pkg/engine/scheduler"
	"reactorbay/pkg/engine/world"
	"reactorbay/pkg/game/entities"
)

type warnings []string

func (w *warnings) Warning(_, msg string) {
	*w = append(*w, msg)
}

func newRecycler(t *testing.T) (*Recycler, *scheduler.Manager, *warnings) {
	t.Helper()
	sched := scheduler.New()
	chat := &warnings{}
	return New("Recycler", Settings{}, sched, chat), sched, chat
}

func cellItem(current float64) (*world.Item, *entities.FuelCell) {
	cell := entities.NewFuelCell(9000)
	cell.Current = current
	return entities.NewFuelCellItem("fusion cell", cell), cell
}

func hand(item *world.Item) *world.ItemSlot {
	h := world.NewItemSlot("hand")
	h.Put(item)
	return h
}

func TestInsert_ChargesWhilePowered(t *testing.T) {
	r, sched, _ := newRecycler(t)
	r.SetPowered(true)
	item, cell := cellItem(8000)

	r.Insert(r.Left, hand(item), "Ripley")

	if got := cell.Current; got != 8005 {
		t.Errorf("Current after insert = %v, want 8005", got)
	}
	if r.Left.Indicator != Charging || r.Right.Indicator != Empty {
		t.Errorf("indicators = %v/%v, want charging/empty", r.Left.Indicator, r.Right.Indicator)
	}
	if got := r.WattUsage(); got != 800 {
		t.Errorf("WattUsage() = %v, want 800", got)
	}

	sched.Advance(4 * time.Second)
	if got := cell.Current; got != 8015 {
		t.Errorf("Current after two ticks = %v, want 8015", got)
	}
}

func TestInsert_FullCellDrawsNothing(t *testing.T) {
	r, _, _ := newRecycler(t)
	r.SetPowered(true)
	full, _ := cellItem(9000)
	low, _ := cellItem(100)

	r.Insert(r.Left, hand(full), "Ripley")
	r.Insert(r.Right, hand(low), "Ripley")

	if r.Left.Indicator != Full || r.Right.Indicator != Charging {
		t.Errorf("indicators = %v/%v, want full/charging", r.Left.Indicator, r.Right.Indicator)
	}
	if got := r.WattUsage(); got != 800 {
		t.Errorf("WattUsage() = %v, want 800", got)
	}
}

func TestInsert_OccupiedSlotWarns(t *testing.T) {
	r, _, chat := newRecycler(t)
	first, _ := cellItem(100)
	second, _ := cellItem(100)
	r.Insert(r.Left, hand(first), "Ripley")

	h := hand(second)
	r.Insert(r.Left, h, "Ripley")

	if len(*chat) != 1 || (*chat)[0] != "This slot is already occupied!" {
		t.Errorf("warnings = %v", *chat)
	}
	if h.Item() != second || r.Left.Item() != first {
		t.Error("occupied insert moved items")
	}
}

func TestInsert_WithoutComponentIsNoop(t *testing.T) {
	r, _, chat := newRecycler(t)
	h := hand(world.NewItem("painted rock", world.TraitFuelCell))

	r.Insert(r.Left, h, "Ripley")

	if r.Left.IsOccupied() || h.IsEmpty() || len(*chat) != 0 {
		t.Error("item without a fuel cell component was accepted")
	}
}

func TestUnpowered_DoesNotCharge(t *testing.T) {
	r, sched, _ := newRecycler(t)
	item, cell := cellItem(100)
	r.Insert(r.Left, hand(item), "Ripley")

	sched.Advance(10 * time.Second)

	if cell.Current != 100 || r.WattUsage() != 0 || r.Updating() {
		t.Errorf("unpowered recycler charged: current=%v watts=%v updating=%v", cell.Current, r.WattUsage(), r.Updating())
	}

	r.SetPowered(true)
	if cell.Current != 105 || !r.Updating() {
		t.Errorf("powering on: current=%v updating=%v", cell.Current, r.Updating())
	}

	r.SetPowered(false)
	if r.Updating() || sched.Len() != 0 {
		t.Error("subscription kept after power loss")
	}
}

func TestEject(t *testing.T) {
	r, sched, _ := newRecycler(t)
	r.SetPowered(true)
	item, _ := cellItem(100)
	r.Insert(r.Right, hand(item), "Ripley")

	h := world.NewItemSlot("hand")
	r.Eject(r.Right, h)

	if h.Item() != item || r.Right.IsOccupied() || r.Right.Cell() != nil {
		t.Error("cell not returned to hand")
	}
	if r.Right.Indicator != Empty || r.WattUsage() != 0 {
		t.Errorf("indicator=%v watts=%v after eject", r.Right.Indicator, r.WattUsage())
	}
	if r.Updating() || sched.Len() != 0 {
		t.Error("subscription kept with both slots empty")
	}

	r.Eject(r.Right, h) // empty slot
	if h.Item() != item {
		t.Error("ejecting an empty slot changed the hand")
	}
}

func TestInteraction(t *testing.T) {
	r, _, _ := newRecycler(t)
	item, _ := cellItem(100)
	h := hand(item)
	i := world.Interaction{Performer: "Ripley", Target: r.Left, Hand: h}

	if !r.WillInteract(i) {
		t.Fatal("WillInteract() = false with a cell")
	}
	r.PerformInteraction(i)
	if r.Left.Item() != item {
		t.Fatal("cell not inserted")
	}
	if !r.WillInteract(i) {
		t.Fatal("WillInteract() = false with an empty hand")
	}
	r.PerformInteraction(i)
	if h.Item() != item {
		t.Error("cell not ejected")
	}

	i.Intent = world.IntentHarm
	if r.WillInteract(i) {
		t.Error("WillInteract() = true with harm intent")
	}
	i.Intent = world.IntentHelp
	h.Take()
	h.Put(world.NewItem("wrench", world.TraitWrench))
	if r.WillInteract(i) {
		t.Error("WillInteract() = true with a wrench")
	}
}
