package state

import (
	"testing"

	"reactorbay/pkg/engine/world"
)

func TestAddMessage_KeepsLatest(t *testing.T) {
	b := NewBay("Ripley")
	for i := 0; i < 12; i++ {
		b.AddMessage(MessageInfo, string(rune('a'+i)))
	}
	b.AddMessage(MessageInfo, "")

	if len(b.Messages) != 8 {
		t.Fatalf("len(Messages) = %d, want 8", len(b.Messages))
	}
	if b.Messages[0].Text != "e" || b.Messages[7].Text != "l" {
		t.Errorf("Messages = %+v", b.Messages)
	}
}

func TestChat_RoutesByPerformer(t *testing.T) {
	b := NewBay("Ripley")
	b.ActionMessage("Ripley", "You weld.", "Ripley welds.")
	b.ActionMessage("Hicks", "You weld.", "Hicks welds.")
	b.Warning("Hicks", "not for Ripley")
	b.Examine("Ripley", "A fusion cell.")

	want := []Message{
		{MessageAction, "You weld."},
		{MessageAction, "Hicks welds."},
		{MessageExamine, "A fusion cell."},
	}
	if len(b.Messages) != len(want) {
		t.Fatalf("Messages = %+v, want %+v", b.Messages, want)
	}
	for i := range want {
		if b.Messages[i] != want[i] {
			t.Errorf("Messages[%d] = %+v, want %+v", i, b.Messages[i], want[i])
		}
	}
}

func TestHoldAndStow(t *testing.T) {
	b := NewBay("Ripley")
	wrench := world.NewItem("wrench", world.TraitWrench)
	crowbar := world.NewItem("crowbar", world.TraitCrowbar)
	b.PickUpItem(wrench)
	b.Drop(crowbar)

	if !b.Hold(wrench) || b.Hand.Item() != wrench || b.Belt.Has(wrench) {
		t.Fatal("wrench not moved into hand")
	}
	if !b.Hold(crowbar) || b.Hand.Item() != crowbar || !b.Belt.Has(wrench) || b.Floor.Has(crowbar) {
		t.Fatal("crowbar not picked up from floor")
	}
	if b.Hold(world.NewItem("ghost")) {
		t.Error("held an item the player does not have")
	}

	b.Stow()
	if b.Hand.IsOccupied() || !b.Belt.Has(crowbar) {
		t.Error("Stow did not move the crowbar to the belt")
	}
}

func TestFindItem(t *testing.T) {
	b := NewBay("Ripley")
	cutters := world.NewItem("wirecutters", world.TraitWirecutter)
	welder := world.NewItem("welding tool", world.TraitWelder)
	cell := world.NewItem("fusion cell", world.TraitFuelCell)
	b.PickUpItem(cutters)
	b.PickUpItem(welder)
	b.Drop(cell)

	tests := []struct {
		query string
		want  *world.Item
	}{
		{"wire", cutters},
		{"WELD", welder},
		{"fusion", cell},
		{"wrench", nil},
		{"", nil},
	}
	for _, tt := range tests {
		if got := b.FindItem(tt.query); got != tt.want {
			t.Errorf("FindItem(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}
