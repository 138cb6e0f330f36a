package world

// ItemSlot holds at most one item. Hands, generator cell bays and recycler
// charging bays are all slots.
type ItemSlot struct {
	Name string
	item *Item
}

// NewItemSlot creates an empty slot
func NewItemSlot(name string) *ItemSlot {
	return &ItemSlot{Name: name}
}

// Item returns the held item, or nil
func (s *ItemSlot) Item() *Item {
	return s.item
}

// IsEmpty returns true if nothing is in the slot
func (s *ItemSlot) IsEmpty() bool {
	return s.item == nil
}

// IsOccupied returns true if the slot holds an item
func (s *ItemSlot) IsOccupied() bool {
	return s.item != nil
}

// Put places item in an empty slot. Returns false if the slot is occupied.
func (s *ItemSlot) Put(item *Item) bool {
	if s.item != nil || item == nil {
		return false
	}
	s.item = item
	return true
}

// Take empties the slot and returns what was in it
func (s *ItemSlot) Take() *Item {
	item := s.item
	s.item = nil
	return item
}

// Transfer moves the item in from into to. Nothing changes unless from is
// occupied and to is empty.
func Transfer(from, to *ItemSlot) bool {
	if from == nil || to == nil || from == to {
		return false
	}
	if from.IsEmpty() || to.IsOccupied() {
		return false
	}
	to.item = from.item
	from.item = nil
	return true
}
