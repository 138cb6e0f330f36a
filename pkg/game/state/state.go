package state

import (
	"sort"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"reactorbay/pkg/engine/scheduler"
	"reactorbay/pkg/engine/world"
	"reactorbay/pkg/game/entities"
	"reactorbay/pkg/game/power"
	"reactorbay/pkg/game/presentation"
	"reactorbay/pkg/game/recycler"
)

// MessageKind tells the renderer how to colour a message
type MessageKind int

// Message kinds
const (
	MessageInfo MessageKind = iota
	MessageWarning
	MessageExamine
	MessageAction
)

// Message is one line in the message log
type Message struct {
	Kind MessageKind
	Text string
}

// Bay represents the state of the engineering bay session
type Bay struct {
	Player string

	Hand  *world.ItemSlot
	Belt  world.ItemSet // Tools and cells the player carries but isn't holding
	Floor world.ItemSet

	Generator     *power.Generator
	GeneratorView *presentation.GeneratorView
	Recycler      *recycler.Recycler
	Cues          *presentation.CueLog

	Scheduler *scheduler.Manager
	Realtime  bool // Time is driven by the wall clock instead of wait commands
	Quit      bool

	Hints    []string
	Messages []Message
}

// NewBay creates an empty bay for player. Devices are wired in by setup.
func NewBay(player string) *Bay {
	return &Bay{
		Player:   player,
		Hand:     world.NewItemSlot("hand"),
		Belt:     mapset.New[*world.Item](),
		Floor:    mapset.New[*world.Item](),
		Cues:     presentation.NewCueLog(),
		Messages: make([]Message, 0),
	}
}

// AddMessage adds a message to the bay's message log
func (b *Bay) AddMessage(kind MessageKind, msg string) {
	const maxMessages = 8
	if msg == "" {
		return
	}
	b.Messages = append(b.Messages, Message{Kind: kind, Text: msg})

	// Keep only the last maxMessages
	if len(b.Messages) > maxMessages {
		b.Messages = b.Messages[len(b.Messages)-maxMessages:]
	}
}

// AddHint adds a hint to the bay
func (b *Bay) AddHint(hint string) {
	b.Hints = append(b.Hints, hint)
}

// Warning shows a warning to the performer
func (b *Bay) Warning(performer, msg string) {
	if performer == b.Player {
		b.AddMessage(MessageWarning, msg)
	}
}

// Examine shows examine text to the performer
func (b *Bay) Examine(performer, msg string) {
	if performer == b.Player {
		b.AddMessage(MessageExamine, msg)
	}
}

// ActionMessage shows the first person text to the performer and the third
// person text to everyone else
func (b *Bay) ActionMessage(performer, firstPerson, thirdPerson string) {
	if performer == b.Player {
		b.AddMessage(MessageAction, firstPerson)
		return
	}
	b.AddMessage(MessageAction, thirdPerson)
}

// Drop puts an item on the bay floor
func (b *Bay) Drop(item *world.Item) {
	if item != nil {
		b.Floor.Put(item)
	}
}

// PickUpItem puts an item on the player's belt
func (b *Bay) PickUpItem(item *world.Item) {
	b.Belt.Put(item)
}

// Hold moves item from the belt or the floor into the hand. Whatever was held
// goes onto the belt.
func (b *Bay) Hold(item *world.Item) bool {
	if item == nil || b.Hand.Item() == item {
		return item != nil
	}
	if !b.Belt.Has(item) && !b.Floor.Has(item) {
		return false
	}
	b.Stow()
	b.Belt.Remove(item)
	b.Floor.Remove(item)
	return b.Hand.Put(item)
}

// Stow moves the held item onto the belt, emptying the hand
func (b *Bay) Stow() {
	if item := b.Hand.Take(); item != nil {
		b.Belt.Put(item)
	}
}

// FindItem looks up an item by name prefix in hand, on the belt or on the
// floor, in that order
func (b *Bay) FindItem(name string) *world.Item {
	name = strings.ToLower(name)
	if name == "" {
		return nil
	}
	if held := b.Hand.Item(); held != nil && strings.HasPrefix(strings.ToLower(held.Name), name) {
		return held
	}
	for _, set := range []world.ItemSet{b.Belt, b.Floor} {
		for _, item := range SortedItems(set) {
			if strings.HasPrefix(strings.ToLower(item.Name), name) {
				return item
			}
		}
	}
	return nil
}

// SortedItems returns the items of set ordered by name
func SortedItems(set world.ItemSet) []*world.Item {
	items := make([]*world.Item, 0, set.Size())
	set.Each(func(item *world.Item) {
		items = append(items, item)
	})
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}

// Devices returns every device's line on the power report
func (b *Bay) Devices() []entities.DeviceInfo {
	var devices []entities.DeviceInfo
	if b.Generator != nil {
		devices = append(devices, b.Generator.Info())
	}
	if b.Recycler != nil {
		devices = append(devices, b.Recycler.Info())
	}
	return devices
}

// PowerBalance returns total supply and total draw across the bay
func (b *Bay) PowerBalance() (supply, draw float64) {
	for _, d := range b.Devices() {
		switch d.Kind {
		case entities.DeviceSupply:
			supply += d.Watts
		case entities.DeviceConsumer:
			draw += d.Watts
		}
	}
	return supply, draw
}
