package world

// Intent is the performer's stance when using something
type Intent int

const (
	IntentHelp Intent = iota
	IntentHarm
)

// Interaction is one performer using their hand on a target
type Interaction struct {
	Performer string
	Target    any
	Hand      *ItemSlot
	Intent    Intent
}

// HandObject returns the item in the performer's hand, or nil
func (i Interaction) HandObject() *Item {
	if i.Hand == nil {
		return nil
	}
	return i.Hand.Item()
}

// Interactable is anything the performer can use their hand on
type Interactable interface {
	WillInteract(i Interaction) bool
	PerformInteraction(i Interaction)
}
