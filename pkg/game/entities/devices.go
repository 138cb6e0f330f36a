package entities

// DeviceKind classifies a device on the bay's power ledger
type DeviceKind string

const (
	DeviceSupply   DeviceKind = "Supply"   // Feeds watts into the grid
	DeviceConsumer DeviceKind = "Consumer" // Draws watts from the grid
)

// DeviceInfo represents a device's line on the bay power report
type DeviceInfo struct {
	Name     string
	Kind     DeviceKind
	Watts    float64 // Producing watts for supplies, usage for consumers
	IsActive bool    // Whether the device is currently running
	Status   string  // Short human readable state
}

// PowerSupply is the sink a generator writes its output into. The power
// distribution network reads ProducingWatts.
type PowerSupply struct {
	ProducingWatts float64
	Supplying      bool
}

// TurnOnSupply connects the supply to the grid
func (p *PowerSupply) TurnOnSupply() {
	p.Supplying = true
}

// TurnOffSupply disconnects the supply and zeroes its output
func (p *PowerSupply) TurnOffSupply() {
	p.Supplying = false
	p.ProducingWatts = 0
}
