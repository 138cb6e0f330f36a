package gameplay

import (
	"math/rand"

	"reactorbay/pkg/game/renderer"
	"reactorbay/pkg/game/state"
)

// ShowHint logs one of the bay's hints at random
func ShowHint(b *state.Bay) {
	if len(b.Hints) == 0 {
		logMessage(b, "No hints here.")
		return
	}
	idx := rand.Intn(len(b.Hints))
	logMessage(b, "%s", b.Hints[idx])
}

// ShowStatus logs the power report: one line per device and the balance
func ShowStatus(b *state.Bay) {
	for _, d := range b.Devices() {
		logMessage(b, "DEVICE{%s} [%s] %s, %s", d.Name, d.Kind, d.Status, renderer.FormatPowerWatts(d.Watts, false))
	}
	supply, draw := b.PowerBalance()
	logMessage(b, "Supply %s, draw %s, net %s",
		renderer.FormatPowerWatts(supply, false),
		renderer.FormatPowerWatts(draw, false),
		renderer.FormatPowerWatts(supply-draw, false))
}
