package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/leonelquinteros/gotext"

	"reactorbay/pkg/game/entities"
	"reactorbay/pkg/game/power"
	"reactorbay/pkg/game/recycler"
)

// Icons shared by the console backends
const (
	IconBarFull    = "█"
	IconBarEmpty   = "░"
	IconSlotEmpty  = "○"
	IconSlotFull   = "●"
	IconGenOn      = "◆"
	IconGenOff     = "◇"
	IconGenDamaged = "✕"
	IconSound      = "♪"
	IconNoCell     = "·"
	IconWelderOff  = "-"
)

// cellGlyphs are indexed by a cell's sprite variant, full first
var cellGlyphs = []string{"█", "▇", "▆", "▄", "▂", "▁"}

// flameGlyphs are indexed by a lit welder's flame frame
var flameGlyphs = []string{"*", "+"}

// CellGlyph returns the console glyph for a cell sprite variant. Negative
// variants mean there is no cell.
func CellGlyph(variant int) string {
	if variant < 0 {
		return IconNoCell
	}
	return cellGlyphs[min(variant, len(cellGlyphs)-1)]
}

// WelderGlyph returns the flame glyph of a lit welder, or IconWelderOff
func WelderGlyph(w *entities.Welder) string {
	if w.SpriteVariant() == 0 {
		return IconWelderOff
	}
	return flameGlyphs[w.FlameFrame()%len(flameGlyphs)]
}

// FormatPowerWatts renders watts with a unit prefix. Compact drops the space
// and uses a single decimal.
func FormatPowerWatts(watts float64, compact bool) string {
	unit := "W"
	value := watts
	switch abs := math.Abs(watts); {
	case abs >= 1e6:
		value, unit = watts/1e6, "MW"
	case abs >= 1e3:
		value, unit = watts/1e3, "kW"
	}
	if unit == "W" {
		if compact {
			return fmt.Sprintf("%.0f%s", value, unit)
		}
		return fmt.Sprintf("%.0f %s", value, unit)
	}
	if compact {
		return fmt.Sprintf("%.1f%s", value, unit)
	}
	return fmt.Sprintf("%.2f %s", value, unit)
}

// Bar draws a width-wide gauge filled to fraction
func Bar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	fraction = math.Max(0, math.Min(1, fraction))
	filled := int(math.Round(fraction * float64(width)))
	return strings.Repeat(IconBarFull, filled) + strings.Repeat(IconBarEmpty, width-filled)
}

// GeneratorIcon returns the panel icon for a generator state
func GeneratorIcon(s power.State) string {
	switch {
	case s == power.On:
		return IconGenOn
	case s.IsDamaged():
		return IconGenDamaged
	default:
		return IconGenOff
	}
}

// GeneratorStyle returns the style a generator state is drawn in
func GeneratorStyle(s power.State) TextStyle {
	switch {
	case s == power.On:
		return StylePowered
	case s.IsDamaged():
		return StyleDamaged
	default:
		return StyleSubtle
	}
}

// IndicatorStyle returns the style for a recycler slot light
func IndicatorStyle(i recycler.Indicator) TextStyle {
	switch i {
	case recycler.Full:
		return StylePowered
	case recycler.Charging:
		return StyleWarning
	default:
		return StyleSubtle
	}
}

// StateLabel returns the translated short label for a generator state
func StateLabel(s power.State) string {
	switch s {
	case power.On:
		return gotext.Get("RUNNING")
	case power.Off:
		return gotext.Get("OFF")
	case power.PanelOff:
		return gotext.Get("PANEL OFF")
	case power.WireExposed:
		return gotext.Get("WIRES EXPOSED")
	case power.GlassBroken:
		return gotext.Get("GLASS BROKEN")
	default:
		return s.String()
	}
}
