// Package presentation turns device state into what players see and hear:
// sprite indices, the generator power bar and its sound loop.
package presentation

import (
	"github.com/google/uuid"

	"reactorbay/pkg/game/log"
	"reactorbay/pkg/game/power"
	"reactorbay/pkg/game/recycler"
)

// CellSpriteVariants is the number of fuel level sprites a cell has, besides
// the full one
const CellSpriteVariants = 5

// Cue is one sound instruction. A cue with Stop set ends the loop it names.
type Cue struct {
	Loop  uuid.UUID // Nil for one-shot sounds
	Sound string
	Stop  bool
}

// Mixer plays sound cues
type Mixer interface {
	Cue(c Cue)
}

// CueLog is a Mixer that remembers what was played, for the console frame
type CueLog struct {
	cues    []Cue
	playing map[uuid.UUID]string
}

// NewCueLog creates an empty cue log
func NewCueLog() *CueLog {
	return &CueLog{playing: make(map[uuid.UUID]string)}
}

func (l *CueLog) Cue(c Cue) {
	l.cues = append(l.cues, c)
	if c.Loop == uuid.Nil {
		return
	}
	if c.Stop {
		delete(l.playing, c.Loop)
	} else {
		l.playing[c.Loop] = c.Sound
	}
}

// Recent returns up to n of the latest cues, oldest first
func (l *CueLog) Recent(n int) []Cue {
	if n >= len(l.cues) {
		return l.cues
	}
	return l.cues[len(l.cues)-n:]
}

// Playing returns the loops still running
func (l *CueLog) Playing() map[uuid.UUID]string {
	return l.playing
}

// GeneratorView follows a generator's state changes
type GeneratorView struct {
	Sprite int

	gen     *power.Generator
	mixer   Mixer
	runLoop uuid.UUID
	closed  bool
}

// TrackGenerator subscribes a view to g
func TrackGenerator(g *power.Generator, m Mixer) *GeneratorView {
	v := &GeneratorView{gen: g, mixer: m, Sprite: int(g.State())}
	if g.State() == power.On {
		v.startLoop()
	}
	g.OnStateChanged(v.onStateChanged)
	return v
}

func (v *GeneratorView) onStateChanged(c power.StateChange) {
	if v.closed {
		return
	}
	v.Sprite = int(c.New)
	switch {
	case c.Final:
		v.stopLoop()
		v.closed = true
	case c.New == power.On:
		v.startLoop()
	case c.Old == power.On:
		v.stopLoop()
		v.mixer.Cue(Cue{Sound: v.gen.Profile.EndSound})
	}
}

func (v *GeneratorView) startLoop() {
	v.runLoop = uuid.New()
	log.Debug("generator run loop started", "generator", v.gen.Name, "loop", v.runLoop)
	v.mixer.Cue(Cue{Loop: v.runLoop, Sound: v.gen.Profile.RunSound})
}

func (v *GeneratorView) stopLoop() {
	if v.runLoop == uuid.Nil {
		return
	}
	v.mixer.Cue(Cue{Loop: v.runLoop, Sound: v.gen.Profile.RunSound, Stop: true})
	v.runLoop = uuid.Nil
}

// RunLoop returns the id of the running sound loop, or uuid.Nil
func (v *GeneratorView) RunLoop() uuid.UUID {
	return v.runLoop
}

// BarOffset returns the power bar's position
func (v *GeneratorView) BarOffset() float64 {
	return v.gen.BarOffset()
}

// CellSprite returns the loaded cell's fuel level sprite, or -1 with no cell
func (v *GeneratorView) CellSprite() int {
	cell := v.gen.Cell()
	if cell == nil {
		return -1
	}
	return cell.SpriteVariant(CellSpriteVariants)
}

// Recycler sprite indices
const (
	RecyclerIdle      = 0
	RecyclerLoaded    = 1
	RecyclerLeftCell  = 0
	RecyclerRightCell = 1
	RecyclerNoCell    = 2
)

// RecyclerSprites returns the body sprite and the two cell sprites
func RecyclerSprites(r *recycler.Recycler) (body, left, right int) {
	body, left, right = RecyclerIdle, RecyclerNoCell, RecyclerNoCell
	if r.Left.IsOccupied() {
		left = RecyclerLeftCell
	}
	if r.Right.IsOccupied() {
		right = RecyclerRightCell
	}
	if r.Loaded() {
		body = RecyclerLoaded
	}
	return body, left, right
}
