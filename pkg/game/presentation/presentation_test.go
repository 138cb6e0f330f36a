package presentation

import (
	"testing"

	"github.com/google/uuid"

	"reactorbay/pkg/engine/scheduler"
	"reactorbay/pkg/engine/world"
	"reactorbay/pkg/game/entities"
	"reactorbay/pkg/game/power"
	"reactorbay/pkg/game/recycler"
)

type silentChat struct{}

func (silentChat) Warning(_, _ string) {}
func (silentChat) Examine(_, _ string) {}

func newGenerator(t *testing.T) *power.Generator {
	t.Helper()
	return power.NewGenerator("", power.FusionReactor, power.Deps{
		Integrity: entities.NewIntegrity(100),
		Scheduler: scheduler.New(),
		Chat:      silentChat{},
	})
}

func TestGeneratorView_RunLoop(t *testing.T) {
	g := newGenerator(t)
	cues := NewCueLog()
	v := TrackGenerator(g, cues)
	g.Spawn(power.On, entities.NewFuelCellItem("cell", entities.NewFuelCell(9000)))

	if v.Sprite != int(power.On) {
		t.Errorf("Sprite = %d, want %d", v.Sprite, power.On)
	}
	loop := v.RunLoop()
	if loop == uuid.Nil {
		t.Fatal("no run loop after turning on")
	}
	if cues.Playing()[loop] != "GeneratorRun" {
		t.Errorf("Playing() = %v", cues.Playing())
	}

	g.ToggleOff()

	if v.RunLoop() != uuid.Nil || len(cues.Playing()) != 0 {
		t.Error("run loop still playing after turning off")
	}
	last := cues.Recent(1)[0]
	if last.Sound != "GeneratorEnd" || last.Loop != uuid.Nil {
		t.Errorf("last cue = %+v, want one-shot GeneratorEnd", last)
	}
}

func TestGeneratorView_FreshLoopEachStart(t *testing.T) {
	g := newGenerator(t)
	v := TrackGenerator(g, NewCueLog())
	g.Spawn(power.On, entities.NewFuelCellItem("cell", entities.NewFuelCell(9000)))
	first := v.RunLoop()
	g.ToggleOff()
	g.TryToggleOn()

	if v.RunLoop() == first || v.RunLoop() == uuid.Nil {
		t.Errorf("RunLoop() = %v, want a new id distinct from %v", v.RunLoop(), first)
	}
}

func TestGeneratorView_DamageSprite(t *testing.T) {
	g := newGenerator(t)
	v := TrackGenerator(g, NewCueLog())
	g.Spawn(power.Off, nil)
	g.Integrity().ApplyDamage(80)

	if v.Sprite != int(power.GlassBroken) {
		t.Errorf("Sprite = %d, want %d", v.Sprite, power.GlassBroken)
	}
	if v.CellSprite() != -1 {
		t.Errorf("CellSprite() = %d, want -1", v.CellSprite())
	}
}

func TestGeneratorView_DisableStopsLoop(t *testing.T) {
	g := newGenerator(t)
	cues := NewCueLog()
	v := TrackGenerator(g, cues)
	g.Spawn(power.On, entities.NewFuelCellItem("cell", entities.NewFuelCell(9000)))

	g.Disable()

	if v.RunLoop() != uuid.Nil || len(cues.Playing()) != 0 {
		t.Error("loop survived Disable")
	}
}

func TestRecyclerSprites(t *testing.T) {
	r := recycler.New("Recycler", recycler.Settings{}, scheduler.New(), nil)
	if body, left, right := RecyclerSprites(r); body != RecyclerIdle || left != RecyclerNoCell || right != RecyclerNoCell {
		t.Errorf("empty sprites = %d %d %d", body, left, right)
	}

	hand := world.NewItemSlot("hand")
	hand.Put(entities.NewFuelCellItem("cell", entities.NewFuelCell(9000)))
	r.Insert(r.Right, hand, "Ripley")

	if body, left, right := RecyclerSprites(r); body != RecyclerLoaded || left != RecyclerNoCell || right != RecyclerRightCell {
		t.Errorf("loaded sprites = %d %d %d", body, left, right)
	}
}
