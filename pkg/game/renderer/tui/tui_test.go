package tui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"

	"reactorbay/pkg/engine/input"
	"reactorbay/pkg/engine/scheduler"
	"reactorbay/pkg/game/config"
	"reactorbay/pkg/game/setup"
)

func newTestRenderer(in string) (*TUIRenderer, *bytes.Buffer) {
	var out bytes.Buffer
	r := NewWithIO(strings.NewReader(in), &out, false)
	r.Init()
	return r, &out
}

func TestRenderFrame(t *testing.T) {
	r, out := newTestRenderer("")
	b, err := setup.SetupBay(config.Default(), scheduler.New())
	if err != nil {
		t.Fatalf("SetupBay: %v", err)
	}
	b.Generator.TryToggleOn()
	b.Scheduler.Advance(5 * time.Second)

	r.RenderFrame(b)
	frame := color.ClearCode(out.String())

	for _, want := range []string{
		"Engineering Bay",
		"T+00:05.0",
		"Fusion Reactor",
		"Fuel",
		"Recycler",
		"POWERED",
		"Hand: (empty)",
		"crowbar, spare cell, welding tool, wirecutters, wrench",
		"Floor: (empty)",
		"(no messages)",
		"GeneratorRun looping (1 playing)",
	} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame is missing %q:\n%s", want, frame)
		}
	}
}

func TestRenderFrame_NoCell(t *testing.T) {
	r, out := newTestRenderer("")
	cfg := config.Default()
	cfg.StartingCell = false
	b, err := setup.SetupBay(cfg, scheduler.New())
	if err != nil {
		t.Fatalf("SetupBay: %v", err)
	}

	r.RenderFrame(b)
	frame := color.ClearCode(out.String())
	if !strings.Contains(frame, "no cell") {
		t.Errorf("frame should report the missing cell:\n%s", frame)
	}
	if !strings.Contains(frame, "NO POWER") {
		t.Errorf("recycler should be unpowered:\n%s", frame)
	}
}

func TestFormatText(t *testing.T) {
	r, _ := newTestRenderer("")

	got := color.ClearCode(r.FormatText("Hold the ITEM{%s} and type ACTION{wait} or ACTION{?}", "wrench"))
	if got != "Hold the wrench and type wait or ?" {
		t.Errorf("FormatText = %q", got)
	}

	got = r.FormatText("BOGUS{thing}")
	if !strings.HasPrefix(got, "ERROR, function not found") {
		t.Errorf("unknown markup = %q", got)
	}
}

func TestGetInput(t *testing.T) {
	r, _ := newTestRenderer("use\nwait 5\n")

	intent, err := r.GetInput()
	if err != nil || intent.Action != input.ActionUse {
		t.Fatalf("first intent = %+v, %v; want Use", intent, err)
	}
	intent, err = r.GetInput()
	if err != nil || intent.Action != input.ActionWait || intent.Arg(0) != "5" {
		t.Fatalf("second intent = %+v, %v; want Wait 5", intent, err)
	}
	if _, err := r.GetInput(); !errors.Is(err, io.EOF) {
		t.Errorf("GetInput at end = %v, want io.EOF", err)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "T+00:00.0"},
		{5 * time.Second, "T+00:05.0"},
		{75*time.Second + 250*time.Millisecond, "T+01:15.2"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.d); got != tt.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
