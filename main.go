package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"reactorbay/pkg/engine/clock"
	"reactorbay/pkg/engine/scheduler"
	"reactorbay/pkg/game/config"
	"reactorbay/pkg/game/gameplay"
	"reactorbay/pkg/game/log"
	"reactorbay/pkg/game/renderer"
	"reactorbay/pkg/game/renderer/tui"
	"reactorbay/pkg/game/setup"
	"reactorbay/pkg/game/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	if cfg.LogFile != "" {
		if err := log.SetFileOutput(cfg.LogFile); err != nil {
			config.Exitf("Error: could not open log file: %v", err)
		}
	}
	defer log.Close()

	sched := scheduler.New()
	b, err := setup.SetupBay(cfg, sched)
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	renderer.SetRenderer(tui.New())
	renderer.Init()

	b.AddMessage(state.MessageInfo, renderer.FormatText("Welcome to the engineering bay, %s.", b.Player))
	b.AddMessage(state.MessageInfo, renderer.FormatText("Type ACTION{?} for a hint."))

	if cfg.Realtime {
		runRealtime(b, sched, cfg)
	} else {
		runTurns(b)
	}

	renderer.ShowMessage("Goodbye.")
}

// runTurns alternates drawing and reading commands; time only passes on wait
func runTurns(b *state.Bay) {
	for !b.Quit {
		draw(b)

		intent, err := renderer.GetInput()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Error("reading input", "error", err)
			}
			return
		}
		gameplay.ProcessIntent(b, intent)
	}
}

// runRealtime lets the scheduler follow the wall clock. Commands are read on
// their own goroutine and posted to the simulation.
func runRealtime(b *state.Bay, sched *scheduler.Manager, cfg config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	sched.Add(cfg.GeneratorTick, func() { draw(b) })

	go func() {
		for {
			intent, err := renderer.GetInput()
			if err != nil {
				cancel()
				return
			}
			select {
			case <-ctx.Done():
				return
			default:
			}
			sched.Post(func() {
				gameplay.ProcessIntent(b, intent)
				if b.Quit {
					cancel()
					return
				}
				draw(b)
			})
		}
	}()

	draw(b)
	if err := sched.Run(ctx, clock.Real{}, cfg.Step); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("scheduler stopped", "error", err)
	}
}

func draw(b *state.Bay) {
	renderer.Clear()
	renderer.RenderFrame(b)
}
