// Package action runs timed tool actions ("You start welding ...") that take a
// fixed duration, can be interrupted, and finish with a callback.
package action

import (
	"time"

	"github.com/leonelquinteros/gotext"

	"reactorbay/pkg/engine/scheduler"
)

// DefaultStep is how often a running action re-checks its guard
const DefaultStep = 100 * time.Millisecond

// Chat delivers action messages: first person to the performer, third person
// to everybody else nearby.
type Chat interface {
	ActionMessage(performer, firstPerson, thirdPerson string)
}

// Spec describes one timed action
type Spec struct {
	Performer string
	Duration  time.Duration

	StartFirst, StartThird   string
	FinishFirst, FinishThird string

	// Guard is re-checked every step and once more before completion. When it
	// returns false the action is cancelled. Nil means always true.
	Guard func() bool
	// OnComplete runs after the finish messages.
	OnComplete func()
	// OnEnd runs exactly once when the action completes or is cancelled.
	OnEnd func()
}

// Progress is a running action
type Progress struct {
	exec      *Executor
	spec      Spec
	finish    scheduler.Handle
	check     scheduler.Handle
	done      bool
	cancelled bool
}

// Executor starts timed actions on a scheduler
type Executor struct {
	sched  scheduler.Scheduler
	chat   Chat
	step   time.Duration
	active map[string]*Progress
}

// NewExecutor creates an executor that schedules on sched and talks through chat
func NewExecutor(sched scheduler.Scheduler, chat Chat) *Executor {
	return &Executor{
		sched:  sched,
		chat:   chat,
		step:   DefaultStep,
		active: make(map[string]*Progress),
	}
}

// Busy reports whether performer already has an action running
func (e *Executor) Busy(performer string) bool {
	_, ok := e.active[performer]
	return ok
}

// Start begins the action. It returns nil when the performer is already busy
// or the guard fails up front.
func (e *Executor) Start(spec Spec) *Progress {
	if e.Busy(spec.Performer) {
		e.chat.ActionMessage(spec.Performer, gotext.Get("You are already busy."), "")
		return nil
	}
	p := &Progress{exec: e, spec: spec}
	if !p.guardHolds() {
		return nil
	}

	e.active[spec.Performer] = p
	e.chat.ActionMessage(spec.Performer, spec.StartFirst, spec.StartThird)

	p.finish = e.sched.After(spec.Duration, p.complete)
	p.check = e.sched.Add(e.step, func() {
		if !p.guardHolds() {
			p.Cancel()
		}
	})
	return p
}

func (p *Progress) guardHolds() bool {
	return p.spec.Guard == nil || p.spec.Guard()
}

func (p *Progress) complete() {
	if p.done {
		return
	}
	if !p.guardHolds() {
		p.Cancel()
		return
	}
	p.end()
	p.exec.chat.ActionMessage(p.spec.Performer, p.spec.FinishFirst, p.spec.FinishThird)
	if p.spec.OnComplete != nil {
		p.spec.OnComplete()
	}
}

// Cancel stops the action. Cancelling a finished action does nothing.
func (p *Progress) Cancel() {
	if p == nil || p.done {
		return
	}
	p.cancelled = true
	p.end()
	p.exec.chat.ActionMessage(p.spec.Performer, gotext.Get("You stop what you were doing."), "")
}

func (p *Progress) end() {
	p.done = true
	p.exec.sched.Remove(p.finish)
	p.exec.sched.Remove(p.check)
	delete(p.exec.active, p.spec.Performer)
	if p.spec.OnEnd != nil {
		p.spec.OnEnd()
	}
}

// Done reports whether the action has finished, either way
func (p *Progress) Done() bool {
	return p.done
}

// Cancelled reports whether the action ended without completing
func (p *Progress) Cancelled() bool {
	return p.cancelled
}
