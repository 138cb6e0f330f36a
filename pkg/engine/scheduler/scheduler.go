// Package scheduler provides the fixed-interval update manager devices use for
// their periodic work (generator burn ticks, recycler charging, welder fuel).
//
// All callbacks run on the goroutine that drives the manager, either through
// Advance (virtual time) or Run (wall time). Ticks for a single handle are
// strictly serialised.
package scheduler

import (
	"context"
	"time"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"reactorbay/pkg/engine/clock"
)

// Handle identifies a registered callback. Handles are never reused.
type Handle uint64

// NoHandle is the zero handle; removing it is a no-op.
const NoHandle Handle = 0

// minInterval guards against callbacks that would otherwise re-fire forever
// within a single Advance.
const minInterval = time.Millisecond

// Scheduler is the subset of Manager devices depend on.
type Scheduler interface {
	Add(interval time.Duration, fn func()) Handle
	After(delay time.Duration, fn func()) Handle
	Remove(h Handle)
}

type task struct {
	interval time.Duration
	repeat   bool
	fn       func()
}

type due struct {
	at     time.Duration
	seq    uint64
	handle Handle
}

// Manager is a cooperative, single-threaded timer wheel keyed on virtual time.
type Manager struct {
	now        time.Duration
	seq        uint64
	nextHandle Handle

	tasks map[Handle]*task
	live  mapset.Set[Handle]
	queue *heap.Heap[due]

	inbox chan func()
}

// New creates an empty manager at virtual time zero.
func New() *Manager {
	return &Manager{
		tasks: make(map[Handle]*task),
		live:  mapset.New[Handle](),
		queue: heap.New[due](func(a, b due) bool {
			if a.at != b.at {
				return a.at < b.at
			}
			return a.seq < b.seq
		}),
		inbox: make(chan func(), 16),
	}
}

// Add registers fn to run every interval, first firing one interval from now.
func (m *Manager) Add(interval time.Duration, fn func()) Handle {
	return m.register(interval, true, fn)
}

// After registers fn to run once after delay.
func (m *Manager) After(delay time.Duration, fn func()) Handle {
	return m.register(delay, false, fn)
}

func (m *Manager) register(interval time.Duration, repeat bool, fn func()) Handle {
	if interval < minInterval {
		interval = minInterval
	}
	m.nextHandle++
	h := m.nextHandle
	m.tasks[h] = &task{interval: interval, repeat: repeat, fn: fn}
	m.live.Put(h)
	m.push(h, m.now+interval)
	return h
}

func (m *Manager) push(h Handle, at time.Duration) {
	m.seq++
	m.queue.Push(due{at: at, seq: m.seq, handle: h})
}

// Remove deregisters h. Removing an unknown or already removed handle does
// nothing. A removed callback never fires again, even when it was already due
// inside the Advance currently running.
func (m *Manager) Remove(h Handle) {
	if !m.live.Has(h) {
		return
	}
	m.live.Remove(h)
	delete(m.tasks, h)
}

// Active reports whether h is still registered.
func (m *Manager) Active(h Handle) bool {
	return m.live.Has(h)
}

// Len returns the number of registered callbacks.
func (m *Manager) Len() int {
	return m.live.Size()
}

// Now returns the manager's virtual time.
func (m *Manager) Now() time.Duration {
	return m.now
}

// Advance moves virtual time forward by d, firing every callback that comes
// due in order of due time, then the order they were queued.
func (m *Manager) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := m.now + d

	for {
		next, ok := m.queue.Peek()
		if !ok || next.at > target {
			break
		}
		m.queue.Pop()

		t, live := m.tasks[next.handle]
		if !live {
			continue // stale entry for a removed handle
		}

		m.now = next.at
		if t.repeat {
			m.push(next.handle, next.at+t.interval)
		} else {
			m.live.Remove(next.handle)
			delete(m.tasks, next.handle)
		}
		t.fn()
	}

	m.now = target
}

// Post queues fn to run on the goroutine executing Run. It is how other
// goroutines (console input) hand work to the simulation without sharing
// state.
func (m *Manager) Post(fn func()) {
	m.inbox <- fn
}

// Run drives Advance from clk every step until ctx is cancelled. Posted
// functions run between ticks on the same goroutine.
func (m *Manager) Run(ctx context.Context, clk clock.Clock, step time.Duration) error {
	if step < minInterval {
		step = minInterval
	}
	ticker := time.NewTicker(step)
	defer ticker.Stop()

	last := clk.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-m.inbox:
			fn()
		case <-ticker.C:
			now := clk.Now()
			m.Advance(now.Sub(last))
			last = now
		}
	}
}
