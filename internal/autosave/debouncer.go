// Package autosave persists a session's layout a short while after the
// last edit, so a burst of edits produces a single write.
package autosave

import (
	"sync"
	"time"
)

// Timer is the handle returned by Clock.AfterFunc.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. Tests substitute a manual clock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// RealClock is the wall clock.
var RealClock Clock = realClock{}

// Debouncer holds at most one pending task. Scheduling replaces whatever
// was pending; only the last task scheduled in a burst runs.
type Debouncer struct {
	clock Clock

	mu    sync.Mutex
	timer Timer
	task  func()
	gen   uint64

	run sync.Mutex // tasks never overlap
}

// NewDebouncer creates a Debouncer on clock. A nil clock is RealClock.
func NewDebouncer(clock Clock) *Debouncer {
	if clock == nil {
		clock = RealClock
	}
	return &Debouncer{clock: clock}
}

// Schedule runs task after delay unless it is re-scheduled, cancelled or
// flushed first.
func (d *Debouncer) Schedule(task func(), delay time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.gen++
	gen := d.gen
	d.task = task
	d.timer = d.clock.AfterFunc(delay, func() { d.fire(gen) })
}

// Cancel drops the pending task, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.gen++
	d.task = nil
}

// Flush runs the pending task now, on the caller's goroutine. It reports
// whether there was one.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	task := d.task
	d.stopLocked()
	d.gen++
	d.task = nil
	d.mu.Unlock()

	if task == nil {
		return false
	}
	d.exec(task)
	return true
}

// Pending reports whether a task is waiting.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.task != nil
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.task == nil {
		d.mu.Unlock()
		return
	}
	task := d.task
	d.task = nil
	d.timer = nil
	d.mu.Unlock()

	d.exec(task)
}

func (d *Debouncer) exec(task func()) {
	d.run.Lock()
	defer d.run.Unlock()
	task()
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
