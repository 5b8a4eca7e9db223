package reactive

import (
	"sync"
	"time"
)

// Debouncer delays dispatch until a quiet window has elapsed since the
// last Trigger, then fires with the latest value only. A value equal to
// the previously dispatched one is suppressed. Dispatch already in
// flight is never cancelled; a slow handler can still finish after a
// newer trigger.
type Debouncer struct {
	mu         sync.Mutex
	delay      time.Duration
	timer      *time.Timer
	last       string
	dispatched bool
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn(value) after the quiet window. Each call restarts
// the window; only the latest value is dispatched.
func (d *Debouncer) Trigger(value string, fn func(string)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.dispatched && d.last == value {
			d.mu.Unlock()
			return
		}
		d.last = value
		d.dispatched = true
		d.mu.Unlock()
		fn(value)
	})
}

// Stop cancels any pending dispatch. Used on scope teardown.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
