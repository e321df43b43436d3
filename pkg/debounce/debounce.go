package debounce

import (
	"sync"
	"time"
)

// DefaultWindow is the quiescence window for free-text search input.
const DefaultWindow = 500 * time.Millisecond

// Debouncer delays a callback until its input has been quiet for the
// configured window. Every Trigger call restarts the timer; only the most
// recent callback runs. Safe for concurrent use.
type Debouncer struct {
	window time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a Debouncer. A non-positive window falls back to DefaultWindow.
func New(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{window: window}
}

// Trigger schedules fn to run after the quiescence window, cancelling any
// previously scheduled callback.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, fn)
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
