package fs

import (
	"sync"
	"time"
)

// debouncer coalesces bursts of triggers into a single call that runs once
// the burst has been quiet for delay. The most recent callback wins.
type debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	pending func()
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

func (d *debouncer) add(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.pending = fn

	// A stopped-but-unfired timer still holds its wg slot.
	if d.timer != nil && d.timer.Stop() {
		d.timer.Reset(d.delay)
		return
	}
	d.wg.Add(1)
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *debouncer) fire() {
	defer d.wg.Done()

	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// stopAndWait drops pending calls and waits for in-flight ones, up to timeout.
// It reports whether everything finished in time.
func (d *debouncer) stopAndWait(timeout time.Duration) bool {
	d.mu.Lock()
	d.stopped = true
	d.pending = nil
	if d.timer != nil && d.timer.Stop() {
		d.wg.Done()
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
