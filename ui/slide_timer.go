package ui

import (
	"sync"
	"time"
)

// slideTimer drives the periodic slide advance. Manual navigation restarts
// the countdown so the next automatic advance always happens a full interval
// after the last change of image.
type slideTimer struct {
	mu       sync.Mutex
	interval time.Duration
	advance  func()
	timer    *time.Timer
	paused   bool
}

// newSlideTimer creates a stopped timer calling advance every interval
func newSlideTimer(interval time.Duration, advance func()) *slideTimer {
	return &slideTimer{
		interval: interval,
		advance:  advance,
	}
}

// Start arms the timer. A paused timer stays stopped.
func (t *slideTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.startLocked()
}

func (t *slideTimer) startLocked() {
	if t.paused || t.interval <= 0 || t.timer != nil {
		return
	}

	var tm *time.Timer
	tm = time.AfterFunc(t.interval, func() {
		t.advance()

		t.mu.Lock()
		// A Restart may have replaced this timer while advance ran; only
		// the current chain is allowed to rearm itself.
		if t.timer == tm {
			t.timer = nil
			t.startLocked()
		}
		t.mu.Unlock()
	})
	t.timer = tm
}

// Restart resets the countdown to a full interval
func (t *slideTimer) Restart() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.startLocked()
}

// Stop disarms the timer until the next Start or Restart
func (t *slideTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *slideTimer) stopLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// TogglePause flips the paused state and returns it. Pausing stops the
// timer, resuming rearms it with a full interval.
func (t *slideTimer) TogglePause() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.paused = !t.paused
	if t.paused {
		t.stopLocked()
	} else {
		t.startLocked()
	}
	return t.paused
}
