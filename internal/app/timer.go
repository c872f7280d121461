package app

import (
	"sync"
	"time"
)

// CountdownTimer runs the per-question countdown. OnTick fires once per second
// with the remaining seconds; OnExpire fires exactly once when the countdown
// reaches zero, after which the timer is stopped until restarted. Start
// implicitly cancels any prior countdown, so a stale tick or expiry can never
// fire against the wrong question. Callbacks are bound per Start so handlers
// can capture which question the countdown belongs to.
type CountdownTimer struct {
	interval time.Duration

	mu     sync.Mutex
	gen    uint64
	active bool
}

// NewCountdownTimer builds a timer ticking once per second.
func NewCountdownTimer() *CountdownTimer {
	return &CountdownTimer{interval: time.Second}
}

// NewCountdownTimerWithInterval overrides the tick interval, mainly for fast
// countdowns in tests.
func NewCountdownTimerWithInterval(interval time.Duration) *CountdownTimer {
	return &CountdownTimer{interval: interval}
}

// Start begins a fresh countdown of the given number of seconds, cancelling
// any countdown already running. Either callback may be nil.
func (t *CountdownTimer) Start(seconds int, onTick func(remaining int), onExpire func()) {
	t.mu.Lock()
	t.gen++
	gen := t.gen
	t.active = true
	t.mu.Unlock()

	go t.run(gen, seconds, onTick, onExpire)
}

// Cancel stops the countdown without firing OnExpire. Cancelling an expired
// or already-cancelled timer is a no-op.
func (t *CountdownTimer) Cancel() {
	t.mu.Lock()
	t.gen++
	t.active = false
	t.mu.Unlock()
}

// Active reports whether a countdown is currently running.
func (t *CountdownTimer) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

func (t *CountdownTimer) run(gen uint64, remaining int, onTick func(remaining int), onExpire func()) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for range ticker.C {
		t.mu.Lock()
		if t.gen != gen {
			t.mu.Unlock()
			return
		}
		remaining--
		expired := remaining <= 0
		if expired {
			t.active = false
		}
		t.mu.Unlock()

		// Callbacks run outside the lock so handlers may restart or cancel
		// the timer without deadlocking. A callback may still be in flight
		// after Cancel returns; callers that care must discard stale
		// deliveries themselves.
		if expired {
			if onExpire != nil {
				onExpire()
			}
			return
		}
		if onTick != nil {
			onTick(remaining)
		}
	}
}
