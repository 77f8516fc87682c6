package pickup

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultDebounce is the settling delay applied to address edits.
const DefaultDebounce = 600 * time.Millisecond

// Debouncer runs only the last of a burst of calls, once the burst has been quiet for
// the delay. Every call gets a token; a call made after a later Trigger or Cancel holds
// a stale token and its result must be dropped.
type Debouncer struct {
	clock clockwork.Clock
	delay time.Duration

	mu    sync.Mutex
	timer clockwork.Timer
	token uint64
}

func NewDebouncer(clock clockwork.Clock, delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}

	return &Debouncer{
		clock: clock,
		delay: delay,
	}
}

// Trigger supersedes any pending call and schedules fn after the delay. fn runs on a
// timer goroutine.
func (d *Debouncer) Trigger(fn func(token uint64)) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopTimerLocked()
	d.token++
	token := d.token

	d.timer = d.clock.AfterFunc(d.delay, func() {
		if !d.IsCurrent(token) {
			return
		}

		fn(token)
	})

	return token
}

// IsCurrent reports whether token belongs to the latest Trigger.
func (d *Debouncer) IsCurrent(token uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return token == d.token
}

// Cancel drops the pending call and invalidates every issued token.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopTimerLocked()
	d.token++
}

func (d *Debouncer) stopTimerLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
