package pickup

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// CountdownInterval is the recompute cadence of a countdown.
const CountdownInterval = time.Second

type Tick struct {
	LeaveBy time.Time
	Seconds int
}

// Countdown emits the seconds left until a leave-by instant, once right away and then
// every CountdownInterval, until it reaches zero or is stopped. Ticks are delivered on
// timer goroutines, never from StartCountdown or Stop.
type Countdown struct {
	clock   clockwork.Clock
	leaveBy time.Time
	onTick  func(Tick)

	mu      sync.Mutex
	timer   clockwork.Timer
	stopped bool

	done     chan struct{}
	doneOnce sync.Once
}

func StartCountdown(clock clockwork.Clock, leaveBy time.Time, onTick func(Tick)) *Countdown {
	c := &Countdown{
		clock:   clock,
		leaveBy: leaveBy,
		onTick:  onTick,
		done:    make(chan struct{}),
	}

	go c.fire()

	return c
}

func (c *Countdown) LeaveBy() time.Time {
	return c.leaveBy
}

// Done is closed after the zero tick was delivered or once the countdown was stopped.
func (c *Countdown) Done() <-chan struct{} {
	return c.done
}

// Stop cancels the pending tick. A tick already being delivered may still arrive.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.finishLocked()
}

// fire delivers one tick, then arms the next one. Arming after onTick returns keeps a
// single tick in flight, so a slow consumer sees seconds in order, possibly skipping some.
func (c *Countdown) fire() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}

	tick := Tick{
		LeaveBy: c.leaveBy,
		Seconds: CountdownSeconds(c.clock.Now(), c.leaveBy),
	}

	last := tick.Seconds <= 0
	if last {
		c.stopped = true
	}
	c.mu.Unlock()

	c.onTick(tick)

	if last {
		c.closeDone()
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.stopped {
		c.timer = c.clock.AfterFunc(CountdownInterval, c.fire)
	}
}

func (c *Countdown) finishLocked() {
	if c.stopped {
		return
	}

	c.stopped = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.closeDone()
}

func (c *Countdown) closeDone() {
	c.doneOnce.Do(func() { close(c.done) })
}
