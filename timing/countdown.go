package timing

import (
	"context"
	"sync"
	"time"
)

// State is the run state reported with every countdown value.
type State int

const (
	StateStart State = iota
	StatePause
	StateFinish
)

func (s State) String() string {
	switch s {
	case StatePause:
		return "pause"
	case StateFinish:
		return "finish"
	default:
		return "start"
	}
}

// Counter is a running countdown. Create one with Countdown.
type Counter struct {
	ctx      context.Context
	total    int
	interval time.Duration
	fn       func(remaining int, state State)

	mu        sync.Mutex
	remaining int
	state     State
	stop      chan struct{}
}

// Countdown starts counting down from total, one step per interval.
// fn receives the starting value immediately and every value after it;
// zero is reported with StateFinish. A nil fn is allowed.
func Countdown(ctx context.Context, total int, interval time.Duration, fn func(remaining int, state State)) *Counter {
	if fn == nil {
		fn = func(int, State) {}
	}
	c := &Counter{
		ctx:       ctx,
		total:     total,
		interval:  interval,
		fn:        fn,
		remaining: total,
	}

	if total <= 0 {
		c.state = StateFinish
		fn(c.remaining, c.state)
		return c
	}

	fn(total, StateStart)
	c.mu.Lock()
	if c.state == StateStart && c.stop == nil {
		c.startLocked()
	}
	c.mu.Unlock()
	return c
}

func (c *Counter) startLocked() {
	c.state = StateStart
	c.stop = make(chan struct{})
	go c.run(c.stop)
}

func (c *Counter) stopLocked() {
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

func (c *Counter) run(stop chan struct{}) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C:
		}

		c.mu.Lock()
		select {
		case <-stop:
			c.mu.Unlock()
			return
		default:
		}
		c.remaining--
		remaining, state := c.remaining, StateStart
		if remaining <= 0 {
			state = StateFinish
			c.state = state
			c.stopLocked()
		}
		c.mu.Unlock()

		c.fn(remaining, state)
		if state == StateFinish {
			return
		}
	}
}

// Pause stops the countdown and reports the current value with
// StatePause. Pausing a finished countdown does nothing.
func (c *Counter) Pause() {
	c.mu.Lock()
	if c.state != StateStart {
		c.mu.Unlock()
		return
	}
	c.stopLocked()
	c.state = StatePause
	remaining := c.remaining
	c.mu.Unlock()

	c.fn(remaining, StatePause)
}

// Reset restarts the countdown from its total.
func (c *Counter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	c.remaining = c.total
	if c.total <= 0 {
		c.state = StateFinish
		return
	}
	c.startLocked()
}

// Remaining returns the current value.
func (c *Counter) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// State returns the current run state.
func (c *Counter) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
