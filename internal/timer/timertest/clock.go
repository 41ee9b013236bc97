// Package timertest provides a manual clock for driving timer.Engine in tests.
package timertest

import (
	"sync"
	"time"

	"github.com/renato0307/mama/internal/timer"
)

// Clock is a timer.Clock whose time only moves when Advance is called.
// Tickers it creates never fire on their own; call Fire to deliver a tick.
type Clock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*Ticker
}

var _ timer.Clock = (*Clock)(nil)

// NewClock returns a clock frozen at start
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the current fake time
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// NewTicker registers a ticker that only fires through Fire
func (c *Clock) NewTicker(d time.Duration) timer.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &Ticker{ch: make(chan time.Time, 1), interval: d}
	c.tickers = append(c.tickers, t)
	return t
}

// Fire delivers one tick to every ticker that has not been stopped.
// Ticks are dropped when a ticker still has an undelivered one.
func (c *Clock) Fire() {
	c.mu.Lock()
	now := c.now
	tickers := append([]*Ticker(nil), c.tickers...)
	c.mu.Unlock()

	for _, t := range tickers {
		if t.Stopped() {
			continue
		}
		select {
		case t.ch <- now:
		default:
		}
	}
}

// ActiveTickers returns how many created tickers are still running
func (c *Clock) ActiveTickers() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, t := range c.tickers {
		if !t.Stopped() {
			n++
		}
	}
	return n
}

// Ticker is the fake ticker handed out by Clock
type Ticker struct {
	ch       chan time.Time
	interval time.Duration
	mu       sync.Mutex
	stopped  bool
}

// C returns the tick channel
func (t *Ticker) C() <-chan time.Time {
	return t.ch
}

// Stop marks the ticker as stopped
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

// Stopped reports whether Stop has been called
func (t *Ticker) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}
