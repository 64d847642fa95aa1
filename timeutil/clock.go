// Package timeutil abstracts the time source so durations can be pinned in
// tests.
package timeutil

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// UTCClock is the system clock in UTC.
type UTCClock struct{}

func (UTCClock) Now() time.Time                  { return time.Now().UTC() }
func (UTCClock) Since(t time.Time) time.Duration { return time.Since(t) }

// Default is used wherever no clock is injected.
var Default Clock = UTCClock{}

// FrozenClock stands still until moved with Set or Advance.
type FrozenClock struct {
	mu sync.RWMutex
	t  time.Time
}

func NewFrozenClock(t time.Time) *FrozenClock {
	return &FrozenClock{t: t}
}

func (c *FrozenClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.t
}

// Since is measured against the frozen time, not the wall clock.
func (c *FrozenClock) Since(t time.Time) time.Duration { return c.Now().Sub(t) }

func (c *FrozenClock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func (c *FrozenClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}
