// Package testutil holds shared test fixtures.
package testutil

import "sync"

// Clock is a deterministic millisecond clock for tests.
//
// Each Now() call advances the clock by one millisecond, so consecutive
// mutations get distinct, ordered timestamps without touching wall time.
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type Clock struct {
	mu sync.Mutex
	ms int64
}

// NewClock creates a clock starting at the given epoch millisecond value.
func NewClock(start int64) *Clock {
	return &Clock{ms: start}
}

// Now advances the clock one millisecond and returns it.
func (c *Clock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ms++
	return c.ms
}

// Current returns the clock without advancing it.
func (c *Clock) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ms
}
