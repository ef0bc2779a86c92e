package harness

import (
	"sync"

	"github.com/roach88/torsor/torsor"
)

// Tick is the universe of harness logical time.
type Tick struct{}

// Instant is a point in harness logical time.
type Instant = torsor.Torsor[int64, Tick]

// Clock is a monotonic logical clock used to stamp case results so that
// reports are reproducible byte for byte.
//
// Thread-safety: all methods are safe for concurrent use.
type Clock struct {
	mu  sync.Mutex
	now Instant
}

// NewClock creates a clock at the origin. The first call to Next returns
// the instant one tick after the origin.
func NewClock() *Clock {
	return &Clock{}
}

// Next advances the clock by one tick and returns the new instant.
func (c *Clock) Next() Instant {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now.Inc(1)
	return c.now
}

// Current returns the current instant without advancing.
func (c *Clock) Current() Instant {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Reset moves the clock back to the origin.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = Instant{}
}

// Ticks returns the number of ticks between the origin and i.
func Ticks(i Instant) int64 {
	return i.Diff(Instant{})
}
