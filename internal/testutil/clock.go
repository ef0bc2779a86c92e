// Package testutil holds deterministic stand-ins for tests.
package testutil

import (
	"sync"
	"time"

	"github.com/roach88/torsor/torsor"
)

type wall struct{}

// elapsed is a point on a WallClock's timeline, measured from its start.
type elapsed = torsor.Torsor[time.Duration, wall]

// WallClock hands out times that advance by a fixed step, in place of
// time.Now.
//
// The first call to Now returns the start time. A zero step yields the
// same time forever.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type WallClock struct {
	mu    sync.Mutex
	start time.Time
	step  time.Duration
	at    elapsed
}

// NewWallClock creates a clock starting at start and advancing by step.
func NewWallClock(start time.Time, step time.Duration) *WallClock {
	return &WallClock{start: start.UTC(), step: step}
}

// Now returns the current time in UTC and advances the clock.
func (c *WallClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.start.Add(c.at.Diff(elapsed{}))
	c.at.Inc(c.step)
	return t
}

// Reset returns the clock to its start time.
func (c *WallClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.at = elapsed{}
}
