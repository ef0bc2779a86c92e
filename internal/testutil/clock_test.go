package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func at(minutes int) time.Time {
	return start.Add(time.Duration(minutes) * time.Minute)
}

func TestWallClock_StartsAtStart(t *testing.T) {
	clock := NewWallClock(start, time.Minute)
	assert.Equal(t, start, clock.Now())
}

func TestWallClock_Advances(t *testing.T) {
	clock := NewWallClock(start, time.Minute)

	assert.Equal(t, at(0), clock.Now())
	assert.Equal(t, at(1), clock.Now())
	assert.Equal(t, at(2), clock.Now())
}

func TestWallClock_ZeroStepIsFixed(t *testing.T) {
	clock := NewWallClock(start, 0)
	assert.Equal(t, clock.Now(), clock.Now())
}

func TestWallClock_NormalizesToUTC(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	clock := NewWallClock(time.Date(2026, 1, 2, 5, 4, 5, 0, zone), 0)
	got := clock.Now()
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, start.Equal(got))
}

func TestWallClock_Reset(t *testing.T) {
	clock := NewWallClock(start, time.Hour)
	clock.Now()
	clock.Now()

	clock.Reset()
	assert.Equal(t, start, clock.Now())
}

func TestWallClock_ThreadSafe(t *testing.T) {
	clock := NewWallClock(start, time.Second)
	const numGoroutines = 20
	const callsPerGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	results := make([][]time.Time, numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		results[i] = make([]time.Time, callsPerGoroutine)
		go func(idx int) {
			defer wg.Done()
			for j := 0; j < callsPerGoroutine; j++ {
				results[idx][j] = clock.Now()
			}
		}(i)
	}

	wg.Wait()

	seen := make(map[time.Time]bool)
	for i := range results {
		for _, ts := range results[i] {
			require.False(t, seen[ts], "duplicate time %s", ts)
			seen[ts] = true
		}
	}
	assert.Len(t, seen, numGoroutines*callsPerGoroutine)
}
