package harness

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock_StartsAtOrigin(t *testing.T) {
	c := NewClock()
	assert.Equal(t, Instant{}, c.Current())
	assert.Equal(t, int64(0), Ticks(c.Current()))
}

func TestClock_NextIsMonotonic(t *testing.T) {
	c := NewClock()
	prev := c.Current()
	for i := int64(1); i <= 5; i++ {
		next := c.Next()
		assert.Equal(t, i, Ticks(next))
		assert.Equal(t, int64(1), next.Diff(prev))
		prev = next
	}
	assert.Equal(t, prev, c.Current())
}

func TestClock_Reset(t *testing.T) {
	c := NewClock()
	c.Next()
	c.Next()
	c.Reset()
	assert.Equal(t, int64(1), Ticks(c.Next()))
}

func TestClock_Concurrent(t *testing.T) {
	c := NewClock()
	const goroutines, each = 8, 100

	var wg sync.WaitGroup
	seen := make(chan int64, goroutines*each)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				seen <- Ticks(c.Next())
			}
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[int64]bool, goroutines*each)
	for s := range seen {
		assert.False(t, unique[s], "tick %d handed out twice", s)
		unique[s] = true
	}
	assert.Len(t, unique, goroutines*each)
	assert.Equal(t, int64(goroutines*each), Ticks(c.Current()))
}
