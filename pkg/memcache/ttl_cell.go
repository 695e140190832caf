package memcache

import (
	"sync"
	"time"
)

// TTLCell is a single-entry cache with an expiry timestamp. A stale read
// returns ok=false; the caller recomputes and calls Set. Two goroutines
// racing past an expired read both recompute, which is harmless duplicate
// work, not corruption.
type TTLCell[T any] struct {
	mu        sync.RWMutex
	value     T
	populated bool
	expiresAt time.Time
}

func NewTTLCell[T any]() *TTLCell[T] {
	return &TTLCell[T]{}
}

func (c *TTLCell[T]) Get() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T
	if !c.populated || time.Now().After(c.expiresAt) {
		return zero, false
	}
	return c.value, true
}

func (c *TTLCell[T]) Set(value T, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = value
	c.populated = true
	c.expiresAt = time.Now().Add(ttl)
}

func (c *TTLCell[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.populated = false
}
