package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryClient is an in-process Client with lazy expiry.
type MemoryClient struct {
	mu      sync.Mutex
	data    map[string]memoryEntry
	maxSize int
	now     func() time.Time
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewMemoryClient creates a memory cache holding at most maxSize entries.
func NewMemoryClient(maxSize int) *MemoryClient {
	if maxSize <= 0 {
		maxSize = 1000
	}
	return &MemoryClient{
		data:    make(map[string]memoryEntry),
		maxSize: maxSize,
		now:     time.Now,
	}
}

func (c *MemoryClient) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.data[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	if !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt) {
		delete(c.data, key)
		return nil, ErrCacheMiss
	}
	return append([]byte(nil), entry.value...), nil
}

// Set stores value. A zero or negative ttl keeps the entry until evicted.
func (c *MemoryClient) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.data[key]; !exists && len(c.data) >= c.maxSize {
		c.evictLocked()
	}

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = c.now().Add(ttl)
	}
	c.data[key] = memoryEntry{value: append([]byte(nil), value...), expiresAt: expiresAt}
	return nil
}

func (c *MemoryClient) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *MemoryClient) Close() error {
	return nil
}

// Len returns the number of stored entries, expired or not.
func (c *MemoryClient) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// evictLocked drops expired entries, or the soonest-expiring one when none
// have expired. Entries without a deadline go last.
func (c *MemoryClient) evictLocked() {
	now := c.now()
	var victim string
	var victimAt time.Time
	for key, entry := range c.data {
		if !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt) {
			delete(c.data, key)
			continue
		}
		if victim == "" || laterThan(victimAt, entry.expiresAt) {
			victim, victimAt = key, entry.expiresAt
		}
	}
	if len(c.data) >= c.maxSize && victim != "" {
		delete(c.data, victim)
	}
}

// laterThan reports whether a expires after b, treating zero as never.
func laterThan(a, b time.Time) bool {
	switch {
	case a.IsZero():
		return !b.IsZero()
	case b.IsZero():
		return false
	default:
		return a.After(b)
	}
}
