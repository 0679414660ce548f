package cache

import (
	"context"
	"sync"
	"time"

	"github.com/flight-search/flight-offer-service/internal/infrastructure/timeutil"
)

const (
	// DefaultMaxEntries bounds a memory cache built without an explicit limit.
	DefaultMaxEntries = 10000

	// sweepInterval is the minimum time between full expiry sweeps on Set.
	sweepInterval = time.Minute
)

type entry struct {
	value  []byte
	expiry time.Time
}

// MemoryCache is a process-local cache holding at most maxEntries keys.
// Expired entries are dropped on read and swept on write; when the cache is
// full the entry closest to expiry is evicted.
type MemoryCache struct {
	mu         sync.RWMutex
	entries    map[string]entry
	clock      timeutil.Clock
	maxEntries int
	nextSweep  time.Time
}

// NewMemoryCache creates an empty cache with DefaultMaxEntries. A nil clock
// uses system time.
func NewMemoryCache(clock timeutil.Clock) *MemoryCache {
	return NewMemoryCacheWithLimit(clock, DefaultMaxEntries)
}

// NewMemoryCacheWithLimit creates an empty cache holding at most maxEntries
// keys. A non-positive limit uses DefaultMaxEntries.
func NewMemoryCacheWithLimit(clock timeutil.Clock, maxEntries int) *MemoryCache {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryCache{
		entries:    make(map[string]entry),
		clock:      clock,
		maxEntries: maxEntries,
		nextSweep:  clock.Now().Add(sweepInterval),
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	now := c.clock.Now()
	if now.Before(e.expiry) {
		return append([]byte(nil), e.value...), true
	}

	// A concurrent Set may have refreshed the key since the read lock was released.
	c.mu.Lock()
	defer c.mu.Unlock()
	if cur, ok := c.entries[key]; ok {
		if now.Before(cur.expiry) {
			return append([]byte(nil), cur.value...), true
		}
		delete(c.entries, key)
	}
	return nil, false
}

func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		if !now.Before(c.nextSweep) || len(c.entries) >= c.maxEntries {
			c.sweepLocked(now)
		}
		if len(c.entries) >= c.maxEntries {
			c.evictSoonestLocked()
		}
	}

	c.entries[key] = entry{
		value:  append([]byte(nil), value...),
		expiry: now.Add(ttl),
	}
	return nil
}

func (c *MemoryCache) sweepLocked(now time.Time) {
	for k, e := range c.entries {
		if !now.Before(e.expiry) {
			delete(c.entries, k)
		}
	}
	c.nextSweep = now.Add(sweepInterval)
}

func (c *MemoryCache) evictSoonestLocked() {
	var (
		victim  string
		soonest time.Time
		found   bool
	)
	for k, e := range c.entries {
		if !found || e.expiry.Before(soonest) {
			victim, soonest, found = k, e.expiry, true
		}
	}
	if found {
		delete(c.entries, victim)
	}
}

// Len returns the number of stored entries, including expired ones not yet evicted.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *MemoryCache) Close() error {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
	return nil
}
