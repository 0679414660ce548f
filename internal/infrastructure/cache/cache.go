// Package cache provides a small byte-oriented key/value cache with
// in-memory, Redis and no-op drivers.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Supported drivers.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverNone   = "none"
)

// Cache stores opaque values under string keys with a per-entry TTL.
type Cache interface {
	// Get returns the value and true on a hit. Misses and backend failures
	// both report false; callers treat the cache as best-effort.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Close releases backend resources.
	Close() error
}

// Key builds a namespaced key from the given parts. The parts are hashed so
// user input never leaks into the key space.
func Key(namespace string, parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return namespace + ":" + hex.EncodeToString(hash[:])
}

// GetJSON reads key and decodes it into T. Undecodable entries count as a miss.
func GetJSON[T any](ctx context.Context, c Cache, key string) (T, bool) {
	var out T
	data, ok := c.Get(ctx, key)
	if !ok {
		return out, false
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, false
	}
	return out, true
}

// SetJSON encodes value and stores it under key.
func SetJSON[T any](ctx context.Context, c Cache, key string, value T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache value: %w", err)
	}
	return c.Set(ctx, key, data, ttl)
}

// Options selects and configures a cache driver.
type Options struct {
	Driver string
	Redis  RedisConfig

	// MaxEntries bounds the memory driver; zero uses DefaultMaxEntries
	MaxEntries int
}

// New builds the cache for the configured driver.
func New(opts Options) (Cache, error) {
	switch opts.Driver {
	case DriverMemory, "":
		return NewMemoryCacheWithLimit(nil, opts.MaxEntries), nil
	case DriverRedis:
		c, err := NewRedisCache(opts.Redis)
		if err != nil {
			return nil, err
		}
		return c, nil
	case DriverNone:
		return NewNoOpCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", opts.Driver)
	}
}

// NoOpCache never stores anything.
type NoOpCache struct{}

// NewNoOpCache creates a cache that always misses.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, key string) ([]byte, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

var (
	_ Cache = (*NoOpCache)(nil)
	_ Cache = (*MemoryCache)(nil)
	_ Cache = (*RedisCache)(nil)
)
