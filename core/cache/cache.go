package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Clock supplies the current time used for expiry decisions.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Entry is the persisted form of a cached value.
type Entry struct {
	Value     json.RawMessage `json:"value"`
	FetchedAt time.Time       `json:"fetchedAt"`
	// TTL overrides the cache default when non-zero.
	TTL time.Duration `json:"ttl,omitempty"`
}

// Cache is a time-boxed key-value cache over a Store.
// Store failures are logged and behave like a miss.
type Cache struct {
	store  Store
	ttl    time.Duration
	clock  Clock
	logger *zap.Logger
	group  singleflight.Group
}

// New creates a cache with the default ttl.
func New(store Store, ttl time.Duration, clock Clock, logger *zap.Logger) *Cache {
	if store == nil {
		store = NewMemoryStore()
	}
	if clock == nil {
		clock = SystemClock
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{store: store, ttl: ttl, clock: clock, logger: logger}
}

// TTL returns the default time-to-live.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get decodes a fresh entry for key into dst and reports whether it was found.
// Absent, expired and undecodable entries are all misses.
func (c *Cache) Get(ctx context.Context, key string, dst any) bool {
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		c.logger.Warn("Discarding corrupt cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	if c.expired(entry) {
		c.logger.Debug("Cache entry expired", zap.String("key", key), zap.Time("fetched_at", entry.FetchedAt))
		return false
	}
	if err := json.Unmarshal(entry.Value, dst); err != nil {
		c.logger.Warn("Discarding undecodable cache value", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set stores value under key. A zero ttl uses the cache default.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache value %s: %w", key, err)
	}
	entry := Entry{Value: data, FetchedAt: c.clock.Now().UTC()}
	if ttl > 0 && ttl != c.ttl {
		entry.TTL = ttl
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cache entry %s: %w", key, err)
	}
	if err := c.store.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("store cache entry %s: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.store.Delete(ctx, key)
}

// Clear removes every entry.
func (c *Cache) Clear(ctx context.Context) error {
	return c.store.Clear(ctx)
}

func (c *Cache) expired(entry Entry) bool {
	ttl := c.ttl
	if entry.TTL > 0 {
		ttl = entry.TTL
	}
	if ttl <= 0 {
		return true
	}
	return c.clock.Now().Sub(entry.FetchedAt) >= ttl
}

// Loader produces a value and the ttl to store it with (zero for the default).
type Loader[T any] func(ctx context.Context) (T, time.Duration, error)

// GetOrLoad returns the cached value for key or runs load on a miss.
// Concurrent misses on one key share a single load. Load errors are returned
// uncached; a failing write is logged and the loaded value still returned.
func GetOrLoad[T any](ctx context.Context, c *Cache, key string, load Loader[T]) (T, error) {
	var value T
	if c.Get(ctx, key, &value) {
		return value, nil
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		var cached T
		if c.Get(ctx, key, &cached) {
			return cached, nil
		}
		loaded, ttl, err := load(ctx)
		if err != nil {
			return loaded, err
		}
		if err := c.Set(ctx, key, loaded, ttl); err != nil {
			c.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
		}
		return loaded, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result.(T), nil
}
