package codeforces

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"
)

// CacheStats reports counters for one cache slot.
type CacheStats struct {
	Hits     int64 `json:"hits"`
	Misses   int64 `json:"misses"`
	Stale    int64 `json:"stale"`
	Failures int64 `json:"failures"`
}

// Cache is a single-slot TTL cache for a global judge dataset.
// Concurrent refreshes are collapsed into one load.
type Cache[T any] struct {
	name  string
	ttl   time.Duration
	clock clockwork.Clock

	mu        sync.RWMutex
	value     T
	fetchedAt time.Time
	filled    bool

	sf singleflight.Group

	hits, misses, stale, failures atomic.Int64
}

// NewCache creates an empty cache slot.
func NewCache[T any](name string, ttl time.Duration, clock clockwork.Clock) *Cache[T] {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Cache[T]{name: name, ttl: ttl, clock: clock}
}

// Name identifies the slot in logs and snapshots.
func (c *Cache[T]) Name() string {
	return c.name
}

// Get serves the cached value while it is within its TTL and otherwise calls load.
// When load fails an expired value is still served, marked Stale.
func (c *Cache[T]) Get(ctx context.Context, load func(ctx context.Context) (T, error)) Result[T] {
	if v, ok := c.fresh(); ok {
		c.hits.Add(1)
		return KnownResult(v)
	}
	c.misses.Add(1)

	res, err, _ := c.sf.Do(c.name, func() (any, error) {
		if v, ok := c.fresh(); ok {
			return v, nil
		}
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.Set(v)
		return v, nil
	})
	if err == nil {
		return KnownResult(res.(T))
	}

	c.failures.Add(1)
	if v, _, ok := c.Peek(); ok {
		c.stale.Add(1)
		return StaleResult(v, err)
	}
	return UnknownResult[T](err)
}

// Set stores v as fetched now.
func (c *Cache[T]) Set(v T) {
	c.SetAt(v, c.clock.Now())
}

// SetAt stores v with an explicit fetch time. A zero time seeds a value that is
// already expired, so the next Get still tries a refresh first.
func (c *Cache[T]) SetAt(v T, fetchedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	c.fetchedAt = fetchedAt
	c.filled = true
}

// Peek returns the stored value regardless of age.
func (c *Cache[T]) Peek() (T, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value, c.fetchedAt, c.filled
}

// Invalidate empties the slot.
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.value = zero
	c.fetchedAt = time.Time{}
	c.filled = false
}

// Stats returns the slot counters.
func (c *Cache[T]) Stats() CacheStats {
	return CacheStats{
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
		Stale:    c.stale.Load(),
		Failures: c.failures.Load(),
	}
}

func (c *Cache[T]) fresh() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.filled || c.ttl <= 0 {
		var zero T
		return zero, false
	}
	if c.clock.Since(c.fetchedAt) > c.ttl {
		var zero T
		return zero, false
	}
	return c.value, true
}

// Caches bundles the two global slots the client serves from.
type Caches struct {
	Contests *Cache[[]Contest]
	Problems *Cache[[]Problem]
}

// NewCaches builds the contest list and problem catalog slots from cfg.
func NewCaches(cfg Config, clock clockwork.Clock) Caches {
	return Caches{
		Contests: NewCache[[]Contest]("contest.list", cfg.ContestListTTL, clock),
		Problems: NewCache[[]Problem]("problemset.problems", cfg.ProblemsTTL, clock),
	}
}
