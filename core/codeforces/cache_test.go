package codeforces

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestCache_TTL(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	cache := NewCache[[]int]("nums", time.Hour, clock)

	var loads int
	load := func(context.Context) ([]int, error) {
		loads++
		return []int{loads}, nil
	}

	res := cache.Get(ctx, load)
	assert.True(t, res.Known())
	assert.Equal(t, []int{1}, res.Value)

	clock.Advance(59 * time.Minute)
	res = cache.Get(ctx, load)
	assert.Equal(t, []int{1}, res.Value)
	assert.Equal(t, 1, loads)

	clock.Advance(2 * time.Minute)
	res = cache.Get(ctx, load)
	assert.Equal(t, []int{2}, res.Value)
	assert.Equal(t, 2, loads)

	stats := cache.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
}

func TestCache_ServesStaleOnFailure(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	cache := NewCache[string]("list", time.Minute, clock)

	cache.Get(ctx, func(context.Context) (string, error) { return "v1", nil })
	clock.Advance(time.Hour)

	res := cache.Get(ctx, func(context.Context) (string, error) { return "", errors.New("down") })
	assert.True(t, res.Known())
	assert.True(t, res.Stale())
	assert.Equal(t, "v1", res.Value)
	assert.EqualError(t, res.Err, "down")
	assert.Equal(t, int64(1), cache.Stats().Stale)
}

func TestCache_UnknownWhenEmpty(t *testing.T) {
	cache := NewCache[[]Contest]("contest.list", time.Minute, clockwork.NewFakeClock())

	res := cache.Get(context.Background(), func(context.Context) ([]Contest, error) {
		return nil, errors.New("down")
	})
	assert.False(t, res.Known())
	assert.Nil(t, res.Value)
	assert.Equal(t, int64(1), cache.Stats().Failures)
}

func TestCache_SeededExpiredValueIsRefreshedFirst(t *testing.T) {
	cache := NewCache[string]("list", time.Minute, clockwork.NewFakeClock())
	cache.SetAt("old", time.Time{})

	res := cache.Get(context.Background(), func(context.Context) (string, error) { return "new", nil })
	assert.Equal(t, "new", res.Value)
	assert.False(t, res.Stale())
}

func TestCache_CollapsesConcurrentRefresh(t *testing.T) {
	cache := NewCache[int]("n", time.Minute, clockwork.NewFakeClock())

	var loads atomic.Int32
	release := make(chan struct{})
	load := func(context.Context) (int, error) {
		loads.Add(1)
		<-release
		return 7, nil
	}

	var wg sync.WaitGroup
	results := make([]Result[int], 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = cache.Get(context.Background(), load)
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, 7, r.Value)
	}
	assert.LessOrEqual(t, loads.Load(), int32(8))
	assert.GreaterOrEqual(t, loads.Load(), int32(1))
}

func TestCache_Invalidate(t *testing.T) {
	cache := NewCache[string]("x", time.Hour, clockwork.NewFakeClock())
	cache.Set("a")
	cache.Invalidate()

	_, _, ok := cache.Peek()
	assert.False(t, ok)
}
