package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 12, 15, 22, 0, 0, time.UTC)}
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("read failed")
}
func (brokenStore) Put(context.Context, string, []byte) error { return errors.New("write failed") }
func (brokenStore) Delete(context.Context, string) error      { return nil }
func (brokenStore) Clear(context.Context) error               { return nil }

func TestCache_Expiry(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	c := New(NewMemoryStore(), 24*time.Hour, clock, nil)

	require.NoError(t, c.Set(ctx, "version", "PRODUCTION-202601121522-867048149", 0))

	var got string
	assert.True(t, c.Get(ctx, "version", &got))
	assert.Equal(t, "PRODUCTION-202601121522-867048149", got)

	clock.Advance(23 * time.Hour)
	assert.True(t, c.Get(ctx, "version", &got))

	clock.Advance(time.Hour)
	assert.False(t, c.Get(ctx, "version", &got))
}

func TestCache_EntryTTLOverride(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	c := New(NewMemoryStore(), 24*time.Hour, clock, nil)

	require.NoError(t, c.Set(ctx, "catalog", []int{1, 2}, 5*time.Minute))

	var got []int
	assert.True(t, c.Get(ctx, "catalog", &got))
	clock.Advance(5 * time.Minute)
	assert.False(t, c.Get(ctx, "catalog", &got))
}

func TestCache_CorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Put(ctx, "version", []byte("{not json")))

	c := New(store, time.Hour, newClock(), nil)
	var got string
	assert.False(t, c.Get(ctx, "version", &got))
}

func TestCache_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	c := New(store, time.Hour, newClock(), nil)

	require.NoError(t, c.Set(ctx, "a", 1, 0))
	require.NoError(t, c.Set(ctx, "b", 2, 0))
	require.NoError(t, c.Delete(ctx, "a"))
	assert.Equal(t, 1, store.Len())

	require.NoError(t, c.Clear(ctx))
	assert.Equal(t, 0, store.Len())
}

func TestGetOrLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("LoadsOnceThenHits", func(t *testing.T) {
		c := New(NewMemoryStore(), time.Hour, newClock(), nil)
		var calls int32
		load := func(context.Context) (string, time.Duration, error) {
			atomic.AddInt32(&calls, 1)
			return "value", 0, nil
		}

		for i := 0; i < 3; i++ {
			got, err := GetOrLoad(ctx, c, "k", load)
			require.NoError(t, err)
			assert.Equal(t, "value", got)
		}
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("ErrorsAreNotCached", func(t *testing.T) {
		c := New(NewMemoryStore(), time.Hour, newClock(), nil)
		_, err := GetOrLoad(ctx, c, "k", func(context.Context) (int, time.Duration, error) {
			return 0, 0, errors.New("boom")
		})
		assert.EqualError(t, err, "boom")

		got, err := GetOrLoad(ctx, c, "k", func(context.Context) (int, time.Duration, error) {
			return 7, 0, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 7, got)
	})

	t.Run("BrokenStoreStillLoads", func(t *testing.T) {
		c := New(brokenStore{}, time.Hour, newClock(), nil)
		got, err := GetOrLoad(ctx, c, "k", func(context.Context) (string, time.Duration, error) {
			return "fresh", 0, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "fresh", got)
	})
}

func TestOpenStore(t *testing.T) {
	s, err := OpenStore("", Backends{})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	_, err = OpenStore(BackendDatabase, Backends{})
	assert.Error(t, err)

	_, err = OpenStore(BackendStorage, Backends{})
	assert.Error(t, err)

	_, err = OpenStore("redis", Backends{})
	assert.ErrorContains(t, err, "unknown cache backend")
}
