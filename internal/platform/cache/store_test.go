package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func TestStore_GetAfterSetReturnsPayload(t *testing.T) {
	t.Parallel()

	clock := newClock()
	store := NewStore(DefaultTTL, WithClock(clock.Now))
	ctx := context.Background()

	store.Set(ctx, "matches", []string{"m1", "m2"})
	got, ok := store.Get(ctx, "matches")
	require.True(t, ok)
	require.Equal(t, []string{"m1", "m2"}, got)
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	clock := newClock()
	store := NewStore(5*time.Minute, WithClock(clock.Now))
	ctx := context.Background()

	store.Set(ctx, "countries", "v1")

	clock.Advance(5*time.Minute - time.Second)
	_, ok := store.Get(ctx, "countries")
	require.True(t, ok, "entry is fresh just before the TTL")

	clock.Advance(time.Second)
	_, ok = store.Get(ctx, "countries")
	require.False(t, ok, "entry is stale at exactly the TTL")
	require.Equal(t, 1, store.Len(), "stale entries stay in place")
}

func TestStore_SetAfterExpiryResetsFreshness(t *testing.T) {
	t.Parallel()

	clock := newClock()
	store := NewStore(time.Minute, WithClock(clock.Now))
	ctx := context.Background()

	store.Set(ctx, "k", "old")
	clock.Advance(2 * time.Minute)
	store.Set(ctx, "k", "new")

	got, ok := store.Get(ctx, "k")
	require.True(t, ok)
	require.Equal(t, "new", got)

	clock.Advance(59 * time.Second)
	_, ok = store.Get(ctx, "k")
	require.True(t, ok)
}

func TestStore_EmptyKeyIsIgnored(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	store.Set(context.Background(), "", "x")
	_, ok := store.Get(context.Background(), "")
	require.False(t, ok)
	require.Zero(t, store.Len())
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()
	store.Set(ctx, "players:search:kohli", 1)
	store.Set(ctx, "players:search:root", 2)
	store.Set(ctx, "matches", 3)

	store.DeletePrefix(ctx, "players:")
	require.Equal(t, 1, store.Len())
	_, ok := store.Get(ctx, "matches")
	require.True(t, ok)
}

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	require.EqualValues(t, 1, calls.Load())
}

func TestStore_GetOrLoad_UsesCachedValueUntilExpiry(t *testing.T) {
	t.Parallel()

	clock := newClock()
	store := NewStore(time.Minute, WithClock(clock.Now))
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		return int(calls.Add(1)), nil
	}

	v, err := store.GetOrLoad(context.Background(), "k", loader)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	v, err = store.GetOrLoad(context.Background(), "k", loader)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	clock.Advance(time.Minute)
	v, err = store.GetOrLoad(context.Background(), "k", loader)
	require.NoError(t, err)
	require.Equal(t, 2, v)
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	failing := errors.New("upstream down")

	_, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (any, error) {
		return nil, failing
	})
	require.ErrorIs(t, err, failing)
	require.Zero(t, store.Len())
}

var errUnexpectedValue = errors.New("unexpected loaded value")
