package refresh

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricket-scores/internal/platform/logging"
)

func newTestRefresher(t *testing.T, interval time.Duration) *Refresher {
	t.Helper()

	r, err := New(interval, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Shutdown() })
	return r
}

func TestRefresher_RunsImmediatelyAndRepeats(t *testing.T) {
	t.Parallel()

	r := newTestRefresher(t, 40*time.Millisecond)

	var runs atomic.Int32
	unmount, err := r.Mount("home", func(context.Context) error {
		runs.Add(1)
		return nil
	})
	require.NoError(t, err)
	defer unmount()

	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, 500*time.Millisecond, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, r.Mounted("home"))
}

func TestRefresher_UnmountCancelsInFlightRun(t *testing.T) {
	t.Parallel()

	r := newTestRefresher(t, time.Hour)

	started := make(chan struct{})
	var cancelled atomic.Bool
	unmount, err := r.Mount("live", func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		cancelled.Store(true)
		return ctx.Err()
	})
	require.NoError(t, err)

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("refresh did not start")
	}

	unmount()
	unmount()

	assert.Eventually(t, cancelled.Load, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, r.Mounted("live"))
}

func TestRefresher_StopsAfterUnmount(t *testing.T) {
	t.Parallel()

	r := newTestRefresher(t, 20*time.Millisecond)

	var runs atomic.Int32
	unmount, err := r.Mount("matches", func(context.Context) error {
		runs.Add(1)
		return errors.New("upstream down")
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
	unmount()

	time.Sleep(30 * time.Millisecond)
	settled := runs.Load()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, settled, runs.Load())
}

func TestRefresher_NoOverlappingRuns(t *testing.T) {
	t.Parallel()

	r := newTestRefresher(t, 10*time.Millisecond)

	var active, maxActive, runs atomic.Int32
	unmount, err := r.Mount("slow", func(context.Context) error {
		n := active.Add(1)
		for {
			current := maxActive.Load()
			if n <= current || maxActive.CompareAndSwap(current, n) {
				break
			}
		}
		time.Sleep(40 * time.Millisecond)
		active.Add(-1)
		runs.Add(1)
		return nil
	})
	require.NoError(t, err)
	defer unmount()

	require.Eventually(t, func() bool { return runs.Load() >= 3 }, 2*time.Second, 10*time.Millisecond)
	assert.EqualValues(t, 1, maxActive.Load())
}

func TestRefresher_MountValidation(t *testing.T) {
	t.Parallel()

	r := newTestRefresher(t, 0)
	assert.Equal(t, DefaultInterval, r.Interval())

	_, err := r.Mount(" ", func(context.Context) error { return nil })
	assert.Error(t, err)

	_, err = r.Mount("home", nil)
	assert.Error(t, err)

	require.NoError(t, r.Shutdown())
	_, err = r.Mount("home", func(context.Context) error { return nil })
	assert.Error(t, err)
}
