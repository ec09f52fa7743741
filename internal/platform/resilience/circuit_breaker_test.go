package resilience

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b := NewCircuitBreaker(CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      5 * time.Second,
		HalfOpenMaxReq:   1,
	}).WithClock(func() time.Time { return now })

	require.NoError(t, b.Allow())

	b.RecordFailure()
	require.Equal(t, CircuitStateClosed, b.State())

	b.RecordFailure()
	require.Equal(t, CircuitStateOpen, b.State())
	require.ErrorIs(t, b.Allow(), ErrCircuitOpen)

	now = now.Add(6 * time.Second)
	require.NoError(t, b.Allow(), "half-open probe should pass")
	require.Equal(t, CircuitStateHalfOpen, b.State())

	b.RecordSuccess()
	require.Equal(t, CircuitStateClosed, b.State())
}

func TestCircuitBreaker_ExecuteSkipsNonTrippingErrors(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 1})
	notFound := errors.New("no data")
	transient := errors.New("timeout")
	trips := func(err error) bool { return errors.Is(err, transient) }

	err := b.Execute(func() error { return notFound }, trips)
	require.ErrorIs(t, err, notFound)
	require.Equal(t, CircuitStateClosed, b.State())

	err = b.Execute(func() error { return transient }, trips)
	require.ErrorIs(t, err, transient)
	require.Equal(t, CircuitStateOpen, b.State())

	called := false
	err = b.Execute(func() error { called = true; return nil }, trips)
	require.ErrorIs(t, err, ErrCircuitOpen)
	require.False(t, called)
}

func TestCircuitBreaker_DisabledAlwaysAllows(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: false, FailureThreshold: 1})
	for i := 0; i < 5; i++ {
		b.RecordFailure()
	}
	require.NoError(t, b.Allow())
	require.Equal(t, CircuitStateClosed, b.State())
}
