package cricapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricket-scores/internal/platform/logging"
	"github.com/riskibarqy/cricket-scores/internal/platform/resilience"
	"github.com/riskibarqy/cricket-scores/internal/usecase"
)

const testKey = "secret-key-123"

func newTestClient(t *testing.T, handler http.HandlerFunc, retries int) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(ClientConfig{
		HTTPClient:   srv.Client(),
		BaseURL:      srv.URL,
		APIKey:       testKey,
		MaxRetries:   retries,
		RetryBackoff: time.Millisecond,
		Logger:       logging.NewNop(),
	})
}

func TestClient_CurrentMatches_SendsKeyAndOffset(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/currentMatches", r.URL.Path)
		assert.Equal(t, testKey, r.URL.Query().Get("apikey"))
		assert.Equal(t, "25", r.URL.Query().Get("offset"))
		_, _ = w.Write([]byte(`{
			"status": "success",
			"data": [{
				"id": "m1",
				"name": "India vs Australia, 1st Test, BGT 2024",
				"status": "Day 2: Stumps",
				"teams": ["India", "Australia"],
				"score": [{"r": 150, "w": 10, "o": 49.4, "inning": "India Inning 1"}],
				"series_id": "s1"
			}],
			"info": {"hitsToday": 10, "hitsLimit": 100}
		}`))
	}, 0)

	matches, err := client.CurrentMatches(context.Background(), 25)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "m1", matches[0].ID)
	assert.Equal(t, "s1", matches[0].SeriesID)
	require.Len(t, matches[0].Score, 1)
	assert.Equal(t, 49.4, matches[0].Score[0].Overs)
}

func TestClient_SeriesSearchParam(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ipl", r.URL.Query().Get("search"))
		_, _ = w.Write([]byte(`{"status":"success","data":[{"id":"s1","name":"IPL 2024","startDate":"2024-03-22","endDate":"May 26","t20":74}]}`))
	}, 0)

	items, err := client.Series(context.Background(), 0, " ipl ")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 74, items[0].T20)
}

func TestClient_FailureStatus(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"failure","reason":"invalid apikey=` + testKey + `"}`))
	}, 0)

	_, err := client.Matches(context.Background(), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFailureStatus))
	assert.NotContains(t, err.Error(), testKey)
}

func TestClient_NullData(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","data":null}`))
	}, 0)

	_, err := client.MatchScorecard(context.Background(), "m1")
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestClient_EmptyListIsNotNoData(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","data":[]}`))
	}, 0)

	items, err := client.Players(context.Background(), 0, "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClient_MalformedJSON(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":`))
	}, 0)

	_, err := client.Countries(context.Background(), 0)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrFailureStatus))
	assert.False(t, IsTransient(err))
}

func TestClient_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"status":"success","data":{"id":"p1","name":"Virat Kohli","playerImg":"https://h.cricapi.com/img/p1.png"}}`))
	}, 1)

	info, err := client.PlayerInfo(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Virat Kohli", info.Name)
	assert.EqualValues(t, 2, calls.Load())
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}, 3)

	_, err := client.MatchInfo(context.Background(), "m1")
	require.Error(t, err)
	assert.False(t, IsTransient(err))
	assert.EqualValues(t, 1, calls.Load())
}

func TestClient_CircuitOpensAfterTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
		APIKey:     testKey,
		Logger:     logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	for i := 0; i < 2; i++ {
		_, err := client.SeriesInfo(context.Background(), "s1")
		require.True(t, IsTransient(err))
	}

	_, err := client.SeriesInfo(context.Background(), "s1")
	assert.True(t, errors.Is(err, usecase.ErrDependencyUnavailable))
	assert.EqualValues(t, 2, calls.Load())
}

func TestRedactAPIURL(t *testing.T) {
	t.Parallel()

	got := redactAPIURL("https://api.cricapi.com/v1/matches?apikey=" + testKey + "&offset=0")
	assert.False(t, strings.Contains(got, testKey))
	assert.Contains(t, got, "apikey=REDACTED")
}
