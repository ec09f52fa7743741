package series

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusAt(t *testing.T) {
	t.Parallel()

	s := Series{Name: "Border-Gavaskar Trophy", StartDate: "2024-11-22", EndDate: "Jan 07"}
	at := func(v string) time.Time {
		tm, err := time.Parse(time.RFC3339, v)
		require.NoError(t, err)
		return tm
	}

	assert.Equal(t, StatusUpcoming, StatusAt(s, at("2024-11-21T23:59:59Z")))
	assert.Equal(t, StatusOngoing, StatusAt(s, at("2024-11-22T00:00:00Z")))
	assert.Equal(t, StatusOngoing, StatusAt(s, at("2025-01-07T18:00:00Z")))
	assert.Equal(t, StatusCompleted, StatusAt(s, at("2025-01-08T00:00:00Z")))
}

func TestStatusAt_Unknown(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, StatusUnknown, StatusAt(Series{StartDate: "2024-01-01"}, now))
	assert.Equal(t, StatusUnknown, StatusAt(Series{EndDate: "Mar 13"}, now))
	assert.Equal(t, StatusUnknown, StatusAt(Series{StartDate: "soon", EndDate: "later"}, now))
}

func TestWindow_YearlessEndSameYear(t *testing.T) {
	t.Parallel()

	start, end, ok := Window(Series{StartDate: "2024-03-01", EndDate: "Mar 13"})
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), end)
}

func TestProgress(t *testing.T) {
	t.Parallel()

	s := Series{StartDate: "2024-03-01", EndDate: "2024-03-10"}
	assert.Equal(t, 0.0, Progress(s, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0.5, Progress(s, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1.0, Progress(s, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Series", Format(Series{}))
	assert.Equal(t, "ODI", Format(Series{ODI: 3}))
	assert.Equal(t, "Test", Format(Series{Test: 5}))
	assert.Equal(t, "Mixed", Format(Series{T20: 3, ODI: 3}))
}

func TestValid(t *testing.T) {
	t.Parallel()

	assert.True(t, Valid(Series{Name: "IPL", StartDate: "2024-03-22"}))
	assert.False(t, Valid(Series{Name: "IPL"}))
	assert.False(t, Valid(Series{StartDate: "2024-03-22"}))
}

func TestSortByStartDesc(t *testing.T) {
	t.Parallel()

	items := []Series{
		{ID: "old", StartDate: "2023-01-01"},
		{ID: "bad", StartDate: "n/a"},
		{ID: "new", StartDate: "2024-06-01"},
	}
	SortByStartDesc(items)

	assert.Equal(t, "new", items[0].ID)
	assert.Equal(t, "old", items[1].ID)
	assert.Equal(t, "bad", items[2].ID)
}
