package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricket-scores/internal/domain/country"
	"github.com/riskibarqy/cricket-scores/internal/platform/logging"
)

type stubCountryFetcher struct {
	calls   atomic.Int32
	results [][]country.Country
}

func (f *stubCountryFetcher) FetchCountries(context.Context) []country.Country {
	n := int(f.calls.Add(1)) - 1
	if n < len(f.results) {
		return f.results[n]
	}
	return f.results[len(f.results)-1]
}

var testCountries = []country.Country{
	{ID: "c-ind", Name: "India", GenericFlag: "https://flags/ind.png"},
	{ID: "c-wi", Name: "West Indies", GenericFlag: "https://flags/wi.png"},
	{ID: "c-aus", Name: "Australia", GenericFlag: "https://flags/aus.png"},
	{ID: "c-ire", Name: "Ireland", GenericFlag: "https://flags/ire.png"},
	{ID: "c-xx", Name: "Nowhere", GenericFlag: ""},
	{ID: "c-ind2", Name: "INDIA", GenericFlag: "https://flags/other.png"},
}

func TestCountryDirectory_LookupBeforeInitialize(t *testing.T) {
	t.Parallel()

	dir := NewCountryDirectory(&stubCountryFetcher{results: [][]country.Country{testCountries}}, logging.NewNop())

	_, ok := dir.Lookup("India")
	assert.False(t, ok)
	_, ok = dir.LookupByID("c-ind")
	assert.False(t, ok)
	assert.Empty(t, dir.Search("ind"))
}

func TestCountryDirectory_Lookup(t *testing.T) {
	t.Parallel()

	dir := NewCountryDirectory(&stubCountryFetcher{results: [][]country.Country{testCountries}}, logging.NewNop())
	dir.Initialize(context.Background())
	require.Equal(t, len(testCountries), dir.Len())

	for _, name := range []string{"India", "india", " INDIA "} {
		flag, ok := dir.Lookup(name)
		assert.True(t, ok, name)
		assert.Equal(t, "https://flags/ind.png", flag, name)
	}

	_, ok := dir.Lookup("Atlantis")
	assert.False(t, ok)
	_, ok = dir.Lookup("Nowhere")
	assert.False(t, ok)
	_, ok = dir.Lookup("")
	assert.False(t, ok)

	flag, ok := dir.LookupByID("c-aus")
	assert.True(t, ok)
	assert.Equal(t, "https://flags/aus.png", flag)
}

func TestCountryDirectory_RetriesAfterEmptyLoad(t *testing.T) {
	t.Parallel()

	fetcher := &stubCountryFetcher{results: [][]country.Country{{}, testCountries}}
	dir := NewCountryDirectory(fetcher, logging.NewNop())

	dir.Initialize(context.Background())
	assert.Equal(t, 0, dir.Len())

	dir.Initialize(context.Background())
	assert.Equal(t, len(testCountries), dir.Len())

	dir.Initialize(context.Background())
	assert.EqualValues(t, 2, fetcher.calls.Load())
}

func TestCountryDirectory_ConcurrentInitializeLoadsOnce(t *testing.T) {
	t.Parallel()

	fetcher := &stubCountryFetcher{results: [][]country.Country{testCountries}}
	dir := NewCountryDirectory(fetcher, logging.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dir.Initialize(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, len(testCountries), dir.Len())
	assert.EqualValues(t, 1, fetcher.calls.Load())
	_, ok := dir.Lookup("Ireland")
	assert.True(t, ok)
}

func TestCountryDirectory_Search(t *testing.T) {
	t.Parallel()

	dir := NewCountryDirectory(&stubCountryFetcher{results: [][]country.Country{testCountries[:4]}}, logging.NewNop())
	dir.Initialize(context.Background())

	names := func(items []country.Country) []string {
		out := make([]string, 0, len(items))
		for _, c := range items {
			out = append(out, c.Name)
		}
		return out
	}

	assert.Equal(t, []string{"India", "West Indies", "Ireland"}, names(dir.Search("ind")))
	assert.Len(t, dir.Search("  "), 4)
	assert.Empty(t, dir.Search("zz"))
}

func TestCountryDirectory_LookupIgnoresOuterSpacesOnly(t *testing.T) {
	t.Parallel()

	padded := []country.Country{{ID: "c-sl", Name: "  Sri Lanka ", GenericFlag: "https://flags/sl.png"}}
	dir := NewCountryDirectory(&stubCountryFetcher{results: [][]country.Country{padded}}, logging.NewNop())
	dir.Initialize(context.Background())

	for _, name := range []string{"Sri Lanka", "sri lanka", "\tSRI LANKA\n"} {
		flag, ok := dir.Lookup(name)
		assert.True(t, ok, "%q", name)
		assert.Equal(t, "https://flags/sl.png", flag, "%q", name)
	}
	for _, name := range []string{"SriLanka", "Sri  Lanka", "Sri Lanka.", "Lanka"} {
		_, ok := dir.Lookup(name)
		assert.False(t, ok, "%q", name)
	}
}
