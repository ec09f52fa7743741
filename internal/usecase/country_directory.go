package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/riskibarqy/cricket-scores/internal/domain/country"
	"github.com/riskibarqy/cricket-scores/internal/platform/logging"
	"github.com/riskibarqy/cricket-scores/internal/platform/resilience"
)

type countryFetcher interface {
	FetchCountries(ctx context.Context) []country.Country
}

// CountryDirectory resolves country names and ids to flag URLs. It is
// filled once per process; lookups before that report absent.
type CountryDirectory struct {
	fetcher countryFetcher
	logger  *logging.Logger
	flight  resilience.Group

	mu        sync.RWMutex
	countries []country.Country
	byName    map[string]int
	byID      map[string]int
}

func NewCountryDirectory(fetcher countryFetcher, logger *logging.Logger) *CountryDirectory {
	if logger == nil {
		logger = logging.Default()
	}
	return &CountryDirectory{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Initialize loads the directory if it is still empty. A failed load
// leaves it empty and the next call tries again. Concurrent callers share
// one load; a caller whose ctx ends stops waiting without cancelling it.
func (d *CountryDirectory) Initialize(ctx context.Context) {
	if d.Len() > 0 {
		return
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.CountryDirectory.Initialize")
	defer span.End()

	loadCtx := context.WithoutCancel(ctx)
	_, err, _ := d.flight.DoContext(ctx, keyCountries, func() (any, error) {
		if d.Len() > 0 {
			return nil, nil
		}
		items := d.fetcher.FetchCountries(loadCtx)
		if len(items) == 0 {
			d.logger.WarnContext(loadCtx, "country directory still empty after load")
			return nil, nil
		}
		d.replace(items)
		d.logger.InfoContext(loadCtx, "country directory loaded", "countries", len(items))
		return nil, nil
	})
	if err != nil {
		d.logger.DebugContext(ctx, "stopped waiting for country directory", "error", err)
	}
}

// Lookup returns the flag URL for a country name, compared without case
// and surrounding spaces. A country with an empty flag counts as absent.
func (d *CountryDirectory) Lookup(name string) (string, bool) {
	key := normalizeCountryName(name)
	if key == "" {
		return "", false
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	idx, ok := d.byName[key]
	if !ok {
		return "", false
	}
	flag := d.countries[idx].GenericFlag
	return flag, flag != ""
}

func (d *CountryDirectory) LookupByID(id string) (string, bool) {
	if id == "" {
		return "", false
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	idx, ok := d.byID[id]
	if !ok {
		return "", false
	}
	flag := d.countries[idx].GenericFlag
	return flag, flag != ""
}

// Search lists countries whose name contains query, followed by looser
// fuzzy hits ranked by edit distance. A blank query returns everything.
func (d *CountryDirectory) Search(query string) []country.Country {
	q := strings.TrimSpace(query)

	d.mu.RLock()
	defer d.mu.RUnlock()

	if q == "" {
		return append([]country.Country(nil), d.countries...)
	}

	lower := strings.ToLower(q)
	out := make([]country.Country, 0)
	seen := make(map[int]struct{})
	for i, c := range d.countries {
		if strings.Contains(strings.ToLower(c.Name), lower) {
			out = append(out, c)
			seen[i] = struct{}{}
		}
	}

	names := make([]string, len(d.countries))
	for i, c := range d.countries {
		names[i] = c.Name
	}
	ranks := fuzzy.RankFindFold(q, names)
	sort.Stable(ranks)
	for _, r := range ranks {
		if _, dup := seen[r.OriginalIndex]; dup {
			continue
		}
		seen[r.OriginalIndex] = struct{}{}
		out = append(out, d.countries[r.OriginalIndex])
	}

	return out
}

func (d *CountryDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.countries)
}

func (d *CountryDirectory) replace(items []country.Country) {
	byName := make(map[string]int, len(items))
	byID := make(map[string]int, len(items))
	for i, c := range items {
		if key := normalizeCountryName(c.Name); key != "" {
			if _, exists := byName[key]; !exists {
				byName[key] = i
			}
		}
		if c.ID != "" {
			if _, exists := byID[c.ID]; !exists {
				byID[c.ID] = i
			}
		}
	}

	d.mu.Lock()
	d.countries = append([]country.Country(nil), items...)
	d.byName = byName
	d.byID = byID
	d.mu.Unlock()
}

// normalizeCountryName folds case and drops leading and trailing spaces on
// both the stored and the queried name. Inner spacing and punctuation still
// have to match exactly; "Sri  Lanka" is not "Sri Lanka".
func normalizeCountryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
