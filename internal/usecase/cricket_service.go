package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/cricket-scores/internal/domain/country"
	"github.com/riskibarqy/cricket-scores/internal/domain/match"
	"github.com/riskibarqy/cricket-scores/internal/domain/player"
	"github.com/riskibarqy/cricket-scores/internal/domain/series"
	"github.com/riskibarqy/cricket-scores/internal/platform/cache"
	"github.com/riskibarqy/cricket-scores/internal/platform/logging"
)

const (
	DefaultPageSize = 25
	DefaultMaxPages = 3
)

var errEmptyPages = errors.New("no rows on any page")

type CricketServiceConfig struct {
	PageSize int
	MaxPages int
}

// CricketService is the cached read side over the upstream API. Its Fetch
// methods never fail: any error is logged and an empty slice or nil is
// returned, so a screen can always render something.
type CricketService struct {
	provider CricketDataProvider
	cache    *cache.Store
	logger   *logging.Logger
	pageSize int
	maxPages int
}

func NewCricketService(provider CricketDataProvider, store *cache.Store, logger *logging.Logger, cfg CricketServiceConfig) *CricketService {
	if store == nil {
		store = cache.NewStore(cache.DefaultTTL)
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = DefaultMaxPages
	}

	return &CricketService{
		provider: provider,
		cache:    store,
		logger:   logger,
		pageSize: cfg.PageSize,
		maxPages: cfg.MaxPages,
	}
}

func (s *CricketService) FetchCountries(ctx context.Context) []country.Country {
	ctx, span := startUsecaseSpan(ctx, "usecase.CricketService.FetchCountries")
	defer span.End()

	out, err := cachedFetch(ctx, s, keyCountries, func(ctx context.Context) ([]country.Country, error) {
		return collectNonEmptyPages(ctx, s, keyCountries, s.provider.Countries)
	})
	return degradeList(ctx, s, keyCountries, out, err)
}

func (s *CricketService) FetchSeries(ctx context.Context, search string) []series.Series {
	ctx, span := startUsecaseSpan(ctx, "usecase.CricketService.FetchSeries")
	defer span.End()

	search = strings.TrimSpace(search)
	key := searchKey(keySeries, search)
	out, err := cachedFetch(ctx, s, key, func(ctx context.Context) ([]series.Series, error) {
		return s.provider.Series(ctx, 0, search)
	})
	return degradeList(ctx, s, key, out, err)
}

func (s *CricketService) FetchSeriesInfo(ctx context.Context, id string) *series.Info {
	ctx, span := startUsecaseSpan(ctx, "usecase.CricketService.FetchSeriesInfo")
	defer span.End()

	return fetchByID(ctx, s, keySeriesInfo, id, s.provider.SeriesInfo)
}

// FetchMatches returns up to MaxPages pages of the match list.
func (s *CricketService) FetchMatches(ctx context.Context) []match.Match {
	ctx, span := startUsecaseSpan(ctx, "usecase.CricketService.FetchMatches")
	defer span.End()

	out, err := cachedFetch(ctx, s, keyMatches, func(ctx context.Context) ([]match.Match, error) {
		return collectNonEmptyPages(ctx, s, keyMatches, s.provider.Matches)
	})
	return degradeList(ctx, s, keyMatches, out, err)
}

// FetchCurrentMatches returns up to MaxPages pages of in-progress and
// recently finished matches.
func (s *CricketService) FetchCurrentMatches(ctx context.Context) []match.Match {
	ctx, span := startUsecaseSpan(ctx, "usecase.CricketService.FetchCurrentMatches")
	defer span.End()

	out, err := cachedFetch(ctx, s, keyCurrentMatches, func(ctx context.Context) ([]match.Match, error) {
		return collectNonEmptyPages(ctx, s, keyCurrentMatches, s.provider.CurrentMatches)
	})
	return degradeList(ctx, s, keyCurrentMatches, out, err)
}

func (s *CricketService) FetchMatchInfo(ctx context.Context, id string) *match.Match {
	ctx, span := startUsecaseSpan(ctx, "usecase.CricketService.FetchMatchInfo")
	defer span.End()

	return fetchByID(ctx, s, keyMatchInfo, id, s.provider.MatchInfo)
}

// FetchMatchScorecard returns nil when the match has no scorecard yet,
// which is common and not worth more than a warning.
func (s *CricketService) FetchMatchScorecard(ctx context.Context, id string) *match.Scorecard {
	ctx, span := startUsecaseSpan(ctx, "usecase.CricketService.FetchMatchScorecard")
	defer span.End()

	return fetchByID(ctx, s, keyMatchScorecard, id, s.provider.MatchScorecard)
}

func (s *CricketService) FetchPlayers(ctx context.Context, search string) []player.Player {
	ctx, span := startUsecaseSpan(ctx, "usecase.CricketService.FetchPlayers")
	defer span.End()

	search = strings.TrimSpace(search)
	key := searchKey(keyPlayers, search)
	out, err := cachedFetch(ctx, s, key, func(ctx context.Context) ([]player.Player, error) {
		return s.provider.Players(ctx, 0, search)
	})
	return degradeList(ctx, s, key, out, err)
}

func (s *CricketService) FetchPlayerInfo(ctx context.Context, id string) *player.Info {
	ctx, span := startUsecaseSpan(ctx, "usecase.CricketService.FetchPlayerInfo")
	defer span.End()

	return fetchByID(ctx, s, keyPlayerInfo, id, s.provider.PlayerInfo)
}

// Invalidate drops every cached response. The next fetch of each resource
// goes upstream.
func (s *CricketService) Invalidate() {
	s.cache.Clear()
}

func cachedFetch[T any](ctx context.Context, s *CricketService, key string, load func(context.Context) (T, error)) (T, error) {
	var zero T
	value, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	if err != nil {
		return zero, err
	}

	out, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("cache entry %q holds %T", key, value)
	}
	return out, nil
}

func fetchByID[T any](ctx context.Context, s *CricketService, resource, id string, load func(context.Context, string) (T, error)) *T {
	id = strings.TrimSpace(id)
	if id == "" {
		s.logger.WarnContext(ctx, "fetch skipped", "resource", resource, "error", fmt.Errorf("%w: id is required", ErrInvalidInput))
		return nil
	}

	out, err := cachedFetch(ctx, s, cacheKey(resource, id), func(ctx context.Context) (T, error) {
		return load(ctx, id)
	})
	if err != nil {
		s.logger.WarnContext(ctx, "fetch failed, returning nothing", "resource", resource, "id", id, "error", err)
		return nil
	}
	return &out
}

func degradeList[T any](ctx context.Context, s *CricketService, resource string, out []T, err error) []T {
	switch {
	case errors.Is(err, errEmptyPages):
		s.logger.DebugContext(ctx, "fetch returned no rows", "resource", resource)
		return []T{}
	case err != nil:
		s.logger.WarnContext(ctx, "fetch failed, returning empty list", "resource", resource, "error", err)
		return []T{}
	case out == nil:
		return []T{}
	default:
		return out
	}
}

// collectNonEmptyPages walks offsets 0, pageSize, 2*pageSize... and stops on
// a short page, on an error, or after maxPages. Rows gathered before an
// error are kept; only an empty result is reported as a failure so that it
// never reaches the cache.
func collectNonEmptyPages[T any](ctx context.Context, s *CricketService, resource string, fetch func(context.Context, int) ([]T, error)) ([]T, error) {
	rows, err := collectPages(ctx, s.pageSize, s.maxPages, fetch)
	if len(rows) == 0 {
		if err != nil {
			return nil, err
		}
		return nil, errEmptyPages
	}
	if err != nil {
		s.logger.WarnContext(ctx, "pagination stopped early, keeping partial rows",
			"resource", resource,
			"rows", len(rows),
			"error", err,
		)
	}
	return rows, nil
}

func collectPages[T any](ctx context.Context, pageSize, maxPages int, fetch func(context.Context, int) ([]T, error)) ([]T, error) {
	rows := make([]T, 0, pageSize)
	for page := 0; page < maxPages; page++ {
		items, err := fetch(ctx, page*pageSize)
		if err != nil {
			return rows, fmt.Errorf("page %d: %w", page+1, err)
		}
		rows = append(rows, items...)
		if len(items) < pageSize {
			break
		}
	}
	return rows, nil
}
