package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/cricket-scores/internal/domain/match"
	"github.com/riskibarqy/cricket-scores/internal/domain/player"
	"github.com/riskibarqy/cricket-scores/internal/domain/series"
	"github.com/riskibarqy/cricket-scores/internal/platform/logging"
)

const (
	homeLiveLimit     = 5
	homeUpcomingLimit = 5
	homeTrendingLimit = 10

	DefaultBoardWorkers = 4
)

type boardFetcher interface {
	FetchSeries(ctx context.Context, search string) []series.Series
	FetchSeriesInfo(ctx context.Context, id string) *series.Info
	FetchMatches(ctx context.Context) []match.Match
	FetchCurrentMatches(ctx context.Context) []match.Match
	FetchMatchInfo(ctx context.Context, id string) *match.Match
	FetchMatchScorecard(ctx context.Context, id string) *match.Scorecard
	FetchPlayers(ctx context.Context, search string) []player.Player
}

type flagDirectory interface {
	Initialize(ctx context.Context)
	Lookup(name string) (string, bool)
}

type HomeBoard struct {
	Live     []match.Match
	Upcoming []match.Match
	Trending []PlayerRow
}

type PlayerRow struct {
	Player player.Player
	Flag   string
}

type SeriesRow struct {
	Series   series.Series
	Status   series.Status
	Format   string
	Progress float64
}

type TeamLine struct {
	Name      string
	ShortName string
	Flag      string
	Score     string
}

// MatchDetail is everything the match screen shows. Scorecard is nil for
// matches the upstream has no scorecard for.
type MatchDetail struct {
	Match      match.Match
	Category   match.Category
	Date       string
	BadgeColor string
	Teams      [2]TeamLine
	Scorecard  *match.Scorecard
}

type BoardServiceConfig struct {
	MaxWorkers int
	Now        func() time.Time
}

// BoardService assembles screen-ready views from the cached fetchers.
// Nothing here returns an error for upstream trouble: a failed fetch shows
// up as an empty section.
type BoardService struct {
	fetcher    boardFetcher
	directory  flagDirectory
	logger     *logging.Logger
	maxWorkers int
	now        func() time.Time
}

func NewBoardService(fetcher boardFetcher, directory flagDirectory, logger *logging.Logger, cfg BoardServiceConfig) *BoardService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = DefaultBoardWorkers
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &BoardService{
		fetcher:    fetcher,
		directory:  directory,
		logger:     logger,
		maxWorkers: cfg.MaxWorkers,
		now:        cfg.Now,
	}
}

// Home fetches current matches, all matches and players together and waits
// for all three.
func (s *BoardService) Home(ctx context.Context) HomeBoard {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.Home")
	defer span.End()

	s.directory.Initialize(ctx)

	var (
		current []match.Match
		all     []match.Match
		players []player.Player
		wg      conc.WaitGroup
	)
	wg.Go(func() { current = s.fetcher.FetchCurrentMatches(ctx) })
	wg.Go(func() { all = s.fetcher.FetchMatches(ctx) })
	wg.Go(func() { players = s.fetcher.FetchPlayers(ctx, "") })
	wg.Wait()

	live := liveOnly(current)
	liveIDs := make(map[string]struct{}, len(live))
	for _, m := range live {
		liveIDs[m.ID] = struct{}{}
	}

	upcoming := make([]match.Match, 0, homeUpcomingLimit)
	for _, m := range all {
		if !match.IsUpcoming(m.Status) {
			continue
		}
		if _, dup := liveIDs[m.ID]; dup {
			continue
		}
		upcoming = append(upcoming, m)
	}

	trending := make([]PlayerRow, 0, homeTrendingLimit)
	for _, p := range limit(players, homeTrendingLimit) {
		flag, _ := s.directory.Lookup(p.Country)
		trending = append(trending, PlayerRow{Player: p, Flag: flag})
	}

	return HomeBoard{
		Live:     limit(live, homeLiveLimit),
		Upcoming: limit(upcoming, homeUpcomingLimit),
		Trending: trending,
	}
}

// LiveMatches is the live tab: current matches whose status reads live.
func (s *BoardService) LiveMatches(ctx context.Context) []match.Match {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.LiveMatches")
	defer span.End()

	return liveOnly(s.fetcher.FetchCurrentMatches(ctx))
}

// MatchesTab filters the full match list by tab and query, then groups the
// result by series.
func (s *BoardService) MatchesTab(ctx context.Context, tab match.Tab, query string) []match.Group {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.MatchesTab")
	defer span.End()

	return match.GroupBySeries(match.Filter(s.fetcher.FetchMatches(ctx), tab, query))
}

// SeriesBoard lists valid series, most recent start first.
func (s *BoardService) SeriesBoard(ctx context.Context, search string) []SeriesRow {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.SeriesBoard")
	defer span.End()

	fetched := s.fetcher.FetchSeries(ctx, search)
	valid := make([]series.Series, 0, len(fetched))
	for _, item := range fetched {
		if series.Valid(item) {
			valid = append(valid, item)
		}
	}
	series.SortByStartDesc(valid)

	now := s.now()
	rows := make([]SeriesRow, 0, len(valid))
	for _, item := range valid {
		rows = append(rows, SeriesRow{
			Series:   item,
			Status:   series.StatusAt(item, now),
			Format:   series.Format(item),
			Progress: series.Progress(item, now),
		})
	}
	return rows
}

// SeriesDetails loads series info for each id through a bounded worker
// pool. The result lines up with ids; a failed load leaves nil.
func (s *BoardService) SeriesDetails(ctx context.Context, ids []string) ([]*series.Info, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.SeriesDetails")
	defer span.End()

	out := make([]*series.Info, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	pool, err := ants.NewPool(min(s.maxWorkers, len(ids)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, id := range ids {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if ctx.Err() != nil {
				return
			}
			out[i] = s.fetcher.FetchSeriesInfo(ctx, id)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit series %q to worker pool: %w", id, err)
		}
	}
	workers.Wait()

	if err := ctx.Err(); err != nil {
		return out, err
	}
	return out, nil
}

// MatchDetail loads the match and its scorecard together. The scorecard
// carries the match fields too, so it wins when both arrive.
func (s *BoardService) MatchDetail(ctx context.Context, id string) (MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.MatchDetail")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return MatchDetail{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	s.directory.Initialize(ctx)

	var (
		info      *match.Match
		scorecard *match.Scorecard
		wg        conc.WaitGroup
	)
	wg.Go(func() { info = s.fetcher.FetchMatchInfo(ctx, id) })
	wg.Go(func() { scorecard = s.fetcher.FetchMatchScorecard(ctx, id) })
	wg.Wait()

	var m match.Match
	switch {
	case scorecard != nil:
		m = scorecard.Match
	case info != nil:
		m = *info
	default:
		return MatchDetail{}, fmt.Errorf("%w: match %s", ErrNotFound, id)
	}

	detail := MatchDetail{
		Match:      m,
		Category:   match.Classify(m.Status),
		Date:       match.FormatDate(firstNonEmpty(m.DateTimeGMT, m.Date)),
		BadgeColor: match.TypeBadgeColor(m.MatchType),
		Scorecard:  scorecard,
	}
	for idx := range detail.Teams {
		name := m.Team(idx)
		flag, _ := s.directory.Lookup(name)
		detail.Teams[idx] = TeamLine{
			Name:      name,
			ShortName: shortNameFor(m, name),
			Flag:      flag,
			Score:     match.ScoreLine(m, idx),
		}
	}
	return detail, nil
}

func liveOnly(matches []match.Match) []match.Match {
	out := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if match.IsLive(m.Status) {
			out = append(out, m)
		}
	}
	return out
}

func limit[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func shortNameFor(m match.Match, team string) string {
	for _, info := range m.TeamInfo {
		if strings.EqualFold(info.Name, team) {
			return info.ShortName
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
