package usecase

import (
	"context"

	"github.com/riskibarqy/cricket-scores/internal/domain/country"
	"github.com/riskibarqy/cricket-scores/internal/domain/match"
	"github.com/riskibarqy/cricket-scores/internal/domain/player"
	"github.com/riskibarqy/cricket-scores/internal/domain/series"
)

// CricketDataProvider is the upstream the fetchers read from. Every method
// returns an error on any failure; deciding what to show instead is left to
// the caller.
type CricketDataProvider interface {
	Countries(ctx context.Context, offset int) ([]country.Country, error)
	Series(ctx context.Context, offset int, search string) ([]series.Series, error)
	SeriesInfo(ctx context.Context, id string) (series.Info, error)
	Matches(ctx context.Context, offset int) ([]match.Match, error)
	CurrentMatches(ctx context.Context, offset int) ([]match.Match, error)
	MatchInfo(ctx context.Context, id string) (match.Match, error)
	MatchScorecard(ctx context.Context, id string) (match.Scorecard, error)
	Players(ctx context.Context, offset int, search string) ([]player.Player, error)
	PlayerInfo(ctx context.Context, id string) (player.Info, error)
}
