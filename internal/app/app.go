package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/cricket-scores/external/cricapi"
	"github.com/riskibarqy/cricket-scores/internal/config"
	"github.com/riskibarqy/cricket-scores/internal/domain/match"
	"github.com/riskibarqy/cricket-scores/internal/platform/cache"
	"github.com/riskibarqy/cricket-scores/internal/platform/logging"
	"github.com/riskibarqy/cricket-scores/internal/platform/resilience"
	"github.com/riskibarqy/cricket-scores/internal/refresh"
	"github.com/riskibarqy/cricket-scores/internal/usecase"
)

// App holds the wired services of one process.
type App struct {
	Cricket   *usecase.CricketService
	Countries *usecase.CountryDirectory
	Board     *usecase.BoardService
	Refresher *refresh.Refresher

	logger *logging.Logger
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	client := cricapi.NewClient(cricapi.ClientConfig{
		BaseURL:    cfg.CricAPIBaseURL,
		APIKey:     cfg.CricAPIKey,
		Timeout:    cfg.CricAPITimeout,
		MaxRetries: cfg.CricAPIMaxRetries,
		Logger:     logger.Named("cricapi"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.CricAPICircuitEnabled,
			FailureThreshold: cfg.CricAPICircuitFailureCount,
			OpenTimeout:      cfg.CricAPICircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.CricAPICircuitHalfOpenMaxReq,
		},
	})

	cricket := usecase.NewCricketService(
		client,
		cache.NewStore(cfg.CricAPICacheTTL),
		logger.Named("cricket"),
		usecase.CricketServiceConfig{
			PageSize: cfg.CricAPIPageSize,
			MaxPages: cfg.CricAPIMaxPages,
		},
	)
	countries := usecase.NewCountryDirectory(cricket, logger.Named("countries"))
	board := usecase.NewBoardService(cricket, countries, logger.Named("board"), usecase.BoardServiceConfig{
		MaxWorkers: cfg.BoardMaxWorkers,
	})

	refresher, err := refresh.New(cfg.RefreshInterval, logger.Named("refresh"))
	if err != nil {
		return nil, fmt.Errorf("create refresher: %w", err)
	}

	return &App{
		Cricket:   cricket,
		Countries: countries,
		Board:     board,
		Refresher: refresher,
		logger:    logger,
	}, nil
}

// MountBoards schedules the home and live boards. Runs read through the
// response cache, so the upstream is hit at most once per TTL per resource.
func (a *App) MountBoards() (func(), error) {
	unmountHome, err := a.Refresher.Mount("home", a.refreshHome)
	if err != nil {
		return nil, fmt.Errorf("mount home board: %w", err)
	}
	unmountLive, err := a.Refresher.Mount("live", a.refreshLive)
	if err != nil {
		unmountHome()
		return nil, fmt.Errorf("mount live board: %w", err)
	}

	return func() {
		unmountLive()
		unmountHome()
	}, nil
}

// Reload drops every cached upstream response.
func (a *App) Reload() {
	a.Cricket.Invalidate()
	a.logger.Info("response cache cleared")
}

func (a *App) Close() error {
	return a.Refresher.Shutdown()
}

func (a *App) refreshHome(ctx context.Context) error {
	home := a.Board.Home(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}

	a.logger.InfoContext(ctx, "home board refreshed",
		"live", len(home.Live),
		"upcoming", len(home.Upcoming),
		"trending", len(home.Trending),
		"countries", a.Countries.Len(),
	)
	return nil
}

func (a *App) refreshLive(ctx context.Context) error {
	live := a.Board.LiveMatches(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, group := range match.GroupBySeries(live) {
		a.logger.InfoContext(ctx, "live series",
			"series", group.SeriesName,
			"matches", len(group.Matches),
		)
	}
	a.logger.InfoContext(ctx, "live board refreshed", "matches", len(live))
	return nil
}
