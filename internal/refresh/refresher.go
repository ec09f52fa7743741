package refresh

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/riskibarqy/cricket-scores/internal/platform/logging"
)

// DefaultInterval matches how often the boards are reloaded while shown.
const DefaultInterval = 60 * time.Second

// Func reloads one view. ctx is cancelled when the view is unmounted or the
// refresher shuts down.
type Func func(ctx context.Context) error

// Refresher reruns mounted views on a fixed interval. A view runs once as
// soon as it is mounted, and a run that outlasts the interval delays the
// next one instead of overlapping it.
type Refresher struct {
	scheduler gocron.Scheduler
	interval  time.Duration
	logger    *logging.Logger

	baseCtx  context.Context
	stop     context.CancelFunc
	stopOnce sync.Once
	stopErr  error

	mu     sync.Mutex
	mounts map[string]int
}

func New(interval time.Duration, logger *logging.Logger) (*Refresher, error) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = logging.Default()
	}

	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
		gocron.WithLogger(logger.Named("gocron")),
	)
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	scheduler.Start()

	baseCtx, stop := context.WithCancel(context.Background())
	return &Refresher{
		scheduler: scheduler,
		interval:  interval,
		logger:    logger,
		baseCtx:   baseCtx,
		stop:      stop,
		mounts:    make(map[string]int),
	}, nil
}

func (r *Refresher) Interval() time.Duration {
	return r.interval
}

// Mount starts refreshing fn under name and returns the matching unmount.
// Calling unmount more than once is harmless.
func (r *Refresher) Mount(name string, fn Func) (func(), error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("refresh job name is required")
	}
	if fn == nil {
		return nil, fmt.Errorf("refresh job %q has no function", name)
	}
	if err := r.baseCtx.Err(); err != nil {
		return nil, fmt.Errorf("refresher is shut down: %w", err)
	}

	ctx, cancel := context.WithCancel(r.baseCtx)
	logger := r.logger.With("job", name)

	job, err := r.scheduler.NewJob(
		gocron.DurationJob(r.interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}
			start := time.Now()
			if err := fn(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					logger.Debug("refresh cancelled", "duration_ms", time.Since(start).Milliseconds())
					return
				}
				logger.Warn("refresh failed", "duration_ms", time.Since(start).Milliseconds(), "error", err)
				return
			}
			logger.Debug("refresh done", "duration_ms", time.Since(start).Milliseconds())
		}),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("schedule refresh job %q: %w", name, err)
	}

	r.mu.Lock()
	r.mounts[name]++
	r.mu.Unlock()
	logger.Info("refresh job mounted", "interval", r.interval.String())

	var once sync.Once
	unmount := func() {
		once.Do(func() {
			cancel()
			if err := r.scheduler.RemoveJob(job.ID()); err != nil {
				logger.Debug("remove refresh job", "error", err)
			}
			r.mu.Lock()
			r.mounts[name]--
			if r.mounts[name] <= 0 {
				delete(r.mounts, name)
			}
			r.mu.Unlock()
			logger.Info("refresh job unmounted")
		})
	}
	return unmount, nil
}

// Mounted reports how many live mounts use name.
func (r *Refresher) Mounted(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mounts[name]
}

// Shutdown cancels every in-flight run and stops the scheduler. Later calls
// return the first result.
func (r *Refresher) Shutdown() error {
	r.stopOnce.Do(func() {
		r.stop()
		if err := r.scheduler.Shutdown(); err != nil {
			r.stopErr = fmt.Errorf("shutdown scheduler: %w", err)
		}
	})
	return r.stopErr
}
