package cricapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/cricket-scores/internal/domain/country"
	"github.com/riskibarqy/cricket-scores/internal/domain/match"
	"github.com/riskibarqy/cricket-scores/internal/domain/player"
	"github.com/riskibarqy/cricket-scores/internal/domain/series"
	"github.com/riskibarqy/cricket-scores/internal/platform/logging"
	"github.com/riskibarqy/cricket-scores/internal/platform/resilience"
	"github.com/riskibarqy/cricket-scores/internal/usecase"
)

const (
	DefaultBaseURL = "https://api.cricapi.com/v1"

	statusSuccess   = "success"
	maxResponseSize = 6 << 20
)

var apiKeyParamRegex = regexp.MustCompile(`apikey=[^&\s"']+`)

var (
	// ErrFailureStatus means the envelope status was not "success".
	ErrFailureStatus = crerr.New("cricapi failure status")
	// ErrNoData means a success envelope carried no data.
	ErrNoData = crerr.New("cricapi returned no data")

	errTransient = crerr.New("cricapi transient failure")
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the CricAPI v1 REST endpoints. It reports every failure
// to its caller and never substitutes a default value.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	maxRetries   int
	retryBackoff time.Duration
	logger       *logging.Logger
	breaker      *resilience.CircuitBreaker
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = time.Second
	}

	return &Client{
		httpClient:   httpClient,
		baseURL:      baseURL,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		maxRetries:   maxInt(cfg.MaxRetries, 0),
		retryBackoff: backoff,
		logger:       logger,
		breaker:      resilience.NewCircuitBreaker(cfg.CircuitBreaker),
	}
}

func (c *Client) Countries(ctx context.Context, offset int) ([]country.Country, error) {
	return getList[country.Country](ctx, c, "/countries", pageQuery(offset, ""))
}

func (c *Client) Series(ctx context.Context, offset int, search string) ([]series.Series, error) {
	return getList[series.Series](ctx, c, "/series", pageQuery(offset, search))
}

func (c *Client) SeriesInfo(ctx context.Context, id string) (series.Info, error) {
	return getOne[series.Info](ctx, c, "/series_info", idQuery(id))
}

func (c *Client) Matches(ctx context.Context, offset int) ([]match.Match, error) {
	return getList[match.Match](ctx, c, "/matches", pageQuery(offset, ""))
}

func (c *Client) CurrentMatches(ctx context.Context, offset int) ([]match.Match, error) {
	return getList[match.Match](ctx, c, "/currentMatches", pageQuery(offset, ""))
}

func (c *Client) MatchInfo(ctx context.Context, id string) (match.Match, error) {
	return getOne[match.Match](ctx, c, "/match_info", idQuery(id))
}

func (c *Client) MatchScorecard(ctx context.Context, id string) (match.Scorecard, error) {
	return getOne[match.Scorecard](ctx, c, "/match_scorecard", idQuery(id))
}

func (c *Client) Players(ctx context.Context, offset int, search string) ([]player.Player, error) {
	return getList[player.Player](ctx, c, "/players", pageQuery(offset, search))
}

func (c *Client) PlayerInfo(ctx context.Context, id string) (player.Info, error) {
	return getOne[player.Info](ctx, c, "/players_info", idQuery(id))
}

func getList[T any](ctx context.Context, c *Client, path string, query map[string]string) ([]T, error) {
	var env envelope[[]T]
	if err := c.doJSON(ctx, path, query, &env); err != nil {
		return nil, err
	}
	return *env.Data, nil
}

func getOne[T any](ctx context.Context, c *Client, path string, query map[string]string) (T, error) {
	var (
		env  envelope[T]
		zero T
	)
	if err := c.doJSON(ctx, path, query, &env); err != nil {
		return zero, err
	}
	return *env.Data, nil
}

type checkedEnvelope interface {
	status() (string, string)
	hasData() bool
	quota() Info
}

func (e *envelope[T]) status() (string, string) { return e.Status, e.Reason }
func (e *envelope[T]) hasData() bool { return e.Data != nil }
func (e *envelope[T]) quota() Info { return e.Info }

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target checkedEnvelope) error {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "cricapi circuit breaker rejected request", "path", path, "state", c.breaker.State())
		return fmt.Errorf("%w: cricket data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	values.Set("apikey", c.apiKey)
	fullURL := c.baseURL + path + "?" + values.Encode()

	raw, err := c.executeRequest(ctx, fullURL)
	if err != nil {
		if isCircuitFailure(err) {
			c.breaker.RecordFailure()
		}
		return err
	}
	c.breaker.RecordSuccess()

	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(err, "decode %s payload", path)
	}

	status, reason := target.status()
	if !strings.EqualFold(strings.TrimSpace(status), statusSuccess) {
		return crerr.Wrapf(ErrFailureStatus, "%s status=%q reason=%q", path, status, sanitizeSensitiveText(reason, c.apiKey))
	}
	if !target.hasData() {
		return crerr.Wrapf(ErrNoData, "%s", path)
	}

	info := target.quota()
	c.logger.DebugContext(ctx, "cricapi request served",
		"path", path,
		"hits_today", info.HitsToday,
		"hits_limit", info.HitsLimit,
		"total_rows", info.TotalRows,
	)
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, crerr.Wrap(err, "build request")
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			lastErr = crerr.Wrapf(errTransient, "send request: %s", sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Wrapf(errTransient, "read response body: %v", readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = crerr.Wrapf(errTransient, "provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw, c.apiKey))
			default:
				return nil, crerr.Newf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw, c.apiKey))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * c.retryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = crerr.New("provider request failed")
	}
	c.logger.WarnContext(ctx, "cricapi request failed", "url", redactAPIURL(fullURL), "error", lastErr)
	return nil, lastErr
}

// IsTransient reports whether err is a network failure, a 429 or a 5xx.
func IsTransient(err error) bool {
	return crerr.Is(err, errTransient)
}

func isCircuitFailure(err error) bool {
	return err != nil && IsTransient(err)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func pageQuery(offset int, search string) map[string]string {
	query := map[string]string{"offset": strconv.Itoa(maxInt(offset, 0))}
	if search = strings.TrimSpace(search); search != "" {
		query["search"] = search
	}
	return query
}

func idQuery(id string) map[string]string {
	return map[string]string{"id": strings.TrimSpace(id)}
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if apiKey != "" {
		value = strings.ReplaceAll(value, apiKey, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "apikey=REDACTED")
}

func redactAPIURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return apiKeyParamRegex.ReplaceAllString(rawURL, "apikey=REDACTED")
	}
	query := parsed.Query()
	if query.Has("apikey") {
		query.Set("apikey", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func abbreviateBody(body []byte, apiKey string) string {
	text := sanitizeSensitiveText(string(body), apiKey)
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
