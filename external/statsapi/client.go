// Package statsapi fetches documents from the MLB Stats API. Requests share one
// cooperative rate limit, transient failures are retried with exponential backoff, and
// completed games are served from the on-disk response cache.
package statsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/mlb-stats/internal/platform/cache"
	"github.com/riskibarqy/mlb-stats/internal/platform/logging"
	"github.com/riskibarqy/mlb-stats/internal/platform/resilience"
	"github.com/riskibarqy/mlb-stats/internal/upstream"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL  = "https://statsapi.mlb.com/api/"
	maxResponseSize = 64 << 20
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Version        string
	Timeout        time.Duration
	MaxRetries     int
	BackoffBase    time.Duration
	BackoffMax     time.Duration
	RequestDelay   time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
	// Cache is optional; nil disables response caching.
	Cache  *cache.Store
	Logger *logging.Logger
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	userAgent      string
	retry          resilience.RetryPolicy
	limiter        *rate.Limiter
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	cache          *cache.Store
	logger         *logging.Logger

	mu    sync.Mutex
	final map[int64]bool
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
		httpClient.Timeout = 30 * time.Second
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		version = "dev"
	}

	limit := rate.Inf
	if cfg.RequestDelay > 0 {
		limit = rate.Every(cfg.RequestDelay)
	}

	c := &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		userAgent:      fmt.Sprintf("mlb-stats-collector/%s (research project)", version),
		limiter:        rate.NewLimiter(limit, 1),
		breaker:        resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		circuitEnabled: cfg.CircuitBreaker.Enabled,
		cache:          cfg.Cache,
		logger:         logger,
		final:          make(map[int64]bool),
	}
	c.retry = resilience.DefaultRetryPolicy()
	c.retry.MaxRetries = max(cfg.MaxRetries, 0)
	if cfg.BackoffBase > 0 {
		c.retry.BaseDelay = cfg.BackoffBase
	}
	if cfg.BackoffMax > 0 {
		c.retry.MaxDelay = cfg.BackoffMax
	}
	c.retry.Retryable = func(err error) bool {
		return crerr.Is(err, ErrTransient)
	}
	c.retry.OnRetry = func(retry int, delay time.Duration, err error) {
		c.logger.Warn("stats api request failed, retrying", "retry", retry, "delay", delay, "error", err)
	}
	return c
}

// Fetch performs a GET against path (relative to the base URL) and returns the raw body.
// It never consults the cache.
func (c *Client) Fetch(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "stats api circuit breaker rejected request", "path", path, "state", c.breaker.State())
			return nil, fmt.Errorf("%w: %s", ErrDependencyUnavailable, path)
		}
	}

	fullURL := c.buildURL(path, query)
	raw, err := resilience.Retry(ctx, c.retry, func(ctx context.Context) ([]byte, error) {
		return c.executeRequest(ctx, path, fullURL)
	})
	if c.circuitEnabled {
		if err != nil && crerr.Is(err, ErrTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if err != nil {
		c.logger.WarnContext(ctx, "stats api request failed", "path", path, "error", err)
		return nil, err
	}
	return raw, nil
}

func (c *Client) buildURL(path string, query url.Values) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(c.baseURL)
	_, _ = buf.WriteString(strings.TrimLeft(path, "/"))
	if encoded := query.Encode(); encoded != "" {
		_ = buf.WriteByte('?')
		_, _ = buf.WriteString(encoded)
	}
	return buf.String()
}

func (c *Client) executeRequest(ctx context.Context, path, fullURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.DebugContext(ctx, "stats api request", "url", fullURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: send request %s: %v", ErrTransient, path, err)
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxResponseSize)); err != nil {
		return nil, fmt.Errorf("%w: read response %s: %v", ErrTransient, path, err)
	}
	raw := append([]byte(nil), buf.B...)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}
	statusErr := &StatusError{StatusCode: resp.StatusCode, Path: path, Body: abbreviateBody(raw)}
	if isRetryableStatus(resp.StatusCode) {
		return nil, fmt.Errorf("%w: %w", ErrTransient, statusErr)
	}
	return nil, statusErr
}

// fetchGameDocument applies the cache gate for per-game documents: serve from cache when
// present, and write back only once the game is known to be Final.
func (c *Client) fetchGameDocument(ctx context.Context, kind cache.Kind, gamePK int64, path string) ([]byte, error) {
	key := strconv.FormatInt(gamePK, 10)
	if c.cache != nil {
		raw, ok, err := c.cache.Get(kind, key)
		if err != nil {
			c.logger.WarnContext(ctx, "read response cache failed", "kind", kind, "game_pk", gamePK, "error", err)
		}
		if ok {
			if kind == cache.KindGameFeed {
				c.rememberFinal(gamePK, true)
			}
			return raw, nil
		}
	}

	raw, err := c.Fetch(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	if c.cache != nil && c.isFinal(kind, gamePK, raw) {
		if err := c.cache.Set(kind, key, raw); err != nil {
			c.logger.WarnContext(ctx, "write response cache failed", "kind", kind, "game_pk", gamePK, "error", err)
		}
	}
	return raw, nil
}

// isFinal checks the document's own status; documents without one (boxscore,
// play-by-play) inherit the state last seen on the game feed of the same game.
func (c *Client) isFinal(kind cache.Kind, gamePK int64, raw []byte) bool {
	probe, err := upstream.Decode[upstream.StatusProbe](raw)
	if err == nil && (probe.GameData.Status.AbstractGameState != nil || probe.Status.AbstractGameState != nil) {
		final := probe.IsFinal()
		if kind == cache.KindGameFeed {
			c.rememberFinal(gamePK, final)
		}
		return final
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.final[gamePK]
}

func (c *Client) rememberFinal(gamePK int64, final bool) {
	c.mu.Lock()
	c.final[gamePK] = final
	c.mu.Unlock()
}
