package rulepack

import (
	"context"
	"log/slog"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/valyala/fasthttp"

	"github.com/hydralabs/gear-api/internal/errors"
	redisclient "github.com/hydralabs/gear-api/internal/redis"
)

const (
	cacheKey = "rulepack:cache"

	defaultFetchTimeout = 10 * time.Second
)

// FileLoader loads a rulepack from a local JSON file
type FileLoader struct {
	Path string
}

// Load reads and parses the rulepack file
func (l *FileLoader) Load(_ context.Context) (*Pack, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rulepack file %s", l.Path)
	}
	return Parse(data)
}

// HTTPLoaderConfig configures an HTTPLoader
type HTTPLoaderConfig struct {
	// URL of the rulepack JSON document
	URL string
	// Cache is optional; when set, fetched packs are cached there and the
	// cached copy is used if a fetch fails
	Cache redisclient.Client
	// FetchTimeout defaults to 10s
	FetchTimeout time.Duration
}

// Validate validates the HTTPLoaderConfig
func (cfg *HTTPLoaderConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.URL == "" {
		return errors.InvalidArgument("url cannot be empty")
	}
	return nil
}

// HTTPLoader fetches a rulepack over HTTP, with a Redis-backed fallback
// cache so a temporarily unreachable source does not leave the service
// without rules.
type HTTPLoader struct {
	url     string
	cache   redisclient.Client
	client  *fasthttp.Client
	timeout time.Duration
}

// NewHTTPLoader creates an HTTP rulepack loader
func NewHTTPLoader(cfg *HTTPLoaderConfig) (*HTTPLoader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout := cfg.FetchTimeout
	if timeout == 0 {
		timeout = defaultFetchTimeout
	}

	return &HTTPLoader{
		url:   cfg.URL,
		cache: cfg.Cache,
		client: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		timeout: timeout,
	}, nil
}

// Load fetches the rulepack from the configured URL. On fetch failure it
// falls back to the last cached copy; on success it refreshes the cache.
func (l *HTTPLoader) Load(ctx context.Context) (*Pack, error) {
	data, fetchErr := l.fetch()
	if fetchErr != nil {
		slog.Warn("Rulepack fetch failed, trying cache",
			"url", l.url,
			"error", fetchErr,
		)
		cached, cacheErr := l.loadCached(ctx)
		if cacheErr != nil {
			return nil, errors.WrapWithCode(fetchErr, errors.CodeUnavailable,
				"rulepack source unreachable and no cached copy available")
		}
		return cached, nil
	}

	pack, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		if err := l.cache.Set(ctx, cacheKey, data, 0).Err(); err != nil {
			slog.Warn("Failed to cache rulepack", "error", err)
		}
	}

	return pack, nil
}

func (l *HTTPLoader) fetch() ([]byte, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(l.url)
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := l.client.DoTimeout(req, resp, l.timeout); err != nil {
		return nil, err
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, errors.Unavailablef("rulepack source returned status %d", resp.StatusCode())
	}

	// Body() is only valid until the response is released
	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}

func (l *HTTPLoader) loadCached(ctx context.Context) (*Pack, error) {
	if l.cache == nil {
		return nil, errors.NotFound("no rulepack cache configured")
	}

	data, err := l.cache.Get(ctx, cacheKey).Result()
	if err != nil {
		if err == goredis.Nil {
			return nil, errors.NotFound("no cached rulepack")
		}
		return nil, errors.Wrap(err, "failed to read cached rulepack")
	}

	return Parse([]byte(data))
}
