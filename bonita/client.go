package bonita

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultRequestTimeout = 30 * time.Second
	defaultLookupAttempts = 3
	defaultLookupDelay    = time.Second
	maxResponseBytes      = 1 << 20
)

// Client talks to one Bonita engine. It owns its connection settings and its
// session cache and is safe for concurrent use.
type Client struct {
	httpClient     *http.Client
	requestTimeout time.Duration
	limiter        *rate.Limiter
	logger         *slog.Logger

	lookupAttempts int
	lookupDelay    time.Duration
	sleep          func(ctx context.Context, d time.Duration) error

	mu       sync.RWMutex
	settings *Settings

	sessions *sessionStore
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithRequestTimeout bounds each HTTP attempt when the caller's context has
// no deadline of its own.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.requestTimeout = timeout
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLookupRetry sets how many times a name lookup is attempted while the
// engine returns an empty list, and the fixed delay between attempts.
func WithLookupRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.lookupAttempts = attempts
		}
		if delay >= 0 {
			c.lookupDelay = delay
		}
	}
}

// WithRateLimit throttles every HTTP attempt, retries included.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		if limit <= 0 {
			c.limiter = nil
			return
		}
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		httpClient:     http.DefaultClient,
		requestTimeout: defaultRequestTimeout,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		lookupAttempts: defaultLookupAttempts,
		lookupDelay:    defaultLookupDelay,
		sleep:          sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.sessions = newSessionStore(c.Login)

	return c
}

// Settings returns the settings of the last successful Connect call.
func (c *Client) Settings() (Settings, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.settings == nil {
		return Settings{}, false
	}
	return *c.settings, true
}

func (c *Client) setSettings(settings Settings) {
	c.swapSettings(&settings)
}

// swapSettings installs settings, nil meaning not connected, and returns the
// previous value.
func (c *Client) swapSettings(settings *Settings) *Settings {
	if settings != nil {
		normalized := *settings
		normalized.BaseURL = strings.TrimRight(strings.TrimSpace(normalized.BaseURL), "/")
		settings = &normalized
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	previous := c.settings
	c.settings = settings
	return previous
}

func (c *Client) connected() (Settings, error) {
	settings, ok := c.Settings()
	if !ok {
		return Settings{}, ErrNotConnected
	}
	return settings, nil
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline || c.requestTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.requestTimeout)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
