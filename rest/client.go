package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Default limits for REST dispatch.
const (
	defaultRequestTimeout = 15 * time.Second
	defaultRateLimit      = 45   // requests per second
	defaultBurst          = 5    // extra requests admitted in a burst
	maxResponseBytes      = 1 << 20 // cap on buffered response bodies
)

// Client dispatches REST requests with token authentication and
// client-side rate limiting.
//
// Every request carries a generated X-Request-ID so individual calls can
// be correlated with service-side logs.
//
// Thread Safety: all methods are safe for concurrent use; the rate
// limiter serialises admission across goroutines.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Config holds the REST dispatcher settings.
type Config struct {
	// BaseURL is the service's REST endpoint, e.g. "https://api.example.com/v1".
	BaseURL string

	// Token is the bot token sent in the Authorization header.
	Token string

	// RequestsPerSecond caps outbound request rate. Zero uses the default.
	RequestsPerSecond float64

	// Timeout bounds a single request. Zero uses the default.
	Timeout time.Duration
}

// NewClient creates a REST dispatcher from the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	limit := cfg.RequestsPerSecond
	if limit <= 0 {
		limit = defaultRateLimit
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(limit), defaultBurst),
	}, nil
}

// Do executes the request.
//
// Admission through the rate limiter happens first and may block; the
// request's PreSend hook fires only after admission, immediately before
// the wire write. Transport errors and 4xx/5xx statuses are returned
// unchanged apart from wrapping; the body is still returned alongside an
// ErrRequestFailed so callers can inspect service error payloads.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rest: awaiting rate limit: %w", err)
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+req.Path, body)
	if err != nil {
		return nil, fmt.Errorf("rest: building request: %w", err)
	}
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bot "+c.token)
	}
	httpReq.Header.Set("X-Request-ID", uuid.NewString())
	if len(req.Body) > 0 {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if req.PreSend != nil {
		req.PreSend()
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("rest: %s %s: %w", req.Method, req.Path, err)
	}
	defer httpResp.Body.Close() //nolint:errcheck // read-side close

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("rest: reading response: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Body:       respBody,
	}
	if httpResp.StatusCode >= http.StatusBadRequest {
		return resp, fmt.Errorf("%w: %s %s: status %d", ErrRequestFailed, req.Method, req.Path, httpResp.StatusCode)
	}
	return resp, nil
}
