package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rmitchellscott/reather/logging"
	"golang.org/x/time/rate"
)

// maxErrorBody caps how much of a failed response ends up in an APIError.
const maxErrorBody = 2048

// Client talks to every upstream service. All requests share one HTTP
// client, one User-Agent and one rate limiter.
type Client struct {
	http      *http.Client
	userAgent string
	limiter   *rate.Limiter
	endpoints Endpoints
}

// NewClient builds a Client from cfg.
func NewClient(cfg Config) *Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	return &Client{
		http: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		userAgent: cfg.UserAgent,
		limiter:   rate.NewLimiter(limit, 1),
		endpoints: cfg.Endpoints,
	}
}

// HTTPClient exposes the underlying client for one-off downloads.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// get issues a GET after waiting for the limiter. The caller closes the body.
func (c *Client) get(ctx context.Context, url, accept string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error building request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	logging.Debug("GET", "url", url)
	return c.http.Do(req)
}

// getJSON fetches url and decodes the body into dst. service names the
// upstream in error messages.
func (c *Client) getJSON(ctx context.Context, service, url string, dst any) error {
	resp, err := c.get(ctx, url, "application/geo+json, application/json")
	if err != nil {
		return fmt.Errorf("error fetching %s: %w", service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			Service:    service,
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to parse %s response (URL: %s): %w", service, url, err)
	}
	return nil
}
