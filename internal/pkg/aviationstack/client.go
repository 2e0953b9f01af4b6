// Package aviationstack is the HTTP client for the third-party flight-data
// API. It issues one GET per search, throttled through a shared Redis rate
// limiter so concurrent lookups stay within the plan's request budget.
package aviationstack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-redis/redis_rate/v10"

	"travel-explorer-service/internal/pkg/exception"
)

var (
	ErrMissingConfig = exception.ApplicationError{
		StatusCode: http.StatusInternalServerError,
		Message:    "flight API base URL and key must be configured",
	}

	ErrMalformedResponse = exception.ApplicationError{
		StatusCode: http.StatusBadGateway,
		Message:    "flight API returned an unexpected payload",
	}

	ErrRateLimitExceeded = exception.ApplicationError{
		StatusCode: http.StatusTooManyRequests,
		Message:    "flight API rate limit exceeded",
	}
)

const limiterKey = "limit:aviationstack"

type Config struct {
	BaseURL      string
	APIKey       string
	Timeout      time.Duration
	RateLimitRPS int
	Limiter      *redis_rate.Limiter
}

type Client struct {
	baseURL      string
	apiKey       string
	timeout      time.Duration
	rateLimitRPS int
	limiter      *redis_rate.Limiter
	httpClient   *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:       cfg.APIKey,
		timeout:      cfg.Timeout,
		rateLimitRPS: cfg.RateLimitRPS,
		limiter:      cfg.Limiter,
		httpClient:   &http.Client{},
	}
}

// Validate reports whether the client has the configuration it needs to
// reach the API. Called once at wiring time so a misconfigured deployment is
// visible in the logs, not just silently degraded.
func (c *Client) Validate() error {
	if c.baseURL == "" || c.apiKey == "" {
		return ErrMissingConfig
	}

	return nil
}

// Search fetches flights for the route and date. Airport codes are sent
// uppercased as IATA query parameters. A payload without a data array comes
// back as ErrMalformedResponse so the caller can cache its fallback.
func (c *Client) Search(ctx context.Context, origin, destination, date string) ([]Flight, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.limiter != nil && c.rateLimitRPS > 0 {
		res, err := c.limiter.Allow(ctx, limiterKey, redis_rate.PerSecond(c.rateLimitRPS))
		if err != nil {
			return nil, fmt.Errorf("rate limit flight API call: %w", err)
		}

		if res.Allowed == 0 {
			return nil, ErrRateLimitExceeded
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/flights", nil)
	if err != nil {
		return nil, fmt.Errorf("build flight API request: %w", err)
	}

	query := req.URL.Query()
	query.Set("access_key", c.apiKey)
	query.Set("dep_iata", strings.ToUpper(origin))
	query.Set("arr_iata", strings.ToUpper(destination))
	query.Set("flight_date", date)
	req.URL.RawQuery = query.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call flight API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flight API returned status %d", resp.StatusCode)
	}

	var payload SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode flight API response: %w", ErrMalformedResponse)
	}

	if payload.Data == nil {
		return nil, ErrMalformedResponse
	}

	return *payload.Data, nil
}
