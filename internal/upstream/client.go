// Package upstream issues outbound requests to the Yahoo Finance provider.
//
// The client is intentionally thin: one GET per logical operation, credential
// headers attached, raw JSON returned verbatim. There is no retry policy by
// design; callers must not assume idempotent retry safety is handled here.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"resty.dev/v3"

	"marketdash/internal/ratelimit"
)

// Invoker is the outbound interface the gateway routes depend on. It exists
// so route tests can count and fake upstream calls.
type Invoker interface {
	// Invoke issues a GET for the given upstream path with every entry of
	// params appended as a query parameter, and returns the response body
	// unparsed. Non-2xx statuses and transport failures return an error.
	Invoke(ctx context.Context, path string, params map[string]string) (json.RawMessage, error)
}

// Client talks to the Yahoo Finance API via RapidAPI.
type Client struct {
	client  *resty.Client
	limiter *ratelimit.Limiter
}

// NewClient creates an upstream client for the given credentials and base URL.
func NewClient(apiKey, host, baseURL string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("x-rapidapi-host", host).
		SetHeader("x-rapidapi-key", apiKey).
		SetHeader("Content-Type", "application/json")

	return &Client{
		client:  client,
		limiter: ratelimit.GetLimiter(),
	}
}

// Invoke implements Invoker. The body is returned byte-for-byte; the client
// never reshapes or validates the provider's JSON.
func (c *Client) Invoke(ctx context.Context, path string, params map[string]string) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx, ratelimit.APIYahooFinance); err != nil {
		return nil, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)

	if err != nil {
		return nil, fmt.Errorf("upstream request to %s failed: %w", path, err)
	}

	if !resp.IsSuccess() {
		return nil, &StatusError{StatusCode: resp.StatusCode(), Status: resp.Status()}
	}

	return json.RawMessage(resp.Bytes()), nil
}
