// Package openmensa is a typed client for the OpenMensa API
// (https://doc.openmensa.org/api/v2/). It looks up canteens by id, name,
// or city and the meals a canteen serves on a given date. Every call is
// stateless and issues its own requests; nothing is cached between calls.
package openmensa

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://openmensa.org/api/v2"

const userAgent = "mensa-cli/1.0 (+https://github.com/floork/mensa-cli-backend)"

// Client handles HTTP requests to the OpenMensa API. The zero value is
// usable and talks to the public endpoint; both fields exist so tests and
// embedding applications can swap in their own endpoint or transport.
type Client struct {
	// BaseURL overrides the API endpoint. Empty means the public OpenMensa v2 API.
	BaseURL string
	// HTTPClient overrides the transport. Nil means a client with a 10 second timeout.
	HTTPClient *http.Client
}

// NewClient creates a new API client for the public OpenMensa endpoint
func NewClient() *Client {
	return &Client{
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) baseURL() string {
	base := strings.TrimRight(c.BaseURL, "/")
	if base == "" {
		return defaultBaseURL
	}
	return base
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 10 * time.Second}
}

// fetchJSON issues a GET request against url and decodes the response body
// into T. Failures keep their kind: *TransportError when no usable response
// arrived, *StatusError on a non-2xx answer (the body is not decoded then),
// *DecodeError when a 2xx body does not parse into T.
func fetchJSON[T any](ctx context.Context, c *Client, url string) (T, error) {
	var zero T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return zero, &TransportError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return zero, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, &TransportError{URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return zero, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	var decoded T
	if err := json.Unmarshal(body, &decoded); err != nil {
		return zero, &DecodeError{URL: url, Err: err}
	}

	return decoded, nil
}
