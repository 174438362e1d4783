package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps an http.Client with the request defaults used across nbanews
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
}

// New creates a new HTTP client. A timeout <= 0 leaves requests without a
// client-side deadline; only the request context can cancel them.
func New(timeout time.Duration) *Client {
	if timeout < 0 {
		timeout = 0
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
	}
}

// NewWithTransport creates a new HTTP client with a custom transport
func NewWithTransport(timeout time.Duration, transport http.RoundTripper) *Client {
	c := New(timeout)
	c.httpClient.Transport = transport
	return c
}

// Get performs a GET request. Every header is set as given, including empty
// values, so an explicit empty User-Agent suppresses the Go default.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	return resp, nil
}

// GetBody performs a GET request and returns the whole response body.
// The status code is not checked.
func (c *Client) GetBody(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	resp, err := c.Get(ctx, url, headers)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", url, err)
	}
	return b, nil
}

// GetTimeout returns the client timeout
func (c *Client) GetTimeout() time.Duration {
	return c.timeout
}

// HTTPClient exposes the underlying client for libraries that take one
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}
