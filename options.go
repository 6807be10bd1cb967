package caret

import (
	"net/http"
	"time"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	maxRetries int
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL. Defaults to the versioned production
// root, https://api.caret.so/v1.
func WithBaseURL(baseURL string) Option {
	return func(c *clientConfig) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-attempt timeout. The whole retry sequence is not
// bounded by this value; use the request context for an overall deadline.
// Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithMaxRetries sets the number of retries after the initial attempt.
// Only rate-limit responses and transport failures are retried.
// Default: 3.
func WithMaxRetries(retries int) Option {
	return func(c *clientConfig) {
		c.maxRetries = retries
	}
}
