package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caret-so/client-go/internal/apierrors"
)

// Defaults applied when the corresponding Config field is zero.
const (
	DefaultBaseURL    = "https://api.caret.so/v1"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
)

// EnvAPIKey is the environment variable consulted when Config.APIKey is empty.
// It is read once, at construction time.
const EnvAPIKey = "CARET_API_KEY"

// Client is the HTTP API client. It is safe for concurrent use; each call
// runs its own attempt/retry loop with no shared mutable request state.
type Client struct {
	baseURL    string // normalized to end with exactly one "/"
	apiKey     string
	httpClient *http.Client
	timeout    time.Duration
	maxRetries int

	// sleep is the backoff sleeper, replaceable in tests.
	sleep func(ctx context.Context, delay time.Duration) error
}

// Config holds explicit, struct-based client configuration.
type Config struct {
	// BaseURL is the versioned API root. Defaults to DefaultBaseURL.
	BaseURL string
	// APIKey authenticates every request. Falls back to EnvAPIKey when empty;
	// construction fails if neither is set.
	APIKey string
	// HTTPClient overrides the underlying transport.
	HTTPClient *http.Client
	// Timeout bounds each individual attempt, not the whole retry sequence.
	// Defaults to DefaultTimeout.
	Timeout time.Duration
	// MaxRetries is the number of retries after the initial attempt.
	// Defaults to DefaultMaxRetries.
	MaxRetries int
}

// Option configures the API client.
type Option func(*Config)

// WithBaseURL sets the base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithRetries sets the number of retries.
func WithRetries(retries int) Option {
	return func(c *Config) {
		c.MaxRetries = retries
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// NewClient creates an API client from explicit configuration.
func NewClient(cfg Config) (*Client, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	if apiKey == "" {
		return nil, apierrors.ErrMissingAPIKey
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	} else if cfg.MaxRetries == 0 {
		maxRetries = DefaultMaxRetries
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/",
		apiKey:     apiKey,
		httpClient: httpClient,
		timeout:    timeout,
		maxRetries: maxRetries,
		sleep:      wait,
	}, nil
}

// New creates an API client using the functional options pattern.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := Config{APIKey: apiKey}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewClient(cfg)
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// RequestOptions carries the per-call request parameters.
type RequestOptions struct {
	// Params are appended to the query string. Nil values are skipped
	// entirely; all other values are stringified and percent-encoded.
	Params map[string]any
	// Body is serialized as JSON for POST, PATCH and PUT. GET and DELETE
	// never carry a body even when one is supplied.
	Body any
	// Headers merge into the request and may override the defaults,
	// including Authorization and Content-Type.
	Headers map[string]string
}

// Do executes one logical API call: it builds the request, applies
// authentication and the per-attempt timeout, classifies failures, and
// retries per the policy in retry.go. On success the JSON response body is
// decoded into result (which may be nil to discard it).
//
// Failures surface as *apierrors.APIError for classified HTTP errors and
// *apierrors.NetworkError for transport failures that exhausted retries.
func (c *Client) Do(ctx context.Context, method, path string, opts *RequestOptions, result any) error {
	reqURL := c.buildURL(path, opts)

	var payload []byte
	if opts != nil && opts.Body != nil && bodyAllowed(method) {
		data, err := json.Marshal(opts.Body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	for attempt := 0; ; attempt++ {
		body, apiErr, err := c.attempt(ctx, method, reqURL, payload, opts)

		switch {
		case err != nil:
			netErr := &apierrors.NetworkError{Err: err, URL: reqURL, Attempt: attempt}
			if attempt >= c.maxRetries || ctx.Err() != nil {
				return netErr
			}
			if werr := c.sleep(ctx, backoffDelay(attempt)); werr != nil {
				return netErr
			}

		case apiErr != nil:
			if apiErr.Kind != apierrors.KindRateLimit || attempt >= c.maxRetries {
				return apiErr
			}
			if werr := c.sleep(ctx, rateLimitDelay(apiErr.Headers, attempt)); werr != nil {
				return apiErr
			}

		default:
			return decodeResult(body, result)
		}
	}
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, opts *RequestOptions, result any) error {
	return c.Do(ctx, http.MethodGet, path, opts, result)
}

// Post issues a POST request.
func (c *Client) Post(ctx context.Context, path string, opts *RequestOptions, result any) error {
	return c.Do(ctx, http.MethodPost, path, opts, result)
}

// Patch issues a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, opts *RequestOptions, result any) error {
	return c.Do(ctx, http.MethodPatch, path, opts, result)
}

// Put issues a PUT request.
func (c *Client) Put(ctx context.Context, path string, opts *RequestOptions, result any) error {
	return c.Do(ctx, http.MethodPut, path, opts, result)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts *RequestOptions, result any) error {
	return c.Do(ctx, http.MethodDelete, path, opts, result)
}

// attempt runs a single HTTP attempt bounded by the per-attempt timeout.
// It returns the response body on 2xx, a classified *APIError on any other
// HTTP response, or a transport error when no response was produced.
func (c *Client) attempt(ctx context.Context, method, reqURL string, payload []byte, opts *RequestOptions) ([]byte, *apierrors.APIError, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(attemptCtx, method, reqURL, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if opts != nil {
		for k, v := range opts.Headers {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil, nil
	}
	return nil, parseErrorResponse(resp, body), nil
}

// buildURL joins the normalized base URL and path exactly once, then
// appends the encoded query parameters.
func (c *Client) buildURL(path string, opts *RequestOptions) string {
	reqURL := c.baseURL + strings.TrimLeft(path, "/")

	if opts == nil || len(opts.Params) == 0 {
		return reqURL
	}

	values := url.Values{}
	for key, value := range opts.Params {
		if value == nil {
			continue
		}
		values.Set(key, fmt.Sprint(value))
	}
	if encoded := values.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}
	return reqURL
}

// bodyAllowed reports whether the method carries a request body.
func bodyAllowed(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPatch, http.MethodPut:
		return true
	default:
		return false
	}
}

// decodeResult decodes a 2xx response body into result. Empty and non-JSON
// success bodies leave result untouched and return nil.
func decodeResult(body []byte, result any) error {
	if result == nil {
		return nil
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return nil
	}
	return nil
}

// errorBody is the wire shape of Caret API error responses. All fields are
// optional; unknown fields are preserved in APIError.RawBody.
type errorBody struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Details string            `json:"details"`
	Errors  map[string]string `json:"errors"`
}

// parseErrorResponse builds a classified APIError from a non-2xx response.
func parseErrorResponse(resp *http.Response, body []byte) *apierrors.APIError {
	apiErr := &apierrors.APIError{
		StatusCode: resp.StatusCode,
		Kind:       apierrors.Classify(resp.StatusCode),
		Headers:    resp.Header.Clone(),
		RequestID:  resp.Header.Get("X-Request-Id"),
	}

	var wire errorBody
	if err := json.Unmarshal(body, &wire); err == nil {
		apiErr.RawBody = json.RawMessage(bytes.Clone(body))
		apiErr.Message = wire.Message
		apiErr.Code = wire.Code
		apiErr.Details = wire.Details
		apiErr.Errors = wire.Errors
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
