package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is where the todo backend listens when run locally.
	DefaultBaseURL = "http://127.0.0.1:8000/api"

	// RequestIDHeader carries a per-call identifier for log correlation.
	RequestIDHeader = "X-Request-ID"
)

// Client is the todo API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    http.Header
	logger     *slog.Logger
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client (useful for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds every request. Zero means no timeout. It is applied
// to a copy of the HTTP client, so a shared client is never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithDefaultHeaders adds headers sent on every request.
func WithDefaultHeaders(h map[string]string) Option {
	return func(c *Client) {
		for k, v := range h {
			c.headers.Set(k, v)
		}
	}
}

// WithLogger sets the logger used for request summaries.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a new API client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		headers:    http.Header{},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetHTTPClient allows overriding the default HTTP client (useful for testing).
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// RequestOption adjusts a single request.
type RequestOption func(*http.Request)

// WithHeader sets a header on a single request. Caller headers are merged
// over the defaults, except Content-Type which is always JSON.
func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) { r.Header.Set(key, value) }
}

// WithQuery appends query parameters to a single request.
func WithQuery(q url.Values) RequestOption {
	return func(r *http.Request) {
		if len(q) > 0 {
			r.URL.RawQuery = q.Encode()
		}
	}
}

// Request performs one HTTP round trip and decodes the JSON response into
// result (which may be nil). Every failure is a *RequestError. There is no
// retry and no caching.
func (c *Client) Request(ctx context.Context, method, endpoint string, body, result any, opts ...RequestOption) error {
	if method == "" {
		method = http.MethodGet
	}
	start := time.Now()

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return newRequestError(method, endpoint, 0, "failed to marshal request body", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bodyReader)
	if err != nil {
		return newRequestError(method, endpoint, 0, "failed to create request", err)
	}

	for k, vs := range c.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set(RequestIDHeader, uuid.NewString())
	req.Header.Set("Accept", "application/json")
	for _, opt := range opts {
		opt(req)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("api request failed", "method", method, "path", endpoint, "err", err)
		return newRequestError(method, endpoint, 0, "request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return newRequestError(method, endpoint, resp.StatusCode, "failed to read response body", err)
	}

	c.logger.Debug("api request",
		"method", method,
		"path", endpoint,
		"status", resp.StatusCode,
		"request_id", req.Header.Get(RequestIDHeader),
		"elapsed", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newRequestError(method, endpoint, resp.StatusCode, http.StatusText(resp.StatusCode), nil)
	}

	if result == nil {
		return nil
	}
	// A caller that expects a payload never treats a missing one as success.
	if len(bytes.TrimSpace(respBody)) == 0 {
		return newRequestError(method, endpoint, resp.StatusCode, "empty response body", nil)
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return newRequestError(method, endpoint, resp.StatusCode, "failed to decode response", err)
	}

	return nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, result any, opts ...RequestOption) error {
	return c.Request(ctx, http.MethodGet, path, nil, result, opts...)
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body, result any) error {
	return c.Request(ctx, http.MethodPost, path, body, result)
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body, result any) error {
	return c.Request(ctx, http.MethodPut, path, body, result)
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body, result any) error {
	return c.Request(ctx, http.MethodPatch, path, body, result)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Request(ctx, http.MethodDelete, path, nil, nil)
}
