// Package backend is the typed HTTP client for the project-management
// API. All console state lives on that server; this client is the only
// path to it. Errors come back as *Error with a discriminated Kind.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/good-yellow-bee/siteboard/internal/metrics"
)

const defaultTimeout = 30 * time.Second

// Client talks to the backend API. It is safe for concurrent use.
// A zero token means unauthenticated; WithToken derives a per-session
// client carrying a bearer token.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a backend API client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithToken returns a copy of the client that authenticates requests
// with the given bearer token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// detailEnvelope is the backend's error body.
type detailEnvelope struct {
	Detail string `json:"detail"`
}

// do issues a request and decodes a JSON response into out (if non-nil).
// Non-2xx responses are decoded into *Error with the server's detail.
func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	c.setHeaders(req)

	resp, err := c.send(op, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.decodeError(op, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
	} else {
		io.Copy(io.Discard, resp.Body)
	}
	return nil
}

// doJSON marshals v and issues a JSON request.
func (c *Client) doJSON(ctx context.Context, op, method, path string, v any, out any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", op, err)
	}
	return c.do(ctx, op, method, path, bytes.NewReader(data), "application/json", out)
}

// stream issues a request and returns the raw response for binary
// payloads. The caller owns the body.
func (c *Client) stream(ctx context.Context, op, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	c.setHeaders(req)

	resp, err := c.send(op, req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		return nil, c.decodeError(op, resp)
	}
	return resp, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func (c *Client) send(op string, req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(op, "error").Inc()
		metrics.BackendErrorsTotal.WithLabelValues(op, string(KindUnknown)).Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	metrics.BackendRequestsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}

func (c *Client) decodeError(op string, resp *http.Response) error {
	apiErr := &Error{
		Kind:      kindForStatus(resp.StatusCode),
		Status:    resp.StatusCode,
		Operation: op,
	}

	var env detailEnvelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&env); err == nil && env.Detail != "" {
		apiErr.Detail = env.Detail
	} else {
		apiErr.Detail = http.StatusText(resp.StatusCode)
	}

	metrics.BackendErrorsTotal.WithLabelValues(op, string(apiErr.Kind)).Inc()
	return apiErr
}
