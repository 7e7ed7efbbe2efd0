// Package remote calls the PathFinder HTTP API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/pathfinder/internal/payload"
	"github.com/jonathan/pathfinder/internal/schemas"
	"github.com/jonathan/pathfinder/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// AnalyzePath is the analyze endpoint relative to the base URL.
const AnalyzePath = "/api/v1/analyze"

// maxResponseBytes bounds how much of a response is read.
const maxResponseBytes = 1 << 20

// Error represents a transport failure talking to the API.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("remote error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("remote error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// StatusError is returned for a non-2xx response.
type StatusError struct {
	StatusCode int
	Message    string
	Fields     []schemas.FieldError
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP status %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP status %d: %s", e.StatusCode, e.Message)
}

// Options configures the client.
type Options struct {
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client submits analyze requests to a running API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for baseURL, e.g. http://localhost:8000.
func New(baseURL string, opts *Options) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &Error{URL: baseURL, Message: "invalid base URL", Cause: err}
	}
	if opts == nil {
		opts = &Options{}
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}, nil
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// AnalyzeProfile posts req and decodes the recommendation.
func (c *Client) AnalyzeProfile(ctx context.Context, req types.AnalyzeRequest) (*types.Recommendation, error) {
	body, err := payload.Encode(req)
	if err != nil {
		return nil, err
	}

	var rec types.Recommendation
	if err := c.do(ctx, http.MethodPost, AnalyzePath, body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Health calls the health endpoint and returns the reported status.
func (c *Client) Health(ctx context.Context) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	endpoint := c.baseURL + path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &Error{URL: endpoint, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{URL: endpoint, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &Error{URL: endpoint, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &Error{URL: endpoint, Message: "failed to decode response", Cause: err}
	}
	return nil
}

func statusError(code int, data []byte) *StatusError {
	var body struct {
		Error  string               `json:"error"`
		Fields []schemas.FieldError `json:"fields"`
	}
	se := &StatusError{StatusCode: code}
	if err := json.Unmarshal(data, &body); err == nil {
		se.Message = body.Error
		se.Fields = body.Fields
	}
	return se
}
