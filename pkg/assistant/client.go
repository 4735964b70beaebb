// Package assistant is a Go client for the calendar assistant HTTP API.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ErrUnexpectedResponse is returned when a 200 reply lacks the expected payload.
var ErrUnexpectedResponse = errors.New("assistant: unexpected response")

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default client, e.g. to change the timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a Client for the service at baseURL (DefaultBaseURL when empty).
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ScheduleQuery asks the service to create an event from a natural-language request.
func (c *Client) ScheduleQuery(ctx context.Context, query string) (*ScheduleResult, error) {
	return c.schedule(ctx, "/schedule", map[string]any{"query": query})
}

// ScheduleEvent creates a pre-structured event.
func (c *Client) ScheduleEvent(ctx context.Context, event EventInput) (*ScheduleResult, error) {
	return c.schedule(ctx, "/schedule", map[string]any{"event": event})
}

func (c *Client) schedule(ctx context.Context, path string, body any) (*ScheduleResult, error) {
	env, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}
	if env.Event == nil {
		return nil, fmt.Errorf("%w: missing event", ErrUnexpectedResponse)
	}
	return &ScheduleResult{Message: env.Message, Category: env.Category, Event: *env.Event}, nil
}

// Upcoming lists events starting from now. A non-positive limit uses the server default.
func (c *Client) Upcoming(ctx context.Context, limit int) ([]Event, error) {
	path := "/events/upcoming"
	if limit > 0 {
		path += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}
	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return env.Events, nil
}

// Health returns nil when the service answers its health check.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/health", nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: env.Message, Issues: env.Errors}
		if decodeErr != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return nil, apiErr
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, decodeErr)
	}
	return &env, nil
}
