package foodapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FoodService defines the storefront operations against the food API.
// This interface is implemented by *Client and can be faked in tests.
type FoodService interface {
	ListFoods(ctx context.Context) ([]Food, error)
	SearchFoods(ctx context.Context, query string) ([]Food, error)
	CreateFood(ctx context.Context, input FoodInput) (Food, error)
	UpdateFood(ctx context.Context, id string, input FoodInput) (Food, error)
	DeleteFood(ctx context.Context, id string) error
}

// Ensure Client implements FoodService at compile time.
var _ FoodService = (*Client)(nil)

// Client talks to the food REST API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	log       *zap.SugaredLogger
}

const (
	// DefaultBaseURL is the mock API the storefront was built against.
	DefaultBaseURL   = "https://6852821e0594059b23cdd834.mockapi.io"
	defaultUserAgent = "foodwagen/0.1"
	foodPath         = "/Food"
	requestIDHeader  = "X-Request-ID"
)

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger attaches a request logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient builds a Client for the given base URL. Calls are fire-once:
// there is no retry and no client-side timeout beyond the caller's context.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
		log:       zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized API base.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ListFoods retrieves every food item.
func (c *Client) ListFoods(ctx context.Context) ([]Food, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Food
	if err := c.do(ctx, OpList, http.MethodGet, &url.URL{Path: foodPath}, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// SearchFoods retrieves items whose name matches query on the server side.
func (c *Client) SearchFoods(ctx context.Context, query string) ([]Food, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("name", query)
	rel := &url.URL{Path: foodPath, RawQuery: values.Encode()}
	var payload []Food
	if err := c.do(ctx, OpSearch, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// CreateFood posts a new item and returns the server's copy.
func (c *Client) CreateFood(ctx context.Context, input FoodInput) (Food, error) {
	if c == nil {
		return Food{}, fmt.Errorf("client is nil")
	}
	var payload Food
	if err := c.do(ctx, OpCreate, http.MethodPost, &url.URL{Path: foodPath}, input, &payload); err != nil {
		return Food{}, err
	}
	return payload, nil
}

// UpdateFood replaces the item with the given id.
func (c *Client) UpdateFood(ctx context.Context, id string, input FoodInput) (Food, error) {
	if c == nil {
		return Food{}, fmt.Errorf("client is nil")
	}
	rel, err := itemURL(id)
	if err != nil {
		return Food{}, &FetchError{Op: OpUpdate, Err: err}
	}
	var payload Food
	if err := c.do(ctx, OpUpdate, http.MethodPut, rel, input, &payload); err != nil {
		return Food{}, err
	}
	return payload, nil
}

// DeleteFood removes the item with the given id.
func (c *Client) DeleteFood(ctx context.Context, id string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	rel, err := itemURL(id)
	if err != nil {
		return &FetchError{Op: OpDelete, Err: err}
	}
	return c.do(ctx, OpDelete, http.MethodDelete, rel, nil, nil)
}

func (c *Client) do(ctx context.Context, op Operation, method string, rel *url.URL, body, dest any) error {
	reqURL := c.resolve(rel)

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &FetchError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return &FetchError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debugw("api request failed", "op", op, "method", method, "path", reqURL.Path, "request_id", requestID, "error", err)
		return &FetchError{Op: op, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debugw("api request", "op", op, "method", method, "path", reqURL.Path, "request_id", requestID, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &FetchError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return &FetchError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// resolve appends rel to the base path so a base like
// https://host/api/v1 still reaches /api/v1/Food.
func (c *Client) resolve(rel *url.URL) *url.URL {
	out := *c.baseURL
	out.Path = strings.TrimRight(c.baseURL.Path, "/") + rel.Path
	out.RawPath = ""
	out.RawQuery = rel.RawQuery
	return &out
}

func itemURL(id string) (*url.URL, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return nil, errors.New("item id required")
	}
	return &url.URL{Path: foodPath + "/" + trimmed}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base %q: missing host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
