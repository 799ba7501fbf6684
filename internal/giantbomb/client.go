// Package giantbomb provides a client for the Giant Bomb game catalog API.
package giantbomb

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL   = "https://www.giantbomb.com/api"
	defaultUserAgent = "gbrandom/1.0"
	defaultTimeout   = 10 * time.Second
)

// ErrNegativeOffset is returned when GameURIAt is called with a negative
// offset. It reports a caller bug before any request is made and is not one
// of the catalog error kinds; the sampler only asks for offsets in [0, total).
var ErrNegativeOffset = errors.New("offset must not be negative")

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is a Giant Bomb API client. It holds no per-request state and is
// safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	userAgent  string
	httpClient HTTPDoer
}

// NewClient creates a new Giant Bomb API client.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithBaseURL sets a custom base URL for the Giant Bomb API.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithUserAgent sets the User-Agent header. Giant Bomb rejects requests
// without one, so an empty value keeps the default.
func WithUserAgent(userAgent string) Option {
	return func(client *Client) {
		if userAgent != "" {
			client.userAgent = userAgent
		}
	}
}
