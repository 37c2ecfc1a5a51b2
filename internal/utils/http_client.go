package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithBaseURL("http://edc:19193/management/v3"))
//	resp, err := client.R().Get("/assets/a-1")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures an [HTTPClient] built by [NewHTTPClient].
type HTTPClientOption func(*resty.Client)

// WithBaseURL sets the URL every relative request path is resolved against.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithTimeout bounds one request including reading its body. Zero disables
// the limit.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetTimeout(timeout)
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetHeader(key, value)
	}
}

// WithTransport replaces the round tripper. A nil transport is ignored.
func WithTransport(transport http.RoundTripper) HTTPClientOption {
	return func(c *resty.Client) {
		if transport != nil {
			c.SetTransport(transport)
		}
	}
}

// NewHTTPClient creates and returns a new HTTPClient instance. Each call
// returns an independent client with its own configuration and state.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New()
	for _, opt := range opts {
		opt(client)
	}
	return &HTTPClient{Client: client}
}
