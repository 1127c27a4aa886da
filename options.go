package scentsearch

import (
	"net/http"
	"time"
)

// Option configures the client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	apiKey  string
	httpc   *http.Client
	timeout time.Duration
}

// WithAPIKey sends a Bearer token on every request.
func WithAPIKey(key string) Option {
	return optionFunc(func(c *clientConfig) {
		c.apiKey = key
	})
}

// WithHTTPClient replaces the default http.Client. Takes precedence
// over WithTimeout.
func WithHTTPClient(httpc *http.Client) Option {
	return optionFunc(func(c *clientConfig) {
		if httpc != nil {
			c.httpc = httpc
		}
	})
}

// WithTimeout sets a per-request timeout on the default client.
func WithTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.timeout = d
	})
}
