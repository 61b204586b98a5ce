package wit

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the authorization transport wrapper is
// installed, so transport-related options (like debug logging) will be
// placed underneath the bearer-token wrapper. Options must be
// deterministic and side-effect free.
type Option func(*Client) error

// WithAPIHost points the client at a different base URL, e.g. a mock
// server in tests. A trailing slash is stripped.
func WithAPIHost(host string) Option {
	return func(c *Client) error {
		if host == "" {
			return fmt.Errorf("api host must not be empty")
		}
		c.apiHost = strings.TrimRight(host, "/")
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. The client is still
// wrapped with the bearer-token transport after options are applied.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. Note that it also bounds the lifetime of a dictation or speech
// response stream. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response
// is logged when enabled is true.
//
// The debug transport is installed beneath the bearer-token wrapper; logs
// are emitted before the request is forwarded to the next transport.
// Do not enable this option in production environments as it increases
// verbosity and logs request and response bodies, including the token.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
