package coinmarketcap

// This file defines functional options that configure the Client during construction. They are
// applied in order, before the header transport is installed, so any transport supplied here ends
// up underneath the one that attaches the API key.

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

//
// Option configures a Client during construction in NewClient.
//
type Option func(*Client) error

//
// WithBaseURL points the client at a different API root (e.g. the sandbox environment or a local
// mock server). Endpoint paths are resolved relative to it.
//
func WithBaseURL(raw string) Option {
	return func(o *Client) error {
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}

		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid base url %q: %w", raw, err)
		}

		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid base url %q: scheme and host are required", raw)
		}

		o.baseURL = u

		return nil
	}
}

//
// WithHTTPClient makes the client issue requests through a copy of the provided http.Client. Its
// transport (or http.DefaultTransport if it has none) is wrapped, never modified in place. Apply it
// before WithHTTPTimeout if both are used.
//
func WithHTTPClient(hc *http.Client) Option {
	return func(o *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}

		cp := *hc
		o.http = &cp

		return nil
	}
}

//
// WithHTTPTimeout sets the underlying http.Client Timeout, which bounds the total time spent on a
// single call (connection, TLS handshake, and reading the response). The value must be greater than
// zero. Prefer per-call context deadlines where possible.
//
func WithHTTPTimeout(d time.Duration) Option {
	return func(o *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}

		o.http.Timeout = d

		return nil
	}
}

//
// WithLogger sets the logger that every call is reported to. By default nothing is logged.
//
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Client) error {
		o.logger = logger

		return nil
	}
}

//
// WithDebugLogging dumps every request and response to the client's logger at debug level when
// enabled is true. The API key is redacted from request dumps, but response bodies are logged
// verbatim. Do not enable this in production.
//
func WithDebugLogging(enabled bool) Option {
	return func(o *Client) error {
		o.debug = enabled

		return nil
	}
}

//
// WithUserAgent sets the User-Agent header sent with every request.
//
func WithUserAgent(userAgent string) Option {
	return func(o *Client) error {
		o.userAgent = userAgent

		return nil
	}
}
