package coinmarketcap

import (
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

//
// headerTransport wraps an http.RoundTripper so that every request carries the API key, the JSON
// accept header, and a fresh request id.
//
type headerTransport struct {
	base      http.RoundTripper
	apiKey    string
	userAgent string
}

func (o *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	//
	// Clone the request so that the caller's copy is never modified.
	//
	cloned := req.Clone(req.Context())

	cloned.Header.Set(APIKeyHeader, o.apiKey)
	cloned.Header.Set("Accept", "application/json")

	if cloned.Header.Get(RequestIDHeader) == "" {
		cloned.Header.Set(RequestIDHeader, uuid.NewString())
	}

	if o.userAgent != "" {
		cloned.Header.Set("User-Agent", o.userAgent)
	}

	return o.base.RoundTrip(cloned)
}

//
// debugTransport dumps every request and response at debug level. It is installed beneath
// headerTransport, so the dumped request carries the outgoing headers (with the API key redacted).
//
type debugTransport struct {
	base   http.RoundTripper
	logger zerolog.Logger
	apiKey string
}

func (o *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if dump, err := httputil.DumpRequestOut(req, false); err == nil {
		o.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Str("request_id", req.Header.Get(RequestIDHeader)).
			Str("request_dump", o.redact(string(dump))).
			Msg("HTTP request")
	}

	resp, err := o.base.RoundTrip(req)
	if err != nil {
		o.logger.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")

		return nil, err
	}

	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		o.logger.Debug().
			Str("url", req.URL.String()).
			Str("request_id", req.Header.Get(RequestIDHeader)).
			Int("status_code", resp.StatusCode).
			Str("response_dump", string(dump)).
			Msg("HTTP response")
	}

	return resp, nil
}

func (o *debugTransport) redact(s string) string {
	if o.apiKey == "" {
		return s
	}

	return strings.ReplaceAll(s, o.apiKey, "[REDACTED]")
}
