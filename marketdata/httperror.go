package marketdata

//
// HTTPError generically provides an interface to objects that represent a response which could not
// be interpreted as a well-formed API response at all (e.g. a gateway error page, an empty body, or
// a payload that does not fit the documented model). When dealing with market-data APIs, such a
// response almost always means that something critically wrong has occurred upstream.
//
type HTTPError interface {
	error

	//
	// StatusCode returns the HTTP status code that accompanied the uninterpretable response.
	//
	StatusCode() int

	//
	// Body returns the raw response body, or an empty string if none was available.
	//
	Body() string
}
