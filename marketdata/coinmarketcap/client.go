package coinmarketcap

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var _ API = (*Client)(nil)

//
// Client implements the API interface for the CoinMarketCap Pro v1 REST API. It holds no mutable
// state after construction and is safe for concurrent use.
//
type Client struct {
	baseURL   *url.URL
	apiKey    string
	http      *http.Client
	logger    zerolog.Logger
	debug     bool
	userAgent string
}

//
// NewClient instantiates a client that authenticates with the provided API key. The key itself is
// not validated; an unusable key surfaces as a BadRequestError on the first call. An error is only
// returned if one of the provided options is invalid.
//
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	base, _ := url.Parse(BaseURL)

	o := &Client{
		baseURL: base,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	//
	// Stack the transports: the debug dumper (if any) sits directly above the real transport so
	// that it sees the headers attached by the header transport on top.
	//
	transport := o.http.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	if o.debug {
		transport = &debugTransport{base: transport, logger: o.logger, apiKey: o.apiKey}
	}

	o.http.Transport = &headerTransport{base: transport, apiKey: o.apiKey, userAgent: o.userAgent}

	return o, nil
}

//
// GetLatestListings gets a paginated list of all cryptocurrencies with latest market data. Use the
// Convert parameter to return market values in multiple fiat and cryptocurrency conversions in the
// same call.
//
func (o *Client) GetLatestListings(ctx context.Context, params ListingLatestParameters) (*Response[[]CryptocurrencyWithLatestQuote], error) {
	return send[[]CryptocurrencyWithLatestQuote](ctx, o, LatestListingsEndpoint, params)
}

//
// GetHistoricalListings gets a paginated list of all cryptocurrencies with market data for a given
// historical time.
//
func (o *Client) GetHistoricalListings(ctx context.Context, params ListingHistoricalParameters) (*Response[[]CryptocurrencyWithHistoricalQuote], error) {
	return send[[]CryptocurrencyWithHistoricalQuote](ctx, o, HistoricalListingsEndpoint, params)
}

//
// GetMarketPairLatest lists all market pairs for the specified cryptocurrency with associated stats.
//
func (o *Client) GetMarketPairLatest(ctx context.Context, params MarketPairsLatestParameters) (*Response[MarketPairLatestResponse], error) {
	return send[MarketPairLatestResponse](ctx, o, MarketPairsLatestEndpoint, params)
}

//
// GetOhlcvHistorical returns an interval of historic OHLCV (Open, High, Low, Close, Volume) market
// quotes for a cryptocurrency.
//
func (o *Client) GetOhlcvHistorical(ctx context.Context, params OhlcvHistoricalParameters) (*Response[OhlcvHistoricalResponse], error) {
	return send[OhlcvHistoricalResponse](ctx, o, OhlcvHistoricalEndpoint, params)
}

//
// GetLatestQuote gets the latest market quote for one or more cryptocurrencies, keyed by the
// identifier they were requested with.
//
func (o *Client) GetLatestQuote(ctx context.Context, params LatestQuoteParameters) (*Response[map[string]CryptocurrencyWithLatestQuote], error) {
	return send[map[string]CryptocurrencyWithLatestQuote](ctx, o, LatestQuotesEndpoint, params)
}

//
// GetHistoricalQuote returns an interval of historic market quotes for a cryptocurrency based on
// time and interval parameters.
//
func (o *Client) GetHistoricalQuote(ctx context.Context, params HistoricalQuoteParameters) (*Response[CryptocurrencyWithHistoricalQuote], error) {
	return send[CryptocurrencyWithHistoricalQuote](ctx, o, HistoricalQuotesEndpoint, params)
}

//
// GetAggregateMarketMetrics gets the latest quote of aggregate market metrics.
//
func (o *Client) GetAggregateMarketMetrics(ctx context.Context, params AggregateMarketMetricsParams) (*Response[AggregateMarketMetrics], error) {
	return send[AggregateMarketMetrics](ctx, o, GlobalMetricsEndpoint, params)
}

//
// send makes a GET request against the specified endpoint with the provided parameters encoded into
// the query string, and classifies the result. Every call either returns a response carrying a
// non-nil payload or fails with a transport error, a BadServerResponseError, or a BadRequestError.
//
func send[T any](ctx context.Context, o *Client, endpoint string, params any) (ret *Response[T], err error) {
	query, err := EncodeQuery(params)
	if err != nil {
		return nil, fmt.Errorf("encode %s parameters: %w", endpoint, err)
	}

	requestID := uuid.NewString()
	started := time.Now()
	statusCode := 0

	defer func() {
		elapsed := time.Since(started)

		requestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
		requestsTotal.WithLabelValues(endpoint, outcomeOf(err)).Inc()

		if status := statusOf(ret, err); status != nil && status.CreditCount > 0 {
			creditsUsedTotal.WithLabelValues(endpoint).Add(float64(status.CreditCount))
		}

		event := o.logger.Debug()
		if err != nil {
			event = o.logger.Warn().Err(err)
		}

		event.
			Str("endpoint", endpoint).
			Str("request_id", requestID).
			Int("status_code", statusCode).
			Dur("elapsed", elapsed).
			Msg("CoinMarketCap call completed")
	}()

	//
	// Build the request URL and make the endpoint request.
	//
	target := o.baseURL.ResolveReference(&url.URL{Path: endpoint, RawQuery: query.Encode()})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set(RequestIDHeader, requestID)

	resp, err := o.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}

	defer func() { _ = resp.Body.Close() }()

	statusCode = resp.StatusCode

	//
	// Read the full response body before classifying it.
	//
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", endpoint, err)
	}

	return decodeResponse[T](resp, body)
}

//
// decodeResponse parses a response body once and classifies the outcome of the call.
//
func decodeResponse[T any](resp *http.Response, body []byte) (*Response[T], error) {
	var env *envelope

	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &BadServerResponseError{
			Response:   resp,
			HTTPStatus: resp.StatusCode,
			RawBody:    string(body),
			Err:        err,
		}
	}

	//
	// A body of JSON null carries no information at all, so there is nothing worth attaching.
	//
	if env == nil {
		return nil, &BadServerResponseError{
			Response:   resp,
			HTTPStatus: resp.StatusCode,
			Err:        errors.New("response body is null"),
		}
	}

	//
	// A status-less envelope is most likely a gateway or transport-level error page.
	//
	if env.Status == nil {
		return nil, &BadServerResponseError{
			Response:   resp,
			HTTPStatus: resp.StatusCode,
			RawBody:    string(body),
			Err:        errors.New("response has no status block"),
		}
	}

	if !successful(resp.StatusCode) || !env.Status.Success() {
		return nil, &BadRequestError{Status: env.Status}
	}

	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return nil, &BadServerResponseError{
			Response:   resp,
			HTTPStatus: resp.StatusCode,
			RawBody:    string(body),
			Err:        errors.New("successful response has no data"),
		}
	}

	var data T

	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, &BadServerResponseError{
			Response:   resp,
			HTTPStatus: resp.StatusCode,
			RawBody:    string(body),
			Err:        err,
		}
	}

	return &Response[T]{Status: env.Status, Data: data, raw: resp}, nil
}

func successful(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

func statusOf[T any](resp *Response[T], err error) *Status {
	if resp != nil {
		return resp.Status
	}

	var badRequest *BadRequestError
	if errors.As(err, &badRequest) {
		return badRequest.Status
	}

	return nil
}
