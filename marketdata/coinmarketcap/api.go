// Package coinmarketcap is a typed client for the CoinMarketCap Pro v1 REST API. Every method makes
// exactly one GET request and returns either a Response carrying the endpoint's payload, a
// BadRequestError carrying the status block the API reported, or a BadServerResponseError when the
// body could not be interpreted at all.
package coinmarketcap

import "context"

//
// API generically provides an interface to an object that can be used to interact with the
// CoinMarketCap Pro v1 REST API.
//
// Whenever an endpoint fails – whether due to a transport failure, an uninterpretable response, or
// an API error – the error will be non-nil and the response will be nil.
//
type API interface {
	GetLatestListings(ctx context.Context, params ListingLatestParameters) (*Response[[]CryptocurrencyWithLatestQuote], error)
	GetHistoricalListings(ctx context.Context, params ListingHistoricalParameters) (*Response[[]CryptocurrencyWithHistoricalQuote], error)
	GetMarketPairLatest(ctx context.Context, params MarketPairsLatestParameters) (*Response[MarketPairLatestResponse], error)
	GetOhlcvHistorical(ctx context.Context, params OhlcvHistoricalParameters) (*Response[OhlcvHistoricalResponse], error)
	GetLatestQuote(ctx context.Context, params LatestQuoteParameters) (*Response[map[string]CryptocurrencyWithLatestQuote], error)
	GetHistoricalQuote(ctx context.Context, params HistoricalQuoteParameters) (*Response[CryptocurrencyWithHistoricalQuote], error)
	GetAggregateMarketMetrics(ctx context.Context, params AggregateMarketMetricsParams) (*Response[AggregateMarketMetrics], error)
}
