package coinmarketcap

import "time"

const (
	APIKeyHeader    = "X-CMC_PRO_API_KEY"
	RequestIDHeader = "X-Request-Id"

	BaseURL = "https://pro-api.coinmarketcap.com/v1/"

	LatestListingsEndpoint     = "cryptocurrency/listings/latest"
	HistoricalListingsEndpoint = "cryptocurrency/listings/historical"
	MarketPairsLatestEndpoint  = "cryptocurrency/market-pairs/latest"
	OhlcvHistoricalEndpoint    = "cryptocurrency/ohlcv/historical"
	LatestQuotesEndpoint       = "cryptocurrency/quotes/latest"
	HistoricalQuotesEndpoint   = "cryptocurrency/quotes/historical"
	GlobalMetricsEndpoint      = "global-metrics/quotes/latest"

	DefaultTimeout = 30 * time.Second
)

// Error codes reported in the status block. See https://coinmarketcap.com/api/documentation/v1/#section/Errors-and-Rate-Limits
const (
	ErrCodeAPIKeyInvalid    = 1001
	ErrCodeAPIKeyMissing    = 1002
	ErrCodePaymentRequired  = 1003
	ErrCodePaymentExpired   = 1004
	ErrCodeAPIKeyRequired   = 1005
	ErrCodePlanUnauthorized = 1006
	ErrCodeAPIKeyDisabled   = 1007
	ErrCodeMinuteRateLimit  = 1008
	ErrCodeDailyRateLimit   = 1009
	ErrCodeMonthlyRateLimit = 1010
	ErrCodeIPRateLimit      = 1011
)
