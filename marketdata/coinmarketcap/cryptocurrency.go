package coinmarketcap

import (
	"time"

	"github.com/shopspring/decimal"
)

//
// Platform describes the blockchain a token is issued on. It is nil for coins.
//
type Platform struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	Slug         string `json:"slug"`
	TokenAddress string `json:"token_address"`
}

//
// Cryptocurrency holds the descriptive fields shared by every cryptocurrency payload.
//
type Cryptocurrency struct {
	ID                int                 `json:"id"`
	Name              string              `json:"name"`
	Symbol            string              `json:"symbol"`
	Slug              string              `json:"slug"`
	CMCRank           int                 `json:"cmc_rank"`
	NumMarketPairs    int                 `json:"num_market_pairs"`
	IsActive          int                 `json:"is_active"`
	IsFiat            int                 `json:"is_fiat"`
	CirculatingSupply decimal.NullDecimal `json:"circulating_supply"`
	TotalSupply       decimal.NullDecimal `json:"total_supply"`
	MaxSupply         decimal.NullDecimal `json:"max_supply"`
	DateAdded         time.Time           `json:"date_added"`
	LastUpdated       time.Time           `json:"last_updated"`
	Tags              []string            `json:"tags"`
	Platform          *Platform           `json:"platform"`
}

//
// LatestQuote is a market quote in a single convert currency.
//
type LatestQuote struct {
	Price                 decimal.Decimal     `json:"price"`
	Volume24h             decimal.Decimal     `json:"volume_24h"`
	VolumeChange24h       decimal.NullDecimal `json:"volume_change_24h"`
	PercentChange1h       decimal.NullDecimal `json:"percent_change_1h"`
	PercentChange24h      decimal.NullDecimal `json:"percent_change_24h"`
	PercentChange7d       decimal.NullDecimal `json:"percent_change_7d"`
	PercentChange30d      decimal.NullDecimal `json:"percent_change_30d"`
	MarketCap             decimal.Decimal     `json:"market_cap"`
	MarketCapDominance    decimal.NullDecimal `json:"market_cap_dominance"`
	FullyDilutedMarketCap decimal.NullDecimal `json:"fully_diluted_market_cap"`
	LastUpdated           time.Time           `json:"last_updated"`
}

//
// CryptocurrencyWithLatestQuote is a cryptocurrency along with its latest quote in every requested
// convert currency (keyed by the currency symbol, e.g. "USD").
//
type CryptocurrencyWithLatestQuote struct {
	Cryptocurrency

	Quote map[string]LatestQuote `json:"quote"`
}

//
// HistoricalQuote is a market quote in a single convert currency at a point in time.
//
type HistoricalQuote struct {
	Price            decimal.Decimal     `json:"price"`
	Volume24h        decimal.Decimal     `json:"volume_24h"`
	PercentChange1h  decimal.NullDecimal `json:"percent_change_1h"`
	PercentChange24h decimal.NullDecimal `json:"percent_change_24h"`
	PercentChange7d  decimal.NullDecimal `json:"percent_change_7d"`
	MarketCap        decimal.Decimal     `json:"market_cap"`
	TotalSupply      decimal.NullDecimal `json:"total_supply"`
	Timestamp        time.Time           `json:"timestamp"`
	LastUpdated      time.Time           `json:"last_updated"`
}

//
// HistoricalQuoteSnapshot is one sample of a historical quote series.
//
type HistoricalQuoteSnapshot struct {
	Timestamp time.Time                  `json:"timestamp"`
	Quote     map[string]HistoricalQuote `json:"quote"`
}

//
// CryptocurrencyWithHistoricalQuote is a cryptocurrency along with historical market data. The
// historical listings endpoint fills Quote with a single sample per convert currency, while the
// historical quotes endpoint fills Quotes with a series of samples.
//
type CryptocurrencyWithHistoricalQuote struct {
	Cryptocurrency

	Quote  map[string]HistoricalQuote `json:"quote,omitempty"`
	Quotes []HistoricalQuoteSnapshot  `json:"quotes,omitempty"`
}
