package coinmarketcap

import (
	"time"

	"github.com/shopspring/decimal"
)

// Exchange identifies the exchange a market pair trades on.
type Exchange struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// MarketPairCurrency describes one side of a market pair.
type MarketPairCurrency struct {
	CurrencyID     int    `json:"currency_id"`
	CurrencySymbol string `json:"currency_symbol"`
	ExchangeSymbol string `json:"exchange_symbol"`
	CurrencyType   string `json:"currency_type"`
}

// MarketPairQuote is a market pair's quote in a single convert currency.
type MarketPairQuote struct {
	Price       decimal.Decimal `json:"price"`
	Volume24h   decimal.Decimal `json:"volume_24h"`
	LastUpdated time.Time       `json:"last_updated"`
}

// MarketPair is a single trading pair on an exchange. Besides one entry per convert currency, Quote
// carries an "exchange_reported" entry holding the figures reported by the exchange itself.
type MarketPair struct {
	Exchange        Exchange                   `json:"exchange"`
	MarketID        int                        `json:"market_id"`
	MarketPair      string                     `json:"market_pair"`
	Category        string                     `json:"category"`
	FeeType         string                     `json:"fee_type"`
	MarketPairBase  MarketPairCurrency         `json:"market_pair_base"`
	MarketPairQuote MarketPairCurrency         `json:"market_pair_quote"`
	Quote           map[string]MarketPairQuote `json:"quote"`
}

// MarketPairLatestResponse is the payload of the latest market pairs endpoint.
type MarketPairLatestResponse struct {
	ID             int          `json:"id"`
	Name           string       `json:"name"`
	Symbol         string       `json:"symbol"`
	NumMarketPairs int          `json:"num_market_pairs"`
	MarketPairs    []MarketPair `json:"market_pairs"`
}
