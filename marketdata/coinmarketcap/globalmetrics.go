package coinmarketcap

import (
	"time"

	"github.com/shopspring/decimal"
)

// AggregateMarketQuote is the aggregate market quote in a single convert currency.
type AggregateMarketQuote struct {
	TotalMarketCap          decimal.Decimal     `json:"total_market_cap"`
	TotalVolume24h          decimal.Decimal     `json:"total_volume_24h"`
	TotalVolume24hReported  decimal.NullDecimal `json:"total_volume_24h_reported"`
	AltcoinVolume24h        decimal.NullDecimal `json:"altcoin_volume_24h"`
	AltcoinMarketCap        decimal.NullDecimal `json:"altcoin_market_cap"`
	DefiVolume24h           decimal.NullDecimal `json:"defi_volume_24h"`
	DefiMarketCap           decimal.NullDecimal `json:"defi_market_cap"`
	StablecoinVolume24h     decimal.NullDecimal `json:"stablecoin_volume_24h"`
	StablecoinMarketCap     decimal.NullDecimal `json:"stablecoin_market_cap"`
	TotalMarketCapYesterday decimal.NullDecimal `json:"total_market_cap_yesterday"`
	LastUpdated             time.Time           `json:"last_updated"`
}

// AggregateMarketMetrics is the payload of the latest global metrics endpoint.
type AggregateMarketMetrics struct {
	ActiveCryptocurrencies int                             `json:"active_cryptocurrencies"`
	TotalCryptocurrencies  int                             `json:"total_cryptocurrencies"`
	ActiveMarketPairs      int                             `json:"active_market_pairs"`
	ActiveExchanges        int                             `json:"active_exchanges"`
	TotalExchanges         int                             `json:"total_exchanges"`
	EthDominance           decimal.Decimal                 `json:"eth_dominance"`
	BtcDominance           decimal.Decimal                 `json:"btc_dominance"`
	DefiVolume24h          decimal.NullDecimal             `json:"defi_volume_24h"`
	StablecoinVolume24h    decimal.NullDecimal             `json:"stablecoin_volume_24h"`
	LastUpdated            time.Time                       `json:"last_updated"`
	Quote                  map[string]AggregateMarketQuote `json:"quote"`
}
