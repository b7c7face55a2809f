package coinmarketcap

import (
	"time"

	"github.com/lukehollenback/coinmarketcap/marketdata"
	"github.com/shopspring/decimal"
)

// NOTE ~> Every field below is serialized by EncodeQuery. The field name IS the wire contract (it
//  is transliterated to lower-snake-case), so renaming a field changes the query key it produces.

//
// Sort is an enum-like string that names the field a listing should be ordered by.
//
type Sort string

const (
	SortMarketCap         Sort = "market_cap"
	SortName              Sort = "name"
	SortSymbol            Sort = "symbol"
	SortDateAdded         Sort = "date_added"
	SortPrice             Sort = "price"
	SortCirculatingSupply Sort = "circulating_supply"
	SortTotalSupply       Sort = "total_supply"
	SortMaxSupply         Sort = "max_supply"
	SortNumMarketPairs    Sort = "num_market_pairs"
	SortVolume24h         Sort = "volume_24h"
	SortPercentChange1h   Sort = "percent_change_1h"
	SortPercentChange24h  Sort = "percent_change_24h"
	SortPercentChange7d   Sort = "percent_change_7d"
	SortCMCRank           Sort = "cmc_rank"
)

//
// SortDir is an enum-like string that names the direction a listing should be ordered in.
//
type SortDir string

const (
	Ascending  SortDir = "asc"
	Descending SortDir = "desc"
)

//
// CryptocurrencyType is an enum-like string that filters listings by kind of asset.
//
type CryptocurrencyType string

const (
	AllCryptocurrencies CryptocurrencyType = "all"
	CoinsOnly           CryptocurrencyType = "coins"
	TokensOnly          CryptocurrencyType = "tokens"
)

//
// ListingLatestParameters are the query parameters of the latest listings endpoint.
//
type ListingLatestParameters struct {
	Start                int
	Limit                int
	PriceMin             decimal.Decimal
	PriceMax             decimal.Decimal
	MarketCapMin         decimal.Decimal
	MarketCapMax         decimal.Decimal
	CirculatingSupplyMin decimal.Decimal
	CirculatingSupplyMax decimal.Decimal
	Convert              []string
	ConvertID            []int
	Sort                 Sort
	SortDir              SortDir
	CryptocurrencyType   CryptocurrencyType
	Tag                  string
	Aux                  []string
}

//
// ListingHistoricalParameters are the query parameters of the historical listings endpoint. Date is
// required by the API.
//
type ListingHistoricalParameters struct {
	Date               time.Time
	Start              int
	Limit              int
	Convert            []string
	ConvertID          []int
	Sort               Sort
	SortDir            SortDir
	CryptocurrencyType CryptocurrencyType
	Aux                []string
}

//
// MarketPairsLatestParameters are the query parameters of the latest market pairs endpoint. Exactly
// one of ID, Slug, or Symbol identifies the cryptocurrency.
//
type MarketPairsLatestParameters struct {
	ID            int
	Slug          string
	Symbol        string
	Start         int
	Limit         int
	SortDir       SortDir
	Sort          string
	Aux           []string
	MatchedID     []int
	MatchedSymbol []string
	Category      string
	FeeType       string
	Convert       []string
	ConvertID     []int
}

//
// OhlcvHistoricalParameters are the query parameters of the historical OHLCV endpoint. Exactly one of
// ID, Slug, or Symbol identifies the cryptocurrency.
//
type OhlcvHistoricalParameters struct {
	ID          int
	Slug        string
	Symbol      string
	TimePeriod  marketdata.TimePeriod
	TimeStart   time.Time
	TimeEnd     time.Time
	Count       int
	Interval    marketdata.Interval
	Convert     []string
	ConvertID   []int
	SkipInvalid *bool
}

//
// LatestQuoteParameters are the query parameters of the latest quotes endpoint. At least one of ID,
// Slug, or Symbol must be provided. The response payload is keyed by whichever identifier was used.
//
type LatestQuoteParameters struct {
	ID          []int
	Slug        []string
	Symbol      []string
	Convert     []string
	ConvertID   []int
	Aux         []string
	SkipInvalid *bool
}

//
// HistoricalQuoteParameters are the query parameters of the historical quotes endpoint.
//
type HistoricalQuoteParameters struct {
	ID          int
	Symbol      string
	TimeStart   time.Time
	TimeEnd     time.Time
	Count       int
	Interval    marketdata.Interval
	Convert     []string
	ConvertID   []int
	Aux         []string
	SkipInvalid *bool
}

//
// AggregateMarketMetricsParams are the query parameters of the latest global metrics endpoint.
//
type AggregateMarketMetricsParams struct {
	Convert   []string
	ConvertID []int
}
