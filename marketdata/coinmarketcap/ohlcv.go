package coinmarketcap

import (
	"sort"
	"time"

	"github.com/lukehollenback/coinmarketcap/marketdata"
	"github.com/shopspring/decimal"
)

//
// OhlcvValues are the open, high, low, close, and volume figures of one candle in a single convert
// currency.
//
type OhlcvValues struct {
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	Volume    decimal.Decimal `json:"volume"`
	MarketCap decimal.Decimal `json:"market_cap"`
	Timestamp time.Time       `json:"timestamp"`
}

//
// OhlcvQuote is one candle of a historical OHLCV series, with values for every requested convert
// currency.
//
type OhlcvQuote struct {
	TimeOpen  time.Time              `json:"time_open"`
	TimeClose time.Time              `json:"time_close"`
	TimeHigh  time.Time              `json:"time_high"`
	TimeLow   time.Time              `json:"time_low"`
	Quote     map[string]OhlcvValues `json:"quote"`
}

//
// OhlcvHistoricalResponse is the payload of the historical OHLCV endpoint.
//
type OhlcvHistoricalResponse struct {
	ID     int          `json:"id"`
	Name   string       `json:"name"`
	Symbol string       `json:"symbol"`
	Quotes []OhlcvQuote `json:"quotes"`
}

//
// Candle returns a view of the quote in the specified convert currency that implements the
// marketdata.Candle interface, or nil and false if the quote holds no values in that currency.
//
func (o *OhlcvQuote) Candle(convert string) (marketdata.Candle, bool) {
	values, ok := o.Quote[convert]
	if !ok {
		return nil, false
	}

	return &Candle{
		start:     o.TimeOpen,
		end:       o.TimeClose,
		open:      values.Open,
		high:      values.High,
		low:       values.Low,
		close:     values.Close,
		volume:    values.Volume,
		marketCap: values.MarketCap,
	}, true
}

//
// Candles returns the series as marketdata.Candle values in the specified convert currency, ordered
// by opening time. Quotes that hold no values in that currency are skipped.
//
func (o *OhlcvHistoricalResponse) Candles(convert string) []marketdata.Candle {
	ret := make([]marketdata.Candle, 0, len(o.Quotes))

	for i := range o.Quotes {
		if c, ok := o.Quotes[i].Candle(convert); ok {
			ret = append(ret, c)
		}
	}

	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].StartTime().Before(*ret[j].StartTime())
	})

	return ret
}

//
// Candle implements the marketdata.Candle interface for OHLCV quotes provided by the CoinMarketCap
// API.
//
type Candle struct {
	start     time.Time
	end       time.Time
	open      decimal.Decimal
	high      decimal.Decimal
	low       decimal.Decimal
	close     decimal.Decimal
	volume    decimal.Decimal
	marketCap decimal.Decimal
}

func (o *Candle) StartTime() *time.Time {
	return &o.start
}

func (o *Candle) EndTime() *time.Time {
	return &o.end
}

func (o *Candle) Open() *decimal.Decimal {
	return &o.open
}

func (o *Candle) High() *decimal.Decimal {
	return &o.high
}

func (o *Candle) Low() *decimal.Decimal {
	return &o.low
}

func (o *Candle) Close() *decimal.Decimal {
	return &o.close
}

func (o *Candle) Volume() *decimal.Decimal {
	return &o.volume
}

func (o *Candle) MarketCap() *decimal.Decimal {
	return &o.marketCap
}
