package marketdata

import (
	"time"

	"github.com/shopspring/decimal"
)

//
// Candle generically provides an interface to objects that represent candlesticks (a.k.a. OHLCV
// quotes) provided in a response from a call to a market-data provider's API endpoint.
//
type Candle interface {

	//
	// StartTime returns a pointer to the structure representing the opening instant of the candle.
	//
	StartTime() *time.Time

	//
	// EndTime returns a pointer to the structure representing the closing instant of the candle. As
	// an example, a daily candle might open at 2020-08-25T00:00:00.000Z and close at
	// 2020-08-25T23:59:59.999Z.
	//
	EndTime() *time.Time

	//
	// Open returns a pointer to the structure representing the opening price of the candle.
	//
	Open() *decimal.Decimal

	//
	// High returns a pointer to the structure representing the high price of the candle.
	//
	High() *decimal.Decimal

	//
	// Low returns a pointer to the structure representing the low price of the candle.
	//
	Low() *decimal.Decimal

	//
	// Close returns a pointer to the structure representing the closing price of the candle.
	//
	Close() *decimal.Decimal

	//
	// Volume returns a pointer to the structure representing the trade volume of the candle.
	//
	Volume() *decimal.Decimal

	//
	// MarketCap returns a pointer to the structure representing the market capitalization at the
	// close of the candle.
	//
	MarketCap() *decimal.Decimal
}
