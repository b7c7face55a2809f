package coinmarketcap

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/lukehollenback/coinmarketcap/marketdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ohlcvBody = `{
  "status": {"error_code": 0, "error_message": null, "credit_count": 1},
  "data": {
    "id": 1, "name": "Bitcoin", "symbol": "BTC",
    "quotes": [
      {
        "time_open": "2019-01-03T00:00:00.000Z", "time_close": "2019-01-03T23:59:59.999Z",
        "quote": {"USD": {"open": 3931.05, "high": 3935.69, "low": 3826.22, "close": 3836.74, "volume": 4530215218.84, "market_cap": 66994920902.86}}
      },
      {
        "time_open": "2019-01-02T00:00:00.000Z", "time_close": "2019-01-02T23:59:59.999Z",
        "quote": {"USD": {"open": 3849.22, "high": 3947.98, "low": 3817.41, "close": 3943.41, "volume": 5244856835.89, "market_cap": 68849856731.60}}
      },
      {
        "time_open": "2019-01-01T00:00:00.000Z", "time_close": "2019-01-01T23:59:59.999Z",
        "quote": {"EUR": {"open": 3200, "high": 3300, "low": 3100, "close": 3250, "volume": 1, "market_cap": 1}}
      }
    ]
  }
}`

func TestOhlcvCandles(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "daily", r.URL.Query().Get("time_period"))
		assert.Equal(t, "2019-01-01T00:00:00Z", r.URL.Query().Get("time_start"))

		_, _ = w.Write([]byte(ohlcvBody))
	})

	resp, err := client.GetOhlcvHistorical(context.Background(), OhlcvHistoricalParameters{
		Symbol:     "BTC",
		TimePeriod: marketdata.DailyPeriod,
		TimeStart:  time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, resp.Data.Quotes, 3)

	candles := resp.Data.Candles("USD")
	require.Len(t, candles, 2, "the EUR-only quote is skipped")

	first := candles[0]
	assert.Equal(t, time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC), first.StartTime().UTC())
	assert.Equal(t, "3849.22", first.Open().String())
	assert.Equal(t, "3947.98", first.High().String())
	assert.Equal(t, "3817.41", first.Low().String())
	assert.Equal(t, "3943.41", first.Close().String())
	assert.Equal(t, "5244856835.89", first.Volume().String())
	assert.Equal(t, "68849856731.6", first.MarketCap().String())

	assert.True(t, candles[1].StartTime().After(*first.StartTime()))
	assert.Equal(t, "3836.74", candles[1].Close().String())

	eur, ok := resp.Data.Quotes[2].Candle("EUR")
	require.True(t, ok)
	assert.Equal(t, "3250", eur.Close().String())

	_, ok = resp.Data.Quotes[2].Candle("USD")
	assert.False(t, ok)
}
