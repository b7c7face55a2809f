package coinmarketcap

import (
	"testing"
	"time"

	"github.com/lukehollenback/coinmarketcap/marketdata"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"Symbol":             "symbol",
		"TimeStart":          "time_start",
		"SortDir":            "sort_dir",
		"ID":                 "id",
		"ConvertID":          "convert_id",
		"CMCRank":            "cmc_rank",
		"CryptocurrencyType": "cryptocurrency_type",
		"MatchedSymbol":      "matched_symbol",
		"Volume24h":          "volume24h",
		"Volume24hMin":       "volume24h_min",
		"camelCase":          "camel_case",
	}

	for in, want := range cases {
		assert.Equal(t, want, SnakeCase(in), "SnakeCase(%q)", in)
	}
}

func TestEncodeQueryOmitsUnsetFields(t *testing.T) {
	values, err := EncodeQuery(LatestQuoteParameters{Symbol: []string{"BTC"}})
	require.NoError(t, err)

	assert.Equal(t, "symbol=BTC", values.Encode())
}

func TestEncodeQueryEmptyParameters(t *testing.T) {
	for _, params := range []any{nil, AggregateMarketMetricsParams{}, &AggregateMarketMetricsParams{}, (*AggregateMarketMetricsParams)(nil)} {
		values, err := EncodeQuery(params)
		require.NoError(t, err)
		assert.Empty(t, values, "params %#v", params)
	}
}

func TestEncodeQueryRendersEveryKind(t *testing.T) {
	skip := false
	start := time.Date(2021, 3, 4, 5, 6, 7, 0, time.FixedZone("CET", 3600))

	values, err := EncodeQuery(&OhlcvHistoricalParameters{
		ID:          1,
		TimePeriod:  marketdata.HourlyPeriod,
		TimeStart:   start,
		Count:       10,
		Interval:    marketdata.SixHours,
		Convert:     []string{"USD", "EUR"},
		ConvertID:   []int{2781, 2790},
		SkipInvalid: &skip,
	})
	require.NoError(t, err)

	assert.Equal(t, "1", values.Get("id"))
	assert.Equal(t, "hourly", values.Get("time_period"))
	assert.Equal(t, "2021-03-04T04:06:07Z", values.Get("time_start"))
	assert.Equal(t, "10", values.Get("count"))
	assert.Equal(t, "6h", values.Get("interval"))
	assert.Equal(t, "USD,EUR", values.Get("convert"))
	assert.Equal(t, "2781,2790", values.Get("convert_id"))
	assert.Equal(t, "false", values.Get("skip_invalid"), "an explicitly set false pointer is not unset")

	for _, key := range []string{"slug", "symbol", "time_end"} {
		_, ok := values[key]
		assert.False(t, ok, "unset %s should be omitted", key)
	}
}

func TestEncodeQueryDecimals(t *testing.T) {
	values, err := EncodeQuery(ListingLatestParameters{
		PriceMin: decimal.RequireFromString("0.0005"),
		Sort:     SortMarketCap,
		SortDir:  Descending,
	})
	require.NoError(t, err)

	assert.Equal(t, "0.0005", values.Get("price_min"))
	assert.Equal(t, "market_cap", values.Get("sort"))
	assert.Equal(t, "desc", values.Get("sort_dir"))
	assert.Len(t, values, 3)
}

func TestEncodeQuerySkipsTaggedAndUnexportedFields(t *testing.T) {
	type params struct {
		Symbol   string
		Internal string `query:"-"`
		hidden   string
	}

	values, err := EncodeQuery(params{Symbol: "ETH", Internal: "x", hidden: "y"})
	require.NoError(t, err)

	assert.Equal(t, "symbol=ETH", values.Encode())
}

func TestEncodeQueryRejectsNonStructs(t *testing.T) {
	_, err := EncodeQuery("symbol=BTC")
	assert.Error(t, err)

	_, err = EncodeQuery(struct{ Ch chan int }{Ch: make(chan int)})
	assert.Error(t, err)
}

func TestEncodeQueryFractionalSeconds(t *testing.T) {
	values, err := EncodeQuery(HistoricalQuoteParameters{
		Symbol:    "BTC",
		TimeStart: time.Date(2024, 1, 2, 3, 4, 5, 600000000, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02T03:04:05.6Z", values.Get("time_start"))

	values, err = EncodeQuery(HistoricalQuoteParameters{
		Symbol:    "BTC",
		TimeStart: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02T03:04:05Z", values.Get("time_start"))
}

func TestEncodeQueryRejectsCommasInListElements(t *testing.T) {
	_, err := EncodeQuery(LatestQuoteParameters{Slug: []string{"a,b"}})
	assert.ErrorContains(t, err, "contains a comma")

	_, err = EncodeQuery(MarketPairsLatestParameters{Slug: "bitcoin", MatchedSymbol: []string{"a,b"}})
	assert.ErrorContains(t, err, "contains a comma")

	values, err := EncodeQuery(MarketPairsLatestParameters{Slug: "a,b"})
	require.NoError(t, err, "a comma in a scalar is unambiguous")
	assert.Equal(t, "a,b", values.Get("slug"))
}

func TestQueryRoundTrip(t *testing.T) {
	skip := true

	cases := []struct {
		name    string
		in      any
		decoded func() any
	}{
		{
			name: "latest listings",
			in: &ListingLatestParameters{
				Start:              101,
				Limit:              50,
				MarketCapMin:       decimal.RequireFromString("1000000.5"),
				Convert:            []string{"USD", "BTC"},
				Sort:               SortVolume24h,
				SortDir:            Ascending,
				CryptocurrencyType: TokensOnly,
				Aux:                []string{"platform", "tags"},
			},
			decoded: func() any { return &ListingLatestParameters{} },
		},
		{
			name: "historical listings",
			in: &ListingHistoricalParameters{
				Date:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
				Limit:   10,
				Convert: []string{"EUR"},
			},
			decoded: func() any { return &ListingHistoricalParameters{} },
		},
		{
			name: "market pairs",
			in: &MarketPairsLatestParameters{
				Symbol:        "BTC",
				Limit:         5,
				MatchedSymbol: []string{"USDT", "USD"},
				Category:      "spot",
			},
			decoded: func() any { return &MarketPairsLatestParameters{} },
		},
		{
			name: "ohlcv",
			in: &OhlcvHistoricalParameters{
				Slug:        "bitcoin",
				TimePeriod:  marketdata.DailyPeriod,
				TimeStart:   time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC),
				TimeEnd:     time.Date(2021, 6, 30, 0, 0, 0, 0, time.UTC),
				Interval:    marketdata.Weekly,
				SkipInvalid: &skip,
			},
			decoded: func() any { return &OhlcvHistoricalParameters{} },
		},
		{
			name:    "latest quote",
			in:      &LatestQuoteParameters{ID: []int{1, 1027}, Convert: []string{"USD"}},
			decoded: func() any { return &LatestQuoteParameters{} },
		},
		{
			name: "historical quote",
			in: &HistoricalQuoteParameters{
				Symbol:   "ETH",
				Count:    24,
				Interval: marketdata.OneHour,
			},
			decoded: func() any { return &HistoricalQuoteParameters{} },
		},
		{
			name: "historical quote with sub-second start",
			in: &HistoricalQuoteParameters{
				Symbol:    "BTC",
				TimeStart: time.Date(2024, 1, 2, 3, 4, 5, 600000000, time.UTC),
			},
			decoded: func() any { return &HistoricalQuoteParameters{} },
		},
		{
			name:    "global metrics",
			in:      &AggregateMarketMetricsParams{Convert: []string{"USD", "JPY"}},
			decoded: func() any { return &AggregateMarketMetricsParams{} },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			values, err := EncodeQuery(tc.in)
			require.NoError(t, err)

			out := tc.decoded()
			require.NoError(t, DecodeQuery(values, out))

			assert.Equal(t, tc.in, out)

			again, err := EncodeQuery(out)
			require.NoError(t, err)
			assert.Equal(t, values, again)
		})
	}
}

func TestDecodeQueryErrors(t *testing.T) {
	var params LatestQuoteParameters

	assert.Error(t, DecodeQuery(nil, params), "non-pointer destination")

	values, err := EncodeQuery(struct{ ID string }{ID: "not-a-number"})
	require.NoError(t, err)
	assert.Error(t, DecodeQuery(values, &params))

	values, err = EncodeQuery(struct{ Interval string }{Interval: "7 fortnights"})
	require.NoError(t, err)
	assert.Error(t, DecodeQuery(values, &HistoricalQuoteParameters{}))
}
