package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lukehollenback/coinmarketcap/marketdata"
	"github.com/lukehollenback/coinmarketcap/marketdata/indicator"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCandle struct {
	start time.Time
	end   time.Time
	close decimal.Decimal
}

func (o *testCandle) StartTime() *time.Time { return &o.start }
func (o *testCandle) EndTime() *time.Time { return &o.end }
func (o *testCandle) Open() *decimal.Decimal { return &o.close }
func (o *testCandle) High() *decimal.Decimal { return &o.close }
func (o *testCandle) Low() *decimal.Decimal { return &o.close }
func (o *testCandle) Close() *decimal.Decimal { return &o.close }
func (o *testCandle) Volume() *decimal.Decimal { return &o.close }
func (o *testCandle) MarketCap() *decimal.Decimal { return &o.close }

func candles() []marketdata.Candle {
	day := time.Date(2020, 8, 25, 0, 0, 0, 0, time.UTC)

	var ret []marketdata.Candle
	for i, c := range []string{"11300.5", "11500", "11600.25"} {
		start := day.AddDate(0, 0, i)
		ret = append(ret, &testCandle{start: start, end: start.Add(24*time.Hour - time.Second), close: decimal.RequireFromString(c)})
	}

	return ret
}

func TestWriteCandlesWithoutAverage(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCandles(&buf, candles(), "SMA2", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "TimeOpen,TimeClose,Open,High,Low,Close,Volume,MarketCap", lines[0])
	assert.Equal(t, "2020-08-25T00:00:00Z,2020-08-25T23:59:59Z,11300.5,11300.5,11300.5,11300.5,11300.5,11300.5", lines[1])
}

func TestWriteCandlesWithAverage(t *testing.T) {
	var buf bytes.Buffer

	series := candles()
	points, err := indicator.Series(series, indicator.Simple, 2)
	require.NoError(t, err)

	require.NoError(t, WriteCandles(&buf, series, "SMA2", points))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	assert.True(t, strings.HasSuffix(lines[0], ",SMA2"))
	assert.True(t, strings.HasSuffix(lines[1], ",11300.5,"), "no average before the first full window: %s", lines[1])
	assert.True(t, strings.HasSuffix(lines[2], ",11400.25"), lines[2])
	assert.True(t, strings.HasSuffix(lines[3], ",11550.125"), lines[3])
}

func TestWriteCandlesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "btc.csv")

	require.NoError(t, WriteCandlesFile(path, candles(), "", nil, zerolog.Nop()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(data), "\n"))

	assert.Error(t, WriteCandlesFile(filepath.Join(t.TempDir(), "missing", "btc.csv"), candles(), "", nil, zerolog.Nop()))
}
