package indicator

import (
	"testing"
	"time"

	"github.com/lukehollenback/coinmarketcap/marketdata"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// seedCrossover generates the exact number of closes required to get a five-over-fifteen crossover
// warmed up. In order to ensure a constant and known state, all closes have the same value of
// 10000.
//
func seedCrossover(t *testing.T, kind Kind) *Crossover {
	t.Helper()

	crossover, err := NewCrossover(kind, 5, 15, zerolog.Nop())
	require.NoError(t, err)

	for i := 0; i < 15; i++ {
		assert.Equal(t, None, crossover.Add(decimal.NewFromInt(10000)))
	}

	return crossover
}

func TestSMAFiveOverFifteen(t *testing.T) {
	crossover := seedCrossover(t, Simple)

	signal := crossover.Add(decimal.NewFromInt(19000))

	short, _ := crossover.Short()
	long, _ := crossover.Long()

	assert.True(t, short.Equal(decimal.NewFromInt(11800)), "expected short SMA of 11,800 but was %s", short)
	assert.True(t, long.Equal(decimal.NewFromInt(10600)), "expected long SMA of 10,600 but was %s", long)
	assert.Equal(t, UptrendDetected, signal)
}

func TestSMAFiveUnderFifteen(t *testing.T) {
	crossover := seedCrossover(t, Simple)

	signal := crossover.Add(decimal.NewFromInt(1000))

	short, _ := crossover.Short()
	long, _ := crossover.Long()

	assert.True(t, short.Equal(decimal.NewFromInt(8200)), "expected short SMA of 8,200 but was %s", short)
	assert.True(t, long.Equal(decimal.NewFromInt(9400)), "expected long SMA of 9,400 but was %s", long)
	assert.Equal(t, DowntrendDetected, signal)
}

func TestEMAFiveOverFifteen(t *testing.T) {
	crossover := seedCrossover(t, Exponential)

	signal := crossover.Add(decimal.NewFromInt(19000))

	short, _ := crossover.Short()
	long, _ := crossover.Long()

	assert.True(t, short.Round(6).Equal(decimal.NewFromInt(13000)), "expected short EMA of 13,000 but was %s", short)
	assert.True(t, long.Equal(decimal.NewFromInt(11125)), "expected long EMA of 11,125 but was %s", long)
	assert.Equal(t, UptrendDetected, signal)
}

func TestEMAFiveUnderFifteen(t *testing.T) {
	crossover := seedCrossover(t, Exponential)

	signal := crossover.Add(decimal.NewFromInt(1000))

	short, _ := crossover.Short()
	long, _ := crossover.Long()

	assert.True(t, short.Round(6).Equal(decimal.NewFromInt(7000)), "expected short EMA of 7,000 but was %s", short)
	assert.True(t, long.Equal(decimal.NewFromInt(8875)), "expected long EMA of 8,875 but was %s", long)
	assert.Equal(t, DowntrendDetected, signal)
}

func TestNoSignalWithoutCross(t *testing.T) {
	crossover := seedCrossover(t, Simple)

	require.Equal(t, UptrendDetected, crossover.Add(decimal.NewFromInt(19000)))
	assert.Equal(t, None, crossover.Add(decimal.NewFromInt(19000)), "the short average is still above")
}

func TestSignalString(t *testing.T) {
	assert.Equal(t, "None", None.String())
	assert.Equal(t, "UptrendDetected", UptrendDetected.String())
	assert.Equal(t, "DowntrendDetected", DowntrendDetected.String())
	assert.Equal(t, "Signal(9)", Signal(9).String())
	assert.Equal(t, "Signal(-1)", Signal(-1).String())
}

func TestInvalidLengths(t *testing.T) {
	_, err := NewMovingAverage(Simple, 0)
	assert.Error(t, err)

	_, err = NewMovingAverage(Kind(9), 5)
	assert.Error(t, err)

	_, err = NewCrossover(Simple, 15, 5, zerolog.Nop())
	assert.Error(t, err)
}

func TestMovingAverageWindow(t *testing.T) {
	ma, err := NewMovingAverage(Simple, 3)
	require.NoError(t, err)

	for i, want := range []string{"", "", "2", "3", "4"} {
		ma.Add(decimal.NewFromInt(int64(i + 1)))

		v, ok := ma.Value()
		if want == "" {
			assert.False(t, ok)
			continue
		}

		require.True(t, ok)
		assert.Equal(t, want, v.String())
	}

	prev, ok := ma.Previous()
	require.True(t, ok)
	assert.Equal(t, "3", prev.String())
}

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

func TestSeries(t *testing.T) {
	day := time.Date(2020, 8, 25, 0, 0, 0, 0, time.UTC)

	var candles []marketdata.Candle
	for i, c := range []int64{10, 20, 30, 40} {
		start := day.AddDate(0, 0, i)
		candles = append(candles, &testCandle{start: start, end: start.Add(24*time.Hour - time.Millisecond), close: decimal.NewFromInt(c)})
	}

	points, err := Series(candles, Simple, 2)
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.Equal(t, "15", points[0].Value.String())
	assert.Equal(t, "25", points[1].Value.String())
	assert.Equal(t, "35", points[2].Value.String())
	assert.Equal(t, *candles[1].EndTime(), points[0].Time)
}
