//
// Package indicator calculates moving averages and moving average crossovers over candle closes.
//
package indicator

import (
	"fmt"
	"time"

	"github.com/lukehollenback/coinmarketcap/constants"
	"github.com/lukehollenback/coinmarketcap/marketdata"
	"github.com/lukehollenback/coinmarketcap/structs/evictingqueue"
	"github.com/shopspring/decimal"
)

//
// Kind is an enum that represents the flavor of a moving average.
//
type Kind int

const (
	Simple Kind = iota
	Exponential
)

func (o Kind) String() string {
	switch o {
	case Simple:
		return "SMA"
	case Exponential:
		return "EMA"
	}

	return fmt.Sprintf("Kind(%d)", int(o))
}

//
// MovingAverage tracks a simple or exponential moving average over the most recent closes that have
// been added to it.
//
type MovingAverage struct {
	kind   Kind
	length decimal.Decimal
	closes *evictingqueue.EvictingQueue[decimal.Decimal]
	count  int

	sum       decimal.Decimal // Running sum of the closes currently held in the queue.
	smoothing decimal.Decimal // Exponential smoothing factor.

	value     decimal.Decimal
	prev      decimal.Decimal
	valid     bool
	prevValid bool
}

//
// NewMovingAverage instantiates a moving average of the specified kind over the specified number of
// periods.
//
func NewMovingAverage(kind Kind, length int) (*MovingAverage, error) {
	if length < 1 {
		return nil, fmt.Errorf("moving average length must be at least 1, got %d", length)
	}

	if kind != Simple && kind != Exponential {
		return nil, fmt.Errorf("unknown moving average kind %d", int(kind))
	}

	o := &MovingAverage{
		kind:   kind,
		length: decimal.NewFromInt(int64(length)),
		closes: evictingqueue.New[decimal.Decimal](length),
	}

	//
	// NOTE ~> EMA Smoothing Factor = 2 ÷ (number of time periods + 1)
	//
	o.smoothing = constants.Two().Div(o.length.Add(constants.One()))

	return o, nil
}

//
// Add feeds the closing amount of the next period into the moving average.
//
func (o *MovingAverage) Add(closeAmt decimal.Decimal) {
	evicted, ok := o.closes.Add(closeAmt)

	o.sum = o.sum.Add(closeAmt)
	if ok {
		o.sum = o.sum.Sub(evicted)
	}

	o.count++

	if int64(o.count) < o.length.IntPart() {
		return
	}

	o.prev, o.prevValid = o.value, o.valid
	o.valid = true

	//
	// The exponential average is primed with the simple average of the first full window.
	//
	// NOTE ~> EMA = (closing price - previous EMA) × smoothing factor + previous EMA
	//
	if o.kind == Simple || !o.prevValid {
		o.value = o.sum.Div(o.length)
	} else {
		o.value = closeAmt.Sub(o.prev).Mul(o.smoothing).Add(o.prev)
	}
}

//
// Value returns the current average and a sentinel that is false until enough periods have been
// added to calculate it.
//
func (o *MovingAverage) Value() (decimal.Decimal, bool) {
	return o.value, o.valid
}

//
// Previous returns the average as it was before the most recent period was added.
//
func (o *MovingAverage) Previous() (decimal.Decimal, bool) {
	return o.prev, o.prevValid
}

func (o *MovingAverage) Kind() Kind {
	return o.kind
}

func (o *MovingAverage) Len() int {
	return int(o.length.IntPart())
}

//
// Point is a single value of a moving average series, stamped with the closing time of the candle
// that completed it.
//
type Point struct {
	Time  time.Time
	Value decimal.Decimal
}

//
// Series calculates a moving average of the specified kind and length over the closes of the
// provided candles, which must be ordered by start time. Candles before the first full window do not
// produce a point.
//
func Series(candles []marketdata.Candle, kind Kind, length int) ([]Point, error) {
	ma, err := NewMovingAverage(kind, length)
	if err != nil {
		return nil, err
	}

	var ret []Point

	for _, c := range candles {
		ma.Add(*c.Close())

		if v, ok := ma.Value(); ok {
			ret = append(ret, Point{Time: *c.EndTime(), Value: v})
		}
	}

	return ret, nil
}
