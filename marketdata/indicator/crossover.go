package indicator

import (
	"fmt"

	"github.com/lukehollenback/coinmarketcap/constants"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

//
// Signal is an enum that represents a trend that a crossover has detected.
//
type Signal int

const (
	None Signal = iota
	UptrendDetected
	DowntrendDetected
)

var signalNames = [...]string{"None", "UptrendDetected", "DowntrendDetected"}

func (o Signal) String() string {
	if o < 0 || int(o) >= len(signalNames) {
		return fmt.Sprintf("Signal(%d)", int(o))
	}

	return signalNames[o]
}

//
// Crossover watches a short and a long moving average of the same kind and signals whenever the
// short one crosses above (an uptrend) or below (a downtrend) the long one.
//
type Crossover struct {
	short  *MovingAverage
	long   *MovingAverage
	logger zerolog.Logger
}

//
// NewCrossover instantiates a crossover detector. The short length must be less than the long
// length.
//
func NewCrossover(kind Kind, shortLen int, longLen int, logger zerolog.Logger) (*Crossover, error) {
	if shortLen >= longLen {
		return nil, fmt.Errorf("short length (%d) must be less than long length (%d)", shortLen, longLen)
	}

	short, err := NewMovingAverage(kind, shortLen)
	if err != nil {
		return nil, err
	}

	long, err := NewMovingAverage(kind, longLen)
	if err != nil {
		return nil, err
	}

	return &Crossover{
		short:  short,
		long:   long,
		logger: logger.With().Str(constants.ComponentKey, "crossover").Logger(),
	}, nil
}

//
// Add feeds the closing amount of the next period into both moving averages and returns the signal
// (if any) that it triggered.
//
func (o *Crossover) Add(closeAmt decimal.Decimal) Signal {
	o.short.Add(closeAmt)
	o.long.Add(closeAmt)

	//
	// Determine if a signal should be fired given the moving averages. If we do not yet have both the
	// current and the previous value of both of them, we are not warmed up enough.
	//
	short, shortOK := o.short.Value()
	shortPrev, shortPrevOK := o.short.Previous()
	long, longOK := o.long.Value()
	longPrev, longPrevOK := o.long.Previous()

	if !shortOK || !shortPrevOK || !longOK || !longPrevOK {
		o.logger.Debug().
			Int("collected", o.long.count).
			Int("required", o.long.Len()+1).
			Msg("Not warmed up yet.")

		return None
	}

	//
	// A cross-over has occurred if the relationship between the two averages has changed since the
	// previous period.
	//
	aboveNow, abovePrev := short.GreaterThan(long), shortPrev.GreaterThan(longPrev)
	belowNow, belowPrev := short.LessThan(long), shortPrev.LessThan(longPrev)

	if aboveNow == abovePrev && belowNow == belowPrev {
		return None
	}

	var signal Signal

	switch {
	case aboveNow:
		signal = UptrendDetected
	case belowNow:
		signal = DowntrendDetected
	default:
		return None
	}

	o.logger.Info().
		Stringer("kind", o.short.Kind()).
		Str("short", short.String()).
		Str("long", long.String()).
		Str("close", closeAmt.String()).
		Stringer("signal", signal).
		Msg("Short moving average crossed the long moving average.")

	return signal
}

//
// Short returns the current short moving average.
//
func (o *Crossover) Short() (decimal.Decimal, bool) {
	return o.short.Value()
}

//
// Long returns the current long moving average.
//
func (o *Crossover) Long() (decimal.Decimal, bool) {
	return o.long.Value()
}
