package marketdata

import "fmt"

//
// Interval is an enum that represents the sampling intervals that can be requested from a
// provider's historical quote and OHLCV endpoints. The zero value (NoInterval) means that the
// provider's default should be used, and is never sent over the wire.
//
type Interval int

const (
	NoInterval Interval = iota
	FiveMinutes
	TenMinutes
	FifteenMinutes
	ThirtyMinutes
	FortyFiveMinutes
	OneHour
	TwoHours
	ThreeHours
	FourHours
	SixHours
	TwelveHours
	TwentyFourHours
	OneDay
	TwoDays
	ThreeDays
	SevenDays
	FourteenDays
	FifteenDays
	ThirtyDays
	SixtyDays
	NinetyDays
	ThreeHundredSixtyFiveDays
	Hourly
	Daily
	Weekly
	Monthly
	Yearly
)

var intervalNames = [...]string{
	"", "5m", "10m", "15m", "30m", "45m", "1h", "2h", "3h", "4h", "6h", "12h", "24h", "1d", "2d",
	"3d", "7d", "14d", "15d", "30d", "60d", "90d", "365d", "hourly", "daily", "weekly", "monthly",
	"yearly",
}

func (o Interval) String() string {
	if o < 0 || int(o) >= len(intervalNames) {
		return fmt.Sprintf("Interval(%d)", int(o))
	}

	return intervalNames[o]
}

//
// ParseInterval returns the Interval whose wire name matches the provided string.
//
func ParseInterval(s string) (Interval, error) {
	for i, name := range intervalNames {
		if name == s {
			return Interval(i), nil
		}
	}

	return NoInterval, fmt.Errorf("unknown interval %q", s)
}

func (o Interval) MarshalText() ([]byte, error) {
	if o < 0 || int(o) >= len(intervalNames) {
		return nil, fmt.Errorf("unknown interval %d", int(o))
	}

	return []byte(intervalNames[o]), nil
}

func (o *Interval) UnmarshalText(text []byte) error {
	v, err := ParseInterval(string(text))
	if err != nil {
		return err
	}

	*o = v

	return nil
}

//
// TimePeriod is an enum that represents the time period over which OHLCV candles are calculated.
// As with Interval, the zero value (NoTimePeriod) defers to the provider's default.
//
type TimePeriod int

const (
	NoTimePeriod TimePeriod = iota
	DailyPeriod
	HourlyPeriod
)

var timePeriodNames = [...]string{"", "daily", "hourly"}

func (o TimePeriod) String() string {
	if o < 0 || int(o) >= len(timePeriodNames) {
		return fmt.Sprintf("TimePeriod(%d)", int(o))
	}

	return timePeriodNames[o]
}

//
// ParseTimePeriod returns the TimePeriod whose wire name matches the provided string.
//
func ParseTimePeriod(s string) (TimePeriod, error) {
	for i, name := range timePeriodNames {
		if name == s {
			return TimePeriod(i), nil
		}
	}

	return NoTimePeriod, fmt.Errorf("unknown time period %q", s)
}

func (o TimePeriod) MarshalText() ([]byte, error) {
	if o < 0 || int(o) >= len(timePeriodNames) {
		return nil, fmt.Errorf("unknown time period %d", int(o))
	}

	return []byte(timePeriodNames[o]), nil
}

func (o *TimePeriod) UnmarshalText(text []byte) error {
	v, err := ParseTimePeriod(string(text))
	if err != nil {
		return err
	}

	*o = v

	return nil
}
