package marketdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalNames(t *testing.T) {
	for i := FiveMinutes; i <= Yearly; i++ {
		name := i.String()
		require.NotEmpty(t, name)

		parsed, err := ParseInterval(name)
		require.NoError(t, err)
		assert.Equal(t, i, parsed)
	}

	assert.Equal(t, "", NoInterval.String())
	assert.Equal(t, "5m", FiveMinutes.String())
	assert.Equal(t, "365d", ThreeHundredSixtyFiveDays.String())
	assert.Equal(t, "Interval(99)", Interval(99).String())
}

func TestIntervalText(t *testing.T) {
	text, err := Weekly.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "weekly", string(text))

	var interval Interval
	require.NoError(t, interval.UnmarshalText([]byte("12h")))
	assert.Equal(t, TwelveHours, interval)

	assert.Error(t, interval.UnmarshalText([]byte("fortnightly")))
	assert.Equal(t, TwelveHours, interval, "a failed parse leaves the value alone")

	_, err = Interval(-1).MarshalText()
	assert.Error(t, err)
}

func TestTimePeriod(t *testing.T) {
	for _, p := range []TimePeriod{DailyPeriod, HourlyPeriod} {
		text, err := p.MarshalText()
		require.NoError(t, err)

		var parsed TimePeriod
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, p, parsed)
	}

	_, err := ParseTimePeriod("weekly")
	assert.Error(t, err)
	assert.Equal(t, "TimePeriod(7)", TimePeriod(7).String())
}
