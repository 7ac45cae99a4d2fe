package period_test

import (
	"math"
	"testing"
	"time"

	"github.com/reugn/go-anniversary/anniversary"
	"github.com/reugn/go-anniversary/numbers"
	"github.com/reugn/go-anniversary/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var birthday = time.Date(1969, 7, 20, 20, 17, 58, 0, time.UTC)

func TestClockPeriods(t *testing.T) {
	tests := []struct {
		name     string
		period   anniversary.PeriodGenerator
		value    int64
		label    string
		tag      string
		expected time.Time
	}{
		{"seconds", period.Seconds, 1_000_000_000, period.SecondsLabel, anniversary.TagSecondish,
			time.Date(2001, 3, 28, 22, 4, 38, 0, time.UTC)},
		{"minutes", period.Minutes, 90, period.MinutesLabel, anniversary.TagMinutish,
			time.Date(1969, 7, 20, 21, 47, 58, 0, time.UTC)},
		{"hours", period.Hours, 500_000, period.HoursLabel, anniversary.TagHourish,
			birthday.Add(500_000 * time.Hour)},
	}
	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			date := test.period.Apply(birthday, test.value)
			assert.True(t, test.expected.Equal(date.Instant()), "got %s", date.Instant())
			assert.Equal(t, test.label, date.Period())
			assert.True(t, date.HasTag(test.tag))
		})
	}
}

func TestCalendarPeriods(t *testing.T) {
	tests := []struct {
		name      string
		period    anniversary.PeriodGenerator
		reference time.Time
		value     int64
		label     string
		expected  time.Time
	}{
		{"days", period.Days, birthday, 10_000, period.DaysLabel,
			time.Date(1996, 12, 5, 20, 17, 58, 0, time.UTC)},
		{"weeks", period.Weeks, birthday, 2, period.WeeksLabel,
			time.Date(1969, 8, 3, 20, 17, 58, 0, time.UTC)},
		{"months", period.Months, birthday, 600, period.MonthsLabel,
			time.Date(2019, 7, 20, 20, 17, 58, 0, time.UTC)},
		{"years", period.Years, birthday, 50, period.YearsLabel,
			time.Date(2019, 7, 20, 20, 17, 58, 0, time.UTC)},
		{"leap year", period.Years, time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC), 1, period.YearsLabel,
			time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"month overflow", period.Months, time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC), 1, period.MonthsLabel,
			time.Date(2021, 3, 3, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			date := test.period.Apply(test.reference, test.value)
			assert.True(t, test.expected.Equal(date.Instant()), "got %s", date.Instant())
			assert.Equal(t, test.label, date.Period())
		})
	}
}

func TestPeriodsMonotonic(t *testing.T) {
	references := []time.Time{
		birthday,
		time.Date(2021, 1, 31, 10, 0, 0, 0, time.UTC),
		time.Date(2020, 2, 29, 23, 59, 59, 0, time.UTC),
	}
	periods := []anniversary.PeriodGenerator{
		period.Seconds, period.Minutes, period.Hours,
		period.Days, period.Weeks, period.Months, period.Years,
	}
	for _, reference := range references {
		for _, p := range periods {
			prev := p.Apply(reference, 1).Instant()
			for value := int64(2); value <= 400; value++ {
				next := p.Apply(reference, value)
				require.True(t, next.Instant().After(prev),
					"%s: %d -> %s is not after %s", next.Period(), value, next.Instant(), prev)
				prev = next.Instant()
			}
		}
	}
}

func TestPeriodsSaturate(t *testing.T) {
	periods := []anniversary.PeriodGenerator{
		period.Seconds, period.Minutes, period.Hours,
		period.Days, period.Weeks, period.Months, period.Years,
	}
	for _, p := range periods {
		date := p.Apply(birthday, math.MaxInt64)
		assert.True(t, anniversary.EndOfTime.Equal(date.Instant()), date.Period())
	}
}

func TestCronPeriod(t *testing.T) {
	reference := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
	cron, err := period.Cron("@yearly")
	require.NoError(t, err)

	assert.Equal(t, "cron(@yearly)", cron.Label())
	assert.Equal(t, "@yearly", cron.Expression())

	first := cron.Apply(reference, 1)
	assert.True(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC).Equal(first.Instant()))
	assert.Equal(t, "cron(@yearly)", first.Period())
	assert.True(t, first.HasTag(anniversary.TagCron))

	third := cron.Apply(reference, 3)
	assert.True(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC).Equal(third.Instant()))
}

func TestCronPeriodDaily(t *testing.T) {
	cron, err := period.Cron("0 12 * * *")
	require.NoError(t, err)

	// strictly after the reference, even when the reference fires itself
	reference := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
	prev := reference
	for value := int64(1); value <= 10; value++ {
		instant := cron.Apply(reference, value).Instant()
		require.True(t, instant.After(prev))
		assert.Equal(t, 12, instant.Hour())
		prev = instant
	}
	assert.True(t, time.Date(2020, 1, 11, 12, 0, 0, 0, time.UTC).Equal(prev))
}

func TestCronPeriodExhausted(t *testing.T) {
	cron, err := period.Cron("0 0 1 1 * 2021")
	require.NoError(t, err)

	reference := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	first := cron.Apply(reference, 1)
	assert.True(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC).Equal(first.Instant()))

	second := cron.Apply(reference, 2)
	assert.True(t, anniversary.EndOfTime.Equal(second.Instant()))
}

func TestCronPeriodReferenceChange(t *testing.T) {
	cron, err := period.Cron("@daily")
	require.NoError(t, err)

	first := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		reference time.Time
		value     int64
		expected  time.Time
	}{
		{first, 5, time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC)},
		{first, 2, time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC)},
		{second, 2, time.Date(2021, 1, 3, 0, 0, 0, 0, time.UTC)},
		{first, 31, time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)},
		{first, 31, time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)},
		{second.In(time.FixedZone("UTC+1", 3600)), 1,
			time.Date(2021, 1, 1, 23, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		instant := cron.Apply(tt.reference, tt.value).Instant()
		assert.True(t, tt.expected.Equal(instant), "%d after %s: %s",
			tt.value, tt.reference, instant)
	}
}

func TestCronPeriodMatchesDays(t *testing.T) {
	reference := time.Date(1990, 7, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	daily, err := period.Cron("@daily")
	require.NoError(t, err)

	calculate := func(p anniversary.PeriodGenerator) ([]*anniversary.Anniversary, []*anniversary.Anniversary) {
		minBound, maxBound := anniversary.MonthWindow(now, 1)
		calculator, err := anniversary.NewCalculator(minBound, maxBound)
		require.NoError(t, err)
		require.NoError(t, calculator.AddNumberGenerator(numbers.Natural()))
		require.NoError(t, calculator.AddPeriod(p))
		return calculator.Calculate(reference, now)
	}

	start := time.Now()
	cronUpcoming, cronPassed := calculate(daily)
	// about 11000 firings since the reference, walked once
	assert.Less(t, time.Since(start), 5*time.Second)

	daysUpcoming, daysPassed := calculate(period.Days)
	require.Len(t, cronUpcoming, len(daysUpcoming))
	require.Len(t, cronPassed, len(daysPassed))
	// Dec 1 and Feb 1 are both window bounds, Jan 1 is now
	assert.Len(t, cronUpcoming, 32)
	assert.Len(t, cronPassed, 31)
	for i := range daysUpcoming {
		assert.Equal(t, daysUpcoming[i].Number().Value(), cronUpcoming[i].Number().Value())
		assert.True(t, daysUpcoming[i].Instant().Equal(cronUpcoming[i].Instant()))
	}
	for i := range daysPassed {
		assert.Equal(t, daysPassed[i].Number().Value(), cronPassed[i].Number().Value())
		assert.True(t, daysPassed[i].Instant().Equal(cronPassed[i].Instant()))
	}
}

func TestCronPeriodParseError(t *testing.T) {
	_, err := period.Cron("every other tuesday")
	assert.ErrorIs(t, err, anniversary.ErrCronParse)
}
