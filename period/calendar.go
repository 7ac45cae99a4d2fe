package period

import (
	"time"

	"github.com/reugn/go-anniversary/anniversary"
)

// Calendar periods.
var (
	Days   anniversary.PeriodGenerator = calendarPeriod(0, 0, 1, DaysLabel, anniversary.TagDayish)
	Weeks  anniversary.PeriodGenerator = calendarPeriod(0, 0, 7, WeeksLabel, anniversary.TagWeekish)
	Months anniversary.PeriodGenerator = calendarPeriod(0, 1, 0, MonthsLabel, anniversary.TagMonthish)
	Years  anniversary.PeriodGenerator = calendarPeriod(1, 0, 0, YearsLabel, anniversary.TagYearish)
)

// maxCalendarShift bounds the number of days, weeks, months or years a
// reference can be shifted by; AddDate takes int arguments and anything
// beyond this is far past every sensible window.
const maxCalendarShift = 1 << 24

func calendarPeriod(years, months, days int, label, tag string) anniversary.PeriodFunc {
	return func(reference time.Time, value int64) *anniversary.GeneratedDate {
		if value >= maxCalendarShift {
			return anniversary.NewGeneratedDate(anniversary.EndOfTime, label, tag)
		}
		n := int(value)
		instant := reference.AddDate(years*n, months*n, days*n)
		return anniversary.NewGeneratedDate(instant, label, tag)
	}
}
