package period

import (
	"time"

	"github.com/reugn/go-anniversary/anniversary"
)

// Period labels.
const (
	SecondsLabel = "seconds"
	MinutesLabel = "minutes"
	HoursLabel   = "hours"
	DaysLabel    = "days"
	WeeksLabel   = "weeks"
	MonthsLabel  = "months"
	YearsLabel   = "years"
)

// Clock periods.
var (
	Seconds anniversary.PeriodGenerator = clockPeriod(1, SecondsLabel, anniversary.TagSecondish)
	Minutes anniversary.PeriodGenerator = clockPeriod(60, MinutesLabel, anniversary.TagMinutish)
	Hours   anniversary.PeriodGenerator = clockPeriod(3600, HoursLabel, anniversary.TagHourish)
)

// clockPeriod shifts the reference by value times unit seconds, saturating
// at anniversary.EndOfTime.
func clockPeriod(unit int64, label, tag string) anniversary.PeriodFunc {
	return func(reference time.Time, value int64) *anniversary.GeneratedDate {
		limit := (anniversary.EndOfTime.Unix() - reference.Unix()) / unit
		if value >= limit {
			return anniversary.NewGeneratedDate(anniversary.EndOfTime, label, tag)
		}
		instant := time.Unix(reference.Unix()+value*unit, int64(reference.Nanosecond()))
		return anniversary.NewGeneratedDate(instant.In(reference.Location()), label, tag)
	}
}
