package anniversary

import (
	"fmt"
	"time"
)

// Descriptive tags attached to generated dates by the standard periods.
const (
	TagSecondish = "secondish"
	TagMinutish  = "minutish"
	TagHourish   = "hourish"
	TagDayish    = "dayish"
	TagWeekish   = "weekish"
	TagMonthish  = "monthish"
	TagYearish   = "yearish"
	TagCron      = "cron"
)

// GeneratedDate is an instant produced by applying a period to a reference
// instant. Tags are descriptive only and take no part in identity or ordering.
type GeneratedDate struct {
	instant time.Time
	period  string
	tags    []string
}

// NewGeneratedDate returns a new GeneratedDate. Duplicate tags are dropped.
func NewGeneratedDate(instant time.Time, period string, tags ...string) *GeneratedDate {
	date := &GeneratedDate{
		instant: instant,
		period:  period,
	}
	for _, tag := range tags {
		if !date.HasTag(tag) {
			date.tags = append(date.tags, tag)
		}
	}
	return date
}

// Instant returns the computed point in time.
func (d *GeneratedDate) Instant() time.Time {
	return d.instant
}

// Period returns the label of the period that produced the date.
func (d *GeneratedDate) Period() string {
	return d.period
}

// Tags returns a copy of the date tags.
func (d *GeneratedDate) Tags() []string {
	tags := make([]string, len(d.tags))
	copy(tags, d.tags)
	return tags
}

// HasTag reports whether the date carries the given tag.
func (d *GeneratedDate) HasTag(tag string) bool {
	for _, t := range d.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// String returns string representation of the GeneratedDate.
func (d *GeneratedDate) String() string {
	return fmt.Sprintf("%s@%s", d.period, d.instant.Format(time.RFC3339))
}
