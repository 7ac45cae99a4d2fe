package period

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorhill/cronexpr"
	"github.com/reugn/go-anniversary/anniversary"
)

// CronPeriod implements the anniversary.PeriodGenerator interface, mapping
// a value n to the n-th firing of a cron expression strictly after the
// reference instant.
//
// The period remembers the last firing it computed for the last reference,
// so ascending values walk the schedule once per enumeration.
type CronPeriod struct {
	expression string
	schedule   *cronexpr.Expression
	label      string

	mtx    sync.Mutex
	cursor cronCursor
}

// cronCursor is the value-th firing of the schedule after reference.
type cronCursor struct {
	reference time.Time
	value     int64
	instant   time.Time
}

var _ anniversary.PeriodGenerator = (*CronPeriod)(nil)

// Cron returns a new CronPeriod for the given expression. Expressions use
// the cronexpr syntax: an optional seconds field, five standard fields
// and an optional year field, or one of the predefined macros such as
// @yearly.
func Cron(expression string) (*CronPeriod, error) {
	schedule, err := cronexpr.Parse(expression)
	if err != nil {
		return nil, anniversary.CronParseError(err.Error())
	}
	return &CronPeriod{
		expression: expression,
		schedule:   schedule,
		label:      fmt.Sprintf("cron(%s)", expression),
	}, nil
}

// Apply implements the anniversary.PeriodGenerator interface.
func (p *CronPeriod) Apply(reference time.Time, value int64) *anniversary.GeneratedDate {
	if value >= maxCalendarShift {
		return anniversary.NewGeneratedDate(anniversary.EndOfTime, p.label, anniversary.TagCron)
	}
	p.mtx.Lock()
	defer p.mtx.Unlock()

	c := p.cursor
	// restart the walk for a new reference or a smaller value
	if !c.reference.Equal(reference) || c.reference.Location() != reference.Location() ||
		c.value > value {
		c = cronCursor{reference: reference, instant: reference}
	}
	for c.value < value {
		c.instant = p.schedule.Next(c.instant)
		if c.instant.IsZero() {
			// the schedule has no further firings
			return anniversary.NewGeneratedDate(anniversary.EndOfTime, p.label, anniversary.TagCron)
		}
		c.value++
	}
	p.cursor = c
	return anniversary.NewGeneratedDate(c.instant, p.label, anniversary.TagCron)
}

// Expression returns the cron expression.
func (p *CronPeriod) Expression() string {
	return p.expression
}

// Label returns the period label, "cron(<expression>)".
func (p *CronPeriod) Label() string {
	return p.label
}
