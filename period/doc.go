// Package period provides the standard anniversary.PeriodGenerator
// implementations.
//
// Clock periods (seconds, minutes, hours) shift the reference by an
// absolute duration. Calendar periods (days, weeks, months, years) shift
// the wall clock date in the reference's location, normalizing overflowing
// days the way time.Time.AddDate does. Cron periods count the firings of a
// cron expression.
//
// Values too large to be represented map to anniversary.EndOfTime.
package period
