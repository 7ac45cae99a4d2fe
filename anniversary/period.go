package anniversary

import "time"

// PeriodGenerator maps a reference instant and a number to a GeneratedDate.
//
// Implementations must be monotonic: for a fixed reference, a greater value
// yields a later instant. Calculators rely on it to stop enumerating a
// number source as soon as one instant leaves the window. Values that
// cannot be represented map to EndOfTime.
type PeriodGenerator interface {
	Apply(reference time.Time, value int64) *GeneratedDate
}

// PeriodFunc is an adapter to allow the use of ordinary functions as
// PeriodGenerators.
type PeriodFunc func(reference time.Time, value int64) *GeneratedDate

var _ PeriodGenerator = PeriodFunc(nil)

// Apply calls f(reference, value).
func (f PeriodFunc) Apply(reference time.Time, value int64) *GeneratedDate {
	return f(reference, value)
}
