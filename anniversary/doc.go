// Package anniversary computes the anniversaries of a reference instant:
// the instants lying a whole number of periods after it.
//
// A Calculator combines every registered NumberGenerator with every
// registered PeriodGenerator. For each pair it restarts the generator and
// applies the period to the drawn numbers until the computed instant
// passes the upper bound of the window. Periods are monotonic in the
// value, so the first instant past the window ends the pair.
//
// Anniversaries are identified by their StaticID, a hash of the number
// label, the number value and the period label. The instant takes no part
// in it, which lets sources modelling the same number differently collapse
// into a single anniversary; the number with the lowest oddity survives.
//
//	minBound, maxBound := anniversary.MonthWindow(now, 24)
//	calculator, err := anniversary.NewCalculator(minBound, maxBound)
//	if err != nil {
//		return err
//	}
//	_ = calculator.AddNumberGenerator(numbers.Natural())
//	_ = calculator.AddPeriod(period.Years)
//	upcoming, justPassed := calculator.Calculate(birthday, now)
package anniversary
