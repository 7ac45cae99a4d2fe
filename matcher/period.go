//nolint:dupl
package matcher

import (
	"github.com/reugn/go-anniversary/anniversary"
)

// Period implements the anniversary.Matcher interface with the type argument
// *anniversary.Anniversary, matching anniversaries by their period label.
type Period struct {
	Operator *StringOperator // uses a pointer to compare with standard operators
	Pattern  string
}

var _ anniversary.Matcher[*anniversary.Anniversary] = (*Period)(nil)

// NewPeriod returns a new Period matcher given the string operator and pattern.
func NewPeriod(operator *StringOperator, pattern string) anniversary.Matcher[*anniversary.Anniversary] {
	return &Period{
		Operator: operator,
		Pattern:  pattern,
	}
}

// PeriodEquals returns a new Period, matching anniversaries whose period
// label is identical to the given string pattern.
func PeriodEquals(pattern string) anniversary.Matcher[*anniversary.Anniversary] {
	return NewPeriod(&StringEquals, pattern)
}

// PeriodStartsWith returns a new Period, matching anniversaries whose period
// label starts with the given string pattern.
func PeriodStartsWith(pattern string) anniversary.Matcher[*anniversary.Anniversary] {
	return NewPeriod(&StringStartsWith, pattern)
}

// IsMatch evaluates Period matcher on the given anniversary.
func (p *Period) IsMatch(a *anniversary.Anniversary) bool {
	return (*p.Operator)(a.Date().Period(), p.Pattern)
}
