//nolint:dupl
package matcher

import (
	"github.com/reugn/go-anniversary/anniversary"
)

// NumberLabel implements the anniversary.Matcher interface with the type
// argument *anniversary.Anniversary, matching anniversaries by the label
// of their number.
type NumberLabel struct {
	Operator *StringOperator // uses a pointer to compare with standard operators
	Pattern  string
}

var _ anniversary.Matcher[*anniversary.Anniversary] = (*NumberLabel)(nil)

// NewNumberLabel returns a new NumberLabel matcher given the string operator
// and pattern.
func NewNumberLabel(operator *StringOperator, pattern string) anniversary.Matcher[*anniversary.Anniversary] {
	return &NumberLabel{
		Operator: operator,
		Pattern:  pattern,
	}
}

// NumberLabelEquals returns a new NumberLabel, matching anniversaries whose
// number label is identical to the given string pattern.
func NumberLabelEquals(pattern string) anniversary.Matcher[*anniversary.Anniversary] {
	return NewNumberLabel(&StringEquals, pattern)
}

// NumberLabelStartsWith returns a new NumberLabel, matching anniversaries
// whose number label starts with the given string pattern.
func NumberLabelStartsWith(pattern string) anniversary.Matcher[*anniversary.Anniversary] {
	return NewNumberLabel(&StringStartsWith, pattern)
}

// IsMatch evaluates NumberLabel matcher on the given anniversary.
func (n *NumberLabel) IsMatch(a *anniversary.Anniversary) bool {
	return (*n.Operator)(a.Number().Label(), n.Pattern)
}
