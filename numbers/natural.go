package numbers

import (
	"math"

	"github.com/reugn/go-anniversary/anniversary"
)

// Natural returns a number source producing 1, 2, 3, ...
func Natural() *anniversary.SequenceGenerator {
	return anniversary.NewSequenceGenerator(nextNatural)
}

func nextNatural(prev *anniversary.GeneratedNumber) (*anniversary.GeneratedNumber, bool) {
	if prev == nil {
		return anniversary.NewGeneratedNumber(1), true
	}
	if prev.Value() == math.MaxInt64 {
		return nil, false
	}
	return anniversary.NewGeneratedNumber(prev.Value() + 1), true
}
