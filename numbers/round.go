package numbers

import (
	"fmt"
	"math"
	"strconv"

	"github.com/reugn/go-anniversary/anniversary"
)

// Oddities of the standard round number sources.
const (
	DecimalOddity     = 10
	HexadecimalOddity = 20
	OctalOddity       = 30
	BinaryOddity      = 40
)

// HelpFunc describes a generated value.
type HelpFunc func(value int64) string

// Round returns a number source producing the round numbers in the given
// base, m·base^e for 1 <= m < base and e >= 0, in ascending order.
// The help function may be nil. The sequence ends before overflowing int64.
func Round(base int64, oddity int, help HelpFunc) (*anniversary.SequenceGenerator, error) {
	if base < 2 {
		return nil, fmt.Errorf("%w: base %d", anniversary.ErrIllegalArgument, base)
	}
	return anniversary.NewSequenceGenerator(func(prev *anniversary.GeneratedNumber) (*anniversary.GeneratedNumber, bool) {
		value := int64(1)
		if prev != nil {
			// the successor of m·base^e is (m+1)·base^e, which equals
			// base^(e+1) once m+1 reaches the base
			step := magnitude(prev.Value(), base)
			if prev.Value() > math.MaxInt64-step {
				return nil, false
			}
			value = prev.Value() + step
		}
		number := anniversary.NewGeneratedNumberWithOddity(value, anniversary.DefaultLabel, oddity)
		if help != nil {
			number = number.WithHelpText(help(value))
		}
		return number, true
	}), nil
}

// magnitude returns the greatest power of base not exceeding value.
func magnitude(value, base int64) int64 {
	power := int64(1)
	for power <= value/base {
		power *= base
	}
	return power
}

// Binary returns the round binary numbers: 1, 2, 4, 8, ...
func Binary() *anniversary.SequenceGenerator {
	return mustRound(2, BinaryOddity, func(value int64) string {
		return fmt.Sprintf("[%s]₂ is a round binary number", strconv.FormatInt(value, 2))
	})
}

// Octal returns the round octal numbers: 1, ..., 7, 8, 16, ..., 56, 64, ...
func Octal() *anniversary.SequenceGenerator {
	return mustRound(8, OctalOddity, func(value int64) string {
		return fmt.Sprintf("[%s]₈ is a round octal number", strconv.FormatInt(value, 8))
	})
}

// Decimal returns the round decimal numbers: 1, ..., 9, 10, 20, ..., 90, 100, ...
func Decimal() *anniversary.SequenceGenerator {
	return mustRound(10, DecimalOddity, nil)
}

// Hexadecimal returns the round hexadecimal numbers: 1, ..., 15, 16, 32, ...
func Hexadecimal() *anniversary.SequenceGenerator {
	return mustRound(16, HexadecimalOddity, func(value int64) string {
		return fmt.Sprintf("0x%X is a round hexadecimal number", value)
	})
}

func mustRound(base int64, oddity int, help HelpFunc) *anniversary.SequenceGenerator {
	generator, err := Round(base, oddity, help)
	if err != nil {
		panic(err)
	}
	return generator
}
