package anniversary

import (
	"hash/fnv"
	"math"
	"reflect"
	"strconv"
	"time"
)

// idSeparator delimits the fields hashed by StaticID.
const idSeparator = "\x01"

// EndOfTime is an instant later than any window a Calculator is expected
// to be configured with. Periods return it for values they cannot
// represent, which ends the enumeration of that pair as out of window.
var EndOfTime = time.Unix(math.MaxInt64>>2, 0).UTC()

// HashCode calculates and returns the 64-bit FNV-1a hash of the given string.
func HashCode(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// staticKey serializes the identity fields of an anniversary in a fixed order.
func staticKey(label string, value int64, period string) string {
	return label + idSeparator + strconv.FormatInt(value, 10) + idSeparator + period
}

// MonthWindow returns the bounds lying the given number of calendar months
// before and after now.
func MonthWindow(now time.Time, months int) (minBound, maxBound time.Time) {
	return now.AddDate(0, -months, 0), now.AddDate(0, months, 0)
}

// isNil reports whether i is nil or an interface holding a nil pointer,
// function, map or slice.
func isNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice:
		return v.IsNil()
	}
	return false
}
