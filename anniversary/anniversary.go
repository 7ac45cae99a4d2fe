package anniversary

import (
	"fmt"
	"time"
)

// Anniversary pairs a generated number with the date it produces for some
// period.
type Anniversary struct {
	number *GeneratedNumber
	date   *GeneratedDate
}

// NewAnniversary returns a new Anniversary.
func NewAnniversary(number *GeneratedNumber, date *GeneratedDate) *Anniversary {
	return &Anniversary{
		number: number,
		date:   date,
	}
}

// Number returns the generated number.
func (a *Anniversary) Number() *GeneratedNumber {
	return a.number
}

// Date returns the generated date.
func (a *Anniversary) Date() *GeneratedDate {
	return a.date
}

// Instant is a shortcut for a.Date().Instant().
func (a *Anniversary) Instant() time.Time {
	return a.date.instant
}

// StaticID returns the identity fingerprint of the anniversary.
// It is computed from the number label, the number value and the period
// label only; two anniversaries sharing them are the same anniversary
// whatever instant each of them computed.
func (a *Anniversary) StaticID() uint64 {
	return HashCode(staticKey(a.number.label, a.number.value, a.date.period))
}

// String returns string representation of the Anniversary.
func (a *Anniversary) String() string {
	return fmt.Sprintf("%d %s (%s)", a.number.value, a.date.period,
		a.date.instant.Format(time.RFC3339))
}
