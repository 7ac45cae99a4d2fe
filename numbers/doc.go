// Package numbers provides the standard number sources for an
// anniversary.Calculator: natural numbers, round numbers in a base and
// numbers that spell words in hexadecimal.
//
// Round numbers share anniversary.DefaultLabel with natural numbers, so
// when both are registered an anniversary is reported once, carrying the
// help text of the round variant, whose oddity is lower.
package numbers
