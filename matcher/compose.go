package matcher

import (
	"github.com/reugn/go-anniversary/anniversary"
)

// Tag matches anniversaries whose date carries the tag.
type Tag string

var _ anniversary.Matcher[*anniversary.Anniversary] = Tag("")

// HasTag returns a matcher for anniversaries whose date carries the given tag.
func HasTag(tag string) anniversary.Matcher[*anniversary.Anniversary] {
	return Tag(tag)
}

// IsMatch evaluates Tag matcher on the given anniversary.
func (t Tag) IsMatch(a *anniversary.Anniversary) bool {
	return a.Date().HasTag(string(t))
}

// AnyOf matches when at least one of its matchers does.
type AnyOf []anniversary.Matcher[*anniversary.Anniversary]

// IsMatch evaluates AnyOf matcher on the given anniversary.
func (m AnyOf) IsMatch(a *anniversary.Anniversary) bool {
	for _, matcher := range m {
		if matcher.IsMatch(a) {
			return true
		}
	}
	return false
}

// PeriodIn returns a matcher for anniversaries whose period label equals
// one of the given labels.
func PeriodIn(labels ...string) anniversary.Matcher[*anniversary.Anniversary] {
	matchers := make(AnyOf, len(labels))
	for i, label := range labels {
		matchers[i] = PeriodEquals(label)
	}
	return matchers
}

type not struct {
	matcher anniversary.Matcher[*anniversary.Anniversary]
}

// Not returns a matcher negating the given one.
func Not(m anniversary.Matcher[*anniversary.Anniversary]) anniversary.Matcher[*anniversary.Anniversary] {
	return &not{m}
}

func (n *not) IsMatch(a *anniversary.Anniversary) bool {
	return !n.matcher.IsMatch(a)
}
