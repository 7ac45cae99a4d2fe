package anniversary

// Matcher represents a predicate (boolean-valued function) of one argument.
// Standard Matcher implementations are located in the matcher package.
type Matcher[T any] interface {
	// IsMatch evaluates this matcher on the given argument.
	IsMatch(T) bool
}

// Filter returns the anniversaries satisfying all of the given matchers,
// preserving their order. With no matchers every anniversary is returned.
func Filter(anniversaries []*Anniversary, matchers ...Matcher[*Anniversary]) []*Anniversary {
	filtered := make([]*Anniversary, 0, len(anniversaries))
loop:
	for _, a := range anniversaries {
		for _, m := range matchers {
			if !m.IsMatch(a) {
				continue loop
			}
		}
		filtered = append(filtered, a)
	}
	return filtered
}
