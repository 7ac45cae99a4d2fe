package anniversary

import "fmt"

const (
	// DefaultLabel is the label of numbers whose source does not
	// distinguish them from plain natural numbers.
	DefaultLabel = "number"

	// DefaultOddity is the oddity of numbers whose source does not
	// care about ranking.
	DefaultOddity = 100
)

// GeneratedNumber is a value produced by a NumberGenerator.
// The label and the value identify the number; the oddity only ranks
// numbers sharing an identity, the lower the more canonical.
type GeneratedNumber struct {
	value    int64
	label    string
	oddity   int
	helpText string
}

// NewGeneratedNumber returns a new GeneratedNumber with the default
// label and oddity. The value is expected to be positive; a Calculator
// skips numbers below 1.
func NewGeneratedNumber(value int64) *GeneratedNumber {
	return &GeneratedNumber{
		value:  value,
		label:  DefaultLabel,
		oddity: DefaultOddity,
	}
}

// NewGeneratedNumberWithOddity returns a new GeneratedNumber using the given
// label and oddity. An empty label is replaced with DefaultLabel.
// As with NewGeneratedNumber, the value is expected to be positive.
func NewGeneratedNumberWithOddity(value int64, label string, oddity int) *GeneratedNumber {
	if label == "" { // use default if empty
		label = DefaultLabel
	}
	return &GeneratedNumber{
		value:  value,
		label:  label,
		oddity: oddity,
	}
}

// WithHelpText returns a copy of the number carrying the given description.
func (n *GeneratedNumber) WithHelpText(text string) *GeneratedNumber {
	clone := *n
	clone.helpText = text
	return &clone
}

// Value returns the numeric value.
func (n *GeneratedNumber) Value() int64 {
	return n.value
}

// Label returns the identity label.
func (n *GeneratedNumber) Label() string {
	return n.label
}

// Oddity returns the tie-break rank.
func (n *GeneratedNumber) Oddity() int {
	return n.oddity
}

// HelpText returns the optional description, or an empty string.
func (n *GeneratedNumber) HelpText() string {
	return n.helpText
}

// String returns string representation of the GeneratedNumber.
func (n *GeneratedNumber) String() string {
	return fmt.Sprintf("%s:%d", n.label, n.value)
}
