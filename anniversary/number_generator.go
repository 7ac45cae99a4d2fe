package anniversary

// NumberGenerator represents a restartable source of numbers.
// Calculators restart the generator before every enumeration, so the
// produced sequence must be deterministic from its first element.
type NumberGenerator interface {
	// Restart resets the generator to the first element of its sequence.
	// It may be called any number of times.
	Restart()

	// Next returns the next number of the sequence. Values are strictly
	// ascending. The second result is false once the sequence is exhausted.
	Next() (*GeneratedNumber, bool)
}

// StepFunc computes the number following prev, where prev is nil for the
// first element of the sequence. It returns false when the sequence ends.
type StepFunc func(prev *GeneratedNumber) (*GeneratedNumber, bool)

// SequenceGenerator implements the NumberGenerator interface by deriving
// each number from the previous one.
type SequenceGenerator struct {
	step StepFunc
	prev *GeneratedNumber
	done bool
}

var _ NumberGenerator = (*SequenceGenerator)(nil)

// NewSequenceGenerator returns a new SequenceGenerator for the given step function.
func NewSequenceGenerator(step StepFunc) *SequenceGenerator {
	return &SequenceGenerator{step: step}
}

// Restart implements the NumberGenerator interface.
func (g *SequenceGenerator) Restart() {
	g.prev = nil
	g.done = false
}

// Next implements the NumberGenerator interface.
func (g *SequenceGenerator) Next() (*GeneratedNumber, bool) {
	if g.done {
		return nil, false
	}
	next, ok := g.step(g.prev)
	if !ok {
		g.done = true
		return nil, false
	}
	g.prev = next
	return next, true
}

// SliceGenerator implements the NumberGenerator interface over a finite,
// ascending list of numbers.
type SliceGenerator struct {
	numbers []*GeneratedNumber
	index   int
}

var _ NumberGenerator = (*SliceGenerator)(nil)

// NewSliceGenerator returns a new SliceGenerator producing the given numbers
// in order. The caller is responsible for passing ascending values.
func NewSliceGenerator(numbers ...*GeneratedNumber) *SliceGenerator {
	return &SliceGenerator{numbers: numbers}
}

// Restart implements the NumberGenerator interface.
func (g *SliceGenerator) Restart() {
	g.index = 0
}

// Next implements the NumberGenerator interface.
func (g *SliceGenerator) Next() (*GeneratedNumber, bool) {
	if g.index >= len(g.numbers) {
		return nil, false
	}
	next := g.numbers[g.index]
	g.index++
	return next, true
}

// Len returns the number of elements the generator produces.
func (g *SliceGenerator) Len() int {
	return len(g.numbers)
}
