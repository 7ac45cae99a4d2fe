package anniversary

import (
	"sort"
	"sync"
	"time"

	"github.com/reugn/go-anniversary/logger"
)

// Calculator combines every registered NumberGenerator with every
// registered PeriodGenerator to find the anniversaries of a reference
// instant that fall into the window [minBound, maxBound].
type Calculator struct {
	mtx        sync.Mutex
	minBound   time.Time
	maxBound   time.Time
	generators []NumberGenerator
	periods    []PeriodGenerator
}

// NewCalculator returns a new Calculator bounded by the given window.
// It returns an error if minBound is after maxBound.
func NewCalculator(minBound, maxBound time.Time) (*Calculator, error) {
	if minBound.After(maxBound) {
		return nil, illegalArgumentError("window lower bound is after upper bound")
	}
	return &Calculator{
		minBound: minBound,
		maxBound: maxBound,
	}, nil
}

// MinBound returns the lower bound of the window.
func (c *Calculator) MinBound() time.Time {
	return c.minBound
}

// MaxBound returns the upper bound of the window.
func (c *Calculator) MaxBound() time.Time {
	return c.maxBound
}

// AddNumberGenerator registers a number source. Registering the same
// source more than once is allowed; the duplicates collapse in the result.
func (c *Calculator) AddNumberGenerator(generator NumberGenerator) error {
	if isNil(generator) {
		return illegalArgumentError("number generator is nil")
	}
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.generators = append(c.generators, generator)
	return nil
}

// AddPeriod registers a period.
func (c *Calculator) AddPeriod(period PeriodGenerator) error {
	if isNil(period) {
		return illegalArgumentError("period is nil")
	}
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.periods = append(c.periods, period)
	return nil
}

// Calculate returns the anniversaries of reference within the window,
// split into the upcoming ones (at or after now) and the ones that have
// just passed (before now). Both slices are sorted by ascending instant.
//
// Number sources hold a cursor, so concurrent calls are serialized.
func (c *Calculator) Calculate(reference, now time.Time) (upcoming, justPassed []*Anniversary) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	candidates := c.enumerate(reference)
	survivors := deduplicate(candidates)

	upcoming = make([]*Anniversary, 0, len(survivors))
	justPassed = make([]*Anniversary, 0, len(survivors))
	for _, a := range survivors {
		if a.Instant().Before(now) {
			justPassed = append(justPassed, a)
		} else {
			upcoming = append(upcoming, a)
		}
	}
	sortByInstant(upcoming)
	sortByInstant(justPassed)

	logger.Debug("Calculated anniversaries", "candidates", len(candidates),
		"upcoming", len(upcoming), "justPassed", len(justPassed))
	return upcoming, justPassed
}

// enumerate draws numbers from every (source, period) pair until the
// computed instant leaves the window or the source is exhausted.
// Non-positive numbers are skipped.
func (c *Calculator) enumerate(reference time.Time) []*Anniversary {
	var candidates []*Anniversary
	for i, generator := range c.generators {
		for j, period := range c.periods {
			generator.Restart()
			drawn, emitted, skipped := 0, 0, 0
			for {
				number, ok := generator.Next()
				if !ok {
					logger.Trace("Number generator exhausted", "generator", i, "period", j)
					break
				}
				drawn++
				if number.value < 1 {
					skipped++
					continue
				}
				date := period.Apply(reference, number.value)
				if date.instant.After(c.maxBound) {
					break
				}
				if !date.instant.Before(c.minBound) {
					candidates = append(candidates, NewAnniversary(number, date))
					emitted++
				}
			}
			logger.Trace("Enumerated pair", "generator", i, "period", j,
				"drawn", drawn, "emitted", emitted)
		}
	}
	return candidates
}

// deduplicate keeps one anniversary per static id: the one with the lowest
// oddity, the earliest enumerated among equals. Survivors keep the position
// of the first member of their group.
func deduplicate(candidates []*Anniversary) []*Anniversary {
	index := make(map[uint64]int, len(candidates))
	survivors := make([]*Anniversary, 0, len(candidates))
	for _, candidate := range candidates {
		id := candidate.StaticID()
		i, seen := index[id]
		if !seen {
			index[id] = len(survivors)
			survivors = append(survivors, candidate)
			continue
		}
		if candidate.number.oddity < survivors[i].number.oddity {
			survivors[i] = candidate
		}
	}
	if dropped := len(candidates) - len(survivors); dropped > 0 {
		logger.Trace("Dropped duplicate anniversaries", "count", dropped)
	}
	return survivors
}

func sortByInstant(anniversaries []*Anniversary) {
	sort.SliceStable(anniversaries, func(i, j int) bool {
		return anniversaries[i].date.instant.Before(anniversaries[j].date.instant)
	})
}
