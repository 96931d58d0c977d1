package core

import (
	"fmt"
	"math"
)

// Unbounded is the Max of a Range with no upper limit.
const Unbounded = math.MaxInt

// Range is the inclusive bound on how many times an Expectation may (Max) and
// must (Min) be matched.
type Range struct {
	Min int
	Max int
}

// AnyTimes allows any number of calls, including none.
func AnyTimes() Range { return Range{Min: 0, Max: Unbounded} }

// AtLeastOnce requires one call and allows more.
func AtLeastOnce() Range { return Range{Min: 1, Max: Unbounded} }

// Never forbids the call.
func Never() Range { return Range{Min: 0, Max: 0} }

// Once requires exactly one call. It is the default.
func Once() Range { return Range{Min: 1, Max: 1} }

// Times requires exactly n calls.
func Times(n int) Range { return TimesBetween(n, n) }

// TimesBetween requires between lo and hi calls, inclusive.
// It panics if the bounds are negative or reversed.
func TimesBetween(lo, hi int) Range {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("invalid repeat range: min %d, max %d", lo, hi))
	}

	return Range{Min: lo, Max: hi}
}

// Twice requires exactly two calls.
func Twice() Range { return Range{Min: 2, Max: 2} }

func (r Range) String() string {
	switch {
	case r.Max == Unbounded:
		return fmt.Sprintf("{%d, unbounded}", r.Min)
	default:
		return fmt.Sprintf("{%d, %d}", r.Min, r.Max)
	}
}

// Exhausted reports whether count has reached the upper bound.
func (r Range) Exhausted(count int) bool { return count >= r.Max }

// Satisfied reports whether count has reached the lower bound.
func (r Range) Satisfied(count int) bool { return count >= r.Min }
