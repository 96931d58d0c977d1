package core_test

import (
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/waf/rhino-mocks/internal/core"
)

func TestRangeHelpers(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(core.Once()).To(Equal(core.Range{Min: 1, Max: 1}))
	g.Expect(core.Twice()).To(Equal(core.Range{Min: 2, Max: 2}))
	g.Expect(core.AtLeastOnce()).To(Equal(core.Range{Min: 1, Max: core.Unbounded}))
	g.Expect(core.AnyTimes()).To(Equal(core.Range{Min: 0, Max: core.Unbounded}))
	g.Expect(core.Never()).To(Equal(core.Range{Min: 0, Max: 0}))
	g.Expect(core.Times(3)).To(Equal(core.Range{Min: 3, Max: 3}))
	g.Expect(core.TimesBetween(1, 4)).To(Equal(core.Range{Min: 1, Max: 4}))
}

func TestRangeString(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(core.Twice().String()).To(Equal("{2, 2}"))
	g.Expect(core.AtLeastOnce().String()).To(Equal("{1, unbounded}"))
}

func TestTimesBetweenRejectsInvalidRanges(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(func() { core.TimesBetween(3, 2) }).To(Panic())
	g.Expect(func() { core.TimesBetween(-1, 2) }).To(Panic())
	g.Expect(func() { core.Times(-1) }).To(Panic())
}

// TestRangeBounds verifies Satisfied and Exhausted against the bounds for any
// valid range and count.
func TestRangeBounds(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		lo := rapid.IntRange(0, 20).Draw(rt, "lo")
		hi := rapid.IntRange(lo, 40).Draw(rt, "hi")
		count := rapid.IntRange(0, 50).Draw(rt, "count")

		r := core.TimesBetween(lo, hi)

		if r.Satisfied(count) != (count >= lo) {
			rt.Fatalf("Satisfied(%d) wrong for %s", count, r)
		}

		if r.Exhausted(count) != (count >= hi) {
			rt.Fatalf("Exhausted(%d) wrong for %s", count, r)
		}

		if r.Exhausted(count) && !r.Satisfied(count) {
			rt.Fatalf("exhausted but unsatisfied at %d for %s", count, r)
		}
	})
}
