package core_test

import (
	"errors"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/waf/rhino-mocks/internal/core"
)

func TestAnyMatchesEverything(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		value := rapid.OneOf(
			rapid.Just[any](nil),
			rapid.Map(rapid.Int(), func(i int) any { return i }),
			rapid.Map(rapid.String(), func(s string) any { return s }),
		).Draw(rt, "value")

		ok, err := core.Any().Match(value)
		if err != nil || !ok {
			rt.Fatalf("Any rejected %#v: %v", value, err)
		}
	})
}

func TestEqualTreatsNilsAlike(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var nilPtr *int

	ok, err := core.Equal(nil).Match(nilPtr)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ok).To(BeTrue())

	ok, err = core.Equal(0).Match(nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ok).To(BeFalse())
}

func TestEqualComparesFunctionsByName(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	ok, err := core.Equal(strings.ToUpper).Match(strings.ToUpper)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ok).To(BeTrue())

	ok, err = core.Equal(strings.ToUpper).Match(strings.ToLower)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ok).To(BeFalse())
}

func TestEqualDescribesWithFormatter(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(core.Equal("x").Describe(core.FormatValue)).To(Equal(`"x"`))
	g.Expect(core.Equal([]int{1, 2}).Describe(core.FormatValue)).To(Equal("[1, 2]"))
	g.Expect(core.Any().Describe(core.FormatValue)).To(Equal("anything"))
}

func TestSatisfiesRunsPredicate(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	errOdd := errors.New("odd")
	even := core.Satisfies(func(n int) error {
		if n%2 != 0 {
			return errOdd
		}

		return nil
	})

	ok, err := even.Match(4)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ok).To(BeTrue())

	ok, err = even.Match(3)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ok).To(BeFalse())
	g.Expect(even.FailureMessage(3)).To(ContainSubstring("odd"))

	_, err = even.Match("4")
	g.Expect(err).To(MatchError(ContainSubstring("type mismatch")))
	g.Expect(even.Describe(core.FormatValue)).To(HavePrefix("satisfying core_test."))
}

func TestConstraintForWrapsMatchers(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	prefix := core.ConstraintFor(HavePrefix("order-"))

	ok, err := prefix.Match("order-7")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ok).To(BeTrue())
	g.Expect(prefix.Describe(core.FormatValue)).To(Equal("matching HavePrefixMatcher"))

	anything := core.Any()
	g.Expect(core.ConstraintFor(anything)).To(BeIdenticalTo(anything))

	plain := core.ConstraintFor(3)
	g.Expect(plain.Describe(core.FormatValue)).To(Equal("3"))
}

func TestConstraintsForKeepsPositions(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	constraints := core.ConstraintsFor(1, core.Any(), "a")

	g.Expect(constraints).To(HaveLen(3))
	g.Expect(constraints[0].Describe(core.FormatValue)).To(Equal("1"))
	g.Expect(constraints[1].Describe(core.FormatValue)).To(Equal("anything"))
	g.Expect(constraints[2].Describe(core.FormatValue)).To(Equal(`"a"`))
}
