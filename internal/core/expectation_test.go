package core_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/waf/rhino-mocks/internal/core"
)

func TestExpectationDefaults(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	repo := core.New()
	exp := repo.NewMock("IFoo").Expect(fooBar, 1, "a")

	g.Expect(exp.Range()).To(Equal(core.Once()))
	g.Expect(exp.Method()).To(Equal(fooBar))
	g.Expect(exp.Count()).To(BeZero())
	g.Expect(exp.Satisfied()).To(BeFalse())
	g.Expect(exp.String()).To(Equal(`IFoo.Bar(1, "a");`))
}

func TestExpectationRendering(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	repo := core.New()
	mock := repo.NewMock("IFoo")

	g.Expect(mock.Expect(fooBar, 1, 2).IgnoreArguments().String()).To(Equal("IFoo.Bar(any, any);"))
	g.Expect(mock.Expect(fooBar, 1).With(core.Any(), 3).String()).To(Equal("IFoo.Bar(anything, 3);"))
	g.Expect(mock.Expect(fooBar, 1).MatchWith(isOne).String()).
		To(Equal("IFoo.Bar(callback method: core_test.isOne);"))
	g.Expect(mock.Expect(fooSet, "x").String()).To(Equal(`IFoo.Name = "x";`))
}

func TestExpectationFrozenOnceReplaying(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	repo := core.New()
	exp := repo.NewMock("IFoo").Expect(fooBar)

	g.Expect(repo.ReplayAll()).To(Succeed())

	g.Expect(func() { exp.Return(1) }).To(PanicWith(MatchError(core.ErrInvalidOperation)))
	g.Expect(func() { exp.Twice() }).To(PanicWith(MatchError(ContainSubstring(
		"expectation IFoo.Bar(); cannot be changed once its mock is replaying",
	))))
}

func TestMatchWithRequiresBoolPredicate(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	exp := core.New().NewMock("IFoo").Expect(fooBar, 1)

	g.Expect(func() { exp.MatchWith(func(int) {}) }).
		To(PanicWith(MatchError(ContainSubstring("must return a single bool"))))
	g.Expect(func() { exp.MatchWith(42) }).To(PanicWith(MatchError(core.ErrInvalidOperation)))
	g.Expect(func() { exp.Do("not a func") }).To(PanicWith(MatchError(core.ErrInvalidOperation)))
}

func TestMatchWithDecidesAcceptance(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	repo := core.New()
	mock := repo.NewMock("IFoo")

	mock.Expect(fooBar, 0).MatchWith(isOne).Return("one")
	g.Expect(repo.ReplayAll()).To(Succeed())

	_, err := mock.Handle(fooBar, 2)
	g.Expect(err).To(MatchError(core.ErrExpectationViolation))

	result, err := mock.Handle(fooBar, 1)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(core.ResultAs[string](result, 0)).To(Equal("one"))
}

func TestMessageAccompaniesDiagnosis(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	repo := core.New()
	mock := repo.NewMock("IFoo")

	mock.Expect(fooBar).Message("bar must run")
	g.Expect(repo.ReplayAll()).To(Succeed())

	g.Expect(mock.Diagnose()).To(Equal("Message: bar must run\nIFoo.Bar(); Expected #1, Actual #0."))

	_, err := mock.Handle(fooBar)
	g.Expect(err).NotTo(HaveOccurred())

	_, err = mock.Handle(fooBar)
	g.Expect(err).To(MatchError("IFoo.Bar(); Expected #1, Actual #2.\nMessage: bar must run"))
}

func TestRepeatedExpectationsAreConsumedInOrder(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	repo := core.New()
	mock := repo.NewMock("IFoo")

	first := mock.Expect(fooBar).Return(1)
	second := mock.Expect(fooBar).Return(2).Twice()
	g.Expect(repo.ReplayAll()).To(Succeed())

	var answers []int

	for range 3 {
		result, err := mock.Handle(fooBar)
		g.Expect(err).NotTo(HaveOccurred())

		answers = append(answers, core.ResultAs[int](result, 0))
	}

	g.Expect(answers).To(Equal([]int{1, 2, 2}))
	g.Expect(first.Count()).To(Equal(1))
	g.Expect(second.Count()).To(Equal(2))
	g.Expect(second.Satisfied()).To(BeTrue())
}

func isOne(n int) bool { return n == 1 }
