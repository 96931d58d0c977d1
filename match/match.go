// Package match provides argument matchers for recorded expectations and a
// gomega matcher for verifying mocks. Its matchers sit alongside gomega's:
//
//	import (
//	    . "github.com/onsi/gomega"
//	    "github.com/waf/rhino-mocks/match"
//	)
//
//	store.Expect.Put(HavePrefix("order-"), match.BeAny).Return(nil)
//	Expect(repo).To(match.ExecuteAsPlanned())
package match

import (
	"errors"
	"fmt"

	"github.com/onsi/gomega/types"

	"github.com/waf/rhino-mocks/internal/core"
)

// Matcher defines the interface for flexible value matching.
// Compatible with gomega.GomegaMatcher via duck typing - any type
// implementing Match and FailureMessage will work.
type Matcher = core.Matcher

// BeAny is a matcher that matches any value.
// Useful when you don't care about a particular argument.
//
//nolint:gochecknoglobals // Intentional exported constant-like value
var BeAny Matcher = core.Any()

// BeEqual returns a matcher that accepts values deeply equal to expected.
// Unlike gomega's Equal, typed and untyped nils are equal and functions match
// by name, and the expected value is rendered plainly in diagnosis text.
func BeEqual(expected any) Matcher {
	return core.Equal(expected)
}

// ExecuteAsPlanned returns a gomega matcher that verifies a *rhinomocks.Repository
// (every mock) or a *rhinomocks.MockState (that mock only). It succeeds when
// verification reports nothing.
func ExecuteAsPlanned() types.GomegaMatcher {
	return &plannedMatcher{}
}

// Satisfy returns a matcher that uses a predicate function to check for a match.
// The predicate should return nil if the value matches, or an error describing
// the mismatch if it does not.
//
// Example:
//
//	calc.Expect.Add(Satisfy(func(x int) error {
//	    if x < 0 { return fmt.Errorf("expected positive, got %d", x) }
//	    return nil
//	}), BeAny).Return(42)
func Satisfy[T any](predicate func(T) error) Matcher {
	return core.Satisfies(predicate)
}

// unexported variables.
var (
	errNotVerifiable = errors.New("ExecuteAsPlanned expects a *Repository or a *MockState")
)

type plannedMatcher struct {
	verifyErr error
}

func (m *plannedMatcher) FailureMessage(any) string {
	return fmt.Sprintf("Expected mocks to execute as planned\n\t%v", m.verifyErr)
}

func (m *plannedMatcher) Match(actual any) (bool, error) {
	switch verifiable := actual.(type) {
	case *core.Repository:
		m.verifyErr = verifiable.VerifyAll()
	case *core.MockState:
		m.verifyErr = verifiable.Repository().Verify(verifiable)
	default:
		return false, fmt.Errorf("%w, got %T", errNotVerifiable, actual)
	}

	// Protocol misuse is the caller's bug, not a failed plan.
	if m.verifyErr != nil && !errors.Is(m.verifyErr, core.ErrExpectationViolation) {
		return false, m.verifyErr
	}

	return m.verifyErr == nil, nil
}

func (m *plannedMatcher) NegatedFailureMessage(any) string {
	return "Expected mocks not to execute as planned, but every expectation was met"
}
