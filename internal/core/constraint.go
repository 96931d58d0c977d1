package core

import (
	"errors"
	"fmt"
	"reflect"
)

// Matcher defines the interface for flexible value matching.
// Compatible with gomega.GomegaMatcher via duck typing - any type
// implementing Match and FailureMessage will work.
type Matcher interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
}

// Constraint is a Matcher that can also describe itself for diagnosis text.
// An Expectation holds one Constraint per argument position.
type Constraint interface {
	Matcher
	Describe(format Formatter) string
}

// Any returns a constraint that accepts any value.
func Any() Constraint {
	return anyConstraint{}
}

// Equal returns a constraint that accepts values deeply equal to expected.
// Typed and untyped nils are equal, and functions are equal when their names are.
func Equal(expected any) Constraint {
	return equalConstraint{expected: expected}
}

// Satisfies returns a constraint that uses a predicate function to check for a match.
// The predicate should return nil if the value matches, or an error describing
// the mismatch if it does not.
func Satisfies[T any](predicate func(T) error) Constraint {
	return &satisfiesConstraint[T]{predicate: predicate}
}

// ConstraintFor turns a recorded argument into a Constraint. Constraints are used
// as they are, any other Matcher (gomega matchers included) is wrapped, and every
// other value is compared with Equal.
func ConstraintFor(value any) Constraint {
	switch typed := value.(type) {
	case Constraint:
		return typed
	case Matcher:
		return matcherConstraint{matcher: typed}
	default:
		return Equal(value)
	}
}

// ConstraintsFor applies ConstraintFor to each value.
func ConstraintsFor(values ...any) []Constraint {
	constraints := make([]Constraint, len(values))
	for i, value := range values {
		constraints[i] = ConstraintFor(value)
	}

	return constraints
}

// unexported variables.
var (
	errTypeMismatch = errors.New("type mismatch")
)

type anyConstraint struct{}

func (anyConstraint) Describe(Formatter) string { return "anything" }

// FailureMessage returns an empty string since Any() always matches.
func (anyConstraint) FailureMessage(any) string { return "" }

// Match always returns true - matches any value.
func (anyConstraint) Match(any) (bool, error) { return true, nil }

type equalConstraint struct {
	expected any
}

func (c equalConstraint) Describe(format Formatter) string {
	return format(c.expected)
}

func (c equalConstraint) FailureMessage(actual any) string {
	return fmt.Sprintf("expected %#v, got %#v", c.expected, actual)
}

func (c equalConstraint) Match(actual any) (bool, error) {
	return deepEqual(actual, c.expected), nil
}

// matcherConstraint adapts a foreign Matcher, typically a gomega matcher.
type matcherConstraint struct {
	matcher Matcher
}

func (c matcherConstraint) Describe(Formatter) string {
	if stringer, ok := c.matcher.(fmt.Stringer); ok {
		return stringer.String()
	}

	return "matching " + reflect.Indirect(reflect.ValueOf(c.matcher)).Type().Name()
}

func (c matcherConstraint) FailureMessage(actual any) string {
	return c.matcher.FailureMessage(actual)
}

func (c matcherConstraint) Match(actual any) (bool, error) {
	return c.matcher.Match(actual)
}

type satisfiesConstraint[T any] struct {
	predicate func(T) error
	lastErr   error
}

func (c *satisfiesConstraint[T]) Describe(Formatter) string {
	return "satisfying " + shortFuncName(c.predicate)
}

func (c *satisfiesConstraint[T]) FailureMessage(actual any) string {
	if c.lastErr != nil {
		return fmt.Sprintf("value %v does not satisfy predicate: %v", actual, c.lastErr)
	}

	return fmt.Sprintf("value %v does not satisfy predicate", actual)
}

func (c *satisfiesConstraint[T]) Match(actual any) (bool, error) {
	val, ok := actual.(T)
	if !ok {
		return false, fmt.Errorf("%w: expected %T, got %T", errTypeMismatch, *new(T), actual)
	}

	c.lastErr = c.predicate(val)

	return c.lastErr == nil, nil
}

// constraintsAccept reports whether every constraint accepts the argument at
// its position. A matcher error counts as a rejection.
func constraintsAccept(constraints []Constraint, args []any) bool {
	if len(constraints) != len(args) {
		return false
	}

	for i, constraint := range constraints {
		ok, err := constraint.Match(args[i])
		if err != nil || !ok {
			return false
		}
	}

	return true
}
