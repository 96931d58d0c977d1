// Package rhinomocks records the calls a test expects its collaborators to
// receive, replays the real calls against those expectations and verifies that
// every expectation was met.
//
// A mock object is a hand-written or generated interceptor that routes each
// call on it to a MockState:
//
//	repo := rhinomocks.New()
//	store := NewStoreMock(repo) // interceptor calling repo.NewMock("Store")
//
//	repo.Ordered(func() {
//	    store.Expect.Open("orders").Return(nil)
//	    store.Expect.Close().Once()
//	})
//	_ = repo.ReplayAll()
//
//	codeUnderTest(store)
//
//	repo.Finish(t)
//
// This is the public API entry point. Implementation lives in internal/core.
package rhinomocks

import (
	"log/slog"

	"github.com/waf/rhino-mocks/internal/core"
)

// Constraint is an argument Matcher that can describe itself in diagnosis text.
type Constraint = core.Constraint

// Expectation is one recorded call template, configured through its fluent methods.
type Expectation = core.Expectation

// Fixture runs the record, replay, verify cycle around two functions.
type Fixture = core.Fixture

// Formatter renders one argument value for diagnosis text.
type Formatter = core.Formatter

// Invocation is one concrete call observed on a mock.
type Invocation = core.Invocation

// Matcher defines the interface for flexible value matching.
// Compatible with gomega.GomegaMatcher via duck typing.
type Matcher = core.Matcher

// Method is the identity of a mocked member.
type Method = core.Method

// MethodKind distinguishes plain methods from property accessors.
type MethodKind = core.MethodKind

// Method kinds.
const (
	MethodCall  = core.MethodCall
	PropertyGet = core.PropertyGet
	PropertySet = core.PropertySet
)

// MockState is the engine side of one mock object.
type MockState = core.MockState

// Option configures a Repository.
type Option = core.Option

// Phase is where a mock is in its record, replay, verify lifecycle.
type Phase = core.Phase

// Mock phases.
const (
	Recording = core.Recording
	Replaying = core.Replaying
	Verified  = core.Verified
)

// Range bounds how many times an Expectation may and must be matched.
type Range = core.Range

// Unbounded is the Max of a Range with no upper limit.
const Unbounded = core.Unbounded

// Repository coordinates a set of mocks.
type Repository = core.Repository

// Result is what a call on a mock produced.
type Result = core.Result

// TestReporter is the minimal interface rhinomocks needs from test frameworks.
type TestReporter = core.TestReporter

// ViolationError reports calls that diverged from the recorded expectations.
type ViolationError = core.ViolationError

// Errors returned by the engine.
var (
	ErrInvalidOperation     = core.ErrInvalidOperation
	ErrExpectationViolation = core.ErrExpectationViolation
	ErrScopeOpen            = core.ErrScopeOpen
	ErrNotMock              = core.ErrNotMock
)

// Any returns a constraint that accepts any value.
func Any() Constraint {
	return core.Any()
}

// AnyTimes allows any number of calls, including none.
func AnyTimes() Range { return core.AnyTimes() }

// AtLeastOnce requires one call and allows more.
func AtLeastOnce() Range { return core.AtLeastOnce() }

// Describe renders an invocation the way diagnosis messages show it.
func Describe(inv Invocation, format Formatter) string {
	return core.Describe(inv, format)
}

// Equal returns a constraint that accepts values deeply equal to expected.
func Equal(expected any) Constraint {
	return core.Equal(expected)
}

// Expecting starts a fixture whose expectations may be met in any order.
func Expecting(repo *Repository, record func()) *Fixture {
	return core.Expecting(repo, record)
}

// ExpectingInSameOrder starts a fixture whose expectations must be met in order.
func ExpectingInSameOrder(repo *Repository, record func()) *Fixture {
	return core.ExpectingInSameOrder(repo, record)
}

// ForTest returns the Repository for the given test, creating one if needed.
// Mocks still replaying when the test completes are verified.
func ForTest(t TestReporter, opts ...Option) *Repository {
	return core.ForTest(t, opts...)
}

// FormatValue is the default Formatter.
func FormatValue(value any) string {
	return core.FormatValue(value)
}

// Never forbids the call.
func Never() Range { return core.Never() }

// New creates an empty repository.
func New(opts ...Option) *Repository {
	return core.New(opts...)
}

// NewInvocation creates an Invocation holding its own copy of args.
func NewInvocation(mock *MockState, method Method, args ...any) Invocation {
	return core.NewInvocation(mock.Target(), method, args...)
}

// Once requires exactly one call.
func Once() Range { return core.Once() }

// ResultAs returns the value at index as a T, or T's zero value.
func ResultAs[T any](result Result, index int) T {
	return core.ResultAs[T](result, index)
}

// Satisfies returns a constraint that uses a predicate function to check for a match.
func Satisfies[T any](predicate func(T) error) Constraint {
	return core.Satisfies(predicate)
}

// Times requires exactly n calls.
func Times(n int) Range { return core.Times(n) }

// TimesBetween requires between lo and hi calls.
func TimesBetween(lo, hi int) Range { return core.TimesBetween(lo, hi) }

// Twice requires exactly two calls.
func Twice() Range { return core.Twice() }

// With runs body and then verifies every mock of repo.
func With(repo *Repository, body func()) error {
	return core.With(repo, body)
}

// WithFormatter sets how argument values are rendered in diagnosis text.
func WithFormatter(format Formatter) Option {
	return core.WithFormatter(format)
}

// WithLogger sets the logger the repository writes debug records to.
func WithLogger(logger *slog.Logger) Option {
	return core.WithLogger(logger)
}
