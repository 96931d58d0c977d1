package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every protocol misuse wraps ErrInvalidOperation; every
// mismatch between expectations and reality is a *ViolationError, which
// matches ErrExpectationViolation under errors.Is.
var (
	ErrInvalidOperation     = errors.New("invalid operation")
	ErrExpectationViolation = errors.New("expectation violation")
	ErrScopeOpen            = fmt.Errorf(
		"%w: cannot start replaying while an Ordered or Unordered scope is still open",
		ErrInvalidOperation,
	)
	ErrNotMock = fmt.Errorf(
		"%w: the object is not a mock object that belongs to this repository",
		ErrInvalidOperation,
	)
)

// ViolationError reports that the calls a mock received diverged from what was
// recorded. Ordered mismatches fill Expected and Actual; count mismatches fill
// Lines, one per offending expectation, in recorder tree order.
type ViolationError struct {
	Expected string
	Actual   string
	Lines    []string
}

func (e *ViolationError) Error() string {
	if len(e.Lines) > 0 {
		return strings.Join(e.Lines, "\n")
	}

	return fmt.Sprintf("unordered method call! expected: '%s', actual: '%s'", e.Expected, e.Actual)
}

// Unwrap lets errors.Is(err, ErrExpectationViolation) succeed.
func (e *ViolationError) Unwrap() error {
	return ErrExpectationViolation
}

// invalidOperation builds an error wrapping ErrInvalidOperation.
func invalidOperation(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidOperation}, args...)...)
}
