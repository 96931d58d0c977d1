package core

import (
	"strings"

	"github.com/google/uuid"
)

// Phase is where a mock is in its record, replay, verify lifecycle.
type Phase int

// Mock phases. A mock only moves forward, except through BackToRecord.
const (
	Recording Phase = iota
	Replaying
	Verified
)

func (p Phase) String() string {
	switch p {
	case Recording:
		return "recording"
	case Replaying:
		return "replaying"
	case Verified:
		return "verified"
	default:
		return "unknown"
	}
}

// MockState is the engine side of one mock object. Interceptors hand every call
// made on the mock to Handle and realize the Result it returns.
type MockState struct {
	repo   *Repository
	target uuid.UUID
	name   string
	phase  Phase
	// violation is the first violation raised while replaying. Verify reports
	// it again in case the code under test swallowed the panic.
	violation *ViolationError
}

// Diagnose renders the unmet expectations of the mock, one per line, without
// changing any state.
func (m *MockState) Diagnose() string {
	return strings.Join(m.repo.root.unmet(m.target), "\n")
}

// Expect is Record for interceptors whose recording surface has no error
// return. It panics on error.
func (m *MockState) Expect(method Method, args ...any) *Expectation {
	exp, err := m.Record(method, args...)
	if err != nil {
		panic(err)
	}

	return exp
}

// Handle processes one call made on the mock.
//
// While recording, the call is recorded as a new expectation, returned in
// Result.Expectation. While replaying, the call is matched and the outcome of
// the matched expectation is returned. A call nothing accepts fails with a
// *ViolationError.
func (m *MockState) Handle(method Method, args ...any) (Result, error) {
	switch m.phase {
	case Recording:
		exp, err := m.Record(method, args...)

		return Result{Expectation: exp}, err
	case Replaying:
		return m.replay(NewInvocation(m.target, method, args...))
	case Verified:
	}

	return Result{}, invalidOperation("mock object {%s} was already verified, so %s cannot be called", m.name, method)
}

// Name returns the name the mock was created with.
func (m *MockState) Name() string { return m.name }

// Phase returns the mock's current phase.
func (m *MockState) Phase() Phase { return m.phase }

// Record records an expectation for method in the repository's innermost open
// scope. Plain values in args are matched by equality and Matchers by matching.
func (m *MockState) Record(method Method, args ...any) (*Expectation, error) {
	if m.phase != Recording {
		return nil, invalidOperation(
			"this action is invalid when the mock object {%s} is in %s state", m.name, m.phase,
		)
	}

	exp := newExpectation(m, method, args)
	m.repo.current().record(exp)
	m.repo.logger.Debug("recorded expectation", "mock", m.name, "expectation", exp.String())

	return exp, nil
}

// Repository returns the repository the mock belongs to.
func (m *MockState) Repository() *Repository { return m.repo }

// Target returns the identity of the mock.
func (m *MockState) Target() uuid.UUID { return m.target }

func (m *MockState) backToRecord() error {
	if m.phase == Verified {
		return invalidOperation("mock object {%s} was already verified and cannot go back to record", m.name)
	}

	m.repo.root.prune(m.target)
	m.phase = Recording
	m.violation = nil

	m.repo.logger.Debug("back to record", "mock", m.name)

	return nil
}

func (m *MockState) replay(inv Invocation) (Result, error) {
	exp, miss, err := m.repo.root.match(inv)
	if err != nil {
		return Result{}, err
	}

	if exp == nil {
		var violation *ViolationError
		if miss != nil {
			violation = &ViolationError{Expected: miss.expected, Actual: Describe(inv, m.repo.format)}
		} else {
			violation = m.unexpected(inv)
		}

		if m.violation == nil {
			m.violation = violation
		}

		m.repo.logger.Debug("expectation violation", "mock", m.name, "error", violation.Error())

		return Result{}, violation
	}

	m.repo.logger.Debug("matched call", "mock", m.name, "expectation", exp.String(), "count", exp.count)

	return exp.resolve(inv)
}

func (m *MockState) startReplay() error {
	if m.phase != Recording {
		return invalidOperation("mock object {%s} is %s and cannot start replaying", m.name, m.phase)
	}

	m.phase = Replaying
	m.repo.logger.Debug("replaying", "mock", m.name)

	return nil
}

// unexpected diagnoses a call that no expectation would take: either one
// expectation already took it as often as it may, or none describes it. The
// other unsatisfied expectations for the same member follow, then the ones
// that would take the call but sit behind an ordered cursor.
func (m *MockState) unexpected(inv Invocation) *ViolationError {
	call := Describe(inv, m.repo.format)

	var (
		full   *Expectation
		open   []*Expectation
		passed []*Expectation
	)

	m.repo.root.walk(func(e *Expectation) {
		if e.target != m.target || e.method != inv.Method {
			return
		}

		switch {
		case e.exhausted():
			if full == nil && e.acceptsQuietly(inv) {
				full = e
			}
		case !e.satisfied():
			open = append(open, e)
		case e.acceptsQuietly(inv):
			passed = append(passed, e)
		}
	})

	lines := make([]string, 0, len(open)+len(passed)+1)

	if full != nil {
		lines = append(lines, full.tooManyLine(call))
	} else {
		lines = append(lines, countLine(call, 0, 1))
	}

	for _, e := range open {
		lines = append(lines, e.unmetLine())
	}

	for _, e := range passed {
		lines = append(lines, e.passedLine())
	}

	return &ViolationError{Actual: call, Lines: lines}
}

func (m *MockState) verify() error {
	switch m.phase {
	case Recording:
		return invalidOperation("this action is invalid when the mock object {%s} is in record state", m.name)
	case Verified:
		return invalidOperation("mock object {%s} was already verified", m.name)
	case Replaying:
	}

	m.phase = Verified
	m.repo.logger.Debug("verified", "mock", m.name)

	if m.violation != nil {
		return m.violation
	}

	if lines := m.repo.root.unmet(m.target); len(lines) > 0 {
		return &ViolationError{Lines: lines}
	}

	return nil
}
