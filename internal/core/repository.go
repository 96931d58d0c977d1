// Package core implements the record, replay and verify engine.
//
// A Repository owns the mocks of one test and the tree of recorders their
// expectations are recorded into. Nothing in this package is safe for
// concurrent use: a repository and its mocks belong to the goroutine running
// the test, and calls that race on a mock would race on its recorder's cursor
// and counts.
package core

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/google/uuid"
)

// TestReporter is the subset of testing.TB the repository reports through.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// Option configures a Repository.
type Option func(*Repository)

// Repository coordinates a set of mocks. It holds the scope stack that decides
// where expectations are recorded and moves mocks between phases together.
type Repository struct {
	logger *slog.Logger
	format Formatter
	root   *Recorder
	scopes []*Recorder
	mocks  []*MockState
}

// New creates an empty repository.
func New(opts ...Option) *Repository {
	repo := &Repository{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		format: FormatValue,
		root:   newRecorder(Unordered),
	}

	for _, opt := range opts {
		opt(repo)
	}

	return repo
}

// WithFormatter sets how argument values are rendered in diagnosis text.
func WithFormatter(format Formatter) Option {
	return func(r *Repository) {
		if format != nil {
			r.format = format
		}
	}
}

// WithLogger sets the logger phase changes, recordings and matches are
// logged to at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// BackToRecord discards every expectation of the mock, along with its call
// counts, and returns it to recording.
func (r *Repository) BackToRecord(mock *MockState) error {
	if err := r.owns(mock); err != nil {
		return err
	}

	return mock.backToRecord()
}

// BackToRecordAll returns every mock that is not verified to recording.
func (r *Repository) BackToRecordAll() error {
	for _, mock := range r.mocks {
		if mock.phase == Verified {
			continue
		}

		if err := mock.backToRecord(); err != nil {
			return err
		}
	}

	return nil
}

// Finish verifies every mock and fails the test if any expectation was
// violated.
func (r *Repository) Finish(t TestReporter) {
	t.Helper()

	if err := r.VerifyAll(); err != nil {
		t.Fatalf("%v", err)
	}
}

// Mocks returns the mocks created by the repository, in creation order.
func (r *Repository) Mocks() []*MockState {
	return slices.Clone(r.mocks)
}

// NewMock creates the state for a new mock object. Interceptors keep the
// returned state and route every call on the mock through it.
func (r *Repository) NewMock(name string) *MockState {
	mock := &MockState{
		repo:   r,
		target: uuid.New(),
		name:   name,
	}

	r.mocks = append(r.mocks, mock)
	r.logger.Debug("created mock", "mock", name, "target", mock.target)

	return mock
}

// Ordered runs record with an ordered scope open: the expectations recorded
// inside must then be met in the order they were recorded. Scopes nest.
func (r *Repository) Ordered(record func()) {
	r.scope(Ordered, record)
}

// Replay moves the given mocks to replaying. Either every mock moves or none
// does.
func (r *Repository) Replay(mocks ...*MockState) error {
	if len(r.scopes) > 0 {
		return ErrScopeOpen
	}

	for _, mock := range mocks {
		if err := r.owns(mock); err != nil {
			return err
		}

		if mock.phase != Recording {
			return mock.startReplay()
		}
	}

	for _, mock := range mocks {
		if err := mock.startReplay(); err != nil {
			return err
		}
	}

	return nil
}

// ReplayAll moves every recording mock to replaying.
func (r *Repository) ReplayAll() error {
	if len(r.scopes) > 0 {
		return ErrScopeOpen
	}

	for _, mock := range r.mocks {
		if mock.phase != Recording {
			continue
		}

		if err := mock.startReplay(); err != nil {
			return err
		}
	}

	return nil
}

// String renders the mocks and their phases, for debugging.
func (r *Repository) String() string {
	text := fmt.Sprintf("repository with %d mocks", len(r.mocks))
	for _, mock := range r.mocks {
		text += fmt.Sprintf("\n  %s: %s", mock.name, mock.phase)
	}

	return text
}

// Unordered runs record with an unordered scope open. Inside an ordered scope
// it groups expectations that may be met in any order as a single step.
func (r *Repository) Unordered(record func()) {
	r.scope(Unordered, record)
}

// Verify checks that the mock received every call it expected. A violation
// already raised while replaying is returned again.
func (r *Repository) Verify(mock *MockState) error {
	if err := r.owns(mock); err != nil {
		return err
	}

	return mock.verify()
}

// VerifyAll verifies every mock that is not verified yet and reports all of
// their violations together. Calling it when every mock is already verified
// is an invalid operation.
func (r *Repository) VerifyAll() error {
	replaying := false

	for _, mock := range r.mocks {
		switch mock.phase {
		case Recording:
			return mock.verify()
		case Replaying:
			replaying = true
		case Verified:
		}
	}

	if !replaying && len(r.mocks) > 0 {
		return invalidOperation("every mock object of the repository was already verified")
	}

	var violations []*ViolationError

	for _, mock := range r.mocks {
		if mock.phase == Verified {
			continue
		}

		err := mock.verify()
		if err == nil {
			continue
		}

		var violation *ViolationError
		if !errors.As(err, &violation) {
			return err
		}

		violations = append(violations, violation)
	}

	switch len(violations) {
	case 0:
		return nil
	case 1:
		return violations[0]
	}

	merged := &ViolationError{}

	for _, violation := range violations {
		if len(violation.Lines) == 0 {
			merged.Lines = append(merged.Lines, violation.Error())
		} else {
			merged.Lines = append(merged.Lines, violation.Lines...)
		}
	}

	return merged
}

// current is the recorder new expectations go into.
func (r *Repository) current() *Recorder {
	if len(r.scopes) == 0 {
		return r.root
	}

	return r.scopes[len(r.scopes)-1]
}

func (r *Repository) owns(mock *MockState) error {
	if mock == nil || mock.repo != r {
		return ErrNotMock
	}

	return nil
}

func (r *Repository) scope(mode Mode, record func()) {
	recorder := newRecorder(mode)
	r.current().record(recorder)
	r.scopes = append(r.scopes, recorder)

	r.logger.Debug("opened scope", "mode", mode.String(), "depth", len(r.scopes))

	defer func() {
		r.scopes = r.scopes[:len(r.scopes)-1]
		r.logger.Debug("closed scope", "mode", mode.String(), "depth", len(r.scopes))
	}()

	record()
}
