package core

import (
	"sync"
)

// ForTest returns the Repository for the given test, creating one if needed.
// Multiple calls with the same TestReporter return the same Repository, so
// helpers that build mocks for one test share its scope stack.
//
// If the TestReporter supports Cleanup (like *testing.T), the mocks that are
// still replaying when the test completes are verified, and the Repository is
// removed from the registry. Options only apply when the Repository is created.
func ForTest(t TestReporter, opts ...Option) *Repository {
	registryMu.Lock()
	defer registryMu.Unlock()

	if repo, ok := registry[t]; ok {
		return repo
	}

	repo := New(opts...)
	registry[t] = repo

	if cr, ok := t.(cleanupRegistrar); ok {
		cr.Cleanup(func() {
			registryMu.Lock()
			delete(registry, t)
			registryMu.Unlock()

			repo.finishReplaying(t)
		})
	}

	return repo
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Package-level registry is intentional for per-test repositories
	registry = make(map[TestReporter]*Repository)
	//nolint:gochecknoglobals // Mutex for registry
	registryMu sync.Mutex
)

// cleanupRegistrar is the interface needed for registering cleanup functions.
// This is satisfied by *testing.T and *testing.B.
type cleanupRegistrar interface {
	Cleanup(cleanupFunc func())
}

// finishReplaying verifies the mocks left replaying and fails the test on the
// first violation. Mocks still recording were never used and are skipped.
func (r *Repository) finishReplaying(t TestReporter) {
	t.Helper()

	for _, mock := range r.mocks {
		if mock.phase != Replaying {
			continue
		}

		if err := mock.verify(); err != nil {
			t.Fatalf("%v", err)

			return
		}
	}
}
