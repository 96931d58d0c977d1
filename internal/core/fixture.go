package core

// Fixture runs the record, replay, verify cycle around two functions. Build
// one with Expecting or ExpectingInSameOrder.
type Fixture struct {
	repo    *Repository
	record  func()
	ordered bool
}

// Expecting starts a fixture whose expectations may be met in any order.
func Expecting(repo *Repository, record func()) *Fixture {
	return &Fixture{repo: repo, record: record}
}

// ExpectingInSameOrder starts a fixture whose expectations must be met in the
// order record declares them.
func ExpectingInSameOrder(repo *Repository, record func()) *Fixture {
	return &Fixture{repo: repo, record: record, ordered: true}
}

// With runs body, which records expectations, replays the mocks and
// exercises them, then verifies every mock. A panic in body propagates
// unchanged and nothing is verified.
func With(repo *Repository, body func()) error {
	body()

	return repo.VerifyAll()
}

// Verify records the expectations, replays every mock, runs replay and
// verifies every mock. A panic in replay propagates unchanged and nothing is
// verified.
func (f *Fixture) Verify(replay func()) error {
	if f.ordered {
		f.repo.Ordered(f.record)
	} else {
		f.record()
	}

	if err := f.repo.ReplayAll(); err != nil {
		return err
	}

	replay()

	return f.repo.VerifyAll()
}
