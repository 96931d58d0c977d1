package core

import (
	"strings"

	"github.com/google/uuid"
)

// Mode is the matching policy of a Recorder.
type Mode int

// Recorder modes.
const (
	Unordered Mode = iota
	Ordered
)

func (m Mode) String() string {
	if m == Ordered {
		return "Ordered"
	}

	return "Unordered"
}

// Recorder owns a sequence of expectations and child recorders and decides
// which of them may answer a call.
//
// Unordered recorders hand a call to the first child, in recording order, that
// accepts it and is not exhausted. Ordered recorders only ever try the child at
// their cursor. A Recorder exclusively owns its children.
type Recorder struct {
	mode     Mode
	children []node
	cursor   int
	// active is an ordered child that has started consuming calls and must be
	// satisfied before calls are handed elsewhere. Unordered recorders only.
	active *Recorder
}

func newRecorder(mode Mode) *Recorder {
	return &Recorder{mode: mode}
}

// Mode returns the recorder's matching policy.
func (r *Recorder) Mode() Mode { return r.mode }

// record appends an expectation or a child recorder.
func (r *Recorder) record(child node) {
	r.children = append(r.children, child)
}

// unmet returns one diagnosis line per expectation of target whose minimum
// call count has not been met, in tree order. It does not change any state.
func (r *Recorder) unmet(target uuid.UUID) []string {
	var lines []string

	r.walk(func(e *Expectation) {
		if e.target == target && !e.satisfied() {
			lines = append(lines, e.unmetLine())
		}
	})

	return lines
}

// node is either an *Expectation or a *Recorder. A nil expectation with a nil
// mismatch from match means nothing in the subtree wants the call; a mismatch
// names the ordered slot that had to be honoured first.
type node interface {
	match(inv Invocation) (*Expectation, *mismatch, error)
	satisfied() bool
	exhausted() bool
	pending() string
	walk(visit func(*Expectation))
}

// mismatch describes the call an ordered recorder was waiting for.
type mismatch struct {
	expected string
}

func (r *Recorder) exhausted() bool {
	for _, child := range r.children {
		if !child.exhausted() {
			return false
		}
	}

	return true
}

func (r *Recorder) match(inv Invocation) (*Expectation, *mismatch, error) {
	if r.mode == Ordered {
		return r.matchOrdered(inv)
	}

	return r.matchUnordered(inv)
}

// matchOrdered tries the slot at the cursor. A slot that is already satisfied
// may be stepped over; any other refusal is a mismatch. The cursor only moves
// when a call is claimed.
func (r *Recorder) matchOrdered(inv Invocation) (*Expectation, *mismatch, error) {
	for index := r.cursor; index < len(r.children); index++ {
		slot := r.children[index]

		exp, miss, err := slot.match(inv)
		if err != nil {
			return nil, nil, err
		}

		if exp != nil {
			r.cursor = index
			if slot.exhausted() {
				r.cursor++
			}

			return exp, nil, nil
		}

		if !slot.satisfied() {
			if miss == nil {
				miss = &mismatch{expected: "Ordered: { " + slot.pending() + " }"}
			}

			return nil, miss, nil
		}
	}

	return nil, nil, nil
}

func (r *Recorder) matchUnordered(inv Invocation) (*Expectation, *mismatch, error) {
	if r.active != nil {
		exp, miss, err := r.active.match(inv)
		if err != nil || exp != nil {
			if exp != nil && r.active.exhausted() {
				r.active = nil
			}

			return exp, miss, err
		}

		if !r.active.satisfied() {
			if miss == nil {
				miss = &mismatch{expected: r.active.pending()}
			}

			return nil, miss, nil
		}

		r.active = nil
	}

	var firstMiss *mismatch

	for _, child := range r.children {
		exp, miss, err := child.match(inv)
		if err != nil {
			return nil, nil, err
		}

		if exp != nil {
			if nested, ok := child.(*Recorder); ok && nested.mode == Ordered && !nested.exhausted() {
				r.active = nested
			}

			return exp, nil, nil
		}

		if firstMiss == nil {
			firstMiss = miss
		}
	}

	return nil, firstMiss, nil
}

func (r *Recorder) pending() string {
	if r.mode == Ordered {
		for _, child := range r.children[r.cursor:] {
			if !child.satisfied() {
				return "Ordered: { " + child.pending() + " }"
			}
		}

		return "Ordered: { }"
	}

	var parts []string

	for _, child := range r.children {
		if !child.satisfied() {
			parts = append(parts, child.pending())
		}
	}

	return "Unordered: { " + strings.Join(parts, " ") + " }"
}

// prune detaches every expectation of target from the subtree. Cursors keep
// pointing at the same surviving slot.
func (r *Recorder) prune(target uuid.UUID) {
	kept := make([]node, 0, len(r.children))
	cursor := r.cursor

	for index, child := range r.children {
		if exp, ok := child.(*Expectation); ok && exp.target == target {
			exp.detached = true

			if index < r.cursor {
				cursor--
			}

			continue
		}

		if nested, ok := child.(*Recorder); ok {
			nested.prune(target)
		}

		kept = append(kept, child)
	}

	r.children = kept
	r.cursor = cursor
}

func (r *Recorder) satisfied() bool {
	for _, child := range r.children {
		if !child.satisfied() {
			return false
		}
	}

	return true
}

func (r *Recorder) walk(visit func(*Expectation)) {
	for _, child := range r.children {
		child.walk(visit)
	}
}
