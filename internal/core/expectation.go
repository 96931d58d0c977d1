package core

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

// Expectation is one recorded call template: which member, which arguments,
// how many times, and what to answer. It is configured through the handle
// returned when it was recorded, and frozen once its mock starts replaying.
//
// Configuration methods panic with an ErrInvalidOperation error when the
// expectation is frozen or was discarded by BackToRecord.
type Expectation struct {
	state  *MockState
	target uuid.UUID
	method Method

	constraints  []Constraint
	arity        int
	anyArgs      bool
	callback     reflect.Value
	callbackName string

	repeat  Range
	outcome outcome
	message string
	count   int
	stored  any

	detached bool
}

func newExpectation(state *MockState, method Method, args []any) *Expectation {
	return &Expectation{
		state:       state,
		target:      state.target,
		method:      method,
		constraints: ConstraintsFor(args...),
		arity:       len(args),
		repeat:      Once(),
	}
}

// AnyTimes allows any number of calls, including none.
func (e *Expectation) AnyTimes() *Expectation { return e.Repeat(AnyTimes()) }

// AtLeastOnce requires one call and allows more.
func (e *Expectation) AtLeastOnce() *Expectation { return e.Repeat(AtLeastOnce()) }

// Count returns how many calls this expectation has matched.
func (e *Expectation) Count() int { return e.count }

// Do makes matched calls run fn with the actual arguments. fn's results become
// the call's return values and a panic inside fn becomes the call's panic.
func (e *Expectation) Do(fn any) *Expectation {
	e.mustBeMutable()
	panicIfNotFunc(fn)

	e.outcome = outcome{kind: outcomeCallback, callback: reflect.ValueOf(fn)}

	return e
}

// IgnoreArguments makes the expectation accept any arguments.
func (e *Expectation) IgnoreArguments() *Expectation {
	e.mustBeMutable()

	e.anyArgs = true
	e.constraints = nil
	e.callback = reflect.Value{}

	return e
}

// MatchWith replaces the argument constraints with a callback over all the
// arguments. fn must return a bool and accept the call's arguments.
func (e *Expectation) MatchWith(fn any) *Expectation {
	e.mustBeMutable()
	panicIfNotFunc(fn)

	fnType := reflect.TypeOf(fn)
	if fnType.NumOut() != 1 || fnType.Out(0).Kind() != reflect.Bool {
		panic(invalidOperation("a match callback must return a single bool, got %s", fnType))
	}

	e.anyArgs = false
	e.constraints = nil
	e.callback = reflect.ValueOf(fn)
	e.callbackName = shortFuncName(fn)

	return e
}

// Message attaches text that is reported alongside any violation of this expectation.
func (e *Expectation) Message(text string) *Expectation {
	e.mustBeMutable()

	e.message = text

	return e
}

// Method returns the member this expectation is for.
func (e *Expectation) Method() Method { return e.method }

// Never forbids the call.
func (e *Expectation) Never() *Expectation { return e.Repeat(Never()) }

// Once requires exactly one call.
func (e *Expectation) Once() *Expectation { return e.Repeat(Once()) }

// Panic makes matched calls panic with value. The same value is used every time.
func (e *Expectation) Panic(value any) *Expectation {
	e.mustBeMutable()

	e.outcome = outcome{kind: outcomePanic, panicValue: value}

	return e
}

// PropertyBehavior turns a property accessor expectation into a plain backing
// field: setters store, getters return the last stored value, and no call count
// is ever checked.
func (e *Expectation) PropertyBehavior() *Expectation {
	e.mustBeMutable()

	if !e.method.IsProperty() {
		panic(invalidOperation("property behavior requires a property accessor, but %s is a method", e.method))
	}

	e.outcome = outcome{kind: outcomeProperty}
	e.stored = nil

	return e
}

// Range returns the repeat range.
func (e *Expectation) Range() Range { return e.repeat }

// Repeat sets the repeat range.
func (e *Expectation) Repeat(r Range) *Expectation {
	e.mustBeMutable()

	e.repeat = r

	return e
}

// Return makes matched calls return values.
func (e *Expectation) Return(values ...any) *Expectation {
	e.mustBeMutable()

	e.outcome = outcome{kind: outcomeReturn, values: values}

	return e
}

// Satisfied reports whether the minimum call count has been met.
func (e *Expectation) Satisfied() bool { return e.satisfied() }

// String renders the expectation the way diagnosis messages show it.
func (e *Expectation) String() string {
	var parts []string

	switch {
	case e.callback.IsValid():
		parts = []string{"callback method: " + e.callbackName}
	case e.anyArgs:
		parts = make([]string, e.arity)
		for i := range parts {
			parts[i] = "any"
		}
	default:
		format := e.state.repo.format
		parts = make([]string, len(e.constraints))

		for i, constraint := range e.constraints {
			parts[i] = constraint.Describe(format)
		}
	}

	return describeCall(e.method, parts)
}

// Times requires exactly n calls.
func (e *Expectation) Times(n int) *Expectation { return e.Repeat(Times(n)) }

// TimesBetween requires between lo and hi calls.
func (e *Expectation) TimesBetween(lo, hi int) *Expectation { return e.Repeat(TimesBetween(lo, hi)) }

// Twice requires exactly two calls.
func (e *Expectation) Twice() *Expectation { return e.Repeat(Twice()) }

// With replaces the argument constraints. Values that are not Matchers are
// compared for equality.
func (e *Expectation) With(constraints ...any) *Expectation {
	e.mustBeMutable()

	e.anyArgs = false
	e.callback = reflect.Value{}
	e.constraints = ConstraintsFor(constraints...)
	e.arity = len(constraints)

	return e
}

// accepts reports whether the invocation is one this expectation describes,
// ignoring the call count.
func (e *Expectation) accepts(inv Invocation) bool {
	if inv.Target != e.target {
		return false
	}

	if e.isProperty() {
		return e.method.sameProperty(inv.Method)
	}

	if inv.Method != e.method {
		return false
	}

	switch {
	case e.anyArgs:
		return true
	case e.callback.IsValid():
		return e.callbackAccepts(inv.Args)
	default:
		return constraintsAccept(e.constraints, inv.Args)
	}
}

// acceptsQuietly is accepts without running match callbacks, for diagnosis.
func (e *Expectation) acceptsQuietly(inv Invocation) bool {
	if e.callback.IsValid() {
		return false
	}

	return e.accepts(inv)
}

func (e *Expectation) callbackAccepts(args []any) bool {
	in, err := bindArgs(e.callback.Type(), args)
	if err != nil {
		return false
	}

	return e.callback.Call(in)[0].Bool()
}

// claim consumes one repeat slot for inv. It fails, leaving the count alone,
// when a Do callback cannot take the invocation's arguments.
func (e *Expectation) claim(inv Invocation) error {
	if e.outcome.kind == outcomeCallback {
		if _, err := bindArgs(e.outcome.callback.Type(), inv.Args); err != nil {
			return callbackBindError(err)
		}
	}

	if !e.isProperty() {
		e.count++
	}

	return nil
}

func (e *Expectation) exhausted() bool {
	return !e.isProperty() && e.repeat.Exhausted(e.count)
}

func (e *Expectation) isProperty() bool {
	return e.outcome.kind == outcomeProperty
}

// match is the node form of accepts + claim.
func (e *Expectation) match(inv Invocation) (*Expectation, *mismatch, error) {
	if e.exhausted() || !e.accepts(inv) {
		return nil, nil, nil
	}

	if err := e.claim(inv); err != nil {
		return nil, nil, err
	}

	return e, nil, nil
}

func (e *Expectation) mustBeMutable() {
	if e.detached {
		panic(invalidOperation("expectation %s was discarded by BackToRecord", e))
	}

	if e.state.phase != Recording {
		panic(invalidOperation("expectation %s cannot be changed once its mock is %s", e, e.state.phase))
	}
}

func (e *Expectation) pending() string { return e.String() }

// passedLine renders the diagnosis for an expectation that could still take
// the call but that an ordered scope has already moved past.
func (e *Expectation) passedLine() string {
	return fmt.Sprintf("%s Expected #%s, Actual #%d. The ordering has already moved past it.",
		e.String(), e.repeat, e.count)
}

// resolve realizes the outcome of a call this expectation has claimed.
func (e *Expectation) resolve(inv Invocation) (Result, error) {
	if e.isProperty() {
		if inv.Method.Kind == PropertySet {
			if len(inv.Args) > 0 {
				e.stored = inv.Args[0]
			}

			return Result{Expectation: e}, nil
		}

		return Result{Values: []any{e.stored}, Expectation: e}, nil
	}

	result, err := e.outcome.resolve(inv.Args)
	result.Expectation = e

	return result, err
}

func (e *Expectation) satisfied() bool {
	return e.isProperty() || e.repeat.Satisfied(e.count)
}

// tooManyLine renders the diagnosis for a call beyond the upper bound.
func (e *Expectation) tooManyLine(call string) string {
	line := countLine(call, e.repeat.Max, e.count+1)
	if e.message != "" {
		line += "\nMessage: " + e.message
	}

	return line
}

// unmetLine renders the diagnosis for an expectation below its lower bound.
func (e *Expectation) unmetLine() string {
	line := countLine(e.String(), e.repeat.Min, e.count)
	if e.message != "" {
		line = "Message: " + e.message + "\n" + line
	}

	return line
}

func (e *Expectation) walk(visit func(*Expectation)) { visit(e) }

// panicIfNotFunc panics if the given object is not a function.
func panicIfNotFunc(candidate any) {
	kind := reflect.ValueOf(candidate).Kind()
	if kind != reflect.Func {
		panic(invalidOperation("must pass a function. received a %s instead", kind))
	}
}

