package core

import (
	"fmt"
	"reflect"
	"slices"
)

// Result is what a call on a mock produced. The interceptor realizes it:
// Raise panics when the outcome is a panic, otherwise Values are returned.
// During recording, Expectation is the handle of the expectation just recorded.
type Result struct {
	Values      []any
	Panicked    bool
	PanicValue  any
	Expectation *Expectation
}

// Raise panics with PanicValue if the outcome is a panic.
func (r Result) Raise() {
	if r.Panicked {
		panic(r.PanicValue)
	}
}

// ResultAs returns the value at index as a T, or T's zero value when the value is
// absent, nil, or of another type.
func ResultAs[T any](result Result, index int) T {
	var zero T

	if index < 0 || index >= len(result.Values) {
		return zero
	}

	if value, ok := result.Values[index].(T); ok {
		return value
	}

	return zero
}

type outcomeKind int

const (
	outcomeReturn outcomeKind = iota
	outcomePanic
	outcomeCallback
	outcomeProperty
)

// outcome is the single configured way an expectation answers a call.
type outcome struct {
	kind       outcomeKind
	values     []any
	panicValue any
	callback   reflect.Value
}

// bindArgs converts args into call arguments for a function of type fnType.
func bindArgs(fnType reflect.Type, args []any) ([]reflect.Value, error) {
	numIn := fnType.NumIn()
	variadic := fnType.IsVariadic()

	if (!variadic && len(args) != numIn) || (variadic && len(args) < numIn-1) {
		return nil, fmt.Errorf("function takes %d args, but %d were passed", numIn, len(args))
	}

	values := make([]reflect.Value, len(args))

	for index, arg := range args {
		var paramType reflect.Type
		if variadic && index >= numIn-1 {
			paramType = fnType.In(numIn - 1).Elem()
		} else {
			paramType = fnType.In(index)
		}

		if arg == nil {
			if !isNillableKind(paramType.Kind()) {
				return nil, fmt.Errorf("arg %d is nil, but the parameter is a %s", index, paramType)
			}

			values[index] = reflect.Zero(paramType)

			continue
		}

		value := reflect.ValueOf(arg)
		if !value.Type().AssignableTo(paramType) {
			return nil, fmt.Errorf("arg %d is a %s, but the parameter is a %s", index, value.Type(), paramType)
		}

		values[index] = value
	}

	return values, nil
}

// callbackBindError wraps a binding failure as a protocol misuse.
func callbackBindError(err error) error {
	return invalidOperation("cannot run a callback when arguments did not bind: %v", err)
}

// runCallback invokes fn with args. A panic inside fn becomes the call's panic.
func runCallback(fn reflect.Value, args []any) (result Result, err error) {
	in, err := bindArgs(fn.Type(), args)
	if err != nil {
		return Result{}, callbackBindError(err)
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			result = Result{Panicked: true, PanicValue: recovered}
		}
	}()

	out := fn.Call(in)

	values := make([]any, len(out))
	for i, value := range out {
		values[i] = value.Interface()
	}

	return Result{Values: values}, nil
}

// resolve realizes a non-property outcome.
func (o outcome) resolve(args []any) (Result, error) {
	switch o.kind {
	case outcomePanic:
		return Result{Panicked: true, PanicValue: o.panicValue}, nil
	case outcomeCallback:
		return runCallback(o.callback, args)
	case outcomeReturn, outcomeProperty:
	}

	return Result{Values: slices.Clone(o.values)}, nil
}
