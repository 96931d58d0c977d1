package core

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// deepEqual checks whether two values are deeply equal.
// deepEqual calls functions equal if their names are equal.
// For everything else it depends on reflect.DeepEqual.
func deepEqual(actual, expected any) bool {
	// handle, for instance, nil == (*int)nil
	if isNil(actual) && isNil(expected) {
		return true
	}

	actualType := reflect.TypeOf(actual)
	expectedType := reflect.TypeOf(expected)

	// Special handling for functions. For our purposes, call funcs with the same names equal.
	if actualType != nil && expectedType != nil &&
		actualType.Kind() == reflect.Func && expectedType.Kind() == reflect.Func {
		return funcName(actual) == funcName(expected)
	}

	return reflect.DeepEqual(actual, expected)
}

// funcName gets the function's fully qualified name.
func funcName(function any) string {
	value := reflect.ValueOf(function)
	if value.Kind() != reflect.Func {
		panic(fmt.Sprintf("must pass a function. received a %s instead.", value.Kind()))
	}

	if value.IsNil() {
		return "nil"
	}

	// docs say to use UnsafePointer explicitly instead of Pointer()
	name := runtime.FuncForPC(uintptr(value.UnsafePointer())).Name()
	// this suffix gets appended to method values. It's unimportant.
	return strings.TrimSuffix(name, "-fm")
}

// shortFuncName drops the import path from a function name, leaving pkg.Func.
func shortFuncName(function any) string {
	name := funcName(function)
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	return name
}

// isNil returns whether the value is nil.
func isNil(value any) bool { return isUntypedNil(value) || isTypedNil(value) }

// isTypedNil returns whether the value is a typed nil.
func isTypedNil(value any) bool {
	reflectedValue := reflect.ValueOf(value)
	return isNillableKind(reflectedValue.Kind()) && reflectedValue.IsNil()
}

// isUntypedNil returns whether the value is an untyped nil.
func isUntypedNil(value any) bool { return !reflect.ValueOf(value).IsValid() }

// isNillableKind returns true if the kind passed is nillable.
// According to https://pkg.go.dev/reflect#Value.IsNil, this is the case for
// chan, func, interface, map, pointer, or slice kinds.
func isNillableKind(kind reflect.Kind) bool {
	switch kind { //nolint:exhaustive // every other kind is not nillable
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Pointer, reflect.Slice:
		return true
	default:
		return false
	}
}
