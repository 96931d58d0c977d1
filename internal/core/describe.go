package core

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Formatter renders one argument value for diagnosis text. It is never used
// for matching.
type Formatter func(value any) string

// FormatValue is the default Formatter. Strings are quoted, slices and arrays
// are rendered element by element, and functions are rendered by name.
func FormatValue(value any) string {
	if isNil(value) {
		return "nil"
	}

	if text, ok := value.(string); ok {
		return strconv.Quote(text)
	}

	reflected := reflect.ValueOf(value)

	switch reflected.Kind() { //nolint:exhaustive // everything else renders with %v
	case reflect.Slice, reflect.Array:
		parts := make([]string, reflected.Len())
		for i := range reflected.Len() {
			parts[i] = FormatValue(reflected.Index(i).Interface())
		}

		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Func:
		return shortFuncName(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// Describe renders an invocation the way diagnosis messages show it, e.g.
// IDemo.VoidStringArg("Hello");
func Describe(inv Invocation, format Formatter) string {
	if format == nil {
		format = FormatValue
	}

	parts := make([]string, len(inv.Args))
	for i, arg := range inv.Args {
		parts[i] = format(arg)
	}

	return describeCall(inv.Method, parts)
}

func describeCall(method Method, args []string) string {
	switch method.Kind {
	case PropertyGet:
		return method.String() + ";"
	case PropertySet:
		if len(args) == 1 {
			return method.String() + " = " + args[0] + ";"
		}
	case MethodCall:
	}

	return method.String() + "(" + strings.Join(args, ", ") + ");"
}

// countLine renders one "Expected #n, Actual #m." diagnosis line.
func countLine(call string, expected, actual int) string {
	return fmt.Sprintf("%s Expected #%d, Actual #%d.", call, expected, actual)
}
