// Package delegates shows mocks of function types. A function mock is a mock
// with a single member, Invoke.
package delegates

// ObjectFunc returns a value of any type.
type ObjectFunc func() any

// VoidFunc consumes a string.
type VoidFunc func(a string)

// StringFunc formats its arguments.
type StringFunc func(a int, b string) string

// RefOutFunc updates a and sets b through pointers, the Go form of ref and out
// parameters.
type RefOutFunc func(a *int, b *string) int

// ForEachFromZeroToNine calls act with 0 through 9.
func ForEachFromZeroToNine(act func(int)) {
	for i := range 10 {
		act(i)
	}
}
