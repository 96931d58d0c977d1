// Package demo holds the interfaces the acceptance scenarios mock, along with
// interceptors written the way a generator would emit them.
package demo

// EnumDemo is a small enum returned by Demo.EnumNoArgs.
type EnumDemo int

// EnumDemo values.
const (
	Zero  EnumDemo = 0
	One   EnumDemo = 1
	Dozen EnumDemo = 12
)

// Demo covers the shapes of member the engine has to handle: void and
// valued methods, zero to three arguments, and a property.
type Demo interface {
	EnumNoArgs() EnumDemo
	Prop() string
	ReturnIntNoArgs() int
	ReturnStringNoArgs() string
	SetProp(value string)
	StringArgString(s string) string
	VoidNoArgs()
	VoidStringArg(s string)
	VoidThreeStringArgs(a, b, c string)
}

// List is a second collaborator, for scenarios spanning several mocks.
type List interface {
	Add(item any) int
	Clear()
	Count() int
}

// Service has members with arguments of several kinds, for argument matching
// scenarios.
type Service interface {
	Bar()
	Foo(n int) int
	Put(key string, values []string) error
}

// Greet uses a Demo the way code under test would.
func Greet(d Demo, name string) string {
	d.VoidStringArg(name)

	return d.StringArgString("Hello") + " " + name
}

// Drain empties the list if it has anything in it and reports how many items
// it removed.
func Drain(l List) int {
	count := l.Count()
	if count > 0 {
		l.Clear()
	}

	return count
}
