package core

import (
	"slices"

	"github.com/google/uuid"
)

// MethodKind distinguishes plain methods from property accessors.
type MethodKind int

// Method kinds.
const (
	MethodCall MethodKind = iota
	PropertyGet
	PropertySet
)

// Method is the identity of a mocked member, as resolved by the interceptor.
// Two Methods are the same member if and only if they compare equal with ==.
// TypeArgs carries the interceptor's rendering of a generic instantiation, so
// that Get[int] and Get[string] are different members.
type Method struct {
	Owner    string
	Name     string
	TypeArgs string
	Kind     MethodKind
}

// String renders the member as Owner.Name[TypeArgs].
func (m Method) String() string {
	name := m.Name
	if m.Owner != "" {
		name = m.Owner + "." + name
	}

	if m.TypeArgs != "" {
		name += "[" + m.TypeArgs + "]"
	}

	return name
}

// IsProperty reports whether the member is a property getter or setter.
func (m Method) IsProperty() bool {
	return m.Kind == PropertyGet || m.Kind == PropertySet
}

// sameProperty reports whether both members are accessors of one property.
func (m Method) sameProperty(other Method) bool {
	return m.IsProperty() && other.IsProperty() &&
		m.Owner == other.Owner && m.Name == other.Name && m.TypeArgs == other.TypeArgs
}

// Invocation is one concrete call observed on a mock: which mock, which member,
// and the already-evaluated argument values.
type Invocation struct {
	Target uuid.UUID
	Method Method
	Args   []any
}

// NewInvocation creates an Invocation holding its own copy of args.
func NewInvocation(target uuid.UUID, method Method, args ...any) Invocation {
	return Invocation{
		Target: target,
		Method: method,
		Args:   slices.Clone(args),
	}
}
