// Code written in the shape of generated interceptors. Keep it mechanical.

package delegates_test

import (
	rhinomocks "github.com/waf/rhino-mocks"
	delegates "github.com/waf/rhino-mocks/UAT/02-delegate-mocks"
)

// funcMock is the engine side of a mocked function type.
type funcMock struct {
	state  *rhinomocks.MockState
	method rhinomocks.Method
}

func newFuncMock(repo *rhinomocks.Repository, name string) *funcMock {
	return &funcMock{
		state:  repo.NewMock(name),
		method: rhinomocks.Method{Owner: name, Name: "Invoke"},
	}
}

func (m *funcMock) call(args ...any) rhinomocks.Result {
	result, err := m.state.Handle(m.method, args...)
	if err != nil {
		panic(err)
	}

	result.Raise()

	return result
}

func (m *funcMock) expect(args ...any) *rhinomocks.Expectation {
	return m.state.Expect(m.method, args...)
}

func mockObjectFunc(repo *rhinomocks.Repository, name string) (delegates.ObjectFunc, *funcMock) {
	mock := newFuncMock(repo, name)

	return func() any { return rhinomocks.ResultAs[any](mock.call(), 0) }, mock
}

func mockVoidFunc(repo *rhinomocks.Repository) (delegates.VoidFunc, *funcMock) {
	mock := newFuncMock(repo, "VoidFunc")

	return func(a string) { mock.call(a) }, mock
}

func mockStringFunc(repo *rhinomocks.Repository) (delegates.StringFunc, *funcMock) {
	mock := newFuncMock(repo, "StringFunc")

	return func(a int, b string) string { return rhinomocks.ResultAs[string](mock.call(a, b), 0) }, mock
}

func mockRefOutFunc(repo *rhinomocks.Repository) (delegates.RefOutFunc, *funcMock) {
	mock := newFuncMock(repo, "RefOutFunc")

	return func(a *int, b *string) int { return rhinomocks.ResultAs[int](mock.call(a, b), 0) }, mock
}

func mockAction[T any](repo *rhinomocks.Repository, name string) (func(T), *funcMock) {
	mock := newFuncMock(repo, name)

	return func(value T) { mock.call(value) }, mock
}
