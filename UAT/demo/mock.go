// Code written in the shape of generated interceptors. Keep it mechanical.

package demo

import (
	rhinomocks "github.com/waf/rhino-mocks"
)

// DemoMock implements Demo by routing every call to its MockState.
// While recording, calling a method records it; use Expect to get the
// expectation handle.
type DemoMock struct {
	State  *rhinomocks.MockState
	Expect *DemoExpect
}

// DemoExpect records Demo expectations and returns their handles. Arguments
// may be plain values or matchers.
type DemoExpect struct {
	state *rhinomocks.MockState
}

// ListMock implements List by routing every call to its MockState.
type ListMock struct {
	State  *rhinomocks.MockState
	Expect *ListExpect
}

// ListExpect records List expectations and returns their handles.
type ListExpect struct {
	state *rhinomocks.MockState
}

// ServiceMock implements Service by routing every call to its MockState.
type ServiceMock struct {
	State  *rhinomocks.MockState
	Expect *ServiceExpect
}

// ServiceExpect records Service expectations and returns their handles.
type ServiceExpect struct {
	state *rhinomocks.MockState
}

// NewDemoMock creates a Demo mock in repo.
func NewDemoMock(repo *rhinomocks.Repository) *DemoMock {
	state := repo.NewMock("IDemo")

	return &DemoMock{State: state, Expect: &DemoExpect{state: state}}
}

// NewListMock creates a List mock in repo.
func NewListMock(repo *rhinomocks.Repository) *ListMock {
	state := repo.NewMock("IList")

	return &ListMock{State: state, Expect: &ListExpect{state: state}}
}

// NewServiceMock creates a Service mock in repo.
func NewServiceMock(repo *rhinomocks.Repository) *ServiceMock {
	state := repo.NewMock("IService")

	return &ServiceMock{State: state, Expect: &ServiceExpect{state: state}}
}

func (m *DemoMock) EnumNoArgs() EnumDemo {
	return rhinomocks.ResultAs[EnumDemo](handle(m.State, demoEnumNoArgs), 0)
}

func (m *DemoMock) Prop() string {
	return rhinomocks.ResultAs[string](handle(m.State, demoPropGet), 0)
}

func (m *DemoMock) ReturnIntNoArgs() int {
	return rhinomocks.ResultAs[int](handle(m.State, demoReturnIntNoArgs), 0)
}

func (m *DemoMock) ReturnStringNoArgs() string {
	return rhinomocks.ResultAs[string](handle(m.State, demoReturnStringNoArgs), 0)
}

func (m *DemoMock) SetProp(value string) {
	handle(m.State, demoPropSet, value)
}

func (m *DemoMock) StringArgString(s string) string {
	return rhinomocks.ResultAs[string](handle(m.State, demoStringArgString, s), 0)
}

func (m *DemoMock) VoidNoArgs() {
	handle(m.State, demoVoidNoArgs)
}

func (m *DemoMock) VoidStringArg(s string) {
	handle(m.State, demoVoidStringArg, s)
}

func (m *DemoMock) VoidThreeStringArgs(a, b, c string) {
	handle(m.State, demoVoidThreeStringArgs, a, b, c)
}

func (e *DemoExpect) EnumNoArgs() *rhinomocks.Expectation {
	return e.state.Expect(demoEnumNoArgs)
}

func (e *DemoExpect) Prop() *rhinomocks.Expectation {
	return e.state.Expect(demoPropGet)
}

func (e *DemoExpect) ReturnIntNoArgs() *rhinomocks.Expectation {
	return e.state.Expect(demoReturnIntNoArgs)
}

func (e *DemoExpect) ReturnStringNoArgs() *rhinomocks.Expectation {
	return e.state.Expect(demoReturnStringNoArgs)
}

func (e *DemoExpect) SetProp(value any) *rhinomocks.Expectation {
	return e.state.Expect(demoPropSet, value)
}

func (e *DemoExpect) StringArgString(s any) *rhinomocks.Expectation {
	return e.state.Expect(demoStringArgString, s)
}

func (e *DemoExpect) VoidNoArgs() *rhinomocks.Expectation {
	return e.state.Expect(demoVoidNoArgs)
}

func (e *DemoExpect) VoidStringArg(s any) *rhinomocks.Expectation {
	return e.state.Expect(demoVoidStringArg, s)
}

func (e *DemoExpect) VoidThreeStringArgs(a, b, c any) *rhinomocks.Expectation {
	return e.state.Expect(demoVoidThreeStringArgs, a, b, c)
}

func (m *ListMock) Add(item any) int {
	return rhinomocks.ResultAs[int](handle(m.State, listAdd, item), 0)
}

func (m *ListMock) Clear() {
	handle(m.State, listClear)
}

func (m *ListMock) Count() int {
	return rhinomocks.ResultAs[int](handle(m.State, listCount), 0)
}

func (e *ListExpect) Add(item any) *rhinomocks.Expectation {
	return e.state.Expect(listAdd, item)
}

func (e *ListExpect) Clear() *rhinomocks.Expectation {
	return e.state.Expect(listClear)
}

func (e *ListExpect) Count() *rhinomocks.Expectation {
	return e.state.Expect(listCount)
}

func (m *ServiceMock) Bar() {
	handle(m.State, serviceBar)
}

func (m *ServiceMock) Foo(n int) int {
	return rhinomocks.ResultAs[int](handle(m.State, serviceFoo, n), 0)
}

func (m *ServiceMock) Put(key string, values []string) error {
	return rhinomocks.ResultAs[error](handle(m.State, servicePut, key, values), 0)
}

func (e *ServiceExpect) Bar() *rhinomocks.Expectation {
	return e.state.Expect(serviceBar)
}

func (e *ServiceExpect) Foo(n any) *rhinomocks.Expectation {
	return e.state.Expect(serviceFoo, n)
}

func (e *ServiceExpect) Put(key, values any) *rhinomocks.Expectation {
	return e.state.Expect(servicePut, key, values)
}

// unexported variables.
//
//nolint:gochecknoglobals // method identities are fixed per interface
var (
	demoEnumNoArgs          = rhinomocks.Method{Owner: "IDemo", Name: "EnumNoArgs"}
	demoPropGet             = rhinomocks.Method{Owner: "IDemo", Name: "Prop", Kind: rhinomocks.PropertyGet}
	demoPropSet             = rhinomocks.Method{Owner: "IDemo", Name: "Prop", Kind: rhinomocks.PropertySet}
	demoReturnIntNoArgs     = rhinomocks.Method{Owner: "IDemo", Name: "ReturnIntNoArgs"}
	demoReturnStringNoArgs  = rhinomocks.Method{Owner: "IDemo", Name: "ReturnStringNoArgs"}
	demoStringArgString     = rhinomocks.Method{Owner: "IDemo", Name: "StringArgString"}
	demoVoidNoArgs          = rhinomocks.Method{Owner: "IDemo", Name: "VoidNoArgs"}
	demoVoidStringArg       = rhinomocks.Method{Owner: "IDemo", Name: "VoidStringArg"}
	demoVoidThreeStringArgs = rhinomocks.Method{Owner: "IDemo", Name: "VoidThreeStringArgs"}
	listAdd                 = rhinomocks.Method{Owner: "IList", Name: "Add"}
	listClear               = rhinomocks.Method{Owner: "IList", Name: "Clear"}
	listCount               = rhinomocks.Method{Owner: "IList", Name: "Count"}
	serviceBar              = rhinomocks.Method{Owner: "IService", Name: "Bar"}
	serviceFoo              = rhinomocks.Method{Owner: "IService", Name: "Foo"}
	servicePut              = rhinomocks.Method{Owner: "IService", Name: "Put"}
)

// handle forwards a call to the engine. Engine errors and panic outcomes
// surface as panics, since the mocked signatures have no room for them.
func handle(state *rhinomocks.MockState, method rhinomocks.Method, args ...any) rhinomocks.Result {
	result, err := state.Handle(method, args...)
	if err != nil {
		panic(err)
	}

	result.Raise()

	return result
}

var (
	_ Demo    = (*DemoMock)(nil)
	_ List    = (*ListMock)(nil)
	_ Service = (*ServiceMock)(nil)
)
