package core_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/google/uuid"

	"github.com/waf/rhino-mocks/internal/core"
)

func TestFormatValue(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var nilMap map[string]int

	g.Expect(core.FormatValue(nil)).To(Equal("nil"))
	g.Expect(core.FormatValue(nilMap)).To(Equal("nil"))
	g.Expect(core.FormatValue("a\"b")).To(Equal(`"a\"b"`))
	g.Expect(core.FormatValue(42)).To(Equal("42"))
	g.Expect(core.FormatValue([]any{1, []string{"a", "b"}})).To(Equal(`[1, ["a", "b"]]`))
	g.Expect(core.FormatValue([2]bool{true, false})).To(Equal("[true, false]"))
	g.Expect(core.FormatValue(core.FormatValue)).To(Equal("core.FormatValue"))
}

func TestDescribeMethodCall(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	method := core.Method{Owner: "Coverage", Name: "MethodUsingArray"}
	inv := core.NewInvocation(uuid.New(), method, 1, []string{"a", "b"})

	g.Expect(core.Describe(inv, nil)).To(Equal(`Coverage.MethodUsingArray(1, ["a", "b"]);`))
}

func TestDescribeAccessors(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	target := uuid.New()
	get := core.Method{Owner: "AppDomain", Name: "BaseDirectory", Kind: core.PropertyGet}
	set := core.Method{Owner: "TestClass", Name: "StringProperty", Kind: core.PropertySet}

	g.Expect(core.Describe(core.NewInvocation(target, get), nil)).To(Equal("AppDomain.BaseDirectory;"))
	g.Expect(core.Describe(core.NewInvocation(target, set, "foo"), nil)).
		To(Equal(`TestClass.StringProperty = "foo";`))
}

func TestDescribeGenericInstantiation(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	method := core.Method{Owner: "TestClass", Name: "GenericMethod", TypeArgs: "int"}
	inv := core.NewInvocation(uuid.New(), method, "foo")

	g.Expect(core.Describe(inv, core.FormatValue)).To(Equal(`TestClass.GenericMethod[int]("foo");`))
}

func TestDescribeIsPure(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	inv := core.NewInvocation(uuid.New(), core.Method{Name: "F"}, "x")

	g.Expect(core.Describe(inv, nil)).To(Equal(core.Describe(inv, nil)))
	g.Expect(core.Describe(inv, nil)).To(Equal(`F("x");`))
}

func TestNewInvocationCopiesArguments(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	args := []any{1, 2}
	inv := core.NewInvocation(uuid.New(), core.Method{Name: "F"}, args...)
	args[0] = 100

	g.Expect(inv.Args).To(Equal([]any{1, 2}))
}
