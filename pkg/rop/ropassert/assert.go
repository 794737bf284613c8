package ropassert

import (
	"fmt"
	"reflect"

	"github.com/ib-77/result/pkg/rop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	expectingNotNull       = "\nExpecting actual not to be null"
	expectingSuccess       = "\nExpecting result:\n  <%s>\nto be a success but was not."
	expectingFailure       = "\nExpecting result:\n  <%s>\nto be a failure but was not."
	expectingValue         = "\nExpecting result:\n  <%s>\nto contain:\n  <%v>\nbut did contain:\n  <%v>."
	expectingSameInstance  = "\nExpecting result:\n  <%s>\nto contain the instance (i.e. compared with ==):\n  <%v>\nbut did not."
	expectingInstanceOf    = "\nExpecting result:\n  <%s>\nto contain a value that is an instance of:\n <%s>\nbut did contain an instance of:\n  <%s>"
	expectingConditionMet  = "\nExpecting actual:\n  <%v>\nto be %s"
	conditionShouldNotNil  = "The condition to evaluate should not be null"
	expectedShouldNotBeNil = "The expected value should not be <null>."
)

type tHelper interface {
	Helper()
}

// ResultAssert checks a single rop.Result. Every check returns the same
// assertion so checks can be chained.
type ResultAssert[S, F any] struct {
	t       assert.TestingT
	actual  rop.Result[S, F]
	failNow func()
}

// AssertThat reports failed checks with t.Errorf and keeps going
func AssertThat[S, F any](t assert.TestingT, actual rop.Result[S, F]) *ResultAssert[S, F] {
	return &ResultAssert[S, F]{t: t, actual: actual}
}

// RequireThat stops the test with t.FailNow at the first failed check
func RequireThat[S, F any](t require.TestingT, actual rop.Result[S, F]) *ResultAssert[S, F] {
	return &ResultAssert[S, F]{t: t, actual: actual, failNow: t.FailNow}
}

// Actual returns the result under test
func (a *ResultAssert[S, F]) Actual() rop.Result[S, F] {
	return a.actual
}

func (a *ResultAssert[S, F]) HasSuccess() *ResultAssert[S, F] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	a.success()
	return a
}

func (a *ResultAssert[S, F]) HasSuccessEqual(expected S) *ResultAssert[S, F] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	value, ok := a.success()
	if !ok {
		return a
	}
	requireExpected(expected)
	if !assert.ObjectsAreEqual(expected, value) {
		a.fail(expectingValue, a.actual, expected, value)
	}
	return a
}

func (a *ResultAssert[S, F]) HasSuccessSameAs(expected S) *ResultAssert[S, F] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	value, ok := a.success()
	if !ok {
		return a
	}
	requireExpected(expected)
	if !rop.ValuesSame(expected, value) {
		a.fail(expectingSameInstance, a.actual, expected)
	}
	return a
}

// HasSuccessSatisfying hands the success value to requirement for further checks
func (a *ResultAssert[S, F]) HasSuccessSatisfying(requirement func(S)) *ResultAssert[S, F] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	rop.Require(requirement, "requirement")
	if value, ok := a.success(); ok {
		requirement(value)
	}
	return a
}

func (a *ResultAssert[S, F]) HasSuccessMatching(condition Condition[S]) *ResultAssert[S, F] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	value, ok := a.success()
	if !ok {
		return a
	}
	a.match(value, condition.Description, condition.check(value))
	return a
}

// HasSuccessOfType checks that the success value is assignable to typ
func (a *ResultAssert[S, F]) HasSuccessOfType(typ reflect.Type) *ResultAssert[S, F] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	value, ok := a.success()
	if !ok {
		return a
	}
	requireExpected(typ)
	a.ofType(value, typ)
	return a
}

// Success checks the result is a success and returns its value
func (a *ResultAssert[S, F]) Success() S {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	value, _ := a.success()
	return value
}

func (a *ResultAssert[S, F]) HasFailure() *ResultAssert[S, F] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	a.failure()
	return a
}

func (a *ResultAssert[S, F]) HasFailureEqual(expected F) *ResultAssert[S, F] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	value, ok := a.failure()
	if !ok {
		return a
	}
	requireExpected(expected)
	if !assert.ObjectsAreEqual(expected, value) {
		a.fail(expectingValue, a.actual, expected, value)
	}
	return a
}

func (a *ResultAssert[S, F]) HasFailureSameAs(expected F) *ResultAssert[S, F] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	value, ok := a.failure()
	if !ok {
		return a
	}
	requireExpected(expected)
	if !rop.ValuesSame(expected, value) {
		a.fail(expectingSameInstance, a.actual, expected)
	}
	return a
}

func (a *ResultAssert[S, F]) HasFailureSatisfying(requirement func(F)) *ResultAssert[S, F] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	rop.Require(requirement, "requirement")
	if value, ok := a.failure(); ok {
		requirement(value)
	}
	return a
}

func (a *ResultAssert[S, F]) HasFailureMatching(condition Condition[F]) *ResultAssert[S, F] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	value, ok := a.failure()
	if !ok {
		return a
	}
	a.match(value, condition.Description, condition.check(value))
	return a
}

func (a *ResultAssert[S, F]) HasFailureOfType(typ reflect.Type) *ResultAssert[S, F] {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	value, ok := a.failure()
	if !ok {
		return a
	}
	requireExpected(typ)
	a.ofType(value, typ)
	return a
}

// Failure checks the result is a failure and returns its value
func (a *ResultAssert[S, F]) Failure() F {
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	value, _ := a.failure()
	return value
}

func (a *ResultAssert[S, F]) success() (S, bool) {
	if a.actual == nil {
		var zero S
		a.fail(expectingNotNull)
		return zero, false
	}
	value, ok := a.actual.GetSuccess()
	if !ok {
		a.fail(expectingSuccess, a.actual)
	}
	return value, ok
}

func (a *ResultAssert[S, F]) failure() (F, bool) {
	if a.actual == nil {
		var zero F
		a.fail(expectingNotNull)
		return zero, false
	}
	value, ok := a.actual.GetFailure()
	if !ok {
		a.fail(expectingFailure, a.actual)
	}
	return value, ok
}

func (a *ResultAssert[S, F]) match(value any, description string, matches bool) {
	if !matches {
		a.fail(expectingConditionMet, value, description)
	}
}

func (a *ResultAssert[S, F]) ofType(value any, typ reflect.Type) {
	actualType := reflect.TypeOf(value)
	if actualType == nil {
		a.fail(expectingInstanceOf, a.actual, typ, "<nil>")
		return
	}
	if !actualType.AssignableTo(typ) {
		a.fail(expectingInstanceOf, a.actual, typ, actualType)
	}
}

func (a *ResultAssert[S, F]) fail(format string, args ...any) {
	assert.Fail(a.t, fmt.Sprintf(format, args...))
	if a.failNow != nil {
		a.failNow()
	}
}

func requireExpected(expected any) {
	if rop.IsNil(expected) {
		panic(rop.IllegalArgument.New(expectedShouldNotBeNil))
	}
}
