package ropassert

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/ib-77/result/pkg/rop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testify indents every continuation line of a failure message
var labelIndent = regexp.MustCompile(`\n\t *\t`)

// recorder stands in for *testing.T and keeps every reported failure
type recorder struct {
	messages []string
	stopped  bool
}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.messages = append(r.messages, labelIndent.ReplaceAllString(fmt.Sprintf(format, args...), "\n"))
}

func (r *recorder) FailNow() {
	r.stopped = true
}

func (r *recorder) failed() bool {
	return len(r.messages) > 0
}

func (r *recorder) contains(s string) bool {
	for _, m := range r.messages {
		if strings.Contains(m, s) {
			return true
		}
	}
	return false
}

func requireIllegalArgument(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "expected an error value, got %T", r)
		require.True(t, rop.IllegalArgument.Has(err), "expected illegal argument, got %v", err)
	}()
	f()
}

func TestHasSuccess(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	AssertThat(rec, rop.Success[string, int]("yay")).HasSuccess()
	assert.False(t, rec.failed())

	r := rop.Failure[string](123)
	AssertThat(rec, r).HasSuccess()
	require.True(t, rec.failed())
	assert.True(t, rec.contains(fmt.Sprintf(expectingSuccess, r)))
	assert.True(t, rec.contains("Expecting result:\n  <Failure[123]>\nto be a success but was not."))
}

func TestHasFailure(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	AssertThat(rec, rop.Failure[int]("nay")).HasFailure()
	assert.False(t, rec.failed())

	AssertThat(rec, rop.Success[int, string](1)).HasFailure()
	assert.True(t, rec.contains("Expecting result:\n  <Success[1]>\nto be a failure but was not."))
}

func TestNilActual(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	AssertThat[int, string](rec, nil).HasSuccess()
	assert.True(t, rec.contains("Expecting actual not to be null"))
}

func TestHasSuccessEqual(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	AssertThat(rec, rop.Success[string, int]("yay")).HasSuccessEqual("yay")
	assert.False(t, rec.failed())

	AssertThat(rec, rop.Success[string, int]("yay")).HasSuccessEqual("nay")
	assert.True(t, rec.contains("Expecting result:\n  <Success[yay]>\nto contain:\n  <nay>\nbut did contain:\n  <yay>."))
}

func TestHasSuccessEqual_OnFailure(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	AssertThat(rec, rop.Failure[string](1)).HasSuccessEqual("yay")
	require.Len(t, rec.messages, 1)
	assert.True(t, rec.contains("to be a success but was not."))
}

func TestHasFailureEqual(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	AssertThat(rec, rop.Failure[int]("boom")).HasFailureEqual("boom")
	assert.False(t, rec.failed())

	AssertThat(rec, rop.Failure[int]("boom")).HasFailureEqual("bang")
	assert.True(t, rec.contains("Expecting result:\n  <Failure[boom]>\nto contain:\n  <bang>\nbut did contain:\n  <boom>."))
}

func TestHasSuccessSameAs(t *testing.T) {
	t.Parallel()

	foo := "foobar"
	other := "foobar"

	rec := &recorder{}
	AssertThat(rec, rop.Success[*string, int](&foo)).
		HasSuccessEqual(&other).
		HasSuccessSameAs(&foo)
	assert.False(t, rec.failed())

	AssertThat(rec, rop.Success[*string, int](&foo)).HasSuccessSameAs(&other)
	assert.True(t, rec.contains("to contain the instance (i.e. compared with ==):"))
}

func TestHasFailureSameAs(t *testing.T) {
	t.Parallel()

	errA := errors.New("a")
	rec := &recorder{}
	AssertThat(rec, rop.Failure[int](errA)).HasFailureSameAs(errA)
	assert.False(t, rec.failed())

	AssertThat(rec, rop.Failure[int](errA)).HasFailureSameAs(errors.New("a"))
	assert.True(t, rec.failed())
}

func TestHasSuccessSatisfying(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	called := false
	AssertThat(rec, rop.Success[int, string](10)).HasSuccessSatisfying(func(v int) {
		called = true
		assert.Greater(t, v, 9)
	})
	assert.True(t, called)
	assert.False(t, rec.failed())

	called = false
	AssertThat(rec, rop.Failure[int]("x")).HasSuccessSatisfying(func(int) { called = true })
	assert.False(t, called)
	assert.True(t, rec.failed())
}

func TestHasFailureSatisfying(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	var got string
	AssertThat(rec, rop.Failure[int]("boom")).HasFailureSatisfying(func(f string) { got = f })
	assert.Equal(t, "boom", got)
	assert.False(t, rec.failed())
}

func TestHasSuccessMatching(t *testing.T) {
	t.Parallel()

	isNegative := NewCondition(func(v int) bool { return v < 0 }, "a negative number")

	rec := &recorder{}
	AssertThat(rec, rop.Success[int, string](-1)).HasSuccessMatching(isNegative)
	assert.False(t, rec.failed())

	AssertThat(rec, rop.Success[int, string](1234)).HasSuccessMatching(isNegative)
	assert.True(t, rec.contains("Expecting actual:\n  <1234>\nto be a negative number"))
}

func TestHasFailureMatching(t *testing.T) {
	t.Parallel()

	isEmpty := NewCondition(func(f string) bool { return f == "" }, "empty")

	rec := &recorder{}
	AssertThat(rec, rop.Failure[int]("")).HasFailureMatching(isEmpty)
	assert.False(t, rec.failed())

	AssertThat(rec, rop.Failure[int]("x")).HasFailureMatching(isEmpty)
	assert.True(t, rec.contains("to be empty"))
}

type parent interface{ name() string }

type child struct{}

func (child) name() string { return "child" }

type other struct{}

func TestHasSuccessOfType(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	AssertThat(rec, rop.Success[any, int]("hello")).
		HasSuccessOfType(reflect.TypeOf("")).
		HasSuccessOfType(reflect.TypeOf((*any)(nil)).Elem())
	AssertThat(rec, rop.Success[any, int](child{})).
		HasSuccessOfType(reflect.TypeOf((*parent)(nil)).Elem())
	assert.False(t, rec.failed(), "unexpected failures: %v", rec.messages)

	AssertThat(rec, rop.Success[any, int](other{})).HasSuccessOfType(reflect.TypeOf(child{}))
	assert.True(t, rec.contains("to contain a value that is an instance of:\n <ropassert.child>\nbut did contain an instance of:\n  <ropassert.other>"))
}

func TestHasFailureOfType(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	errorType := reflect.TypeOf((*error)(nil)).Elem()
	AssertThat(rec, rop.Failure[int, any](errors.New("x"))).HasFailureOfType(errorType)
	assert.False(t, rec.failed())

	AssertThat(rec, rop.Failure[int, any](nil)).HasFailureOfType(errorType)
	assert.True(t, rec.contains("but did contain an instance of:\n  <<nil>>"))
}

func TestSuccessAndFailureValues(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	assert.Equal(t, 0, AssertThat(rec, rop.Success[int, string](0)).Success())
	assert.Equal(t, "x", AssertThat(rec, rop.Failure[int]("x")).Failure())
	assert.False(t, rec.failed())

	assert.Zero(t, AssertThat(rec, rop.Failure[int]("x")).Success())
	assert.True(t, rec.failed())
}

func TestRequireThat_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	RequireThat(rec, rop.Success[int, string](1)).HasSuccessEqual(1)
	assert.False(t, rec.stopped)

	RequireThat(rec, rop.Success[int, string](1)).HasFailure()
	assert.True(t, rec.stopped)
}

func TestAssertThat_KeepsGoing(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	AssertThat(rec, rop.Success[int, string](1)).
		HasSuccessEqual(2).
		HasSuccessEqual(3)
	assert.Len(t, rec.messages, 2)
	assert.False(t, rec.stopped)
}

func TestIllegalArguments(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	requireIllegalArgument(t, func() {
		AssertThat(rec, rop.Success[*int, string](new(int))).HasSuccessEqual(nil)
	})
	requireIllegalArgument(t, func() {
		AssertThat(rec, rop.Success[*int, string](new(int))).HasSuccessSameAs(nil)
	})
	requireIllegalArgument(t, func() {
		AssertThat(rec, rop.Failure[int, error](errors.New("x"))).HasFailureEqual(nil)
	})
	requireIllegalArgument(t, func() {
		AssertThat(rec, rop.Success[int, string](1)).HasSuccessSatisfying(nil)
	})
	requireIllegalArgument(t, func() {
		AssertThat(rec, rop.Success[int, string](1)).HasSuccessMatching(Condition[int]{Description: "broken"})
	})
	requireIllegalArgument(t, func() {
		AssertThat(rec, rop.Success[int, string](1)).HasSuccessOfType(nil)
	})
	assert.False(t, rec.failed())
}

func TestWithRealT(t *testing.T) {
	t.Parallel()

	RequireThat(t, rop.Of(10, nil)).
		HasSuccess().
		HasSuccessEqual(10).
		HasSuccessSameAs(10)
	AssertThat(t, rop.Failure[string]("FAILURE")).
		HasFailure().
		HasFailureEqual("FAILURE")
}
