// Package rop defines Result[S, F], an immutable container holding either a
// success value or a failure value. Same-typed operations are methods on the
// result itself; type-changing combinators and aggregation live in solo.
package rop

import (
	"fmt"
	"iter"
)

type success[S, F any] struct {
	value S
}

type failure[S, F any] struct {
	value F
}

func Success[S, F any](value S) Result[S, F] {
	return success[S, F]{value: value}
}

func Failure[S, F any](value F) Result[S, F] {
	return failure[S, F]{value: value}
}

// Of converts a (value, error) pair into a Result; a nil error means success
func Of[S any](value S, err error) Result[S, error] {
	if err != nil {
		return Failure[S](err)
	}
	return Success[S, error](value)
}

func (r success[S, F]) sealed() {}

func (r success[S, F]) HasSuccess() bool {
	return true
}

func (r success[S, F]) HasFailure() bool {
	return false
}

func (r success[S, F]) GetSuccess() (S, bool) {
	return r.value, true
}

func (r success[S, F]) GetFailure() (F, bool) {
	var zero F
	return zero, false
}

func (r success[S, F]) OrElse(_ S) S {
	return r.value
}

func (r success[S, F]) OrElseMap(mapper func(F) S) S {
	Require(mapper, "mapper")
	return r.value
}

func (r success[S, F]) OrElseThrow() (S, error) {
	return r.value, nil
}

func (r success[S, F]) StreamSuccess() iter.Seq[S] {
	return func(yield func(S) bool) {
		yield(r.value)
	}
}

func (r success[S, F]) StreamFailure() iter.Seq[F] {
	return func(func(F) bool) {}
}

func (r success[S, F]) IfSuccess(action func(S)) Result[S, F] {
	Require(action, "action")
	action(r.value)
	return r
}

func (r success[S, F]) IfFailure(action func(F)) Result[S, F] {
	Require(action, "action")
	return r
}

func (r success[S, F]) IfSuccessOrElse(successAction func(S), failureAction func(F)) Result[S, F] {
	Require(successAction, "successAction")
	Require(failureAction, "failureAction")
	successAction(r.value)
	return r
}

func (r success[S, F]) Filter(isAcceptable func(S) bool, mapper func(S) F) Result[S, F] {
	Require(isAcceptable, "isAcceptable")
	Require(mapper, "mapper")
	if isAcceptable(r.value) {
		return r
	}
	return failure[S, F]{value: mapper(r.value)}
}

func (r success[S, F]) Recover(isRecoverable func(F) bool, mapper func(F) S) Result[S, F] {
	Require(isRecoverable, "isRecoverable")
	Require(mapper, "mapper")
	return r
}

func (r success[S, F]) Equal(other Result[S, F]) bool {
	if other == nil {
		return false
	}
	v, ok := other.GetSuccess()
	return ok && ValuesEqual(r.value, v)
}

func (r success[S, F]) Same(other Result[S, F]) bool {
	if other == nil {
		return false
	}
	v, ok := other.GetSuccess()
	return ok && ValuesSame(r.value, v)
}

func (r success[S, F]) String() string {
	return fmt.Sprintf("Success[%v]", r.value)
}

func (r failure[S, F]) sealed() {}

func (r failure[S, F]) HasSuccess() bool {
	return false
}

func (r failure[S, F]) HasFailure() bool {
	return true
}

func (r failure[S, F]) GetSuccess() (S, bool) {
	var zero S
	return zero, false
}

func (r failure[S, F]) GetFailure() (F, bool) {
	return r.value, true
}

func (r failure[S, F]) OrElse(other S) S {
	return other
}

func (r failure[S, F]) OrElseMap(mapper func(F) S) S {
	Require(mapper, "mapper")
	return mapper(r.value)
}

func (r failure[S, F]) OrElseThrow() (S, error) {
	var zero S
	return zero, NoSuchElement.New("result is a failure: %v", r.value)
}

func (r failure[S, F]) StreamSuccess() iter.Seq[S] {
	return func(func(S) bool) {}
}

func (r failure[S, F]) StreamFailure() iter.Seq[F] {
	return func(yield func(F) bool) {
		yield(r.value)
	}
}

func (r failure[S, F]) IfSuccess(action func(S)) Result[S, F] {
	Require(action, "action")
	return r
}

func (r failure[S, F]) IfFailure(action func(F)) Result[S, F] {
	Require(action, "action")
	action(r.value)
	return r
}

func (r failure[S, F]) IfSuccessOrElse(successAction func(S), failureAction func(F)) Result[S, F] {
	Require(successAction, "successAction")
	Require(failureAction, "failureAction")
	failureAction(r.value)
	return r
}

func (r failure[S, F]) Filter(isAcceptable func(S) bool, mapper func(S) F) Result[S, F] {
	Require(isAcceptable, "isAcceptable")
	Require(mapper, "mapper")
	return r
}

func (r failure[S, F]) Recover(isRecoverable func(F) bool, mapper func(F) S) Result[S, F] {
	Require(isRecoverable, "isRecoverable")
	Require(mapper, "mapper")
	if !isRecoverable(r.value) {
		return r
	}
	return success[S, F]{value: mapper(r.value)}
}

func (r failure[S, F]) Equal(other Result[S, F]) bool {
	if other == nil {
		return false
	}
	v, ok := other.GetFailure()
	return ok && ValuesEqual(r.value, v)
}

func (r failure[S, F]) Same(other Result[S, F]) bool {
	if other == nil {
		return false
	}
	v, ok := other.GetFailure()
	return ok && ValuesSame(r.value, v)
}

func (r failure[S, F]) String() string {
	return fmt.Sprintf("Failure[%v]", r.value)
}
