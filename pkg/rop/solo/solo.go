package solo

import (
	"github.com/ib-77/result/pkg/rop"
)

func MapSuccess[S, F, S2 any](input rop.Result[S, F], mapper func(S) S2) rop.Result[S2, F] {
	rop.Require(input, "input")
	rop.Require(mapper, "mapper")

	if s, ok := input.GetSuccess(); ok {
		return rop.Success[S2, F](mapper(s))
	}
	f, _ := input.GetFailure()
	return rop.Failure[S2](f)
}

func MapFailure[S, F, F2 any](input rop.Result[S, F], mapper func(F) F2) rop.Result[S, F2] {
	rop.Require(input, "input")
	rop.Require(mapper, "mapper")

	if f, ok := input.GetFailure(); ok {
		return rop.Failure[S](mapper(f))
	}
	s, _ := input.GetSuccess()
	return rop.Success[S, F2](s)
}

// Map applies exactly one of the two mappers, whichever matches the variant
func Map[S, F, S2, F2 any](input rop.Result[S, F],
	onSuccess func(S) S2,
	onFailure func(F) F2) rop.Result[S2, F2] {

	rop.Require(input, "input")
	rop.Require(onSuccess, "onSuccess")
	rop.Require(onFailure, "onFailure")

	if s, ok := input.GetSuccess(); ok {
		return rop.Success[S2, F2](onSuccess(s))
	}
	f, _ := input.GetFailure()
	return rop.Failure[S2](onFailure(f))
}

// FlatMapSuccess binds a success value to the next result-returning step.
// A failure input skips the step and is carried over unchanged.
func FlatMapSuccess[S, F, S2 any](input rop.Result[S, F], onSuccess func(S) rop.Result[S2, F]) rop.Result[S2, F] {
	rop.Require(input, "input")
	rop.Require(onSuccess, "onSuccess")

	if s, ok := input.GetSuccess(); ok {
		return onSuccess(s)
	}
	f, _ := input.GetFailure()
	return rop.Failure[S2](f)
}

func FlatMapFailure[S, F, F2 any](input rop.Result[S, F], onFailure func(F) rop.Result[S, F2]) rop.Result[S, F2] {
	rop.Require(input, "input")
	rop.Require(onFailure, "onFailure")

	if f, ok := input.GetFailure(); ok {
		return onFailure(f)
	}
	s, _ := input.GetSuccess()
	return rop.Success[S, F2](s)
}

func FlatMap[S, F, S2, F2 any](input rop.Result[S, F],
	onSuccess func(S) rop.Result[S2, F2],
	onFailure func(F) rop.Result[S2, F2]) rop.Result[S2, F2] {

	rop.Require(input, "input")
	rop.Require(onSuccess, "onSuccess")
	rop.Require(onFailure, "onFailure")

	if s, ok := input.GetSuccess(); ok {
		return onSuccess(s)
	}
	f, _ := input.GetFailure()
	return onFailure(f)
}

// Fold collapses the result into a single value
func Fold[S, F, Out any](input rop.Result[S, F],
	onSuccess func(S) Out,
	onFailure func(F) Out) Out {

	rop.Require(input, "input")
	rop.Require(onSuccess, "onSuccess")
	rop.Require(onFailure, "onFailure")

	if s, ok := input.GetSuccess(); ok {
		return onSuccess(s)
	}
	f, _ := input.GetFailure()
	return onFailure(f)
}
