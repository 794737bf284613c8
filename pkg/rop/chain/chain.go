package chain

import (
	"github.com/ib-77/result/pkg/rop"
	"github.com/ib-77/result/pkg/rop/solo"
)

// Chain wraps a rop.Result to enable fluent chaining
type Chain[S, F any] struct {
	result rop.Result[S, F]
}

// Start creates a new chain from a rop.Result
func Start[S, F any](result rop.Result[S, F]) *Chain[S, F] {
	rop.Require(result, "result")
	return &Chain[S, F]{
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[S, F any](value S) *Chain[S, F] {
	return &Chain[S, F]{
		result: rop.Success[S, F](value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[S, F]) Result() rop.Result[S, F] {
	return c.result
}

// Then chains a function that returns rop.Result[U, F]
func Then[S, F, U any](c *Chain[S, F], onSuccess func(S) rop.Result[U, F]) *Chain[U, F] {
	return &Chain[U, F]{
		result: solo.FlatMapSuccess(c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[S, U any](c *Chain[S, error], tryOnSuccess func(S) (U, error)) *Chain[U, error] {
	rop.Require(tryOnSuccess, "tryOnSuccess")
	return &Chain[U, error]{
		result: solo.FlatMapSuccess(c.result, func(s S) rop.Result[U, error] {
			u, err := tryOnSuccess(s)
			return rop.Of(u, err)
		}),
	}
}

// Map chains a pure transformation function
func Map[S, F, U any](c *Chain[S, F], onSuccess func(S) U) *Chain[U, F] {
	return &Chain[U, F]{
		result: solo.MapSuccess(c.result, onSuccess),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[S, F]) Ensure(onSuccess func(S)) *Chain[S, F] {
	return &Chain[S, F]{
		result: c.result.IfSuccess(onSuccess),
	}
}

func (c *Chain[S, F]) OnFailure(onFailure func(F)) *Chain[S, F] {
	return &Chain[S, F]{
		result: c.result.IfFailure(onFailure),
	}
}

func (c *Chain[S, F]) Filter(isAcceptable func(S) bool, toFailure func(S) F) *Chain[S, F] {
	return &Chain[S, F]{
		result: c.result.Filter(isAcceptable, toFailure),
	}
}

func (c *Chain[S, F]) Recover(isRecoverable func(F) bool, toSuccess func(F) S) *Chain[S, F] {
	return &Chain[S, F]{
		result: c.result.Recover(isRecoverable, toSuccess),
	}
}

// Finally collapses the chain into a final value using solo.Fold
func Finally[S, F, U any](c *Chain[S, F], onSuccess func(S) U, onFailure func(F) U) U {
	return solo.Fold(c.result, onSuccess, onFailure)
}
